package email

type SendMailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type SendMailResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
