package confirmation

import "fmt"

type CreateRequest struct {
	ReservationNumber string `json:"reservation_number"`
	Title             string `json:"title"`
	Message           string `json:"message"`
}

func (r CreateRequest) Validate() error {
	if r.ReservationNumber == "" {
		return fmt.Errorf("reservationNumber is required")
	}
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.Message == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}

type RespondRequest struct {
	Approve  bool   `json:"approve"`
	Response string `json:"response"`
}
