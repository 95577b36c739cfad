package email

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Client talks to the transactional mail API
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
		apiKey:  os.Getenv("MAIL_API_KEY"),
	}
}

// SendOTP delivers a verification code to the given address
func (c *Client) SendOTP(to, otpCode string) error {
	req := SendMailRequest{
		To:      to,
		Subject: "인증번호 안내",
		Body:    fmt.Sprintf("인증번호: %s (5분 내에 입력해 주세요)", otpCode),
	}

	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequest("POST", c.baseURL+"/v1/mail/send", bytes.NewBuffer(body))
	if err != nil {
		return err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return errors.New("mail API returned non-OK status: " + resp.Status)
	}

	var apiResp SendMailResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return err
	}
	if apiResp.Status != "success" {
		return errors.New("mail API rejected the message: " + apiResp.Message)
	}

	return nil
}
