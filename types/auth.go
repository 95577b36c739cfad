package types

import (
	"fmt"
	"strings"
)

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	LegalName   string `json:"legal_name"`
	Phone       string `json:"phone"`
	CompanyName string `json:"company_name"`
}

func (r RegisterRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(r.Email, "@") {
		return fmt.Errorf("email is not valid")
	}
	if len(r.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	if r.LegalName == "" {
		return fmt.Errorf("legalName is required")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

type VerifyEmailRequest struct {
	Email   string `json:"email"`
	OTPCode string `json:"otp_code"`
}

func (r VerifyEmailRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.OTPCode == "" {
		return fmt.Errorf("otpCode is required")
	}
	return nil
}

type ResendOTPRequest struct {
	Email string `json:"email"`
}

// OAuthCallbackRequest carries the provider redirect back into the API.
// ReturnURL is echoed to the frontend after token issuance.
type OAuthCallbackRequest struct {
	Code      string `json:"code" query:"code"`
	ReturnURL string `json:"returnUrl" query:"returnUrl"`
}

func (r OAuthCallbackRequest) Validate() error {
	if r.Code == "" {
		return fmt.Errorf("code is required")
	}
	return nil
}
