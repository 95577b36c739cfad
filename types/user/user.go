package user

import "fmt"

// ProfileUpdateRequest carries the self-service editable profile fields
type ProfileUpdateRequest struct {
	LegalName   string `json:"legal_name"`
	Phone       string `json:"phone"`
	CompanyName string `json:"company_name"`
	Avatar      string `json:"avatar"`
}

func (r ProfileUpdateRequest) Validate() error {
	if r.LegalName == "" {
		return fmt.Errorf("legalName is required")
	}
	return nil
}
