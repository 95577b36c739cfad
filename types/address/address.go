package address

import "fmt"

type ShippingAddressRequest struct {
	Label         string `json:"label"`
	RecipientName string `json:"recipient_name"`
	Phone         string `json:"phone"`
	PostalCode    string `json:"postal_code"`
	Address1      string `json:"address1"`
	Address2      string `json:"address2"`
	IsDefault     bool   `json:"is_default"`
}

func (r ShippingAddressRequest) Validate() error {
	if r.RecipientName == "" {
		return fmt.Errorf("recipientName is required")
	}
	if r.Phone == "" {
		return fmt.Errorf("phone is required")
	}
	if r.PostalCode == "" {
		return fmt.Errorf("postalCode is required")
	}
	if r.Address1 == "" {
		return fmt.Errorf("address1 is required")
	}
	return nil
}

type CompanyAddressRequest struct {
	CompanyName        string `json:"company_name"`
	BusinessNumber     string `json:"business_number"`
	RepresentativeName string `json:"representative_name"`
	PostalCode         string `json:"postal_code"`
	Address1           string `json:"address1"`
	Address2           string `json:"address2"`
}

func (r CompanyAddressRequest) Validate() error {
	if r.CompanyName == "" {
		return fmt.Errorf("companyName is required")
	}
	if r.PostalCode == "" {
		return fmt.Errorf("postalCode is required")
	}
	if r.Address1 == "" {
		return fmt.Errorf("address1 is required")
	}
	return nil
}
