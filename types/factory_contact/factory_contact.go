package factory_contact

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type CreateRequest struct {
	CompanyName   string `json:"company_name"`
	ContactPerson string `json:"contact_person"`
	ContactPhone  string `json:"contact_phone"`
	ContactEmail  string `json:"contact_email"`

	FactoryName    string           `json:"factory_name"`
	FactoryURL     string           `json:"factory_url"`
	FactoryContact string           `json:"factory_contact"`
	ProductName    string           `json:"product_name"`
	TargetQuantity *int             `json:"target_quantity"`
	TargetPrice    *decimal.Decimal `json:"target_price"`
	Inquiry        string           `json:"inquiry"`
}

// Validate runs before any database write; a failure must leave no row behind
func (r CreateRequest) Validate() error {
	if r.CompanyName == "" {
		return fmt.Errorf("companyName is required")
	}
	if r.ContactPerson == "" {
		return fmt.Errorf("contactPerson is required")
	}
	if r.ContactPhone == "" {
		return fmt.Errorf("contactPhone is required")
	}
	if r.ContactEmail == "" {
		return fmt.Errorf("contactEmail is required")
	}
	if r.FactoryName == "" {
		return fmt.Errorf("factoryName is required")
	}
	if r.ProductName == "" {
		return fmt.Errorf("productName is required")
	}
	if r.Inquiry == "" {
		return fmt.Errorf("inquiry is required")
	}
	return nil
}

type StaffUpdateRequest struct {
	ContactResult *string `json:"contact_result"`
}
