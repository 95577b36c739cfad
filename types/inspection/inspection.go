package inspection

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type CreateRequest struct {
	CompanyName   string `json:"company_name"`
	ContactPerson string `json:"contact_person"`
	ContactPhone  string `json:"contact_phone"`
	ContactEmail  string `json:"contact_email"`

	FactoryName     string     `json:"factory_name"`
	FactoryAddress  string     `json:"factory_address"`
	FactoryContact  string     `json:"factory_contact"`
	ProductName     string     `json:"product_name"`
	Quantity        int        `json:"quantity"`
	InspectionDate  *time.Time `json:"inspection_date"`
	InspectionItems string     `json:"inspection_items"`
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
	if r.FactoryAddress == "" {
		return fmt.Errorf("factoryAddress is required")
	}
	if r.ProductName == "" {
		return fmt.Errorf("productName is required")
	}
	if r.Quantity <= 0 {
		return fmt.Errorf("quantity must be greater than zero")
	}
	return nil
}

// StaffUpdateRequest carries cost inputs; total, vat and final cost are
// recomputed from unit price and inspection days on save.
type StaffUpdateRequest struct {
	InspectionDays *int             `json:"inspection_days"`
	UnitPrice      *decimal.Decimal `json:"unit_price"`
	ReportNotes    *string          `json:"report_notes"`
}
