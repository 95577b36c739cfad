package market_research

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type CreateRequest struct {
	CompanyName   string `json:"company_name"`
	ContactPerson string `json:"contact_person"`
	ContactPhone  string `json:"contact_phone"`
	ContactEmail  string `json:"contact_email"`

	ProductName     string           `json:"product_name"`
	ProductURL      string           `json:"product_url"`
	Category        string           `json:"category"`
	TargetQuantity  int              `json:"target_quantity"`
	TargetUnitPrice *decimal.Decimal `json:"target_unit_price"`
	Requirements    string           `json:"requirements"`
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
	if r.ProductName == "" {
		return fmt.Errorf("productName is required")
	}
	if r.TargetQuantity <= 0 {
		return fmt.Errorf("targetQuantity must be greater than zero")
	}
	return nil
}

// StaffUpdateRequest carries quote inputs; derived fields (CBM, shipping
// method, fees, VAT, totals) are never accepted from the client and are
// recomputed wholesale on save.
type StaffUpdateRequest struct {
	ChinaUnitPrice *decimal.Decimal `json:"china_unit_price"`
	KoreaUnitPrice *decimal.Decimal `json:"korea_unit_price"`
	ExchangeRate   *decimal.Decimal `json:"exchange_rate"`
	BoxQuantity    *int             `json:"box_quantity"`
	BoxLengthCm    *float64         `json:"box_length_cm"`
	BoxWidthCm     *float64         `json:"box_width_cm"`
	BoxHeightCm    *float64         `json:"box_height_cm"`
	ResearchNotes  *string          `json:"research_notes"`
}
