package sampling

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type CreateRequest struct {
	CompanyName   string `json:"company_name"`
	ContactPerson string `json:"contact_person"`
	ContactPhone  string `json:"contact_phone"`
	ContactEmail  string `json:"contact_email"`

	MarketResearchID  *uint  `json:"market_research_id"`
	ProductName       string `json:"product_name"`
	ProductURL        string `json:"product_url"`
	SampleQuantity    int    `json:"sample_quantity"`
	SampleSpec        string `json:"sample_spec"`
	ShippingAddressID *uint  `json:"shipping_address_id"`
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
	if r.SampleQuantity <= 0 {
		return fmt.Errorf("sampleQuantity must be greater than zero")
	}
	return nil
}

type StaffUpdateRequest struct {
	SampleFee      *decimal.Decimal `json:"sample_fee"`
	ShippingFee    *decimal.Decimal `json:"shipping_fee"`
	TrackingNumber *string          `json:"tracking_number"`
}
