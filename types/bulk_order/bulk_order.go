package bulk_order

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
	Quantity          int    `json:"quantity"`
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
	if r.Quantity <= 0 {
		return fmt.Errorf("quantity must be greater than zero")
	}
	return nil
}

// StaffUpdateRequest carries pricing inputs; CBM, shipping method, LCL fee,
// commission, import VAT and expected total are recomputed wholesale on save.
type StaffUpdateRequest struct {
	ChinaUnitPrice *decimal.Decimal `json:"china_unit_price"`
	KoreaUnitPrice *decimal.Decimal `json:"korea_unit_price"`
	ExchangeRate   *decimal.Decimal `json:"exchange_rate"`
	BoxQuantity    *int             `json:"box_quantity"`
	BoxLengthCm    *float64         `json:"box_length_cm"`
	BoxWidthCm     *float64         `json:"box_width_cm"`
	BoxHeightCm    *float64         `json:"box_height_cm"`
	HSCode         *string          `json:"hs_code"`
	Incoterms      *string          `json:"incoterms"`
	CustomsMemo    *string          `json:"customs_memo"`
}
