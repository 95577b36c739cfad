package bulk_order

import (
	"time"

	"sourcing-erp/models/order"
	"sourcing-erp/models/user"

	"github.com/shopspring/decimal"
)

// BulkOrder represents a bulk procurement order, optionally linked to the
// market research row it originated from. The link is soft and not validated.
type BulkOrder struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	ReservationNumber string `gorm:"type:varchar(50);not null;unique" json:"reservation_number"`

	// Foreign key for users relationship
	UserID uint      `gorm:"not null;index" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"user"`

	MarketResearchID *uint `gorm:"index" json:"market_research_id,omitempty"`

	CompanyName   string `gorm:"type:varchar(255);not null" json:"company_name"`
	ContactPerson string `gorm:"type:varchar(255);not null" json:"contact_person"`
	ContactPhone  string `gorm:"type:varchar(20);not null" json:"contact_phone"`
	ContactEmail  string `gorm:"type:varchar(255);not null" json:"contact_email"`

	ProductName string `gorm:"type:varchar(255);not null" json:"product_name"`
	Quantity    int    `gorm:"not null" json:"quantity"`

	ProductNameZh *string `gorm:"type:varchar(255)" json:"product_name_zh,omitempty"`

	ChinaUnitPrice *decimal.Decimal `gorm:"type:decimal(18,2)" json:"china_unit_price,omitempty"`
	KoreaUnitPrice *decimal.Decimal `gorm:"type:decimal(18,2)" json:"korea_unit_price,omitempty"`
	ExchangeRate   *decimal.Decimal `gorm:"type:decimal(18,4)" json:"exchange_rate,omitempty"`

	BoxQuantity *int     `json:"box_quantity,omitempty"`
	BoxLengthCm *float64 `json:"box_length_cm,omitempty"`
	BoxWidthCm  *float64 `json:"box_width_cm,omitempty"`
	BoxHeightCm *float64 `json:"box_height_cm,omitempty"`

	TotalCBM       *decimal.Decimal `gorm:"type:decimal(18,6)" json:"total_cbm,omitempty"`
	ShippingMethod *string          `gorm:"type:varchar(10)" json:"shipping_method,omitempty"`
	LCLShippingFee *decimal.Decimal `gorm:"column:lcl_shipping_fee;type:decimal(18,2)" json:"lcl_shipping_fee,omitempty"`
	Commission     *decimal.Decimal `gorm:"type:decimal(18,2)" json:"commission,omitempty"`
	ImportVAT      *decimal.Decimal `gorm:"column:import_vat;type:decimal(18,2)" json:"import_vat,omitempty"`
	ExpectedTotal  *decimal.Decimal `gorm:"type:decimal(18,2)" json:"expected_total,omitempty"`

	// Customs fields
	HSCode      *string `gorm:"column:hs_code;type:varchar(20)" json:"hs_code,omitempty"`
	Incoterms   *string `gorm:"type:varchar(10)" json:"incoterms,omitempty"`
	CustomsMemo *string `gorm:"type:text" json:"customs_memo,omitempty"`

	ShippingAddressID *uint `gorm:"index" json:"shipping_address_id,omitempty"`

	Status        order.OrderStatus   `gorm:"type:varchar(20);not null" json:"status"`
	PaymentStatus order.PaymentStatus `gorm:"type:varchar(20);not null" json:"payment_status"`

	AssignedChineseStaffID *uint      `gorm:"index" json:"assigned_chinese_staff_id,omitempty"`
	AssignedChineseStaff   *user.User `gorm:"foreignKey:AssignedChineseStaffID" json:"assigned_chinese_staff,omitempty"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName sets the table name for the BulkOrder model
func (BulkOrder) TableName() string {
	return "bulk_orders"
}
