package market_research

import (
	"time"

	"sourcing-erp/models/order"
	"sourcing-erp/models/user"

	"github.com/shopspring/decimal"
)

// MarketResearchRequest represents a market research order submitted by a customer
type MarketResearchRequest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	ReservationNumber string `gorm:"type:varchar(50);not null;unique" json:"reservation_number"`

	// Foreign key for users relationship
	UserID uint      `gorm:"not null;index" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"user"`

	CompanyName   string `gorm:"type:varchar(255);not null" json:"company_name"`
	ContactPerson string `gorm:"type:varchar(255);not null" json:"contact_person"`
	ContactPhone  string `gorm:"type:varchar(20);not null" json:"contact_phone"`
	ContactEmail  string `gorm:"type:varchar(255);not null" json:"contact_email"`

	ProductName     string           `gorm:"type:varchar(255);not null" json:"product_name"`
	ProductURL      *string          `gorm:"type:varchar(2048)" json:"product_url,omitempty"`
	Category        *string          `gorm:"type:varchar(100)" json:"category,omitempty"`
	TargetQuantity  int              `gorm:"not null" json:"target_quantity"`
	TargetUnitPrice *decimal.Decimal `gorm:"type:decimal(18,2)" json:"target_unit_price,omitempty"`
	Requirements    *string          `gorm:"type:text" json:"requirements,omitempty"`

	// Translated copies of the free-text fields, filled in best-effort
	ProductNameZh  *string `gorm:"type:varchar(255)" json:"product_name_zh,omitempty"`
	RequirementsZh *string `gorm:"type:text" json:"requirements_zh,omitempty"`

	// Quote fields filled in by staff; derived values are recomputed on every save
	ChinaUnitPrice *decimal.Decimal `gorm:"type:decimal(18,2)" json:"china_unit_price,omitempty"`
	KoreaUnitPrice *decimal.Decimal `gorm:"type:decimal(18,2)" json:"korea_unit_price,omitempty"`
	ExchangeRate   *decimal.Decimal `gorm:"type:decimal(18,4)" json:"exchange_rate,omitempty"`
	BoxQuantity    *int             `json:"box_quantity,omitempty"`
	BoxLengthCm    *float64         `json:"box_length_cm,omitempty"`
	BoxWidthCm     *float64         `json:"box_width_cm,omitempty"`
	BoxHeightCm    *float64         `json:"box_height_cm,omitempty"`

	TotalCBM       *decimal.Decimal `gorm:"type:decimal(18,6)" json:"total_cbm,omitempty"`
	ShippingMethod *string          `gorm:"type:varchar(10)" json:"shipping_method,omitempty"`
	LCLShippingFee *decimal.Decimal `gorm:"column:lcl_shipping_fee;type:decimal(18,2)" json:"lcl_shipping_fee,omitempty"`
	Commission     *decimal.Decimal `gorm:"type:decimal(18,2)" json:"commission,omitempty"`
	ImportVAT      *decimal.Decimal `gorm:"column:import_vat;type:decimal(18,2)" json:"import_vat,omitempty"`
	ExpectedTotal  *decimal.Decimal `gorm:"type:decimal(18,2)" json:"expected_total,omitempty"`

	ResearchNotes *string `gorm:"type:text" json:"research_notes,omitempty"`

	Status        order.OrderStatus   `gorm:"type:varchar(20);not null" json:"status"`
	PaymentStatus order.PaymentStatus `gorm:"type:varchar(20);not null" json:"payment_status"`

	// Foreign key for assigned chinese staff relationship
	AssignedChineseStaffID *uint      `gorm:"index" json:"assigned_chinese_staff_id,omitempty"`
	AssignedChineseStaff   *user.User `gorm:"foreignKey:AssignedChineseStaffID" json:"assigned_chinese_staff,omitempty"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName sets the table name for the MarketResearchRequest model
func (MarketResearchRequest) TableName() string {
	return "market_research_requests"
}
