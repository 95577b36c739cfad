package sampling

import (
	"time"

	"sourcing-erp/models/order"
	"sourcing-erp/models/user"

	"github.com/shopspring/decimal"
)

// SamplingApplication represents a sample request, optionally linked to a
// market research row by id. The link is soft: it is not validated at write time.
type SamplingApplication struct {
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

	ProductName    string  `gorm:"type:varchar(255);not null" json:"product_name"`
	ProductURL     *string `gorm:"type:varchar(2048)" json:"product_url,omitempty"`
	SampleQuantity int     `gorm:"not null" json:"sample_quantity"`
	SampleSpec     *string `gorm:"type:text" json:"sample_spec,omitempty"`

	SampleSpecZh *string `gorm:"type:text" json:"sample_spec_zh,omitempty"`

	// Shipping destination for the samples
	ShippingAddressID *uint `gorm:"index" json:"shipping_address_id,omitempty"`

	SampleFee   *decimal.Decimal `gorm:"type:decimal(18,2)" json:"sample_fee,omitempty"`
	ShippingFee *decimal.Decimal `gorm:"type:decimal(18,2)" json:"shipping_fee,omitempty"`
	TotalFee    *decimal.Decimal `gorm:"type:decimal(18,2)" json:"total_fee,omitempty"`

	TrackingNumber *string `gorm:"type:varchar(100)" json:"tracking_number,omitempty"`

	Status        order.OrderStatus   `gorm:"type:varchar(20);not null" json:"status"`
	PaymentStatus order.PaymentStatus `gorm:"type:varchar(20);not null" json:"payment_status"`

	AssignedChineseStaffID *uint      `gorm:"index" json:"assigned_chinese_staff_id,omitempty"`
	AssignedChineseStaff   *user.User `gorm:"foreignKey:AssignedChineseStaffID" json:"assigned_chinese_staff,omitempty"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName sets the table name for the SamplingApplication model
func (SamplingApplication) TableName() string {
	return "sampling_applications"
}
