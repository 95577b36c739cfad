package factory_contact

import (
	"time"

	"sourcing-erp/models/order"
	"sourcing-erp/models/user"

	"github.com/shopspring/decimal"
)

// FactoryContactRequest represents a request to reach out to a Chinese factory
type FactoryContactRequest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	ReservationNumber string `gorm:"type:varchar(50);not null;unique" json:"reservation_number"`

	// Foreign key for users relationship
	UserID uint      `gorm:"not null;index" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"user"`

	CompanyName   string `gorm:"type:varchar(255);not null" json:"company_name"`
	ContactPerson string `gorm:"type:varchar(255);not null" json:"contact_person"`
	ContactPhone  string `gorm:"type:varchar(20);not null" json:"contact_phone"`
	ContactEmail  string `gorm:"type:varchar(255);not null" json:"contact_email"`

	FactoryName    string  `gorm:"type:varchar(255);not null" json:"factory_name"`
	FactoryURL     *string `gorm:"type:varchar(2048)" json:"factory_url,omitempty"`
	FactoryContact *string `gorm:"type:varchar(255)" json:"factory_contact,omitempty"`

	ProductName    string           `gorm:"type:varchar(255);not null" json:"product_name"`
	TargetQuantity *int             `json:"target_quantity,omitempty"`
	TargetPrice    *decimal.Decimal `gorm:"type:decimal(18,2)" json:"target_price,omitempty"`
	Inquiry        string           `gorm:"type:text;not null" json:"inquiry"`

	InquiryZh *string `gorm:"type:text" json:"inquiry_zh,omitempty"`

	// Staff-filled outcome of the contact
	ContactResult *string `gorm:"type:text" json:"contact_result,omitempty"`

	Status        order.OrderStatus   `gorm:"type:varchar(20);not null" json:"status"`
	PaymentStatus order.PaymentStatus `gorm:"type:varchar(20);not null" json:"payment_status"`

	AssignedChineseStaffID *uint      `gorm:"index" json:"assigned_chinese_staff_id,omitempty"`
	AssignedChineseStaff   *user.User `gorm:"foreignKey:AssignedChineseStaffID" json:"assigned_chinese_staff,omitempty"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName sets the table name for the FactoryContactRequest model
func (FactoryContactRequest) TableName() string {
	return "factory_contact_requests"
}
