package address

import "time"

// ShippingAddress is a delivery destination saved by a customer
type ShippingAddress struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	UserID uint `gorm:"not null;index" json:"user_id"`

	Label         string  `gorm:"type:varchar(100);not null" json:"label"`
	RecipientName string  `gorm:"type:varchar(255);not null" json:"recipient_name"`
	Phone         string  `gorm:"type:varchar(20);not null" json:"phone"`
	PostalCode    string  `gorm:"type:varchar(20);not null" json:"postal_code"`
	Address1      string  `gorm:"type:varchar(255);not null" json:"address1"`
	Address2      *string `gorm:"type:varchar(255)" json:"address2,omitempty"`
	IsDefault     bool    `gorm:"default:false" json:"is_default"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the ShippingAddress model
func (ShippingAddress) TableName() string {
	return "shipping_addresses"
}

// CompanyAddress is the registered business address on a customer profile
type CompanyAddress struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	UserID uint `gorm:"not null;index" json:"user_id"`

	CompanyName        string  `gorm:"type:varchar(255);not null" json:"company_name"`
	BusinessNumber     *string `gorm:"type:varchar(50)" json:"business_number,omitempty"`
	RepresentativeName *string `gorm:"type:varchar(255)" json:"representative_name,omitempty"`
	PostalCode         string  `gorm:"type:varchar(20);not null" json:"postal_code"`
	Address1           string  `gorm:"type:varchar(255);not null" json:"address1"`
	Address2           *string `gorm:"type:varchar(255)" json:"address2,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the CompanyAddress model
func (CompanyAddress) TableName() string {
	return "company_addresses"
}
