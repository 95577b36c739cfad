package inspection

import (
	"time"

	"sourcing-erp/models/order"
	"sourcing-erp/models/user"

	"github.com/shopspring/decimal"
)

// InspectionApplication represents a factory/pre-shipment inspection order
type InspectionApplication struct {
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
	FactoryAddress string  `gorm:"type:text;not null" json:"factory_address"`
	FactoryContact *string `gorm:"type:varchar(255)" json:"factory_contact,omitempty"`

	ProductName     string     `gorm:"type:varchar(255);not null" json:"product_name"`
	Quantity        int        `gorm:"not null" json:"quantity"`
	InspectionDate  *time.Time `json:"inspection_date,omitempty"`
	InspectionItems *string    `gorm:"type:text" json:"inspection_items,omitempty"`

	InspectionItemsZh *string `gorm:"type:text" json:"inspection_items_zh,omitempty"`

	// Cost fields; total/vat/final are recomputed from unit price and days on save
	InspectionDays *int             `json:"inspection_days,omitempty"`
	UnitPrice      *decimal.Decimal `gorm:"type:decimal(18,2)" json:"unit_price,omitempty"`
	TotalCost      *decimal.Decimal `gorm:"type:decimal(18,2)" json:"total_cost,omitempty"`
	VAT            *decimal.Decimal `gorm:"column:vat;type:decimal(18,2)" json:"vat,omitempty"`
	FinalCost      *decimal.Decimal `gorm:"type:decimal(18,2)" json:"final_cost,omitempty"`

	ReportNotes *string `gorm:"type:text" json:"report_notes,omitempty"`

	Status        order.OrderStatus   `gorm:"type:varchar(20);not null" json:"status"`
	PaymentStatus order.PaymentStatus `gorm:"type:varchar(20);not null" json:"payment_status"`

	AssignedChineseStaffID *uint      `gorm:"index" json:"assigned_chinese_staff_id,omitempty"`
	AssignedChineseStaff   *user.User `gorm:"foreignKey:AssignedChineseStaffID" json:"assigned_chinese_staff,omitempty"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName sets the table name for the InspectionApplication model
func (InspectionApplication) TableName() string {
	return "inspection_applications"
}
