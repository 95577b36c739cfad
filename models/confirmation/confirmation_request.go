package confirmation

import "time"

// ConfirmationStatus tracks a customer's answer to a staff confirmation request
type ConfirmationStatus string

const (
	ConfirmationPending  ConfirmationStatus = "pending"
	ConfirmationApproved ConfirmationStatus = "approved"
	ConfirmationRejected ConfirmationStatus = "rejected"
)

func (cs ConfirmationStatus) IsValid() bool {
	switch cs {
	case ConfirmationPending, ConfirmationApproved, ConfirmationRejected:
		return true
	default:
		return false
	}
}

// ConfirmationRequest is raised by staff against an order row and answered by
// the customer (quote confirmation, spec change approval, etc.)
type ConfirmationRequest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	ServiceType       string `gorm:"type:varchar(50);not null;index" json:"service_type"`
	ReservationNumber string `gorm:"type:varchar(50);not null;index" json:"reservation_number"`

	RequestedByID uint   `gorm:"not null;index" json:"requested_by_id"`
	CustomerID    uint   `gorm:"not null;index" json:"customer_id"`
	Title         string `gorm:"type:varchar(255);not null" json:"title"`
	Message       string `gorm:"type:text;not null" json:"message"`

	Status      ConfirmationStatus `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	RespondedAt *time.Time         `json:"responded_at,omitempty"`
	Response    *string            `gorm:"type:text" json:"response,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the ConfirmationRequest model
func (ConfirmationRequest) TableName() string {
	return "confirmation_requests"
}
