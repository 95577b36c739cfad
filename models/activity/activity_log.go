package activity

import "time"

// Actions recorded in activity_logs
const (
	ActionCreated         = "created"
	ActionUpdated         = "updated"
	ActionStatusChanged   = "status_changed"
	ActionPaymentChanged  = "payment_changed"
	ActionStaffAssigned   = "staff_assigned"
	ActionFileUploaded    = "file_uploaded"
	ActionConfirmResolved = "confirmation_resolved"
)

// ActivityLog is an append-only record of user and staff actions on order rows
type ActivityLog struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	UserID            *uint  `gorm:"index" json:"user_id,omitempty"`
	ServiceType       string `gorm:"type:varchar(50);index" json:"service_type"`
	ReservationNumber string `gorm:"type:varchar(50);index" json:"reservation_number"`

	Action  string `gorm:"type:varchar(50);not null" json:"action"`
	Details string `gorm:"type:text" json:"details"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the ActivityLog model
func (ActivityLog) TableName() string {
	return "activity_logs"
}
