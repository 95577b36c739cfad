package order

import (
	"time"
)

// StatusEvent represents a single status transition applied to an order record
type StatusEvent struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	ServiceType       ServiceType `gorm:"type:varchar(50);not null;index" json:"service_type"`
	ReservationNumber string      `gorm:"type:varchar(50);not null;index" json:"reservation_number"`

	FromStatus OrderStatus `gorm:"type:varchar(20);not null" json:"from_status"`
	ToStatus   OrderStatus `gorm:"type:varchar(20);not null" json:"to_status"`
	Forced     bool        `gorm:"default:false" json:"forced"`

	CreatedBy string    `gorm:"type:varchar(255);not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the StatusEvent model
func (StatusEvent) TableName() string {
	return "order_status_events"
}
