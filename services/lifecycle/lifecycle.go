package lifecycle

import (
	"errors"
	"fmt"

	"sourcing-erp/logger"
	"sourcing-erp/models/activity"
	"sourcing-erp/models/order"

	"gorm.io/gorm"
)

// ErrInvalidTransition is returned when the transition table forbids a move
// and the caller did not (or may not) force it.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrNotFound is returned when no row matches the reservation number
var ErrNotFound = errors.New("order record not found")

// Service applies status transitions uniformly across the five order tables
type Service struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewService(db *gorm.DB, asyncLogger *logger.AsyncLogger) *Service {
	return &Service{DB: db, Logger: asyncLogger}
}

// ChangeStatus validates and applies a transition on the row identified by
// reservation number. force bypasses the transition table (admin override)
// but still refuses unknown statuses and records the event as forced.
func (s *Service) ChangeStatus(serviceType order.ServiceType, reservationNumber string, target order.OrderStatus, actor string, force bool) error {
	if !target.IsValid() {
		return fmt.Errorf("unknown status %q", target)
	}
	if !serviceType.IsValid() {
		return fmt.Errorf("unknown service type %q", serviceType)
	}

	current, err := s.currentStatus(serviceType, reservationNumber)
	if err != nil {
		return err
	}

	if !force && !order.CanTransition(current, target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, target)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Table(serviceType.Table()).
			Where("reservation_number = ?", reservationNumber).
			Update("status", target)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		event := order.StatusEvent{
			ServiceType:       serviceType,
			ReservationNumber: reservationNumber,
			FromStatus:        current,
			ToStatus:          target,
			Forced:            force,
			CreatedBy:         actor,
		}
		if err := tx.Create(&event).Error; err != nil {
			return err
		}

		s.Logger.Log(activity.ActivityLog{
			ServiceType:       serviceType.String(),
			ReservationNumber: reservationNumber,
			Action:            activity.ActionStatusChanged,
			Details:           fmt.Sprintf("%s -> %s by %s", current, target, actor),
		})
		return nil
	})
}

// SetPaymentStatus writes the billing axis. It is intentionally free of
// transition rules: billing state follows external payment events.
func (s *Service) SetPaymentStatus(serviceType order.ServiceType, reservationNumber string, target order.PaymentStatus, actor string) error {
	if !target.IsValid() {
		return fmt.Errorf("unknown payment status %q", target)
	}

	result := s.DB.Table(serviceType.Table()).
		Where("reservation_number = ?", reservationNumber).
		Update("payment_status", target)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	s.Logger.Log(activity.ActivityLog{
		ServiceType:       serviceType.String(),
		ReservationNumber: reservationNumber,
		Action:            activity.ActionPaymentChanged,
		Details:           fmt.Sprintf("payment_status set to %s by %s", target, actor),
	})
	return nil
}

// Events returns the transition history for a reservation number, oldest first
func (s *Service) Events(reservationNumber string) ([]order.StatusEvent, error) {
	var events []order.StatusEvent
	err := s.DB.Where("reservation_number = ?", reservationNumber).
		Order("created_at ASC").
		Find(&events).Error
	return events, err
}

func (s *Service) currentStatus(serviceType order.ServiceType, reservationNumber string) (order.OrderStatus, error) {
	var row struct {
		Status order.OrderStatus
	}
	err := s.DB.Table(serviceType.Table()).
		Select("status").
		Where("reservation_number = ?", reservationNumber).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return row.Status, nil
}
