package assignment

import (
	"errors"
	"fmt"

	"sourcing-erp/logger"
	"sourcing-erp/models/activity"
	"sourcing-erp/models/order"
	"sourcing-erp/models/user"

	"gorm.io/gorm"
)

// Service assigns newly created orders to Chinese-side staff
type Service struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewService(db *gorm.DB, asyncLogger *logger.AsyncLogger) *Service {
	return &Service{DB: db, Logger: asyncLogger}
}

// AutoAssign picks the first approved chinese_staff profile and writes it to
// the row. Best-effort: when no staff profile exists the order simply stays
// unassigned and no error reaches the caller.
func (s *Service) AutoAssign(serviceType order.ServiceType, reservationNumber string) {
	var staff user.User
	err := s.DB.Where("role = ? AND approved = ?", user.RoleChineseStaff, true).
		Order("id ASC").
		First(&staff).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("Failed to look up chinese staff for assignment", err)
		}
		return
	}

	result := s.DB.Table(serviceType.Table()).
		Where("reservation_number = ?", reservationNumber).
		Update("assigned_chinese_staff_id", staff.ID)
	if result.Error != nil {
		logger.Error("Failed to assign chinese staff", result.Error)
		return
	}

	s.Logger.Log(activity.ActivityLog{
		ServiceType:       serviceType.String(),
		ReservationNumber: reservationNumber,
		Action:            activity.ActionStaffAssigned,
		Details:           fmt.Sprintf("assigned to staff #%d (%s)", staff.ID, staff.Email),
	})
}
