package assignment

import (
	"testing"

	"sourcing-erp/logger"
	"sourcing-erp/models/activity"
	"sourcing-erp/models/order"
	"sourcing-erp/models/sampling"
	"sourcing-erp/models/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAssignmentTest(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	err = db.AutoMigrate(&user.User{}, &sampling.SamplingApplication{}, &activity.ActivityLog{})
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return NewService(db, logger.NewAsyncLogger(db)), db
}

func createSamplingRow(t *testing.T, db *gorm.DB, number string) {
	app := sampling.SamplingApplication{
		ReservationNumber: number,
		UserID:            1,
		CompanyName:       "Acme Trading",
		ContactPerson:     "Kim",
		ContactPhone:      "010-0000-0000",
		ContactEmail:      "kim@example.com",
		ProductName:       "LED strip",
		SampleQuantity:    3,
		Status:            order.StatusSubmitted,
		PaymentStatus:     order.PaymentPending,
	}
	require.NoError(t, db.Create(&app).Error)
}

func TestAutoAssignPicksFirstApprovedChineseStaff(t *testing.T) {
	svc, db := setupAssignmentTest(t)

	// Unapproved staff and other roles must be skipped
	require.NoError(t, db.Create(&user.User{
		Uuid: "u1", Email: "pending@example.com", Role: user.RoleChineseStaff, Approved: false,
	}).Error)
	require.NoError(t, db.Create(&user.User{
		Uuid: "u2", Email: "korean@example.com", Role: user.RoleKoreanStaff, Approved: true,
	}).Error)
	require.NoError(t, db.Create(&user.User{
		Uuid: "u3", Email: "zhang@example.com", Role: user.RoleChineseStaff, Approved: true,
	}).Error)
	require.NoError(t, db.Create(&user.User{
		Uuid: "u4", Email: "li@example.com", Role: user.RoleChineseStaff, Approved: true,
	}).Error)

	createSamplingRow(t, db, "SA-20260315-123456")

	svc.AutoAssign(order.ServiceSampling, "SA-20260315-123456")

	var app sampling.SamplingApplication
	require.NoError(t, db.Where("reservation_number = ?", "SA-20260315-123456").First(&app).Error)
	require.NotNil(t, app.AssignedChineseStaffID)

	var assigned user.User
	require.NoError(t, db.First(&assigned, *app.AssignedChineseStaffID).Error)
	assert.Equal(t, "zhang@example.com", assigned.Email)
}

func TestAutoAssignNoStaffAvailable(t *testing.T) {
	svc, db := setupAssignmentTest(t)

	createSamplingRow(t, db, "SA-20260315-654321")

	// Must not panic or error; the row stays unassigned
	svc.AutoAssign(order.ServiceSampling, "SA-20260315-654321")

	var app sampling.SamplingApplication
	require.NoError(t, db.Where("reservation_number = ?", "SA-20260315-654321").First(&app).Error)
	assert.Nil(t, app.AssignedChineseStaffID)
}
