package lifecycle

import (
	"testing"

	"sourcing-erp/logger"
	"sourcing-erp/models/activity"
	"sourcing-erp/models/market_research"
	"sourcing-erp/models/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupLifecycleTest(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	err = db.AutoMigrate(
		&market_research.MarketResearchRequest{},
		&order.StatusEvent{},
		&activity.ActivityLog{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return NewService(db, logger.NewAsyncLogger(db)), db
}

func createTestRequest(t *testing.T, db *gorm.DB, status order.OrderStatus) string {
	request := market_research.MarketResearchRequest{
		ReservationNumber: "MR-20260315-123456",
		UserID:            1,
		CompanyName:       "Acme Trading",
		ContactPerson:     "Kim",
		ContactPhone:      "010-0000-0000",
		ContactEmail:      "kim@example.com",
		ProductName:       "LED strip",
		TargetQuantity:    1000,
		Status:            status,
		PaymentStatus:     order.PaymentPending,
	}
	require.NoError(t, db.Create(&request).Error)
	return request.ReservationNumber
}

func TestChangeStatusAllowed(t *testing.T) {
	svc, db := setupLifecycleTest(t)
	number := createTestRequest(t, db, order.StatusSubmitted)

	err := svc.ChangeStatus(order.ServiceMarketResearch, number, order.StatusQuoted, "staff@example.com", false)
	require.NoError(t, err)

	var request market_research.MarketResearchRequest
	require.NoError(t, db.Where("reservation_number = ?", number).First(&request).Error)
	assert.Equal(t, order.StatusQuoted, request.Status)

	events, err := svc.Events(number)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, order.StatusSubmitted, events[0].FromStatus)
	assert.Equal(t, order.StatusQuoted, events[0].ToStatus)
	assert.False(t, events[0].Forced)
	assert.Equal(t, "staff@example.com", events[0].CreatedBy)
}

func TestChangeStatusForbidden(t *testing.T) {
	svc, db := setupLifecycleTest(t)
	number := createTestRequest(t, db, order.StatusSubmitted)

	err := svc.ChangeStatus(order.ServiceMarketResearch, number, order.StatusCompleted, "staff@example.com", false)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// The row must be untouched and no event recorded
	var request market_research.MarketResearchRequest
	require.NoError(t, db.Where("reservation_number = ?", number).First(&request).Error)
	assert.Equal(t, order.StatusSubmitted, request.Status)

	events, err := svc.Events(number)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestChangeStatusForced(t *testing.T) {
	svc, db := setupLifecycleTest(t)
	number := createTestRequest(t, db, order.StatusSubmitted)

	err := svc.ChangeStatus(order.ServiceMarketResearch, number, order.StatusCompleted, "admin@example.com", true)
	require.NoError(t, err)

	events, err := svc.Events(number)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].Forced)
}

func TestChangeStatusUnknownStatus(t *testing.T) {
	svc, db := setupLifecycleTest(t)
	number := createTestRequest(t, db, order.StatusSubmitted)

	// Even forced transitions refuse statuses outside the enum
	err := svc.ChangeStatus(order.ServiceMarketResearch, number, order.OrderStatus("shipped"), "admin@example.com", true)
	assert.Error(t, err)
}

func TestChangeStatusNotFound(t *testing.T) {
	svc, _ := setupLifecycleTest(t)

	err := svc.ChangeStatus(order.ServiceMarketResearch, "MR-20260315-999999", order.StatusQuoted, "staff@example.com", false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetPaymentStatus(t *testing.T) {
	svc, db := setupLifecycleTest(t)
	number := createTestRequest(t, db, order.StatusQuoted)

	err := svc.SetPaymentStatus(order.ServiceMarketResearch, number, order.PaymentPaid, "staff@example.com")
	require.NoError(t, err)

	var request market_research.MarketResearchRequest
	require.NoError(t, db.Where("reservation_number = ?", number).First(&request).Error)
	assert.Equal(t, order.PaymentPaid, request.PaymentStatus)

	// Order status is untouched by payment updates
	assert.Equal(t, order.StatusQuoted, request.Status)
}

func TestSetPaymentStatusUnknown(t *testing.T) {
	svc, db := setupLifecycleTest(t)
	number := createTestRequest(t, db, order.StatusQuoted)

	err := svc.SetPaymentStatus(order.ServiceMarketResearch, number, order.PaymentStatus("refunded"), "staff@example.com")
	assert.Error(t, err)
}
