package reservation

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"sourcing-erp/models/order"
	"sourcing-erp/models/sampling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var reservationPattern = regexp.MustCompile(`^[A-Z]{2}-\d{8}-\d{6}$`)

func TestGenerateFormat(t *testing.T) {
	at := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		serviceType order.ServiceType
		prefix      string
	}{
		{order.ServiceMarketResearch, "MR"},
		{order.ServiceSampling, "SA"},
		{order.ServiceFactoryContact, "FC"},
		{order.ServiceInspection, "IN"},
		{order.ServiceBulkOrder, "BO"},
	}

	for _, tt := range tests {
		number, err := Generate(tt.serviceType, at)
		require.NoError(t, err)

		assert.Regexp(t, reservationPattern, number)
		assert.True(t, strings.HasPrefix(number, tt.prefix+"-20260315-"), "got %s", number)
	}
}

func TestGenerateSuffixRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		number, err := Generate(order.ServiceBulkOrder, time.Now())
		require.NoError(t, err)

		parts := strings.Split(number, "-")
		require.Len(t, parts, 3)

		suffix, err := strconv.Atoi(parts[2])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, suffix, 100000)
		assert.LessOrEqual(t, suffix, 999999)
	}
}

func TestGenerateUnknownServiceType(t *testing.T) {
	_, err := Generate(order.ServiceType("unknown"), time.Now())
	assert.Error(t, err)
}

func TestGenerateUnique(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&sampling.SamplingApplication{}))

	number, err := GenerateUnique(db, order.ServiceSampling)
	require.NoError(t, err)
	assert.Regexp(t, reservationPattern, number)

	// A second call must not collide with the stored row
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

	second, err := GenerateUnique(db, order.ServiceSampling)
	require.NoError(t, err)
	assert.NotEqual(t, number, second)
}
