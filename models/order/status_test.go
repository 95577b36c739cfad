package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{StatusSubmitted, StatusQuoted, true},
		{StatusSubmitted, StatusCancelled, true},
		{StatusSubmitted, StatusPaid, false},
		{StatusSubmitted, StatusCompleted, false},

		{StatusQuoted, StatusPaid, true},
		{StatusQuoted, StatusInProgress, true},
		{StatusQuoted, StatusCancelled, true},
		{StatusQuoted, StatusSubmitted, false},
		{StatusQuoted, StatusCompleted, false},

		{StatusPaid, StatusInProgress, true},
		{StatusPaid, StatusCancelled, true},
		{StatusPaid, StatusQuoted, false},
		{StatusPaid, StatusCompleted, false},

		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusCancelled, true},
		{StatusInProgress, StatusPaid, false},

		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusInProgress, false},
		{StatusCancelled, StatusSubmitted, false},
		{StatusCancelled, StatusQuoted, false},
	}

	for _, tt := range tests {
		got := CanTransition(tt.from, tt.to)
		assert.Equal(t, tt.allowed, got, "%s -> %s", tt.from, tt.to)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusSubmitted.IsTerminal())
	assert.False(t, StatusQuoted.IsTerminal())
	assert.False(t, StatusPaid.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
}

func TestStatusIsValid(t *testing.T) {
	for _, status := range GetAllOrderStatuses() {
		assert.True(t, status.IsValid())
	}
	assert.False(t, OrderStatus("shipped").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestPaymentStatusIsValid(t *testing.T) {
	assert.True(t, PaymentPending.IsValid())
	assert.True(t, PaymentNotRequired.IsValid())
	assert.True(t, PaymentPaid.IsValid())
	assert.False(t, PaymentStatus("refunded").IsValid())
}

func TestServiceTypeFromReservation(t *testing.T) {
	tests := []struct {
		number string
		want   ServiceType
		ok     bool
	}{
		{"MR-20260315-123456", ServiceMarketResearch, true},
		{"SA-20260315-123456", ServiceSampling, true},
		{"FC-20260315-123456", ServiceFactoryContact, true},
		{"IN-20260315-123456", ServiceInspection, true},
		{"BO-20260315-123456", ServiceBulkOrder, true},
		{"XX-20260315-123456", "", false},
		{"nodash", "", false},
	}

	for _, tt := range tests {
		got, ok := ServiceTypeFromReservation(tt.number)
		assert.Equal(t, tt.ok, ok, tt.number)
		assert.Equal(t, tt.want, got, tt.number)
	}
}
