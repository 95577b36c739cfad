package otp

import (
	"testing"
	"time"

	"sourcing-erp/httpServices/email"
	"sourcing-erp/models/otp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupOTPTest(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(&otp.OTP{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &Service{DB: db, MailClient: email.NewClient("")}
}

func TestSendOTPCreatesRecord(t *testing.T) {
	svc := setupOTPTest(t)

	record, err := svc.SendOTP("kim@example.com", otp.OTPPurposeSignupEmail)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Len(t, record.OTPCode, 6)
	assert.False(t, record.IsUsed)
	assert.True(t, record.ExpiresAt.After(time.Now()))
}

func TestSendOTPReturnsStillValidCode(t *testing.T) {
	svc := setupOTPTest(t)

	first, err := svc.SendOTP("kim@example.com", otp.OTPPurposeSignupEmail)
	require.NoError(t, err)

	second, err := svc.SendOTP("kim@example.com", otp.OTPPurposeSignupEmail)
	require.NoError(t, err)

	assert.Equal(t, first.OTPCode, second.OTPCode)
}

func TestVerifyOTPSuccess(t *testing.T) {
	svc := setupOTPTest(t)

	record, err := svc.SendOTP("kim@example.com", otp.OTPPurposeSignupEmail)
	require.NoError(t, err)

	valid, err := svc.VerifyOTP("kim@example.com", record.OTPCode, otp.OTPPurposeSignupEmail)
	require.NoError(t, err)
	assert.True(t, valid)

	// A consumed code cannot be replayed
	valid, err = svc.VerifyOTP("kim@example.com", record.OTPCode, otp.OTPPurposeSignupEmail)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestVerifyOTPRetryBlocking(t *testing.T) {
	svc := setupOTPTest(t)

	_, err := svc.SendOTP("kim@example.com", otp.OTPPurposeSignupEmail)
	require.NoError(t, err)

	// Three wrong attempts exhaust the retries
	for i := 0; i < 3; i++ {
		valid, verifyErr := svc.VerifyOTP("kim@example.com", "000000", otp.OTPPurposeSignupEmail)
		assert.False(t, valid)
		assert.Error(t, verifyErr)
	}

	// The fourth attempt reports the block rather than a retry count
	valid, err := svc.VerifyOTP("kim@example.com", "000000", otp.OTPPurposeSignupEmail)
	assert.False(t, valid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked")
}

func TestVerifyOTPUnknownEmail(t *testing.T) {
	svc := setupOTPTest(t)

	valid, err := svc.VerifyOTP("nobody@example.com", "123456", otp.OTPPurposeSignupEmail)
	require.NoError(t, err)
	assert.False(t, valid)
}
