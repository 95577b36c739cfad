package otp

import (
	"time"
)

// OTP represents a one-time code record for email verification
type OTP struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email         string     `gorm:"type:varchar(255);not null;index" json:"email"`
	OTPCode       string     `gorm:"column:otp_code;type:varchar(6);not null" json:"otp_code"`
	Purpose       OTPPurpose `gorm:"type:varchar(50);not null" json:"purpose"`
	IsUsed        bool       `gorm:"default:false" json:"is_used"`
	RetryCount    int        `gorm:"default:0" json:"retry_count"`
	MaxRetries    int        `gorm:"default:3" json:"max_retries"`
	IsBlocked     bool       `gorm:"default:false" json:"is_blocked"`
	BlockedUntil  *time.Time `gorm:"index" json:"blocked_until,omitempty"`
	LastAttemptAt *time.Time `gorm:"index" json:"last_attempt_at,omitempty"`
	ExpiresAt     time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// OTPPurpose represents the purpose of the OTP
type OTPPurpose string

const (
	OTPPurposeSignupEmail   OTPPurpose = "signup_email_verification"
	OTPPurposePasswordReset OTPPurpose = "password_reset"
)

// IsExpired checks if the OTP has expired
func (o *OTP) IsExpired() bool {
	return time.Now().After(o.ExpiresAt)
}

// IsValid checks if the OTP is valid (not used, not expired, not blocked)
func (o *OTP) IsValid() bool {
	return !o.IsUsed && !o.IsExpired() && !o.IsBlocked
}

// IsCurrentlyBlocked checks if the OTP is blocked due to too many retry attempts
func (o *OTP) IsCurrentlyBlocked() bool {
	if !o.IsBlocked {
		return false
	}

	// A nil BlockedUntil means the block is permanent
	if o.BlockedUntil == nil {
		return true
	}

	if time.Now().After(*o.BlockedUntil) {
		return false
	}

	return true
}

// IncrementRetry bumps the retry counter and applies blocking when the
// maximum is reached: first overflow blocks for 30 minutes, repeated
// overflows block permanently.
func (o *OTP) IncrementRetry() {
	o.RetryCount++
	now := time.Now()
	o.LastAttemptAt = &now

	if o.RetryCount >= o.MaxRetries {
		o.IsBlocked = true
		if o.BlockedUntil == nil && o.RetryCount == o.MaxRetries {
			blockedUntil := now.Add(30 * time.Minute)
			o.BlockedUntil = &blockedUntil
		} else {
			o.BlockedUntil = nil
		}
	}
}

// TableName sets the table name for the OTP model
func (OTP) TableName() string {
	return "otps"
}
