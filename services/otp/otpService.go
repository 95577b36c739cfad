package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"time"

	"sourcing-erp/httpServices/email"
	"sourcing-erp/logger"
	"sourcing-erp/models/otp"

	"gorm.io/gorm"
)

// Service handles OTP operations for email verification
type Service struct {
	DB         *gorm.DB
	MailClient *email.Client
}

// NewOTPService creates a new OTP service
func NewOTPService(db *gorm.DB) *Service {
	return &Service{
		DB:         db,
		MailClient: email.NewClient(os.Getenv("MAIL_API_URL")),
	}
}

// GenerateOTP generates a random 6-digit OTP
func (s *Service) GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// SendOTP creates and stores an OTP for the given email address, then
// delivers it best-effort via the mail API.
func (s *Service) SendOTP(emailAddr string, purpose otp.OTPPurpose) (*otp.OTP, error) {
	existingOTP, err := s.GetOTPStatus(emailAddr, purpose)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing OTP: %w", err)
	}

	// A still-valid OTP is returned as is instead of generating a new one
	if existingOTP != nil && existingOTP.IsValid() {
		return existingOTP, nil
	}

	if existingOTP != nil && existingOTP.IsCurrentlyBlocked() {
		blockTime := "permanently"
		if existingOTP.BlockedUntil != nil {
			blockTime = fmt.Sprintf("until %s", existingOTP.BlockedUntil.Format("15:04:05"))
		}
		return nil, fmt.Errorf("OTP requests are blocked %s due to too many failed attempts", blockTime)
	}

	// Clean up an expired leftover before issuing a fresh code
	if existingOTP != nil && existingOTP.IsExpired() && !existingOTP.IsUsed {
		existingOTP.IsUsed = true
		if err := s.DB.Save(existingOTP).Error; err != nil {
			logger.Error("Failed to mark expired OTP as used", err)
		}
	}

	otpCode, err := s.GenerateOTP()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP: %w", err)
	}

	err = s.DB.Model(&otp.OTP{}).
		Where("email = ? AND purpose = ? AND is_used = false", emailAddr, purpose).
		Update("is_used", true).Error
	if err != nil {
		return nil, fmt.Errorf("failed to invalidate existing OTPs: %w", err)
	}

	newOTP := &otp.OTP{
		Email:      emailAddr,
		OTPCode:    otpCode,
		Purpose:    purpose,
		IsUsed:     false,
		RetryCount: 0,
		MaxRetries: 3,
		IsBlocked:  false,
		ExpiresAt:  time.Now().Add(5 * time.Minute),
	}

	if err := s.DB.Create(newOTP).Error; err != nil {
		return nil, fmt.Errorf("failed to create OTP record: %w", err)
	}

	// Mail delivery failure does not invalidate the OTP record
	if err := s.MailClient.SendOTP(emailAddr, otpCode); err != nil {
		logger.Error(fmt.Sprintf("Failed to send OTP mail to %s", emailAddr), err)
	}

	return newOTP, nil
}

// VerifyOTP verifies the provided OTP code with retry handling. A wrong code
// bumps the retry counter; exceeding MaxRetries blocks further attempts.
func (s *Service) VerifyOTP(emailAddr, otpCode string, purpose otp.OTPPurpose) (bool, error) {
	var otpRecord otp.OTP

	err := s.DB.Where("email = ? AND purpose = ? AND is_used = false", emailAddr, purpose).
		Order("created_at DESC").
		First(&otpRecord).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to find OTP record: %w", err)
	}

	if otpRecord.IsCurrentlyBlocked() {
		blockTime := "permanently"
		if otpRecord.BlockedUntil != nil {
			blockTime = fmt.Sprintf("until %s", otpRecord.BlockedUntil.Format("15:04:05"))
		}
		return false, fmt.Errorf("OTP verification is blocked %s due to too many failed attempts", blockTime)
	}

	if otpRecord.IsExpired() {
		return false, fmt.Errorf("OTP has expired")
	}

	if otpRecord.OTPCode != otpCode {
		otpRecord.IncrementRetry()
		if err := s.DB.Save(&otpRecord).Error; err != nil {
			return false, fmt.Errorf("failed to update retry count: %w", err)
		}

		remainingAttempts := otpRecord.MaxRetries - otpRecord.RetryCount
		if remainingAttempts <= 0 {
			return false, fmt.Errorf("invalid OTP, maximum attempts exceeded, OTP is now blocked")
		}
		return false, fmt.Errorf("invalid OTP, %d attempts remaining", remainingAttempts)
	}

	otpRecord.IsUsed = true
	if err := s.DB.Save(&otpRecord).Error; err != nil {
		return false, fmt.Errorf("failed to mark OTP as used: %w", err)
	}

	return true, nil
}

// GetOTPStatus returns the latest unused OTP for the address and purpose
func (s *Service) GetOTPStatus(emailAddr string, purpose otp.OTPPurpose) (*otp.OTP, error) {
	var otpRecord otp.OTP

	err := s.DB.Where("email = ? AND purpose = ? AND is_used = false", emailAddr, purpose).
		Order("created_at DESC").
		First(&otpRecord).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &otpRecord, nil
}
