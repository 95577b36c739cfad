package auth

import (
	"errors"
	"fmt"
	"time"

	"sourcing-erp/constants"
	"sourcing-erp/httpServices/oauth"
	"sourcing-erp/logger"
	otpModel "sourcing-erp/models/otp"
	"sourcing-erp/models/user"
	otpService "sourcing-erp/services/otp"
	"sourcing-erp/types"
	"sourcing-erp/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthController handles registration, login and the OAuth flows
type AuthController struct {
	DB    *gorm.DB
	OTP   *otpService.Service
	OAuth *oauth.Client
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:    db,
		OTP:   otpService.NewOTPService(db),
		OAuth: oauth.NewClient(),
	}
}

// Register creates an unverified customer account and sends a verification OTP
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req types.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	var existing user.User
	err := ac.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "An account with this email already exists",
			Data:    nil,
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing account", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create account",
			Data:    nil,
		})
	}

	passwordHash := string(hash)
	newUser := user.User{
		Uuid:         uuid.NewString(),
		Email:        req.Email,
		PasswordHash: &passwordHash,
		Provider:     user.ProviderEmail,
		LegalName:    req.LegalName,
		Role:         user.RoleCustomer,
		Approved:     true,
		Permissions:  user.StringSlice{constants.PermCustomerFull},
	}
	if req.Phone != "" {
		newUser.Phone = &req.Phone
	}
	if req.CompanyName != "" {
		newUser.CompanyName = &req.CompanyName
	}

	if err := ac.DB.Create(&newUser).Error; err != nil {
		logger.Error("Failed to create account", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create account",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Account registered: %s", newUser.Email))

	// Delivery failure is not fatal; the OTP can be resent
	if _, err := ac.OTP.SendOTP(newUser.Email, otpModel.OTPPurposeSignupEmail); err != nil {
		logger.Error("Failed to send verification OTP", err)
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Account created. Check your email for a verification code.",
		Data:    newUser,
	})
}

// VerifyEmail confirms the signup OTP and marks the account verified
func (ac *AuthController) VerifyEmail(c *fiber.Ctx) error {
	var req types.VerifyEmailRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	valid, err := ac.OTP.VerifyOTP(req.Email, req.OTPCode, otpModel.OTPPurposeSignupEmail)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}
	if !valid {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid verification code",
			Data:    nil,
		})
	}

	now := time.Now()
	err = ac.DB.Model(&user.User{}).
		Where("email = ?", req.Email).
		Updates(map[string]interface{}{"email_verified": true, "joined_at": now}).Error
	if err != nil {
		logger.Error("Failed to mark email verified", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Email verified: %s", req.Email))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Email verified successfully",
		Data:    nil,
	})
}

// ResendOTP issues a fresh verification code for an unverified account
func (ac *AuthController) ResendOTP(c *fiber.Ctx) error {
	var req types.ResendOTPRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "email is required",
			Data:    nil,
		})
	}

	var account user.User
	if err := ac.DB.Where("email = ?", req.Email).First(&account).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Account not found",
			Data:    nil,
		})
	}
	if account.EmailVerified {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Email is already verified",
			Data:    nil,
		})
	}

	if _, err := ac.OTP.SendOTP(req.Email, otpModel.OTPPurposeSignupEmail); err != nil {
		return c.Status(fiber.StatusTooManyRequests).JSON(types.ApiResponse{
			Status:  fiber.StatusTooManyRequests,
			Message: err.Error(),
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Verification code sent",
		Data:    nil,
	})
}

// Login issues a JWT for a verified email/password account
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req types.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	var account user.User
	if err := ac.DB.Where("email = ?", req.Email).First(&account).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid email or password",
			Data:    nil,
		})
	}

	if account.PasswordHash == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "This account uses social login",
			Data:    nil,
		})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*account.PasswordHash), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid email or password",
			Data:    nil,
		})
	}
	if !account.EmailVerified {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Email is not verified",
			Data:    nil,
		})
	}

	token, err := utils.GenerateToken(&account)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to generate token",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("User logged in: %s", account.Email))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Login successful",
		Token:   token,
		Data:    account,
	})
}

// OAuthStart redirects the browser to the provider's consent screen
func (ac *AuthController) OAuthStart(c *fiber.Ctx) error {
	provider := c.Params("provider")
	returnURL := c.Query("returnUrl")

	authorizeURL, err := ac.OAuth.AuthorizeURL(provider, returnURL)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	return c.Redirect(authorizeURL, fiber.StatusTemporaryRedirect)
}

// OAuthCallback exchanges the provider code, upserts the profile and issues a JWT
func (ac *AuthController) OAuthCallback(c *fiber.Ctx) error {
	provider := c.Params("provider")

	var req types.OAuthCallbackRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid callback parameters",
			Data:    nil,
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	info, err := ac.OAuth.Exchange(provider, req.Code)
	if err != nil {
		logger.Error("OAuth exchange failed", err)
		return c.Status(fiber.StatusBadGateway).JSON(types.ApiResponse{
			Status:  fiber.StatusBadGateway,
			Message: "Provider authentication failed",
			Data:    nil,
		})
	}
	if info.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Provider did not return an email address",
			Data:    nil,
		})
	}

	var account user.User
	err = ac.DB.Where("email = ?", info.Email).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		now := time.Now()
		account = user.User{
			Uuid:          uuid.NewString(),
			Email:         info.Email,
			EmailVerified: true,
			Provider:      provider,
			LegalName:     info.Name,
			Avatar:        info.Picture,
			Role:          user.RoleCustomer,
			Approved:      true,
			Permissions:   user.StringSlice{constants.PermCustomerFull},
			JoinedAt:      &now,
		}
		if err := ac.DB.Create(&account).Error; err != nil {
			logger.Error("Failed to create social account", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to create account",
				Data:    nil,
			})
		}
	} else if err != nil {
		logger.Error("Failed to look up account", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	// Store the refresh token encrypted at rest
	if info.RefreshToken != "" {
		encrypted, encErr := utils.EncryptData(info.RefreshToken)
		if encErr != nil {
			logger.Error("Failed to encrypt refresh token", encErr)
		} else {
			account.RefreshTokenEncrypted = &encrypted
			if err := ac.DB.Save(&account).Error; err != nil {
				logger.Error("Failed to store refresh token", err)
			}
		}
	}

	token, err := utils.GenerateToken(&account)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to generate token",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Social login: %s via %s", account.Email, provider))

	if req.ReturnURL != "" {
		return c.Redirect(fmt.Sprintf("%s?token=%s", req.ReturnURL, token), fiber.StatusTemporaryRedirect)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Login successful",
		Token:   token,
		Data:    account,
	})
}

// Logout clears the stored refresh token for social accounts. JWTs are
// stateless and simply expire client-side.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	userInfo, err := utils.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found",
			Data:    nil,
		})
	}

	if userInfo.RefreshTokenEncrypted != nil {
		err := ac.DB.Model(&user.User{}).
			Where("id = ?", userInfo.ID).
			Update("refresh_token_encrypted", nil).Error
		if err != nil {
			logger.Error("Failed to clear refresh token", err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Logged out successfully",
		Data:    nil,
	})
}
