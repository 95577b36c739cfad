package utils

import (
	"errors"
	"fmt"
	"os"
	"time"

	"sourcing-erp/database"
	"sourcing-erp/models/user"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// GenerateToken issues an HS256 JWT carrying the profile's uuid, role and
// permissions. Tokens expire after 24 hours.
func GenerateToken(u *user.User) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET is not configured")
	}

	permissions := make([]interface{}, 0, len(u.Permissions))
	for _, p := range u.Permissions {
		permissions = append(permissions, p)
	}

	claims := jwt.MapClaims{
		"uuid":        u.Uuid,
		"email":       u.Email,
		"role":        u.Role,
		"permissions": permissions,
		"iat":         time.Now().Unix(),
		"exp":         time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GetUserByUUID retrieves a user by their UUID from the database
func GetUserByUUID(uuid string) (*user.User, error) {
	if uuid == "" {
		return nil, errors.New("UUID cannot be empty")
	}

	var userModel user.User
	if err := database.DB.Where("uuid = ?", uuid).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &userModel, nil
}

// CurrentUser resolves the authenticated profile from the request claims
func CurrentUser(c *fiber.Ctx) (*user.User, error) {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid user claims")
	}

	userUUID, ok := claims["uuid"].(string)
	if !ok || userUUID == "" {
		return nil, errors.New("user uuid not found in token")
	}

	return GetUserByUUID(userUUID)
}
