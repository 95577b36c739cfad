package user

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Role values stored on a profile
const (
	RoleCustomer     = "customer"
	RoleChineseStaff = "chinese_staff"
	RoleKoreanStaff  = "korean_staff"
	RoleAdmin        = "admin"
)

// Auth providers
const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
	ProviderKakao  = "kakao"
)

// User model backing the user_profiles table
type User struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Uuid          string  `gorm:"type:varchar(255);not null;unique" json:"uuid"`
	Email         string  `gorm:"type:varchar(255);not null;unique" json:"email"`
	EmailVerified bool    `gorm:"type:bool;default:false" json:"email_verified"`
	PasswordHash  *string `gorm:"type:varchar(255)" json:"-"`
	Provider      string  `gorm:"type:varchar(20);not null;default:email" json:"provider"`

	LegalName   string  `gorm:"type:varchar(255)" json:"legal_name"`
	Phone       *string `gorm:"type:varchar(20)" json:"phone,omitempty"`
	CompanyName *string `gorm:"type:varchar(255)" json:"company_name,omitempty"`
	Avatar      string  `gorm:"type:varchar(2048)" json:"avatar"`

	Role     string `gorm:"type:varchar(30);not null;default:customer;index" json:"role"`
	Approved bool   `gorm:"type:bool;default:false;index" json:"approved"`

	// Encrypted OAuth refresh token for social-login accounts
	RefreshTokenEncrypted *string `gorm:"type:text" json:"-"`

	Permissions StringSlice `gorm:"type:json" json:"permissions"`

	JoinedAt     *time.Time `json:"joined_at,omitempty"`
	ApprovedByID *uint      `gorm:"index" json:"approved_by_id,omitempty"`

	ApprovedByUser *User `gorm:"foreignKey:ApprovedByID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"approved_by,omitempty"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName sets the table name for the User model
func (User) TableName() string {
	return "user_profiles"
}

// IsStaff reports whether the profile belongs to an internal role
func (u *User) IsStaff() bool {
	return u.Role == RoleChineseStaff || u.Role == RoleKoreanStaff || u.Role == RoleAdmin
}

// StringSlice is a custom type to handle JSON serialization for PostgreSQL
type StringSlice []string

// Scan implements the Scanner interface for database deserialization
func (ss *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*ss = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, ss)
	case string:
		return json.Unmarshal([]byte(v), ss)
	default:
		return errors.New("unsupported type for StringSlice")
	}
}

// Value implements the driver Valuer interface for database serialization
func (ss StringSlice) Value() (driver.Value, error) {
	if ss == nil {
		return nil, nil
	}
	return json.Marshal(ss)
}
