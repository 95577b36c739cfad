package seeders

import (
	"log"
	"os"

	"sourcing-erp/constants"
	"sourcing-erp/models/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedStaff creates the bootstrap admin and an approved Chinese staff profile
// when they do not exist yet. Passwords come from the environment; the seeder
// is skipped when ADMIN_EMAIL is unset.
func SeedStaff(db *gorm.DB) {
	log.Printf("🔍 Checking staff profiles...")

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		log.Printf("ADMIN_EMAIL not set, skipping staff seeding")
		return
	}

	seedProfile(db, adminEmail, os.Getenv("ADMIN_PASSWORD"), "Platform Admin",
		user.RoleAdmin, constants.PermAdminFull)

	staffEmail := os.Getenv("CHINESE_STAFF_EMAIL")
	if staffEmail != "" {
		seedProfile(db, staffEmail, os.Getenv("CHINESE_STAFF_PASSWORD"), "Chinese Staff",
			user.RoleChineseStaff, constants.PermChineseStaffFull)
	}
}

func seedProfile(db *gorm.DB, email, password, name, role, permission string) {
	var existing user.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Printf("Failed to check profile %s: %v", email, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password for %s: %v", email, err)
		return
	}
	hashStr := string(hash)

	profile := user.User{
		Uuid:          uuid.NewString(),
		Email:         email,
		EmailVerified: true,
		PasswordHash:  &hashStr,
		Provider:      user.ProviderEmail,
		LegalName:     name,
		Role:          role,
		Approved:      true,
		Permissions:   user.StringSlice{permission},
	}

	if err := db.Create(&profile).Error; err != nil {
		log.Printf("Failed to seed profile %s: %v", email, err)
		return
	}
	log.Printf("✅ Seeded %s profile: %s", role, email)
}
