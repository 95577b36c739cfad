package reservation

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"sourcing-erp/models/order"

	"gorm.io/gorm"
)

const maxGenerateAttempts = 5

// Generate builds a reservation number of the form PREFIX-YYYYMMDD-RRRRRR
// where RRRRRR is a random 6-digit number in [100000, 999999].
func Generate(serviceType order.ServiceType, at time.Time) (string, error) {
	if !serviceType.IsValid() {
		return "", fmt.Errorf("unknown service type: %s", serviceType)
	}

	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate random suffix: %w", err)
	}
	suffix := n.Int64() + 100000

	return fmt.Sprintf("%s-%s-%06d", serviceType.Prefix(), at.Format("20060102"), suffix), nil
}

// GenerateUnique generates a reservation number and retries when the value
// already exists in the service's table. The column is unique, so a collision
// slipping past this check still fails the insert instead of reusing a number.
func GenerateUnique(db *gorm.DB, serviceType order.ServiceType) (string, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		number, err := Generate(serviceType, time.Now())
		if err != nil {
			return "", err
		}

		var count int64
		if err := db.Table(serviceType.Table()).
			Where("reservation_number = ?", number).
			Count(&count).Error; err != nil {
			return "", fmt.Errorf("failed to check reservation number: %w", err)
		}
		if count == 0 {
			return number, nil
		}
	}

	return "", fmt.Errorf("could not generate a unique reservation number after %d attempts", maxGenerateAttempts)
}
