package database

import (
	"fmt"
	"os"

	"sourcing-erp/logger"
	"sourcing-erp/models/activity"
	"sourcing-erp/models/address"
	"sourcing-erp/models/bulk_order"
	"sourcing-erp/models/confirmation"
	"sourcing-erp/models/factory_contact"
	"sourcing-erp/models/file"
	"sourcing-erp/models/inspection"
	"sourcing-erp/models/market_research"
	"sourcing-erp/models/order"
	"sourcing-erp/models/otp"
	"sourcing-erp/models/sampling"
	"sourcing-erp/models/user"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection with auto migration and indexing
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	username := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")

	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, username, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := Migrate(DB); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	return DB, nil
}

// Migrate runs auto migration for all models in dependency order
func Migrate(db *gorm.DB) error {
	// Stage 1: Core foundation models
	stage1Models := []interface{}{
		&user.User{},
		&address.ShippingAddress{},
		&address.CompanyAddress{},
	}

	// Stage 2: Order-like entities referencing users and addresses
	stage2Models := []interface{}{
		&market_research.MarketResearchRequest{},
		&sampling.SamplingApplication{},
		&factory_contact.FactoryContactRequest{},
		&inspection.InspectionApplication{},
		&bulk_order.BulkOrder{},
	}

	// Stage 3: Records keyed by reservation number
	stage3Models := []interface{}{
		&order.StatusEvent{},
		&file.UploadedFile{},
		&activity.ActivityLog{},
		&confirmation.ConfirmationRequest{},
		&otp.OTP{},
	}

	for _, stage := range [][]interface{}{stage1Models, stage2Models, stage3Models} {
		for _, model := range stage {
			if err := db.AutoMigrate(model); err != nil {
				return fmt.Errorf("failed to migrate %T: %w", model, err)
			}
		}
	}

	return createIndexes(db)
}

// createIndexes adds the lookup indexes the request paths depend on
func createIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		{"market_research_requests", "idx_mr_user_status", "user_id, status"},
		{"sampling_applications", "idx_sa_user_status", "user_id, status"},
		{"factory_contact_requests", "idx_fc_user_status", "user_id, status"},
		{"inspection_applications", "idx_in_user_status", "user_id, status"},
		{"bulk_orders", "idx_bo_user_status", "user_id, status"},
		{"activity_logs", "idx_activity_reservation", "reservation_number, created_at"},
		{"order_status_events", "idx_status_events_reservation", "reservation_number, created_at"},
	}

	for _, idx := range indexes {
		stmt := fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
