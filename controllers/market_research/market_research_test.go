package market_research

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sourcing-erp/database"
	"sourcing-erp/logger"
	"sourcing-erp/models/activity"
	"sourcing-erp/models/market_research"
	"sourcing-erp/models/order"
	"sourcing-erp/models/user"
	"sourcing-erp/services/assignment"
	"sourcing-erp/services/translation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupMarketResearchTest(t *testing.T) (*fiber.App, *gorm.DB, user.User) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	err = db.AutoMigrate(
		&user.User{},
		&market_research.MarketResearchRequest{},
		&activity.ActivityLog{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	database.DB = db

	customer := user.User{
		Uuid:          "11111111-1111-1111-1111-111111111111",
		Email:         "customer@example.com",
		EmailVerified: true,
		LegalName:     "Customer Kim",
		Role:          user.RoleCustomer,
		Approved:      true,
	}
	require.NoError(t, db.Create(&customer).Error)

	asyncLogger := logger.NewAsyncLogger(db)
	controller := NewMarketResearchController(db, asyncLogger,
		assignment.NewService(db, asyncLogger), translation.NewService(db))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", jwt.MapClaims{"uuid": customer.Uuid, "email": customer.Email})
		return c.Next()
	})
	app.Post("/market-research", controller.Store)
	app.Get("/market-research", controller.Index)
	app.Put("/staff/market-research/:reservationNumber", controller.StaffUpdate)

	return app, db, customer
}

func postJSON(t *testing.T, app *fiber.App, method, path string, body map[string]interface{}) *http.Response {
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestStoreCreatesRequest(t *testing.T) {
	app, db, customer := setupMarketResearchTest(t)

	resp := postJSON(t, app, http.MethodPost, "/market-research", map[string]interface{}{
		"company_name":    "Acme Trading",
		"contact_person":  "Kim",
		"contact_phone":   "010-0000-0000",
		"contact_email":   "kim@example.com",
		"product_name":    "LED strip",
		"target_quantity": 1000,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var request market_research.MarketResearchRequest
	require.NoError(t, db.First(&request).Error)
	assert.Equal(t, customer.ID, request.UserID)
	assert.Equal(t, order.StatusSubmitted, request.Status)
	assert.Equal(t, order.PaymentPending, request.PaymentStatus)
	assert.Regexp(t, `^MR-\d{8}-\d{6}$`, request.ReservationNumber)
}

func TestStoreValidationFailureWritesNothing(t *testing.T) {
	app, db, _ := setupMarketResearchTest(t)

	resp := postJSON(t, app, http.MethodPost, "/market-research", map[string]interface{}{
		"company_name":    "",
		"contact_person":  "Kim",
		"contact_phone":   "010-0000-0000",
		"contact_email":   "kim@example.com",
		"product_name":    "LED strip",
		"target_quantity": 1000,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// A rejected request must leave no row behind
	var count int64
	require.NoError(t, db.Model(&market_research.MarketResearchRequest{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestStoreRejectsZeroQuantity(t *testing.T) {
	app, db, _ := setupMarketResearchTest(t)

	resp := postJSON(t, app, http.MethodPost, "/market-research", map[string]interface{}{
		"company_name":    "Acme Trading",
		"contact_person":  "Kim",
		"contact_phone":   "010-0000-0000",
		"contact_email":   "kim@example.com",
		"product_name":    "LED strip",
		"target_quantity": 0,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&market_research.MarketResearchRequest{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestStaffUpdateRecomputesQuote(t *testing.T) {
	app, db, customer := setupMarketResearchTest(t)

	request := market_research.MarketResearchRequest{
		ReservationNumber: "MR-20260315-123456",
		UserID:            customer.ID,
		CompanyName:       "Acme Trading",
		ContactPerson:     "Kim",
		ContactPhone:      "010-0000-0000",
		ContactEmail:      "kim@example.com",
		ProductName:       "LED strip",
		TargetQuantity:    1000,
		Status:            order.StatusSubmitted,
		PaymentStatus:     order.PaymentPending,
	}
	require.NoError(t, db.Create(&request).Error)

	resp := postJSON(t, app, http.MethodPut, "/staff/market-research/MR-20260315-123456", map[string]interface{}{
		"china_unit_price": "10",
		"korea_unit_price": "1000",
		"exchange_rate":    "190",
		"box_quantity":     100,
		"box_length_cm":    40,
		"box_width_cm":     30,
		"box_height_cm":    20,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated market_research.MarketResearchRequest
	require.NoError(t, db.Where("reservation_number = ?", request.ReservationNumber).First(&updated).Error)

	require.NotNil(t, updated.TotalCBM)
	assert.Equal(t, "2.4", updated.TotalCBM.String())
	require.NotNil(t, updated.ShippingMethod)
	assert.Equal(t, "LCL", *updated.ShippingMethod)
	require.NotNil(t, updated.LCLShippingFee)
	assert.Equal(t, "216000", updated.LCLShippingFee.String())
	require.NotNil(t, updated.Commission)
	assert.Equal(t, "95000", updated.Commission.String())
	require.NotNil(t, updated.ImportVAT)
	assert.Equal(t, "100000", updated.ImportVAT.String())
	require.NotNil(t, updated.ExpectedTotal)
	assert.Equal(t, "1316000", updated.ExpectedTotal.String())
}
