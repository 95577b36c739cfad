package dashboard

import (
	"time"

	"sourcing-erp/logger"
	"sourcing-erp/models/order"
	"sourcing-erp/types"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// DashboardController serves the staff workload overview
type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type serviceCounts struct {
	Total    int64                       `json:"total"`
	Today    int64                       `json:"today"`
	ByStatus map[order.OrderStatus]int64 `json:"by_status"`
}

// Summary returns per-service order counts, split by status, plus how many
// rows arrived today
func (dc *DashboardController) Summary(c *fiber.Ctx) error {
	dayStart := now.BeginningOfDay()
	dayEnd := now.EndOfDay()

	summary := make(map[string]serviceCounts)

	for _, serviceType := range []order.ServiceType{
		order.ServiceMarketResearch,
		order.ServiceSampling,
		order.ServiceFactoryContact,
		order.ServiceInspection,
		order.ServiceBulkOrder,
	} {
		counts, err := dc.countService(serviceType, dayStart, dayEnd)
		if err != nil {
			logger.Error("Failed to build dashboard summary", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Database error",
				Data:    nil,
			})
		}
		summary[serviceType.String()] = counts
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Dashboard summary retrieved successfully",
		Data:    summary,
	})
}

func (dc *DashboardController) countService(serviceType order.ServiceType, dayStart, dayEnd time.Time) (serviceCounts, error) {
	counts := serviceCounts{ByStatus: make(map[order.OrderStatus]int64)}

	table := serviceType.Table()

	if err := dc.DB.Table(table).Where("deleted_at IS NULL").Count(&counts.Total).Error; err != nil {
		return counts, err
	}

	err := dc.DB.Table(table).
		Where("deleted_at IS NULL AND created_at BETWEEN ? AND ?", dayStart, dayEnd).
		Count(&counts.Today).Error
	if err != nil {
		return counts, err
	}

	for _, status := range order.GetAllOrderStatuses() {
		var n int64
		err := dc.DB.Table(table).
			Where("deleted_at IS NULL AND status = ?", status).
			Count(&n).Error
		if err != nil {
			return counts, err
		}
		counts.ByStatus[status] = n
	}

	return counts, nil
}
