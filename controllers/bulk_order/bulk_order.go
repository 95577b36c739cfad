package bulk_order

import (
	"errors"
	"fmt"

	"sourcing-erp/logger"
	"sourcing-erp/models/activity"
	bulkModel "sourcing-erp/models/bulk_order"
	"sourcing-erp/models/order"
	"sourcing-erp/services/assignment"
	"sourcing-erp/services/pricing"
	"sourcing-erp/services/reservation"
	"sourcing-erp/services/translation"
	"sourcing-erp/types"
	bulkTypes "sourcing-erp/types/bulk_order"
	"sourcing-erp/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BulkOrderController handles bulk procurement order endpoints
type BulkOrderController struct {
	DB          *gorm.DB
	Logger      *logger.AsyncLogger
	Assignment  *assignment.Service
	Translation *translation.Service
}

func NewBulkOrderController(db *gorm.DB, asyncLogger *logger.AsyncLogger,
	assignmentSvc *assignment.Service, translationSvc *translation.Service) *BulkOrderController {
	return &BulkOrderController{
		DB:          db,
		Logger:      asyncLogger,
		Assignment:  assignmentSvc,
		Translation: translationSvc,
	}
}

// Store creates a new bulk order
func (bc *BulkOrderController) Store(c *fiber.Ctx) error {
	var req bulkTypes.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	// Validation runs before any database write
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	userInfo, err := utils.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found",
			Data:    nil,
		})
	}

	reservationNumber, err := reservation.GenerateUnique(bc.DB, order.ServiceBulkOrder)
	if err != nil {
		logger.Error("Failed to generate reservation number", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to generate reservation number",
			Data:    nil,
		})
	}

	bulkOrder := bulkModel.BulkOrder{
		ReservationNumber: reservationNumber,
		UserID:            userInfo.ID,
		MarketResearchID:  req.MarketResearchID,
		CompanyName:       req.CompanyName,
		ContactPerson:     req.ContactPerson,
		ContactPhone:      req.ContactPhone,
		ContactEmail:      req.ContactEmail,
		ProductName:       req.ProductName,
		Quantity:          req.Quantity,
		ShippingAddressID: req.ShippingAddressID,
		Status:            order.StatusSubmitted,
		PaymentStatus:     order.PaymentPending,
	}

	if err := bc.DB.Create(&bulkOrder).Error; err != nil {
		logger.Error("Failed to create bulk order", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save order",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Bulk order created: %s", reservationNumber))

	bc.Logger.Log(activity.ActivityLog{
		UserID:            &userInfo.ID,
		ServiceType:       order.ServiceBulkOrder.String(),
		ReservationNumber: reservationNumber,
		Action:            activity.ActionCreated,
		Details:           fmt.Sprintf("bulk order for %s x%d", req.ProductName, req.Quantity),
	})

	// Best-effort side effects; neither can fail the create
	bc.Assignment.AutoAssign(order.ServiceBulkOrder, reservationNumber)
	bc.Translation.TranslateFieldsAsync(order.ServiceBulkOrder, reservationNumber, map[string]string{
		"product_name_zh": req.ProductName,
	})

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Bulk order created successfully",
		Data:    bulkOrder,
	})
}

// Index lists the authenticated customer's own orders
func (bc *BulkOrderController) Index(c *fiber.Ctx) error {
	userInfo, err := utils.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found",
			Data:    nil,
		})
	}

	var orders []bulkModel.BulkOrder
	if err := bc.DB.Where("user_id = ?", userInfo.ID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		logger.Error("Failed to list bulk orders", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bulk orders retrieved successfully",
		Data:    orders,
	})
}

// Show returns a single order by reservation number
func (bc *BulkOrderController) Show(c *fiber.Ctx) error {
	reservationNumber := c.Params("reservationNumber")

	var bulkOrder bulkModel.BulkOrder
	err := bc.DB.Preload("User").Preload("AssignedChineseStaff").
		Where("reservation_number = ?", reservationNumber).
		First(&bulkOrder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to find bulk order", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	userInfo, err := utils.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found",
			Data:    nil,
		})
	}
	if !userInfo.IsStaff() && bulkOrder.UserID != userInfo.ID {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Not allowed to view this order",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bulk order retrieved successfully",
		Data:    bulkOrder,
	})
}

// StaffIndex lists every order for staff, newest first
func (bc *BulkOrderController) StaffIndex(c *fiber.Ctx) error {
	var orders []bulkModel.BulkOrder
	query := bc.DB.Preload("User").Preload("AssignedChineseStaff").Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&orders).Error; err != nil {
		logger.Error("Failed to list bulk orders", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bulk orders retrieved successfully",
		Data:    orders,
	})
}

// StaffUpdate applies pricing inputs; every derived field is recomputed
// wholesale on save
func (bc *BulkOrderController) StaffUpdate(c *fiber.Ctx) error {
	reservationNumber := c.Params("reservationNumber")

	var req bulkTypes.StaffUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	var bulkOrder bulkModel.BulkOrder
	err := bc.DB.Where("reservation_number = ?", reservationNumber).First(&bulkOrder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to find bulk order", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	bulkOrder.ChinaUnitPrice = req.ChinaUnitPrice
	bulkOrder.KoreaUnitPrice = req.KoreaUnitPrice
	bulkOrder.ExchangeRate = req.ExchangeRate
	bulkOrder.BoxQuantity = req.BoxQuantity
	bulkOrder.BoxLengthCm = req.BoxLengthCm
	bulkOrder.BoxWidthCm = req.BoxWidthCm
	bulkOrder.BoxHeightCm = req.BoxHeightCm
	bulkOrder.HSCode = req.HSCode
	bulkOrder.Incoterms = req.Incoterms
	bulkOrder.CustomsMemo = req.CustomsMemo

	quote := pricing.ComputeQuote(pricing.QuoteInput{
		Quantity:       bulkOrder.Quantity,
		ChinaUnitPrice: req.ChinaUnitPrice,
		KoreaUnitPrice: req.KoreaUnitPrice,
		ExchangeRate:   req.ExchangeRate,
		BoxQuantity:    req.BoxQuantity,
		BoxLengthCm:    req.BoxLengthCm,
		BoxWidthCm:     req.BoxWidthCm,
		BoxHeightCm:    req.BoxHeightCm,
	})
	bulkOrder.TotalCBM = quote.TotalCBM
	bulkOrder.ShippingMethod = quote.ShippingMethod
	bulkOrder.LCLShippingFee = quote.LCLShippingFee
	bulkOrder.Commission = quote.Commission
	bulkOrder.ImportVAT = quote.ImportVAT
	bulkOrder.ExpectedTotal = quote.ExpectedTotal

	if err := bc.DB.Save(&bulkOrder).Error; err != nil {
		logger.Error("Failed to update bulk order", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update order",
			Data:    nil,
		})
	}

	bc.Logger.Log(activity.ActivityLog{
		ServiceType:       order.ServiceBulkOrder.String(),
		ReservationNumber: reservationNumber,
		Action:            activity.ActionUpdated,
		Details:           "pricing fields updated",
	})

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bulk order updated successfully",
		Data:    bulkOrder,
	})
}
