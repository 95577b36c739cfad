package market_research

import (
	"errors"
	"fmt"

	"sourcing-erp/logger"
	"sourcing-erp/models/activity"
	marketResearchModel "sourcing-erp/models/market_research"
	"sourcing-erp/models/order"
	"sourcing-erp/services/assignment"
	"sourcing-erp/services/pricing"
	"sourcing-erp/services/reservation"
	"sourcing-erp/services/translation"
	"sourcing-erp/types"
	marketResearchTypes "sourcing-erp/types/market_research"
	"sourcing-erp/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MarketResearchController handles market research request endpoints
type MarketResearchController struct {
	DB          *gorm.DB
	Logger      *logger.AsyncLogger
	Assignment  *assignment.Service
	Translation *translation.Service
}

func NewMarketResearchController(db *gorm.DB, asyncLogger *logger.AsyncLogger,
	assignmentSvc *assignment.Service, translationSvc *translation.Service) *MarketResearchController {
	return &MarketResearchController{
		DB:          db,
		Logger:      asyncLogger,
		Assignment:  assignmentSvc,
		Translation: translationSvc,
	}
}

// Store creates a new market research request
func (mc *MarketResearchController) Store(c *fiber.Ctx) error {
	var req marketResearchTypes.CreateRequest
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

	reservationNumber, err := reservation.GenerateUnique(mc.DB, order.ServiceMarketResearch)
	if err != nil {
		logger.Error("Failed to generate reservation number", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to generate reservation number",
			Data:    nil,
		})
	}

	request := marketResearchModel.MarketResearchRequest{
		ReservationNumber: reservationNumber,
		UserID:            userInfo.ID,
		CompanyName:       req.CompanyName,
		ContactPerson:     req.ContactPerson,
		ContactPhone:      req.ContactPhone,
		ContactEmail:      req.ContactEmail,
		ProductName:       req.ProductName,
		TargetQuantity:    req.TargetQuantity,
		TargetUnitPrice:   req.TargetUnitPrice,
		Status:            order.StatusSubmitted,
		PaymentStatus:     order.PaymentPending,
	}
	if req.ProductURL != "" {
		request.ProductURL = &req.ProductURL
	}
	if req.Category != "" {
		request.Category = &req.Category
	}
	if req.Requirements != "" {
		request.Requirements = &req.Requirements
	}

	if err := mc.DB.Create(&request).Error; err != nil {
		logger.Error("Failed to create market research request", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save request",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Market research request created: %s", reservationNumber))

	mc.Logger.Log(activity.ActivityLog{
		UserID:            &userInfo.ID,
		ServiceType:       order.ServiceMarketResearch.String(),
		ReservationNumber: reservationNumber,
		Action:            activity.ActionCreated,
		Details:           fmt.Sprintf("market research request for %s", req.ProductName),
	})

	// Best-effort side effects; neither can fail the create
	mc.Assignment.AutoAssign(order.ServiceMarketResearch, reservationNumber)
	mc.Translation.TranslateFieldsAsync(order.ServiceMarketResearch, reservationNumber, map[string]string{
		"product_name_zh": req.ProductName,
		"requirements_zh": req.Requirements,
	})

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Market research request created successfully",
		Data:    request,
	})
}

// Index lists the authenticated customer's own requests
func (mc *MarketResearchController) Index(c *fiber.Ctx) error {
	userInfo, err := utils.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found",
			Data:    nil,
		})
	}

	var requests []marketResearchModel.MarketResearchRequest
	if err := mc.DB.Where("user_id = ?", userInfo.ID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		logger.Error("Failed to list market research requests", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Market research requests retrieved successfully",
		Data:    requests,
	})
}

// Show returns a single request by reservation number. Customers can only
// see their own rows; staff can see everything.
func (mc *MarketResearchController) Show(c *fiber.Ctx) error {
	reservationNumber := c.Params("reservationNumber")

	var request marketResearchModel.MarketResearchRequest
	err := mc.DB.Preload("User").Preload("AssignedChineseStaff").
		Where("reservation_number = ?", reservationNumber).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Request not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to find market research request", err)
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
	if !userInfo.IsStaff() && request.UserID != userInfo.ID {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Not allowed to view this request",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Market research request retrieved successfully",
		Data:    request,
	})
}

// StaffIndex lists every request for staff, newest first
func (mc *MarketResearchController) StaffIndex(c *fiber.Ctx) error {
	var requests []marketResearchModel.MarketResearchRequest
	query := mc.DB.Preload("User").Preload("AssignedChineseStaff").Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&requests).Error; err != nil {
		logger.Error("Failed to list market research requests", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Market research requests retrieved successfully",
		Data:    requests,
	})
}

// StaffUpdate applies quote inputs and recomputes every derived field
func (mc *MarketResearchController) StaffUpdate(c *fiber.Ctx) error {
	reservationNumber := c.Params("reservationNumber")

	var req marketResearchTypes.StaffUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	var request marketResearchModel.MarketResearchRequest
	err := mc.DB.Where("reservation_number = ?", reservationNumber).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Request not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to find market research request", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	request.ChinaUnitPrice = req.ChinaUnitPrice
	request.KoreaUnitPrice = req.KoreaUnitPrice
	request.ExchangeRate = req.ExchangeRate
	request.BoxQuantity = req.BoxQuantity
	request.BoxLengthCm = req.BoxLengthCm
	request.BoxWidthCm = req.BoxWidthCm
	request.BoxHeightCm = req.BoxHeightCm
	request.ResearchNotes = req.ResearchNotes

	quote := pricing.ComputeQuote(pricing.QuoteInput{
		Quantity:       request.TargetQuantity,
		ChinaUnitPrice: request.ChinaUnitPrice,
		KoreaUnitPrice: request.KoreaUnitPrice,
		ExchangeRate:   request.ExchangeRate,
		BoxQuantity:    request.BoxQuantity,
		BoxLengthCm:    request.BoxLengthCm,
		BoxWidthCm:     request.BoxWidthCm,
		BoxHeightCm:    request.BoxHeightCm,
	})
	request.TotalCBM = quote.TotalCBM
	request.ShippingMethod = quote.ShippingMethod
	request.LCLShippingFee = quote.LCLShippingFee
	request.Commission = quote.Commission
	request.ImportVAT = quote.ImportVAT
	request.ExpectedTotal = quote.ExpectedTotal

	if err := mc.DB.Save(&request).Error; err != nil {
		logger.Error("Failed to update market research request", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update request",
			Data:    nil,
		})
	}

	mc.Logger.Log(activity.ActivityLog{
		ServiceType:       order.ServiceMarketResearch.String(),
		ReservationNumber: reservationNumber,
		Action:            activity.ActionUpdated,
		Details:           "quote fields updated",
	})

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Market research request updated successfully",
		Data:    request,
	})
}
