package sampling

import (
	"errors"
	"fmt"

	"sourcing-erp/logger"
	"sourcing-erp/models/activity"
	"sourcing-erp/models/order"
	samplingModel "sourcing-erp/models/sampling"
	"sourcing-erp/services/assignment"
	"sourcing-erp/services/reservation"
	"sourcing-erp/services/translation"
	"sourcing-erp/types"
	samplingTypes "sourcing-erp/types/sampling"
	"sourcing-erp/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SamplingController handles sample request endpoints
type SamplingController struct {
	DB          *gorm.DB
	Logger      *logger.AsyncLogger
	Assignment  *assignment.Service
	Translation *translation.Service
}

func NewSamplingController(db *gorm.DB, asyncLogger *logger.AsyncLogger,
	assignmentSvc *assignment.Service, translationSvc *translation.Service) *SamplingController {
	return &SamplingController{
		DB:          db,
		Logger:      asyncLogger,
		Assignment:  assignmentSvc,
		Translation: translationSvc,
	}
}

// Store creates a new sampling application
func (sc *SamplingController) Store(c *fiber.Ctx) error {
	var req samplingTypes.CreateRequest
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

	reservationNumber, err := reservation.GenerateUnique(sc.DB, order.ServiceSampling)
	if err != nil {
		logger.Error("Failed to generate reservation number", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to generate reservation number",
			Data:    nil,
		})
	}

	application := samplingModel.SamplingApplication{
		ReservationNumber: reservationNumber,
		UserID:            userInfo.ID,
		MarketResearchID:  req.MarketResearchID,
		CompanyName:       req.CompanyName,
		ContactPerson:     req.ContactPerson,
		ContactPhone:      req.ContactPhone,
		ContactEmail:      req.ContactEmail,
		ProductName:       req.ProductName,
		SampleQuantity:    req.SampleQuantity,
		ShippingAddressID: req.ShippingAddressID,
		Status:            order.StatusSubmitted,
		PaymentStatus:     order.PaymentPending,
	}
	if req.ProductURL != "" {
		application.ProductURL = &req.ProductURL
	}
	if req.SampleSpec != "" {
		application.SampleSpec = &req.SampleSpec
	}

	if err := sc.DB.Create(&application).Error; err != nil {
		logger.Error("Failed to create sampling application", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save application",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Sampling application created: %s", reservationNumber))

	sc.Logger.Log(activity.ActivityLog{
		UserID:            &userInfo.ID,
		ServiceType:       order.ServiceSampling.String(),
		ReservationNumber: reservationNumber,
		Action:            activity.ActionCreated,
		Details:           fmt.Sprintf("sampling application for %s", req.ProductName),
	})

	// Best-effort side effects; neither can fail the create
	sc.Assignment.AutoAssign(order.ServiceSampling, reservationNumber)
	sc.Translation.TranslateFieldsAsync(order.ServiceSampling, reservationNumber, map[string]string{
		"sample_spec_zh": req.SampleSpec,
	})

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Sampling application created successfully",
		Data:    application,
	})
}

// Index lists the authenticated customer's own applications
func (sc *SamplingController) Index(c *fiber.Ctx) error {
	userInfo, err := utils.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found",
			Data:    nil,
		})
	}

	var applications []samplingModel.SamplingApplication
	if err := sc.DB.Where("user_id = ?", userInfo.ID).
		Order("created_at DESC").
		Find(&applications).Error; err != nil {
		logger.Error("Failed to list sampling applications", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Sampling applications retrieved successfully",
		Data:    applications,
	})
}

// Show returns a single application by reservation number
func (sc *SamplingController) Show(c *fiber.Ctx) error {
	reservationNumber := c.Params("reservationNumber")

	var application samplingModel.SamplingApplication
	err := sc.DB.Preload("User").Preload("AssignedChineseStaff").
		Where("reservation_number = ?", reservationNumber).
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Application not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to find sampling application", err)
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
	if !userInfo.IsStaff() && application.UserID != userInfo.ID {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Not allowed to view this application",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Sampling application retrieved successfully",
		Data:    application,
	})
}

// StaffIndex lists every application for staff, newest first
func (sc *SamplingController) StaffIndex(c *fiber.Ctx) error {
	var applications []samplingModel.SamplingApplication
	query := sc.DB.Preload("User").Preload("AssignedChineseStaff").Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&applications).Error; err != nil {
		logger.Error("Failed to list sampling applications", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Sampling applications retrieved successfully",
		Data:    applications,
	})
}

// StaffUpdate applies fee inputs; the total fee is recomputed on every save
func (sc *SamplingController) StaffUpdate(c *fiber.Ctx) error {
	reservationNumber := c.Params("reservationNumber")

	var req samplingTypes.StaffUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	var application samplingModel.SamplingApplication
	err := sc.DB.Where("reservation_number = ?", reservationNumber).First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Application not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to find sampling application", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	application.SampleFee = req.SampleFee
	application.ShippingFee = req.ShippingFee
	application.TrackingNumber = req.TrackingNumber

	if req.SampleFee != nil || req.ShippingFee != nil {
		total := decimal.Zero
		if req.SampleFee != nil {
			total = total.Add(*req.SampleFee)
		}
		if req.ShippingFee != nil {
			total = total.Add(*req.ShippingFee)
		}
		total = total.Round(2)
		application.TotalFee = &total
	} else {
		application.TotalFee = nil
	}

	if err := sc.DB.Save(&application).Error; err != nil {
		logger.Error("Failed to update sampling application", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update application",
			Data:    nil,
		})
	}

	sc.Logger.Log(activity.ActivityLog{
		ServiceType:       order.ServiceSampling.String(),
		ReservationNumber: reservationNumber,
		Action:            activity.ActionUpdated,
		Details:           "fee fields updated",
	})

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Sampling application updated successfully",
		Data:    application,
	})
}
