package inspection

import (
	"errors"
	"fmt"

	"sourcing-erp/logger"
	"sourcing-erp/models/activity"
	inspectionModel "sourcing-erp/models/inspection"
	"sourcing-erp/models/order"
	"sourcing-erp/services/assignment"
	"sourcing-erp/services/pricing"
	"sourcing-erp/services/reservation"
	"sourcing-erp/services/translation"
	"sourcing-erp/types"
	inspectionTypes "sourcing-erp/types/inspection"
	"sourcing-erp/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// InspectionController handles inspection order endpoints
type InspectionController struct {
	DB          *gorm.DB
	Logger      *logger.AsyncLogger
	Assignment  *assignment.Service
	Translation *translation.Service
}

func NewInspectionController(db *gorm.DB, asyncLogger *logger.AsyncLogger,
	assignmentSvc *assignment.Service, translationSvc *translation.Service) *InspectionController {
	return &InspectionController{
		DB:          db,
		Logger:      asyncLogger,
		Assignment:  assignmentSvc,
		Translation: translationSvc,
	}
}

// Store creates a new inspection application
func (ic *InspectionController) Store(c *fiber.Ctx) error {
	var req inspectionTypes.CreateRequest
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

	reservationNumber, err := reservation.GenerateUnique(ic.DB, order.ServiceInspection)
	if err != nil {
		logger.Error("Failed to generate reservation number", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to generate reservation number",
			Data:    nil,
		})
	}

	application := inspectionModel.InspectionApplication{
		ReservationNumber: reservationNumber,
		UserID:            userInfo.ID,
		CompanyName:       req.CompanyName,
		ContactPerson:     req.ContactPerson,
		ContactPhone:      req.ContactPhone,
		ContactEmail:      req.ContactEmail,
		FactoryName:       req.FactoryName,
		FactoryAddress:    req.FactoryAddress,
		ProductName:       req.ProductName,
		Quantity:          req.Quantity,
		InspectionDate:    req.InspectionDate,
		Status:            order.StatusSubmitted,
		PaymentStatus:     order.PaymentPending,
	}
	if req.FactoryContact != "" {
		application.FactoryContact = &req.FactoryContact
	}
	if req.InspectionItems != "" {
		application.InspectionItems = &req.InspectionItems
	}

	if err := ic.DB.Create(&application).Error; err != nil {
		logger.Error("Failed to create inspection application", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save application",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Inspection application created: %s", reservationNumber))

	ic.Logger.Log(activity.ActivityLog{
		UserID:            &userInfo.ID,
		ServiceType:       order.ServiceInspection.String(),
		ReservationNumber: reservationNumber,
		Action:            activity.ActionCreated,
		Details:           fmt.Sprintf("inspection application for %s", req.ProductName),
	})

	// Best-effort side effects; neither can fail the create
	ic.Assignment.AutoAssign(order.ServiceInspection, reservationNumber)
	ic.Translation.TranslateFieldsAsync(order.ServiceInspection, reservationNumber, map[string]string{
		"inspection_items_zh": req.InspectionItems,
	})

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Inspection application created successfully",
		Data:    application,
	})
}

// Index lists the authenticated customer's own applications
func (ic *InspectionController) Index(c *fiber.Ctx) error {
	userInfo, err := utils.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found",
			Data:    nil,
		})
	}

	var applications []inspectionModel.InspectionApplication
	if err := ic.DB.Where("user_id = ?", userInfo.ID).
		Order("created_at DESC").
		Find(&applications).Error; err != nil {
		logger.Error("Failed to list inspection applications", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Inspection applications retrieved successfully",
		Data:    applications,
	})
}

// Show returns a single application by reservation number
func (ic *InspectionController) Show(c *fiber.Ctx) error {
	reservationNumber := c.Params("reservationNumber")

	var application inspectionModel.InspectionApplication
	err := ic.DB.Preload("User").Preload("AssignedChineseStaff").
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
		logger.Error("Failed to find inspection application", err)
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
		Message: "Inspection application retrieved successfully",
		Data:    application,
	})
}

// StaffIndex lists every application for staff, newest first
func (ic *InspectionController) StaffIndex(c *fiber.Ctx) error {
	var applications []inspectionModel.InspectionApplication
	query := ic.DB.Preload("User").Preload("AssignedChineseStaff").Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&applications).Error; err != nil {
		logger.Error("Failed to list inspection applications", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Inspection applications retrieved successfully",
		Data:    applications,
	})
}

// StaffUpdate applies cost inputs; total, vat and final cost are recomputed
// from unit price and inspection days on every save
func (ic *InspectionController) StaffUpdate(c *fiber.Ctx) error {
	reservationNumber := c.Params("reservationNumber")

	var req inspectionTypes.StaffUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	var application inspectionModel.InspectionApplication
	err := ic.DB.Where("reservation_number = ?", reservationNumber).First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Application not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to find inspection application", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	application.InspectionDays = req.InspectionDays
	application.UnitPrice = req.UnitPrice
	application.ReportNotes = req.ReportNotes

	if req.UnitPrice != nil && req.InspectionDays != nil {
		cost := pricing.Inspection(*req.UnitPrice, *req.InspectionDays)
		application.TotalCost = &cost.Total
		application.VAT = &cost.VAT
		application.FinalCost = &cost.Final
	} else {
		application.TotalCost = nil
		application.VAT = nil
		application.FinalCost = nil
	}

	if err := ic.DB.Save(&application).Error; err != nil {
		logger.Error("Failed to update inspection application", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update application",
			Data:    nil,
		})
	}

	ic.Logger.Log(activity.ActivityLog{
		ServiceType:       order.ServiceInspection.String(),
		ReservationNumber: reservationNumber,
		Action:            activity.ActionUpdated,
		Details:           "cost fields updated",
	})

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Inspection application updated successfully",
		Data:    application,
	})
}
