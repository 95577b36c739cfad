package factory_contact

import (
	"errors"
	"fmt"

	"sourcing-erp/logger"
	"sourcing-erp/models/activity"
	factoryModel "sourcing-erp/models/factory_contact"
	"sourcing-erp/models/order"
	"sourcing-erp/services/assignment"
	"sourcing-erp/services/reservation"
	"sourcing-erp/services/translation"
	"sourcing-erp/types"
	factoryTypes "sourcing-erp/types/factory_contact"
	"sourcing-erp/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FactoryContactController handles factory outreach endpoints
type FactoryContactController struct {
	DB          *gorm.DB
	Logger      *logger.AsyncLogger
	Assignment  *assignment.Service
	Translation *translation.Service
}

func NewFactoryContactController(db *gorm.DB, asyncLogger *logger.AsyncLogger,
	assignmentSvc *assignment.Service, translationSvc *translation.Service) *FactoryContactController {
	return &FactoryContactController{
		DB:          db,
		Logger:      asyncLogger,
		Assignment:  assignmentSvc,
		Translation: translationSvc,
	}
}

// Store creates a new factory contact request
func (fc *FactoryContactController) Store(c *fiber.Ctx) error {
	var req factoryTypes.CreateRequest
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

	reservationNumber, err := reservation.GenerateUnique(fc.DB, order.ServiceFactoryContact)
	if err != nil {
		logger.Error("Failed to generate reservation number", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to generate reservation number",
			Data:    nil,
		})
	}

	request := factoryModel.FactoryContactRequest{
		ReservationNumber: reservationNumber,
		UserID:            userInfo.ID,
		CompanyName:       req.CompanyName,
		ContactPerson:     req.ContactPerson,
		ContactPhone:      req.ContactPhone,
		ContactEmail:      req.ContactEmail,
		FactoryName:       req.FactoryName,
		ProductName:       req.ProductName,
		TargetQuantity:    req.TargetQuantity,
		TargetPrice:       req.TargetPrice,
		Inquiry:           req.Inquiry,
		Status:            order.StatusSubmitted,
		PaymentStatus:     order.PaymentNotRequired,
	}
	if req.FactoryURL != "" {
		request.FactoryURL = &req.FactoryURL
	}
	if req.FactoryContact != "" {
		request.FactoryContact = &req.FactoryContact
	}

	if err := fc.DB.Create(&request).Error; err != nil {
		logger.Error("Failed to create factory contact request", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save request",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Factory contact request created: %s", reservationNumber))

	fc.Logger.Log(activity.ActivityLog{
		UserID:            &userInfo.ID,
		ServiceType:       order.ServiceFactoryContact.String(),
		ReservationNumber: reservationNumber,
		Action:            activity.ActionCreated,
		Details:           fmt.Sprintf("factory contact request for %s", req.FactoryName),
	})

	// Best-effort side effects; neither can fail the create
	fc.Assignment.AutoAssign(order.ServiceFactoryContact, reservationNumber)
	fc.Translation.TranslateFieldsAsync(order.ServiceFactoryContact, reservationNumber, map[string]string{
		"inquiry_zh": req.Inquiry,
	})

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Factory contact request created successfully",
		Data:    request,
	})
}

// Index lists the authenticated customer's own requests
func (fc *FactoryContactController) Index(c *fiber.Ctx) error {
	userInfo, err := utils.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found",
			Data:    nil,
		})
	}

	var requests []factoryModel.FactoryContactRequest
	if err := fc.DB.Where("user_id = ?", userInfo.ID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		logger.Error("Failed to list factory contact requests", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Factory contact requests retrieved successfully",
		Data:    requests,
	})
}

// Show returns a single request by reservation number
func (fc *FactoryContactController) Show(c *fiber.Ctx) error {
	reservationNumber := c.Params("reservationNumber")

	var request factoryModel.FactoryContactRequest
	err := fc.DB.Preload("User").Preload("AssignedChineseStaff").
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
		logger.Error("Failed to find factory contact request", err)
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
		Message: "Factory contact request retrieved successfully",
		Data:    request,
	})
}

// StaffIndex lists every request for staff, newest first
func (fc *FactoryContactController) StaffIndex(c *fiber.Ctx) error {
	var requests []factoryModel.FactoryContactRequest
	query := fc.DB.Preload("User").Preload("AssignedChineseStaff").Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&requests).Error; err != nil {
		logger.Error("Failed to list factory contact requests", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Factory contact requests retrieved successfully",
		Data:    requests,
	})
}

// StaffUpdate records the outcome of the outreach
func (fc *FactoryContactController) StaffUpdate(c *fiber.Ctx) error {
	reservationNumber := c.Params("reservationNumber")

	var req factoryTypes.StaffUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	var request factoryModel.FactoryContactRequest
	err := fc.DB.Where("reservation_number = ?", reservationNumber).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Request not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to find factory contact request", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	request.ContactResult = req.ContactResult

	if err := fc.DB.Save(&request).Error; err != nil {
		logger.Error("Failed to update factory contact request", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update request",
			Data:    nil,
		})
	}

	fc.Logger.Log(activity.ActivityLog{
		ServiceType:       order.ServiceFactoryContact.String(),
		ReservationNumber: reservationNumber,
		Action:            activity.ActionUpdated,
		Details:           "contact result recorded",
	})

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Factory contact request updated successfully",
		Data:    request,
	})
}
