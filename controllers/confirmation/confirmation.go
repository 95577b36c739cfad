package confirmation

import (
	"errors"
	"fmt"
	"time"

	"sourcing-erp/logger"
	"sourcing-erp/models/activity"
	confirmationModel "sourcing-erp/models/confirmation"
	"sourcing-erp/models/order"
	"sourcing-erp/types"
	confirmationTypes "sourcing-erp/types/confirmation"
	"sourcing-erp/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ConfirmationController handles staff-raised confirmation requests and the
// customer answers to them
type ConfirmationController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewConfirmationController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *ConfirmationController {
	return &ConfirmationController{DB: db, Logger: asyncLogger}
}

// Create raises a confirmation request against an order row. Staff only.
func (cc *ConfirmationController) Create(c *fiber.Ctx) error {
	var req confirmationTypes.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	serviceType, ok := order.ServiceTypeFromReservation(req.ReservationNumber)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Unknown reservation number format",
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

	// Resolve the owning customer from the order row itself
	var customerID uint
	err = cc.DB.Table(serviceType.Table()).
		Select("user_id").
		Where("reservation_number = ?", req.ReservationNumber).
		Take(&customerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to resolve order owner", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	request := confirmationModel.ConfirmationRequest{
		ServiceType:       serviceType.String(),
		ReservationNumber: req.ReservationNumber,
		RequestedByID:     userInfo.ID,
		CustomerID:        customerID,
		Title:             req.Title,
		Message:           req.Message,
		Status:            confirmationModel.ConfirmationPending,
	}

	if err := cc.DB.Create(&request).Error; err != nil {
		logger.Error("Failed to create confirmation request", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save confirmation request",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Confirmation requested on %s", req.ReservationNumber))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Confirmation request created successfully",
		Data:    request,
	})
}

// Pending lists the authenticated customer's unanswered confirmation requests
func (cc *ConfirmationController) Pending(c *fiber.Ctx) error {
	userInfo, err := utils.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found",
			Data:    nil,
		})
	}

	var requests []confirmationModel.ConfirmationRequest
	err = cc.DB.Where("customer_id = ? AND status = ?", userInfo.ID, confirmationModel.ConfirmationPending).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		logger.Error("Failed to list confirmation requests", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Confirmation requests retrieved successfully",
		Data:    requests,
	})
}

// Respond records the customer's answer to a pending confirmation request
func (cc *ConfirmationController) Respond(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid confirmation id",
			Data:    nil,
		})
	}

	var req confirmationTypes.RespondRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
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

	var request confirmationModel.ConfirmationRequest
	err = cc.DB.Where("id = ? AND customer_id = ?", id, userInfo.ID).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Confirmation request not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to find confirmation request", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	if request.Status != confirmationModel.ConfirmationPending {
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "Confirmation request was already answered",
			Data:    nil,
		})
	}

	now := time.Now()
	request.RespondedAt = &now
	if req.Approve {
		request.Status = confirmationModel.ConfirmationApproved
	} else {
		request.Status = confirmationModel.ConfirmationRejected
	}
	if req.Response != "" {
		request.Response = &req.Response
	}

	if err := cc.DB.Save(&request).Error; err != nil {
		logger.Error("Failed to update confirmation request", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save response",
			Data:    nil,
		})
	}

	cc.Logger.Log(activity.ActivityLog{
		UserID:            &userInfo.ID,
		ServiceType:       request.ServiceType,
		ReservationNumber: request.ReservationNumber,
		Action:            activity.ActionConfirmResolved,
		Details:           fmt.Sprintf("confirmation %q %s", request.Title, request.Status),
	})

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Confirmation response recorded",
		Data:    request,
	})
}
