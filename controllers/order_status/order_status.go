package order_status

import (
	"errors"

	"sourcing-erp/logger"
	"sourcing-erp/models/order"
	"sourcing-erp/services"
	"sourcing-erp/services/lifecycle"
	"sourcing-erp/types"
	orderTypes "sourcing-erp/types/order"
	"sourcing-erp/utils"

	"github.com/gofiber/fiber/v2"
)

// OrderStatusController applies lifecycle transitions uniformly across the
// five order tables. The service type is resolved from the reservation number
// prefix, which identifies the entity a record belongs to.
type OrderStatusController struct {
	Lifecycle   *lifecycle.Service
	Permissions *services.PermissionService
}

func NewOrderStatusController(lifecycleSvc *lifecycle.Service) *OrderStatusController {
	return &OrderStatusController{
		Lifecycle:   lifecycleSvc,
		Permissions: services.NewPermissionService(),
	}
}

// ChangeStatus moves an order to a new workflow stage. Transitions outside
// the table are rejected unless an admin sets force.
func (oc *OrderStatusController) ChangeStatus(c *fiber.Ctx) error {
	reservationNumber := c.Params("reservationNumber")

	serviceType, ok := order.ServiceTypeFromReservation(reservationNumber)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Unknown reservation number prefix",
			Data:    nil,
		})
	}

	var req orderTypes.StatusChangeRequest
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

	userInfo, err := utils.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found",
			Data:    nil,
		})
	}

	// Only admins may bypass the transition table
	force := req.Force && oc.Permissions.IsAdmin(c)

	err = oc.Lifecycle.ChangeStatus(serviceType, reservationNumber,
		order.OrderStatus(req.Status), userInfo.Email, force)
	if err != nil {
		if errors.Is(err, lifecycle.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order record not found",
				Data:    nil,
			})
		}
		if errors.Is(err, lifecycle.ErrInvalidTransition) {
			return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
				Status:  fiber.StatusConflict,
				Message: err.Error(),
				Data:    nil,
			})
		}
		logger.Error("Failed to change status", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: err.Error(),
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Status updated successfully",
		Data: fiber.Map{
			"reservation_number": reservationNumber,
			"status":             req.Status,
		},
	})
}

// SetPaymentStatus writes the billing axis independently of the workflow axis
func (oc *OrderStatusController) SetPaymentStatus(c *fiber.Ctx) error {
	reservationNumber := c.Params("reservationNumber")

	serviceType, ok := order.ServiceTypeFromReservation(reservationNumber)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Unknown reservation number prefix",
			Data:    nil,
		})
	}

	var req orderTypes.PaymentStatusRequest
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

	userInfo, err := utils.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found",
			Data:    nil,
		})
	}

	err = oc.Lifecycle.SetPaymentStatus(serviceType, reservationNumber,
		order.PaymentStatus(req.PaymentStatus), userInfo.Email)
	if err != nil {
		if errors.Is(err, lifecycle.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order record not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to set payment status", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: err.Error(),
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Payment status updated successfully",
		Data: fiber.Map{
			"reservation_number": reservationNumber,
			"payment_status":     req.PaymentStatus,
		},
	})
}

// History lists the recorded transitions for an order, oldest first
func (oc *OrderStatusController) History(c *fiber.Ctx) error {
	reservationNumber := c.Params("reservationNumber")

	events, err := oc.Lifecycle.Events(reservationNumber)
	if err != nil {
		logger.Error("Failed to load status events", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Status history retrieved successfully",
		Data:    events,
	})
}
