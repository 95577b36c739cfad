package user

import (
	"errors"

	"sourcing-erp/logger"
	addressModel "sourcing-erp/models/address"
	"sourcing-erp/types"
	addressTypes "sourcing-erp/types/address"
	userTypes "sourcing-erp/types/user"
	"sourcing-erp/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserController handles profile and address book endpoints
type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// Profile returns the authenticated user's own profile
func (uc *UserController) Profile(c *fiber.Ctx) error {
	userInfo, err := utils.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Profile retrieved successfully",
		Data:    userInfo,
	})
}

// UpdateProfile updates the self-service editable profile fields
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	var req userTypes.ProfileUpdateRequest
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

	userInfo.LegalName = req.LegalName
	userInfo.Avatar = req.Avatar
	if req.Phone != "" {
		userInfo.Phone = &req.Phone
	} else {
		userInfo.Phone = nil
	}
	if req.CompanyName != "" {
		userInfo.CompanyName = &req.CompanyName
	} else {
		userInfo.CompanyName = nil
	}

	if err := uc.DB.Save(userInfo).Error; err != nil {
		logger.Error("Failed to update profile", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update profile",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Profile updated successfully",
		Data:    userInfo,
	})
}

// ListShippingAddresses returns the user's saved delivery destinations
func (uc *UserController) ListShippingAddresses(c *fiber.Ctx) error {
	userInfo, err := utils.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found",
			Data:    nil,
		})
	}

	var addresses []addressModel.ShippingAddress
	err = uc.DB.Where("user_id = ?", userInfo.ID).
		Order("is_default DESC, id ASC").
		Find(&addresses).Error
	if err != nil {
		logger.Error("Failed to list shipping addresses", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Shipping addresses retrieved successfully",
		Data:    addresses,
	})
}

// CreateShippingAddress saves a new delivery destination. Marking it default
// clears the flag on every other address.
func (uc *UserController) CreateShippingAddress(c *fiber.Ctx) error {
	var req addressTypes.ShippingAddressRequest
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

	address := addressModel.ShippingAddress{
		UserID:        userInfo.ID,
		Label:         req.Label,
		RecipientName: req.RecipientName,
		Phone:         req.Phone,
		PostalCode:    req.PostalCode,
		Address1:      req.Address1,
		IsDefault:     req.IsDefault,
	}
	if req.Address2 != "" {
		address.Address2 = &req.Address2
	}

	err = uc.DB.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault {
			err := tx.Model(&addressModel.ShippingAddress{}).
				Where("user_id = ?", userInfo.ID).
				Update("is_default", false).Error
			if err != nil {
				return err
			}
		}
		return tx.Create(&address).Error
	})
	if err != nil {
		logger.Error("Failed to create shipping address", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save address",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Shipping address created successfully",
		Data:    address,
	})
}

// UpdateShippingAddress edits one of the user's own addresses
func (uc *UserController) UpdateShippingAddress(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid address id",
			Data:    nil,
		})
	}

	var req addressTypes.ShippingAddressRequest
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

	var address addressModel.ShippingAddress
	err = uc.DB.Where("id = ? AND user_id = ?", id, userInfo.ID).First(&address).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Address not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to find shipping address", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	address.Label = req.Label
	address.RecipientName = req.RecipientName
	address.Phone = req.Phone
	address.PostalCode = req.PostalCode
	address.Address1 = req.Address1
	address.IsDefault = req.IsDefault
	if req.Address2 != "" {
		address.Address2 = &req.Address2
	} else {
		address.Address2 = nil
	}

	err = uc.DB.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault {
			err := tx.Model(&addressModel.ShippingAddress{}).
				Where("user_id = ? AND id <> ?", userInfo.ID, address.ID).
				Update("is_default", false).Error
			if err != nil {
				return err
			}
		}
		return tx.Save(&address).Error
	})
	if err != nil {
		logger.Error("Failed to update shipping address", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update address",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Shipping address updated successfully",
		Data:    address,
	})
}

// DeleteShippingAddress removes one of the user's own addresses
func (uc *UserController) DeleteShippingAddress(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid address id",
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

	result := uc.DB.Where("id = ? AND user_id = ?", id, userInfo.ID).
		Delete(&addressModel.ShippingAddress{})
	if result.Error != nil {
		logger.Error("Failed to delete shipping address", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete address",
			Data:    nil,
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Address not found",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Shipping address deleted successfully",
		Data:    nil,
	})
}

// CompanyAddress returns the registered business address, if any
func (uc *UserController) CompanyAddress(c *fiber.Ctx) error {
	userInfo, err := utils.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found",
			Data:    nil,
		})
	}

	var address addressModel.CompanyAddress
	err = uc.DB.Where("user_id = ?", userInfo.ID).First(&address).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Company address not set",
				Data:    nil,
			})
		}
		logger.Error("Failed to find company address", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Company address retrieved successfully",
		Data:    address,
	})
}

// UpsertCompanyAddress creates or replaces the registered business address
func (uc *UserController) UpsertCompanyAddress(c *fiber.Ctx) error {
	var req addressTypes.CompanyAddressRequest
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

	var address addressModel.CompanyAddress
	err = uc.DB.Where("user_id = ?", userInfo.ID).First(&address).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to find company address", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	address.UserID = userInfo.ID
	address.CompanyName = req.CompanyName
	address.PostalCode = req.PostalCode
	address.Address1 = req.Address1
	if req.BusinessNumber != "" {
		address.BusinessNumber = &req.BusinessNumber
	} else {
		address.BusinessNumber = nil
	}
	if req.RepresentativeName != "" {
		address.RepresentativeName = &req.RepresentativeName
	} else {
		address.RepresentativeName = nil
	}
	if req.Address2 != "" {
		address.Address2 = &req.Address2
	} else {
		address.Address2 = nil
	}

	if err := uc.DB.Save(&address).Error; err != nil {
		logger.Error("Failed to save company address", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save address",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Company address saved successfully",
		Data:    address,
	})
}
