package files

import (
	"fmt"
	"io"

	"sourcing-erp/logger"
	"sourcing-erp/models/activity"
	fileModel "sourcing-erp/models/file"
	"sourcing-erp/models/order"
	"sourcing-erp/services/storage"
	"sourcing-erp/types"
	"sourcing-erp/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FileController handles file attachments on orders
type FileController struct {
	DB      *gorm.DB
	Logger  *logger.AsyncLogger
	Storage storage.Interface

	// Signer is set when bucket storage is available; it resolves download
	// URLs for bucket-stored records.
	Signer *storage.S3Storage
}

func NewFileController(db *gorm.DB, asyncLogger *logger.AsyncLogger, store storage.Interface, signer *storage.S3Storage) *FileController {
	return &FileController{
		DB:      db,
		Logger:  asyncLogger,
		Storage: store,
		Signer:  signer,
	}
}

// Upload stores one or more multipart files against a reservation number.
// Per-file failures are reported in the response but never abort the batch.
func (fc *FileController) Upload(c *fiber.Ctx) error {
	reservationNumber := c.FormValue("reservationNumber")
	category := c.FormValue("category")
	uploadPurpose := c.FormValue("uploadPurpose")

	if reservationNumber == "" || category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "reservationNumber and category are required",
			Data:    nil,
		})
	}
	serviceType, ok := order.ServiceTypeFromReservation(reservationNumber)
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

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid multipart form",
			Data:    nil,
		})
	}
	fileHeaders := form.File["file"]
	if len(fileHeaders) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "No file attached",
			Data:    nil,
		})
	}

	var uploaded []fileModel.UploadedFile
	var failed []string

	for _, header := range fileHeaders {
		src, err := header.Open()
		if err != nil {
			logger.Error(fmt.Sprintf("Failed to open uploaded file %s", header.Filename), err)
			failed = append(failed, header.Filename)
			continue
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			logger.Error(fmt.Sprintf("Failed to read uploaded file %s", header.Filename), err)
			failed = append(failed, header.Filename)
			continue
		}

		mimeType := header.Header.Get("Content-Type")
		result, err := fc.Storage.Upload(c.Context(), reservationNumber, category, header.Filename, mimeType, data)
		if err != nil {
			logger.Error(fmt.Sprintf("Failed to store uploaded file %s", header.Filename), err)
			failed = append(failed, header.Filename)
			continue
		}

		record := fileModel.UploadedFile{
			ReservationNumber: reservationNumber,
			Category:          category,
			UploadPurpose:     uploadPurpose,
			OriginalFileName:  header.Filename,
			StoredFileName:    result.StoredFileName,
			StorageKey:        result.StorageKey,
			Storage:           result.Storage,
			MimeType:          mimeType,
			FileSize:          header.Size,
			UploadedBy:        userInfo.ID,
		}
		if err := fc.DB.Create(&record).Error; err != nil {
			logger.Error(fmt.Sprintf("Failed to record uploaded file %s", header.Filename), err)
			failed = append(failed, header.Filename)
			continue
		}
		uploaded = append(uploaded, record)
	}

	if len(uploaded) > 0 {
		fc.Logger.Log(activity.ActivityLog{
			UserID:            &userInfo.ID,
			ServiceType:       serviceType.String(),
			ReservationNumber: reservationNumber,
			Action:            activity.ActionFileUploaded,
			Details:           fmt.Sprintf("%d file(s) uploaded under %s", len(uploaded), category),
		})
	}

	status := fiber.StatusCreated
	message := "Files uploaded successfully"
	if len(uploaded) == 0 {
		status = fiber.StatusInternalServerError
		message = "All file uploads failed"
	} else if len(failed) > 0 {
		message = fmt.Sprintf("Uploaded %d file(s); %d failed", len(uploaded), len(failed))
	}

	return c.Status(status).JSON(types.ApiResponse{
		Status:  status,
		Message: message,
		Data: fiber.Map{
			"uploaded": uploaded,
			"failed":   failed,
		},
	})
}

// List returns the files attached to a reservation number, with download
// URLs for bucket-stored records
func (fc *FileController) List(c *fiber.Ctx) error {
	reservationNumber := c.Params("reservationNumber")

	var records []fileModel.UploadedFile
	err := fc.DB.Where("reservation_number = ?", reservationNumber).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		logger.Error("Failed to list uploaded files", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	type fileEntry struct {
		fileModel.UploadedFile
		URL string `json:"url,omitempty"`
	}

	entries := make([]fileEntry, 0, len(records))
	for _, record := range records {
		entry := fileEntry{UploadedFile: record}
		if record.Storage == fileModel.StorageS3 && fc.Signer != nil {
			url, signErr := fc.Signer.GetPresignedURL(c.Context(), record.StorageKey)
			if signErr != nil {
				logger.Error("Failed to presign file URL", signErr)
			} else {
				entry.URL = url
			}
		}
		entries = append(entries, entry)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Files retrieved successfully",
		Data:    entries,
	})
}
