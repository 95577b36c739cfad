package file

import "time"

// Storage backend markers for an uploaded file
const (
	StorageS3    = "s3"
	StorageLocal = "local"
)

// UploadedFile records a file attached to an order, keyed by reservation number.
// StorageKey is either the S3 object key or the local path, depending on Storage.
type UploadedFile struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	ReservationNumber string `gorm:"type:varchar(50);not null;index" json:"reservation_number"`
	Category          string `gorm:"type:varchar(100);not null" json:"category"`
	UploadPurpose     string `gorm:"type:varchar(100)" json:"upload_purpose"`

	OriginalFileName string `gorm:"type:varchar(255);not null" json:"original_file_name"`
	StoredFileName   string `gorm:"type:varchar(255);not null" json:"stored_file_name"`
	StorageKey       string `gorm:"type:varchar(1024);not null" json:"storage_key"`
	Storage          string `gorm:"type:varchar(10);not null" json:"storage"`
	MimeType         string `gorm:"type:varchar(100)" json:"mime_type"`
	FileSize         int64  `json:"file_size"`

	UploadedBy uint      `gorm:"index" json:"uploaded_by"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the UploadedFile model
func (UploadedFile) TableName() string {
	return "uploaded_files"
}
