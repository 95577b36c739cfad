package logger

import (
	"log"

	"sourcing-erp/models/activity"

	"gorm.io/gorm"
)

// AsyncLogger drains activity log entries into the database without making
// request handlers wait on the insert.
type AsyncLogger struct {
	db      *gorm.DB
	channel chan activity.ActivityLog
}

func NewAsyncLogger(db *gorm.DB) *AsyncLogger {
	return &AsyncLogger{
		db:      db,
		channel: make(chan activity.ActivityLog, 100), // Buffered channel to hold log entries
	}
}

// ProcessLog consumes queued entries; run it in its own goroutine.
func (logger *AsyncLogger) ProcessLog() {
	log.Println("Starting asynchronous activity logger...")

	for entry := range logger.channel {
		if err := logger.db.Create(&entry).Error; err != nil {
			log.Printf("Failed to insert activity log entry: %v", err)
		}
	}
}

// Log pushes an activity entry into the channel. Drops the entry instead of
// blocking when the buffer is full.
func (logger *AsyncLogger) Log(entry activity.ActivityLog) {
	select {
	case logger.channel <- entry:
	default:
		log.Printf("Activity log buffer full, dropping entry for %s", entry.ReservationNumber)
	}
}
