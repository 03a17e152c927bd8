package tracking

import (
	"strings"

	"gorm.io/gorm"

	"github.com/HomeDecore/decor-booking-api/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

// Details derives the human-readable form of a status label.
func Details(status string) string {
	s := strings.ReplaceAll(status, "_", " ")
	return strings.ReplaceAll(s, "-", " ")
}

func (l *Logger) Log(trackingID, status string) error {
	entry := models.TrackingLog{
		TrackingID: trackingID,
		Status:     status,
		Details:    Details(status),
	}

	return l.db.Create(&entry).Error
}

// ListByTrackingID returns the ledger oldest first. An unknown id is an
// empty history, not an error.
func (l *Logger) ListByTrackingID(trackingID string) ([]models.TrackingLog, error) {
	var entries []models.TrackingLog
	if err := l.db.
		Where("tracking_id = ?", trackingID).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
