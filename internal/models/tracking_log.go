package models

import "time"

// TrackingLog rows are append-only; nothing updates or deletes them.
type TrackingLog struct {
	ID uint `gorm:"primaryKey" json:"_id"`

	TrackingID string `gorm:"size:30;index;not null" json:"trackingId"`
	Status     string `gorm:"size:30;not null" json:"status"`
	Details    string `gorm:"size:100" json:"details"`

	CreatedAt time.Time `json:"createdAt"`
}
