package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"_id"`

	Name            string  `gorm:"size:100;not null" json:"name"`
	Image           string  `gorm:"size:255" json:"image"`
	Price           float64 `json:"price"`
	Category        string  `gorm:"size:50" json:"category"`
	Description     string  `gorm:"size:255" json:"description"`
	LongDescription string  `gorm:"type:text" json:"longDescription"`
	Rating          float64 `json:"rating"`
	Reviews         int     `json:"reviews"`
	Duration        string  `gorm:"size:50" json:"duration"`
	Available       bool    `gorm:"default:true" json:"available"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
