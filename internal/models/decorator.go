package models

import "time"

type Decorator struct {
	ID uint `gorm:"primaryKey" json:"_id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Email     string `gorm:"size:100;index;not null" json:"email"`
	Phone     string `gorm:"size:20" json:"phone"`
	Specialty string `gorm:"size:50" json:"specialty"`

	// Application role: pending until an admin approves or rejects.
	Role string `gorm:"size:20;default:'pending'" json:"role"`

	// pending | available | in_delivery
	WorkingStatus string `gorm:"size:20;default:'pending'" json:"deceretorWorkingStatus"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
