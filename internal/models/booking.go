package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"_id"`

	UserEmail string `gorm:"size:100;index;not null" json:"userEmail"`

	ServiceID   string `gorm:"size:64;not null" json:"serviceId"`
	ServiceName string `gorm:"size:100" json:"serviceName"`
	Category    string `gorm:"size:50" json:"category"`

	// BookedDate keeps the frontend's DD-MM-YYYY string form.
	BookedDate string  `gorm:"size:10" json:"bookedDate"`
	SquareFeet float64 `json:"squareFeet"`
	FinalCost  float64 `json:"finalCost"`

	WorkingStatus string `gorm:"size:30;default:'pending'" json:"workingStatus"`
	PaymentStatus string `gorm:"size:20;default:'unpaid'" json:"paymentStatus"`

	// Historical wire spelling, the deployed frontend depends on it.
	DecoratorID    string `gorm:"size:64" json:"deceretorId,omitempty"`
	DecoratorName  string `gorm:"size:100" json:"deceretorName,omitempty"`
	DecoratorEmail string `gorm:"size:100;index" json:"deceretorEmail,omitempty"`

	TrackingID string `gorm:"size:30;index" json:"trackingId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
