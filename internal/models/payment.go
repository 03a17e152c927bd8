package models

import "time"

type Payment struct {
	ID uint `gorm:"primaryKey" json:"_id"`

	Amount        float64 `json:"amount"`
	Currency      string  `gorm:"size:10" json:"currency"`
	CustomerEmail string  `gorm:"size:100;index" json:"customerEmail"`

	BookingID   string `gorm:"size:64;not null" json:"bookingId"`
	BookingName string `gorm:"size:100" json:"bookingName"`

	// One record per provider transaction; the unique index is the
	// backstop for duplicate webhook/poll deliveries.
	TransactionID string `gorm:"size:64;uniqueIndex;not null" json:"transactionId"`

	PaymentStatus string    `gorm:"size:20" json:"paymentStatus"`
	PaidAt        time.Time `json:"paidAt"`

	TrackingID    string `gorm:"size:30" json:"trackingId"`
	WorkingStatus string `gorm:"size:30" json:"workingStatus"`
}
