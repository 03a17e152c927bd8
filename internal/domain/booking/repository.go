package booking

import (
	"context"

	"github.com/HomeDecore/decor-booking-api/internal/models"
)

type StatusCount struct {
	WorkingStatus string `json:"workingStatus"`
	Count         int64  `json:"count"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type Repository interface {
	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBookingByID(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	// UpdateBooking persists the booking and reports how many rows the
	// store actually touched; callers surface that count so partial
	// application is never hidden behind a bare success flag.
	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) (int64, error)

	DeleteBooking(
		ctx context.Context,
		id string,
	) (int64, error)

	ListBookings(
		ctx context.Context,
		f Filter,
	) ([]models.Booking, error)

	// -------- Decorator side effect --------
	SetDecoratorAvailability(
		ctx context.Context,
		decoratorID string,
		status string,
	) (int64, error)

	// -------- Payment --------
	FindPaymentByTransactionID(
		ctx context.Context,
		transactionID string,
	) (*models.Payment, error)

	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	ListPaymentsByEmail(
		ctx context.Context,
		email string,
	) ([]models.Payment, error)

	// -------- Aggregates --------
	CountByWorkingStatus(
		ctx context.Context,
	) ([]StatusCount, error)

	CountByCategory(
		ctx context.Context,
	) ([]CategoryCount, error)
}
