package booking

import (
	"context"

	domain "github.com/HomeDecore/decor-booking-api/internal/domain/booking"
	"github.com/HomeDecore/decor-booking-api/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute lists bookings newest first under the given optional filters.
func (uc *ListBookings) Execute(
	ctx context.Context,
	userEmail string,
	decoratorEmail string,
	workingStatus string,
) ([]models.Booking, error) {

	return uc.repo.ListBookings(ctx, domain.Filter{
		UserEmail:      userEmail,
		DecoratorEmail: decoratorEmail,
		WorkingStatus:  workingStatus,
		NewestFirst:    true,
	})
}

// ExecuteQueue is the decorator's active-jobs view; finished work stays
// hidden unless asked for explicitly.
func (uc *ListBookings) ExecuteQueue(
	ctx context.Context,
	decoratorEmail string,
	workingStatus string,
) ([]models.Booking, error) {

	return uc.repo.ListBookings(ctx, domain.QueueFilter(decoratorEmail, workingStatus))
}
