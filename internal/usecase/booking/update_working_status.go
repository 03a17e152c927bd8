package booking

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	domain "github.com/HomeDecore/decor-booking-api/internal/domain/booking"
	"github.com/HomeDecore/decor-booking-api/internal/httperr"
	"github.com/HomeDecore/decor-booking-api/internal/tracking"
)

// ======================================================
// INPUT
// ======================================================

type UpdateWorkingStatusInput struct {
	BookingID     string
	WorkingStatus string

	// DecoratorID is optional; the booking's stored decorator wins when
	// it is empty.
	DecoratorID string

	// TrackingID is a fallback for bookings that predate tracking-id
	// minting; the stored id is authoritative whenever present.
	TrackingID string
}

type UpdateWorkingStatusResult struct {
	ModifiedCount int64 `json:"modifiedCount"`
}

// ======================================================
// USE CASE
// ======================================================

type UpdateWorkingStatus struct {
	repo   domain.Repository
	ledger *tracking.Dispatcher
}

func NewUpdateWorkingStatus(
	repo domain.Repository,
	ledger *tracking.Dispatcher,
) *UpdateWorkingStatus {
	return &UpdateWorkingStatus{
		repo:   repo,
		ledger: ledger,
	}
}

func (uc *UpdateWorkingStatus) Execute(
	ctx context.Context,
	in UpdateWorkingStatusInput,
) (*UpdateWorkingStatusResult, error) {

	if in.WorkingStatus == "" {
		return nil, httperr.ErrBusiness("missing_working_status")
	}
	if !domain.IsKnownWorkingStatus(in.WorkingStatus) {
		return nil, httperr.ErrBusiness("unknown_working_status")
	}

	b, err := uc.repo.GetBookingByID(ctx, in.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	trackingID := b.TrackingID
	if trackingID == "" {
		trackingID = in.TrackingID
	}

	b.WorkingStatus = in.WorkingStatus
	if in.DecoratorID != "" {
		b.DecoratorID = in.DecoratorID
	}

	modified, err := uc.repo.UpdateBooking(ctx, b)
	if err != nil {
		return nil, err
	}

	// Finishing the job frees the assigned decorator.
	if domain.IsTerminal(domain.WorkingStatus(in.WorkingStatus)) && b.DecoratorID != "" {
		if _, err := uc.repo.SetDecoratorAvailability(
			ctx,
			b.DecoratorID,
			domain.DecoratorAvailable,
		); err != nil {
			log.Println("decorator availability release failed:", err)
		}
	}

	uc.ledger.Dispatch(tracking.Event{
		TrackingID: trackingID,
		Status:     in.WorkingStatus,
	})

	return &UpdateWorkingStatusResult{ModifiedCount: modified}, nil
}
