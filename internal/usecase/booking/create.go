package booking

import (
	"context"

	domain "github.com/HomeDecore/decor-booking-api/internal/domain/booking"
	"github.com/HomeDecore/decor-booking-api/internal/httperr"
	"github.com/HomeDecore/decor-booking-api/internal/models"
	"github.com/HomeDecore/decor-booking-api/internal/tracking"
	"github.com/HomeDecore/decor-booking-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserEmail   string
	ServiceID   string
	ServiceName string
	Category    string
	BookedDate  string
	SquareFeet  float64
	FinalCost   float64
}

type CreateBookingResult struct {
	InsertedID uint   `json:"insertedId"`
	TrackingID string `json:"trackingId"`
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	ledger *tracking.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	ledger *tracking.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		ledger: ledger,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*CreateBookingResult, error) {

	if in.UserEmail == "" || in.ServiceID == "" {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}
	if !validators.IsEmailSyntaxValid(in.UserEmail) {
		return nil, httperr.ErrBusiness("invalid_email")
	}
	if in.SquareFeet < 0 || in.FinalCost < 0 {
		return nil, httperr.ErrBusiness("negative_amount")
	}

	// Tracking id is minted exactly once here and never changes on the
	// work axis; only payment reconciliation may replace it.
	trackingID := tracking.GenerateTrackingID()

	b := &models.Booking{
		UserEmail:     in.UserEmail,
		ServiceID:     in.ServiceID,
		ServiceName:   in.ServiceName,
		Category:      in.Category,
		BookedDate:    in.BookedDate,
		SquareFeet:    in.SquareFeet,
		FinalCost:     in.FinalCost,
		WorkingStatus: string(domain.StatusPending),
		PaymentStatus: domain.PaymentUnpaid,
		TrackingID:    trackingID,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.ledger.Dispatch(tracking.Event{
		TrackingID: trackingID,
		Status:     domain.EventBookingPlaced,
	})

	return &CreateBookingResult{
		InsertedID: b.ID,
		TrackingID: trackingID,
	}, nil
}
