package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	domain "github.com/HomeDecore/decor-booking-api/internal/domain/booking"
	"github.com/HomeDecore/decor-booking-api/internal/httperr"
	"github.com/HomeDecore/decor-booking-api/internal/timezone"
	"github.com/HomeDecore/decor-booking-api/internal/tracking"
)

// BookedDateLayout is the frontend's DD-MM-YYYY calendar form.
const BookedDateLayout = "02-01-2006"

// ======================================================
// INPUT
// ======================================================

// AssignDecoratorInput updates booking terms and optionally assigns a
// decorator; all fields are optional, nil means "leave as is".
type AssignDecoratorInput struct {
	BookingID string

	BookedDate *string
	SquareFeet *float64
	FinalCost  *float64

	DecoratorID    string
	DecoratorName  string
	DecoratorEmail string
}

// AssignDecoratorResult reports both side effects separately so a
// caller can detect partial application.
type AssignDecoratorResult struct {
	ModifiedCount    int64 `json:"modifiedCount"`
	DecoratorUpdated int64 `json:"decoratorUpdated"`
}

// ======================================================
// USE CASE
// ======================================================

type AssignDecorator struct {
	repo   domain.Repository
	ledger *tracking.Dispatcher
	tz     string
}

func NewAssignDecorator(
	repo domain.Repository,
	ledger *tracking.Dispatcher,
	tz string,
) *AssignDecorator {
	return &AssignDecorator{
		repo:   repo,
		ledger: ledger,
		tz:     tz,
	}
}

func (uc *AssignDecorator) Execute(
	ctx context.Context,
	in AssignDecoratorInput,
) (*AssignDecoratorResult, error) {

	// Validate everything before any mutation.
	if in.BookedDate != nil {
		if err := uc.validateBookedDate(*in.BookedDate); err != nil {
			return nil, err
		}
	}
	if in.SquareFeet != nil && *in.SquareFeet < 0 {
		return nil, httperr.ErrBusiness("negative_square_feet")
	}
	if in.FinalCost != nil && *in.FinalCost < 0 {
		return nil, httperr.ErrBusiness("negative_final_cost")
	}

	b, err := uc.repo.GetBookingByID(ctx, in.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	if in.BookedDate != nil {
		b.BookedDate = *in.BookedDate
	}
	if in.SquareFeet != nil {
		b.SquareFeet = *in.SquareFeet
	}
	if in.FinalCost != nil {
		b.FinalCost = *in.FinalCost
	}

	assigning := in.DecoratorID != ""
	if assigning {
		b.WorkingStatus = string(domain.StatusDecoratorAssigned)
		b.DecoratorID = in.DecoratorID
		b.DecoratorName = in.DecoratorName
		b.DecoratorEmail = in.DecoratorEmail
	}

	modified, err := uc.repo.UpdateBooking(ctx, b)
	if err != nil {
		return nil, err
	}

	res := &AssignDecoratorResult{ModifiedCount: modified}

	if assigning {
		// Secondary write. When it fails the booking update above has
		// already happened; the zero count in the response says so.
		updated, err := uc.repo.SetDecoratorAvailability(
			ctx,
			in.DecoratorID,
			domain.DecoratorInDelivery,
		)
		if err != nil {
			log.Println("decorator availability update failed:", err)
		}
		res.DecoratorUpdated = updated

		uc.ledger.Dispatch(tracking.Event{
			TrackingID: b.TrackingID,
			Status:     string(domain.StatusDecoratorAssigned),
		})
	}

	return res, nil
}

func (uc *AssignDecorator) validateBookedDate(raw string) error {
	loc := timezone.Location(uc.tz)

	d, err := time.ParseInLocation(BookedDateLayout, raw, loc)
	if err != nil {
		return httperr.ErrBusiness("invalid_booked_date")
	}

	today := timezone.StartOfDay(timezone.NowIn(uc.tz))
	if d.Before(today) {
		return httperr.ErrBusiness("booked_date_in_past")
	}

	return nil
}
