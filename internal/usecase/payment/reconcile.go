package payment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/HomeDecore/decor-booking-api/internal/domain/booking"
	"github.com/HomeDecore/decor-booking-api/internal/httperr"
	"github.com/HomeDecore/decor-booking-api/internal/models"
	"github.com/HomeDecore/decor-booking-api/internal/payments"
	"github.com/HomeDecore/decor-booking-api/internal/tracking"
)

// ======================================================
// RESULT
// ======================================================

type ReconcileResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TransactionID string `json:"transactionId,omitempty"`
	TrackingID    string `json:"trackingId,omitempty"`
	ModifiedCount int64  `json:"modifiedCount"`
}

// txLocker is satisfied by payments.ReconcileLock; tests use it to
// observe lock traffic.
type txLocker interface {
	Acquire(ctx context.Context, transactionID string) bool
	Release(ctx context.Context, transactionID string)
}

// ======================================================
// USE CASE
// ======================================================

// Reconcile resolves a checkout session to its final outcome and
// applies it to the booking exactly once. Safe under at-least-once
// delivery: the transaction-id duplicate check makes re-invocation a
// no-op, the lock narrows the race window, and the unique index on
// payments.transaction_id settles whatever slips through.
type Reconcile struct {
	repo     domain.Repository
	provider payments.Provider
	lock     txLocker
	ledger   *tracking.Dispatcher
}

func NewReconcile(
	repo domain.Repository,
	provider payments.Provider,
	lock txLocker,
	ledger *tracking.Dispatcher,
) *Reconcile {
	return &Reconcile{
		repo:     repo,
		provider: provider,
		lock:     lock,
		ledger:   ledger,
	}
}

func (uc *Reconcile) Execute(
	ctx context.Context,
	sessionID string,
) (*ReconcileResult, error) {

	if sessionID == "" {
		return nil, httperr.ErrBusiness("missing_session_id")
	}

	session, err := uc.provider.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	txID := session.TransactionID

	// Duplicate delivery: answer with the original outcome, touch nothing.
	existing, err := uc.repo.FindPaymentByTransactionID(ctx, txID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return alreadyProcessed(existing), nil
	}

	if session.PaymentStatus != payments.StatusPaid {
		return &ReconcileResult{
			Success: false,
			Message: "Payment not completed",
		}, nil
	}

	bookingID := session.Metadata["booking_id"]
	if bookingID == "" {
		return nil, httperr.ErrBusiness("missing_metadata")
	}

	if !uc.lock.Acquire(ctx, txID) {
		// A concurrent call owns this transaction. If it already
		// finished, report its outcome; otherwise tell the caller to
		// retry (the provider redelivers, the client re-polls).
		existing, err := uc.repo.FindPaymentByTransactionID(ctx, txID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return alreadyProcessed(existing), nil
		}
		return nil, httperr.ErrBusiness("reconciliation_in_progress")
	}

	// Fresh tracking id for the payment event; the pre-payment trail
	// stays queryable under the booking's previous id.
	trackingID := tracking.GenerateTrackingID()

	var modified int64
	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		uc.lock.Release(ctx, txID)
		return nil, err
	}
	if b != nil {
		b.PaymentStatus = domain.PaymentPaid
		b.WorkingStatus = string(domain.StatusPendingPickup)
		b.TrackingID = trackingID

		modified, err = uc.repo.UpdateBooking(ctx, b)
		if err != nil {
			uc.lock.Release(ctx, txID)
			return nil, err
		}
	}

	record := &models.Payment{
		Amount:        float64(session.AmountMinor) / 100,
		Currency:      session.Currency,
		CustomerEmail: session.CustomerEmail,
		BookingID:     bookingID,
		BookingName:   session.Metadata["booking_name"],
		TransactionID: txID,
		PaymentStatus: session.PaymentStatus,
		PaidAt:        time.Now(),
		TrackingID:    trackingID,
		WorkingStatus: string(domain.StatusPendingPickup),
	}

	if err := uc.repo.CreatePayment(ctx, record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the store-level arbitration; the winner's record is
			// the truth.
			winner, ferr := uc.repo.FindPaymentByTransactionID(ctx, txID)
			if ferr == nil && winner != nil {
				return alreadyProcessed(winner), nil
			}
		}
		uc.lock.Release(ctx, txID)
		return nil, err
	}

	uc.ledger.Dispatch(tracking.Event{
		TrackingID: trackingID,
		Status:     string(domain.StatusPendingPickup),
	})

	return &ReconcileResult{
		Success:       true,
		Message:       "Payment processed successfully",
		TransactionID: txID,
		TrackingID:    trackingID,
		ModifiedCount: modified,
	}, nil
}

func alreadyProcessed(p *models.Payment) *ReconcileResult {
	return &ReconcileResult{
		Success:       true,
		Message:       "Payment already processed",
		TransactionID: p.TransactionID,
		TrackingID:    p.TrackingID,
	}
}
