package booking

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	domain "github.com/HomeDecore/decor-booking-api/internal/domain/booking"
	"github.com/HomeDecore/decor-booking-api/internal/models"
	"github.com/HomeDecore/decor-booking-api/internal/tracking"
)

// fakeRepo is an in-memory domain.Repository for use-case tests.
type fakeRepo struct {
	nextID   uint
	bookings map[string]models.Booking

	decorators   map[string]string
	decoratorErr error

	payments map[string]models.Payment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		bookings:   make(map[string]models.Booking),
		decorators: make(map[string]string),
		payments:   make(map[string]models.Payment),
	}
}

func (r *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	r.nextID++
	b.ID = r.nextID
	r.bookings[strconv.Itoa(int(b.ID))] = *b
	return nil
}

func (r *fakeRepo) GetBookingByID(_ context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := b
	return &copied, nil
}

func (r *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) (int64, error) {
	id := strconv.Itoa(int(b.ID))
	if _, ok := r.bookings[id]; !ok {
		return 0, nil
	}
	r.bookings[id] = *b
	return 1, nil
}

func (r *fakeRepo) DeleteBooking(_ context.Context, id string) (int64, error) {
	if _, ok := r.bookings[id]; !ok {
		return 0, nil
	}
	delete(r.bookings, id)
	return 1, nil
}

func (r *fakeRepo) ListBookings(_ context.Context, f domain.Filter) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if f.UserEmail != "" && b.UserEmail != f.UserEmail {
			continue
		}
		if f.DecoratorEmail != "" && b.DecoratorEmail != f.DecoratorEmail {
			continue
		}
		if f.WorkingStatus != "" && b.WorkingStatus != f.WorkingStatus {
			continue
		}
		if f.ExcludeFinished && b.WorkingStatus == string(domain.StatusFinishedWork) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeRepo) SetDecoratorAvailability(_ context.Context, decoratorID, status string) (int64, error) {
	if r.decoratorErr != nil {
		return 0, r.decoratorErr
	}
	if _, ok := r.decorators[decoratorID]; !ok {
		return 0, nil
	}
	r.decorators[decoratorID] = status
	return 1, nil
}

func (r *fakeRepo) FindPaymentByTransactionID(_ context.Context, txID string) (*models.Payment, error) {
	p, ok := r.payments[txID]
	if !ok {
		return nil, nil
	}
	copied := p
	return &copied, nil
}

func (r *fakeRepo) CreatePayment(_ context.Context, p *models.Payment) error {
	if _, ok := r.payments[p.TransactionID]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.payments[p.TransactionID] = *p
	return nil
}

func (r *fakeRepo) ListPaymentsByEmail(_ context.Context, email string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range r.payments {
		if email == "" || p.CustomerEmail == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRepo) CountByWorkingStatus(_ context.Context) ([]domain.StatusCount, error) {
	counts := make(map[string]int64)
	for _, b := range r.bookings {
		counts[b.WorkingStatus]++
	}
	var out []domain.StatusCount
	for s, n := range counts {
		out = append(out, domain.StatusCount{WorkingStatus: s, Count: n})
	}
	return out, nil
}

func (r *fakeRepo) CountByCategory(_ context.Context) ([]domain.CategoryCount, error) {
	counts := make(map[string]int64)
	for _, b := range r.bookings {
		counts[b.Category]++
	}
	var out []domain.CategoryCount
	for cat, n := range counts {
		out = append(out, domain.CategoryCount{Category: cat, Count: n})
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

var errDecoratorStore = errors.New("decorator store down")

// captureAppender records ledger appends for assertions.
type captureAppender struct {
	ch chan tracking.Event
}

func newCaptureAppender() *captureAppender {
	return &captureAppender{ch: make(chan tracking.Event, 16)}
}

func (a *captureAppender) Log(trackingID, status string) error {
	a.ch <- tracking.Event{TrackingID: trackingID, Status: status}
	return nil
}
