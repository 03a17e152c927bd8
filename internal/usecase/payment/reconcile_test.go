package payment

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	domain "github.com/HomeDecore/decor-booking-api/internal/domain/booking"
	"github.com/HomeDecore/decor-booking-api/internal/httperr"
	"github.com/HomeDecore/decor-booking-api/internal/models"
	"github.com/HomeDecore/decor-booking-api/internal/payments"
	"github.com/HomeDecore/decor-booking-api/internal/tracking"
)

// ------------------------------------------------------
// fakes
// ------------------------------------------------------

type fakeRepo struct {
	nextID   uint
	bookings map[string]models.Booking
	pays     map[string]models.Payment

	createCalls int

	// when set, the next CreatePayment behaves as if this record landed
	// first under the unique index
	winnerOnCreate *models.Payment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		bookings: make(map[string]models.Booking),
		pays:     make(map[string]models.Payment),
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
	delete(r.bookings, id)
	return 1, nil
}

func (r *fakeRepo) ListBookings(_ context.Context, _ domain.Filter) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeRepo) SetDecoratorAvailability(_ context.Context, _, _ string) (int64, error) {
	return 0, nil
}

func (r *fakeRepo) FindPaymentByTransactionID(_ context.Context, txID string) (*models.Payment, error) {
	p, ok := r.pays[txID]
	if !ok {
		return nil, nil
	}
	copied := p
	return &copied, nil
}

func (r *fakeRepo) CreatePayment(_ context.Context, p *models.Payment) error {
	r.createCalls++
	if r.winnerOnCreate != nil {
		r.pays[r.winnerOnCreate.TransactionID] = *r.winnerOnCreate
		r.winnerOnCreate = nil
		return gorm.ErrDuplicatedKey
	}
	if _, ok := r.pays[p.TransactionID]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.pays[p.TransactionID] = *p
	return nil
}

func (r *fakeRepo) ListPaymentsByEmail(_ context.Context, _ string) ([]models.Payment, error) {
	return nil, nil
}

func (r *fakeRepo) CountByWorkingStatus(_ context.Context) ([]domain.StatusCount, error) {
	return nil, nil
}

func (r *fakeRepo) CountByCategory(_ context.Context) ([]domain.CategoryCount, error) {
	return nil, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

type fakeProvider struct {
	sessions map[string]payments.Session
	getCalls int
}

func (p *fakeProvider) CreateSession(_ context.Context, _ payments.CreateSessionInput) (*payments.CreatedSession, error) {
	return &payments.CreatedSession{ID: "pref_1", URL: "https://checkout.example/pref_1"}, nil
}

func (p *fakeProvider) GetSession(_ context.Context, id string) (*payments.Session, error) {
	p.getCalls++
	s, ok := p.sessions[id]
	if !ok {
		return nil, httperr.ErrBusiness("session_not_found")
	}
	copied := s
	return &copied, nil
}

type captureAppender struct {
	ch chan tracking.Event
}

func (a *captureAppender) Log(trackingID, status string) error {
	a.ch <- tracking.Event{TrackingID: trackingID, Status: status}
	return nil
}

// ------------------------------------------------------
// harness
// ------------------------------------------------------

type harness struct {
	repo     *fakeRepo
	provider *fakeProvider
	appender *captureAppender
	uc       *Reconcile
	redis    *miniredis.Miniredis
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	repo := newFakeRepo()
	provider := &fakeProvider{sessions: make(map[string]payments.Session)}
	appender := &captureAppender{ch: make(chan tracking.Event, 16)}

	return &harness{
		repo:     repo,
		provider: provider,
		appender: appender,
		redis:    mr,
		uc: NewReconcile(
			repo,
			provider,
			payments.NewReconcileLock(rdb),
			tracking.NewDispatcher(appender),
		),
	}
}

func (h *harness) seedPaidSession(t *testing.T, sessionID, txID string) string {
	t.Helper()

	b := &models.Booking{
		UserEmail:     "a@x.com",
		ServiceID:     "S1",
		WorkingStatus: string(domain.StatusDecoratorAssigned),
		PaymentStatus: domain.PaymentUnpaid,
		TrackingID:    "TRK-20260831-AABBCCDD",
	}
	if err := h.repo.CreateBooking(context.Background(), b); err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	bookingID := strconv.Itoa(int(b.ID))

	h.provider.sessions[sessionID] = payments.Session{
		TransactionID: txID,
		PaymentStatus: payments.StatusPaid,
		AmountMinor:   12500,
		Currency:      "USD",
		CustomerEmail: "a@x.com",
		Metadata: map[string]string{
			"booking_id":   bookingID,
			"booking_name": "Living Room Makeover",
		},
	}

	return bookingID
}

// ------------------------------------------------------
// tests
// ------------------------------------------------------

func TestReconcileAppliesPayment(t *testing.T) {
	h := newHarness(t)
	bookingID := h.seedPaidSession(t, "sess_123", "pi_456")

	res, err := h.uc.Execute(context.Background(), "sess_123")
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	if !res.Success || res.TransactionID != "pi_456" {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.ModifiedCount != 1 {
		t.Fatalf("booking mutation not reported: %+v", res)
	}

	b, _ := h.repo.GetBookingByID(context.Background(), bookingID)
	if b.PaymentStatus != domain.PaymentPaid {
		t.Fatalf("payment status = %q", b.PaymentStatus)
	}
	if b.WorkingStatus != string(domain.StatusPendingPickup) {
		t.Fatalf("working status = %q", b.WorkingStatus)
	}
	if b.TrackingID != res.TrackingID {
		t.Fatalf("booking tracking id %q != result %q", b.TrackingID, res.TrackingID)
	}
	if b.TrackingID == "TRK-20260831-AABBCCDD" {
		t.Fatal("payment must mint a fresh tracking id")
	}

	p, _ := h.repo.FindPaymentByTransactionID(context.Background(), "pi_456")
	if p == nil {
		t.Fatal("payment record missing")
	}
	if p.Amount != 125 {
		t.Fatalf("amount = %v, want provider minor units / 100", p.Amount)
	}

	select {
	case ev := <-h.appender.ch:
		if ev.Status != string(domain.StatusPendingPickup) {
			t.Fatalf("ledger status = %q", ev.Status)
		}
		if ev.TrackingID != res.TrackingID {
			t.Fatalf("ledger id %q != result id %q", ev.TrackingID, res.TrackingID)
		}
	case <-time.After(time.Second):
		t.Fatal("pending-pickup never hit the ledger")
	}
}

func TestReconcileIdempotent(t *testing.T) {
	h := newHarness(t)
	h.seedPaidSession(t, "sess_123", "pi_456")

	first, err := h.uc.Execute(context.Background(), "sess_123")
	if err != nil {
		t.Fatalf("first reconcile: %v", err)
	}

	second, err := h.uc.Execute(context.Background(), "sess_123")
	if err != nil {
		t.Fatalf("second reconcile: %v", err)
	}

	if !second.Success || second.Message != "Payment already processed" {
		t.Fatalf("second call result %+v", second)
	}
	if second.TransactionID != first.TransactionID {
		t.Fatalf("transaction id drifted: %q vs %q", second.TransactionID, first.TransactionID)
	}
	if second.TrackingID != first.TrackingID {
		t.Fatalf("tracking id drifted: %q vs %q", second.TrackingID, first.TrackingID)
	}
	if h.repo.createCalls != 1 {
		t.Fatalf("payment inserted %d times", h.repo.createCalls)
	}

	// Exactly one ledger entry for the payment transition.
	<-h.appender.ch
	select {
	case ev := <-h.appender.ch:
		t.Fatalf("second ledger entry appended: %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestReconcileNotPaid(t *testing.T) {
	h := newHarness(t)
	bookingID := h.seedPaidSession(t, "sess_123", "pi_456")

	s := h.provider.sessions["sess_123"]
	s.PaymentStatus = "unpaid"
	h.provider.sessions["sess_123"] = s

	res, err := h.uc.Execute(context.Background(), "sess_123")
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if res.Success {
		t.Fatalf("incomplete payment reported as success: %+v", res)
	}

	b, _ := h.repo.GetBookingByID(context.Background(), bookingID)
	if b.PaymentStatus != domain.PaymentUnpaid {
		t.Fatal("incomplete payment mutated the booking")
	}
	if h.repo.createCalls != 0 {
		t.Fatal("incomplete payment inserted a record")
	}
}

func TestReconcileMissingMetadata(t *testing.T) {
	h := newHarness(t)
	h.seedPaidSession(t, "sess_123", "pi_456")

	s := h.provider.sessions["sess_123"]
	s.Metadata = map[string]string{}
	h.provider.sessions["sess_123"] = s

	_, err := h.uc.Execute(context.Background(), "sess_123")
	if !httperr.IsBusiness(err, "missing_metadata") {
		t.Fatalf("want missing_metadata, got %v", err)
	}
}

func TestReconcileLockContention(t *testing.T) {
	h := newHarness(t)
	h.seedPaidSession(t, "sess_123", "pi_456")

	// Another caller holds the transaction and hasn't finished yet.
	h.redis.Set("payments:reconcile:pi_456", "1")

	_, err := h.uc.Execute(context.Background(), "sess_123")
	if !httperr.IsBusiness(err, "reconciliation_in_progress") {
		t.Fatalf("want reconciliation_in_progress, got %v", err)
	}
	if h.repo.createCalls != 0 {
		t.Fatal("contended call inserted a record")
	}
}

func TestReconcileLosesStoreArbitration(t *testing.T) {
	h := newHarness(t)
	h.seedPaidSession(t, "sess_123", "pi_456")

	// A concurrent caller lands its insert between our duplicate check
	// and ours; the unique index rejects us.
	h.repo.winnerOnCreate = &models.Payment{
		TransactionID: "pi_456",
		TrackingID:    "TRK-20260831-11111111",
	}

	res, err := h.uc.Execute(context.Background(), "sess_123")
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if res.TrackingID != "TRK-20260831-11111111" {
		t.Fatalf("loser must return the winner's record, got %+v", res)
	}
}
