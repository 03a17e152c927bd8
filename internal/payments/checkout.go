package payments

import (
	"context"
	"math"
)

// Session is the provider-agnostic view of one checkout attempt.
type Session struct {
	// TransactionID is the provider's settlement identifier; it is the
	// idempotency key for reconciliation.
	TransactionID string

	// PaymentStatus is normalized to "paid" when the provider reports
	// a completed payment; any other value means not completed.
	PaymentStatus string

	AmountMinor   int64
	Currency      string
	CustomerEmail string

	Metadata map[string]string
}

type CreateSessionInput struct {
	BookingID   string
	BookingName string
	TrackingID  string

	CustomerEmail string
	AmountMinor   int64
	Currency      string
}

type CreatedSession struct {
	ID  string
	URL string
}

// Provider is the external checkout collaborator. Implementations wrap
// one concrete payment SDK; tests use a fake.
type Provider interface {
	CreateSession(ctx context.Context, in CreateSessionInput) (*CreatedSession, error)
	GetSession(ctx context.Context, sessionID string) (*Session, error)
}

const StatusPaid = "paid"

// MinorUnits converts a major-unit amount to integer minor units.
// Rounding, not truncation: 4.35 is 435 cents even when the float sits
// just under it.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
