package payment

import (
	"context"

	"github.com/HomeDecore/decor-booking-api/internal/httperr"
	"github.com/HomeDecore/decor-booking-api/internal/payments"
)

// ======================================================
// INPUT
// ======================================================

type CreateSessionInput struct {
	BookingID     string
	BookingName   string
	TrackingID    string
	CustomerEmail string
	Cost          float64
}

type CreateSessionResult struct {
	URL string `json:"url"`
}

// ======================================================
// USE CASE
// ======================================================

type CreateCheckoutSession struct {
	provider payments.Provider
}

func NewCreateCheckoutSession(provider payments.Provider) *CreateCheckoutSession {
	return &CreateCheckoutSession{provider: provider}
}

func (uc *CreateCheckoutSession) Execute(
	ctx context.Context,
	in CreateSessionInput,
) (*CreateSessionResult, error) {

	if in.BookingID == "" || in.CustomerEmail == "" {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}
	if in.Cost <= 0 {
		return nil, httperr.ErrBusiness("invalid_amount")
	}

	created, err := uc.provider.CreateSession(ctx, payments.CreateSessionInput{
		BookingID:     in.BookingID,
		BookingName:   in.BookingName,
		TrackingID:    in.TrackingID,
		CustomerEmail: in.CustomerEmail,
		AmountMinor:   payments.MinorUnits(in.Cost),
		Currency:      "USD",
	})
	if err != nil {
		return nil, err
	}

	return &CreateSessionResult{URL: created.URL}, nil
}
