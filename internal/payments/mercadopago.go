package payments

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// MercadoPagoProvider implements Provider over the Mercado Pago
// checkout-pro flow: a preference is the checkout session, and the
// payment the customer is redirected back with is the transaction.
type MercadoPagoProvider struct {
	prefClient    preference.Client
	paymentClient payment.Client
	siteDomain    string
}

func NewMercadoPagoProvider(accessToken, siteDomain string) (*MercadoPagoProvider, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPagoProvider{
		prefClient:    preference.NewClient(cfg),
		paymentClient: payment.NewClient(cfg),
		siteDomain:    siteDomain,
	}, nil
}

func (p *MercadoPagoProvider) CreateSession(
	ctx context.Context,
	in CreateSessionInput,
) (*CreatedSession, error) {

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:     fmt.Sprintf("Please Pay for: %s", in.BookingName),
				Quantity:  1,
				UnitPrice: float64(in.AmountMinor) / 100,
			},
		},
		Payer: &preference.PayerRequest{
			Email: in.CustomerEmail,
		},
		Metadata: map[string]any{
			"booking_id":   in.BookingID,
			"booking_name": in.BookingName,
			"tracking_id":  in.TrackingID,
		},
		ExternalReference: in.BookingID,
		BackURLs: &preference.BackURLsRequest{
			Success: p.siteDomain + "/dashboard/payment-success?session_id={payment_id}",
			Failure: p.siteDomain + "/dashboard/payment-cancelled",
			Pending: p.siteDomain + "/dashboard/payment-cancelled",
		},
	}

	resp, err := p.prefClient.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}

	return &CreatedSession{
		ID:  resp.ID,
		URL: resp.InitPoint,
	}, nil
}

func (p *MercadoPagoProvider) GetSession(
	ctx context.Context,
	sessionID string,
) (*Session, error) {

	id, err := strconv.Atoi(sessionID)
	if err != nil {
		return nil, fmt.Errorf("malformed session id %q: %w", sessionID, err)
	}

	resp, err := p.paymentClient.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	status := resp.Status
	if status == "approved" {
		status = StatusPaid
	}

	metadata := make(map[string]string, len(resp.Metadata))
	for k, v := range resp.Metadata {
		if s, ok := v.(string); ok {
			metadata[k] = s
		}
	}
	// External reference doubles as the booking id when metadata was
	// stripped along the redirect.
	if metadata["booking_id"] == "" && resp.ExternalReference != "" {
		metadata["booking_id"] = resp.ExternalReference
	}

	return &Session{
		TransactionID: strconv.Itoa(resp.ID),
		PaymentStatus: status,
		AmountMinor:   MinorUnits(resp.TransactionAmount),
		Currency:      resp.CurrencyID,
		CustomerEmail: resp.Payer.Email,
		Metadata:      metadata,
	}, nil
}

var _ Provider = (*MercadoPagoProvider)(nil)
