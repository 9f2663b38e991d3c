package interfaces

import (
	"context"
	"errors"
	"net/http"

	"veredicto/internal/domain/entities"
)

var (
	// ErrInvalidSignature is returned when a webhook payload fails the
	// provider signature check (bad HMAC, missing header, stale timestamp).
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrGatewayUnavailable is returned when the payment provider cannot be
	// reached or refuses the session request.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

// CheckoutParams describes one checkout session request. ReportID and Tier
// travel as opaque session metadata so the webhook can recover both without a
// lookup table.
type CheckoutParams struct {
	ReportID    string
	Tier        entities.Tier
	Email       string
	Amount      int64 // minor units of Currency
	Currency    string
	Description string
}

// CheckoutSession is the provider-side session the payer is redirected to.
type CheckoutSession struct {
	ID  string
	URL string
}

// CheckoutEvent is a provider notification normalized across gateways.
// Completed is true only for the event type that drives a state transition
// ("checkout completed" with a confirmed payment); everything else is
// acknowledged and ignored by the ingestor.
type CheckoutEvent struct {
	EventID    string
	Type       string
	SessionID  string
	ReportID   string
	Tier       entities.Tier
	PayerEmail string
	Completed  bool
}

// ICheckoutGateway abstracts the payment provider (Stripe, Mercado Pago).
//
// ParseWebhook must verify authenticity over the raw body before decoding any
// business field, and return ErrInvalidSignature on failure.
type ICheckoutGateway interface {
	CreateCheckoutSession(ctx context.Context, p CheckoutParams) (CheckoutSession, error)
	ParseWebhook(ctx context.Context, payload []byte, header http.Header) (CheckoutEvent, error)
}
