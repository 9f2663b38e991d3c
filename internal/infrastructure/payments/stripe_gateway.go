package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"veredicto/internal/domain/entities"
	"veredicto/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

const checkoutCompletedEventType = "checkout.session.completed"

// StripeGateway creates Checkout Sessions and verifies webhook notifications.
//
// report_id and tier ride along as session metadata, so the webhook recovers
// both without any session->report lookup table on our side.

type StripeGateway struct {
	webhookSecret string
	tolerance     time.Duration
	successURL    string
	cancelURL     string
}

var _ interfaces.ICheckoutGateway = (*StripeGateway)(nil)

func NewStripeGatewayFromEnv() (*StripeGateway, error) {
	secretKey := strings.TrimSpace(os.Getenv("STRIPE_SECRET_KEY"))
	if secretKey == "" {
		log.Printf("[payments][stripe] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}
	stripe.Key = secretKey

	tolerance := getenvSecondsDefault("WEBHOOK_TOLERANCE_SECONDS", 5*time.Minute)
	log.Printf("[payments][stripe] client initialized tolerance=%s", tolerance)
	return &StripeGateway{
		webhookSecret: strings.TrimSpace(os.Getenv("STRIPE_WEBHOOK_SECRET")),
		tolerance:     tolerance,
		successURL:    getenvDefault("SUCCESS_URL", "https://example.com/pago-exitoso?session_id={CHECKOUT_SESSION_ID}"),
		cancelURL:     getenvDefault("CANCEL_URL", "https://example.com/pago-cancelado"),
	}, nil
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, p interfaces.CheckoutParams) (interfaces.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(g.successURL),
		CancelURL:  stripe.String(g.cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(p.Currency),
					UnitAmount: stripe.Int64(p.Amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(p.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	if p.Email != "" {
		params.CustomerEmail = stripe.String(p.Email)
	}
	params.Context = ctx
	params.AddMetadata("report_id", p.ReportID)
	params.AddMetadata("tier", string(p.Tier))

	s, err := session.New(params)
	if err != nil {
		log.Printf("[payments][stripe] session create failed report_id=%s err=%v", p.ReportID, err)
		return interfaces.CheckoutSession{}, fmt.Errorf("%w: %v", interfaces.ErrGatewayUnavailable, err)
	}
	log.Printf("[payments][stripe] session created report_id=%s tier=%s session_id=%s", p.ReportID, p.Tier, s.ID)
	return interfaces.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

// ParseWebhook recomputes the timestamped HMAC over the raw body before any
// business field is decoded; a mismatch or a timestamp outside the skew
// window rejects the notification.
func (g *StripeGateway) ParseWebhook(_ context.Context, payload []byte, header http.Header) (interfaces.CheckoutEvent, error) {
	sig := header.Get("Stripe-Signature")
	event, err := webhook.ConstructEventWithOptions(payload, sig, g.webhookSecret, webhook.ConstructEventOptions{
		Tolerance:                g.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return interfaces.CheckoutEvent{}, fmt.Errorf("%w: %v", interfaces.ErrInvalidSignature, err)
	}

	ev := interfaces.CheckoutEvent{
		EventID: event.ID,
		Type:    string(event.Type),
	}
	if event.Type != checkoutCompletedEventType {
		return ev, nil
	}

	var cs stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
		return interfaces.CheckoutEvent{}, fmt.Errorf("decode checkout session: %w", err)
	}

	ev.SessionID = cs.ID
	ev.ReportID = cs.Metadata["report_id"]
	ev.Tier = entities.Tier(cs.Metadata["tier"])
	ev.Completed = cs.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid
	if cs.CustomerDetails != nil && cs.CustomerDetails.Email != "" {
		ev.PayerEmail = cs.CustomerDetails.Email
	} else {
		ev.PayerEmail = cs.CustomerEmail
	}
	return ev, nil
}
