package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"veredicto/internal/domain/entities"
	"veredicto/internal/usecase/interfaces"
)

const testStripeSecret = "whsec_test_secret"

func newTestStripeGateway(t *testing.T) *StripeGateway {
	t.Helper()
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", testStripeSecret)
	g, err := NewStripeGatewayFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func signStripePayload(t *testing.T, payload []byte, secret string, ts time.Time) string {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func completedSessionPayload(paymentStatus string) []byte {
	return []byte(fmt.Sprintf(`{
		"id": "evt_1",
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": "cs_1",
				"object": "checkout.session",
				"payment_status": %q,
				"customer_details": {"email": "payer@b.cl"},
				"metadata": {"report_id": "rep-1", "tier": "verdict"}
			}
		}
	}`, paymentStatus))
}

func TestStripeGateway_ParseWebhook(t *testing.T) {
	g := newTestStripeGateway(t)

	t.Run("valid completed event", func(t *testing.T) {
		payload := completedSessionPayload("paid")
		header := http.Header{}
		header.Set("Stripe-Signature", signStripePayload(t, payload, testStripeSecret, time.Now()))

		ev, err := g.ParseWebhook(context.Background(), payload, header)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.EventID != "evt_1" || ev.SessionID != "cs_1" {
			t.Fatalf("unexpected ids: %+v", ev)
		}
		if ev.ReportID != "rep-1" || ev.Tier != entities.TierVerdict {
			t.Fatalf("metadata not recovered: %+v", ev)
		}
		if !ev.Completed {
			t.Fatalf("expected completed event")
		}
		if ev.PayerEmail != "payer@b.cl" {
			t.Fatalf("unexpected payer email: %q", ev.PayerEmail)
		}
	})

	t.Run("unpaid session is not completed", func(t *testing.T) {
		payload := completedSessionPayload("unpaid")
		header := http.Header{}
		header.Set("Stripe-Signature", signStripePayload(t, payload, testStripeSecret, time.Now()))

		ev, err := g.ParseWebhook(context.Background(), payload, header)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Completed {
			t.Fatalf("unpaid session must not complete")
		}
	})

	t.Run("tampered payload rejected", func(t *testing.T) {
		payload := completedSessionPayload("paid")
		header := http.Header{}
		header.Set("Stripe-Signature", signStripePayload(t, payload, testStripeSecret, time.Now()))

		tampered := completedSessionPayload("paid")
		tampered[len(tampered)-2] = ' '

		_, err := g.ParseWebhook(context.Background(), tampered, header)
		if !errors.Is(err, interfaces.ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		payload := completedSessionPayload("paid")
		header := http.Header{}
		header.Set("Stripe-Signature", signStripePayload(t, payload, "whsec_other", time.Now()))

		_, err := g.ParseWebhook(context.Background(), payload, header)
		if !errors.Is(err, interfaces.ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("stale timestamp rejected", func(t *testing.T) {
		payload := completedSessionPayload("paid")
		header := http.Header{}
		header.Set("Stripe-Signature", signStripePayload(t, payload, testStripeSecret, time.Now().Add(-time.Hour)))

		_, err := g.ParseWebhook(context.Background(), payload, header)
		if !errors.Is(err, interfaces.ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("missing header rejected", func(t *testing.T) {
		payload := completedSessionPayload("paid")

		_, err := g.ParseWebhook(context.Background(), payload, http.Header{})
		if !errors.Is(err, interfaces.ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("unrelated event type ignored", func(t *testing.T) {
		payload := []byte(`{"id": "evt_2", "type": "payment_intent.created", "data": {"object": {}}}`)
		header := http.Header{}
		header.Set("Stripe-Signature", signStripePayload(t, payload, testStripeSecret, time.Now()))

		ev, err := g.ParseWebhook(context.Background(), payload, header)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Completed || ev.ReportID != "" {
			t.Fatalf("unrelated event must carry no unlock: %+v", ev)
		}
	})
}
