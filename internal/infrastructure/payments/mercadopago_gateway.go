package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"veredicto/internal/domain/entities"
	"veredicto/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// MercadoPagoGateway is the Checkout Pro implementation of the checkout
// gateway, for deployments that take payments through Mercado Pago instead of
// Stripe.
//
// The notification only carries the payment id; the payment itself (with our
// external_reference/metadata) has to be fetched back from the API, which is
// why this gateway also holds a payment client.

type MercadoPagoGateway struct {
	preferences preference.Client
	payments    payment.Client

	webhookSecret   string
	tolerance       time.Duration
	notificationURL string
	successURL      string
	cancelURL       string
}

var _ interfaces.ICheckoutGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGatewayFromEnv() (*MercadoPagoGateway, error) {
	accessToken := strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if accessToken == "" {
		log.Printf("[payments][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payments][mercadopago] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payments][mercadopago] client initialized")

	return &MercadoPagoGateway{
		preferences:     preference.NewClient(cfg),
		payments:        payment.NewClient(cfg),
		webhookSecret:   strings.TrimSpace(os.Getenv("MERCADOPAGO_WEBHOOK_SECRET")),
		tolerance:       getenvSecondsDefault("WEBHOOK_TOLERANCE_SECONDS", 5*time.Minute),
		notificationURL: getenvDefault("MERCADOPAGO_NOTIFICATION_URL", ""),
		successURL:      getenvDefault("SUCCESS_URL", "https://example.com/pago-exitoso"),
		cancelURL:       getenvDefault("CANCEL_URL", "https://example.com/pago-cancelado"),
	}, nil
}

func (g *MercadoPagoGateway) CreateCheckoutSession(ctx context.Context, p interfaces.CheckoutParams) (interfaces.CheckoutSession, error) {
	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:      p.Description,
				Quantity:   1,
				UnitPrice:  majorUnits(p.Amount, p.Currency),
				CurrencyID: strings.ToUpper(p.Currency),
			},
		},
		ExternalReference: p.ReportID,
		Metadata: map[string]any{
			"report_id": p.ReportID,
			"tier":      string(p.Tier),
		},
		BackURLs: &preference.BackURLsRequest{
			Success: g.successURL,
			Failure: g.cancelURL,
			Pending: g.cancelURL,
		},
	}
	if g.notificationURL != "" {
		req.NotificationURL = g.notificationURL
	}
	if p.Email != "" {
		req.Payer = &preference.PayerRequest{Email: p.Email}
	}

	resp, err := g.preferences.Create(ctx, req)
	if err != nil {
		log.Printf("[payments][mercadopago] preference create failed report_id=%s err=%v", p.ReportID, err)
		return interfaces.CheckoutSession{}, fmt.Errorf("%w: %v", interfaces.ErrGatewayUnavailable, err)
	}
	log.Printf("[payments][mercadopago] preference created report_id=%s tier=%s preference_id=%s", p.ReportID, p.Tier, resp.ID)
	return interfaces.CheckoutSession{ID: resp.ID, URL: resp.InitPoint}, nil
}

// majorUnits converts a minor-unit amount to the major-unit price Mercado
// Pago preferences expect. CLP has no minor unit, so 9900 stays 9900; most
// other currencies carry two decimals.
func majorUnits(amount int64, currency string) float64 {
	switch strings.ToLower(currency) {
	case "clp", "jpy", "krw", "pyg", "vnd":
		return float64(amount)
	default:
		return float64(amount) / 100
	}
}

type mercadoPagoNotification struct {
	Action string `json:"action"`
	Type   string `json:"type"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

// ParseWebhook validates the x-signature header (ts + HMAC-SHA256 over the
// documented manifest) and then resolves the referenced payment. Only data.id
// is read from the body before the signature check; the manifest needs it, and
// nothing else from an unauthenticated payload should be interpreted.
func (g *MercadoPagoGateway) ParseWebhook(ctx context.Context, payload []byte, header http.Header) (interfaces.CheckoutEvent, error) {
	var ref struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &ref); err != nil {
		return interfaces.CheckoutEvent{}, fmt.Errorf("%w: unreadable notification body", interfaces.ErrInvalidSignature)
	}

	if err := g.verifySignature(header, ref.Data.ID); err != nil {
		return interfaces.CheckoutEvent{}, err
	}

	var n mercadoPagoNotification
	if err := json.Unmarshal(payload, &n); err != nil {
		return interfaces.CheckoutEvent{}, fmt.Errorf("decode notification: %w", err)
	}

	ev := interfaces.CheckoutEvent{
		EventID: "mp-payment-" + n.Data.ID,
		Type:    n.Action,
	}
	if n.Type != "payment" || n.Data.ID == "" {
		return ev, nil
	}

	paymentID, err := strconv.Atoi(n.Data.ID)
	if err != nil {
		return interfaces.CheckoutEvent{}, fmt.Errorf("invalid payment id %q: %w", n.Data.ID, err)
	}
	resp, err := g.payments.Get(ctx, paymentID)
	if err != nil {
		return interfaces.CheckoutEvent{}, fmt.Errorf("fetch payment %d: %w", paymentID, err)
	}

	ev.Completed = resp.Status == "approved"
	ev.ReportID = resp.ExternalReference
	if rid, ok := resp.Metadata["report_id"].(string); ok && rid != "" {
		ev.ReportID = rid
	}
	if tier, ok := resp.Metadata["tier"].(string); ok {
		ev.Tier = entities.Tier(tier)
	}
	ev.PayerEmail = resp.Payer.Email
	return ev, nil
}

// verifySignature checks "x-signature: ts=...,v1=..." where v1 is
// HMAC-SHA256 over "id:<data.id>;request-id:<x-request-id>;ts:<ts>;" keyed
// with the webhook secret. Empty sections are omitted from the manifest, per
// the provider's scheme.
func (g *MercadoPagoGateway) verifySignature(header http.Header, dataID string) error {
	if g.webhookSecret == "" {
		return fmt.Errorf("%w: webhook secret not configured", interfaces.ErrInvalidSignature)
	}

	ts, v1 := "", ""
	for _, part := range strings.Split(header.Get("x-signature"), ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(k) {
		case "ts":
			ts = strings.TrimSpace(v)
		case "v1":
			v1 = strings.TrimSpace(v)
		}
	}
	if ts == "" || v1 == "" {
		return fmt.Errorf("%w: missing x-signature parts", interfaces.ErrInvalidSignature)
	}

	tsNum, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: bad ts", interfaces.ErrInvalidSignature)
	}
	// ts is commonly unix seconds; tolerate milliseconds.
	if tsNum > 1_000_000_000_000 {
		tsNum /= 1000
	}
	if skew := time.Since(time.Unix(tsNum, 0)); skew > g.tolerance || skew < -g.tolerance {
		return fmt.Errorf("%w: timestamp outside tolerance", interfaces.ErrInvalidSignature)
	}

	var manifest strings.Builder
	if dataID != "" {
		fmt.Fprintf(&manifest, "id:%s;", strings.ToLower(dataID))
	}
	if reqID := header.Get("x-request-id"); reqID != "" {
		fmt.Fprintf(&manifest, "request-id:%s;", reqID)
	}
	fmt.Fprintf(&manifest, "ts:%s;", ts)

	mac := hmac.New(sha256.New, []byte(g.webhookSecret))
	mac.Write([]byte(manifest.String()))
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(v1))) {
		return fmt.Errorf("%w: hmac mismatch", interfaces.ErrInvalidSignature)
	}
	return nil
}
