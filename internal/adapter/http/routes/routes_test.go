package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"veredicto/internal/infrastructure/payments"

	"github.com/gin-gonic/gin"
)

func TestAddHealthRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	addHealthRoutes(r.Group(""))

	t.Run("service banner", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["service"] == "" {
			t.Fatalf("expected service banner, got %v", body)
		}
	})

	t.Run("liveness", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("metrics", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAddWebhookRoutes_StripePathSpellings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_test")

	sg, err := payments.NewStripeGatewayFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := gin.New()
	addWebhookRoutes(r.Group(""), nil, nil, sg, nil)

	// An unsigned body is rejected with 400 by the handler; a missing route
	// would 404. Both spellings must reach the same ingestion path.
	for _, path := range []string{PathStripeWebhook, PathStripeWebhookAlias} {
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, PathMercadoPagoWebhook, bytes.NewBufferString(`{}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("mercadopago route must not register without its gateway, got %d", w.Code)
	}
}
