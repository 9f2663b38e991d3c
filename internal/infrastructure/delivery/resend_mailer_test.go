package delivery

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"veredicto/internal/domain/entities"
)

func TestResendMailer_SendReport(t *testing.T) {
	t.Run("posts payload with pdf attachment", func(t *testing.T) {
		var got resendRequest
		var auth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Errorf("decode request: %v", err)
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"id":"email_1"}`))
		}))
		defer srv.Close()

		t.Setenv("RESEND_API_KEY", "re_test_key")
		t.Setenv("RESEND_API_URL", srv.URL)
		m, err := NewResendMailerFromEnv()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rep := entities.Report{ID: "rep-1", Domain: "tienda.cl"}
		pdf := []byte("%PDF-1.4 fake")
		if err := m.SendReport(context.Background(), "payer@b.cl", rep, pdf); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if auth != "Bearer re_test_key" {
			t.Fatalf("unexpected auth header: %q", auth)
		}
		if len(got.To) != 1 || got.To[0] != "payer@b.cl" {
			t.Fatalf("unexpected recipients: %v", got.To)
		}
		if len(got.Attachments) != 1 {
			t.Fatalf("expected one attachment, got %d", len(got.Attachments))
		}
		if got.Attachments[0].Filename != "reporte-veredicto-rep-1.pdf" {
			t.Fatalf("unexpected filename: %q", got.Attachments[0].Filename)
		}
		decoded, err := base64.StdEncoding.DecodeString(got.Attachments[0].Content)
		if err != nil || string(decoded) != string(pdf) {
			t.Fatalf("attachment does not round-trip: %v", err)
		}
	})

	t.Run("api error surfaces", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"message":"invalid from"}`))
		}))
		defer srv.Close()

		t.Setenv("RESEND_API_KEY", "re_test_key")
		t.Setenv("RESEND_API_URL", srv.URL)
		m, err := NewResendMailerFromEnv()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := m.SendReport(context.Background(), "payer@b.cl", entities.Report{ID: "rep-1"}, []byte("x")); err == nil {
			t.Fatalf("expected error on non-2xx response")
		}
	})

	t.Run("missing api key", func(t *testing.T) {
		t.Setenv("RESEND_API_KEY", "")
		if _, err := NewResendMailerFromEnv(); err == nil {
			t.Fatalf("expected configuration error")
		}
	})
}

func TestPDFRenderer_Render(t *testing.T) {
	r := NewPDFRenderer()
	rep := entities.Report{
		ID:               "rep-1",
		Domain:           "tienda.cl",
		ProblemsDetected: []string{"certificado vencido", "enlaces rotos"},
		TechnicalSummary: "resumen técnico",
		FullReport:       "contenido premium",
		SuggestedActions: "plan de reparación",
	}

	pdf, err := r.Render(context.Background(), rep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("expected pdf bytes")
	}
	if string(pdf[:5]) != "%PDF-" {
		t.Fatalf("output is not a pdf: %q", pdf[:5])
	}
}
