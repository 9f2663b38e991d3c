package delivery

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"veredicto/internal/domain/entities"
	"veredicto/internal/usecase/interfaces"
)

const defaultResendAPIURL = "https://api.resend.com/emails"

var ErrMissingResendAPIKey = errors.New("missing RESEND_API_KEY")

// ResendMailer delivers the report PDF as an email attachment through the
// Resend HTTP API. Delivery is at-least-once: a duplicate send for the same
// report is harmless by design.

type ResendMailer struct {
	apiKey     string
	apiURL     string
	fromEmail  string
	httpClient *http.Client
}

var _ interfaces.IReportMailer = (*ResendMailer)(nil)

func NewResendMailerFromEnv() (*ResendMailer, error) {
	apiKey := strings.TrimSpace(os.Getenv("RESEND_API_KEY"))
	if apiKey == "" {
		log.Printf("[delivery][mailer] missing RESEND_API_KEY")
		return nil, ErrMissingResendAPIKey
	}
	return &ResendMailer{
		apiKey:    apiKey,
		apiURL:    getenvDefault("RESEND_API_URL", defaultResendAPIURL),
		fromEmail: getenvDefault("FROM_EMAIL", "Veredicto <noreply@veredicto.example>"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

type resendAttachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type resendRequest struct {
	From        string             `json:"from"`
	To          []string           `json:"to"`
	Subject     string             `json:"subject"`
	Text        string             `json:"text"`
	HTML        string             `json:"html"`
	Attachments []resendAttachment `json:"attachments"`
}

func (m *ResendMailer) SendReport(ctx context.Context, email string, rep entities.Report, pdf []byte) error {
	payload := resendRequest{
		From:    m.fromEmail,
		To:      []string{email},
		Subject: fmt.Sprintf("Tu Reporte Veredicto (PDF) — %s", rep.ID),
		Text: fmt.Sprintf("Hola,\n\nAdjunto encontrarás tu Reporte Oficial Veredicto (ID: %s).\n\nGracias por confiar en Veredicto.\n",
			rep.ID),
		HTML: fmt.Sprintf(`<html><body style="font-family: Arial, sans-serif; color: #333;">`+
			`<h2>Veredicto — Reporte Oficial</h2>`+
			`<p>Hola,</p>`+
			`<p>Adjunto encontrarás tu <strong>Reporte Oficial Veredicto</strong> (ID: <code>%s</code>).</p>`+
			`<p>Gracias por confiar en <strong>Veredicto</strong>.</p>`+
			`</body></html>`, rep.ID),
		Attachments: []resendAttachment{
			{
				Filename: fmt.Sprintf("reporte-veredicto-%s.pdf", rep.ID),
				Content:  base64.StdEncoding.EncodeToString(pdf),
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("resend request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("resend api error %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	log.Printf("[delivery][mailer] email sent email=%s report_id=%s", email, rep.ID)
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
