package response

import (
	"time"

	"veredicto/internal/domain/entities"
)

// ReportResponse is the paywall projection of a report. Premium fields are
// only populated once the matching unlock flag is true; a locked record
// serializes them as absent, never as empty strings a client could probe.
type ReportResponse struct {
	ID               string   `json:"id"`
	Domain           string   `json:"domain"`
	ModulesSelected  []string `json:"modules_selected"`
	ProblemsDetected []string `json:"problems_detected"`
	TechnicalSummary string   `json:"technical_summary"`

	Paid         bool `json:"paid"`
	Sent         bool `json:"sent"`
	RepairActive bool `json:"repair_active"`

	FullReport       *string `json:"full_report,omitempty"`
	SuggestedActions *string `json:"suggested_actions,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
}

func FromReport(rep entities.Report) ReportResponse {
	resp := ReportResponse{
		ID:               rep.ID,
		Domain:           rep.Domain,
		ModulesSelected:  rep.ModulesSelected,
		ProblemsDetected: rep.ProblemsDetected,
		TechnicalSummary: rep.TechnicalSummary,
		Paid:             rep.Paid,
		Sent:             rep.Sent,
		RepairActive:     rep.RepairActive,
		CreatedAt:        rep.CreatedAt,
		SentAt:           rep.SentAt,
	}
	if rep.Paid {
		resp.FullReport = &rep.FullReport
	}
	if rep.RepairActive {
		resp.SuggestedActions = &rep.SuggestedActions
	}
	return resp
}

// AnalyzeResponse acknowledges report creation with the free-tier projection.
type AnalyzeResponse struct {
	ReportID string         `json:"report_id"`
	Report   ReportResponse `json:"report"`
}

func FromCreatedReport(rep entities.Report) AnalyzeResponse {
	return AnalyzeResponse{
		ReportID: rep.ID,
		Report:   FromReport(rep),
	}
}

// CheckoutResponse carries the provider-hosted payment page URL.
type CheckoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
}
