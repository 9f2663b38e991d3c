package request

import "strings"

// AnalyzeRequest is the payload posted by the analysis front-end when a scan
// finishes. Only the domain is mandatory; the lists may be empty for a clean
// site.
type AnalyzeRequest struct {
	Domain           string   `json:"domain" binding:"required"`
	ModulesSelected  []string `json:"modules_selected"`
	ProblemsDetected []string `json:"problems_detected"`
	TechnicalSummary string   `json:"technical_summary"`
}

func (r AnalyzeRequest) ResolveDomain() string {
	return strings.TrimSpace(r.Domain)
}

// CheckoutRequest starts a verdict checkout for an existing report.
type CheckoutRequest struct {
	ReportID string `json:"report_id" binding:"required"`
	Email    string `json:"email" binding:"required"`
}

// RepairCheckoutRequest starts a repair checkout. Email is optional here; the
// address from the verdict purchase is reused when omitted.
type RepairCheckoutRequest struct {
	ReportID string `json:"report_id" binding:"required"`
	Email    string `json:"email"`
}
