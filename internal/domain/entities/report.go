package entities

import "time"

// Tier identifies which priced unlock a checkout session targets.

type Tier string

const (
	TierVerdict Tier = "verdict"
	TierRepair  Tier = "repair"
)

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	return t == TierVerdict || t == TierRepair
}

// Report is the unit of work: one site analysis and its paid/unpaid content,
// persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Unlock state machine:
//   - Paid and RepairActive are monotonic: flipped to true by a verified
//     provider event, never reset.
//   - FullReport is written only after Paid is durably true; SuggestedActions
//     only after RepairActive. The read path never serializes premium fields
//     for locked records.
//   - ProcessedEventIDs is the idempotency guard: a provider event id is
//     applied at most once regardless of delivery count.
//   - PendingCheckouts maps provider session id -> tier. Entries are written
//     when a checkout session is created and consumed when the matching event
//     lands. Abandoned sessions simply stay pending; they mutate nothing.
type Report struct {
	ID              string   `json:"id"`
	Domain          string   `json:"domain"`
	ModulesSelected []string `json:"modules_selected"`

	ProblemsDetected []string `json:"problems_detected"`
	TechnicalSummary string   `json:"technical_summary"`

	FullReport       string `json:"full_report,omitempty"`
	SuggestedActions string `json:"suggested_actions,omitempty"`

	Paid         bool `json:"paid"`
	Sent         bool `json:"sent"`
	RepairActive bool `json:"repair_active"`

	// Email is the payer address captured at checkout / from the provider
	// event; delivery target for the verdict PDF.
	Email string `json:"email,omitempty"`

	PendingCheckouts  map[string]Tier `json:"pending_checkout_ids,omitempty"`
	ProcessedEventIDs []string        `json:"processed_event_ids,omitempty"`

	// DeliveryAttempts counts failed fulfillment runs; NeedsReview flips once
	// the attempt ceiling is hit so operators can pick the record up manually.
	DeliveryAttempts int  `json:"delivery_attempts,omitempty"`
	NeedsReview      bool `json:"needs_review,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
}

// EventProcessed reports whether the provider event id was already applied.
func (r Report) EventProcessed(eventID string) bool {
	for _, id := range r.ProcessedEventIDs {
		if id == eventID {
			return true
		}
	}
	return false
}

// PaidEvent is the normalized outcome of a verified "checkout completed"
// provider notification, ready to be applied to a report.
type PaidEvent struct {
	EventID    string
	SessionID  string
	Tier       Tier
	PayerEmail string
}
