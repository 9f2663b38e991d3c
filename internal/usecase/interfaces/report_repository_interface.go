package interfaces

import (
	"context"

	"veredicto/internal/domain/entities"
)

// IReportRepository abstracts DynamoDB persistence for Report.
//
// Mutations are single-item conditional writes, so two concurrent mutations on
// the same report id are serialized by the store; "has this event id been
// processed" is the write condition itself, never a separate read.
// All getters use zero-value Report to signal "not found" (callers map that to
// their own not-found error).

type IReportRepository interface {
	Create(ctx context.Context, r entities.Report) (entities.Report, error)
	GetByID(ctx context.Context, id string) (entities.Report, error)

	// AddPendingCheckout records sessionID -> tier in the report's pending
	// checkout map. Repeated calls for the same report accumulate sessions.
	AddPendingCheckout(ctx context.Context, id, sessionID string, tier entities.Tier) (entities.Report, error)

	// ApplyPaidEvent atomically flips the tier flag, records the event id in
	// the processed set and consumes the pending checkout entry. Returns
	// applied=false when the event id was already processed (idempotent
	// replay). Zero-value report + applied=false means the report is unknown.
	ApplyPaidEvent(ctx context.Context, id string, ev entities.PaidEvent) (entities.Report, bool, error)

	// SetFullReport writes the premium payload; the store rejects the write
	// unless paid is already true.
	SetFullReport(ctx context.Context, id, content string) (entities.Report, error)

	// SetSuggestedActions writes the repair plan; rejected unless
	// repair_active is already true.
	SetSuggestedActions(ctx context.Context, id, content string) (entities.Report, error)

	MarkSent(ctx context.Context, id string) (entities.Report, error)

	// RecordDeliveryFailure increments the attempt counter and flips
	// needs_review once maxAttempts is reached.
	RecordDeliveryFailure(ctx context.Context, id string, maxAttempts int) (entities.Report, error)

	// ListAwaitingFulfillment returns reports with a durably recorded unlock
	// whose fulfillment has not completed: paid && !sent, or repair_active
	// with no suggested actions yet. Records flagged needs_review are
	// excluded; they wait for an operator.
	ListAwaitingFulfillment(ctx context.Context) ([]entities.Report, error)
}
