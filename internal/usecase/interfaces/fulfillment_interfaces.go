package interfaces

import (
	"context"

	"veredicto/internal/domain/entities"
)

// IFulfillmentQueue decouples the webhook ingestor from the fulfillment
// worker: the ingestor only hands over (report id, tier) after the unlock is
// durably recorded.
type IFulfillmentQueue interface {
	Enqueue(reportID string, tier entities.Tier)
}

// ISweepLock serializes the recovery sweep across replicas. Acquire returns
// acquired=false when another replica holds the lock; release is a no-op when
// not acquired.
type ISweepLock interface {
	Acquire(ctx context.Context) (release func(), acquired bool, err error)
}

// IContentSynthesizer produces the premium payloads from the free-tier
// analysis fields. The real analysis engine sits behind this boundary.
type IContentSynthesizer interface {
	ComposeFullReport(ctx context.Context, r entities.Report) (string, error)
	ComposeRepairPlan(ctx context.Context, r entities.Report) (string, error)
}

// IReportRenderer turns an unlocked report into the deliverable artifact
// (PDF bytes).
type IReportRenderer interface {
	Render(ctx context.Context, r entities.Report) ([]byte, error)
}

// IReportMailer delivers the rendered artifact. Delivery is at-least-once;
// implementations must tolerate duplicate sends for the same report.
type IReportMailer interface {
	SendReport(ctx context.Context, email string, r entities.Report, pdf []byte) error
}
