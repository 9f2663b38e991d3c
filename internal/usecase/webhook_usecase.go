package usecase

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"veredicto/internal/domain/entities"
	"veredicto/internal/infrastructure/observability"
	"veredicto/internal/usecase/interfaces"
)

// Lookup retries cover the window where a completed event arrives before the
// report (or its pending-session write) is visible. Beyond that the event is
// acknowledged as an orphan; provider redelivery and the recovery sweep cover
// the tail.
const (
	defaultLookupRetries = 3
	defaultLookupBackoff = 200 * time.Millisecond
)

// IWebhookUseCase ingests raw provider notifications.
//
// Error contract: a non-nil error means the notification failed
// authenticity/schema validation and must be rejected (the provider will
// retry). Every failure after validation is logged, counted and acknowledged;
// rejecting a verified event risks the provider giving up before the unlock
// lands, while the recovery sweep can finish the job on our side.

type IWebhookUseCase interface {
	ProcessWebhook(ctx context.Context, payload []byte, header http.Header) error
}

type WebhookUseCase struct {
	repo    interfaces.IReportRepository
	gateway interfaces.ICheckoutGateway
	queue   interfaces.IFulfillmentQueue

	lookupRetries int
	lookupBackoff time.Duration
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(repo interfaces.IReportRepository, gateway interfaces.ICheckoutGateway, queue interfaces.IFulfillmentQueue) *WebhookUseCase {
	return &WebhookUseCase{
		repo:          repo,
		gateway:       gateway,
		queue:         queue,
		lookupRetries: defaultLookupRetries,
		lookupBackoff: defaultLookupBackoff,
	}
}

func (u *WebhookUseCase) ProcessWebhook(ctx context.Context, payload []byte, header http.Header) error {
	if u.gateway == nil {
		return errors.New("checkout gateway not configured")
	}

	// Authenticity first: nothing in the body is trusted until the signature
	// over the raw payload checks out.
	ev, err := u.gateway.ParseWebhook(ctx, payload, header)
	if err != nil {
		if errors.Is(err, interfaces.ErrInvalidSignature) {
			log.Printf("[webhook][usecase] SIGNATURE REJECTED err=%v", err)
		} else {
			log.Printf("[webhook][usecase] malformed notification err=%v", err)
		}
		observability.CountWebhookEvent("rejected")
		return err
	}

	if !ev.Completed {
		log.Printf("[webhook][usecase] ignoring event event_id=%s type=%s", ev.EventID, ev.Type)
		observability.CountWebhookEvent("ignored")
		return nil
	}

	if ev.ReportID == "" || ev.EventID == "" {
		log.Printf("[webhook][usecase] completed event missing metadata event_id=%q session_id=%q", ev.EventID, ev.SessionID)
		observability.CountWebhookEvent("orphan")
		observability.CountOrphanEvent()
		return nil
	}

	tier := ev.Tier
	if !tier.Valid() {
		tier = entities.TierVerdict
	}

	rep, applied, err := u.applyWithRetry(ctx, ev.ReportID, entities.PaidEvent{
		EventID:    ev.EventID,
		SessionID:  ev.SessionID,
		Tier:       tier,
		PayerEmail: ev.PayerEmail,
	})
	if err != nil {
		// Validated event, transient store failure: acknowledge and rely on
		// provider redelivery (the event id is not yet recorded, so the retry
		// will apply cleanly).
		log.Printf("[webhook][usecase] apply failed, acking for redelivery event_id=%s report_id=%s err=%v", ev.EventID, ev.ReportID, err)
		observability.CountWebhookEvent("error")
		return nil
	}
	if rep.ID == "" {
		// Unknown report: acknowledge so the provider stops retrying, but
		// surface the integrity signal loudly.
		log.Printf("[webhook][usecase] WARNING paid event for unknown report event_id=%s report_id=%s session_id=%s", ev.EventID, ev.ReportID, ev.SessionID)
		observability.CountWebhookEvent("orphan")
		observability.CountOrphanEvent()
		return nil
	}
	if !applied {
		log.Printf("[webhook][usecase] duplicate event event_id=%s report_id=%s", ev.EventID, ev.ReportID)
		observability.CountWebhookEvent("duplicate")
		return nil
	}

	log.Printf("[webhook][usecase] unlock applied report_id=%s tier=%s event_id=%s", rep.ID, tier, ev.EventID)
	observability.CountWebhookEvent("applied")

	if u.queue != nil {
		u.queue.Enqueue(rep.ID, tier)
	}
	return nil
}

func (u *WebhookUseCase) applyWithRetry(ctx context.Context, reportID string, pe entities.PaidEvent) (entities.Report, bool, error) {
	backoff := u.lookupBackoff
	for attempt := 0; ; attempt++ {
		rep, applied, err := u.repo.ApplyPaidEvent(ctx, reportID, pe)
		if err != nil {
			return entities.Report{}, false, err
		}
		if rep.ID != "" || attempt >= u.lookupRetries {
			return rep, applied, nil
		}
		select {
		case <-ctx.Done():
			return entities.Report{}, false, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}
