package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"veredicto/internal/domain/entities"
	"veredicto/internal/infrastructure/observability"
	"veredicto/internal/usecase/interfaces"
)

var ErrPremiumContentRejected = errors.New("premium content write rejected by store")

// FulfillmentConfig bounds the retry policy. Backoff is exponential from
// BaseBackoff, capped at MaxBackoff; after MaxAttempts failed deliveries the
// record is parked as needs_review for an operator instead of retrying
// forever.
type FulfillmentConfig struct {
	MaxAttempts   int
	BaseBackoff   time.Duration
	MaxBackoff    time.Duration
	SweepInterval time.Duration
	QueueSize     int
}

func LoadFulfillmentConfigFromEnv() FulfillmentConfig {
	return FulfillmentConfig{
		MaxAttempts:   int(getenvInt64Default("MAX_DELIVERY_ATTEMPTS", 8)),
		BaseBackoff:   getenvSecondsDefault("FULFILLMENT_BACKOFF_BASE_SECONDS", 2*time.Second),
		MaxBackoff:    getenvSecondsDefault("FULFILLMENT_BACKOFF_MAX_SECONDS", 5*time.Minute),
		SweepInterval: getenvSecondsDefault("FULFILLMENT_SWEEP_INTERVAL_SECONDS", 60*time.Second),
		QueueSize:     int(getenvInt64Default("FULFILLMENT_QUEUE_SIZE", 128)),
	}
}

type fulfillmentJob struct {
	reportID string
	tier     entities.Tier
}

// FulfillmentUseCase produces the premium artifact after a paid transition.
//
// The webhook ingestor enqueues a job right after the unlock flag is durable;
// the periodic sweep over paid-but-unsent records re-enqueues anything a
// crash or a failed delivery left behind. Every step is idempotent, so a job
// may run any number of times: content synthesis is skipped once written,
// delivery is at-least-once, and sent flips exactly once.

type FulfillmentUseCase struct {
	repo     interfaces.IReportRepository
	synth    interfaces.IContentSynthesizer
	renderer interfaces.IReportRenderer
	mailer   interfaces.IReportMailer
	lock     interfaces.ISweepLock

	cfg  FulfillmentConfig
	jobs chan fulfillmentJob
}

var _ interfaces.IFulfillmentQueue = (*FulfillmentUseCase)(nil)

func NewFulfillmentUseCase(
	repo interfaces.IReportRepository,
	synth interfaces.IContentSynthesizer,
	renderer interfaces.IReportRenderer,
	mailer interfaces.IReportMailer,
	lock interfaces.ISweepLock,
	cfg FulfillmentConfig,
) *FulfillmentUseCase {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 128
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = 2 * time.Second
	}
	if cfg.MaxBackoff < cfg.BaseBackoff {
		cfg.MaxBackoff = cfg.BaseBackoff
	}
	return &FulfillmentUseCase{
		repo:     repo,
		synth:    synth,
		renderer: renderer,
		mailer:   mailer,
		lock:     lock,
		cfg:      cfg,
		jobs:     make(chan fulfillmentJob, cfg.QueueSize),
	}
}

// Start launches the worker and the recovery sweep. Both stop when ctx is
// cancelled.
func (u *FulfillmentUseCase) Start(ctx context.Context) {
	go u.run(ctx)
	go u.sweepLoop(ctx)
}

// Enqueue never blocks the caller (the webhook handler): if the queue is
// full the job is dropped and the sweep picks the record up later.
func (u *FulfillmentUseCase) Enqueue(reportID string, tier entities.Tier) {
	select {
	case u.jobs <- fulfillmentJob{reportID: reportID, tier: tier}:
	default:
		log.Printf("[fulfillment][queue] full, deferring to sweep report_id=%s tier=%s", reportID, tier)
	}
}

func (u *FulfillmentUseCase) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-u.jobs:
			u.process(ctx, job)
		}
	}
}

func (u *FulfillmentUseCase) process(ctx context.Context, job fulfillmentJob) {
	var err error
	if job.tier == entities.TierRepair {
		err = u.FulfillRepair(ctx, job.reportID)
	} else {
		err = u.FulfillVerdict(ctx, job.reportID)
	}
	if err == nil {
		observability.CountFulfillmentRun(string(job.tier), "ok")
		return
	}

	log.Printf("[fulfillment][worker] attempt failed report_id=%s tier=%s err=%v", job.reportID, job.tier, err)
	rep, rerr := u.repo.RecordDeliveryFailure(ctx, job.reportID, u.cfg.MaxAttempts)
	if rerr != nil {
		log.Printf("[fulfillment][worker] failure record failed report_id=%s err=%v", job.reportID, rerr)
	}
	if rep.NeedsReview {
		log.Printf("[fulfillment][worker] NEEDS REVIEW report_id=%s attempts=%d", job.reportID, rep.DeliveryAttempts)
		observability.CountFulfillmentRun(string(job.tier), "parked")
		observability.CountNeedsReview()
		return
	}
	observability.CountFulfillmentRun(string(job.tier), "retry")

	delay := u.backoff(rep.DeliveryAttempts)
	time.AfterFunc(delay, func() {
		select {
		case <-ctx.Done():
		default:
			u.Enqueue(job.reportID, job.tier)
		}
	})
}

func (u *FulfillmentUseCase) backoff(attempts int) time.Duration {
	d := u.cfg.BaseBackoff
	for i := 1; i < attempts; i++ {
		d *= 2
		if d >= u.cfg.MaxBackoff {
			return u.cfg.MaxBackoff
		}
	}
	return d
}

// FulfillVerdict is re-runnable: a crash between the flag flip and delivery
// leaves paid=true, sent=false, which the sweep re-attempts. The email/PDF
// side is treated as at-least-once.
func (u *FulfillmentUseCase) FulfillVerdict(ctx context.Context, reportID string) error {
	rep, err := u.repo.GetByID(ctx, reportID)
	if err != nil {
		return err
	}
	if rep.ID == "" {
		// Nothing to retry against; the webhook path already warned.
		log.Printf("[fulfillment][verdict] report vanished report_id=%s", reportID)
		return nil
	}
	if !rep.Paid {
		// Fulfillment is only triggered after the durable flag flip; seeing
		// this means a correctness bug upstream, not a retryable condition.
		log.Printf("[fulfillment][verdict] BUG: triggered for unpaid report report_id=%s", reportID)
		return nil
	}
	if rep.Sent {
		return nil
	}

	if rep.FullReport == "" {
		content, err := u.synth.ComposeFullReport(ctx, rep)
		if err != nil {
			return fmt.Errorf("compose full report: %w", err)
		}
		rep, err = u.repo.SetFullReport(ctx, reportID, content)
		if err != nil {
			return fmt.Errorf("persist full report: %w", err)
		}
		if rep.ID == "" {
			return ErrPremiumContentRejected
		}
	}

	if rep.Email == "" {
		return fmt.Errorf("report %s has no delivery address", reportID)
	}
	if u.renderer == nil || u.mailer == nil {
		return errors.New("delivery pipeline not configured")
	}

	pdf, err := u.renderer.Render(ctx, rep)
	if err != nil {
		return fmt.Errorf("render artifact: %w", err)
	}
	if err := u.mailer.SendReport(ctx, rep.Email, rep, pdf); err != nil {
		return fmt.Errorf("deliver artifact: %w", err)
	}

	if _, err := u.repo.MarkSent(ctx, reportID); err != nil {
		return fmt.Errorf("mark sent: %w", err)
	}
	log.Printf("[fulfillment][verdict] delivered report_id=%s email=%s", reportID, rep.Email)
	return nil
}

func (u *FulfillmentUseCase) FulfillRepair(ctx context.Context, reportID string) error {
	rep, err := u.repo.GetByID(ctx, reportID)
	if err != nil {
		return err
	}
	if rep.ID == "" {
		log.Printf("[fulfillment][repair] report vanished report_id=%s", reportID)
		return nil
	}
	if !rep.RepairActive {
		log.Printf("[fulfillment][repair] BUG: triggered without repair unlock report_id=%s", reportID)
		return nil
	}
	if rep.SuggestedActions != "" {
		return nil
	}

	plan, err := u.synth.ComposeRepairPlan(ctx, rep)
	if err != nil {
		return fmt.Errorf("compose repair plan: %w", err)
	}
	rep, err = u.repo.SetSuggestedActions(ctx, reportID, plan)
	if err != nil {
		return fmt.Errorf("persist repair plan: %w", err)
	}
	if rep.ID == "" {
		return ErrPremiumContentRejected
	}
	log.Printf("[fulfillment][repair] plan ready report_id=%s", reportID)
	return nil
}

func (u *FulfillmentUseCase) sweepLoop(ctx context.Context) {
	interval := u.cfg.SweepInterval
	if interval <= 0 {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	// One pass shortly after boot so restarts re-attempt anything left over.
	u.Sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			u.Sweep(ctx)
		}
	}
}

// Sweep re-enqueues every report whose unlock is recorded but whose
// fulfillment did not observably finish.
func (u *FulfillmentUseCase) Sweep(ctx context.Context) {
	if u.lock != nil {
		release, acquired, err := u.lock.Acquire(ctx)
		if err != nil {
			log.Printf("[fulfillment][sweep] lock error err=%v", err)
			return
		}
		if !acquired {
			return
		}
		defer release()
	}

	reports, err := u.repo.ListAwaitingFulfillment(ctx)
	if err != nil {
		log.Printf("[fulfillment][sweep] list failed err=%v", err)
		return
	}
	for _, rep := range reports {
		if rep.Paid && !rep.Sent {
			u.Enqueue(rep.ID, entities.TierVerdict)
		}
		if rep.RepairActive && rep.SuggestedActions == "" {
			u.Enqueue(rep.ID, entities.TierRepair)
		}
	}
	if len(reports) > 0 {
		log.Printf("[fulfillment][sweep] re-enqueued records=%d", len(reports))
	}
}

func getenvSecondsDefault(key string, def time.Duration) time.Duration {
	n := getenvInt64Default(key, int64(def/time.Second))
	if n <= 0 {
		return def
	}
	return time.Duration(n) * time.Second
}
