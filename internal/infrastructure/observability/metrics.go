package observability

import (
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	appInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "veredicto",
			Subsystem: "app",
			Name:      "info",
			Help:      "Static app info for deployment verification.",
		},
		[]string{"service", "version"},
	)

	webhookEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "veredicto",
			Subsystem: "webhook",
			Name:      "events_total",
			Help:      "Provider webhook events by processing result.",
		},
		[]string{"result"},
	)

	webhookOrphanEventsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "veredicto",
			Subsystem: "webhook",
			Name:      "orphan_events_total",
			Help:      "Verified paid events referencing an unknown report. Data-integrity signal.",
		},
	)

	fulfillmentRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "veredicto",
			Subsystem: "fulfillment",
			Name:      "runs_total",
			Help:      "Fulfillment attempts by tier and result.",
		},
		[]string{"tier", "result"},
	)

	reportsNeedingReview = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "veredicto",
			Subsystem: "fulfillment",
			Name:      "needs_review_total",
			Help:      "Reports parked for manual review after the delivery attempt ceiling.",
		},
	)
)

func init() {
	prometheus.MustRegister(appInfo, webhookEventsTotal, webhookOrphanEventsTotal, fulfillmentRunsTotal, reportsNeedingReview)
}

func SetAppInfo(service string) {
	svc := strings.TrimSpace(service)
	if svc == "" {
		svc = "veredicto"
	}
	ver := strings.TrimSpace(os.Getenv("APP_VERSION"))
	if ver == "" {
		ver = "dev"
	}
	appInfo.WithLabelValues(svc, ver).Set(1)
}

// Webhook results: applied, duplicate, ignored, orphan, rejected, error.
func CountWebhookEvent(result string) {
	webhookEventsTotal.WithLabelValues(result).Inc()
}

func CountOrphanEvent() {
	webhookOrphanEventsTotal.Inc()
}

// Fulfillment results: ok, retry, parked.
func CountFulfillmentRun(tier, result string) {
	fulfillmentRunsTotal.WithLabelValues(tier, result).Inc()
}

func CountNeedsReview() {
	reportsNeedingReview.Inc()
}
