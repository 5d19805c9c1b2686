package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "esimhub"

// Prometheus collects broker metrics on its own registry.
type Prometheus struct {
	registry *prometheus.Registry

	orderTransitions     *prometheus.CounterVec
	provisioningAttempts *prometheus.CounterVec
	provisioningDuration *prometheus.HistogramVec
	ledgerEntries        *prometheus.CounterVec
	ledgerMismatches     prometheus.Counter
	idempotency          *prometheus.CounterVec
	reconciledOrders     *prometheus.CounterVec
	reconciliationRuns   prometheus.Counter
	httpRequests         *prometheus.CounterVec
	httpDuration         *prometheus.HistogramVec
}

func NewPrometheus() (*Prometheus, error) {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		orderTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_transitions_total",
			Help:      "Order status transitions",
		}, []string{"from", "to"}),
		provisioningAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provisioning_attempts_total",
			Help:      "Provisioning calls by outcome",
		}, []string{"outcome"}),
		provisioningDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provisioning_duration_seconds",
			Help:      "Duration of provisioning calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		ledgerEntries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_entries_total",
			Help:      "Ledger entries written by type",
		}, []string{"type"}),
		ledgerMismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_mismatches_total",
			Help:      "Vendor balance checks that disagreed with the ledger",
		}),
		idempotency: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "idempotency_decisions_total",
			Help:      "Idempotency lookups by outcome",
		}, []string{"outcome"}),
		reconciledOrders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconciled_orders_total",
			Help:      "Orders handled by the reconciliation sweep by result",
		}, []string{"result"}),
		reconciliationRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconciliation_runs_total",
			Help:      "Completed reconciliation sweeps",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	collectors := []prometheus.Collector{
		p.orderTransitions,
		p.provisioningAttempts,
		p.provisioningDuration,
		p.ledgerEntries,
		p.ledgerMismatches,
		p.idempotency,
		p.reconciledOrders,
		p.reconciliationRuns,
		p.httpRequests,
		p.httpDuration,
	}
	for _, c := range collectors {
		if err := p.registry.Register(c); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func (p *Prometheus) OrderTransition(from, to domain.OrderStatus) {
	p.orderTransitions.WithLabelValues(string(from), string(to)).Inc()
}

func (p *Prometheus) ProvisioningAttempt(kind string, duration time.Duration) {
	p.provisioningAttempts.WithLabelValues(kind).Inc()
	p.provisioningDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

func (p *Prometheus) LedgerEntryWritten(entryType domain.LedgerEntryType) {
	p.ledgerEntries.WithLabelValues(string(entryType)).Inc()
}

func (p *Prometheus) LedgerMismatch() {
	p.ledgerMismatches.Inc()
}

func (p *Prometheus) IdempotencyDecision(outcome domain.IdempotencyOutcome) {
	p.idempotency.WithLabelValues(string(outcome)).Inc()
}

func (p *Prometheus) Reconciliation(report *domain.ReconciliationReport) {
	p.reconciliationRuns.Inc()
	if report == nil {
		return
	}
	counts := map[string]int{
		"provisioned":   report.Provisioned,
		"retried":       report.Retried,
		"still_failing": report.StillFailing,
		"exhausted":     report.Exhausted,
		"manual_review": report.ManualReview,
		"canceled":      report.Canceled,
		"skipped":       report.Skipped,
		"error":         report.Errors,
	}
	for result, n := range counts {
		if n > 0 {
			p.reconciledOrders.WithLabelValues(result).Add(float64(n))
		}
	}
}

// GinMiddleware records request count and latency per matched route.
func (p *Prometheus) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		p.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		p.httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

var _ port.Metrics = (*Prometheus)(nil)
