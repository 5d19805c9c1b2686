package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port"
	"go.uber.org/zap"
)

const (
	DefaultStaleAfter = 10 * time.Minute
	DefaultMaxRetries = 5
)

type ReconcilerConfig struct {
	StaleAfter time.Duration
	MaxRetries int
}

// Reconciler sweeps orders stuck between payment and fulfillment.
type Reconciler struct {
	orders  port.OrderService
	metrics port.Metrics
	conf    ReconcilerConfig
	logger  *zap.Logger
}

func NewReconciler(orders port.OrderService, metrics port.Metrics,
	conf ReconcilerConfig, logger *zap.Logger) (*Reconciler, error) {
	if conf.StaleAfter <= 0 {
		conf.StaleAfter = DefaultStaleAfter
	}
	if conf.MaxRetries <= 0 {
		conf.MaxRetries = DefaultMaxRetries
	}
	return &Reconciler{
		orders:  orders,
		metrics: metrics,
		conf:    conf,
		logger:  logger,
	}, nil
}

// ReconcileStaleOrders makes one pass over stale orders.
//
// PAID orders are provisioned, SYNC_FAILED orders are retried until MaxRetries and then failed.
// PAID orders refunded by an interrupted cancel are canceled. PROVISIONING orders are only
// reported: the provider may already have the order.
func (r *Reconciler) ReconcileStaleOrders(ctx context.Context) (*domain.ReconciliationReport, error) {
	minutes := int(r.conf.StaleAfter / time.Minute)
	if minutes < 1 {
		minutes = 1
	}

	stale, err := r.orders.FindStaleOrders(ctx, minutes)
	if err != nil {
		return nil, err
	}

	report := &domain.ReconciliationReport{Scanned: len(stale)}
	for _, o := range stale {
		if ctx.Err() != nil {
			break
		}

		switch o.Status {
		case domain.OrderStatusPaid:
			_, err := r.orders.ProvisionOrder(ctx, o.ID)
			if errors.Is(err, domain.ErrOrderAlreadyRefunded) {
				_, err = r.orders.CancelOrder(ctx, o.ID, "refunded before provisioning")
				r.countAttempt(report, o, err, &report.Canceled)
				continue
			}
			r.countAttempt(report, o, err, &report.Provisioned)

		case domain.OrderStatusSyncFailed:
			if o.RetryCount >= r.conf.MaxRetries {
				_, err := r.orders.FailOrder(ctx, o.ID, domain.OrderErrorRetryExhausted,
					fmt.Sprintf("provisioning gave up after %d attempts", o.RetryCount))
				if err != nil {
					report.Errors++
					r.logger.Error("Fail exhausted order", zap.Uint64("order_id", o.ID), zap.Error(err))
					continue
				}
				report.Exhausted++
				continue
			}
			_, err := r.orders.RetryProvisioning(ctx, o.ID)
			r.countAttempt(report, o, err, &report.Retried)

		case domain.OrderStatusProvisioning:
			report.ManualReview++
			r.logger.Warn("order stuck in PROVISIONING, needs manual review",
				zap.Uint64("order_id", o.ID),
				zap.String("order", o.OrderNumber),
				zap.Time("updated_at", o.UpdatedAt))

		default:
			report.Skipped++
		}
	}

	r.metrics.Reconciliation(report)
	r.logger.Info("reconciliation finished",
		zap.Int("scanned", report.Scanned),
		zap.Int("provisioned", report.Provisioned),
		zap.Int("retried", report.Retried),
		zap.Int("still_failing", report.StillFailing),
		zap.Int("exhausted", report.Exhausted),
		zap.Int("manual_review", report.ManualReview),
		zap.Int("canceled", report.Canceled),
		zap.Int("errors", report.Errors))

	return report, nil
}

func (r *Reconciler) countAttempt(report *domain.ReconciliationReport, o *domain.Order, err error, success *int) {
	switch {
	case err == nil:
		*success++
	case errors.Is(err, domain.ErrProvisioningFailed):
		report.StillFailing++
	case errors.Is(err, domain.ErrInvalidOrderStatus):
		// moved on since the scan
		report.Skipped++
	default:
		report.Errors++
		r.logger.Error("Reconcile order", zap.Uint64("order_id", o.ID), zap.Error(err))
	}
}

var _ port.Reconciler = (*Reconciler)(nil)
