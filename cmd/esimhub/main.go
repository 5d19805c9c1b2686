package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MikeRez0/esimhub/internal/adapter/auth"
	"github.com/MikeRez0/esimhub/internal/adapter/cache"
	"github.com/MikeRez0/esimhub/internal/adapter/client/esimgo"
	"github.com/MikeRez0/esimhub/internal/adapter/client/payments"
	"github.com/MikeRez0/esimhub/internal/adapter/config"
	"github.com/MikeRez0/esimhub/internal/adapter/handler/http"
	"github.com/MikeRez0/esimhub/internal/adapter/logger"
	"github.com/MikeRez0/esimhub/internal/adapter/metrics"
	"github.com/MikeRez0/esimhub/internal/adapter/scheduler"
	"github.com/MikeRez0/esimhub/internal/adapter/storage"
	"github.com/MikeRez0/esimhub/internal/adapter/storage/boltstore"
	"github.com/MikeRez0/esimhub/internal/adapter/storage/memory"
	"github.com/MikeRez0/esimhub/internal/adapter/storage/repository"
	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port"
	"github.com/MikeRez0/esimhub/internal/core/service"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(conf.App)
	if err != nil {
		fmt.Printf("error creating log: %s", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, conf, log); err != nil {
		log.Error("esimhub stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, conf *config.Config, log *zap.Logger) error {
	repo, health, closeRepo, err := newRepository(ctx, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	idemRepo, closeIdem, err := newIdempotencyRepository(conf, repo)
	if err != nil {
		return err
	}
	defer closeIdem()

	prom, err := metrics.NewPrometheus()
	if err != nil {
		return fmt.Errorf("metrics error: %w", err)
	}

	tokenService, err := auth.New(conf.Auth)
	if err != nil {
		return fmt.Errorf("token service creating error: %w", err)
	}

	esim, err := esimgo.New(conf.EsimGo, log.Named("eSIM Go"))
	if err != nil {
		return fmt.Errorf("eSIM Go client creating error: %w", err)
	}
	catalog, err := cache.NewBundleCache(esim, conf.Catalog, log.Named("Catalog"))
	if err != nil {
		return fmt.Errorf("catalog cache creating error: %w", err)
	}
	stripe, err := payments.NewStripeClient(conf.Stripe, log.Named("Stripe"))
	if err != nil {
		return fmt.Errorf("stripe client creating error: %w", err)
	}

	ledger, err := service.NewLedgerService(repo, prom, log.Named("Ledger"))
	if err != nil {
		return fmt.Errorf("ledger service creating error: %w", err)
	}
	idem, err := service.NewIdempotencyService(idemRepo, prom, log.Named("Idempotency"))
	if err != nil {
		return fmt.Errorf("idempotency service creating error: %w", err)
	}
	orders, err := service.NewOrderService(repo, ledger, catalog, esim, stripe, idem, prom,
		service.OrderConfig{
			ProvisionTimeout: conf.EsimGo.Timeout,
			RefundPolicy:     domain.RefundPolicy(conf.Billing.RefundPolicy),
			IdempotencyTTL:   conf.Idempotency.TTL,
		}, log.Named("Orders"))
	if err != nil {
		return fmt.Errorf("order service creating error: %w", err)
	}
	paymentService, err := service.NewPaymentService(orders, ledger, idem, conf.Idempotency.TTL, log.Named("Payments"))
	if err != nil {
		return fmt.Errorf("payment service creating error: %w", err)
	}
	reconciler, err := service.NewReconciler(orders, prom, service.ReconcilerConfig{
		StaleAfter: conf.Reconciliation.StaleAfter,
		MaxRetries: conf.Reconciliation.MaxRetries,
	}, log.Named("Reconciler"))
	if err != nil {
		return fmt.Errorf("reconciler creating error: %w", err)
	}

	jobs, err := scheduler.New(log.Named("Scheduler"),
		scheduler.Task{
			Name:       "reconcile-stale-orders",
			Interval:   conf.Reconciliation.Interval,
			Timeout:    conf.Reconciliation.Interval,
			RunOnStart: true,
			Run: func(ctx context.Context) error {
				_, err := reconciler.ReconcileStaleOrders(ctx)
				return err
			},
		},
		scheduler.Task{
			Name:     "cleanup-idempotency-records",
			Interval: conf.Idempotency.CleanupInterval,
			Run: func(ctx context.Context) error {
				_, err := idem.CleanupExpiredRecords(ctx)
				return err
			},
		},
	)
	if err != nil {
		return fmt.Errorf("scheduler creating error: %w", err)
	}

	handlers := http.Handlers{Health: health}
	if handlers.Order, err = http.NewOrderHandler(orders, reconciler, log.Named("Order handler")); err != nil {
		return fmt.Errorf("order handler creating error: %w", err)
	}
	if handlers.Vendor, err = http.NewVendorHandler(ledger, stripe, log.Named("Vendor handler")); err != nil {
		return fmt.Errorf("vendor handler creating error: %w", err)
	}
	handlers.Payment, err = http.NewPaymentHandler(paymentService,
		payments.NewWebhookVerifier(conf.Stripe.WebhookSecret), log.Named("Payment handler"))
	if err != nil {
		return fmt.Errorf("payment handler creating error: %w", err)
	}
	if conf.App.Mode == config.AppModeDevelop {
		if handlers.Token, err = http.NewTokenHandler(tokenService, log.Named("Token handler")); err != nil {
			return fmt.Errorf("token handler creating error: %w", err)
		}
	}

	r, err := http.NewRouter(conf.HTTP, tokenService, idem, conf.Idempotency.TTL, prom, handlers, log.Named("Router"))
	if err != nil {
		return fmt.Errorf("router creating error: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return jobs.Run(gctx)
	})
	g.Go(func() error {
		return r.Serve()
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.HTTP.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return r.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newRepository(ctx context.Context,
	conf *config.Config) (port.Repository, func(context.Context) error, func(), error) {
	if conf.App.Storage == config.StorageMemory {
		return memory.New(), nil, func() {}, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := storage.NewDBStorage(connectCtx, conf.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("database error: %w", err)
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, nil, nil, fmt.Errorf("database migration error: %w", err)
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		db.Close()
		return nil, nil, nil, fmt.Errorf("repository creating error: %w", err)
	}
	return repo, db.HealthCheck, db.Close, nil
}

func newIdempotencyRepository(conf *config.Config,
	repo port.Repository) (port.IdempotencyRepository, func(), error) {
	switch conf.Idempotency.Backend {
	case config.IdempotencyBackendBolt:
		store, err := boltstore.New(conf.Idempotency.BoltPath)
		if err != nil {
			return nil, nil, fmt.Errorf("idempotency store error: %w", err)
		}
		return store, func() { _ = store.Close() }, nil
	case config.IdempotencyBackendMemory:
		if conf.App.Storage == config.StorageMemory {
			return repo, func() {}, nil
		}
		return memory.New(), func() {}, nil
	case config.IdempotencyBackendPostgres:
		if conf.App.Storage != config.StoragePostgres {
			return nil, nil, fmt.Errorf("idempotency backend %s requires %s storage",
				config.IdempotencyBackendPostgres, config.StoragePostgres)
		}
		return repo, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown idempotency backend %q", conf.Idempotency.Backend)
	}
}
