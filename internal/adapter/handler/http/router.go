package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MikeRez0/esimhub/internal/adapter/config"
	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// MetricsExporter instruments requests and serves the scrape endpoint.
type MetricsExporter interface {
	GinMiddleware() gin.HandlerFunc
	Handler() http.Handler
}

type Handlers struct {
	Order   *OrderHandler
	Vendor  *VendorHandler
	Payment *PaymentHandler
	// Token is routed only when set.
	Token *TokenHandler
	// Health reports storage readiness on /healthz; nil means always ready.
	Health func(ctx context.Context) error
}

type Router struct {
	*gin.Engine
	logger *zap.Logger
	server *http.Server
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	idem port.IdempotencyService,
	idemTTL time.Duration,
	metrics MetricsExporter,
	handlers Handlers,
	logger *zap.Logger) (*Router, error) {
	if handlers.Order == nil || handlers.Vendor == nil || handlers.Payment == nil {
		return nil, errors.New("router: order, vendor and payment handlers are required")
	}

	h := NewHandler(logger)
	router := gin.New()
	router.Use(gin.Recovery())
	if metrics != nil {
		router.Use(metrics.GinMiddleware())
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	router.GET("/healthz", func(ctx *gin.Context) {
		if handlers.Health != nil {
			if err := handlers.Health(ctx); err != nil {
				logger.Warn("health check failed", zap.Error(err))
				ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	{
		api.POST("/payments/stripe/webhook", handlers.Payment.Webhook)

		if handlers.Token != nil {
			api.POST("/dev/tokens", handlers.Token.IssueToken)
		}

		authed := api.Group("")
		authed.Use(authCheck(h, tokenService), idempotent(h, idem, idemTTL))

		orders := authed.Group("/orders")
		{
			orders.POST("", requireActor(h, domain.ActorUser, domain.ActorVendor), handlers.Order.CreateOrder)
			orders.GET("", requireActor(h, domain.ActorUser, domain.ActorVendor), handlers.Order.ListOwnOrders)
			orders.GET("/:id", handlers.Order.GetOrder)
			orders.POST("/:id/pay", requireActor(h, domain.ActorUser), handlers.Order.StartPayment)
			orders.POST("/:id/cancel", handlers.Order.CancelOrder)
		}

		vendor := authed.Group("/vendor")
		vendor.Use(requireActor(h, domain.ActorVendor))
		{
			vendor.GET("/balance", handlers.Vendor.Balance)
			vendor.GET("/ledger", handlers.Vendor.ListEntries)
			vendor.POST("/topups", handlers.Vendor.TopUp)
		}

		admin := authed.Group("/admin")
		admin.Use(requireActor(h, domain.ActorAdmin))
		{
			admin.GET("/orders", handlers.Order.SearchOrders)
			admin.GET("/orders/stale", handlers.Order.StaleOrders)
			admin.POST("/orders/:id/provision", handlers.Order.ProvisionOrder)
			admin.POST("/orders/:id/retry", handlers.Order.RetryProvisioning)
			admin.POST("/orders/:id/fail", handlers.Order.FailOrder)
			admin.POST("/reconciliation", handlers.Order.Reconcile)

			admin.POST("/vendors", handlers.Vendor.RegisterVendor)
			admin.GET("/vendors/:id", handlers.Vendor.GetVendor)
			admin.PUT("/vendors/:id/status", handlers.Vendor.SetStatus)
			admin.GET("/vendors/:id/balance", handlers.Vendor.Balance)
			admin.GET("/vendors/:id/ledger", handlers.Vendor.ListEntries)
			admin.POST("/vendors/:id/adjustments", handlers.Vendor.Adjust)
			admin.POST("/vendors/:id/entries/:entryID/reversal", handlers.Vendor.Reverse)
			admin.GET("/vendors/:id/reconciliation", handlers.Vendor.Reconcile)
		}
	}

	return &Router{
		Engine: router,
		logger: logger,
		server: &http.Server{Addr: conf.HostString, Handler: router, ReadHeaderTimeout: 10 * time.Second},
	}, nil
}

// Serve starts the HTTP server and blocks until it is shut down.
func (r *Router) Serve() error {
	r.logger.Info("http server started", zap.String("addr", r.server.Addr))
	if err := r.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (r *Router) Shutdown(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}
