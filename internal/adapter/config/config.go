package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	App            *App
	Database       *Database
	HTTP           *HTTP
	EsimGo         *EsimGo
	Stripe         *Stripe
	Idempotency    *Idempotency
	Reconciliation *Reconciliation
	Billing        *Billing
	Catalog        *Catalog
	Auth           *Auth
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

// Storage backends for orders, vendors and ledger.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Idempotency record backends.
const (
	IdempotencyBackendPostgres = "postgres"
	IdempotencyBackendBolt     = "bolt"
	IdempotencyBackendMemory   = "memory"
)

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
	Storage  string `env:"STORAGE"`
}

type Database struct {
	DSN      string `env:"DATABASE_URI"`
	MaxConns int32  `env:"DATABASE_MAX_CONNS" envDefault:"10"`
}

type HTTP struct {
	HostString      string        `env:"RUN_ADDRESS"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type EsimGo struct {
	BaseURL string        `env:"ESIMGO_BASE_URL"`
	APIKey  string        `env:"ESIMGO_API_KEY"`
	Timeout time.Duration `env:"ESIMGO_TIMEOUT" envDefault:"30s"`
}

type Stripe struct {
	SecretKey     string `env:"STRIPE_SECRET_KEY"`
	WebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`
}

type Idempotency struct {
	TTL             time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"24h"`
	Backend         string        `env:"IDEMPOTENCY_BACKEND"`
	BoltPath        string        `env:"IDEMPOTENCY_BOLT_PATH" envDefault:"idempotency.db"`
	CleanupInterval time.Duration `env:"IDEMPOTENCY_CLEANUP_INTERVAL" envDefault:"1h"`
}

type Reconciliation struct {
	Interval   time.Duration `env:"RECONCILIATION_INTERVAL" envDefault:"10m"`
	StaleAfter time.Duration `env:"RECONCILIATION_STALE_AFTER" envDefault:"10m"`
	MaxRetries int           `env:"RECONCILIATION_MAX_RETRIES" envDefault:"5"`
}

type Billing struct {
	RefundPolicy string `env:"REFUND_POLICY" envDefault:"none"`
}

type Catalog struct {
	CacheSize int           `env:"CATALOG_CACHE_SIZE" envDefault:"512"`
	CacheTTL  time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"15m"`
}

type Auth struct {
	SymmetricKey string        `env:"AUTH_SYMMETRIC_KEY"`
	TokenTTL     time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"24h"`
}

func NewConfig() (*Config, error) {
	var app App
	var db Database
	var http HTTP
	var esimGo EsimGo
	var stripe Stripe
	var idem Idempotency
	var recon Reconciliation
	var billing Billing
	var catalog Catalog
	var auth Auth

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&esimGo.BaseURL, "e", `https://api.esim-go.com/v2.4`, "eSIM Go API address")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.StringVar(&app.Storage, "s", StoragePostgres, "postgres / memory")
	flag.StringVar(&idem.Backend, "i", "", "Idempotency store: postgres / bolt / memory, defaults to the main storage")
	flag.Parse()

	sections := []struct {
		name string
		v    any
	}{
		{"app", &app},
		{"database", &db},
		{"http", &http},
		{"esimgo", &esimGo},
		{"stripe", &stripe},
		{"idempotency", &idem},
		{"reconciliation", &recon},
		{"billing", &billing},
		{"catalog", &catalog},
		{"auth", &auth},
	}
	for _, s := range sections {
		if err := env.Parse(s.v); err != nil {
			return nil, fmt.Errorf("error parsing env %s config: %w", s.name, err)
		}
	}

	if idem.Backend == "" {
		idem.Backend = app.Storage
	}
	if app.Storage == StoragePostgres && db.DSN == "" {
		return nil, fmt.Errorf("database string is required for %s storage", StoragePostgres)
	}

	config := Config{
		App:            &app,
		Database:       &db,
		HTTP:           &http,
		EsimGo:         &esimGo,
		Stripe:         &stripe,
		Idempotency:    &idem,
		Reconciliation: &recon,
		Billing:        &billing,
		Catalog:        &catalog,
		Auth:           &auth,
	}

	return &config, nil
}
