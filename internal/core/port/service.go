package port

import (
	"context"
	"time"

	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/govalues/decimal"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type OrderService interface {
	CreateB2COrder(ctx context.Context, req domain.B2COrderRequest) (*domain.Order, error)
	CreateB2BOrder(ctx context.Context, req domain.B2BOrderRequest) (*domain.Order, error)
	StartPayment(ctx context.Context, orderID uint64) (*domain.Order, *domain.PaymentIntent, error)
	MarkOrderAsPaid(ctx context.Context, orderID uint64, paymentID string) (*domain.Order, error)
	MarkPaymentFailed(ctx context.Context, paymentID string, reason string) (*domain.Order, error)
	ProvisionOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID uint64, reason string) (*domain.Order, error)
	RetryProvisioning(ctx context.Context, orderID uint64) (*domain.Order, error)
	FailOrder(ctx context.Context, orderID uint64, code string, message string) (*domain.Order, error)
	FindStaleOrders(ctx context.Context, minutesOld int) ([]*domain.Order, error)

	GetOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	GetOrderByNumber(ctx context.Context, number string) (*domain.Order, error)
	SearchOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error)
}

type LedgerService interface {
	TopUpWallet(ctx context.Context, vendorID uint64, amount decimal.Decimal,
		paymentID string, description string) (*domain.LedgerEntry, error)
	DebitForOrder(ctx context.Context, vendorID uint64, amount decimal.Decimal,
		orderID uint64, description string) (*domain.LedgerEntry, error)
	RefundToVendor(ctx context.Context, vendorID uint64, amount decimal.Decimal,
		orderID uint64, originalEntryID uint64, description string) (*domain.LedgerEntry, error)
	AdjustBalance(ctx context.Context, vendorID uint64, amount decimal.Decimal, reason string) (*domain.LedgerEntry, error)
	ReverseEntry(ctx context.Context, vendorID uint64, entryID uint64, reason string) (*domain.LedgerEntry, error)

	RegisterVendor(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error)
	SetVendorStatus(ctx context.Context, vendorID uint64, status domain.VendorStatus) (*domain.Vendor, error)
	GetVendor(ctx context.Context, vendorID uint64) (*domain.Vendor, error)
	ListEntries(ctx context.Context, vendorID uint64, filter domain.LedgerFilter) ([]*domain.LedgerEntry, error)
	CalculateBalanceFromLedger(ctx context.Context, vendorID uint64) (decimal.Decimal, error)
	ReconcileVendor(ctx context.Context, vendorID uint64) (*domain.BalanceCheck, error)
}

// IdempotentFn produces the response to store for a keyed request.
type IdempotentFn func(ctx context.Context) (status int, body []byte, err error)

type IdempotencyService interface {
	GetCachedResponse(ctx context.Context, key domain.IdempotencyKey, body []byte) (*domain.IdempotencyDecision, error)
	CreatePendingRecord(ctx context.Context,
		key domain.IdempotencyKey, body []byte, ttl time.Duration) (*domain.IdempotencyRecord, error)
	UpdateRecordWithResponse(ctx context.Context,
		recordID uint64, status int, body []byte) (*domain.IdempotencyRecord, error)
	ReleaseRecord(ctx context.Context, recordID uint64) error
	CleanupExpiredRecords(ctx context.Context) (int64, error)
	Execute(ctx context.Context, key domain.IdempotencyKey, body []byte,
		ttl time.Duration, fn IdempotentFn) (*domain.IdempotentResponse, error)
}

type PaymentService interface {
	OnPaymentSucceeded(ctx context.Context, eventID string, orderID uint64, paymentID string) error
	OnPaymentFailed(ctx context.Context, eventID string, paymentID string, reason string) error
	OnTopUpSucceeded(ctx context.Context, eventID string, vendorID uint64,
		amount decimal.Decimal, paymentID string) error
}

type Reconciler interface {
	ReconcileStaleOrders(ctx context.Context) (*domain.ReconciliationReport, error)
}
