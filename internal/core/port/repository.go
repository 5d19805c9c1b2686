package port

import (
	"context"
	"time"

	"github.com/MikeRez0/esimhub/internal/core/domain"
)

// UpdateOrderFn mutates a locked order. Returning an error rolls the change back.
type UpdateOrderFn func(*domain.Order) error

// ApplyLedgerFn mutates a locked vendor and returns the entry describing the change.
// Returning an error rolls the change back and no entry is written.
type ApplyLedgerFn func(*domain.Vendor) (*domain.LedgerEntry, error)

// UpdateIdempotencyFn mutates an idempotency record inside the store's write transaction.
type UpdateIdempotencyFn func(*domain.IdempotencyRecord) error

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type OrderRepository interface {
	NextOrderID(ctx context.Context) (uint64, error)
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	ReadOrderByNumber(ctx context.Context, number string) (*domain.Order, error)
	ReadOrderByPaymentIntent(ctx context.Context, intentID string) (*domain.Order, error)
	UpdateOrder(ctx context.Context, orderID uint64, updateFn UpdateOrderFn) (*domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error)
	ListOrdersByStatusBefore(ctx context.Context,
		statuses []domain.OrderStatus, before time.Time) ([]*domain.Order, error)
}

type VendorRepository interface {
	CreateVendor(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error)
	ReadVendor(ctx context.Context, vendorID uint64) (*domain.Vendor, error)
	UpdateVendorStatus(ctx context.Context, vendorID uint64, status domain.VendorStatus) (*domain.Vendor, error)
	ApplyLedgerEntry(ctx context.Context, vendorID uint64, applyFn ApplyLedgerFn) (*domain.LedgerEntry, error)
	ReadLedgerEntry(ctx context.Context, vendorID uint64, entryID uint64) (*domain.LedgerEntry, error)
	ListLedgerEntries(ctx context.Context, vendorID uint64, filter domain.LedgerFilter) ([]*domain.LedgerEntry, error)
}

type IdempotencyRepository interface {
	ReadIdempotencyRecord(ctx context.Context, key domain.IdempotencyKey) (*domain.IdempotencyRecord, error)
	CreateIdempotencyRecord(ctx context.Context, record *domain.IdempotencyRecord) (*domain.IdempotencyRecord, error)
	UpdateIdempotencyRecord(ctx context.Context,
		recordID uint64, updateFn UpdateIdempotencyFn) (*domain.IdempotencyRecord, error)
	DeleteIdempotencyRecord(ctx context.Context, recordID uint64) error
	DeleteExpiredIdempotencyRecords(ctx context.Context, now time.Time) (int64, error)
}

type Repository interface {
	OrderRepository
	VendorRepository
	IdempotencyRepository
}
