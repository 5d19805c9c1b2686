// Package memory is an in-process Repository used for single node runs and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port"
	"github.com/govalues/decimal"
)

// Store keeps everything behind one mutex, so every callback runs serialized
// the same way row locks serialize them in Postgres.
type Store struct {
	mu sync.Mutex

	orderSeq  uint64
	vendorSeq uint64
	entrySeq  uint64
	idemSeq   uint64

	orders  map[uint64]*domain.Order
	vendors map[uint64]*domain.Vendor
	entries map[uint64][]*domain.LedgerEntry
	records map[uint64]*domain.IdempotencyRecord
	keys    map[domain.IdempotencyKey]uint64

	now func() time.Time
}

func New() *Store {
	return &Store{
		orders:  make(map[uint64]*domain.Order),
		vendors: make(map[uint64]*domain.Vendor),
		entries: make(map[uint64][]*domain.LedgerEntry),
		records: make(map[uint64]*domain.IdempotencyRecord),
		keys:    make(map[domain.IdempotencyKey]uint64),
		now:     time.Now,
	}
}

func (s *Store) NextOrderID(_ context.Context) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orderSeq++
	return s.orderSeq, nil
}

func (s *Store) CreateOrder(_ context.Context, order *domain.Order) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := order.Clone()
	if o.ID == 0 {
		s.orderSeq++
		o.ID = s.orderSeq
	}
	if _, ok := s.orders[o.ID]; ok {
		return nil, domain.ErrConflictingData
	}
	for _, existing := range s.orders {
		if existing.OrderNumber == o.OrderNumber {
			return nil, domain.ErrConflictingData
		}
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = s.now()
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = o.CreatedAt
	}
	o.Version = 1

	s.orders[o.ID] = o
	return o.Clone(), nil
}

func (s *Store) ReadOrder(_ context.Context, orderID uint64) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	return o.Clone(), nil
}

func (s *Store) ReadOrderByNumber(_ context.Context, number string) (*domain.Order, error) {
	return s.findOrder(func(o *domain.Order) bool { return o.OrderNumber == number })
}

func (s *Store) ReadOrderByPaymentIntent(_ context.Context, intentID string) (*domain.Order, error) {
	if intentID == "" {
		return nil, domain.ErrDataNotFound
	}
	return s.findOrder(func(o *domain.Order) bool { return o.PaymentIntentID == intentID })
}

func (s *Store) findOrder(match func(o *domain.Order) bool) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if match(o) {
			return o.Clone(), nil
		}
	}
	return nil, domain.ErrDataNotFound
}

func (s *Store) UpdateOrder(_ context.Context, orderID uint64, updateFn port.UpdateOrderFn) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.orders[orderID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}

	o := current.Clone()
	if err := updateFn(o); err != nil {
		return nil, err
	}
	o.ID = current.ID
	o.Version = current.Version + 1

	s.orders[orderID] = o
	return o.Clone(), nil
}

func (s *Store) ListOrders(_ context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]*domain.Order, 0)
	for _, o := range s.orders {
		if filter.UserID != 0 && o.UserID != filter.UserID {
			continue
		}
		if filter.VendorID != 0 && o.VendorID != filter.VendorID {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if !filter.From.IsZero() && o.CreatedAt.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && !o.CreatedAt.Before(filter.To) {
			continue
		}
		list = append(list, o.Clone())
	}

	// newest first, as the postgres repository returns them
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID > list[j].ID
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})

	return page(list, filter.Limit, filter.Offset), nil
}

func (s *Store) ListOrdersByStatusBefore(_ context.Context,
	statuses []domain.OrderStatus, before time.Time) ([]*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[domain.OrderStatus]bool, len(statuses))
	for _, st := range statuses {
		wanted[st] = true
	}

	list := make([]*domain.Order, 0)
	for _, o := range s.orders {
		if wanted[o.Status] && o.UpdatedAt.Before(before) {
			list = append(list, o.Clone())
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].UpdatedAt.Before(list[j].UpdatedAt) })
	return list, nil
}

// CreateVendor stores a vendor with zero balances. Balances only move through ledger entries.
func (s *Store) CreateVendor(_ context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.vendors {
		if v.Email == vendor.Email {
			return nil, domain.ErrConflictingData
		}
	}

	v := vendor.Clone()
	s.vendorSeq++
	v.ID = s.vendorSeq
	v.WalletBalance = decimal.Zero
	v.OutstandingBalance = decimal.Zero
	now := s.now()
	v.CreatedAt = now
	v.UpdatedAt = now

	s.vendors[v.ID] = v
	return v.Clone(), nil
}

func (s *Store) ReadVendor(_ context.Context, vendorID uint64) (*domain.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vendors[vendorID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	return v.Clone(), nil
}

func (s *Store) UpdateVendorStatus(_ context.Context, vendorID uint64,
	status domain.VendorStatus) (*domain.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vendors[vendorID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	v.Status = status
	v.UpdatedAt = s.now()
	return v.Clone(), nil
}

func (s *Store) ApplyLedgerEntry(_ context.Context, vendorID uint64, applyFn port.ApplyLedgerFn) (*domain.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.vendors[vendorID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}

	v := current.Clone()
	entry, err := applyFn(v)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNoUpdatedData
	}

	e := entry.Clone()
	for _, existing := range s.entries[vendorID] {
		if e.Type == domain.LedgerEntryReversal && existing.Type == domain.LedgerEntryReversal &&
			existing.RelatedEntryID == e.RelatedEntryID {
			return nil, domain.ErrEntryAlreadyReversed
		}
	}

	now := s.now()
	s.entrySeq++
	e.ID = s.entrySeq
	e.VendorID = vendorID
	e.CreatedAt = now
	v.ID = vendorID
	v.UpdatedAt = now

	s.vendors[vendorID] = v
	s.entries[vendorID] = append(s.entries[vendorID], e)
	return e.Clone(), nil
}

func (s *Store) ReadLedgerEntry(_ context.Context, vendorID uint64, entryID uint64) (*domain.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries[vendorID] {
		if e.ID == entryID {
			return e.Clone(), nil
		}
	}
	return nil, domain.ErrDataNotFound
}

func (s *Store) ListLedgerEntries(_ context.Context, vendorID uint64,
	filter domain.LedgerFilter) ([]*domain.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vendors[vendorID]; !ok {
		return nil, domain.ErrDataNotFound
	}

	list := make([]*domain.LedgerEntry, 0)
	for _, e := range s.entries[vendorID] {
		if filter.Type != "" && e.Type != filter.Type {
			continue
		}
		if !filter.From.IsZero() && e.CreatedAt.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && !e.CreatedAt.Before(filter.To) {
			continue
		}
		list = append(list, e.Clone())
	}
	return page(list, filter.Limit, filter.Offset), nil
}

func (s *Store) ReadIdempotencyRecord(_ context.Context, key domain.IdempotencyKey) (*domain.IdempotencyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.keys[key]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	return s.records[id].Clone(), nil
}

func (s *Store) CreateIdempotencyRecord(_ context.Context,
	record *domain.IdempotencyRecord) (*domain.IdempotencyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.keys[record.IdempotencyKey]; ok {
		return nil, domain.ErrConflictingData
	}

	r := record.Clone()
	s.idemSeq++
	r.ID = s.idemSeq
	s.records[r.ID] = r
	s.keys[r.IdempotencyKey] = r.ID
	return r.Clone(), nil
}

func (s *Store) UpdateIdempotencyRecord(_ context.Context,
	recordID uint64, updateFn port.UpdateIdempotencyFn) (*domain.IdempotencyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[recordID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}

	r := current.Clone()
	if err := updateFn(r); err != nil {
		return nil, err
	}
	r.ID = current.ID
	r.IdempotencyKey = current.IdempotencyKey

	s.records[recordID] = r
	return r.Clone(), nil
}

func (s *Store) DeleteIdempotencyRecord(_ context.Context, recordID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[recordID]
	if !ok {
		return domain.ErrDataNotFound
	}
	delete(s.keys, r.IdempotencyKey)
	delete(s.records, recordID)
	return nil
}

func (s *Store) DeleteExpiredIdempotencyRecords(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for id, r := range s.records {
		if r.IsExpired(now) {
			delete(s.keys, r.IdempotencyKey)
			delete(s.records, id)
			count++
		}
	}
	return count, nil
}

func page[T any](list []T, limit, offset uint64) []T {
	if offset >= uint64(len(list)) {
		return list[:0]
	}
	list = list[offset:]
	if limit > 0 && limit < uint64(len(list)) {
		list = list[:limit]
	}
	return list
}

var _ port.Repository = (*Store)(nil)
