package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

// LedgerService owns vendor balances. Every change is a balance update plus
// one immutable ledger entry written in the same transaction.
type LedgerService struct {
	repo    port.VendorRepository
	metrics port.Metrics
	logger  *zap.Logger
}

func NewLedgerService(repo port.VendorRepository, metrics port.Metrics, logger *zap.Logger) (*LedgerService, error) {
	return &LedgerService{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}, nil
}

func (s *LedgerService) TopUpWallet(ctx context.Context, vendorID uint64, amount decimal.Decimal,
	paymentID string, description string) (*domain.LedgerEntry, error) {
	if !amount.IsPos() {
		return nil, domain.ErrInvalidAmount
	}

	return s.apply(ctx, vendorID, func(v *domain.Vendor) (*domain.LedgerEntry, error) {
		if v.BillingMode != domain.BillingModePrepaid {
			return nil, domain.ErrBillingModeMismatch
		}
		applied, err := v.ApplyCredit(amount)
		if err != nil {
			return nil, err
		}
		return &domain.LedgerEntry{
			Type:        domain.LedgerEntryCredit,
			Direction:   domain.DirectionCredit,
			Amount:      applied,
			PaymentID:   paymentID,
			Description: description,
		}, nil
	})
}

func (s *LedgerService) DebitForOrder(ctx context.Context, vendorID uint64, amount decimal.Decimal,
	orderID uint64, description string) (*domain.LedgerEntry, error) {
	if !amount.IsPos() {
		return nil, domain.ErrInvalidAmount
	}

	return s.apply(ctx, vendorID, func(v *domain.Vendor) (*domain.LedgerEntry, error) {
		if err := v.CheckActive(); err != nil {
			return nil, err
		}
		if err := v.ApplyDebit(amount); err != nil {
			return nil, err
		}
		return &domain.LedgerEntry{
			Type:        domain.LedgerEntryDebit,
			Direction:   domain.DirectionDebit,
			Amount:      amount,
			OrderID:     orderID,
			Description: description,
		}, nil
	})
}

func (s *LedgerService) RefundToVendor(ctx context.Context, vendorID uint64, amount decimal.Decimal,
	orderID uint64, originalEntryID uint64, description string) (*domain.LedgerEntry, error) {
	if !amount.IsPos() {
		return nil, domain.ErrInvalidAmount
	}

	return s.apply(ctx, vendorID, func(v *domain.Vendor) (*domain.LedgerEntry, error) {
		applied, err := v.ApplyCredit(amount)
		if err != nil {
			return nil, err
		}
		return &domain.LedgerEntry{
			Type:           domain.LedgerEntryRefund,
			Direction:      domain.DirectionCredit,
			Amount:         applied,
			OrderID:        orderID,
			RelatedEntryID: originalEntryID,
			Description:    description,
		}, nil
	})
}

// AdjustBalance applies a signed manual correction.
func (s *LedgerService) AdjustBalance(ctx context.Context, vendorID uint64,
	amount decimal.Decimal, reason string) (*domain.LedgerEntry, error) {
	if amount.IsZero() {
		return nil, domain.ErrInvalidAmount
	}

	return s.apply(ctx, vendorID, func(v *domain.Vendor) (*domain.LedgerEntry, error) {
		entry := &domain.LedgerEntry{
			Type:        domain.LedgerEntryAdjustment,
			Description: reason,
		}
		if amount.IsPos() {
			applied, err := v.ApplyCredit(amount)
			if err != nil {
				return nil, err
			}
			entry.Direction = domain.DirectionCredit
			entry.Amount = applied
			return entry, nil
		}

		abs := amount.Abs()
		if err := v.ApplyDebit(abs); err != nil {
			return nil, err
		}
		entry.Direction = domain.DirectionDebit
		entry.Amount = abs
		return entry, nil
	})
}

// ReverseEntry posts the opposite of an existing entry.
func (s *LedgerService) ReverseEntry(ctx context.Context, vendorID uint64,
	entryID uint64, reason string) (*domain.LedgerEntry, error) {
	original, err := s.repo.ReadLedgerEntry(ctx, vendorID, entryID)
	if err != nil {
		return nil, err
	}
	if original.Type == domain.LedgerEntryReversal {
		return nil, fmt.Errorf("%w: reversal entries can not be reversed", domain.ErrBadRequest)
	}

	reversals, err := s.repo.ListLedgerEntries(ctx, vendorID, domain.LedgerFilter{Type: domain.LedgerEntryReversal})
	if err != nil {
		return nil, err
	}
	for _, r := range reversals {
		if r.RelatedEntryID == original.ID {
			return nil, domain.ErrEntryAlreadyReversed
		}
	}

	return s.apply(ctx, vendorID, func(v *domain.Vendor) (*domain.LedgerEntry, error) {
		entry := &domain.LedgerEntry{
			Type:           domain.LedgerEntryReversal,
			Direction:      original.Direction.Opposite(),
			RelatedEntryID: original.ID,
			OrderID:        original.OrderID,
			Description:    reason,
		}
		if entry.Direction == domain.DirectionDebit {
			if err := v.ApplyDebit(original.Amount); err != nil {
				return nil, err
			}
			entry.Amount = original.Amount
			return entry, nil
		}

		applied, err := v.ApplyCredit(original.Amount)
		if err != nil {
			return nil, err
		}
		entry.Amount = applied
		return entry, nil
	})
}

// apply runs fn against the locked vendor and completes the entry it returns.
func (s *LedgerService) apply(ctx context.Context, vendorID uint64, fn port.ApplyLedgerFn) (*domain.LedgerEntry, error) {
	entry, err := s.repo.ApplyLedgerEntry(ctx, vendorID, func(v *domain.Vendor) (*domain.LedgerEntry, error) {
		e, err := fn(v)
		if err != nil {
			return nil, err
		}

		ref, err := domain.NewReferenceNumber(e.Type)
		if err != nil {
			return nil, err
		}
		e.VendorID = v.ID
		e.ReferenceNumber = ref
		e.BalanceAfter = v.LedgerBalance()
		e.Status = domain.LedgerEntryStatusCompleted
		return e, nil
	})
	if err != nil {
		if !domain.KnownError(err) {
			s.logger.Error("ledger entry failed", zap.Uint64("vendor_id", vendorID), zap.Error(err))
		}
		return nil, err
	}

	s.metrics.LedgerEntryWritten(entry.Type)
	s.logger.Debug("ledger entry written",
		zap.Uint64("vendor_id", vendorID),
		zap.String("type", string(entry.Type)),
		zap.String("reference", entry.ReferenceNumber),
		zap.Stringer("amount", entry.Amount),
		zap.Stringer("balance_after", entry.BalanceAfter))

	return entry, nil
}

// RegisterVendor stores a vendor awaiting approval. Balances start at zero.
func (s *LedgerService) RegisterVendor(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	if vendor == nil || vendor.Name == "" || vendor.Email == "" {
		return nil, domain.ErrBadRequest
	}

	v := *vendor
	switch v.BillingMode {
	case domain.BillingModePrepaid:
		if !v.CreditLimit.IsZero() {
			return nil, fmt.Errorf("%w: credit limit is only for %s vendors", domain.ErrBadRequest, domain.BillingModePostpaid)
		}
	case domain.BillingModePostpaid:
		if v.CreditLimit.IsNeg() {
			return nil, domain.ErrInvalidAmount
		}
	default:
		return nil, fmt.Errorf("%w: unknown billing mode %q", domain.ErrBadRequest, v.BillingMode)
	}
	if v.Status == "" {
		v.Status = domain.VendorStatusPendingApproval
	}
	if v.Currency == "" {
		v.Currency = domain.DefaultCurrency
	}

	created, err := s.repo.CreateVendor(ctx, &v)
	if err != nil {
		if !errors.Is(err, domain.ErrConflictingData) {
			s.logger.Error("Create vendor", zap.Error(err))
		}
		return nil, err
	}
	s.logger.Info("vendor registered",
		zap.Uint64("vendor_id", created.ID),
		zap.String("billing_mode", string(created.BillingMode)))
	return created, nil
}

// SetVendorStatus approves, suspends or reactivates a vendor.
func (s *LedgerService) SetVendorStatus(ctx context.Context, vendorID uint64,
	status domain.VendorStatus) (*domain.Vendor, error) {
	switch status {
	case domain.VendorStatusActive, domain.VendorStatusSuspended:
	default:
		return nil, fmt.Errorf("%w: vendor status %q", domain.ErrBadRequest, status)
	}

	v, err := s.repo.UpdateVendorStatus(ctx, vendorID, status)
	if err != nil {
		return nil, err
	}
	s.logger.Info("vendor status changed", zap.Uint64("vendor_id", vendorID), zap.String("status", string(status)))
	return v, nil
}

func (s *LedgerService) GetVendor(ctx context.Context, vendorID uint64) (*domain.Vendor, error) {
	return s.repo.ReadVendor(ctx, vendorID)
}

func (s *LedgerService) ListEntries(ctx context.Context, vendorID uint64,
	filter domain.LedgerFilter) ([]*domain.LedgerEntry, error) {
	list, err := s.repo.ListLedgerEntries(ctx, vendorID, filter)
	if err != nil {
		s.logger.Error("List ledger entries", zap.Error(err))
		return nil, err
	}
	return list, nil
}

// CalculateBalanceFromLedger folds every completed entry of the vendor.
func (s *LedgerService) CalculateBalanceFromLedger(ctx context.Context, vendorID uint64) (decimal.Decimal, error) {
	if _, err := s.repo.ReadVendor(ctx, vendorID); err != nil {
		return decimal.Zero, err
	}
	entries, err := s.repo.ListLedgerEntries(ctx, vendorID, domain.LedgerFilter{})
	if err != nil {
		return decimal.Zero, err
	}
	return domain.FoldLedger(entries)
}

// ReconcileVendor compares cached balances with the ledger. Mismatches are reported, never corrected.
func (s *LedgerService) ReconcileVendor(ctx context.Context, vendorID uint64) (*domain.BalanceCheck, error) {
	vendor, err := s.repo.ReadVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	calculated, err := s.CalculateBalanceFromLedger(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	check := &domain.BalanceCheck{
		VendorID:   vendorID,
		Cached:     vendor.LedgerBalance(),
		Calculated: calculated,
	}
	check.Matches = check.Cached.Cmp(check.Calculated) == 0
	if !check.Matches {
		s.metrics.LedgerMismatch()
		s.logger.Error("vendor balance does not match ledger",
			zap.Uint64("vendor_id", vendorID),
			zap.Stringer("cached", check.Cached),
			zap.Stringer("calculated", check.Calculated))
		return check, domain.ErrLedgerMismatch
	}

	return check, nil
}

var _ port.LedgerService = (*LedgerService)(nil)
