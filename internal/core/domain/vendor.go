package domain

import (
	"fmt"
	"time"

	"github.com/govalues/decimal"
)

type BillingMode string

const (
	BillingModePrepaid  BillingMode = "PREPAID"
	BillingModePostpaid BillingMode = "POSTPAID"
)

// DefaultCurrency is the settlement currency of vendors and catalog prices.
const DefaultCurrency = "USD"

type VendorStatus string

const (
	VendorStatusPendingApproval VendorStatus = "PENDING_APPROVAL"
	VendorStatusActive          VendorStatus = "ACTIVE"
	VendorStatusSuspended       VendorStatus = "SUSPENDED"
)

// Vendor balances are only changed through ledger operations.
type Vendor struct {
	ID                 uint64          `json:"id"`
	Name               string          `json:"name"`
	Email              string          `json:"email"`
	BillingMode        BillingMode     `json:"billing_mode"`
	Status             VendorStatus    `json:"status"`
	Currency           string          `json:"currency"`
	WalletBalance      decimal.Decimal `json:"wallet_balance"`
	CreditLimit        decimal.Decimal `json:"credit_limit"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// CheckActive returns an error unless the vendor may place orders.
func (v *Vendor) CheckActive() error {
	switch v.Status {
	case VendorStatusActive:
		return nil
	case VendorStatusSuspended:
		return ErrVendorSuspended
	default:
		return ErrVendorNotActive
	}
}

// LedgerBalance is the signed balance the ledger folds to:
// the wallet for PREPAID vendors and minus the outstanding amount for POSTPAID.
func (v *Vendor) LedgerBalance() decimal.Decimal {
	if v.BillingMode == BillingModePostpaid {
		return v.OutstandingBalance.Neg()
	}
	return v.WalletBalance
}

// AvailableCredit is credit limit minus outstanding for POSTPAID vendors.
func (v *Vendor) AvailableCredit() (decimal.Decimal, error) {
	avail, err := v.CreditLimit.Sub(v.OutstandingBalance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("math error:%w", err)
	}
	return avail, nil
}

// ApplyDebit takes amount from the vendor or fails without touching balances.
func (v *Vendor) ApplyDebit(amount decimal.Decimal) error {
	if !amount.IsPos() {
		return ErrInvalidAmount
	}

	switch v.BillingMode {
	case BillingModePrepaid:
		if v.WalletBalance.Cmp(amount) < 0 {
			return ErrInsufficientBalance
		}
		wallet, err := v.WalletBalance.Sub(amount)
		if err != nil {
			return fmt.Errorf("math error:%w", err)
		}
		v.WalletBalance = wallet
	case BillingModePostpaid:
		outstanding, err := v.OutstandingBalance.Add(amount)
		if err != nil {
			return fmt.Errorf("math error:%w", err)
		}
		if outstanding.Cmp(v.CreditLimit) > 0 {
			return ErrCreditLimitExceeded
		}
		v.OutstandingBalance = outstanding
	default:
		return ErrBillingModeMismatch
	}
	return nil
}

// ApplyCredit gives amount back to the vendor and returns the part that was applied.
// POSTPAID credits are capped by the outstanding amount.
func (v *Vendor) ApplyCredit(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPos() {
		return decimal.Zero, ErrInvalidAmount
	}

	switch v.BillingMode {
	case BillingModePrepaid:
		wallet, err := v.WalletBalance.Add(amount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("math error:%w", err)
		}
		v.WalletBalance = wallet
		return amount, nil
	case BillingModePostpaid:
		applied := amount.Min(v.OutstandingBalance)
		if !applied.IsPos() {
			return decimal.Zero, ErrNoBalanceChange
		}
		outstanding, err := v.OutstandingBalance.Sub(applied)
		if err != nil {
			return decimal.Zero, fmt.Errorf("math error:%w", err)
		}
		v.OutstandingBalance = outstanding
		return applied, nil
	default:
		return decimal.Zero, ErrBillingModeMismatch
	}
}

func (v *Vendor) Clone() *Vendor {
	c := *v
	return &c
}
