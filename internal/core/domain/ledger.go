package domain

import (
	"fmt"
	"time"

	"github.com/govalues/decimal"
	"go.jetify.com/typeid/v2"
)

type LedgerEntryType string

const (
	LedgerEntryCredit     LedgerEntryType = "CREDIT"
	LedgerEntryDebit      LedgerEntryType = "DEBIT"
	LedgerEntryRefund     LedgerEntryType = "REFUND"
	LedgerEntryAdjustment LedgerEntryType = "ADJUSTMENT"
	LedgerEntryReversal   LedgerEntryType = "REVERSAL"
)

var referencePrefixes = map[LedgerEntryType]string{
	LedgerEntryCredit:     "cr",
	LedgerEntryDebit:      "db",
	LedgerEntryRefund:     "rf",
	LedgerEntryAdjustment: "adj",
	LedgerEntryReversal:   "rev",
}

// EntryDirection is the sign of an entry against the signed ledger balance.
type EntryDirection string

const (
	DirectionCredit EntryDirection = "CREDIT"
	DirectionDebit  EntryDirection = "DEBIT"
)

func (d EntryDirection) Opposite() EntryDirection {
	if d == DirectionCredit {
		return DirectionDebit
	}
	return DirectionCredit
}

type LedgerEntryStatus string

const (
	LedgerEntryStatusCompleted LedgerEntryStatus = "COMPLETED"
)

// LedgerEntry is immutable once written.
type LedgerEntry struct {
	ID              uint64            `json:"id"`
	VendorID        uint64            `json:"vendor_id"`
	Type            LedgerEntryType   `json:"type"`
	Direction       EntryDirection    `json:"direction"`
	Amount          decimal.Decimal   `json:"amount"`
	BalanceAfter    decimal.Decimal   `json:"balance_after"`
	OrderID         uint64            `json:"order_id,omitempty"`
	PaymentID       string            `json:"payment_id,omitempty"`
	RelatedEntryID  uint64            `json:"related_entry_id,omitempty"`
	ReferenceNumber string            `json:"reference_number"`
	Description     string            `json:"description,omitempty"`
	Status          LedgerEntryStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
}

// Signed returns the amount with the entry direction applied.
func (e *LedgerEntry) Signed() decimal.Decimal {
	if e.Direction == DirectionDebit {
		return e.Amount.Neg()
	}
	return e.Amount
}

func (e *LedgerEntry) Clone() *LedgerEntry {
	c := *e
	return &c
}

// NewReferenceNumber returns a unique, type prefixed reference like "db_01h455vb4pex5vsknk084sn02q".
func NewReferenceNumber(t LedgerEntryType) (string, error) {
	prefix, ok := referencePrefixes[t]
	if !ok {
		return "", fmt.Errorf("unknown ledger entry type %q", t)
	}
	tid, err := typeid.Generate(prefix)
	if err != nil {
		return "", fmt.Errorf("generate reference: %w", err)
	}
	return tid.String(), nil
}

// FoldLedger sums completed entries into a signed balance.
func FoldLedger(entries []*LedgerEntry) (decimal.Decimal, error) {
	balance := decimal.Zero
	for _, e := range entries {
		if e.Status != LedgerEntryStatusCompleted {
			continue
		}
		next, err := balance.Add(e.Signed())
		if err != nil {
			return decimal.Zero, fmt.Errorf("math error:%w", err)
		}
		balance = next
	}
	return balance, nil
}

type LedgerFilter struct {
	Type   LedgerEntryType
	From   time.Time
	To     time.Time
	Limit  uint64
	Offset uint64
}

// BalanceCheck is the outcome of comparing cached vendor balances with the ledger.
type BalanceCheck struct {
	VendorID   uint64          `json:"vendor_id"`
	Cached     decimal.Decimal `json:"cached"`
	Calculated decimal.Decimal `json:"calculated"`
	Matches    bool            `json:"matches"`
}
