package domain

import (
	"fmt"
	"strconv"

	"github.com/govalues/decimal"
)

type PaymentIntentRequest struct {
	OrderNumber    string
	Amount         decimal.Decimal
	Currency       string
	CustomerEmail  string
	Description    string
	IdempotencyKey string
	Metadata       map[string]string
}

type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// Metadata keys attached to payment intents so webhook events can be routed back.
const (
	PaymentMetaOrderID  = "order_id"
	PaymentMetaVendorID = "vendor_id"
	PaymentMetaPurpose  = "purpose"

	PaymentPurposeOrder = "order"
	PaymentPurposeTopUp = "topup"
)

// MinorUnits converts an amount to integer cents.
func MinorUnits(amount decimal.Decimal) (int64, error) {
	cents, err := amount.Mul(decimal.Hundred)
	if err != nil {
		return 0, fmt.Errorf("math error:%w", err)
	}
	v, err := strconv.ParseInt(cents.Round(0).String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("minor units: %w", err)
	}
	return v, nil
}

// FromMinorUnits converts integer cents back to an amount.
func FromMinorUnits(cents int64) (decimal.Decimal, error) {
	return decimal.New(cents, 2)
}

type RefundPolicy string

const (
	RefundPolicyNone               RefundPolicy = "none"
	RefundPolicyOnPermanentFailure RefundPolicy = "on_permanent_failure"
)
