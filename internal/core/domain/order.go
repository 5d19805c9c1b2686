package domain

import (
	"fmt"
	"time"

	"github.com/govalues/decimal"
	"github.com/oklog/ulid/v2"
)

type OrderStatus string

const (
	OrderStatusCreated        OrderStatus = "CREATED"
	OrderStatusPaymentPending OrderStatus = "PAYMENT_PENDING"
	OrderStatusPaid           OrderStatus = "PAID"
	OrderStatusProvisioning   OrderStatus = "PROVISIONING"
	OrderStatusCompleted      OrderStatus = "COMPLETED"
	OrderStatusSyncFailed     OrderStatus = "SYNC_FAILED"
	OrderStatusFailed         OrderStatus = "FAILED"
	OrderStatusCanceled       OrderStatus = "CANCELED"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusCreated:        {OrderStatusPaymentPending, OrderStatusPaid, OrderStatusCanceled},
	OrderStatusPaymentPending: {OrderStatusPaid, OrderStatusCreated, OrderStatusCanceled},
	OrderStatusPaid:           {OrderStatusProvisioning, OrderStatusCanceled},
	OrderStatusProvisioning:   {OrderStatusCompleted, OrderStatusSyncFailed, OrderStatusFailed},
	OrderStatusSyncFailed:     {OrderStatusPaid, OrderStatusFailed},
	OrderStatusFailed:         {OrderStatusPaid},
}

// CanTransitionTo reports whether the state machine allows moving from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

type PaymentStatus string

const (
	PaymentStatusCreated   PaymentStatus = "CREATED"
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusSucceeded PaymentStatus = "SUCCEEDED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

type OrderChannel string

const (
	OrderChannelB2C OrderChannel = "B2C"
	OrderChannelB2B OrderChannel = "B2B"
)

// Error codes stored on orders that failed outside of the gateway.
const (
	OrderErrorRetryExhausted = "RETRY_EXHAUSTED"
	OrderErrorPaymentFailed  = "PAYMENT_FAILED"
)

type Order struct {
	ID              uint64          `json:"id"`
	OrderNumber     string          `json:"order_number"`
	Channel         OrderChannel    `json:"channel"`
	UserID          uint64          `json:"user_id,omitempty"`
	VendorID        uint64          `json:"vendor_id,omitempty"`
	CustomerEmail   string          `json:"customer_email,omitempty"`
	BundleCode      string          `json:"bundle_code"`
	BundleName      string          `json:"bundle_name,omitempty"`
	CountryISO      string          `json:"country_iso,omitempty"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Currency        string          `json:"currency"`
	Status          OrderStatus     `json:"status"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	PaymentIntentID string          `json:"payment_intent_id,omitempty"`
	DebitEntryID    uint64          `json:"debit_entry_id,omitempty"`
	ExternalOrderID string          `json:"external_order_id,omitempty"`
	ICCIDs          []string        `json:"iccids,omitempty"`
	MatchingIDs     []string        `json:"matching_ids,omitempty"`
	RetryCount      int             `json:"retry_count"`
	ErrorCode       string          `json:"error_code,omitempty"`
	ErrorMessage    string          `json:"error_message,omitempty"`
	CancelReason    string          `json:"cancel_reason,omitempty"`
	Version         int             `json:"version"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	ProvisionedAt   *time.Time      `json:"provisioned_at,omitempty"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	FailedAt        *time.Time      `json:"failed_at,omitempty"`
	CanceledAt      *time.Time      `json:"canceled_at,omitempty"`
	LastRetryAt     *time.Time      `json:"last_retry_at,omitempty"`
}

// TransitionTo moves the order to next and stamps the matching timestamp.
func (o *Order) TransitionTo(next OrderStatus, now time.Time) error {
	if !o.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidOrderStatus, o.Status, next)
	}

	o.Status = next
	o.UpdatedAt = now

	switch next {
	case OrderStatusPaid:
		if o.PaidAt == nil {
			o.PaidAt = &now
		}
	case OrderStatusCompleted:
		o.ProvisionedAt = &now
		o.CompletedAt = &now
	case OrderStatusFailed:
		o.FailedAt = &now
	case OrderStatusCanceled:
		o.CanceledAt = &now
	}
	return nil
}

// IsProvisioned is true once the fulfillment provider reference has been stored.
func (o *Order) IsProvisioned() bool {
	return o.ExternalOrderID != ""
}

func (o *Order) IsB2B() bool {
	return o.Channel == OrderChannelB2B
}

// Owner returns the actor string of whoever placed the order.
func (o *Order) Owner() string {
	if o.IsB2B() {
		return ActorString(ActorVendor, o.VendorID)
	}
	return ActorString(ActorUser, o.UserID)
}

// Clone returns a deep copy safe to hand out of a store.
func (o *Order) Clone() *Order {
	c := *o
	c.ICCIDs = append([]string(nil), o.ICCIDs...)
	c.MatchingIDs = append([]string(nil), o.MatchingIDs...)
	return &c
}

// OrderTotal computes unit price times quantity.
func OrderTotal(unitPrice decimal.Decimal, quantity int) (decimal.Decimal, error) {
	if quantity <= 0 {
		return decimal.Zero, ErrInvalidQuantity
	}
	q, err := decimal.New(int64(quantity), 0)
	if err != nil {
		return decimal.Zero, fmt.Errorf("math error:%w", err)
	}
	total, err := unitPrice.Mul(q)
	if err != nil {
		return decimal.Zero, fmt.Errorf("math error:%w", err)
	}
	return total, nil
}

func NewOrderNumber() string {
	return "ORD-" + ulid.Make().String()
}

type B2COrderRequest struct {
	UserID         uint64 `json:"user_id"`
	CustomerEmail  string `json:"customer_email"`
	BundleCode     string `json:"bundle_code"`
	Quantity       int    `json:"quantity"`
	IdempotencyKey string `json:"-"`
}

type B2BOrderRequest struct {
	VendorID       uint64 `json:"vendor_id"`
	CustomerEmail  string `json:"customer_email"`
	BundleCode     string `json:"bundle_code"`
	Quantity       int    `json:"quantity"`
	IdempotencyKey string `json:"-"`
}

type OrderFilter struct {
	UserID   uint64
	VendorID uint64
	Status   OrderStatus
	From     time.Time
	To       time.Time
	Limit    uint64
	Offset   uint64
}
