package payments

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/webhook"
)

const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
)

// Event is a verified payment provider notification about one payment intent.
type Event struct {
	ID       string
	Type     string
	IntentID string
	Purpose  string
	OrderID  uint64
	VendorID uint64
	Amount   decimal.Decimal
	Currency string
	Reason   string
}

type WebhookVerifier struct {
	secret    string
	tolerance time.Duration
}

func NewWebhookVerifier(secret string) *WebhookVerifier {
	return &WebhookVerifier{secret: secret, tolerance: webhook.DefaultTolerance}
}

// Parse checks the Stripe-Signature header and decodes payment intent events.
// Other event types come back with only ID and Type set.
func (v *WebhookVerifier) Parse(payload []byte, signature string) (*Event, error) {
	if v.secret == "" {
		return nil, fmt.Errorf("%w: webhook secret is not configured", domain.ErrInvalidSignature)
	}
	raw, err := webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
		Tolerance:                v.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSignature, err)
	}

	event := &Event{ID: raw.ID, Type: string(raw.Type)}
	if event.Type != EventPaymentSucceeded && event.Type != EventPaymentFailed {
		return event, nil
	}
	if raw.Data == nil {
		return nil, fmt.Errorf("%w: event %s has no data", domain.ErrBadRequest, raw.ID)
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(raw.Data.Raw, &intent); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrBadRequest, err)
	}

	event.IntentID = intent.ID
	event.Currency = string(intent.Currency)
	event.Purpose = intent.Metadata[domain.PaymentMetaPurpose]
	if event.Purpose == "" {
		event.Purpose = domain.PaymentPurposeOrder
	}
	if event.OrderID, err = metaID(intent.Metadata, domain.PaymentMetaOrderID); err != nil {
		return nil, err
	}
	if event.VendorID, err = metaID(intent.Metadata, domain.PaymentMetaVendorID); err != nil {
		return nil, err
	}
	if event.Amount, err = domain.FromMinorUnits(intent.Amount); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrBadRequest, err)
	}
	if intent.LastPaymentError != nil {
		event.Reason = intent.LastPaymentError.Msg
	}
	return event, nil
}

func metaID(meta map[string]string, key string) (uint64, error) {
	s, ok := meta[key]
	if !ok || s == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: metadata %s=%q", domain.ErrBadRequest, key, s)
	}
	return id, nil
}
