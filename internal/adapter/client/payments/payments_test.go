package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MikeRez0/esimhub/internal/adapter/config"
	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v78"
	"go.uber.org/zap"
)

type fakeIntents struct {
	params []*stripe.PaymentIntentParams
	err    error
}

func (f *fakeIntents) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	f.params = append(f.params, params)
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.PaymentIntent{
		ID:           "pi_123",
		ClientSecret: "pi_123_secret",
		Status:       stripe.PaymentIntentStatusRequiresPaymentMethod,
		Amount:       *params.Amount,
		Currency:     stripe.Currency(*params.Currency),
	}, nil
}

func TestStripeClient_CreatePaymentIntent(t *testing.T) {
	logger, _ := zap.NewProduction()
	ctx := context.Background()

	t.Run("intent created", func(t *testing.T) {
		fake := &fakeIntents{}
		c := newStripeClient(fake, logger)

		intent, err := c.CreatePaymentIntent(ctx, domain.PaymentIntentRequest{
			OrderNumber:    "ORD-1",
			Amount:         decimal.MustParse("9.00"),
			Currency:       "USD",
			CustomerEmail:  "jane@example.com",
			IdempotencyKey: "ORD-1",
			Metadata: map[string]string{
				domain.PaymentMetaOrderID: "7",
				domain.PaymentMetaPurpose: domain.PaymentPurposeOrder,
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "pi_123", intent.ID)
		assert.Equal(t, "pi_123_secret", intent.ClientSecret)
		assert.Equal(t, int64(900), intent.Amount)
		assert.Equal(t, "usd", intent.Currency)

		require.Len(t, fake.params, 1)
		p := fake.params[0]
		assert.Equal(t, "ORD-1", *p.IdempotencyKey)
		assert.Equal(t, "jane@example.com", *p.ReceiptEmail)
		assert.Equal(t, "7", p.Metadata[domain.PaymentMetaOrderID])
		assert.Equal(t, "ORD-1", p.Metadata["order_number"])
	})

	t.Run("zero amount", func(t *testing.T) {
		fake := &fakeIntents{}
		c := newStripeClient(fake, logger)

		_, err := c.CreatePaymentIntent(ctx, domain.PaymentIntentRequest{Amount: decimal.Zero, Currency: "USD"})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		assert.Empty(t, fake.params)
	})

	t.Run("provider error", func(t *testing.T) {
		failure := errors.New("card declined")
		c := newStripeClient(&fakeIntents{err: failure}, logger)

		_, err := c.CreatePaymentIntent(ctx, domain.PaymentIntentRequest{Amount: decimal.MustParse("1"), Currency: "USD"})
		assert.ErrorIs(t, err, failure)
	})
}

func TestNewStripeClient(t *testing.T) {
	logger, _ := zap.NewProduction()
	_, err := NewStripeClient(&config.Stripe{}, logger)
	assert.Error(t, err)

	c, err := NewStripeClient(&config.Stripe{SecretKey: "sk_test_123"}, logger)
	require.NoError(t, err)
	assert.NotNil(t, c)
}

const testSecret = "whsec_test"

func sign(payload []byte, secret string, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	unix := ts.Unix()
	mac.Write([]byte(fmt.Sprintf("%d.", unix)))
	mac.Write(payload)
	return fmt.Sprintf("t=%d,v1=%s", unix, hex.EncodeToString(mac.Sum(nil)))
}

func intentEvent(id, eventType, meta, lastError string) []byte {
	return []byte(fmt.Sprintf(`{
		"id": %q,
		"object": "event",
		"api_version": "2020-08-27",
		"type": %q,
		"data": {"object": {
			"id": "pi_9",
			"object": "payment_intent",
			"amount": 2500,
			"currency": "usd",
			"metadata": %s,
			"last_payment_error": %s
		}}
	}`, id, eventType, meta, lastError))
}

func TestWebhookVerifier_Parse(t *testing.T) {
	v := NewWebhookVerifier(testSecret)
	now := time.Now()

	tests := []struct {
		name    string
		payload []byte
		secret  string
		wantErr error
		check   func(t *testing.T, e *Event)
	}{
		{
			name:    "order payment succeeded",
			payload: intentEvent("evt_1", EventPaymentSucceeded, `{"order_id":"42","purpose":"order"}`, "null"),
			secret:  testSecret,
			check: func(t *testing.T, e *Event) {
				assert.Equal(t, "evt_1", e.ID)
				assert.Equal(t, "pi_9", e.IntentID)
				assert.Equal(t, uint64(42), e.OrderID)
				assert.Equal(t, domain.PaymentPurposeOrder, e.Purpose)
				assert.Zero(t, e.Amount.Cmp(decimal.MustParse("25")))
			},
		},
		{
			name:    "top-up succeeded",
			payload: intentEvent("evt_2", EventPaymentSucceeded, `{"vendor_id":"3","purpose":"topup"}`, "null"),
			secret:  testSecret,
			check: func(t *testing.T, e *Event) {
				assert.Equal(t, domain.PaymentPurposeTopUp, e.Purpose)
				assert.Equal(t, uint64(3), e.VendorID)
				assert.Zero(t, e.OrderID)
			},
		},
		{
			name:    "payment failed",
			payload: intentEvent("evt_3", EventPaymentFailed, `{"order_id":"42"}`, `{"message":"card declined"}`),
			secret:  testSecret,
			check: func(t *testing.T, e *Event) {
				assert.Equal(t, EventPaymentFailed, e.Type)
				assert.Equal(t, "card declined", e.Reason)
				assert.Equal(t, domain.PaymentPurposeOrder, e.Purpose)
			},
		},
		{
			name:    "other event type",
			payload: []byte(`{"id":"evt_4","object":"event","type":"charge.refunded","data":{"object":{}}}`),
			secret:  testSecret,
			check: func(t *testing.T, e *Event) {
				assert.Equal(t, "charge.refunded", e.Type)
				assert.Empty(t, e.IntentID)
			},
		},
		{
			name:    "wrong secret",
			payload: intentEvent("evt_5", EventPaymentSucceeded, `{}`, "null"),
			secret:  "whsec_other",
			wantErr: domain.ErrInvalidSignature,
		},
		{
			name:    "bad metadata",
			payload: intentEvent("evt_6", EventPaymentSucceeded, `{"order_id":"abc"}`, "null"),
			secret:  testSecret,
			wantErr: domain.ErrBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := v.Parse(tt.payload, sign(tt.payload, tt.secret, now))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, e)
		})
	}

	t.Run("stale signature", func(t *testing.T) {
		payload := intentEvent("evt_7", EventPaymentSucceeded, `{}`, "null")
		_, err := v.Parse(payload, sign(payload, testSecret, now.Add(-time.Hour)))
		assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	})

	t.Run("no secret configured", func(t *testing.T) {
		payload := intentEvent("evt_8", EventPaymentSucceeded, `{}`, "null")
		_, err := NewWebhookVerifier("").Parse(payload, sign(payload, "", now))
		assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	})
}
