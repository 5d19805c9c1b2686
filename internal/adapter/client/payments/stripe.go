package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MikeRez0/esimhub/internal/adapter/config"
	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"go.uber.org/zap"
)

type stripePaymentIntentAPI interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// StripeClient creates card payment intents for B2C checkout and vendor top-ups.
type StripeClient struct {
	intents stripePaymentIntentAPI
	logger  *zap.Logger
}

func NewStripeClient(cfg *config.Stripe, logger *zap.Logger) (*StripeClient, error) {
	key := strings.TrimSpace(cfg.SecretKey)
	if key == "" {
		return nil, errors.New("stripe: secret key is required")
	}
	sc := client.New(key, nil)
	return newStripeClient(sc.PaymentIntents, logger), nil
}

func newStripeClient(intents stripePaymentIntentAPI, logger *zap.Logger) *StripeClient {
	return &StripeClient{intents: intents, logger: logger}
}

func (c *StripeClient) CreatePaymentIntent(ctx context.Context,
	req domain.PaymentIntentRequest) (*domain.PaymentIntent, error) {
	amount, err := domain.MinorUnits(req.Amount)
	if err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(strings.ToLower(req.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if key := strings.TrimSpace(req.IdempotencyKey); key != "" {
		params.SetIdempotencyKey(key)
	}
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	if req.CustomerEmail != "" {
		params.ReceiptEmail = stripe.String(req.CustomerEmail)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	if req.OrderNumber != "" {
		params.AddMetadata("order_number", req.OrderNumber)
	}

	intent, err := c.intents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: create payment intent: %w", err)
	}

	c.logger.Info("payment intent created",
		zap.String("payment_intent", intent.ID),
		zap.String("order_number", req.OrderNumber),
		zap.Int64("amount", intent.Amount))

	return &domain.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       string(intent.Status),
		Amount:       intent.Amount,
		Currency:     string(intent.Currency),
	}, nil
}

var _ port.PaymentIntents = (*StripeClient)(nil)
