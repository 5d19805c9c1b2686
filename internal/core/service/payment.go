package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

const idempotencyPathPaymentEvent = "payments:webhook"

// PaymentService applies verified payment provider events exactly once per event id.
type PaymentService struct {
	orders port.OrderService
	ledger port.LedgerService
	idem   port.IdempotencyService
	ttl    time.Duration
	logger *zap.Logger
}

func NewPaymentService(orders port.OrderService, ledger port.LedgerService, idem port.IdempotencyService,
	ttl time.Duration, logger *zap.Logger) (*PaymentService, error) {
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	return &PaymentService{
		orders: orders,
		ledger: ledger,
		idem:   idem,
		ttl:    ttl,
		logger: logger,
	}, nil
}

type paymentEvent struct {
	Kind      string          `json:"kind"`
	OrderID   uint64          `json:"order_id,omitempty"`
	VendorID  uint64          `json:"vendor_id,omitempty"`
	PaymentID string          `json:"payment_id"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason,omitempty"`
}

func (s *PaymentService) OnPaymentSucceeded(ctx context.Context, eventID string, orderID uint64, paymentID string) error {
	event := paymentEvent{Kind: "payment_succeeded", OrderID: orderID, PaymentID: paymentID}
	return s.once(ctx, eventID, event, func(ctx context.Context) error {
		_, err := s.orders.MarkOrderAsPaid(ctx, orderID, paymentID)
		return err
	})
}

func (s *PaymentService) OnPaymentFailed(ctx context.Context, eventID string, paymentID string, reason string) error {
	event := paymentEvent{Kind: "payment_failed", PaymentID: paymentID, Reason: reason}
	return s.once(ctx, eventID, event, func(ctx context.Context) error {
		_, err := s.orders.MarkPaymentFailed(ctx, paymentID, reason)
		return err
	})
}

func (s *PaymentService) OnTopUpSucceeded(ctx context.Context, eventID string, vendorID uint64,
	amount decimal.Decimal, paymentID string) error {
	event := paymentEvent{Kind: "topup_succeeded", VendorID: vendorID, PaymentID: paymentID, Amount: amount}
	return s.once(ctx, eventID, event, func(ctx context.Context) error {
		_, err := s.ledger.TopUpWallet(ctx, vendorID, amount, paymentID, "wallet top-up")
		return err
	})
}

func (s *PaymentService) once(ctx context.Context, eventID string, event paymentEvent,
	apply func(ctx context.Context) error) error {
	if eventID == "" {
		return domain.ErrBadRequest
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	key := domain.IdempotencyKey{
		Key:     eventID,
		Method:  http.MethodPost,
		Path:    idempotencyPathPaymentEvent,
		ActorID: string(domain.ActorPaymentProvider),
	}
	resp, err := s.idem.Execute(ctx, key, body, s.ttl, func(ctx context.Context) (int, []byte, error) {
		if err := apply(ctx); err != nil {
			return 0, nil, err
		}
		return http.StatusOK, nil, nil
	})
	if err != nil {
		s.logger.Error("Payment event", zap.String("event_id", eventID), zap.String("kind", event.Kind), zap.Error(err))
		return err
	}

	if resp.Replayed {
		s.logger.Info("duplicate payment event ignored", zap.String("event_id", eventID), zap.String("kind", event.Kind))
	}
	return ReplayError(resp)
}

var _ port.PaymentService = (*PaymentService)(nil)
