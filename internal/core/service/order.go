package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

const (
	DefaultProvisionTimeout = 30 * time.Second

	idempotencyPathB2C = "orders:b2c"
	idempotencyPathB2B = "orders:b2b"
)

var (
	errAlreadyProvisioned = errors.New("order already provisioned")
	errAlreadyPaid        = errors.New("order already paid")

	staleOrderStatuses = []domain.OrderStatus{
		domain.OrderStatusPaymentPending,
		domain.OrderStatusPaid,
		domain.OrderStatusProvisioning,
		domain.OrderStatusSyncFailed,
	}
)

type OrderConfig struct {
	ProvisionTimeout time.Duration
	RefundPolicy     domain.RefundPolicy
	IdempotencyTTL   time.Duration
}

// OrderService drives orders through their lifecycle:
//
//	CREATED -> PAYMENT_PENDING -> PAID -> PROVISIONING -> COMPLETED
//	                                           |-> SYNC_FAILED / FAILED -> PAID (retry)
//
// Each transition runs under the order row lock. The provider call is made between
// two transactions so that no lock is held while waiting on the network.
type OrderService struct {
	orders   port.OrderRepository
	ledger   port.LedgerService
	catalog  port.BundleCatalog
	gateway  port.ProvisioningGateway
	payments port.PaymentIntents
	idem     port.IdempotencyService
	metrics  port.Metrics
	conf     OrderConfig
	logger   *zap.Logger
	now      func() time.Time
}

func NewOrderService(
	orders port.OrderRepository,
	ledger port.LedgerService,
	catalog port.BundleCatalog,
	gateway port.ProvisioningGateway,
	payments port.PaymentIntents,
	idem port.IdempotencyService,
	metrics port.Metrics,
	conf OrderConfig,
	logger *zap.Logger) (*OrderService, error) {
	if conf.ProvisionTimeout <= 0 {
		conf.ProvisionTimeout = DefaultProvisionTimeout
	}
	if conf.IdempotencyTTL <= 0 {
		conf.IdempotencyTTL = DefaultIdempotencyTTL
	}
	if conf.RefundPolicy == "" {
		conf.RefundPolicy = domain.RefundPolicyNone
	}

	return &OrderService{
		orders:   orders,
		ledger:   ledger,
		catalog:  catalog,
		gateway:  gateway,
		payments: payments,
		idem:     idem,
		metrics:  metrics,
		conf:     conf,
		logger:   logger,
		now:      time.Now,
	}, nil
}

func (s *OrderService) CreateB2COrder(ctx context.Context, req domain.B2COrderRequest) (*domain.Order, error) {
	if req.IdempotencyKey == "" {
		return s.createB2COrder(ctx, req)
	}

	key := domain.IdempotencyKey{
		Key:     req.IdempotencyKey,
		Method:  http.MethodPost,
		Path:    idempotencyPathB2C,
		ActorID: domain.ActorString(domain.ActorUser, req.UserID),
	}
	return s.createIdempotent(ctx, key, req, func(ctx context.Context) (*domain.Order, error) {
		return s.createB2COrder(ctx, req)
	})
}

func (s *OrderService) CreateB2BOrder(ctx context.Context, req domain.B2BOrderRequest) (*domain.Order, error) {
	if req.IdempotencyKey == "" {
		return s.createB2BOrder(ctx, req)
	}

	key := domain.IdempotencyKey{
		Key:     req.IdempotencyKey,
		Method:  http.MethodPost,
		Path:    idempotencyPathB2B,
		ActorID: domain.ActorString(domain.ActorVendor, req.VendorID),
	}
	return s.createIdempotent(ctx, key, req, func(ctx context.Context) (*domain.Order, error) {
		return s.createB2BOrder(ctx, req)
	})
}

func (s *OrderService) createIdempotent(ctx context.Context, key domain.IdempotencyKey, req any,
	create func(ctx context.Context) (*domain.Order, error)) (*domain.Order, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	resp, err := s.idem.Execute(ctx, key, body, s.conf.IdempotencyTTL, func(ctx context.Context) (int, []byte, error) {
		order, err := create(ctx)
		if err != nil {
			return 0, nil, err
		}
		data, err := json.Marshal(order)
		if err != nil {
			return 0, nil, fmt.Errorf("encode order: %w", err)
		}
		return http.StatusCreated, data, nil
	})
	if err != nil {
		return nil, err
	}
	if err := ReplayError(resp); err != nil {
		return nil, err
	}

	order := domain.Order{}
	if err := json.Unmarshal(resp.Body, &order); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	if resp.Replayed {
		s.logger.Debug("order creation replayed", zap.String("key", key.Key), zap.String("order", order.OrderNumber))
	}
	return &order, nil
}

func (s *OrderService) quote(ctx context.Context, bundleCode string, quantity int) (*domain.Bundle, decimal.Decimal, error) {
	if quantity <= 0 {
		return nil, decimal.Zero, domain.ErrInvalidQuantity
	}
	if bundleCode == "" {
		return nil, decimal.Zero, domain.ErrBundleNotFound
	}

	bundle, err := s.catalog.GetBundleDetails(ctx, bundleCode)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if !bundle.Available {
		return nil, decimal.Zero, domain.ErrBundleUnavailable
	}

	total, err := domain.OrderTotal(bundle.UnitPrice, quantity)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return bundle, total, nil
}

func (s *OrderService) createB2COrder(ctx context.Context, req domain.B2COrderRequest) (*domain.Order, error) {
	bundle, total, err := s.quote(ctx, req.BundleCode, req.Quantity)
	if err != nil {
		return nil, err
	}

	now := s.now()
	order := &domain.Order{
		OrderNumber:   domain.NewOrderNumber(),
		Channel:       domain.OrderChannelB2C,
		UserID:        req.UserID,
		CustomerEmail: req.CustomerEmail,
		BundleCode:    req.BundleCode,
		BundleName:    bundle.Name,
		CountryISO:    bundle.CountryISO,
		Quantity:      req.Quantity,
		UnitPrice:     bundle.UnitPrice,
		TotalAmount:   total,
		Currency:      bundle.Currency,
		Status:        domain.OrderStatusCreated,
		PaymentStatus: domain.PaymentStatusCreated,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	newOrder, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, err
	}
	s.metrics.OrderTransition("", newOrder.Status)

	return newOrder, nil
}

// createB2BOrder charges the vendor first. No order row exists unless the charge went through.
func (s *OrderService) createB2BOrder(ctx context.Context, req domain.B2BOrderRequest) (*domain.Order, error) {
	bundle, total, err := s.quote(ctx, req.BundleCode, req.Quantity)
	if err != nil {
		return nil, err
	}

	orderID, err := s.orders.NextOrderID(ctx)
	if err != nil {
		s.logger.Error("Reserve order id", zap.Error(err))
		return nil, err
	}
	number := domain.NewOrderNumber()

	entry, err := s.ledger.DebitForOrder(ctx, req.VendorID, total, orderID, "eSIM order "+number)
	if err != nil {
		return nil, err
	}

	now := s.now()
	order := &domain.Order{
		ID:            orderID,
		OrderNumber:   number,
		Channel:       domain.OrderChannelB2B,
		VendorID:      req.VendorID,
		CustomerEmail: req.CustomerEmail,
		BundleCode:    req.BundleCode,
		BundleName:    bundle.Name,
		CountryISO:    bundle.CountryISO,
		Quantity:      req.Quantity,
		UnitPrice:     bundle.UnitPrice,
		TotalAmount:   total,
		Currency:      bundle.Currency,
		Status:        domain.OrderStatusPaid,
		PaymentStatus: domain.PaymentStatusSucceeded,
		DebitEntryID:  entry.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
		PaidAt:        &now,
	}

	newOrder, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create B2B order after vendor debit, refunding",
			zap.Uint64("vendor_id", req.VendorID), zap.Uint64("order_id", orderID), zap.Error(err))
		_, rerr := s.ledger.RefundToVendor(ctx, req.VendorID, entry.Amount, orderID, entry.ID,
			"order "+number+" was not created")
		if rerr != nil {
			s.logger.Error("Compensating refund failed",
				zap.Uint64("vendor_id", req.VendorID), zap.Uint64("entry_id", entry.ID), zap.Error(rerr))
		}
		return nil, err
	}
	s.metrics.OrderTransition("", newOrder.Status)

	provisioned, err := s.ProvisionOrder(ctx, newOrder.ID)
	if err != nil {
		s.logger.Warn("B2B order provisioning failed", zap.Uint64("order_id", newOrder.ID), zap.Error(err))
		if provisioned != nil {
			return provisioned, nil
		}
		if current, rerr := s.orders.ReadOrder(ctx, newOrder.ID); rerr == nil {
			return current, nil
		}
		return newOrder, nil
	}

	return provisioned, nil
}

// StartPayment opens a payment intent for a B2C order and moves it to PAYMENT_PENDING.
// The order number is the provider idempotency key so repeated calls return the same intent.
func (s *OrderService) StartPayment(ctx context.Context, orderID uint64) (*domain.Order, *domain.PaymentIntent, error) {
	order, err := s.orders.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	if order.IsB2B() {
		return nil, nil, domain.ErrOrderChannelMismatch
	}
	if order.Status != domain.OrderStatusCreated && order.Status != domain.OrderStatusPaymentPending {
		return nil, nil, fmt.Errorf("%w: can not start payment in %s", domain.ErrInvalidOrderStatus, order.Status)
	}

	intent, err := s.payments.CreatePaymentIntent(ctx, domain.PaymentIntentRequest{
		OrderNumber:    order.OrderNumber,
		Amount:         order.TotalAmount,
		Currency:       order.Currency,
		CustomerEmail:  order.CustomerEmail,
		Description:    "eSIM " + order.BundleCode + " x" + strconv.Itoa(order.Quantity),
		IdempotencyKey: order.OrderNumber,
		Metadata: map[string]string{
			domain.PaymentMetaOrderID: strconv.FormatUint(order.ID, 10),
			domain.PaymentMetaPurpose: domain.PaymentPurposeOrder,
		},
	})
	if err != nil {
		s.logger.Error("Create payment intent", zap.Uint64("order_id", orderID), zap.Error(err))
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrPaymentProviderFailed, err)
	}

	var from domain.OrderStatus
	order, err = s.orders.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		from = o.Status
		switch o.Status {
		case domain.OrderStatusCreated:
			if err := o.TransitionTo(domain.OrderStatusPaymentPending, s.now()); err != nil {
				return err
			}
		case domain.OrderStatusPaymentPending:
		default:
			return fmt.Errorf("%w: can not start payment in %s", domain.ErrInvalidOrderStatus, o.Status)
		}
		o.PaymentStatus = domain.PaymentStatusPending
		o.PaymentIntentID = intent.ID
		o.ErrorCode = ""
		o.ErrorMessage = ""
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if from != order.Status {
		s.metrics.OrderTransition(from, order.Status)
	}

	return order, intent, nil
}

// MarkOrderAsPaid records a confirmed payment and attempts provisioning.
// Provisioning failures are logged and the order is returned in its failed state.
func (s *OrderService) MarkOrderAsPaid(ctx context.Context, orderID uint64, paymentID string) (*domain.Order, error) {
	var from domain.OrderStatus
	order, err := s.orders.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		if o.PaymentStatus == domain.PaymentStatusSucceeded || o.PaymentStatus == domain.PaymentStatusRefunded {
			return errAlreadyPaid
		}
		if o.Status != domain.OrderStatusCreated && o.Status != domain.OrderStatusPaymentPending {
			return fmt.Errorf("%w: can not mark order paid in %s", domain.ErrInvalidOrderStatus, o.Status)
		}

		from = o.Status
		if err := o.TransitionTo(domain.OrderStatusPaid, s.now()); err != nil {
			return err
		}
		o.PaymentStatus = domain.PaymentStatusSucceeded
		if paymentID != "" {
			o.PaymentIntentID = paymentID
		}
		o.ErrorCode = ""
		o.ErrorMessage = ""
		return nil
	})
	if err != nil {
		if errors.Is(err, errAlreadyPaid) {
			s.logger.Info("order already paid", zap.Uint64("order_id", orderID), zap.String("payment_id", paymentID))
			return s.orders.ReadOrder(ctx, orderID)
		}
		if errors.Is(err, domain.ErrInvalidOrderStatus) {
			s.logger.Error("payment confirmed for order that can not accept it",
				zap.Uint64("order_id", orderID), zap.String("payment_id", paymentID), zap.Error(err))
		}
		return nil, err
	}
	s.metrics.OrderTransition(from, order.Status)

	provisioned, err := s.ProvisionOrder(ctx, orderID)
	if err != nil {
		s.logger.Warn("provisioning after payment failed", zap.Uint64("order_id", orderID), zap.Error(err))
		if provisioned != nil {
			return provisioned, nil
		}
		return order, nil
	}
	return provisioned, nil
}

// MarkPaymentFailed returns a pending order to CREATED so the customer can pay again.
func (s *OrderService) MarkPaymentFailed(ctx context.Context, paymentID string, reason string) (*domain.Order, error) {
	order, err := s.orders.ReadOrderByPaymentIntent(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	var from domain.OrderStatus
	order, err = s.orders.UpdateOrder(ctx, order.ID, func(o *domain.Order) error {
		from = o.Status
		switch o.Status {
		case domain.OrderStatusPaymentPending:
			if err := o.TransitionTo(domain.OrderStatusCreated, s.now()); err != nil {
				return err
			}
		case domain.OrderStatusCreated:
			o.UpdatedAt = s.now()
		default:
			return fmt.Errorf("%w: payment failure for order in %s", domain.ErrInvalidOrderStatus, o.Status)
		}
		o.PaymentStatus = domain.PaymentStatusFailed
		o.ErrorCode = domain.OrderErrorPaymentFailed
		o.ErrorMessage = reason
		return nil
	})
	if err != nil {
		return nil, err
	}
	if from != order.Status {
		s.metrics.OrderTransition(from, order.Status)
	}

	return order, nil
}

// ProvisionOrder places the order with the provider at most once.
//
// An order that already has a provider reference is returned unchanged. On a provider
// failure the updated order is returned together with an error wrapping ErrProvisioningFailed.
// When the provider outcome is unknown the order stays in PROVISIONING for manual review.
func (s *OrderService) ProvisionOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	order, err := s.orders.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		if o.IsProvisioned() {
			return errAlreadyProvisioned
		}
		if o.PaymentStatus == domain.PaymentStatusRefunded {
			return domain.ErrOrderAlreadyRefunded
		}
		if o.Status != domain.OrderStatusPaid {
			return fmt.Errorf("%w: can not provision order in %s", domain.ErrInvalidOrderStatus, o.Status)
		}
		return o.TransitionTo(domain.OrderStatusProvisioning, s.now())
	})
	if err != nil {
		if errors.Is(err, errAlreadyProvisioned) {
			return s.orders.ReadOrder(ctx, orderID)
		}
		return nil, err
	}
	s.metrics.OrderTransition(domain.OrderStatusPaid, domain.OrderStatusProvisioning)

	start := time.Now()
	gwCtx, cancel := context.WithTimeout(ctx, s.conf.ProvisionTimeout)
	result, gwErr := s.gateway.CreateOrder(gwCtx, order.BundleCode, order.Quantity)
	cancel()

	var perr *domain.ProvisioningError
	switch {
	case gwErr != nil:
		perr = domain.ClassifyProvisioningError(gwErr)
	case result == nil || result.ExternalOrderID == "":
		perr = &domain.ProvisioningError{Kind: domain.ProvisioningOutcomeUnknown, Message: "provider returned no order reference"}
	}
	kind := "OK"
	if perr != nil {
		kind = string(perr.Kind)
	}
	s.metrics.ProvisioningAttempt(kind, time.Since(start))

	// The provider has answered, its outcome must be stored even if the caller is gone.
	ctx = context.WithoutCancel(ctx)
	order, err = s.orders.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		if o.Status != domain.OrderStatusProvisioning {
			return fmt.Errorf("%w: order left PROVISIONING during provider call", domain.ErrInvalidOrderStatus)
		}
		now := s.now()

		if perr == nil {
			o.ExternalOrderID = result.ExternalOrderID
			o.ICCIDs = result.ICCIDs()
			o.MatchingIDs = result.MatchingIDs()
			o.ErrorCode = ""
			o.ErrorMessage = ""
			return o.TransitionTo(domain.OrderStatusCompleted, now)
		}

		o.ErrorCode = string(perr.Kind)
		o.ErrorMessage = perr.Error()
		if perr.Kind.NeedsReview() {
			o.UpdatedAt = now
			return nil
		}
		if perr.Kind.Retryable() {
			o.RetryCount++
			o.LastRetryAt = &now
			return o.TransitionTo(domain.OrderStatusSyncFailed, now)
		}
		return o.TransitionTo(domain.OrderStatusFailed, now)
	})
	if err != nil {
		if perr == nil {
			s.logger.Error("eSIM order placed but not recorded, needs manual review",
				zap.Uint64("order_id", orderID),
				zap.String("external_order_id", result.ExternalOrderID),
				zap.Error(err))
		} else {
			s.logger.Error("Store provisioning failure", zap.Uint64("order_id", orderID), zap.Error(err))
		}
		return nil, err
	}
	if order.Status != domain.OrderStatusProvisioning {
		s.metrics.OrderTransition(domain.OrderStatusProvisioning, order.Status)
	}

	if perr == nil {
		s.logger.Info("order provisioned",
			zap.Uint64("order_id", orderID),
			zap.String("external_order_id", order.ExternalOrderID))
		return order, nil
	}

	if perr.Kind.NeedsReview() {
		s.logger.Error("provider outcome unknown, order needs manual review",
			zap.Uint64("order_id", orderID),
			zap.String("order", order.OrderNumber),
			zap.Error(perr))
		return order, fmt.Errorf("%w: %w", domain.ErrProvisioningFailed, perr)
	}

	s.logger.Warn("order provisioning failed",
		zap.Uint64("order_id", orderID),
		zap.String("kind", string(perr.Kind)),
		zap.String("status", string(order.Status)),
		zap.Error(perr))
	if order.Status == domain.OrderStatusFailed {
		order = s.applyRefundPolicy(ctx, order, "provisioning failed: "+string(perr.Kind))
	}

	return order, fmt.Errorf("%w: %w", domain.ErrProvisioningFailed, perr)
}

// CancelOrder cancels an order that has not reached the provider.
//
// Charged B2B orders are refunded before the transition, so a failed refund leaves the
// order cancelable and the call can be repeated.
func (s *OrderService) CancelOrder(ctx context.Context, orderID uint64, reason string) (*domain.Order, error) {
	current, err := s.orders.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := checkCancelable(current); err != nil {
		return nil, err
	}

	if current.IsB2B() && current.PaymentStatus == domain.PaymentStatusSucceeded {
		_, err := s.refundVendorOrder(ctx, orderID, "order canceled: "+reason, checkCancelable)
		if err != nil && !errors.Is(err, domain.ErrOrderAlreadyRefunded) {
			s.logger.Error("Refund canceled order", zap.Uint64("order_id", orderID), zap.Error(err))
			return nil, err
		}
	}

	var from domain.OrderStatus
	order, err := s.orders.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		if err := checkCancelable(o); err != nil {
			return err
		}
		from = o.Status
		o.CancelReason = reason
		return o.TransitionTo(domain.OrderStatusCanceled, s.now())
	})
	if err != nil {
		return nil, err
	}
	s.metrics.OrderTransition(from, order.Status)
	s.logger.Info("order canceled", zap.Uint64("order_id", orderID), zap.String("reason", reason))

	return order, nil
}

func checkCancelable(o *domain.Order) error {
	switch o.Status {
	case domain.OrderStatusCreated, domain.OrderStatusPaymentPending, domain.OrderStatusPaid:
	default:
		return fmt.Errorf("%w: order is %s", domain.ErrOrderNotCancelable, o.Status)
	}
	if o.IsProvisioned() {
		return domain.ErrOrderNotCancelable
	}
	return nil
}

// RetryProvisioning puts a failed order back to PAID and provisions it again.
func (s *OrderService) RetryProvisioning(ctx context.Context, orderID uint64) (*domain.Order, error) {
	var from domain.OrderStatus
	order, err := s.orders.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		if o.Status != domain.OrderStatusSyncFailed && o.Status != domain.OrderStatusFailed {
			return fmt.Errorf("%w: can not retry order in %s", domain.ErrInvalidOrderStatus, o.Status)
		}
		if o.PaymentStatus == domain.PaymentStatusRefunded {
			return domain.ErrOrderAlreadyRefunded
		}

		from = o.Status
		o.ErrorCode = ""
		o.ErrorMessage = ""
		o.FailedAt = nil
		return o.TransitionTo(domain.OrderStatusPaid, s.now())
	})
	if err != nil {
		return nil, err
	}
	s.metrics.OrderTransition(from, order.Status)

	return s.ProvisionOrder(ctx, orderID)
}

// FailOrder gives up on an order waiting for a provisioning retry.
func (s *OrderService) FailOrder(ctx context.Context, orderID uint64, code string, message string) (*domain.Order, error) {
	order, err := s.orders.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		if o.Status != domain.OrderStatusSyncFailed {
			return fmt.Errorf("%w: can not fail order in %s", domain.ErrInvalidOrderStatus, o.Status)
		}
		o.ErrorCode = code
		o.ErrorMessage = message
		return o.TransitionTo(domain.OrderStatusFailed, s.now())
	})
	if err != nil {
		return nil, err
	}
	s.metrics.OrderTransition(domain.OrderStatusSyncFailed, order.Status)
	s.logger.Warn("order failed", zap.Uint64("order_id", orderID), zap.String("code", code), zap.String("message", message))

	return s.applyRefundPolicy(ctx, order, message), nil
}

func (s *OrderService) applyRefundPolicy(ctx context.Context, order *domain.Order, reason string) *domain.Order {
	if s.conf.RefundPolicy != domain.RefundPolicyOnPermanentFailure || !order.IsB2B() {
		return order
	}

	refunded, err := s.refundVendorOrder(ctx, order.ID, reason, nil)
	if err != nil {
		if !errors.Is(err, domain.ErrOrderAlreadyRefunded) {
			s.logger.Error("Refund failed order", zap.Uint64("order_id", order.ID), zap.Error(err))
		}
		return order
	}
	return refunded
}

// refundVendorOrder returns the order amount to the vendor once. The REFUNDED payment
// status is set first and acts as the guard against a second refund. check, when set,
// runs under the same row lock.
func (s *OrderService) refundVendorOrder(ctx context.Context, orderID uint64, reason string,
	check func(o *domain.Order) error) (*domain.Order, error) {
	order, err := s.orders.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		if check != nil {
			if err := check(o); err != nil {
				return err
			}
		}
		if !o.IsB2B() {
			return domain.ErrOrderChannelMismatch
		}
		if o.PaymentStatus == domain.PaymentStatusRefunded {
			return domain.ErrOrderAlreadyRefunded
		}
		if o.PaymentStatus != domain.PaymentStatusSucceeded || o.DebitEntryID == 0 {
			return fmt.Errorf("%w: order was not charged", domain.ErrInvalidOrderStatus)
		}
		if o.IsProvisioned() {
			return fmt.Errorf("%w: order is provisioned", domain.ErrInvalidOrderStatus)
		}
		o.PaymentStatus = domain.PaymentStatusRefunded
		o.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	_, err = s.ledger.RefundToVendor(ctx, order.VendorID, order.TotalAmount, order.ID, order.DebitEntryID, reason)
	if err != nil {
		_, rerr := s.orders.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
			o.PaymentStatus = domain.PaymentStatusSucceeded
			o.UpdatedAt = s.now()
			return nil
		})
		if rerr != nil {
			s.logger.Error("Restore payment status after failed refund", zap.Uint64("order_id", orderID), zap.Error(rerr))
		}
		return nil, err
	}

	s.logger.Info("vendor refunded",
		zap.Uint64("order_id", orderID),
		zap.Uint64("vendor_id", order.VendorID),
		zap.Stringer("amount", order.TotalAmount))
	return order, nil
}

// FindStaleOrders lists orders stuck in a non-terminal in-flight state for longer than minutesOld.
func (s *OrderService) FindStaleOrders(ctx context.Context, minutesOld int) ([]*domain.Order, error) {
	if minutesOld <= 0 {
		return nil, domain.ErrBadRequest
	}
	before := s.now().Add(-time.Duration(minutesOld) * time.Minute)

	list, err := s.orders.ListOrdersByStatusBefore(ctx, staleOrderStatuses, before)
	if err != nil {
		s.logger.Error("List stale orders", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	return s.orders.ReadOrder(ctx, orderID)
}

func (s *OrderService) GetOrderByNumber(ctx context.Context, number string) (*domain.Order, error) {
	return s.orders.ReadOrderByNumber(ctx, number)
}

func (s *OrderService) SearchOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	list, err := s.orders.ListOrders(ctx, filter)
	if err != nil {
		s.logger.Error("Search orders", zap.Error(err))
		return nil, err
	}
	return list, nil
}

var _ port.OrderService = (*OrderService)(nil)
