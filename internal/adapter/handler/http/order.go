package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultListLimit = 50

type OrderHandler struct {
	Handler
	service    port.OrderService
	reconciler port.Reconciler
}

func NewOrderHandler(service port.OrderService, reconciler port.Reconciler, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler:    *NewHandler(logger),
		service:    service,
		reconciler: reconciler,
	}, nil
}

// CreateOrder places a B2C order for the calling user, or a B2B order for the calling vendor.
func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	req := orderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	payload := getAuthPayload(ctx)
	key := ctx.GetHeader(IdempotencyHeader)

	var order *domain.Order
	var err error
	switch payload.ActorType {
	case domain.ActorVendor:
		order, err = oh.service.CreateB2BOrder(ctx, domain.B2BOrderRequest{
			VendorID:       payload.ActorID,
			CustomerEmail:  req.CustomerEmail,
			BundleCode:     req.BundleCode,
			Quantity:       req.Quantity,
			IdempotencyKey: key,
		})
	default:
		order, err = oh.service.CreateB2COrder(ctx, domain.B2COrderRequest{
			UserID:         payload.ActorID,
			CustomerEmail:  req.CustomerEmail,
			BundleCode:     req.BundleCode,
			Quantity:       req.Quantity,
			IdempotencyKey: key,
		})
	}
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, order, http.StatusCreated)
}

func (oh *OrderHandler) ListOwnOrders(ctx *gin.Context) {
	filter, err := orderFilter(ctx)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	payload := getAuthPayload(ctx)
	if payload.ActorType == domain.ActorVendor {
		filter.VendorID = payload.ActorID
		filter.UserID = 0
	} else {
		filter.UserID = payload.ActorID
		filter.VendorID = 0
	}

	list, err := oh.service.SearchOrders(ctx, filter)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccess(ctx, list)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	order, ok := oh.ownedOrder(ctx)
	if !ok {
		return
	}
	oh.handleSuccess(ctx, order)
}

// StartPayment creates the payment intent of a B2C order.
func (oh *OrderHandler) StartPayment(ctx *gin.Context) {
	order, ok := oh.ownedOrder(ctx)
	if !ok {
		return
	}

	order, intent, err := oh.service.StartPayment(ctx, order.ID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccess(ctx, paymentResponse{Order: order, PaymentIntent: intent})
}

func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	req := cancelRequest{}
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
			oh.handleValidationError(ctx, err)
			return
		}
	}

	order, ok := oh.ownedOrder(ctx)
	if !ok {
		return
	}

	reason := req.Reason
	if reason == "" {
		reason = "canceled by " + actorOf(ctx)
	}
	order, err := oh.service.CancelOrder(ctx, order.ID, reason)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccess(ctx, order)
}

// ownedOrder loads the :id order. Orders of other actors are reported as missing.
func (oh *OrderHandler) ownedOrder(ctx *gin.Context) (*domain.Order, bool) {
	id, err := pathID(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return nil, false
	}

	order, err := oh.service.GetOrder(ctx, id)
	if err != nil {
		oh.handleError(ctx, err)
		return nil, false
	}

	payload := getAuthPayload(ctx)
	if payload.ActorType != domain.ActorAdmin && order.Owner() != payload.Actor() {
		oh.handleError(ctx, domain.ErrDataNotFound)
		return nil, false
	}
	return order, true
}

func (oh *OrderHandler) SearchOrders(ctx *gin.Context) {
	filter, err := orderFilter(ctx)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	list, err := oh.service.SearchOrders(ctx, filter)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccess(ctx, list)
}

func (oh *OrderHandler) StaleOrders(ctx *gin.Context) {
	minutes := 10
	if s := ctx.Query("minutes"); s != "" {
		m, err := strconv.Atoi(s)
		if err != nil || m < 1 {
			oh.handleValidationError(ctx, domain.ErrBadRequest)
			return
		}
		minutes = m
	}

	list, err := oh.service.FindStaleOrders(ctx, minutes)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccess(ctx, staleOrdersResponse{MinutesOld: minutes, Orders: list})
}

func (oh *OrderHandler) ProvisionOrder(ctx *gin.Context) {
	oh.adminAction(ctx, oh.service.ProvisionOrder)
}

func (oh *OrderHandler) RetryProvisioning(ctx *gin.Context) {
	oh.adminAction(ctx, oh.service.RetryProvisioning)
}

func (oh *OrderHandler) adminAction(ctx *gin.Context,
	action func(ctx context.Context, orderID uint64) (*domain.Order, error)) {
	id, err := pathID(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := action(ctx, id)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccess(ctx, order)
}

func (oh *OrderHandler) FailOrder(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	req := failRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.FailOrder(ctx, id, req.Code, req.Message)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccess(ctx, order)
}

// Reconcile runs one reconciliation sweep on demand.
func (oh *OrderHandler) Reconcile(ctx *gin.Context) {
	report, err := oh.reconciler.ReconcileStaleOrders(ctx)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccess(ctx, report)
}

func orderFilter(ctx *gin.Context) (domain.OrderFilter, error) {
	filter := domain.OrderFilter{
		Status: domain.OrderStatus(ctx.Query("status")),
		Limit:  defaultListLimit,
	}

	var err error
	if filter.UserID, err = queryUint(ctx, "user_id"); err != nil {
		return filter, err
	}
	if filter.VendorID, err = queryUint(ctx, "vendor_id"); err != nil {
		return filter, err
	}
	if filter.Offset, err = queryUint(ctx, "offset"); err != nil {
		return filter, err
	}
	limit, err := queryUint(ctx, "limit")
	if err != nil {
		return filter, err
	}
	if limit > 0 {
		filter.Limit = limit
	}
	return filter, nil
}
