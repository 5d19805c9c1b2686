package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VendorHandler serves vendor wallets and ledgers, both to vendors and to admins.
type VendorHandler struct {
	Handler
	service  port.LedgerService
	payments port.PaymentIntents
}

func NewVendorHandler(service port.LedgerService, payments port.PaymentIntents,
	logger *zap.Logger) (*VendorHandler, error) {
	return &VendorHandler{
		Handler:  Handler{logger: logger},
		service:  service,
		payments: payments,
	}, nil
}

// vendorID is the calling vendor on vendor routes and the :id parameter on admin routes.
func vendorID(ctx *gin.Context) (uint64, error) {
	if payload := getAuthPayload(ctx); payload != nil && payload.ActorType == domain.ActorVendor {
		return payload.ActorID, nil
	}
	return pathID(ctx, "id")
}

func (vh *VendorHandler) Balance(ctx *gin.Context) {
	id, err := vendorID(ctx)
	if err != nil {
		vh.handleValidationError(ctx, err)
		return
	}

	vendor, err := vh.service.GetVendor(ctx, id)
	if err != nil {
		vh.handleError(ctx, err)
		return
	}
	resp, err := newBalanceResponse(vendor)
	if err != nil {
		vh.handleError(ctx, err)
		return
	}
	vh.handleSuccess(ctx, resp)
}

func (vh *VendorHandler) ListEntries(ctx *gin.Context) {
	id, err := vendorID(ctx)
	if err != nil {
		vh.handleValidationError(ctx, err)
		return
	}

	filter := domain.LedgerFilter{
		Type:  domain.LedgerEntryType(ctx.Query("type")),
		Limit: defaultListLimit,
	}
	if filter.Offset, err = queryUint(ctx, "offset"); err != nil {
		vh.handleValidationError(ctx, err)
		return
	}
	limit, err := queryUint(ctx, "limit")
	if err != nil {
		vh.handleValidationError(ctx, err)
		return
	}
	if limit > 0 {
		filter.Limit = limit
	}

	list, err := vh.service.ListEntries(ctx, id, filter)
	if err != nil {
		vh.handleError(ctx, err)
		return
	}
	vh.handleSuccess(ctx, list)
}

// TopUp starts a card payment for a PREPAID wallet. The wallet is credited by the
// payment webhook, not here.
func (vh *VendorHandler) TopUp(ctx *gin.Context) {
	req := topUpRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		vh.handleValidationError(ctx, err)
		return
	}
	if !req.Amount.IsPos() {
		vh.handleError(ctx, domain.ErrInvalidAmount)
		return
	}

	id := getAuthPayload(ctx).ActorID
	vendor, err := vh.service.GetVendor(ctx, id)
	if err != nil {
		vh.handleError(ctx, err)
		return
	}
	if vendor.BillingMode != domain.BillingModePrepaid {
		vh.handleError(ctx, domain.ErrBillingModeMismatch)
		return
	}
	if vendor.Status == domain.VendorStatusSuspended {
		vh.handleError(ctx, domain.ErrVendorSuspended)
		return
	}

	intent, err := vh.payments.CreatePaymentIntent(ctx, domain.PaymentIntentRequest{
		Amount:         req.Amount,
		Currency:       vendor.Currency,
		CustomerEmail:  vendor.Email,
		Description:    "wallet top-up for " + vendor.Name,
		IdempotencyKey: ctx.GetHeader(IdempotencyHeader),
		Metadata: map[string]string{
			domain.PaymentMetaVendorID: strconv.FormatUint(vendor.ID, 10),
			domain.PaymentMetaPurpose:  domain.PaymentPurposeTopUp,
		},
	})
	if err != nil {
		vh.handleError(ctx, err)
		return
	}

	vh.handleSuccessWithStatus(ctx, topUpResponse{
		VendorID:      vendor.ID,
		Amount:        req.Amount,
		PaymentIntent: intent,
	}, http.StatusCreated)
}

func (vh *VendorHandler) RegisterVendor(ctx *gin.Context) {
	req := vendorRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		vh.handleValidationError(ctx, err)
		return
	}

	vendor, err := vh.service.RegisterVendor(ctx, &domain.Vendor{
		Name:        req.Name,
		Email:       req.Email,
		BillingMode: req.BillingMode,
		CreditLimit: req.CreditLimit,
		Currency:    req.Currency,
	})
	if err != nil {
		vh.handleError(ctx, err)
		return
	}
	vh.handleSuccessWithStatus(ctx, vendor, http.StatusCreated)
}

func (vh *VendorHandler) GetVendor(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		vh.handleValidationError(ctx, err)
		return
	}

	vendor, err := vh.service.GetVendor(ctx, id)
	if err != nil {
		vh.handleError(ctx, err)
		return
	}
	vh.handleSuccess(ctx, vendor)
}

func (vh *VendorHandler) SetStatus(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		vh.handleValidationError(ctx, err)
		return
	}
	req := vendorStatusRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		vh.handleValidationError(ctx, err)
		return
	}

	vendor, err := vh.service.SetVendorStatus(ctx, id, req.Status)
	if err != nil {
		vh.handleError(ctx, err)
		return
	}
	vh.logger.Info("vendor status changed",
		zap.Uint64("vendor_id", id),
		zap.String("status", string(vendor.Status)),
		zap.String("by", actorOf(ctx)))
	vh.handleSuccess(ctx, vendor)
}

// Adjust books a signed manual correction.
func (vh *VendorHandler) Adjust(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		vh.handleValidationError(ctx, err)
		return
	}
	req := adjustmentRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		vh.handleValidationError(ctx, err)
		return
	}

	entry, err := vh.service.AdjustBalance(ctx, id, req.Amount, req.Reason+" ("+actorOf(ctx)+")")
	if err != nil {
		vh.handleError(ctx, err)
		return
	}
	vh.handleSuccessWithStatus(ctx, entry, http.StatusCreated)
}

func (vh *VendorHandler) Reverse(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		vh.handleValidationError(ctx, err)
		return
	}
	entryID, err := pathID(ctx, "entryID")
	if err != nil {
		vh.handleValidationError(ctx, err)
		return
	}
	req := reversalRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		vh.handleValidationError(ctx, err)
		return
	}

	entry, err := vh.service.ReverseEntry(ctx, id, entryID, req.Reason)
	if err != nil {
		vh.handleError(ctx, err)
		return
	}
	vh.handleSuccessWithStatus(ctx, entry, http.StatusCreated)
}

// Reconcile compares the cached balance with the ledger. A mismatch is reported, not raised.
func (vh *VendorHandler) Reconcile(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		vh.handleValidationError(ctx, err)
		return
	}

	check, err := vh.service.ReconcileVendor(ctx, id)
	if err != nil && !(check != nil && errors.Is(err, domain.ErrLedgerMismatch)) {
		vh.handleError(ctx, err)
		return
	}
	vh.handleSuccess(ctx, check)
}
