package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// errorStatusMap is checked in order with errors.Is, so wrapped errors resolve too.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{domain.ErrInternal, http.StatusInternalServerError},
	{domain.ErrDataNotFound, http.StatusNotFound},
	{domain.ErrConflictingData, http.StatusConflict},

	{domain.ErrUnauthorized, http.StatusUnauthorized},
	{domain.ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{domain.ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{domain.ErrInvalidAuthorizationType, http.StatusUnauthorized},
	{domain.ErrInvalidToken, http.StatusUnauthorized},
	{domain.ErrExpiredToken, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},

	{domain.ErrNoUpdatedData, http.StatusBadRequest},
	{domain.ErrBadRequest, http.StatusBadRequest},
	{domain.ErrInvalidAmount, http.StatusBadRequest},
	{domain.ErrInvalidQuantity, http.StatusBadRequest},
	{domain.ErrInvalidSignature, http.StatusBadRequest},
	{domain.ErrPayloadTooLarge, http.StatusRequestEntityTooLarge},

	{domain.ErrInsufficientBalance, http.StatusPaymentRequired},
	{domain.ErrCreditLimitExceeded, http.StatusPaymentRequired},
	{domain.ErrBillingModeMismatch, http.StatusUnprocessableEntity},
	{domain.ErrVendorNotActive, http.StatusForbidden},
	{domain.ErrVendorSuspended, http.StatusForbidden},
	{domain.ErrNoBalanceChange, http.StatusUnprocessableEntity},
	{domain.ErrEntryAlreadyReversed, http.StatusConflict},
	{domain.ErrInvalidOrderStatus, http.StatusConflict},
	{domain.ErrOrderNotCancelable, http.StatusConflict},
	{domain.ErrOrderAlreadyRefunded, http.StatusConflict},
	{domain.ErrOrderChannelMismatch, http.StatusUnprocessableEntity},
	{domain.ErrBundleNotFound, http.StatusNotFound},
	{domain.ErrBundleUnavailable, http.StatusUnprocessableEntity},
	{domain.ErrIdempotencyConflict, http.StatusConflict},
	{domain.ErrProvisioningFailed, http.StatusBadGateway},
	{domain.ErrPaymentProviderFailed, http.StatusBadGateway},
	{domain.ErrLedgerMismatch, http.StatusInternalServerError},
}

func errorStatus(err error) (int, bool) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.status, true
		}
	}
	return http.StatusInternalServerError, false
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

func errorBody(err error, status int) domain.ErrorBody {
	if status == http.StatusInternalServerError {
		return domain.ErrorBody{Error: domain.CodeInternal, Message: domain.ErrInternal.Error()}
	}
	return domain.ErrorBody{Error: domain.ErrorCode(err), Message: err.Error()}
}

// handleValidationError sends an error response for a malformed request
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, domain.ErrorBody{
		Error:   domain.ErrorCode(domain.ErrBadRequest),
		Message: err.Error(),
	})
}

// handleAbort sends an error response and aborts the request chain
func (h *Handler) handleAbort(ctx *gin.Context, err error) {
	statusCode, ok := errorStatus(err)
	if !ok {
		h.logger.Error("aborting request", zap.Error(err))
	}
	ctx.AbortWithStatusJSON(statusCode, errorBody(err, statusCode))
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := errorStatus(err)
	if !ok {
		h.logger.Error("error processing request", zap.String("path", ctx.FullPath()), zap.Error(err))
	}
	ctx.JSON(statusCode, errorBody(err, statusCode))
}

// handleSuccessWithStatus sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}

// readBody reads at most limit bytes. A longer body is an error, never a silent cut.
func readBody(body io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrBadRequest, err)
	}
	if int64(len(data)) > limit {
		return nil, domain.ErrPayloadTooLarge
	}
	return data, nil
}

func pathID(ctx *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, domain.ErrBadRequest
	}
	return id, nil
}

func queryUint(ctx *gin.Context, name string) (uint64, error) {
	s := ctx.Query(name)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, domain.ErrBadRequest
	}
	return v, nil
}
