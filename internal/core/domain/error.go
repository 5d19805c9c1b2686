package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrNoUpdatedData   = errors.New("no data to update")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest       = errors.New("error parsing request")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrInvalidSignature = errors.New("payment event signature is invalid")
	ErrPayloadTooLarge  = errors.New("request body is too large")

	// * Authority errors.
	ErrTokenDuration              = errors.New("invalid token duration format")
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Business errors.
	ErrInsufficientBalance   = errors.New("balance is not enough")
	ErrCreditLimitExceeded   = errors.New("credit limit exceeded")
	ErrBillingModeMismatch   = errors.New("operation is not supported for vendor billing mode")
	ErrVendorNotActive       = errors.New("vendor is not active")
	ErrVendorSuspended       = errors.New("vendor is suspended")
	ErrNoBalanceChange       = errors.New("operation does not change vendor balance")
	ErrEntryAlreadyReversed  = errors.New("ledger entry is already reversed")
	ErrInvalidOrderStatus    = errors.New("order status does not allow this operation")
	ErrOrderNotCancelable    = errors.New("order can not be canceled")
	ErrOrderAlreadyRefunded  = errors.New("order is already refunded")
	ErrOrderChannelMismatch  = errors.New("operation is not supported for order channel")
	ErrBundleNotFound        = errors.New("bundle not found")
	ErrBundleUnavailable     = errors.New("bundle is not available")
	ErrIdempotencyConflict   = errors.New("idempotency key is in use or was used with another request")
	ErrProvisioningFailed    = errors.New("provisioning failed")
	ErrPaymentProviderFailed = errors.New("payment provider request failed")

	// * Integrity errors.
	ErrLedgerMismatch = errors.New("cached balance does not match ledger")
)

// Stable codes for errors that cross a persistence boundary (idempotent replays, API bodies).
const (
	CodeInternal = "internal_error"
)

var errorCodes = []struct {
	err  error
	code string
}{
	{ErrDataNotFound, "not_found"},
	{ErrConflictingData, "conflict"},
	{ErrBadRequest, "bad_request"},
	{ErrInvalidAmount, "invalid_amount"},
	{ErrInvalidQuantity, "invalid_quantity"},
	{ErrInvalidSignature, "invalid_signature"},
	{ErrPayloadTooLarge, "payload_too_large"},
	{ErrNoUpdatedData, "no_updated_data"},
	{ErrUnauthorized, "unauthorized"},
	{ErrEmptyAuthorizationHeader, "unauthorized"},
	{ErrInvalidAuthorizationHeader, "unauthorized"},
	{ErrInvalidAuthorizationType, "unauthorized"},
	{ErrInvalidToken, "invalid_token"},
	{ErrExpiredToken, "invalid_token"},
	{ErrForbidden, "forbidden"},
	{ErrInsufficientBalance, "insufficient_balance"},
	{ErrCreditLimitExceeded, "credit_limit_exceeded"},
	{ErrBillingModeMismatch, "billing_mode_mismatch"},
	{ErrVendorNotActive, "vendor_not_active"},
	{ErrVendorSuspended, "vendor_suspended"},
	{ErrNoBalanceChange, "no_balance_change"},
	{ErrEntryAlreadyReversed, "entry_already_reversed"},
	{ErrInvalidOrderStatus, "invalid_order_status"},
	{ErrOrderNotCancelable, "order_not_cancelable"},
	{ErrOrderAlreadyRefunded, "order_already_refunded"},
	{ErrOrderChannelMismatch, "order_channel_mismatch"},
	{ErrBundleNotFound, "bundle_not_found"},
	{ErrBundleUnavailable, "bundle_unavailable"},
	{ErrIdempotencyConflict, "idempotency_conflict"},
	{ErrProvisioningFailed, "provisioning_failed"},
	{ErrPaymentProviderFailed, "payment_provider_failed"},
	{ErrLedgerMismatch, "ledger_mismatch"},
}

// ErrorCode returns the stable code of the first known sentinel in err's chain.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeInternal
}

// ErrorFromCode is the reverse of ErrorCode. Unknown codes map to ErrInternal.
func ErrorFromCode(code string) error {
	for _, c := range errorCodes {
		if c.code == code {
			return c.err
		}
	}
	return ErrInternal
}

// KnownError reports whether err wraps one of the coded domain errors.
func KnownError(err error) bool {
	return ErrorCode(err) != CodeInternal
}
