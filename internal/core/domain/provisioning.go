package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type ProvisioningErrorKind string

const (
	ProvisioningInvalidBundle ProvisioningErrorKind = "INVALID_BUNDLE"
	ProvisioningAuthFailed    ProvisioningErrorKind = "AUTH_FAILED"
	ProvisioningRateLimited   ProvisioningErrorKind = "RATE_LIMITED"
	ProvisioningUnavailable   ProvisioningErrorKind = "UNAVAILABLE"
	ProvisioningTimeout       ProvisioningErrorKind = "TIMEOUT"
	ProvisioningRejected      ProvisioningErrorKind = "REJECTED"
	ProvisioningUnknown       ProvisioningErrorKind = "UNKNOWN"

	// ProvisioningOutcomeUnknown means the provider accepted the call but the result
	// can not be trusted, so the order may exist on the provider side.
	ProvisioningOutcomeUnknown ProvisioningErrorKind = "OUTCOME_UNKNOWN"
)

// Retryable kinds leave the order in SYNC_FAILED, the rest fail it permanently.
func (k ProvisioningErrorKind) Retryable() bool {
	switch k {
	case ProvisioningInvalidBundle, ProvisioningRateLimited, ProvisioningAuthFailed,
		ProvisioningUnavailable, ProvisioningTimeout:
		return true
	default:
		return false
	}
}

// NeedsReview kinds keep the order in PROVISIONING: neither retry nor refund is safe.
func (k ProvisioningErrorKind) NeedsReview() bool {
	return k == ProvisioningOutcomeUnknown
}

// ProvisioningError is the classified failure returned by a provisioning gateway.
type ProvisioningError struct {
	Kind       ProvisioningErrorKind
	Code       string
	Message    string
	RetryAfter time.Duration
	Err        error
}

func (e *ProvisioningError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("provisioning %s (%s): %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("provisioning %s: %s", e.Kind, e.Message)
}

func (e *ProvisioningError) Unwrap() error {
	return e.Err
}

// ClassifyProvisioningError extracts the kind from any error a gateway call returned.
func ClassifyProvisioningError(err error) *ProvisioningError {
	var perr *ProvisioningError
	if errors.As(err, &perr) {
		return perr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &ProvisioningError{Kind: ProvisioningTimeout, Message: err.Error(), Err: err}
	}
	return &ProvisioningError{Kind: ProvisioningUnknown, Message: err.Error(), Err: err}
}

type ProvisionedESIM struct {
	ICCID       string `json:"iccid"`
	MatchingID  string `json:"matching_id"`
	SMDPAddress string `json:"smdp_address"`
}

type ProvisioningResult struct {
	ExternalOrderID string
	Status          string
	ESIMs           []ProvisionedESIM
}

func (r *ProvisioningResult) ICCIDs() []string {
	list := make([]string, 0, len(r.ESIMs))
	for _, e := range r.ESIMs {
		list = append(list, e.ICCID)
	}
	return list
}

func (r *ProvisioningResult) MatchingIDs() []string {
	list := make([]string, 0, len(r.ESIMs))
	for _, e := range r.ESIMs {
		list = append(list, e.MatchingID)
	}
	return list
}
