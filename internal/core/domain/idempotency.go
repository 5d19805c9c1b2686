package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

type IdempotencyStatus string

const (
	IdempotencyStatusPending   IdempotencyStatus = "PENDING"
	IdempotencyStatusCompleted IdempotencyStatus = "COMPLETED"
	IdempotencyStatusFailed    IdempotencyStatus = "FAILED"
)

// IdempotencyKey is the unique tuple a client key is scoped to.
type IdempotencyKey struct {
	Key     string `json:"key"`
	Method  string `json:"method"`
	Path    string `json:"path"`
	ActorID string `json:"actor_id"`
}

// String joins the tuple, used as a storage key by key-value stores.
func (k IdempotencyKey) String() string {
	return strings.Join([]string{k.ActorID, k.Method, k.Path, k.Key}, "|")
}

type IdempotencyRecord struct {
	ID uint64 `json:"id"`
	IdempotencyKey
	RequestHash    string            `json:"request_hash"`
	Status         IdempotencyStatus `json:"status"`
	ResponseStatus int               `json:"response_status,omitempty"`
	ResponseBody   []byte            `json:"response_body,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	ExpiresAt      time.Time         `json:"expires_at"`
}

func (r *IdempotencyRecord) IsExpired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

func (r *IdempotencyRecord) Clone() *IdempotencyRecord {
	c := *r
	c.ResponseBody = append([]byte(nil), r.ResponseBody...)
	return &c
}

// HashRequest returns the hex SHA-256 of the request body.
func HashRequest(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// IsSuccessStatus reports a 2xx response status.
func IsSuccessStatus(status int) bool {
	return status >= 200 && status < 300
}

type IdempotencyOutcome string

const (
	IdempotencyProceed  IdempotencyOutcome = "proceed"
	IdempotencyReplay   IdempotencyOutcome = "replay"
	IdempotencyConflict IdempotencyOutcome = "conflict"
)

// IdempotencyDecision tells the caller what to do with an incoming keyed request.
type IdempotencyDecision struct {
	Outcome IdempotencyOutcome
	Record  *IdempotencyRecord
}

// IdempotentResponse is what a keyed execution produced, first time or replayed.
type IdempotentResponse struct {
	Status   int
	Body     []byte
	Replayed bool
}

// ErrorBody is the persisted shape of a failed keyed execution.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
