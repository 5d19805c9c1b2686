package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port"
	"go.uber.org/zap"
)

const DefaultIdempotencyTTL = 24 * time.Hour

type IdempotencyService struct {
	repo    port.IdempotencyRepository
	metrics port.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

func NewIdempotencyService(repo port.IdempotencyRepository, metrics port.Metrics,
	logger *zap.Logger) (*IdempotencyService, error) {
	return &IdempotencyService{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}, nil
}

// GetCachedResponse decides whether a keyed request runs, replays or conflicts.
func (s *IdempotencyService) GetCachedResponse(ctx context.Context,
	key domain.IdempotencyKey, body []byte) (*domain.IdempotencyDecision, error) {
	decision, err := s.decide(ctx, key, body)
	if err != nil {
		return nil, err
	}
	s.metrics.IdempotencyDecision(decision.Outcome)
	return decision, nil
}

func (s *IdempotencyService) decide(ctx context.Context,
	key domain.IdempotencyKey, body []byte) (*domain.IdempotencyDecision, error) {
	record, err := s.repo.ReadIdempotencyRecord(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return &domain.IdempotencyDecision{Outcome: domain.IdempotencyProceed}, nil
		}
		return nil, err
	}

	if record.IsExpired(s.now()) {
		err = s.repo.DeleteIdempotencyRecord(ctx, record.ID)
		if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		return &domain.IdempotencyDecision{Outcome: domain.IdempotencyProceed}, nil
	}

	if record.RequestHash != domain.HashRequest(body) {
		return &domain.IdempotencyDecision{Outcome: domain.IdempotencyConflict, Record: record}, nil
	}

	if record.Status == domain.IdempotencyStatusPending {
		return &domain.IdempotencyDecision{Outcome: domain.IdempotencyConflict, Record: record}, nil
	}

	return &domain.IdempotencyDecision{Outcome: domain.IdempotencyReplay, Record: record}, nil
}

// CreatePendingRecord reserves the key. A concurrent reservation of the same key fails with ErrIdempotencyConflict.
func (s *IdempotencyService) CreatePendingRecord(ctx context.Context,
	key domain.IdempotencyKey, body []byte, ttl time.Duration) (*domain.IdempotencyRecord, error) {
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	now := s.now()

	record, err := s.repo.CreateIdempotencyRecord(ctx, &domain.IdempotencyRecord{
		IdempotencyKey: key,
		RequestHash:    domain.HashRequest(body),
		Status:         domain.IdempotencyStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
		ExpiresAt:      now.Add(ttl),
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrIdempotencyConflict
		}
		return nil, err
	}
	return record, nil
}

// UpdateRecordWithResponse completes a pending record. Records already completed keep their first response.
func (s *IdempotencyService) UpdateRecordWithResponse(ctx context.Context,
	recordID uint64, status int, body []byte) (*domain.IdempotencyRecord, error) {
	return s.repo.UpdateIdempotencyRecord(ctx, recordID, func(r *domain.IdempotencyRecord) error {
		if r.Status != domain.IdempotencyStatusPending {
			return nil
		}
		r.Status = domain.IdempotencyStatusFailed
		if domain.IsSuccessStatus(status) {
			r.Status = domain.IdempotencyStatusCompleted
		}
		r.ResponseStatus = status
		r.ResponseBody = append([]byte(nil), body...)
		r.UpdatedAt = s.now()
		return nil
	})
}

// ReleaseRecord drops a pending reservation so the client may retry the same key.
func (s *IdempotencyService) ReleaseRecord(ctx context.Context, recordID uint64) error {
	err := s.repo.DeleteIdempotencyRecord(ctx, recordID)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		return err
	}
	return nil
}

func (s *IdempotencyService) CleanupExpiredRecords(ctx context.Context) (int64, error) {
	count, err := s.repo.DeleteExpiredIdempotencyRecords(ctx, s.now())
	if err != nil {
		s.logger.Error("Cleanup idempotency records", zap.Error(err))
		return 0, err
	}
	if count > 0 {
		s.logger.Info("expired idempotency records removed", zap.Int64("count", count))
	}
	return count, nil
}

// Execute runs fn at most once per key.
//
// Errors carrying a domain code are stored as a failed response and replayed.
// Any other error releases the key and is returned as is.
func (s *IdempotencyService) Execute(ctx context.Context, key domain.IdempotencyKey, body []byte,
	ttl time.Duration, fn port.IdempotentFn) (*domain.IdempotentResponse, error) {
	decision, err := s.GetCachedResponse(ctx, key, body)
	if err != nil {
		return nil, err
	}

	switch decision.Outcome {
	case domain.IdempotencyConflict:
		return nil, domain.ErrIdempotencyConflict
	case domain.IdempotencyReplay:
		return &domain.IdempotentResponse{
			Status:   decision.Record.ResponseStatus,
			Body:     decision.Record.ResponseBody,
			Replayed: true,
		}, nil
	}

	record, err := s.CreatePendingRecord(ctx, key, body, ttl)
	if err != nil {
		return nil, err
	}

	status, respBody, fnErr := fn(ctx)
	if fnErr != nil {
		if !domain.KnownError(fnErr) {
			if relErr := s.ReleaseRecord(ctx, record.ID); relErr != nil {
				s.logger.Error("release idempotency record", zap.Uint64("record_id", record.ID), zap.Error(relErr))
			}
			return nil, fnErr
		}
		status = http.StatusUnprocessableEntity
		respBody, err = json.Marshal(domain.ErrorBody{Error: domain.ErrorCode(fnErr), Message: fnErr.Error()})
		if err != nil {
			return nil, fmt.Errorf("encode error body: %w", err)
		}
	}

	// the effect already happened; a record left pending keeps rejecting the key until it expires
	_, err = s.UpdateRecordWithResponse(ctx, record.ID, status, respBody)
	if err != nil {
		s.logger.Error("store idempotent response", zap.Uint64("record_id", record.ID), zap.Error(err))
	}

	return &domain.IdempotentResponse{Status: status, Body: respBody}, nil
}

// ReplayError rebuilds the domain error stored in a failed response.
func ReplayError(resp *domain.IdempotentResponse) error {
	if domain.IsSuccessStatus(resp.Status) {
		return nil
	}
	var body domain.ErrorBody
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return domain.ErrInternal
	}
	return domain.ErrorFromCode(body.Error)
}

var _ port.IdempotencyService = (*IdempotencyService)(nil)
