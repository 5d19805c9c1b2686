package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MikeRez0/esimhub/internal/adapter/storage/memory"
	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port/mock"
	"github.com/MikeRez0/esimhub/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newIdempotency(t *testing.T, ctrl *gomock.Controller) (*service.IdempotencyService, *memory.Store) {
	t.Helper()

	logger, _ := zap.NewProduction()
	store := memory.New()
	s, err := service.NewIdempotencyService(store, newMetrics(ctrl), logger)
	require.NoError(t, err)
	return s, store
}

var orderKey = domain.IdempotencyKey{
	Key:     "6d1f0f3e-key",
	Method:  http.MethodPost,
	Path:    "/api/v1/orders",
	ActorID: "user:1",
}

func TestIdempotencyService_Execute(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()
	body := []byte(`{"bundle_code":"esim_1GB_7D_US","quantity":1}`)

	t.Run("Second call replays", func(t *testing.T) {
		s, _ := newIdempotency(t, mockCtrl)
		calls := 0
		fn := func(ctx context.Context) (int, []byte, error) {
			calls++
			return http.StatusCreated, []byte(`{"id":1}`), nil
		}

		first, err := s.Execute(ctx, orderKey, body, time.Hour, fn)
		require.NoError(t, err)
		assert.False(t, first.Replayed)

		second, err := s.Execute(ctx, orderKey, body, time.Hour, fn)
		require.NoError(t, err)
		assert.True(t, second.Replayed)
		assert.Equal(t, first.Status, second.Status)
		assert.Equal(t, first.Body, second.Body)
		assert.Equal(t, 1, calls)
	})

	t.Run("Same key with another body", func(t *testing.T) {
		s, _ := newIdempotency(t, mockCtrl)
		fn := func(ctx context.Context) (int, []byte, error) { return http.StatusCreated, nil, nil }

		_, err := s.Execute(ctx, orderKey, body, time.Hour, fn)
		require.NoError(t, err)

		_, err = s.Execute(ctx, orderKey, []byte(`{"quantity":2}`), time.Hour, fn)
		assert.ErrorIs(t, err, domain.ErrIdempotencyConflict)
	})

	t.Run("Same key for another actor", func(t *testing.T) {
		s, _ := newIdempotency(t, mockCtrl)
		calls := 0
		fn := func(ctx context.Context) (int, []byte, error) {
			calls++
			return http.StatusCreated, nil, nil
		}

		other := orderKey
		other.ActorID = "user:2"
		_, err := s.Execute(ctx, orderKey, body, time.Hour, fn)
		require.NoError(t, err)
		resp, err := s.Execute(ctx, other, body, time.Hour, fn)
		require.NoError(t, err)
		assert.False(t, resp.Replayed)
		assert.Equal(t, 2, calls)
	})

	t.Run("Business error is stored and replayed", func(t *testing.T) {
		s, _ := newIdempotency(t, mockCtrl)
		calls := 0
		fn := func(ctx context.Context) (int, []byte, error) {
			calls++
			return 0, nil, domain.ErrInsufficientBalance
		}

		first, err := s.Execute(ctx, orderKey, body, time.Hour, fn)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, first.Status)
		assert.ErrorIs(t, service.ReplayError(first), domain.ErrInsufficientBalance)

		second, err := s.Execute(ctx, orderKey, body, time.Hour, fn)
		require.NoError(t, err)
		assert.True(t, second.Replayed)
		assert.ErrorIs(t, service.ReplayError(second), domain.ErrInsufficientBalance)
		assert.Equal(t, 1, calls)
	})

	t.Run("Unexpected error releases the key", func(t *testing.T) {
		s, _ := newIdempotency(t, mockCtrl)
		errDown := errors.New("database is down")
		calls := 0
		fn := func(ctx context.Context) (int, []byte, error) {
			calls++
			if calls == 1 {
				return 0, nil, errDown
			}
			return http.StatusCreated, []byte(`{"id":2}`), nil
		}

		_, err := s.Execute(ctx, orderKey, body, time.Hour, fn)
		assert.ErrorIs(t, err, errDown)

		resp, err := s.Execute(ctx, orderKey, body, time.Hour, fn)
		require.NoError(t, err)
		assert.False(t, resp.Replayed)
		assert.Equal(t, 2, calls)
	})

	t.Run("Expired record runs again", func(t *testing.T) {
		s, _ := newIdempotency(t, mockCtrl)
		calls := 0
		fn := func(ctx context.Context) (int, []byte, error) {
			calls++
			return http.StatusCreated, nil, nil
		}

		_, err := s.Execute(ctx, orderKey, body, time.Nanosecond, fn)
		require.NoError(t, err)
		time.Sleep(time.Millisecond)

		resp, err := s.Execute(ctx, orderKey, body, time.Hour, fn)
		require.NoError(t, err)
		assert.False(t, resp.Replayed)
		assert.Equal(t, 2, calls)
	})
}

func TestIdempotencyService_GetCachedResponse(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()
	body := []byte(`{"quantity":1}`)

	s, _ := newIdempotency(t, mockCtrl)

	decision, err := s.GetCachedResponse(ctx, orderKey, body)
	require.NoError(t, err)
	assert.Equal(t, domain.IdempotencyProceed, decision.Outcome)

	record, err := s.CreatePendingRecord(ctx, orderKey, body, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, domain.IdempotencyStatusPending, record.Status)

	_, err = s.CreatePendingRecord(ctx, orderKey, body, time.Hour)
	assert.ErrorIs(t, err, domain.ErrIdempotencyConflict)

	decision, err = s.GetCachedResponse(ctx, orderKey, body)
	require.NoError(t, err)
	assert.Equal(t, domain.IdempotencyConflict, decision.Outcome, "request still in flight")

	_, err = s.UpdateRecordWithResponse(ctx, record.ID, http.StatusCreated, []byte(`{"id":1}`))
	require.NoError(t, err)

	// a completed record keeps its first response
	stored, err := s.UpdateRecordWithResponse(ctx, record.ID, http.StatusInternalServerError, []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, domain.IdempotencyStatusCompleted, stored.Status)
	assert.Equal(t, http.StatusCreated, stored.ResponseStatus)

	decision, err = s.GetCachedResponse(ctx, orderKey, body)
	require.NoError(t, err)
	assert.Equal(t, domain.IdempotencyReplay, decision.Outcome)
	assert.Equal(t, []byte(`{"id":1}`), decision.Record.ResponseBody)

	require.NoError(t, s.ReleaseRecord(ctx, record.ID))
	require.NoError(t, s.ReleaseRecord(ctx, record.ID), "releasing twice is a no-op")
}

func TestIdempotencyService_CleanupExpiredRecords(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()
	s, store := newIdempotency(t, mockCtrl)

	_, err := s.CreatePendingRecord(ctx, orderKey, nil, time.Nanosecond)
	require.NoError(t, err)
	kept := orderKey
	kept.Key = "kept"
	_, err = s.CreatePendingRecord(ctx, kept, nil, time.Hour)
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	count, err := s.CleanupExpiredRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = store.ReadIdempotencyRecord(ctx, kept)
	assert.NoError(t, err)
}

func TestIdempotencyService_RepositoryFailure(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()
	errDown := errors.New("connection refused")

	repo := mock.NewMockIdempotencyRepository(mockCtrl)
	repo.EXPECT().ReadIdempotencyRecord(gomock.Any(), orderKey).Return(nil, errDown)

	s, err := service.NewIdempotencyService(repo, mock.NewMockMetrics(mockCtrl), logger)
	require.NoError(t, err)

	_, err = s.Execute(context.Background(), orderKey, nil, time.Hour, func(ctx context.Context) (int, []byte, error) {
		t.Fatal("must not run without a reservation")
		return 0, nil, nil
	})
	assert.ErrorIs(t, err, errDown)
}
