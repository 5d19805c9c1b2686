package repository

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port"
	"github.com/jackc/pgx/v5"
)

var idempotencyColumns = []string{
	"id", "idem_key", "method", "path", "actor_id", "request_hash", "status",
	"response_status", "response_body", "created_at", "updated_at", "expires_at",
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

func scanIdempotencyRecord(row pgx.Row) (*domain.IdempotencyRecord, error) {
	r := domain.IdempotencyRecord{}
	err := row.Scan(
		&r.ID,
		&r.Key,
		&r.Method,
		&r.Path,
		&r.ActorID,
		&r.RequestHash,
		&r.Status,
		&r.ResponseStatus,
		&r.ResponseBody,
		&r.CreatedAt,
		&r.UpdatedAt,
		&r.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func keyPredicate(key domain.IdempotencyKey) sq.Eq {
	return sq.Eq{
		"idem_key": key.Key,
		"method":   key.Method,
		"path":     key.Path,
		"actor_id": key.ActorID,
	}
}

func (r *Repository) ReadIdempotencyRecord(ctx context.Context,
	key domain.IdempotencyKey) (*domain.IdempotencyRecord, error) {
	statement := r.db.QueryBuilder.
		Select(idempotencyColumns...).
		From("idempotency_records").
		Where(keyPredicate(key))

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	record, err := scanIdempotencyRecord(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err)
	}
	return record, nil
}

// CreateIdempotencyRecord relies on the unique key constraint: of two concurrent
// inserts for the same key exactly one wins, the other gets ErrConflictingData.
func (r *Repository) CreateIdempotencyRecord(ctx context.Context,
	record *domain.IdempotencyRecord) (*domain.IdempotencyRecord, error) {
	statement := r.db.QueryBuilder.
		Insert("idempotency_records").
		Columns("idem_key", "method", "path", "actor_id", "request_hash", "status",
			"response_status", "response_body", "created_at", "updated_at", "expires_at").
		Values(record.Key, record.Method, record.Path, record.ActorID, record.RequestHash, record.Status,
			record.ResponseStatus, record.ResponseBody, record.CreatedAt, record.UpdatedAt, record.ExpiresAt).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	created := record.Clone()
	err = r.db.QueryRow(ctx, sql, args...).Scan(&created.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return created, nil
}

func (r *Repository) UpdateIdempotencyRecord(ctx context.Context,
	recordID uint64, updateFn port.UpdateIdempotencyFn) (*domain.IdempotencyRecord, error) {
	var record *domain.IdempotencyRecord

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		selectSt := r.db.QueryBuilder.
			Select(idempotencyColumns...).
			From("idempotency_records").
			Where(sq.Eq{"id": recordID}).
			Suffix("FOR UPDATE")

		sql, args, err := selectSt.ToSql()
		if err != nil {
			return err
		}

		current, err := scanIdempotencyRecord(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			return err
		}

		updated := current.Clone()
		if err := updateFn(updated); err != nil {
			return err
		}

		updateSt := r.db.QueryBuilder.
			Update("idempotency_records").
			Set("status", updated.Status).
			Set("response_status", updated.ResponseStatus).
			Set("response_body", updated.ResponseBody).
			Set("updated_at", updated.UpdatedAt).
			Set("expires_at", updated.ExpiresAt).
			Where(sq.Eq{"id": recordID})

		sql, args, err = updateSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		record = updated
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}

	return record, nil
}

func (r *Repository) DeleteIdempotencyRecord(ctx context.Context, recordID uint64) error {
	statement := r.db.QueryBuilder.
		Delete("idempotency_records").
		Where(sq.Eq{"id": recordID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (r *Repository) DeleteExpiredIdempotencyRecords(ctx context.Context, now time.Time) (int64, error) {
	statement := r.db.QueryBuilder.
		Delete("idempotency_records").
		Where(sq.LtOrEq{"expires_at": now})

	sql, args, err := statement.ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
