package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/esimhub/internal/adapter/storage"
	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

// mapError turns driver errors into domain errors. Anything else passes through.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrDataNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return domain.ErrConflictingData
	}
	return err
}

var orderColumns = []string{
	"id", "order_number", "channel", "user_id", "vendor_id", "customer_email",
	"bundle_code", "bundle_name", "country_iso", "quantity", "unit_price", "total_amount", "currency",
	"status", "payment_status", "payment_intent_id", "debit_entry_id", "external_order_id",
	"iccids", "matching_ids", "retry_count", "error_code", "error_message", "cancel_reason", "version",
	"created_at", "updated_at", "paid_at", "provisioned_at", "completed_at", "failed_at", "canceled_at", "last_retry_at",
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	err := row.Scan(
		&order.ID,
		&order.OrderNumber,
		&order.Channel,
		&order.UserID,
		&order.VendorID,
		&order.CustomerEmail,
		&order.BundleCode,
		&order.BundleName,
		&order.CountryISO,
		&order.Quantity,
		&order.UnitPrice,
		&order.TotalAmount,
		&order.Currency,
		&order.Status,
		&order.PaymentStatus,
		&order.PaymentIntentID,
		&order.DebitEntryID,
		&order.ExternalOrderID,
		&order.ICCIDs,
		&order.MatchingIDs,
		&order.RetryCount,
		&order.ErrorCode,
		&order.ErrorMessage,
		&order.CancelReason,
		&order.Version,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.PaidAt,
		&order.ProvisionedAt,
		&order.CompletedAt,
		&order.FailedAt,
		&order.CanceledAt,
		&order.LastRetryAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// orderValues holds the mutable columns written by both insert and update.
func orderValues(o *domain.Order) map[string]any {
	return map[string]any{
		"order_number":      o.OrderNumber,
		"channel":           o.Channel,
		"user_id":           o.UserID,
		"vendor_id":         o.VendorID,
		"customer_email":    o.CustomerEmail,
		"bundle_code":       o.BundleCode,
		"bundle_name":       o.BundleName,
		"country_iso":       o.CountryISO,
		"quantity":          o.Quantity,
		"unit_price":        o.UnitPrice,
		"total_amount":      o.TotalAmount,
		"currency":          o.Currency,
		"status":            o.Status,
		"payment_status":    o.PaymentStatus,
		"payment_intent_id": o.PaymentIntentID,
		"debit_entry_id":    o.DebitEntryID,
		"external_order_id": o.ExternalOrderID,
		"iccids":            nonNil(o.ICCIDs),
		"matching_ids":      nonNil(o.MatchingIDs),
		"retry_count":       o.RetryCount,
		"error_code":        o.ErrorCode,
		"error_message":     o.ErrorMessage,
		"cancel_reason":     o.CancelReason,
		"version":           o.Version,
		"updated_at":        o.UpdatedAt,
		"paid_at":           o.PaidAt,
		"provisioned_at":    o.ProvisionedAt,
		"completed_at":      o.CompletedAt,
		"failed_at":         o.FailedAt,
		"canceled_at":       o.CanceledAt,
		"last_retry_at":     o.LastRetryAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (r *Repository) NextOrderID(ctx context.Context) (uint64, error) {
	var id uint64
	err := r.db.QueryRow(ctx, "SELECT nextval('order_id_seq')").Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	o := order.Clone()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = o.CreatedAt
	}
	o.Version = 1

	values := orderValues(o)
	values["created_at"] = o.CreatedAt
	if o.ID != 0 {
		values["id"] = o.ID
	}

	statement := r.db.QueryBuilder.Insert("orders").
		SetMap(values).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&o.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return o, nil
}

func (r *Repository) readOrderWhere(ctx context.Context, pred any) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(pred)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err)
	}
	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	return r.readOrderWhere(ctx, sq.Eq{"id": orderID})
}

func (r *Repository) ReadOrderByNumber(ctx context.Context, number string) (*domain.Order, error) {
	return r.readOrderWhere(ctx, sq.Eq{"order_number": number})
}

func (r *Repository) ReadOrderByPaymentIntent(ctx context.Context, intentID string) (*domain.Order, error) {
	if intentID == "" {
		return nil, domain.ErrDataNotFound
	}
	return r.readOrderWhere(ctx, sq.Eq{"payment_intent_id": intentID})
}

// UpdateOrder runs updateFn against the row locked with SELECT ... FOR UPDATE.
func (r *Repository) UpdateOrder(ctx context.Context, orderID uint64, updateFn port.UpdateOrderFn) (*domain.Order, error) {
	var order *domain.Order

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		selectSt := r.db.QueryBuilder.
			Select(orderColumns...).
			From("orders").
			Where(sq.Eq{"id": orderID}).
			Suffix("FOR UPDATE")

		sql, args, err := selectSt.ToSql()
		if err != nil {
			return err
		}

		current, err := scanOrder(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			return err
		}

		o := current.Clone()
		if err := updateFn(o); err != nil {
			return err
		}
		o.ID = current.ID
		o.Version = current.Version + 1

		updateSt := r.db.QueryBuilder.
			Update("orders").
			SetMap(orderValues(o)).
			Where(sq.Eq{"id": orderID})

		sql, args, err = updateSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		order = o
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}

	return order, nil
}

func (r *Repository) queryOrders(ctx context.Context, statement sq.SelectBuilder) ([]*domain.Order, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC", "id DESC")

	if filter.UserID != 0 {
		statement = statement.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.VendorID != 0 {
		statement = statement.Where(sq.Eq{"vendor_id": filter.VendorID})
	}
	if filter.Status != "" {
		statement = statement.Where(sq.Eq{"status": filter.Status})
	}
	if !filter.From.IsZero() {
		statement = statement.Where(sq.GtOrEq{"created_at": filter.From})
	}
	if !filter.To.IsZero() {
		statement = statement.Where(sq.Lt{"created_at": filter.To})
	}
	if filter.Limit > 0 {
		statement = statement.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		statement = statement.Offset(filter.Offset)
	}

	return r.queryOrders(ctx, statement)
}

func (r *Repository) ListOrdersByStatusBefore(ctx context.Context,
	statuses []domain.OrderStatus, before time.Time) ([]*domain.Order, error) {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, string(s))
	}

	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": names}).
		Where(sq.Lt{"updated_at": before}).
		OrderBy("updated_at ASC")

	return r.queryOrders(ctx, statement)
}

var _ port.Repository = (*Repository)(nil)
