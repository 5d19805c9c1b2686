package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port"
	"github.com/govalues/decimal"
	"github.com/jackc/pgx/v5"
)

var vendorColumns = []string{
	"id", "name", "email", "billing_mode", "status", "currency",
	"wallet_balance", "credit_limit", "outstanding_balance", "created_at", "updated_at",
}

var entryColumns = []string{
	"id", "vendor_id", "type", "direction", "amount", "balance_after", "order_id", "payment_id",
	"related_entry_id", "reference_number", "description", "status", "created_at",
}

func scanVendor(row pgx.Row) (*domain.Vendor, error) {
	v := domain.Vendor{}
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Email,
		&v.BillingMode,
		&v.Status,
		&v.Currency,
		&v.WalletBalance,
		&v.CreditLimit,
		&v.OutstandingBalance,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func scanEntry(row pgx.Row) (*domain.LedgerEntry, error) {
	e := domain.LedgerEntry{}
	err := row.Scan(
		&e.ID,
		&e.VendorID,
		&e.Type,
		&e.Direction,
		&e.Amount,
		&e.BalanceAfter,
		&e.OrderID,
		&e.PaymentID,
		&e.RelatedEntryID,
		&e.ReferenceNumber,
		&e.Description,
		&e.Status,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateVendor stores a vendor with zero balances. Balances only move through ledger entries.
func (r *Repository) CreateVendor(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	statement := r.db.QueryBuilder.Insert("vendors").
		Columns("name", "email", "billing_mode", "status", "currency",
			"wallet_balance", "credit_limit", "outstanding_balance").
		Values(vendor.Name, vendor.Email, vendor.BillingMode, vendor.Status, vendor.Currency,
			decimal.Zero, vendor.CreditLimit, decimal.Zero).
		Suffix("RETURNING " + joinColumns(vendorColumns))

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	v, err := scanVendor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err)
	}
	return v, nil
}

func (r *Repository) ReadVendor(ctx context.Context, vendorID uint64) (*domain.Vendor, error) {
	statement := r.db.QueryBuilder.
		Select(vendorColumns...).
		From("vendors").
		Where(sq.Eq{"id": vendorID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	v, err := scanVendor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err)
	}
	return v, nil
}

func (r *Repository) UpdateVendorStatus(ctx context.Context, vendorID uint64,
	status domain.VendorStatus) (*domain.Vendor, error) {
	statement := r.db.QueryBuilder.
		Update("vendors").
		Set("status", status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": vendorID}).
		Suffix("RETURNING " + joinColumns(vendorColumns))

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	v, err := scanVendor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err)
	}
	return v, nil
}

// ApplyLedgerEntry locks the vendor row, lets applyFn change the balances and
// writes the new balances together with the returned entry in one transaction.
func (r *Repository) ApplyLedgerEntry(ctx context.Context, vendorID uint64,
	applyFn port.ApplyLedgerFn) (*domain.LedgerEntry, error) {
	var written *domain.LedgerEntry

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		selectSt := r.db.QueryBuilder.
			Select(vendorColumns...).
			From("vendors").
			Where(sq.Eq{"id": vendorID}).
			Suffix("FOR UPDATE")

		sql, args, err := selectSt.ToSql()
		if err != nil {
			return err
		}

		vendor, err := scanVendor(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			return err
		}

		entry, err := applyFn(vendor)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNoUpdatedData
		}

		updateSt := r.db.QueryBuilder.
			Update("vendors").
			Set("wallet_balance", vendor.WalletBalance).
			Set("outstanding_balance", vendor.OutstandingBalance).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": vendorID})

		sql, args, err = updateSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		insertSt := r.db.QueryBuilder.
			Insert("vendor_ledger_entries").
			Columns("vendor_id", "type", "direction", "amount", "balance_after", "order_id", "payment_id",
				"related_entry_id", "reference_number", "description", "status").
			Values(vendorID, entry.Type, entry.Direction, entry.Amount, entry.BalanceAfter, entry.OrderID,
				entry.PaymentID, entry.RelatedEntryID, entry.ReferenceNumber, entry.Description, entry.Status).
			Suffix("RETURNING " + joinColumns(entryColumns))

		sql, args, err = insertSt.ToSql()
		if err != nil {
			return err
		}

		written, err = scanEntry(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			if entry.Type == domain.LedgerEntryReversal && errors.Is(mapError(err), domain.ErrConflictingData) {
				return domain.ErrEntryAlreadyReversed
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}

	return written, nil
}

func (r *Repository) ReadLedgerEntry(ctx context.Context, vendorID uint64, entryID uint64) (*domain.LedgerEntry, error) {
	statement := r.db.QueryBuilder.
		Select(entryColumns...).
		From("vendor_ledger_entries").
		Where(sq.Eq{"id": entryID, "vendor_id": vendorID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	e, err := scanEntry(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err)
	}
	return e, nil
}

func (r *Repository) ListLedgerEntries(ctx context.Context, vendorID uint64,
	filter domain.LedgerFilter) ([]*domain.LedgerEntry, error) {
	statement := r.db.QueryBuilder.
		Select(entryColumns...).
		From("vendor_ledger_entries").
		Where(sq.Eq{"vendor_id": vendorID}).
		OrderBy("created_at ASC", "id ASC")

	if filter.Type != "" {
		statement = statement.Where(sq.Eq{"type": filter.Type})
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

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.LedgerEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}
