package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/gestora/anticipos/internal/domain"
	"github.com/gestora/anticipos/internal/usecase"
)

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	pool *pgxpool.Pool
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{pool: pool}
}

const insertEntrySQL = `
INSERT INTO advance_entries (id, partner_id, partner_kind, entry_date, bank, description, amount, kind, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

// Create persists a new advance entry.
func (r *EntryRepository) Create(ctx context.Context, entry *domain.AdvanceEntry) error {
	_, err := r.pool.Exec(ctx, insertEntrySQL, entryInsertArgs(entry)...)
	return err
}

// CreateTx persists a new advance entry inside a transaction.
func (r *EntryRepository) CreateTx(ctx context.Context, tx usecase.Transaction, entry *domain.AdvanceEntry) error {
	pgxTx := tx.(*Tx).PgxTx()
	_, err := pgxTx.Exec(ctx, insertEntrySQL, entryInsertArgs(entry)...)

	return err
}

func entryInsertArgs(entry *domain.AdvanceEntry) []any {
	return []any{
		entry.ID,
		entry.PartnerID,
		string(entry.PartnerKind),
		timeToPgDate(entry.Date),
		entry.Bank,
		entry.Description,
		decimalToNumeric(entry.Amount),
		string(entry.Kind),
		timeToPgTimestamptz(entry.CreatedAt),
		timeToPgTimestamptz(entry.UpdatedAt),
	}
}

const selectEntrySQL = `
SELECT id, partner_id, partner_kind, entry_date, bank, description, amount, kind, created_at, updated_at
FROM advance_entries
WHERE id = $1`

// GetByID retrieves an advance entry by ID.
func (r *EntryRepository) GetByID(ctx context.Context, id string) (*domain.AdvanceEntry, error) {
	return scanEntry(r.pool.QueryRow(ctx, selectEntrySQL, id))
}

const updateEntrySQL = `
UPDATE advance_entries
SET entry_date = $2, bank = $3, description = $4, amount = $5, kind = $6, updated_at = $7
WHERE id = $1`

// Update persists changes to an existing advance entry.
func (r *EntryRepository) Update(ctx context.Context, entry *domain.AdvanceEntry) error {
	tag, err := r.pool.Exec(ctx, updateEntrySQL,
		entry.ID,
		timeToPgDate(entry.Date),
		entry.Bank,
		entry.Description,
		decimalToNumeric(entry.Amount),
		string(entry.Kind),
		timeToPgTimestamptz(entry.UpdatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

// Delete removes an advance entry.
func (r *EntryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM advance_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

const listEntriesSQL = `
SELECT id, partner_id, partner_kind, entry_date, bank, description, amount, kind, created_at, updated_at
FROM advance_entries
WHERE partner_kind = $1 AND partner_id = $2
ORDER BY created_at DESC, id DESC`

// ListByPartner returns the partner's entries ordered newest-first.
func (r *EntryRepository) ListByPartner(ctx context.Context, kind domain.PartnerKind, partnerID string) ([]*domain.AdvanceEntry, error) {
	rows, err := r.pool.Query(ctx, listEntriesSQL, string(kind), partnerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.AdvanceEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

const aggregateEntriesSQL = `
SELECT
	COALESCE(SUM(amount) FILTER (WHERE kind = 'CREDIT'), 0),
	COALESCE(SUM(amount) FILTER (WHERE kind = 'DEBIT'), 0)
FROM advance_entries
WHERE partner_kind = $1 AND partner_id = $2`

// AggregatesByPartner returns the credit and debit sums over the partner's
// persisted entry set.
func (r *EntryRepository) AggregatesByPartner(ctx context.Context, kind domain.PartnerKind, partnerID string) (decimal.Decimal, decimal.Decimal, error) {
	var credits, debits pgtype.Numeric

	err := r.pool.QueryRow(ctx, aggregateEntriesSQL, string(kind), partnerID).Scan(&credits, &debits)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(credits), numericToDecimal(debits), nil
}

func scanEntry(row pgx.Row) (*domain.AdvanceEntry, error) {
	var e domain.AdvanceEntry
	var partnerKind, kind string
	var date pgtype.Date
	var amount pgtype.Numeric

	err := row.Scan(&e.ID, &e.PartnerID, &partnerKind, &date, &e.Bank, &e.Description, &amount, &kind, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, err
	}

	e.PartnerKind = domain.PartnerKind(partnerKind)
	e.Kind = domain.EntryKind(kind)
	e.Date = date.Time
	e.Amount = numericToDecimal(amount)

	return &e, nil
}
