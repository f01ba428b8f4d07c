package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestora/anticipos/internal/domain"
	"github.com/gestora/anticipos/internal/usecase"
)

// PartnerRepository implements usecase.PartnerRepository.
type PartnerRepository struct {
	pool *pgxpool.Pool
}

// NewPartnerRepository creates a new PartnerRepository.
func NewPartnerRepository(pool *pgxpool.Pool) *PartnerRepository {
	return &PartnerRepository{pool: pool}
}

const insertPartnerSQL = `
INSERT INTO partners (id, kind, name, tax_id, phone, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// Create creates a new partner.
func (r *PartnerRepository) Create(ctx context.Context, partner *domain.Partner) error {
	_, err := r.pool.Exec(ctx, insertPartnerSQL,
		partner.ID,
		string(partner.Kind),
		partner.Name,
		partner.TaxID,
		partner.Phone,
		timeToPgTimestamptz(partner.CreatedAt),
		timeToPgTimestamptz(partner.UpdatedAt),
	)

	return err
}

const selectPartnerSQL = `
SELECT id, kind, name, tax_id, phone, created_at, updated_at
FROM partners
WHERE kind = $1 AND id = $2`

// GetByID retrieves a partner by kind and ID.
func (r *PartnerRepository) GetByID(ctx context.Context, kind domain.PartnerKind, id string) (*domain.Partner, error) {
	return scanPartner(r.pool.QueryRow(ctx, selectPartnerSQL, string(kind), id))
}

// GetByIDTx retrieves a partner by kind and ID inside a transaction.
func (r *PartnerRepository) GetByIDTx(ctx context.Context, tx usecase.Transaction, kind domain.PartnerKind, id string) (*domain.Partner, error) {
	pgxTx := tx.(*Tx).PgxTx()
	return scanPartner(pgxTx.QueryRow(ctx, selectPartnerSQL, string(kind), id))
}

const listPartnersSQL = `
SELECT id, kind, name, tax_id, phone, created_at, updated_at
FROM partners
WHERE kind = $1
ORDER BY name
LIMIT $2 OFFSET $3`

// List lists partners of one kind ordered by name.
func (r *PartnerRepository) List(ctx context.Context, kind domain.PartnerKind, limit, offset int) ([]*domain.Partner, error) {
	rows, err := r.pool.Query(ctx, listPartnersSQL, string(kind), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var partners []*domain.Partner
	for rows.Next() {
		partner, err := scanPartner(rows)
		if err != nil {
			return nil, err
		}
		partners = append(partners, partner)
	}

	return partners, rows.Err()
}

func scanPartner(row pgx.Row) (*domain.Partner, error) {
	var p domain.Partner
	var kind string

	err := row.Scan(&p.ID, &kind, &p.Name, &p.TaxID, &p.Phone, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPartnerNotFound
		}

		return nil, err
	}

	p.Kind = domain.PartnerKind(kind)

	return &p, nil
}
