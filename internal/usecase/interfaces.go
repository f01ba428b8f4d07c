package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestora/anticipos/internal/domain"
)

// PartnerRepository defines data access for providers and transporters.
type PartnerRepository interface {
	Create(ctx context.Context, partner *domain.Partner) error
	GetByID(ctx context.Context, kind domain.PartnerKind, id string) (*domain.Partner, error)
	GetByIDTx(ctx context.Context, tx Transaction, kind domain.PartnerKind, id string) (*domain.Partner, error)
	List(ctx context.Context, kind domain.PartnerKind, limit, offset int) ([]*domain.Partner, error)
}

// EntryRepository defines data access for advance entries.
type EntryRepository interface {
	Create(ctx context.Context, entry *domain.AdvanceEntry) error
	CreateTx(ctx context.Context, tx Transaction, entry *domain.AdvanceEntry) error
	GetByID(ctx context.Context, id string) (*domain.AdvanceEntry, error)
	Update(ctx context.Context, entry *domain.AdvanceEntry) error
	Delete(ctx context.Context, id string) error
	// ListByPartner returns the partner's entries ordered newest-first.
	ListByPartner(ctx context.Context, kind domain.PartnerKind, partnerID string) ([]*domain.AdvanceEntry, error)
	// AggregatesByPartner returns the credit and debit sums over the
	// partner's persisted entry set.
	AggregatesByPartner(ctx context.Context, kind domain.PartnerKind, partnerID string) (credits, debits decimal.Decimal, err error)
}

// SummaryCache caches computed ledger summaries per partner. A miss is
// reported as (nil, nil).
type SummaryCache interface {
	Get(ctx context.Context, kind domain.PartnerKind, partnerID string) (*domain.LedgerSummary, error)
	Set(ctx context.Context, kind domain.PartnerKind, partnerID string, summary *domain.LedgerSummary, ttl time.Duration) error
	Invalidate(ctx context.Context, kind domain.PartnerKind, partnerID string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs an operation when it fails with a transient store error.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// MetricsRecorder counts domain-level operations.
type MetricsRecorder interface {
	EntryCreated()
	EntryUpdated()
	EntryDeleted()
	LedgerFetched(cacheHit bool)
}
