package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/gestora/anticipos/internal/domain"
)

// EntryUseCase orchestrates the advance-entry lifecycle: create, update and
// delete, each followed by invalidation of the partner's cached summary so
// the next read recomputes from the persisted entry set (consistency via
// refetch, never incremental patching).
type EntryUseCase struct {
	txManager   TransactionManager
	partnerRepo PartnerRepository
	entryRepo   EntryRepository
	cache       SummaryCache
	idGen       IDGenerator
	retrier     Retrier
	metrics     MetricsRecorder
	logger      zerolog.Logger
}

// NewEntryUseCase creates a new EntryUseCase.
func NewEntryUseCase(
	txManager TransactionManager,
	partnerRepo PartnerRepository,
	entryRepo EntryRepository,
	cache SummaryCache,
	idGen IDGenerator,
	retrier Retrier,
	metrics MetricsRecorder,
	logger zerolog.Logger,
) *EntryUseCase {
	return &EntryUseCase{
		txManager:   txManager,
		partnerRepo: partnerRepo,
		entryRepo:   entryRepo,
		cache:       cache,
		idGen:       idGen,
		retrier:     retrier,
		metrics:     metrics,
		logger:      logger,
	}
}

// EntryInput carries the user-supplied fields of an advance entry.
type EntryInput struct {
	PartnerID   string
	PartnerKind domain.PartnerKind
	Date        time.Time
	Bank        string
	Description string
	Amount      decimal.Decimal
	Kind        domain.EntryKind
}

// CreateEntry validates and persists a new advance entry. Validation runs
// before any persistence call; the partner must exist.
func (uc *EntryUseCase) CreateEntry(ctx context.Context, input EntryInput) (*domain.AdvanceEntry, error) {
	now := time.Now().UTC()

	entry := &domain.AdvanceEntry{
		ID:          uc.idGen.Generate(),
		PartnerID:   input.PartnerID,
		PartnerKind: input.PartnerKind,
		Date:        input.Date,
		Bank:        input.Bank,
		Description: input.Description,
		Amount:      input.Amount,
		Kind:        input.Kind,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := domain.ValidateEntry(entry); err != nil {
		return nil, err
	}

	// Each attempt runs the partner check and insert in a fresh transaction;
	// the retrier re-runs the whole closure on deadlock or serialization
	// failure.
	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if _, err := uc.partnerRepo.GetByIDTx(ctx, tx, input.PartnerKind, input.PartnerID); err != nil {
			return err
		}

		if err := uc.entryRepo.CreateTx(ctx, tx, entry); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateSummary(ctx, input.PartnerKind, input.PartnerID)
	uc.metrics.EntryCreated()

	return entry, nil
}

// UpdateEntry validates and persists changes to an existing entry. Any field
// may change, including kind and amount; the entry must belong to the
// partner the input is scoped to.
func (uc *EntryUseCase) UpdateEntry(ctx context.Context, id string, input EntryInput) (*domain.AdvanceEntry, error) {
	existing, err := uc.entryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !existing.BelongsTo(input.PartnerKind, input.PartnerID) {
		return nil, domain.ErrPartnerMismatch
	}

	updated := *existing
	updated.Date = input.Date
	updated.Bank = input.Bank
	updated.Description = input.Description
	updated.Amount = input.Amount
	updated.Kind = input.Kind
	updated.UpdatedAt = time.Now().UTC()

	if err := domain.ValidateEntry(&updated); err != nil {
		return nil, err
	}

	if err := uc.retrier.Retry(ctx, func() error {
		return uc.entryRepo.Update(ctx, &updated)
	}); err != nil {
		return nil, err
	}

	uc.invalidateSummary(ctx, input.PartnerKind, input.PartnerID)
	uc.metrics.EntryUpdated()

	return &updated, nil
}

// DeleteEntry removes an entry. The handler layer enforces explicit user
// confirmation before this is invoked.
func (uc *EntryUseCase) DeleteEntry(ctx context.Context, id string, kind domain.PartnerKind, partnerID string) error {
	existing, err := uc.entryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !existing.BelongsTo(kind, partnerID) {
		return domain.ErrPartnerMismatch
	}

	if err := uc.retrier.Retry(ctx, func() error {
		return uc.entryRepo.Delete(ctx, id)
	}); err != nil {
		return err
	}

	uc.invalidateSummary(ctx, kind, partnerID)
	uc.metrics.EntryDeleted()

	return nil
}

// invalidateSummary drops the cached summary for a partner. Cache failures
// are logged, not returned: the cache entry expires on its own and the
// authoritative balance is always recomputed from the store.
func (uc *EntryUseCase) invalidateSummary(ctx context.Context, kind domain.PartnerKind, partnerID string) {
	if err := uc.cache.Invalidate(ctx, kind, partnerID); err != nil {
		uc.logger.Warn().
			Err(err).
			Str("partner_kind", string(kind)).
			Str("partner_id", partnerID).
			Msg("failed to invalidate ledger summary cache")
	}
}
