package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/gestora/anticipos/internal/domain"
)

// summaryTTL bounds cache staleness; mutations invalidate eagerly, the TTL
// only covers invalidations lost to cache failures.
const summaryTTL = 30 * time.Second

// LedgerUseCase serves the derived ledger view for a partner and the
// pre-commit balance projections.
type LedgerUseCase struct {
	partnerRepo PartnerRepository
	entryRepo   EntryRepository
	cache       SummaryCache
	metrics     MetricsRecorder
	logger      zerolog.Logger
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	partnerRepo PartnerRepository,
	entryRepo EntryRepository,
	cache SummaryCache,
	metrics MetricsRecorder,
	logger zerolog.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{
		partnerRepo: partnerRepo,
		entryRepo:   entryRepo,
		cache:       cache,
		metrics:     metrics,
		logger:      logger,
	}
}

// FetchLedger returns the partner's entries newest-first plus the aggregate
// totals, recomputed from the persisted entry set. On failure it returns the
// defined empty summary alongside the error so callers always have a
// renderable state.
func (uc *LedgerUseCase) FetchLedger(ctx context.Context, kind domain.PartnerKind, partnerID string) (*domain.LedgerSummary, error) {
	if _, err := uc.partnerRepo.GetByID(ctx, kind, partnerID); err != nil {
		return domain.EmptySummary(), err
	}

	if cached, err := uc.cache.Get(ctx, kind, partnerID); err != nil {
		uc.logger.Warn().Err(err).Msg("ledger summary cache read failed")
	} else if cached != nil {
		uc.metrics.LedgerFetched(true)
		return cached, nil
	}

	entries, err := uc.entryRepo.ListByPartner(ctx, kind, partnerID)
	if err != nil {
		return domain.EmptySummary(), err
	}

	credits, debits, err := uc.entryRepo.AggregatesByPartner(ctx, kind, partnerID)
	if err != nil {
		return domain.EmptySummary(), err
	}

	summary := &domain.LedgerSummary{
		Entries:          entries,
		TotalCredits:     credits,
		TotalDebits:      debits,
		AvailableBalance: credits.Sub(debits),
	}

	if err := uc.cache.Set(ctx, kind, partnerID, summary, summaryTTL); err != nil {
		uc.logger.Warn().Err(err).Msg("ledger summary cache write failed")
	}

	uc.metrics.LedgerFetched(false)

	return summary, nil
}

// ProjectionInput carries the in-progress form values a preview is computed
// from. Kind and Amount are nil while the form fields are unfilled; EntryID
// is set only when an existing entry is being edited.
type ProjectionInput struct {
	Kind    *domain.EntryKind
	Amount  *decimal.Decimal
	EntryID string
}

// FetchProjection computes the pre-commit balance preview for a partner.
// The projection is advisory: it is recomputed here from the freshly loaded
// summary, and it never gates the save.
func (uc *LedgerUseCase) FetchProjection(ctx context.Context, kind domain.PartnerKind, partnerID string, input ProjectionInput) (*domain.Projection, error) {
	summary, err := uc.FetchLedger(ctx, kind, partnerID)
	if err != nil {
		return nil, err
	}

	if input.Kind == nil || input.Amount == nil {
		return domain.ProjectUnchanged(summary.AvailableBalance), nil
	}

	if !input.Kind.Valid() {
		return nil, domain.ErrInvalidEntryKind
	}

	if input.EntryID == "" {
		return domain.ProjectNew(summary.AvailableBalance, *input.Kind, *input.Amount), nil
	}

	existing, err := uc.entryRepo.GetByID(ctx, input.EntryID)
	if err != nil {
		return nil, err
	}

	if !existing.BelongsTo(kind, partnerID) {
		return nil, domain.ErrPartnerMismatch
	}

	return domain.ProjectEdit(summary.AvailableBalance, existing.Kind, existing.Amount, *input.Kind, *input.Amount), nil
}
