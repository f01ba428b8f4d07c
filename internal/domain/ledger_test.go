package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestora/anticipos/internal/domain"
)

func entry(kind domain.EntryKind, amount string) *domain.AdvanceEntry {
	return &domain.AdvanceEntry{
		PartnerID:   "p-1",
		PartnerKind: domain.PartnerKindProvider,
		Kind:        kind,
		Amount:      decimal.RequireFromString(amount),
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := domain.Summarize(nil)

	assert.True(t, summary.TotalCredits.IsZero())
	assert.True(t, summary.TotalDebits.IsZero())
	assert.True(t, summary.AvailableBalance.IsZero())
	assert.Empty(t, summary.Entries)
}

func TestSummarizeMixedEntries(t *testing.T) {
	summary := domain.Summarize([]*domain.AdvanceEntry{
		entry(domain.EntryKindCredit, "500"),
		entry(domain.EntryKindDebit, "200"),
		entry(domain.EntryKindCredit, "150.25"),
		entry(domain.EntryKindDebit, "50.25"),
	})

	assert.Equal(t, "650.25", summary.TotalCredits.String())
	assert.Equal(t, "250.25", summary.TotalDebits.String())
	assert.Equal(t, "400", summary.AvailableBalance.String())
}

func TestSummarizeBalanceAdditivity(t *testing.T) {
	// availableBalance == totalCredits - totalDebits must hold for any
	// sequence of entries, applied one at a time.
	sequences := [][]*domain.AdvanceEntry{
		{entry(domain.EntryKindDebit, "10")},
		{entry(domain.EntryKindCredit, "0.01"), entry(domain.EntryKindDebit, "0.02")},
		{
			entry(domain.EntryKindCredit, "1000"),
			entry(domain.EntryKindDebit, "999.99"),
			entry(domain.EntryKindCredit, "3.33"),
			entry(domain.EntryKindDebit, "3.34"),
		},
	}

	for _, seq := range sequences {
		var entries []*domain.AdvanceEntry
		for _, e := range seq {
			entries = append(entries, e)
			summary := domain.Summarize(entries)
			assert.True(t, summary.AvailableBalance.Equal(summary.TotalCredits.Sub(summary.TotalDebits)))
		}
	}
}

func TestSummarizeNegativeBalance(t *testing.T) {
	summary := domain.Summarize([]*domain.AdvanceEntry{
		entry(domain.EntryKindDebit, "200"),
	})

	assert.Equal(t, "-200", summary.AvailableBalance.String())
}

func TestSignedAmount(t *testing.T) {
	credit := entry(domain.EntryKindCredit, "100")
	debit := entry(domain.EntryKindDebit, "100")

	assert.Equal(t, "100", credit.SignedAmount().String())
	assert.Equal(t, "-100", debit.SignedAmount().String())
	// Amount itself never carries the sign.
	assert.True(t, debit.Amount.IsPositive())
}

func TestProjectNew(t *testing.T) {
	available := decimal.RequireFromString("300")

	p := domain.ProjectNew(available, domain.EntryKindCredit, decimal.RequireFromString("50"))
	assert.Equal(t, "350", p.ProjectedBalance.String())
	assert.False(t, p.WouldOverdraw)

	p = domain.ProjectNew(available, domain.EntryKindDebit, decimal.RequireFromString("450"))
	assert.Equal(t, "-150", p.ProjectedBalance.String())
	assert.True(t, p.WouldOverdraw)
}

func TestProjectEditReversesPriorContribution(t *testing.T) {
	// Editing {CREDIT, 100} to {DEBIT, 40} when the balance was 100 must
	// yield -40: remove +100, then apply -40. Not 60 and not -140.
	available := decimal.RequireFromString("100")

	p := domain.ProjectEdit(available,
		domain.EntryKindCredit, decimal.RequireFromString("100"),
		domain.EntryKindDebit, decimal.RequireFromString("40"))

	assert.Equal(t, "-40", p.ProjectedBalance.String())
	assert.True(t, p.WouldOverdraw)
}

func TestProjectEditAmountOnly(t *testing.T) {
	available := decimal.RequireFromString("500")

	p := domain.ProjectEdit(available,
		domain.EntryKindCredit, decimal.RequireFromString("200"),
		domain.EntryKindCredit, decimal.RequireFromString("350"))

	assert.Equal(t, "650", p.ProjectedBalance.String())
	assert.False(t, p.WouldOverdraw)
}

func TestProjectUnchanged(t *testing.T) {
	p := domain.ProjectUnchanged(decimal.RequireFromString("-12.50"))

	assert.Equal(t, "-12.5", p.ProjectedBalance.String())
	assert.True(t, p.WouldOverdraw)
}

func TestProjectionMatchesRecomputedSummary(t *testing.T) {
	// The preview for a valid new entry must equal the summary recomputed
	// after that entry is part of the persisted set.
	existing := []*domain.AdvanceEntry{
		entry(domain.EntryKindCredit, "500"),
		entry(domain.EntryKindDebit, "125.75"),
	}
	before := domain.Summarize(existing)

	next := entry(domain.EntryKindDebit, "80.10")
	preview := domain.ProjectNew(before.AvailableBalance, next.Kind, next.Amount)

	after := domain.Summarize(append(existing, next))
	require.True(t, preview.ProjectedBalance.Equal(after.AvailableBalance))
}
