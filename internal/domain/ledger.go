package domain

import "github.com/shopspring/decimal"

// LedgerSummary is the derived aggregate view of a partner's advance ledger.
// It is always recomputed from the current entry set and never patched
// incrementally.
type LedgerSummary struct {
	Entries          []*AdvanceEntry
	TotalCredits     decimal.Decimal
	TotalDebits      decimal.Decimal
	AvailableBalance decimal.Decimal
}

// EmptySummary returns the defined zero-value summary used when a partner
// has no entries or when a load fails and the caller still needs a
// well-defined state to render.
func EmptySummary() *LedgerSummary {
	return &LedgerSummary{
		Entries:          []*AdvanceEntry{},
		TotalCredits:     decimal.Zero,
		TotalDebits:      decimal.Zero,
		AvailableBalance: decimal.Zero,
	}
}

// Summarize computes the credit/debit aggregates and available balance for
// an entry set. Pure; re-derivable at any time from the entries alone.
func Summarize(entries []*AdvanceEntry) *LedgerSummary {
	summary := EmptySummary()
	summary.Entries = entries

	for _, e := range entries {
		switch e.Kind {
		case EntryKindCredit:
			summary.TotalCredits = summary.TotalCredits.Add(e.Amount)
		case EntryKindDebit:
			summary.TotalDebits = summary.TotalDebits.Add(e.Amount)
		}
	}

	summary.AvailableBalance = summary.TotalCredits.Sub(summary.TotalDebits)

	return summary
}

// Projection is a pre-commit preview of what the available balance would
// become if an in-progress entry were saved. Advisory only: a negative
// projected balance warns, it never blocks the save.
type Projection struct {
	ProjectedBalance decimal.Decimal
	WouldOverdraw    bool
}

func projectionOf(balance decimal.Decimal) *Projection {
	return &Projection{
		ProjectedBalance: balance,
		WouldOverdraw:    balance.IsNegative(),
	}
}

// ProjectUnchanged returns the preview shown when the form's kind or amount
// is not yet filled in: the unmodified available balance.
func ProjectUnchanged(available decimal.Decimal) *Projection {
	return projectionOf(available)
}

// ProjectNew previews the balance after a new entry with the given kind and
// amount would be saved.
func ProjectNew(available decimal.Decimal, kind EntryKind, amount decimal.Decimal) *Projection {
	delta := (&AdvanceEntry{Kind: kind, Amount: amount}).SignedAmount()
	return projectionOf(available.Add(delta))
}

// ProjectEdit previews the balance after an existing entry would be changed
// to the given kind and amount. The prior contribution is reversed before
// the new one is applied; adding the new amount on top of the old one would
// double-count the entry being edited.
func ProjectEdit(available decimal.Decimal, prevKind EntryKind, prevAmount decimal.Decimal, newKind EntryKind, newAmount decimal.Decimal) *Projection {
	prev := (&AdvanceEntry{Kind: prevKind, Amount: prevAmount}).SignedAmount()
	next := (&AdvanceEntry{Kind: newKind, Amount: newAmount}).SignedAmount()

	excluding := available.Sub(prev)

	return projectionOf(excluding.Add(next))
}
