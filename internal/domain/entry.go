package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind tells whether an advance entry increases or decreases the
// partner's available balance. Amount is always positive; the sign is
// carried here and nowhere else.
type EntryKind string

const (
	// EntryKindCredit records an advance made available to the partner.
	EntryKindCredit EntryKind = "CREDIT"
	// EntryKindDebit records an advance applied against the partner.
	EntryKindDebit EntryKind = "DEBIT"
)

// ParseEntryKind parses an entry kind from its string form.
func ParseEntryKind(s string) (EntryKind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CREDIT":
		return EntryKindCredit, nil
	case "DEBIT":
		return EntryKindDebit, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidEntryKind, s)
	}
}

// Valid reports whether the kind is one of the two known values.
func (k EntryKind) Valid() bool {
	return k == EntryKindCredit || k == EntryKindDebit
}

// AdvanceEntry is one signed transaction against a partner's advance balance.
type AdvanceEntry struct {
	ID          string
	PartnerID   string
	PartnerKind PartnerKind
	Date        time.Time
	Bank        string
	Description string
	Amount      decimal.Decimal
	Kind        EntryKind
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SignedAmount returns the entry's contribution to the available balance.
// This is the single place the kind-to-sign mapping lives.
func (e *AdvanceEntry) SignedAmount() decimal.Decimal {
	if e.Kind == EntryKindDebit {
		return e.Amount.Neg()
	}
	return e.Amount
}

// BelongsTo reports whether the entry is scoped to the given partner.
func (e *AdvanceEntry) BelongsTo(kind PartnerKind, partnerID string) bool {
	return e.PartnerKind == kind && e.PartnerID == partnerID
}
