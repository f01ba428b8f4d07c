package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestora/anticipos/internal/domain"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// PartnerResponse represents a partner in API responses.
type PartnerResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PartnerFromDomain converts a domain partner to a response.
func PartnerFromDomain(p *domain.Partner) *PartnerResponse {
	return &PartnerResponse{
		ID:        p.ID,
		Kind:      string(p.Kind),
		Name:      p.Name,
		TaxID:     p.TaxID,
		Phone:     p.Phone,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PartnersFromDomain converts domain partners to responses.
func PartnersFromDomain(partners []*domain.Partner) []*PartnerResponse {
	result := make([]*PartnerResponse, len(partners))
	for i, p := range partners {
		result[i] = PartnerFromDomain(p)
	}
	return result
}

// ListPartnersResponse wraps a partner listing.
type ListPartnersResponse struct {
	Partners []*PartnerResponse `json:"partners"`
	Total    int64              `json:"total"`
}

// AdvanceEntryResponse represents an advance entry in API responses.
type AdvanceEntryResponse struct {
	ID          string          `json:"id"`
	PartnerID   string          `json:"partner_id"`
	PartnerKind string          `json:"partner_kind"`
	Date        string          `json:"date"`
	Bank        string          `json:"bank"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.AdvanceEntry) *AdvanceEntryResponse {
	return &AdvanceEntryResponse{
		ID:          e.ID,
		PartnerID:   e.PartnerID,
		PartnerKind: string(e.PartnerKind),
		Date:        e.Date.Format(dateLayout),
		Bank:        e.Bank,
		Description: e.Description,
		Amount:      e.Amount,
		Kind:        string(e.Kind),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.AdvanceEntry) []*AdvanceEntryResponse {
	result := make([]*AdvanceEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// LedgerResponse represents a partner's ledger summary: entries newest-first
// plus the aggregates recomputed from the persisted entry set.
type LedgerResponse struct {
	Entries          []*AdvanceEntryResponse `json:"entries"`
	TotalCredits     decimal.Decimal         `json:"total_credits"`
	TotalDebits      decimal.Decimal         `json:"total_debits"`
	AvailableBalance decimal.Decimal         `json:"available_balance"`
}

// LedgerFromDomain converts a domain ledger summary to a response.
func LedgerFromDomain(s *domain.LedgerSummary) *LedgerResponse {
	return &LedgerResponse{
		Entries:          EntriesFromDomain(s.Entries),
		TotalCredits:     s.TotalCredits,
		TotalDebits:      s.TotalDebits,
		AvailableBalance: s.AvailableBalance,
	}
}

// ProjectionResponse represents a pre-commit balance preview. WouldOverdraw
// is display guidance only; it never blocks the save.
type ProjectionResponse struct {
	ProjectedBalance decimal.Decimal `json:"projected_balance"`
	WouldOverdraw    bool            `json:"would_overdraw"`
}

// ProjectionFromDomain converts a domain projection to a response.
func ProjectionFromDomain(p *domain.Projection) *ProjectionResponse {
	return &ProjectionResponse{
		ProjectedBalance: p.ProjectedBalance,
		WouldOverdraw:    p.WouldOverdraw,
	}
}
