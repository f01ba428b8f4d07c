package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestora/anticipos/internal/domain"
	"github.com/gestora/anticipos/internal/usecase"
)

// dateLayout is the calendar-date wire format; advance dates carry no time
// component.
const dateLayout = "2006-01-02"

// CreatePartnerRequest represents a request to create a partner.
type CreatePartnerRequest struct {
	Kind  string `json:"kind"`
	Name  string `json:"name"`
	TaxID string `json:"tax_id,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreatePartnerRequest) ToUseCaseInput() (usecase.CreatePartnerInput, error) {
	kind, err := domain.ParsePartnerKind(r.Kind)
	if err != nil {
		return usecase.CreatePartnerInput{}, err
	}

	return usecase.CreatePartnerInput{
		Kind:  kind,
		Name:  r.Name,
		TaxID: r.TaxID,
		Phone: r.Phone,
	}, nil
}

// AdvanceEntryRequest represents a request to create or update an advance
// entry. The partner scope comes from the URL, not the body.
type AdvanceEntryRequest struct {
	Date        string          `json:"date"`
	Bank        string          `json:"bank"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind"`
}

// ToUseCaseInput converts to use case input, scoped to the given partner.
func (r *AdvanceEntryRequest) ToUseCaseInput(kind domain.PartnerKind, partnerID string) (usecase.EntryInput, error) {
	entryKind, err := domain.ParseEntryKind(r.Kind)
	if err != nil {
		return usecase.EntryInput{}, err
	}

	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return usecase.EntryInput{}, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrDateRequired)
	}

	return usecase.EntryInput{
		PartnerID:   partnerID,
		PartnerKind: kind,
		Date:        date,
		Bank:        r.Bank,
		Description: r.Description,
		Amount:      r.Amount,
		Kind:        entryKind,
	}, nil
}
