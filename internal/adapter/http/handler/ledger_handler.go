package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/gestora/anticipos/internal/adapter/http/dto"
	"github.com/gestora/anticipos/internal/domain"
	"github.com/gestora/anticipos/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	FetchLedger(ctx context.Context, kind domain.PartnerKind, partnerID string) (*domain.LedgerSummary, error)
	FetchProjection(ctx context.Context, kind domain.PartnerKind, partnerID string, input usecase.ProjectionInput) (*domain.Projection, error)
}

// LedgerHandler handles ledger summary and projection requests.
type LedgerHandler struct {
	ledgerUC LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// Get returns the partner's ledger: entries newest-first plus aggregates.
func (h *LedgerHandler) Get(w http.ResponseWriter, r *http.Request) {
	kind, ok := partnerKindParam(w, r)
	if !ok {
		return
	}
	partnerID := chi.URLParam(r, "id")

	summary, err := h.ledgerUC.FetchLedger(r.Context(), kind, partnerID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to load ledger", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LedgerFromDomain(summary))
}

// Projection returns the pre-commit balance preview for the in-progress form
// values passed as query parameters: kind, amount, and entry_id when an
// existing entry is being edited. Unfilled kind or amount fall back to the
// unmodified available balance.
func (h *LedgerHandler) Projection(w http.ResponseWriter, r *http.Request) {
	partnerKind, ok := partnerKindParam(w, r)
	if !ok {
		return
	}
	partnerID := chi.URLParam(r, "id")

	input := usecase.ProjectionInput{
		EntryID: r.URL.Query().Get("entry_id"),
	}

	if raw := r.URL.Query().Get("kind"); raw != "" {
		kind, err := domain.ParseEntryKind(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid entry kind", err.Error())
			return
		}
		input.Kind = &kind
	}

	if raw := r.URL.Query().Get("amount"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid amount", err.Error())
			return
		}
		input.Amount = &amount
	}

	projection, err := h.ledgerUC.FetchProjection(r.Context(), partnerKind, partnerID, input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute projection", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ProjectionFromDomain(projection))
}
