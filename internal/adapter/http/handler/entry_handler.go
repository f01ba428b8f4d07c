package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gestora/anticipos/internal/adapter/http/dto"
	"github.com/gestora/anticipos/internal/domain"
	"github.com/gestora/anticipos/internal/usecase"
)

// AdvanceService defines the behavior needed by EntryHandler.
type AdvanceService interface {
	CreateEntry(ctx context.Context, input usecase.EntryInput) (*domain.AdvanceEntry, error)
	UpdateEntry(ctx context.Context, id string, input usecase.EntryInput) (*domain.AdvanceEntry, error)
	DeleteEntry(ctx context.Context, id string, kind domain.PartnerKind, partnerID string) error
}

// EntryHandler handles advance-entry HTTP requests. All routes are
// partner-scoped: the partner kind and ID come from the URL, so an entry can
// never be created or edited against a different partner than the one the
// request addresses.
type EntryHandler struct {
	entryUC AdvanceService
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(entryUC AdvanceService) *EntryHandler {
	return &EntryHandler{entryUC: entryUC}
}

// Create registers a new advance for the partner in the URL.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	kind, ok := partnerKindParam(w, r)
	if !ok {
		return
	}
	partnerID := chi.URLParam(r, "id")

	var req dto.AdvanceEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput(kind, partnerID)
	if err != nil {
		writeError(w, mapDomainError(err), "invalid advance entry", err.Error())
		return
	}

	entry, err := h.entryUC.CreateEntry(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create advance entry", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.EntryFromDomain(entry))
}

// Update edits an existing advance entry in place.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	kind, ok := partnerKindParam(w, r)
	if !ok {
		return
	}
	partnerID := chi.URLParam(r, "id")
	entryID := chi.URLParam(r, "entryID")

	var req dto.AdvanceEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput(kind, partnerID)
	if err != nil {
		writeError(w, mapDomainError(err), "invalid advance entry", err.Error())
		return
	}

	entry, err := h.entryUC.UpdateEntry(r.Context(), entryID, input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update advance entry", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EntryFromDomain(entry))
}

// Delete removes an advance entry. The delete is irreversible, so the caller
// must confirm it explicitly with ?confirm=true.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	kind, ok := partnerKindParam(w, r)
	if !ok {
		return
	}
	partnerID := chi.URLParam(r, "id")
	entryID := chi.URLParam(r, "entryID")

	if r.URL.Query().Get("confirm") != "true" {
		writeError(w, http.StatusBadRequest, "confirmation required", domain.ErrConfirmationRequired.Error())
		return
	}

	if err := h.entryUC.DeleteEntry(r.Context(), entryID, kind, partnerID); err != nil {
		writeError(w, mapDomainError(err), "failed to delete advance entry", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
