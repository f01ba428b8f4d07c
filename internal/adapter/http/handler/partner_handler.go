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

// PartnerService defines the behavior needed by PartnerHandler.
type PartnerService interface {
	CreatePartner(ctx context.Context, input usecase.CreatePartnerInput) (*domain.Partner, error)
	GetPartner(ctx context.Context, kind domain.PartnerKind, id string) (*domain.Partner, error)
	ListPartners(ctx context.Context, input usecase.ListPartnersInput) ([]*domain.Partner, error)
}

// PartnerHandler handles provider/transporter HTTP requests.
type PartnerHandler struct {
	partnerUC PartnerService
}

// NewPartnerHandler creates a new PartnerHandler.
func NewPartnerHandler(partnerUC PartnerService) *PartnerHandler {
	return &PartnerHandler{partnerUC: partnerUC}
}

// Create creates a new partner.
func (h *PartnerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePartnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, mapDomainError(err), "invalid partner", err.Error())
		return
	}

	partner, err := h.partnerUC.CreatePartner(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create partner", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.PartnerFromDomain(partner))
}

// Get retrieves a partner by kind and ID.
func (h *PartnerHandler) Get(w http.ResponseWriter, r *http.Request) {
	kind, ok := partnerKindParam(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing partner ID", "")
		return
	}

	partner, err := h.partnerUC.GetPartner(r.Context(), kind, id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get partner", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PartnerFromDomain(partner))
}

// List lists partners of one kind.
func (h *PartnerHandler) List(w http.ResponseWriter, r *http.Request) {
	kind, ok := partnerKindParam(w, r)
	if !ok {
		return
	}

	partners, err := h.partnerUC.ListPartners(r.Context(), usecase.ListPartnersInput{
		Kind:   kind,
		Limit:  parseIntQuery(r, "limit", 50),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list partners", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListPartnersResponse{
		Partners: dto.PartnersFromDomain(partners),
		Total:    int64(len(partners)),
	})
}

// partnerKindParam parses the {kind} URL parameter, writing a 400 on failure.
func partnerKindParam(w http.ResponseWriter, r *http.Request) (domain.PartnerKind, bool) {
	kind, err := domain.ParsePartnerKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid partner kind", err.Error())
		return "", false
	}
	return kind, true
}
