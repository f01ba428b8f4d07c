package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/gestora/anticipos/internal/adapter/http/dto"
	"github.com/gestora/anticipos/internal/domain"
	"github.com/gestora/anticipos/internal/usecase"
)

type ledgerServiceStub struct {
	fetchFn      func(ctx context.Context, kind domain.PartnerKind, partnerID string) (*domain.LedgerSummary, error)
	projectionFn func(ctx context.Context, kind domain.PartnerKind, partnerID string, input usecase.ProjectionInput) (*domain.Projection, error)
}

func (s *ledgerServiceStub) FetchLedger(ctx context.Context, kind domain.PartnerKind, partnerID string) (*domain.LedgerSummary, error) {
	return s.fetchFn(ctx, kind, partnerID)
}

func (s *ledgerServiceStub) FetchProjection(ctx context.Context, kind domain.PartnerKind, partnerID string, input usecase.ProjectionInput) (*domain.Projection, error) {
	return s.projectionFn(ctx, kind, partnerID, input)
}

func TestLedgerHandler_Get(t *testing.T) {
	summary := domain.Summarize([]*domain.AdvanceEntry{
		{
			ID:          "e-1",
			PartnerID:   "p-1",
			PartnerKind: domain.PartnerKindProvider,
			Bank:        "BCP",
			Description: "Adelanto inicial",
			Amount:      decimal.NewFromInt(500),
			Kind:        domain.EntryKindCredit,
		},
	})

	h := NewLedgerHandler(&ledgerServiceStub{
		fetchFn: func(ctx context.Context, kind domain.PartnerKind, partnerID string) (*domain.LedgerSummary, error) {
			return summary, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/partners/provider/p-1/ledger", nil)
	req = withRouteParams(req, map[string]string{"kind": "provider", "id": "p-1"})

	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.LedgerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.AvailableBalance.String() != "500" {
		t.Fatalf("expected available balance 500, got %s", resp.AvailableBalance)
	}
	if len(resp.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(resp.Entries))
	}
}

func TestLedgerHandler_Get_UnknownPartner(t *testing.T) {
	h := NewLedgerHandler(&ledgerServiceStub{
		fetchFn: func(ctx context.Context, kind domain.PartnerKind, partnerID string) (*domain.LedgerSummary, error) {
			return domain.EmptySummary(), domain.ErrPartnerNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/partners/provider/missing/ledger", nil)
	req = withRouteParams(req, map[string]string{"kind": "provider", "id": "missing"})

	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestLedgerHandler_Get_BadKind(t *testing.T) {
	h := NewLedgerHandler(&ledgerServiceStub{})

	req := httptest.NewRequest(http.MethodGet, "/partners/client/p-1/ledger", nil)
	req = withRouteParams(req, map[string]string{"kind": "client", "id": "p-1"})

	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLedgerHandler_Projection(t *testing.T) {
	var captured usecase.ProjectionInput
	h := NewLedgerHandler(&ledgerServiceStub{
		projectionFn: func(ctx context.Context, kind domain.PartnerKind, partnerID string, input usecase.ProjectionInput) (*domain.Projection, error) {
			captured = input
			return &domain.Projection{
				ProjectedBalance: decimal.NewFromInt(-40),
				WouldOverdraw:    true,
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/partners/provider/p-1/ledger/projection?kind=DEBIT&amount=40&entry_id=e-1", nil)
	req = withRouteParams(req, map[string]string{"kind": "provider", "id": "p-1"})

	rec := httptest.NewRecorder()
	h.Projection(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Kind == nil || *captured.Kind != domain.EntryKindDebit {
		t.Fatalf("expected DEBIT kind, got %+v", captured.Kind)
	}
	if captured.Amount == nil || captured.Amount.String() != "40" {
		t.Fatalf("expected amount 40, got %+v", captured.Amount)
	}
	if captured.EntryID != "e-1" {
		t.Fatalf("expected entry_id e-1, got %q", captured.EntryID)
	}

	var resp dto.ProjectionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.WouldOverdraw {
		t.Fatal("expected would_overdraw to be true")
	}
}

func TestLedgerHandler_Projection_UnfilledForm(t *testing.T) {
	h := NewLedgerHandler(&ledgerServiceStub{
		projectionFn: func(ctx context.Context, kind domain.PartnerKind, partnerID string, input usecase.ProjectionInput) (*domain.Projection, error) {
			if input.Kind != nil || input.Amount != nil {
				t.Fatal("expected nil kind and amount for unfilled form")
			}
			return &domain.Projection{ProjectedBalance: decimal.NewFromInt(250)}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/partners/provider/p-1/ledger/projection", nil)
	req = withRouteParams(req, map[string]string{"kind": "provider", "id": "p-1"})

	rec := httptest.NewRecorder()
	h.Projection(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestLedgerHandler_Projection_BadAmount(t *testing.T) {
	h := NewLedgerHandler(&ledgerServiceStub{})

	req := httptest.NewRequest(http.MethodGet, "/partners/provider/p-1/ledger/projection?kind=CREDIT&amount=abc", nil)
	req = withRouteParams(req, map[string]string{"kind": "provider", "id": "p-1"})

	rec := httptest.NewRecorder()
	h.Projection(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
