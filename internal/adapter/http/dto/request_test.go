package dto

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/gestora/anticipos/internal/domain"
)

func TestCreatePartnerRequestToUseCaseInput(t *testing.T) {
	req := CreatePartnerRequest{
		Kind:  "providers",
		Name:  "Agroindustrias del Sur",
		TaxID: "20100070970",
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if input.Kind != domain.PartnerKindProvider {
		t.Fatalf("expected provider kind, got %s", input.Kind)
	}
	if input.Name != "Agroindustrias del Sur" {
		t.Fatalf("unexpected name: %s", input.Name)
	}
}

func TestCreatePartnerRequestRejectsUnknownKind(t *testing.T) {
	req := CreatePartnerRequest{Kind: "customer", Name: "X"}

	_, err := req.ToUseCaseInput()
	if !errors.Is(err, domain.ErrInvalidPartnerKind) {
		t.Fatalf("expected invalid kind error, got %v", err)
	}
}

func TestAdvanceEntryRequestScopeComesFromURL(t *testing.T) {
	req := AdvanceEntryRequest{
		Date:        "2026-03-15",
		Bank:        "BCP",
		Description: "Adelanto de campo",
		Amount:      decimal.NewFromInt(150),
		Kind:        "credit",
	}

	input, err := req.ToUseCaseInput(domain.PartnerKindTransport, "01PARTNER9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if input.PartnerKind != domain.PartnerKindTransport || input.PartnerID != "01PARTNER9" {
		t.Fatalf("expected URL scope to win, got kind=%s id=%s", input.PartnerKind, input.PartnerID)
	}
	if input.Kind != domain.EntryKindCredit {
		t.Fatalf("expected credit kind, got %s", input.Kind)
	}
	if input.Date.Format("2006-01-02") != "2026-03-15" {
		t.Fatalf("unexpected date: %s", input.Date)
	}
}

func TestAdvanceEntryRequestBadDate(t *testing.T) {
	req := AdvanceEntryRequest{
		Date:        "15/03/2026",
		Bank:        "BCP",
		Description: "Adelanto",
		Amount:      decimal.NewFromInt(150),
		Kind:        "CREDIT",
	}

	if _, err := req.ToUseCaseInput(domain.PartnerKindProvider, "p1"); !errors.Is(err, domain.ErrDateRequired) {
		t.Fatalf("expected date error, got %v", err)
	}
}

func TestAdvanceEntryRequestAmountAcceptsStringJSON(t *testing.T) {
	var req AdvanceEntryRequest
	if err := json.Unmarshal([]byte(`{"amount":"99.90","kind":"DEBIT","date":"2026-01-02","bank":"BBVA","description":"Flete"}`), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !req.Amount.Equal(decimal.RequireFromString("99.90")) {
		t.Fatalf("unexpected amount: %s", req.Amount)
	}
}
