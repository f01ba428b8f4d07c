package usecase

import (
	"context"
	"time"

	"github.com/gestora/anticipos/internal/domain"
)

// PartnerUseCase handles provider and transporter CRUD.
type PartnerUseCase struct {
	partnerRepo PartnerRepository
	idGen       IDGenerator
}

// NewPartnerUseCase creates a new PartnerUseCase.
func NewPartnerUseCase(partnerRepo PartnerRepository, idGen IDGenerator) *PartnerUseCase {
	return &PartnerUseCase{
		partnerRepo: partnerRepo,
		idGen:       idGen,
	}
}

// CreatePartnerInput represents input for creating a partner.
type CreatePartnerInput struct {
	Kind  domain.PartnerKind
	Name  string
	TaxID string
	Phone string
}

// CreatePartner creates a new provider or transporter.
func (uc *PartnerUseCase) CreatePartner(ctx context.Context, input CreatePartnerInput) (*domain.Partner, error) {
	now := time.Now().UTC()

	partner := &domain.Partner{
		ID:        uc.idGen.Generate(),
		Kind:      input.Kind,
		Name:      input.Name,
		TaxID:     input.TaxID,
		Phone:     input.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := domain.ValidatePartner(partner); err != nil {
		return nil, err
	}

	if err := uc.partnerRepo.Create(ctx, partner); err != nil {
		return nil, err
	}

	return partner, nil
}

// GetPartner retrieves a partner by kind and ID.
func (uc *PartnerUseCase) GetPartner(ctx context.Context, kind domain.PartnerKind, id string) (*domain.Partner, error) {
	return uc.partnerRepo.GetByID(ctx, kind, id)
}

// ListPartnersInput represents input for listing partners.
type ListPartnersInput struct {
	Kind   domain.PartnerKind
	Limit  int
	Offset int
}

// ListPartners lists partners of one kind with pagination.
func (uc *PartnerUseCase) ListPartners(ctx context.Context, input ListPartnersInput) ([]*domain.Partner, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.partnerRepo.List(ctx, input.Kind, limit, offset)
}
