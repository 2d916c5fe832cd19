package partner

import (
	"context"

	partnerRepo "tallerlink/database/repository/partner"
	"tallerlink/models"
)

// PartnerService manages the partner workshop directory.
type PartnerService interface {
	CreatePartner(ctx context.Context, p *models.Partner) (*models.Partner, error)
	GetPartnerByID(ctx context.Context, id string) (*models.Partner, error)
	GetAllPartners(ctx context.Context) ([]models.Partner, error)
	SearchPartners(ctx context.Context, filter models.PartnerSearchFilter) ([]models.Partner, error)
	UpdatePartner(ctx context.Context, p *models.Partner) (*models.Partner, error)
	DeletePartner(ctx context.Context, id string) error
}

// DefaultPartnerService implements PartnerService.
type DefaultPartnerService struct {
	Repo partnerRepo.PartnerRepository
}
