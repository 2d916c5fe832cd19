package partner

import (
	"context"
	"errors"
	"fmt"

	"tallerlink/models"
)

var ErrInvalidPartner = errors.New("partner name is required")

func (s *DefaultPartnerService) CreatePartner(ctx context.Context, p *models.Partner) (*models.Partner, error) {
	if p.Name == "" {
		return nil, ErrInvalidPartner
	}
	if p.Specialities == nil {
		p.Specialities = []string{}
	}
	p.Active = true
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create partner: %w", err)
	}
	return p, nil
}

func (s *DefaultPartnerService) GetPartnerByID(ctx context.Context, id string) (*models.Partner, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("partner not found: %w", err)
	}
	return p, nil
}

func (s *DefaultPartnerService) GetAllPartners(ctx context.Context) ([]models.Partner, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultPartnerService) SearchPartners(ctx context.Context, filter models.PartnerSearchFilter) ([]models.Partner, error) {
	return s.Repo.Search(ctx, filter)
}

func (s *DefaultPartnerService) UpdatePartner(ctx context.Context, p *models.Partner) (*models.Partner, error) {
	existing, err := s.Repo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("partner not found: %w", err)
	}

	// Patch-style: empty fields keep their stored value.
	if p.Name == "" {
		p.Name = existing.Name
	}
	if p.Email == "" {
		p.Email = existing.Email
	}
	if p.Phone == "" {
		p.Phone = existing.Phone
	}
	if p.Address == "" {
		p.Address = existing.Address
	}
	if p.City == "" {
		p.City = existing.City
	}
	if p.Latitude == 0 && p.Longitude == 0 {
		p.Latitude, p.Longitude = existing.Latitude, existing.Longitude
	}
	if p.Specialities == nil {
		p.Specialities = existing.Specialities
	}
	p.CreatedAt = existing.CreatedAt

	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update partner: %w", err)
	}
	return p, nil
}

func (s *DefaultPartnerService) DeletePartner(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete partner with id %s: %w", id, err)
	}
	return nil
}
