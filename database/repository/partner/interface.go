// File: database/repository/partner/interface.go
package partnerRepo

import (
	"context"

	"tallerlink/database"
	"tallerlink/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PartnerRepository interface {
	Create(ctx context.Context, p *models.Partner) error
	GetByID(ctx context.Context, id string) (*models.Partner, error)
	GetAll(ctx context.Context) ([]models.Partner, error)
	Search(ctx context.Context, filter models.PartnerSearchFilter) ([]models.Partner, error)
	Update(ctx context.Context, p *models.Partner) error
	Delete(ctx context.Context, id string) error
}

type postgresPartnerRepo struct {
	pool *pgxpool.Pool
}

// NewPostgresPartnerRepo constructs a PartnerRepository over the global pool.
func NewPostgresPartnerRepo() PartnerRepository {
	return &postgresPartnerRepo{pool: database.PgPool}
}
