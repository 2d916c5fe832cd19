// File: database/repository/client/interface.go
package clientRepo

import (
	"context"

	"tallerlink/database"
	"tallerlink/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ClientRepository interface {
	Create(ctx context.Context, c *models.Client) error
	GetByID(ctx context.Context, id string) (*models.Client, error)
	Update(ctx context.Context, c *models.Client) error
	Delete(ctx context.Context, id string) error

	// Cars belong to clients and only ever appear in that scope.
	CreateCar(ctx context.Context, car *models.Car) error
	ListCars(ctx context.Context, clientID string) ([]models.Car, error)
	GetCar(ctx context.Context, clientID, carID string) (*models.Car, error)
	UpdateCar(ctx context.Context, car *models.Car) error
	DeleteCar(ctx context.Context, clientID, carID string) error
}

type postgresClientRepo struct {
	pool *pgxpool.Pool
}

// NewPostgresClientRepo constructs a ClientRepository over the global pool.
func NewPostgresClientRepo() ClientRepository {
	return &postgresClientRepo{pool: database.PgPool}
}
