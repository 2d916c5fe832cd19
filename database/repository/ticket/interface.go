// File: database/repository/ticket/interface.go
package ticketRepo

import (
	"context"
	"time"

	"tallerlink/database"
	"tallerlink/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TicketRepository is the persistent store of appointments. It also serves
// as the occupied-slots lookup: GetOccupiedTimes returns the raw booked time
// strings for one partner and one calendar date.
type TicketRepository interface {
	Create(ctx context.Context, t *models.Ticket) error
	GetByID(ctx context.Context, id string) (*models.Ticket, error)
	GetAll(ctx context.Context) ([]models.Ticket, error)
	ListByClient(ctx context.Context, clientID string) ([]models.Ticket, error)
	ListByPartner(ctx context.Context, partnerID string) ([]models.Ticket, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error

	// GetOccupiedTimes returns the booked time strings for a partner and a
	// "YYYY-MM-DD" date. Values come back exactly as stored; legacy rows may
	// lack the leading zero on the hour, so callers must normalize before
	// comparing.
	GetOccupiedTimes(ctx context.Context, partnerID, date string) ([]string, error)

	// IsSlotTaken re-checks a single slot right before a ticket is written.
	IsSlotTaken(ctx context.Context, partnerID, date, slot string) (bool, error)

	// ExpirePendingBefore cancels pending tickets whose date is strictly
	// before the given day. Returns the number of tickets touched.
	ExpirePendingBefore(ctx context.Context, day time.Time) (int64, error)
}

type postgresTicketRepo struct {
	pool *pgxpool.Pool
}

// NewPostgresTicketRepo constructs a TicketRepository over the global pool.
func NewPostgresTicketRepo() TicketRepository {
	return &postgresTicketRepo{pool: database.PgPool}
}
