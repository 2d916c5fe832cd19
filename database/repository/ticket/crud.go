// File: database/repository/ticket/crud.go
package ticketRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"tallerlink/models"
)

var ErrTicketNotFound = errors.New("ticket not found")

const ticketColumns = `id, partner_id, client_id, car_id, appointment_date, appointment_time, status, notes, created_at, updated_at`

func scanTicket(row pgx.Row) (*models.Ticket, error) {
	var t models.Ticket
	err := row.Scan(
		&t.ID, &t.PartnerID, &t.ClientID, &t.CarID,
		&t.Date, &t.Time, &t.Status, &t.Notes,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTicketNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *postgresTicketRepo) Create(ctx context.Context, t *models.Ticket) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = models.TicketStatusPending
	}
	now := time.Now()
	t.CreatedAt, t.UpdatedAt = now, now

	_, err := r.pool.Exec(ctx, `
		INSERT INTO tickets
			(id, partner_id, client_id, car_id, appointment_date, appointment_time, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, t.ID, t.PartnerID, t.ClientID, t.CarID, t.Date, t.Time, t.Status, t.Notes, t.CreatedAt, t.UpdatedAt)
	return err
}

func (r *postgresTicketRepo) GetByID(ctx context.Context, id string) (*models.Ticket, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	row := r.pool.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id = $1`, id)
	return scanTicket(row)
}

func (r *postgresTicketRepo) GetAll(ctx context.Context) ([]models.Ticket, error) {
	return r.list(ctx, `SELECT `+ticketColumns+` FROM tickets ORDER BY appointment_date DESC, appointment_time`)
}

func (r *postgresTicketRepo) ListByClient(ctx context.Context, clientID string) ([]models.Ticket, error) {
	return r.list(ctx,
		`SELECT `+ticketColumns+` FROM tickets WHERE client_id = $1 ORDER BY appointment_date DESC, appointment_time`,
		clientID)
}

func (r *postgresTicketRepo) ListByPartner(ctx context.Context, partnerID string) ([]models.Ticket, error) {
	return r.list(ctx,
		`SELECT `+ticketColumns+` FROM tickets WHERE partner_id = $1 ORDER BY appointment_date DESC, appointment_time`,
		partnerID)
}

func (r *postgresTicketRepo) list(ctx context.Context, query string, args ...any) ([]models.Ticket, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []models.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, *t)
	}
	return tickets, rows.Err()
}

func (r *postgresTicketRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx,
		`UPDATE tickets SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTicketNotFound
	}
	return nil
}

func (r *postgresTicketRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTicketNotFound
	}
	return nil
}
