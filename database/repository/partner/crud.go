// File: database/repository/partner/crud.go
package partnerRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"tallerlink/models"
)

var ErrPartnerNotFound = errors.New("partner not found")

const partnerColumns = `id, name, email, phone, address, city, latitude, longitude, specialities, active, created_at, updated_at`

func scanPartner(row pgx.Row) (*models.Partner, error) {
	var p models.Partner
	err := row.Scan(
		&p.ID, &p.Name, &p.Email, &p.Phone, &p.Address, &p.City,
		&p.Latitude, &p.Longitude, &p.Specialities, &p.Active,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPartnerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresPartnerRepo) Create(ctx context.Context, p *models.Partner) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now()
	p.CreatedAt, p.UpdatedAt = now, now

	_, err := r.pool.Exec(ctx, `
		INSERT INTO partners
			(id, name, email, phone, address, city, latitude, longitude, specialities, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, p.ID, p.Name, p.Email, p.Phone, p.Address, p.City,
		p.Latitude, p.Longitude, p.Specialities, p.Active, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *postgresPartnerRepo) GetByID(ctx context.Context, id string) (*models.Partner, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	row := r.pool.QueryRow(ctx, `SELECT `+partnerColumns+` FROM partners WHERE id = $1`, id)
	return scanPartner(row)
}

func (r *postgresPartnerRepo) GetAll(ctx context.Context) ([]models.Partner, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, `SELECT `+partnerColumns+` FROM partners ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var partners []models.Partner
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, err
		}
		partners = append(partners, *p)
	}
	return partners, rows.Err()
}

func (r *postgresPartnerRepo) Update(ctx context.Context, p *models.Partner) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p.UpdatedAt = time.Now()
	tag, err := r.pool.Exec(ctx, `
		UPDATE partners
		SET name = $2, email = $3, phone = $4, address = $5, city = $6,
			latitude = $7, longitude = $8, specialities = $9, active = $10, updated_at = $11
		WHERE id = $1
	`, p.ID, p.Name, p.Email, p.Phone, p.Address, p.City,
		p.Latitude, p.Longitude, p.Specialities, p.Active, p.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPartnerNotFound
	}
	return nil
}

func (r *postgresPartnerRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM partners WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPartnerNotFound
	}
	return nil
}
