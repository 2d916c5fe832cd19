// File: database/repository/client/crud.go
package clientRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"tallerlink/models"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrCarNotFound    = errors.New("car not found")
)

func (r *postgresClientRepo) Create(ctx context.Context, c *models.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.CreatedAt = time.Now()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO clients (id, first_name, last_name, email, phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.CreatedAt)
	return err
}

func (r *postgresClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c models.Client
	err := r.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, phone, created_at
		FROM clients WHERE id = $1
	`, id).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresClientRepo) Update(ctx context.Context, c *models.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		UPDATE clients SET first_name = $2, last_name = $3, email = $4, phone = $5
		WHERE id = $1
	`, c.ID, c.FirstName, c.LastName, c.Email, c.Phone)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (r *postgresClientRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (r *postgresClientRepo) CreateCar(ctx context.Context, car *models.Car) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if car.ID == "" {
		car.ID = uuid.New().String()
	}
	car.CreatedAt = time.Now()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO cars (id, client_id, brand, model, year, plate, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, car.ID, car.ClientID, car.Brand, car.Model, car.Year, car.Plate, car.CreatedAt)
	return err
}

func (r *postgresClientRepo) ListCars(ctx context.Context, clientID string) ([]models.Car, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT id, client_id, brand, model, year, plate, created_at
		FROM cars WHERE client_id = $1 ORDER BY created_at
	`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []models.Car
	for rows.Next() {
		var car models.Car
		if err := rows.Scan(&car.ID, &car.ClientID, &car.Brand, &car.Model, &car.Year, &car.Plate, &car.CreatedAt); err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}
	return cars, rows.Err()
}

func (r *postgresClientRepo) GetCar(ctx context.Context, clientID, carID string) (*models.Car, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var car models.Car
	err := r.pool.QueryRow(ctx, `
		SELECT id, client_id, brand, model, year, plate, created_at
		FROM cars WHERE id = $1 AND client_id = $2
	`, carID, clientID).Scan(&car.ID, &car.ClientID, &car.Brand, &car.Model, &car.Year, &car.Plate, &car.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCarNotFound
	}
	if err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *postgresClientRepo) UpdateCar(ctx context.Context, car *models.Car) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		UPDATE cars SET brand = $3, model = $4, year = $5, plate = $6
		WHERE id = $1 AND client_id = $2
	`, car.ID, car.ClientID, car.Brand, car.Model, car.Year, car.Plate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCarNotFound
	}
	return nil
}

func (r *postgresClientRepo) DeleteCar(ctx context.Context, clientID, carID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM cars WHERE id = $1 AND client_id = $2`, carID, clientID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCarNotFound
	}
	return nil
}
