// File: database/repository/admin/users.go
package adminRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"tallerlink/models"
)

var ErrUserNotFound = errors.New("admin user not found")

func (r *postgresAdminRepo) CreateUser(ctx context.Context, u *models.AdminUser) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	u.CreatedAt = time.Now()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO admin_users (id, name, email, password_hash, role_id, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, u.ID, u.Name, u.Email, u.PasswordHash, u.RoleID, u.Active, u.CreatedAt)
	return err
}

func (r *postgresAdminRepo) GetUserByID(ctx context.Context, id string) (*models.AdminUser, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var u models.AdminUser
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, password_hash, role_id, active, created_at
		FROM admin_users WHERE id = $1
	`, id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.RoleID, &u.Active, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *postgresAdminRepo) GetAllUsers(ctx context.Context) ([]models.AdminUser, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, password_hash, role_id, active, created_at
		FROM admin_users ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.AdminUser
	for rows.Next() {
		var u models.AdminUser
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.RoleID, &u.Active, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *postgresAdminRepo) UpdateUser(ctx context.Context, u *models.AdminUser) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		UPDATE admin_users
		SET name = $2, email = $3, password_hash = $4, role_id = $5, active = $6
		WHERE id = $1
	`, u.ID, u.Name, u.Email, u.PasswordHash, u.RoleID, u.Active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *postgresAdminRepo) DeleteUser(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM admin_users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
