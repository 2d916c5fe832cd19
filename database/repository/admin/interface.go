// File: database/repository/admin/interface.go
package adminRepo

import (
	"context"

	"tallerlink/database"
	"tallerlink/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AdminRepository stores dashboard users, roles and the flat permission
// catalog, plus the role-permission assignments.
type AdminRepository interface {
	CreateUser(ctx context.Context, u *models.AdminUser) error
	GetUserByID(ctx context.Context, id string) (*models.AdminUser, error)
	GetAllUsers(ctx context.Context) ([]models.AdminUser, error)
	UpdateUser(ctx context.Context, u *models.AdminUser) error
	DeleteUser(ctx context.Context, id string) error

	CreateRole(ctx context.Context, role *models.Role) error
	GetRole(ctx context.Context, id string) (*models.Role, error)
	GetAllRoles(ctx context.Context) ([]models.Role, error)
	UpdateRole(ctx context.Context, role *models.Role) error
	DeleteRole(ctx context.Context, id string) error

	CreatePermission(ctx context.Context, perm *models.Permission) error
	GetAllPermissions(ctx context.Context) ([]models.Permission, error)
	DeletePermission(ctx context.Context, id string) error

	AssignPermission(ctx context.Context, roleID, permissionID string) error
	RevokePermission(ctx context.Context, roleID, permissionID string) error

	// GetPermissionNamesForUser resolves a user's role into the flat list of
	// permission names the dashboard checks against.
	GetPermissionNamesForUser(ctx context.Context, userID string) ([]string, error)
}

type postgresAdminRepo struct {
	pool *pgxpool.Pool
}

// NewPostgresAdminRepo constructs an AdminRepository over the global pool.
func NewPostgresAdminRepo() AdminRepository {
	return &postgresAdminRepo{pool: database.PgPool}
}
