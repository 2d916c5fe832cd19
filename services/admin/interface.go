package admin

import (
	"context"

	adminRepo "tallerlink/database/repository/admin"
	"tallerlink/models"

	"github.com/go-redis/redis/v8"
)

// AdminService manages dashboard users, roles and permissions, and answers
// the permission checks the dashboard renders against.
type AdminService interface {
	CreateUser(ctx context.Context, u *models.AdminUser) (*models.AdminUser, error)
	GetAllUsers(ctx context.Context) ([]models.AdminUser, error)
	UpdateUser(ctx context.Context, u *models.AdminUser) (*models.AdminUser, error)
	DeleteUser(ctx context.Context, id string) error

	CreateRole(ctx context.Context, role *models.Role) (*models.Role, error)
	GetRole(ctx context.Context, id string) (*models.Role, error)
	GetAllRoles(ctx context.Context) ([]models.Role, error)
	UpdateRole(ctx context.Context, role *models.Role) (*models.Role, error)
	DeleteRole(ctx context.Context, id string) error

	CreatePermission(ctx context.Context, perm *models.Permission) (*models.Permission, error)
	GetAllPermissions(ctx context.Context) ([]models.Permission, error)
	DeletePermission(ctx context.Context, id string) error
	AssignPermission(ctx context.Context, roleID, permissionID string) error
	RevokePermission(ctx context.Context, roleID, permissionID string) error

	// HasPermission checks a user's flat permission-name list for an exact
	// string match.
	HasPermission(ctx context.Context, userID, permission string) (bool, error)
}

// DefaultAdminService implements AdminService.
type DefaultAdminService struct {
	Repo      adminRepo.AdminRepository
	AuthCache *redis.Client
}
