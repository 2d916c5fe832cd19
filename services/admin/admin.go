package admin

import (
	"context"
	"errors"
	"fmt"

	"tallerlink/models"

	"golang.org/x/crypto/bcrypt"
)

var ErrWeakPassword = errors.New("password must be at least 8 characters")

func (s *DefaultAdminService) CreateUser(ctx context.Context, u *models.AdminUser) (*models.AdminUser, error) {
	if len(u.Password) < 8 {
		return nil, ErrWeakPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = string(hashed)
	u.Password = ""
	u.Active = true

	if err := s.Repo.CreateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}
	return u, nil
}

func (s *DefaultAdminService) GetAllUsers(ctx context.Context) ([]models.AdminUser, error) {
	return s.Repo.GetAllUsers(ctx)
}

func (s *DefaultAdminService) UpdateUser(ctx context.Context, u *models.AdminUser) (*models.AdminUser, error) {
	existing, err := s.Repo.GetUserByID(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("admin user not found: %w", err)
	}

	if u.Name == "" {
		u.Name = existing.Name
	}
	if u.Email == "" {
		u.Email = existing.Email
	}
	if u.RoleID == "" {
		u.RoleID = existing.RoleID
	}
	u.CreatedAt = existing.CreatedAt

	if u.Password != "" {
		if len(u.Password) < 8 {
			return nil, ErrWeakPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		u.PasswordHash = string(hashed)
		u.Password = ""
	} else {
		u.PasswordHash = existing.PasswordHash
	}

	if err := s.Repo.UpdateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to update admin user: %w", err)
	}
	s.invalidatePermissions(ctx, u.ID)
	return u, nil
}

func (s *DefaultAdminService) DeleteUser(ctx context.Context, id string) error {
	if err := s.Repo.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("failed to delete admin user: %w", err)
	}
	s.invalidatePermissions(ctx, id)
	return nil
}

func (s *DefaultAdminService) CreateRole(ctx context.Context, role *models.Role) (*models.Role, error) {
	if role.Name == "" {
		return nil, errors.New("role name is required")
	}
	if err := s.Repo.CreateRole(ctx, role); err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}
	return role, nil
}

func (s *DefaultAdminService) GetRole(ctx context.Context, id string) (*models.Role, error) {
	return s.Repo.GetRole(ctx, id)
}

func (s *DefaultAdminService) GetAllRoles(ctx context.Context) ([]models.Role, error) {
	return s.Repo.GetAllRoles(ctx)
}

func (s *DefaultAdminService) UpdateRole(ctx context.Context, role *models.Role) (*models.Role, error) {
	if err := s.Repo.UpdateRole(ctx, role); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	return role, nil
}

func (s *DefaultAdminService) DeleteRole(ctx context.Context, id string) error {
	if err := s.Repo.DeleteRole(ctx, id); err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}
	return nil
}

func (s *DefaultAdminService) CreatePermission(ctx context.Context, perm *models.Permission) (*models.Permission, error) {
	if perm.Name == "" {
		return nil, errors.New("permission name is required")
	}
	if err := s.Repo.CreatePermission(ctx, perm); err != nil {
		return nil, fmt.Errorf("failed to create permission: %w", err)
	}
	return perm, nil
}

func (s *DefaultAdminService) GetAllPermissions(ctx context.Context) ([]models.Permission, error) {
	return s.Repo.GetAllPermissions(ctx)
}

func (s *DefaultAdminService) DeletePermission(ctx context.Context, id string) error {
	if err := s.Repo.DeletePermission(ctx, id); err != nil {
		return fmt.Errorf("failed to delete permission: %w", err)
	}
	return nil
}

func (s *DefaultAdminService) AssignPermission(ctx context.Context, roleID, permissionID string) error {
	if err := s.Repo.AssignPermission(ctx, roleID, permissionID); err != nil {
		return fmt.Errorf("failed to assign permission: %w", err)
	}
	return nil
}

func (s *DefaultAdminService) RevokePermission(ctx context.Context, roleID, permissionID string) error {
	if err := s.Repo.RevokePermission(ctx, roleID, permissionID); err != nil {
		return fmt.Errorf("failed to revoke permission: %w", err)
	}
	return nil
}
