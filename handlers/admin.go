package handlers

import (
	"errors"
	"net/http"

	"tallerlink/models"
	"tallerlink/services/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves dashboard user, role and permission management.
type AdminHandler struct {
	Service admin.AdminService
}

func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// CreateUserHandler registers a dashboard user.
func (h *AdminHandler) CreateUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var user models.AdminUser
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.CreateUser(c.Request.Context(), &user)
	if err != nil {
		if errors.Is(err, admin.ErrWeakPassword) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create admin user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetUsersHandler lists dashboard users.
func (h *AdminHandler) GetUsersHandler(c *gin.Context) {
	logger := getLogger(c)

	users, err := h.Service.GetAllUsers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list admin users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// UpdateUserHandler updates a dashboard user.
func (h *AdminHandler) UpdateUserHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var user models.AdminUser
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	user.ID = id

	updated, err := h.Service.UpdateUser(c.Request.Context(), &user)
	if err != nil {
		logger.Error("Failed to update admin user", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteUserHandler removes a dashboard user.
func (h *AdminHandler) DeleteUserHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.Service.DeleteUser(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete admin user", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// CreateRoleHandler creates a role.
func (h *AdminHandler) CreateRoleHandler(c *gin.Context) {
	logger := getLogger(c)

	var role models.Role
	if err := c.ShouldBindJSON(&role); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.CreateRole(c.Request.Context(), &role)
	if err != nil {
		logger.Error("Failed to create role", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create role"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetRolesHandler lists roles with their permissions.
func (h *AdminHandler) GetRolesHandler(c *gin.Context) {
	logger := getLogger(c)

	roles, err := h.Service.GetAllRoles(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list roles", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get roles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"roles": roles})
}

// GetRoleHandler returns one role with its permissions.
func (h *AdminHandler) GetRoleHandler(c *gin.Context) {
	id := c.Param("id")

	role, err := h.Service.GetRole(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
		return
	}
	c.JSON(http.StatusOK, role)
}

// UpdateRoleHandler renames a role.
func (h *AdminHandler) UpdateRoleHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var role models.Role
	if err := c.ShouldBindJSON(&role); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	role.ID = id

	updated, err := h.Service.UpdateRole(c.Request.Context(), &role)
	if err != nil {
		logger.Error("Failed to update role", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteRoleHandler removes a role.
func (h *AdminHandler) DeleteRoleHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.Service.DeleteRole(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete role", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete role"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role deleted"})
}

// CreatePermissionHandler registers a permission name.
func (h *AdminHandler) CreatePermissionHandler(c *gin.Context) {
	logger := getLogger(c)

	var perm models.Permission
	if err := c.ShouldBindJSON(&perm); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.CreatePermission(c.Request.Context(), &perm)
	if err != nil {
		logger.Error("Failed to create permission", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create permission"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetPermissionsHandler lists permissions.
func (h *AdminHandler) GetPermissionsHandler(c *gin.Context) {
	logger := getLogger(c)

	perms, err := h.Service.GetAllPermissions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list permissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get permissions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"permissions": perms})
}

// DeletePermissionHandler removes a permission.
func (h *AdminHandler) DeletePermissionHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.Service.DeletePermission(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete permission", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete permission"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Permission deleted"})
}

// AssignPermissionHandler attaches a permission to a role.
func (h *AdminHandler) AssignPermissionHandler(c *gin.Context) {
	logger := getLogger(c)
	roleID := c.Param("id")

	var input struct {
		PermissionID string `json:"permissionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.AssignPermission(c.Request.Context(), roleID, input.PermissionID); err != nil {
		logger.Error("Failed to assign permission", zap.String("roleID", roleID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign permission"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Permission assigned"})
}

// RevokePermissionHandler detaches a permission from a role.
func (h *AdminHandler) RevokePermissionHandler(c *gin.Context) {
	logger := getLogger(c)
	roleID := c.Param("id")
	permissionID := c.Param("permissionID")

	if err := h.Service.RevokePermission(c.Request.Context(), roleID, permissionID); err != nil {
		logger.Error("Failed to revoke permission", zap.String("roleID", roleID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke permission"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Permission revoked"})
}
