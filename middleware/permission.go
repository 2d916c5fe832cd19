// File: middleware/permission.go
package middleware

import (
	"net/http"

	"tallerlink/services/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequirePermission gates an endpoint behind one permission name. It runs
// after JWTAuthAdminMiddleware and checks the flat permission list of the
// authenticated dashboard user.
func RequirePermission(adminSvc admin.AdminService, permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("adminID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		ok, err := adminSvc.HasPermission(c.Request.Context(), userID, permission)
		if err != nil {
			zap.L().Error("permission check failed",
				zap.String("userID", userID), zap.String("permission", permission), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify permissions"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Missing permission: " + permission})
			return
		}
		c.Next()
	}
}
