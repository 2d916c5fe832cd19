// File: services/admin/permissions.go
package admin

import (
	"context"
	"encoding/json"

	"tallerlink/utils"

	"go.uber.org/zap"
)

// HasPermission resolves the user's permission names (through a short-lived
// Redis cache) and checks for an exact string match. The model is a flat
// capability list with no hierarchy; the dashboard gates rendering and this
// backend gates the endpoints with the same names.
func (s *DefaultAdminService) HasPermission(ctx context.Context, userID, permission string) (bool, error) {
	names, err := s.permissionNames(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == permission {
			return true, nil
		}
	}
	return false, nil
}

func (s *DefaultAdminService) permissionNames(ctx context.Context, userID string) ([]string, error) {
	key := utils.PermCachePrefix + userID

	if s.AuthCache != nil {
		if data, err := s.AuthCache.Get(ctx, key).Result(); err == nil {
			var names []string
			if err := json.Unmarshal([]byte(data), &names); err == nil {
				return names, nil
			}
		}
	}

	names, err := s.Repo.GetPermissionNamesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.AuthCache != nil {
		if data, err := json.Marshal(names); err == nil {
			if err := s.AuthCache.Set(ctx, key, data, utils.PermCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache permissions", zap.String("userID", userID), zap.Error(err))
			}
		}
	}
	return names, nil
}

func (s *DefaultAdminService) invalidatePermissions(ctx context.Context, userID string) {
	if s.AuthCache == nil {
		return
	}
	if err := s.AuthCache.Del(ctx, utils.PermCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate permission cache",
			zap.String("userID", userID), zap.Error(err))
	}
}
