package persistence

import (
	"context"
	"fmt"

	"github.com/p2p/backend/internal/domain/calendar"
	"gorm.io/gorm"
)

// GormPermissionRepository resolves staff permissions.
type GormPermissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository creates a GormPermissionRepository.
func NewPermissionRepository(db *gorm.DB) *GormPermissionRepository {
	return &GormPermissionRepository{db: db}
}

// ReadPermissions implements calendar.PermissionRepository.
func (r *GormPermissionRepository) ReadPermissions(ctx context.Context, staffCode string) ([]calendar.Permission, error) {
	var perms []calendar.Permission
	if err := r.db.WithContext(ctx).Raw(readPermissionsQuery, staffCode).Scan(&perms).Error; err != nil {
		return nil, fmt.Errorf("query read permissions for %s: %w", staffCode, err)
	}
	return perms, nil
}

// AllPermissions implements calendar.PermissionRepository.
func (r *GormPermissionRepository) AllPermissions(ctx context.Context, staffCode string) ([]calendar.Permission, error) {
	var perms []calendar.Permission
	if err := r.db.WithContext(ctx).Raw(allPermissionsQuery, staffCode).Scan(&perms).Error; err != nil {
		return nil, fmt.Errorf("query permissions for %s: %w", staffCode, err)
	}
	return perms, nil
}
