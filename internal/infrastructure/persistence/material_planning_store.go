package persistence

import (
	"context"
	"fmt"

	"github.com/p2p/backend/internal/domain/calendar"
	"github.com/p2p/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormMaterialPlanningStore reads material requirement plans.
type GormMaterialPlanningStore struct {
	db *gorm.DB
}

// NewMaterialPlanningStore creates a GormMaterialPlanningStore.
func NewMaterialPlanningStore(db *gorm.DB) *GormMaterialPlanningStore {
	return &GormMaterialPlanningStore{db: db}
}

// ListHeaders implements calendar.MaterialPlanningStore.
func (s *GormMaterialPlanningStore) ListHeaders(ctx context.Context) ([]calendar.DocumentHeader, error) {
	var headers []calendar.DocumentHeader
	if err := s.db.WithContext(ctx).Raw(materialPlanningHeadersQuery).Scan(&headers).Error; err != nil {
		return nil, fmt.Errorf("query material planning headers: %w", err)
	}
	return headers, nil
}

// FetchDetail implements calendar.MaterialPlanningStore.
func (s *GormMaterialPlanningStore) FetchDetail(ctx context.Context, code string) (*calendar.MaterialPlanningDetail, error) {
	var detail calendar.MaterialPlanningDetail
	result := s.db.WithContext(ctx).Raw(materialPlanningDetailQuery, code).Scan(&detail)
	if result.Error != nil {
		return nil, fmt.Errorf("query material planning %s: %w", code, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}

	if err := s.db.WithContext(ctx).Raw(materialPlanningItemsQuery, code).Scan(&detail.Items).Error; err != nil {
		return nil, fmt.Errorf("query material planning %s items: %w", code, err)
	}
	return &detail, nil
}
