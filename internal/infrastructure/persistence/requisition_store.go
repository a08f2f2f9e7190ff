package persistence

import (
	"context"
	"fmt"

	"github.com/p2p/backend/internal/domain/calendar"
	"github.com/p2p/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormRequisitionStore reads purchase requisitions through the named-query
// registry.
type GormRequisitionStore struct {
	db *gorm.DB
}

// NewRequisitionStore creates a GormRequisitionStore.
func NewRequisitionStore(db *gorm.DB) *GormRequisitionStore {
	return &GormRequisitionStore{db: db}
}

// ListHeaders implements calendar.RequisitionStore.
func (s *GormRequisitionStore) ListHeaders(ctx context.Context) ([]calendar.DocumentHeader, error) {
	var headers []calendar.DocumentHeader
	if err := s.db.WithContext(ctx).Raw(requisitionHeadersQuery).Scan(&headers).Error; err != nil {
		return nil, fmt.Errorf("query requisition headers: %w", err)
	}
	return headers, nil
}

// FetchDetail implements calendar.RequisitionStore.
func (s *GormRequisitionStore) FetchDetail(ctx context.Context, code string) (*calendar.RequisitionDetail, error) {
	var detail calendar.RequisitionDetail
	result := s.db.WithContext(ctx).Raw(requisitionDetailQuery, code).Scan(&detail)
	if result.Error != nil {
		return nil, fmt.Errorf("query requisition %s: %w", code, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}

	if err := s.db.WithContext(ctx).Raw(requisitionItemsQuery, code).Scan(&detail.Items).Error; err != nil {
		return nil, fmt.Errorf("query requisition %s items: %w", code, err)
	}
	return &detail, nil
}
