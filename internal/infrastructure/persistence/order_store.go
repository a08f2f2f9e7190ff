package persistence

import (
	"context"
	"fmt"

	"github.com/p2p/backend/internal/domain/calendar"
	"github.com/p2p/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormOrderStore reads purchase orders. The detail spans three result sets:
// the order row, its items, and the agreed terms.
type GormOrderStore struct {
	db *gorm.DB
}

// NewOrderStore creates a GormOrderStore.
func NewOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

// ListHeaders implements calendar.OrderStore.
func (s *GormOrderStore) ListHeaders(ctx context.Context) ([]calendar.DocumentHeader, error) {
	var headers []calendar.DocumentHeader
	if err := s.db.WithContext(ctx).Raw(orderHeadersQuery).Scan(&headers).Error; err != nil {
		return nil, fmt.Errorf("query order headers: %w", err)
	}
	return headers, nil
}

// FetchDetail implements calendar.OrderStore.
func (s *GormOrderStore) FetchDetail(ctx context.Context, code string) (*calendar.OrderDetail, error) {
	var detail calendar.OrderDetail
	result := s.db.WithContext(ctx).Raw(orderDetailQuery, code).Scan(&detail)
	if result.Error != nil {
		return nil, fmt.Errorf("query order %s: %w", code, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}

	if err := s.db.WithContext(ctx).Raw(orderItemsQuery, code).Scan(&detail.Items).Error; err != nil {
		return nil, fmt.Errorf("query order %s items: %w", code, err)
	}

	var terms []struct {
		TermCondition string
	}
	if err := s.db.WithContext(ctx).Raw(orderTermsQuery, code).Scan(&terms).Error; err != nil {
		return nil, fmt.Errorf("query order %s terms: %w", code, err)
	}
	detail.TermConditions = make([]string, len(terms))
	for i, t := range terms {
		detail.TermConditions[i] = t.TermCondition
	}
	return &detail, nil
}
