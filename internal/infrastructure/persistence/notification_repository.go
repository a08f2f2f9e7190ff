package persistence

import (
	"context"
	"fmt"

	"github.com/p2p/backend/internal/domain/notification"
	"github.com/p2p/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormNotificationRepository persists staff notifications.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a GormNotificationRepository.
func NewNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// FindAll implements notification.Repository.
func (r *GormNotificationRepository) FindAll(ctx context.Context, staffCode string) ([]notification.Notification, error) {
	var items []notification.Notification
	if err := r.db.WithContext(ctx).Raw(notificationsAllQuery, staffCode).Scan(&items).Error; err != nil {
		return nil, fmt.Errorf("query notifications for %s: %w", staffCode, err)
	}
	return items, nil
}

// FindUnread implements notification.Repository.
func (r *GormNotificationRepository) FindUnread(ctx context.Context, staffCode string) ([]notification.Notification, error) {
	var items []notification.Notification
	if err := r.db.WithContext(ctx).Raw(notificationsUnreadQuery, staffCode).Scan(&items).Error; err != nil {
		return nil, fmt.Errorf("query unread notifications for %s: %w", staffCode, err)
	}
	return items, nil
}

// MarkRead implements notification.Repository.
func (r *GormNotificationRepository) MarkRead(ctx context.Context, staffCode string, notificationID int) error {
	result := r.db.WithContext(ctx).Exec(notificationMarkReadQuery, staffCode, notificationID)
	if result.Error != nil {
		return fmt.Errorf("mark notification %d read: %w", notificationID, result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// MarkAllRead implements notification.Repository.
func (r *GormNotificationRepository) MarkAllRead(ctx context.Context, staffCode string) error {
	if err := r.db.WithContext(ctx).Exec(notificationMarkAllReadQuery, staffCode).Error; err != nil {
		return fmt.Errorf("mark all notifications read for %s: %w", staffCode, err)
	}
	return nil
}
