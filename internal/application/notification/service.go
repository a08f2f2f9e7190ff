package notification

import (
	"context"
	"fmt"

	"github.com/p2p/backend/internal/domain/notification"
	"github.com/p2p/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// UnreadCountCache caches the per-staff unread notification count.
type UnreadCountCache interface {
	GetUnreadCount(ctx context.Context, staffCode string) (int, bool, error)
	SetUnreadCount(ctx context.Context, staffCode string, count int) error
	InvalidateUnreadCount(ctx context.Context, staffCode string) error
}

// Service exposes the notification operations of the back office. The
// unread count is served from cache when possible; cache failures degrade
// to the repository and are logged, never surfaced.
type Service struct {
	repo   notification.Repository
	cache  UnreadCountCache
	logger *zap.Logger
}

// NewService creates a notification Service. cache may be nil.
func NewService(repo notification.Repository, cache UnreadCountCache, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, cache: cache, logger: logger}
}

// List returns every notification for the staff member.
func (s *Service) List(ctx context.Context, staffCode string) ([]notification.Notification, error) {
	if staffCode == "" {
		return nil, shared.ErrSessionExpired
	}
	items, err := s.repo.FindAll(ctx, staffCode)
	if err != nil {
		return nil, fmt.Errorf("list notifications for %s: %w", staffCode, err)
	}
	return items, nil
}

// Unread returns the unread notifications for the staff member and refreshes
// the cached unread count.
func (s *Service) Unread(ctx context.Context, staffCode string) ([]notification.Notification, error) {
	if staffCode == "" {
		return nil, shared.ErrSessionExpired
	}
	items, err := s.repo.FindUnread(ctx, staffCode)
	if err != nil {
		return nil, fmt.Errorf("list unread notifications for %s: %w", staffCode, err)
	}
	if s.cache != nil {
		if err := s.cache.SetUnreadCount(ctx, staffCode, len(items)); err != nil {
			s.logger.Warn("unread count cache write failed",
				zap.String("staff_code", staffCode), zap.Error(err))
		}
	}
	return items, nil
}

// UnreadCount returns the number of unread notifications, preferring the
// cached value.
func (s *Service) UnreadCount(ctx context.Context, staffCode string) (int, error) {
	if staffCode == "" {
		return 0, shared.ErrSessionExpired
	}
	if s.cache != nil {
		count, ok, err := s.cache.GetUnreadCount(ctx, staffCode)
		if err != nil {
			s.logger.Warn("unread count cache read failed",
				zap.String("staff_code", staffCode), zap.Error(err))
		} else if ok {
			return count, nil
		}
	}
	items, err := s.repo.FindUnread(ctx, staffCode)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications for %s: %w", staffCode, err)
	}
	if s.cache != nil {
		if err := s.cache.SetUnreadCount(ctx, staffCode, len(items)); err != nil {
			s.logger.Warn("unread count cache write failed",
				zap.String("staff_code", staffCode), zap.Error(err))
		}
	}
	return len(items), nil
}

// MarkRead marks one notification as read and drops the cached count.
func (s *Service) MarkRead(ctx context.Context, staffCode string, notificationID int) error {
	if staffCode == "" {
		return shared.ErrSessionExpired
	}
	if err := s.repo.MarkRead(ctx, staffCode, notificationID); err != nil {
		return fmt.Errorf("mark notification %d read: %w", notificationID, err)
	}
	s.invalidate(ctx, staffCode)
	return nil
}

// MarkAllRead marks every notification of the staff member as read.
func (s *Service) MarkAllRead(ctx context.Context, staffCode string) error {
	if staffCode == "" {
		return shared.ErrSessionExpired
	}
	if err := s.repo.MarkAllRead(ctx, staffCode); err != nil {
		return fmt.Errorf("mark all notifications read for %s: %w", staffCode, err)
	}
	s.invalidate(ctx, staffCode)
	return nil
}

func (s *Service) invalidate(ctx context.Context, staffCode string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateUnreadCount(ctx, staffCode); err != nil {
		s.logger.Warn("unread count cache invalidation failed",
			zap.String("staff_code", staffCode), zap.Error(err))
	}
}
