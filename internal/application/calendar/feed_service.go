package calendar

import (
	"context"
	"fmt"

	"github.com/p2p/backend/internal/domain/calendar"
	"github.com/p2p/backend/internal/domain/shared"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// FeedService assembles the calendar feed for one staff member: resolve
// permissions, select sources, run every selected provider, concatenate.
type FeedService struct {
	permissions calendar.PermissionRepository
	providers   map[calendar.ModuleTag]EventProvider
	logger      *zap.Logger
	tracer      trace.Tracer
}

// NewFeedService creates a FeedService over the given providers.
func NewFeedService(permissions calendar.PermissionRepository, providers []EventProvider, logger *zap.Logger) *FeedService {
	if logger == nil {
		logger = zap.NewNop()
	}
	byTag := make(map[calendar.ModuleTag]EventProvider, len(providers))
	for _, p := range providers {
		byTag[p.Tag()] = p
	}
	return &FeedService{
		permissions: permissions,
		providers:   byTag,
		logger:      logger,
		tracer:      otel.Tracer("calendar"),
	}
}

// BuildFeed returns the full event feed visible to the staff member.
//
// Events are grouped by provider in source-selection order; within one
// provider the header list order is kept. The feed is not sorted by date.
// A missing staff code fails fast with shared.ErrSessionExpired before any
// store access; any provider failure fails the whole feed, no partial
// result is returned.
func (s *FeedService) BuildFeed(ctx context.Context, staffCode string) ([]calendar.Event, error) {
	if staffCode == "" {
		return nil, shared.ErrSessionExpired
	}

	ctx, span := s.tracer.Start(ctx, "calendar.BuildFeed",
		trace.WithAttributes(attribute.String("staff_code", staffCode)))
	defer span.End()

	perms, err := s.permissions.ReadPermissions(ctx, staffCode)
	if err != nil {
		return nil, fmt.Errorf("resolve permissions for %s: %w", staffCode, err)
	}

	tags := calendar.SelectSources(calendar.NewPermissionSet(perms))
	span.SetAttributes(attribute.Int("sources", len(tags)))

	// One slot per tag keeps the output order deterministic regardless of
	// which provider finishes first.
	results := make([][]calendar.Event, len(tags))
	g, gctx := errgroup.WithContext(ctx)
	for i, tag := range tags {
		provider, ok := s.providers[tag]
		if !ok {
			// A selected source without a wired provider is a configuration
			// defect, not a user error.
			return nil, fmt.Errorf("no provider registered for module %s", tag)
		}
		g.Go(func() error {
			events, err := provider.Events(gctx)
			if err != nil {
				return err
			}
			results[i] = events
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("calendar feed aggregation failed",
			zap.String("staff_code", staffCode),
			zap.Error(err))
		return nil, err
	}

	var feed []calendar.Event
	for _, events := range results {
		feed = append(feed, events...)
	}

	s.logger.Debug("calendar feed assembled",
		zap.String("staff_code", staffCode),
		zap.Int("sources", len(tags)),
		zap.Int("events", len(feed)))

	return feed, nil
}

// ReadPermissions returns the staff member's resolved read permissions for
// the permissions endpoint.
func (s *FeedService) ReadPermissions(ctx context.Context, staffCode string) ([]calendar.Permission, error) {
	if staffCode == "" {
		return nil, shared.ErrSessionExpired
	}
	perms, err := s.permissions.ReadPermissions(ctx, staffCode)
	if err != nil {
		return nil, fmt.Errorf("resolve permissions for %s: %w", staffCode, err)
	}
	return perms, nil
}
