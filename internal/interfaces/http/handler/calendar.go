package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	appcalendar "github.com/p2p/backend/internal/application/calendar"
	"github.com/p2p/backend/internal/domain/calendar"
	"github.com/p2p/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// CalendarHandler serves the aggregated calendar feed and the session's
// resolved permissions.
type CalendarHandler struct {
	feed   *appcalendar.FeedService
	logger *zap.Logger
}

// NewCalendarHandler creates a CalendarHandler.
func NewCalendarHandler(feed *appcalendar.FeedService, logger *zap.Logger) *CalendarHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalendarHandler{feed: feed, logger: logger}
}

// RegisterRoutes implements router.RouteRegistrar.
func (h *CalendarHandler) RegisterRoutes(rg *gin.RouterGroup) {
	calendar := rg.Group("/calendar")
	{
		calendar.GET("/events", h.Events)
		calendar.GET("/permissions", h.Permissions)
	}
}

// Events returns the full calendar feed for the session's staff member.
// The feed is the raw event array, not wrapped in the response envelope;
// the calendar widget consumes it directly.
func (h *CalendarHandler) Events(c *gin.Context) {
	events, err := h.feed.BuildFeed(c.Request.Context(), middleware.StaffCode(c))
	if err != nil {
		h.logger.Warn("calendar feed request failed", zap.Error(err))
		respondError(c, err)
		return
	}
	if events == nil {
		events = []calendar.Event{}
	}
	c.JSON(http.StatusOK, events)
}

// Permissions returns the resolved read permissions of the session.
func (h *CalendarHandler) Permissions(c *gin.Context) {
	perms, err := h.feed.ReadPermissions(c.Request.Context(), middleware.StaffCode(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, perms)
}
