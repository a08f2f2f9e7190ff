package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	appnotification "github.com/p2p/backend/internal/application/notification"
	"github.com/p2p/backend/internal/domain/shared"
	"github.com/p2p/backend/internal/interfaces/http/dto"
	"github.com/p2p/backend/internal/interfaces/http/middleware"
)

// NotificationHandler serves the staff member's notification inbox.
type NotificationHandler struct {
	notifications *appnotification.Service
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(notifications *appnotification.Service) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// RegisterRoutes implements router.RouteRegistrar.
func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.List)
		notifications.GET("/unread", h.Unread)
		notifications.GET("/unread/count", h.UnreadCount)
		notifications.POST("/:id/read", h.MarkRead)
		notifications.POST("/read-all", h.MarkAllRead)
	}
}

// List returns every notification for the session's staff member.
func (h *NotificationHandler) List(c *gin.Context) {
	items, err := h.notifications.List(c.Request.Context(), middleware.StaffCode(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(items))
}

// Unread returns the unread notifications.
func (h *NotificationHandler) Unread(c *gin.Context) {
	items, err := h.notifications.Unread(c.Request.Context(), middleware.StaffCode(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(items))
}

// UnreadCount returns the number of unread notifications.
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.notifications.UnreadCount(c.Request.Context(), middleware.StaffCode(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"count": count}))
}

// MarkRead marks one notification as read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, shared.ErrInvalidInput)
		return
	}
	if err := h.notifications.MarkRead(c.Request.Context(), middleware.StaffCode(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil))
}

// MarkAllRead marks every notification of the staff member as read.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.notifications.MarkAllRead(c.Request.Context(), middleware.StaffCode(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil))
}
