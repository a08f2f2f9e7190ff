package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	appcalendar "github.com/p2p/backend/internal/application/calendar"
	"github.com/p2p/backend/internal/domain/calendar"
	"github.com/p2p/backend/internal/infrastructure/auth"
	"github.com/p2p/backend/internal/infrastructure/config"
	"github.com/p2p/backend/internal/interfaces/http/middleware"
	"github.com/p2p/backend/internal/interfaces/http/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePermissionRepo struct {
	perms []calendar.Permission
	err   error
}

func (r *fakePermissionRepo) ReadPermissions(ctx context.Context, staffCode string) ([]calendar.Permission, error) {
	return r.perms, r.err
}

func (r *fakePermissionRepo) AllPermissions(ctx context.Context, staffCode string) ([]calendar.Permission, error) {
	return r.perms, r.err
}

type fakeProvider struct {
	tag    calendar.ModuleTag
	events []calendar.Event
	err    error
}

func (p *fakeProvider) Tag() calendar.ModuleTag { return p.tag }

func (p *fakeProvider) Events(ctx context.Context) ([]calendar.Event, error) {
	return p.events, p.err
}

func newSessionService() *auth.SessionService {
	return auth.NewSessionService(config.SessionConfig{
		Secret:     "0123456789abcdef0123456789abcdef",
		Expiration: time.Hour,
		Issuer:     "p2p-backend",
	})
}

func newCalendarAPI(t *testing.T, repo calendar.PermissionRepository, providers ...appcalendar.EventProvider) (*gin.Engine, *auth.SessionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := newSessionService()
	feed := appcalendar.NewFeedService(repo, providers, nil)

	engine := gin.New()
	engine.Use(middleware.Session(sessions))
	router.NewRouter(engine).
		Register(NewCalendarHandler(feed, nil)).
		Setup()
	return engine, sessions
}

func authedRequest(t *testing.T, sessions *auth.SessionService, staffCode, path string) *http.Request {
	t.Helper()
	token, _, err := sessions.Issue(staffCode, "")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestCalendarEvents_NoSessionReturns401Envelope(t *testing.T) {
	engine, _ := newCalendarAPI(t, &fakePermissionRepo{})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/events", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "SESSION_EXPIRED", body.Error.Code)
	assert.Equal(t, "Session expired", body.Error.Message)
}

func TestCalendarEvents_ReturnsBareEventArray(t *testing.T) {
	repo := &fakePermissionRepo{perms: []calendar.Permission{
		{Type: "Read", Name: "PurchaseRequisition"},
	}}
	provider := &fakeProvider{
		tag: calendar.TagRequisition,
		events: []calendar.Event{{
			ID:    "PR-0001",
			Title: "Purchase Requisition Is Added By Alice",
			Start: "2024-01-10T09:30:00",
			Color: "#007bff",
			ExtendedProps: calendar.RequisitionPayload{
				Module: calendar.TagRequisition,
				PRCode: "PR-0001",
			},
		}},
	}
	engine, sessions := newCalendarAPI(t, repo, provider)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, authedRequest(t, sessions, "EMP-001", "/api/v1/calendar/events"))

	require.Equal(t, http.StatusOK, w.Code)

	var events []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "PR-0001", events[0]["id"])
	assert.Equal(t, "#007bff", events[0]["color"])

	props, ok := events[0]["extendedProps"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "PurchaseRequisition", props["module"])
}

func TestCalendarEvents_EmptyFeedReturnsEmptyArray(t *testing.T) {
	engine, sessions := newCalendarAPI(t, &fakePermissionRepo{})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, authedRequest(t, sessions, "EMP-001", "/api/v1/calendar/events"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCalendarEvents_ProviderFailureReturnsGenericError(t *testing.T) {
	repo := &fakePermissionRepo{perms: []calendar.Permission{
		{Type: "Read", Name: "PurchaseOrder"},
	}}
	provider := &fakeProvider{
		tag: calendar.TagOrder,
		err: errors.New("pq: relation purchase_orders does not exist"),
	}
	engine, sessions := newCalendarAPI(t, repo, provider)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, authedRequest(t, sessions, "EMP-001", "/api/v1/calendar/events"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "FETCH_FAILED")
	assert.NotContains(t, w.Body.String(), "purchase_orders")
}

func TestCalendarPermissions(t *testing.T) {
	repo := &fakePermissionRepo{perms: []calendar.Permission{
		{Type: "Read", Name: "PurchaseRequisition"},
		{Type: "Read", Name: "StockPlanning"},
	}}
	engine, sessions := newCalendarAPI(t, repo)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, authedRequest(t, sessions, "EMP-001", "/api/v1/calendar/permissions"))

	require.Equal(t, http.StatusOK, w.Code)

	var perms []map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &perms))
	require.Len(t, perms, 2)
	assert.Equal(t, "PurchaseRequisition", perms[0]["PermissionName"])
	assert.Equal(t, "Read", perms[0]["PermissionType"])
}

func TestCalendarPermissions_NoSession(t *testing.T) {
	engine, _ := newCalendarAPI(t, &fakePermissionRepo{})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/permissions", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
