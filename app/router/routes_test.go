package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/dto"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/handlers"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/middleware"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/session"
	businessflow "github.com/Git-peanutsuu/OdekakeEventCalendar-app/business_flow"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/utils"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrictJSONDecode(t *testing.T) {
	type payload struct {
		Title string `json:"title"`
	}

	t.Run("KnownFields", func(t *testing.T) {
		var p payload
		require.NoError(t, strictJSONDecode([]byte(`{"title":"Fireworks"}`), &p))
		assert.Equal(t, "Fireworks", p.Title)
	})

	t.Run("UnknownFieldRejected", func(t *testing.T) {
		var p payload
		err := strictJSONDecode([]byte(`{"title":"Fireworks","bogus":1}`), &p)
		assert.Error(t, err)
	})

	t.Run("MalformedRejected", func(t *testing.T) {
		var p payload
		assert.Error(t, strictJSONDecode([]byte(`{"title":`), &p))
	})
}

// memEventFlow is an in-memory EventFlow backing the route tests
type memEventFlow struct {
	events []*dto.EventResponse
	nextID int
}

func (f *memEventFlow) List(ctx context.Context) ([]*dto.EventResponse, error) { return f.events, nil }

func (f *memEventFlow) Get(_ context.Context, id string) (*dto.EventResponse, error) {
	for _, ev := range f.events {
		if ev.ID == id {
			return ev, nil
		}
	}
	return nil, businessflow.NewBusinessError("EVENT_NOT_FOUND", "Event not found", businessflow.ErrEventNotFound)
}

func (f *memEventFlow) ByDate(_ context.Context, date string) ([]*dto.EventResponse, error) {
	matched := make([]*dto.EventResponse, 0)
	for _, ev := range f.events {
		if ev.Date == date {
			matched = append(matched, ev)
		}
	}
	return matched, nil
}

func (f *memEventFlow) Create(_ context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	f.nextID++
	ev := &dto.EventResponse{
		ID:    fmt.Sprintf("event-%d", f.nextID),
		Title: req.Title,
		Date:  req.Date,
	}
	f.events = append(f.events, ev)
	return ev, nil
}

func (f *memEventFlow) Update(ctx context.Context, id string, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	ev, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		ev.Title = *req.Title
	}
	if req.Date != nil {
		ev.Date = *req.Date
	}
	return ev, nil
}

func (f *memEventFlow) Delete(_ context.Context, id string) error {
	for i, ev := range f.events {
		if ev.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return businessflow.NewBusinessError("EVENT_NOT_FOUND", "Event not found", businessflow.ErrEventNotFound)
}

func (f *memEventFlow) Share(_ context.Context, id string) (*dto.ShareTextResponse, error) {
	return &dto.ShareTextResponse{EventID: id}, nil
}

func (f *memEventFlow) GoogleCalendarURL(_ context.Context, id string) (string, error) { return "", nil }

func (f *memEventFlow) ExportICS(_ context.Context, id string) (string, error) { return "", nil }

type stubTagFlow struct{}

func (stubTagFlow) List(_ context.Context) ([]*dto.LocationTagResponse, error) {
	return []*dto.LocationTagResponse{}, nil
}
func (stubTagFlow) Create(_ context.Context, _ *dto.CreateLocationTagRequest) (*dto.LocationTagResponse, error) {
	return &dto.LocationTagResponse{}, nil
}
func (stubTagFlow) Update(_ context.Context, _ string, _ *dto.UpdateLocationTagRequest) (*dto.LocationTagResponse, error) {
	return &dto.LocationTagResponse{}, nil
}
func (stubTagFlow) Delete(_ context.Context, _ string) error { return nil }

type stubWebsiteFlow struct{}

func (stubWebsiteFlow) List(_ context.Context) ([]*dto.ReferenceWebsiteResponse, error) {
	return []*dto.ReferenceWebsiteResponse{}, nil
}
func (stubWebsiteFlow) Create(_ context.Context, _ *dto.CreateReferenceWebsiteRequest) (*dto.ReferenceWebsiteResponse, error) {
	return &dto.ReferenceWebsiteResponse{}, nil
}
func (stubWebsiteFlow) Update(_ context.Context, _ string, _ *dto.UpdateReferenceWebsiteRequest) (*dto.ReferenceWebsiteResponse, error) {
	return &dto.ReferenceWebsiteResponse{}, nil
}
func (stubWebsiteFlow) Delete(_ context.Context, _ string) error { return nil }

type stubCalendarFlow struct{}

func (stubCalendarFlow) MonthView(_ context.Context, year, month int, _ []string, _, _ string) (*dto.MonthViewResponse, error) {
	return &dto.MonthViewResponse{Year: year, Month: month}, nil
}
func (stubCalendarFlow) LastUpdated(_ context.Context) (*dto.LastUpdatedResponse, error) {
	return &dto.LastUpdatedResponse{}, nil
}

type stubInterestFlow struct{}

func (stubInterestFlow) List(_ context.Context, _ string) (*dto.UserInterestsResponse, error) {
	return &dto.UserInterestsResponse{EventIDs: []string{}}, nil
}
func (stubInterestFlow) Toggle(_ context.Context, _ string, _ *dto.ToggleInterestRequest) (*dto.ToggleInterestResponse, error) {
	return &dto.ToggleInterestResponse{}, nil
}

func newTestRouter() *fiber.App {
	store := session.NewMemoryStore()
	sessionMW := middleware.NewSessionMiddleware(store)
	authFlow := businessflow.NewAdminAuthFlow(store, "test-secret", "", time.Hour)

	r := NewFiberRouter(
		Config{CORSAllowOrigins: []string{"http://localhost:5173"}},
		sessionMW,
		handlers.NewAdminAuthHandler(authFlow, false, "Lax"),
		handlers.NewEventHandler(&memEventFlow{}),
		handlers.NewLocationTagHandler(stubTagFlow{}),
		handlers.NewReferenceWebsiteHandler(stubWebsiteFlow{}),
		handlers.NewCalendarHandler(stubCalendarFlow{}),
		handlers.NewUserInterestHandler(stubInterestFlow{}, store, false, "Lax"),
	)
	r.SetupRoutes()
	return r.GetApp()
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any, cookie string) (*http.Response, apiEnvelope) {
	t.Helper()

	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: cookie})
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var envelope apiEnvelope
	if resp.Header.Get("Content-Type") != "" {
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
	}
	return resp, envelope
}

func sessionCookie(resp *http.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name == utils.SessionCookieName {
			return c.Value
		}
	}
	return ""
}

func TestAdminGateLifecycle(t *testing.T) {
	app := newTestRouter()

	// Mutations are rejected without a session
	resp, _ := doRequest(t, app, http.MethodPost, "/api/events",
		fiber.Map{"title": "Fair", "date": "2025-09-17"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Wrong password does not open the gate
	resp, _ = doRequest(t, app, http.MethodPost, "/api/admin/login",
		fiber.Map{"password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, sessionCookie(resp))

	// Login establishes the admin session cookie
	resp, _ = doRequest(t, app, http.MethodPost, "/api/admin/login",
		fiber.Map{"password": "test-secret"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookie := sessionCookie(resp)
	require.NotEmpty(t, cookie)

	resp, envelope := doRequest(t, app, http.MethodGet, "/api/admin/status", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var status dto.AdminStatusResponse
	require.NoError(t, json.Unmarshal(envelope.Data, &status))
	assert.True(t, status.IsAdmin)

	// Create succeeds while the session holds
	resp, envelope = doRequest(t, app, http.MethodPost, "/api/events",
		fiber.Map{"title": "Fair", "date": "2025-09-17"}, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.EventResponse
	require.NoError(t, json.Unmarshal(envelope.Data, &created))
	require.NotEmpty(t, created.ID)

	resp, envelope = doRequest(t, app, http.MethodGet, "/api/events/date/2025-09-17", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var onDate []dto.EventResponse
	require.NoError(t, json.Unmarshal(envelope.Data, &onDate))
	require.Len(t, onDate, 1)
	assert.Equal(t, "Fair", onDate[0].Title)

	resp, _ = doRequest(t, app, http.MethodDelete, "/api/events/"+created.ID, nil, cookie)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, envelope = doRequest(t, app, http.MethodGet, "/api/events/date/2025-09-17", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	onDate = nil
	require.NoError(t, json.Unmarshal(envelope.Data, &onDate))
	assert.Empty(t, onDate)

	// Logout closes the gate for the same cookie
	resp, _ = doRequest(t, app, http.MethodPost, "/api/admin/logout", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPost, "/api/events",
		fiber.Map{"title": "Fair", "date": "2025-09-17"}, cookie)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, envelope = doRequest(t, app, http.MethodGet, "/api/admin/status", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	status = dto.AdminStatusResponse{}
	require.NoError(t, json.Unmarshal(envelope.Data, &status))
	assert.False(t, status.IsAdmin)
}

func TestPublicReadsNeedNoSession(t *testing.T) {
	app := newTestRouter()

	for _, path := range []string{
		"/api/events",
		"/api/location-tags",
		"/api/reference-websites",
		"/api/calendar/month",
		"/api/calendar/last-updated",
	} {
		resp, envelope := doRequest(t, app, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.True(t, envelope.Success, path)
	}
}

func TestUnknownBodyFieldRejectedAtBoundary(t *testing.T) {
	app := newTestRouter()

	resp, _ := doRequest(t, app, http.MethodPost, "/api/admin/login",
		fiber.Map{"password": "test-secret", "bogus": true}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
