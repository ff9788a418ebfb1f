package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"caresmv/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventList(t *testing.T) {
	env := newTestEnv(t)

	env.events.publicEventsFn = func(ctx context.Context) ([]*types.EventWithCreator, error) {
		return []*types.EventWithCreator{
			{
				Event: types.Event{
					ID:        "e1",
					Title:     "Community Food Distribution",
					StartDate: time.Date(2024, time.December, 15, 9, 0, 0, 0, time.UTC),
					Category:  types.EventCategoryFoodDistribution,
					IsPublic:  true,
					IsActive:  true,
				},
				CreatedBy: &types.UserSummary{FirstName: "Admin", LastName: "User", Email: "john@doe.com"},
			},
		}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()

	env.service.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Events []*types.EventWithCreator `json:"events"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "Community Food Distribution", resp.Events[0].Title)
	require.NotNil(t, resp.Events[0].CreatedBy)
	assert.Equal(t, "john@doe.com", resp.Events[0].CreatedBy.Email)
}

func TestEventCreate(t *testing.T) {
	env := newTestEnv(t)

	var created *types.Event
	env.events.createFn = func(ctx context.Context, event *types.Event) error {
		event.ID = "e1"
		event.CreatedAt = time.Now()
		created = event
		return nil
	}

	body := `{
		"title": "  New Volunteer Orientation ",
		"startDate": "2024-12-10T18:00:00",
		"endDate": "2024-12-10T19:30:00",
		"category": "VOLUNTEER_TRAINING",
		"maxVolunteers": 25,
		"createdById": "admin-id"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body))
	rec := httptest.NewRecorder()

	env.service.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, created)
	assert.Equal(t, "New Volunteer Orientation", created.Title)
	assert.Equal(t, time.Date(2024, time.December, 10, 18, 0, 0, 0, time.UTC), created.StartDate)
	require.NotNil(t, created.EndDate)
	assert.Equal(t, types.EventCategoryVolunteerTraining, created.Category)
	require.NotNil(t, created.MaxVolunteers)
	assert.Equal(t, 25, *created.MaxVolunteers)

	var resp struct {
		Message string       `json:"message"`
		Event   *types.Event `json:"event"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Event created successfully", resp.Message)
	assert.Equal(t, "e1", resp.Event.ID)
}

func TestEventCreateMissingFields(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(`{"title":"Orientation"}`))
	rec := httptest.NewRecorder()

	env.service.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Title, start date, and creator ID are required"}`, rec.Body.String())
}

func TestEventCreateBadStartDate(t *testing.T) {
	env := newTestEnv(t)

	body := `{"title":"Orientation","startDate":"next tuesday","createdById":"admin-id"}`
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body))
	rec := httptest.NewRecorder()

	env.service.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Start date is not a valid date"}`, rec.Body.String())
}

func TestEventCreateIgnoresNonPositiveMaxVolunteers(t *testing.T) {
	env := newTestEnv(t)

	var created *types.Event
	env.events.createFn = func(ctx context.Context, event *types.Event) error {
		created = event
		return nil
	}

	body := `{"title":"Orientation","startDate":"2024-12-10","maxVolunteers":0,"createdById":"admin-id"}`
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body))
	rec := httptest.NewRecorder()

	env.service.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, created)
	assert.Nil(t, created.MaxVolunteers)
}

func TestParseEventDate(t *testing.T) {
	cases := []struct {
		value string
		want  time.Time
	}{
		{"2024-12-15T09:00:00Z", time.Date(2024, time.December, 15, 9, 0, 0, 0, time.UTC)},
		{"2024-12-15T09:00:00", time.Date(2024, time.December, 15, 9, 0, 0, 0, time.UTC)},
		{"2024-12-15", time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		parsed, err := parseEventDate(tc.value)
		require.NoError(t, err, tc.value)
		assert.True(t, parsed.Equal(tc.want), tc.value)
	}

	_, err := parseEventDate("12/15/2024")
	require.Error(t, err)
}
