package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrah/lessonhub/internal/app/models"
	"github.com/emrah/lessonhub/internal/app/models/dto"
)

func TestCreateAvailability_ExpandsDays(t *testing.T) {
	env := newTestEnv(t)
	instructor := env.seedUser(t, "teacher1", models.RoleInstructor)

	rec := env.doJSON(t, http.MethodPost, "/api/availability", dto.CreateAvailabilityRequest{
		DaysOfWeek: []string{"Monday", "Wednesday", "Friday"},
		StartTime:  "09:00",
		EndTime:    "17:00",
	}, env.sessionFor(t, instructor))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Availability added successfully"}`, rec.Body.String())

	require.Len(t, env.availability.entries, 3, "one row per submitted weekday")
	for _, e := range env.availability.entries {
		assert.Equal(t, instructor.ID, e.InstructorID, "rows belong to the session user")
		assert.Equal(t, "09:00", e.StartTime)
		assert.Equal(t, "17:00", e.EndTime)
	}
}

func TestCreateAvailability_AsAdminForbidden(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedUser(t, "admin1", models.RoleAdmin)

	rec := env.doJSON(t, http.MethodPost, "/api/availability", dto.CreateAvailabilityRequest{
		DaysOfWeek: []string{"Monday"},
		StartTime:  "09:00",
		EndTime:    "17:00",
	}, env.sessionFor(t, admin))

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	assert.Empty(t, env.availability.entries)
}

func TestCreateAvailability_EmptyDays(t *testing.T) {
	env := newTestEnv(t)
	instructor := env.seedUser(t, "teacher1", models.RoleInstructor)

	rec := env.doJSON(t, http.MethodPost, "/api/availability", dto.CreateAvailabilityRequest{
		StartTime: "09:00",
		EndTime:   "17:00",
	}, env.sessionFor(t, instructor))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, env.availability.entries)
}

func TestListAvailability_OwnRowsOnly(t *testing.T) {
	env := newTestEnv(t)
	instructor := env.seedUser(t, "teacher1", models.RoleInstructor)
	other := env.seedUser(t, "teacher2", models.RoleInstructor)
	env.availability.entries = []models.Availability{
		{ID: 1, InstructorID: instructor.ID, DayOfWeek: "Monday", StartTime: "09:00", EndTime: "12:00"},
		{ID: 2, InstructorID: other.ID, DayOfWeek: "Tuesday", StartTime: "10:00", EndTime: "14:00"},
	}

	rec := env.doJSON(t, http.MethodGet, "/api/availability", nil, env.sessionFor(t, instructor))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.AvailabilityResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Availability, 1)
	assert.Equal(t, "Monday", resp.Availability[0].DayOfWeek)
}
