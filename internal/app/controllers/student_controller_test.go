package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrah/lessonhub/internal/app/models"
	"github.com/emrah/lessonhub/internal/app/models/dto"
)

func TestListStudents_AnySession(t *testing.T) {
	env := newTestEnv(t)
	instructor := env.seedUser(t, "teacher1", models.RoleInstructor)
	env.students.students = []models.Student{
		{ID: 1, Name: "Ana", Email: "ana@example.com", Instrument: "piano"},
	}

	rec := env.doJSON(t, http.MethodGet, "/api/students", nil, env.sessionFor(t, instructor))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.StudentsResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Students, 1)
	assert.Equal(t, "Ana", resp.Students[0].Name)
}

func TestCreateStudent_AsAdmin(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedUser(t, "admin1", models.RoleAdmin)

	rec := env.doJSON(t, http.MethodPost, "/api/students", dto.CreateStudentRequest{
		Name:       "Ben",
		Email:      "ben@example.com",
		Phone:      "555-0101",
		Instrument: "violin",
	}, env.sessionFor(t, admin))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Student added successfully"}`, rec.Body.String())
	require.Len(t, env.students.students, 1)
	assert.Equal(t, "Ben", env.students.students[0].Name)
}

func TestCreateStudent_AsInstructorForbidden(t *testing.T) {
	env := newTestEnv(t)
	instructor := env.seedUser(t, "teacher1", models.RoleInstructor)

	rec := env.doJSON(t, http.MethodPost, "/api/students", dto.CreateStudentRequest{
		Name: "Ben",
	}, env.sessionFor(t, instructor))

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	assert.Empty(t, env.students.students)
}

func TestCreateStudent_MissingName(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedUser(t, "admin1", models.RoleAdmin)

	rec := env.doJSON(t, http.MethodPost, "/api/students", dto.CreateStudentRequest{
		Email: "anon@example.com",
	}, env.sessionFor(t, admin))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, env.students.students)
}
