package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrah/lessonhub/internal/app/models"
	"github.com/emrah/lessonhub/internal/app/models/dto"
)

func TestListLessons_AsAdmin(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedUser(t, "admin1", models.RoleAdmin)
	env.lessons.lessons = []models.Lesson{
		{ID: 1, StudentID: 1, InstructorID: 2, LessonDate: "2026-09-01", LessonTime: "14:30", StudentName: "Ana"},
	}

	rec := env.doJSON(t, http.MethodGet, "/api/lessons", nil, env.sessionFor(t, admin))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.LessonsResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Lessons, 1)
	assert.Equal(t, "Ana", resp.Lessons[0].StudentName)
	assert.Equal(t, "2026-09-01", resp.Lessons[0].LessonDate)
}

func TestListLessons_AsInstructorForbidden(t *testing.T) {
	env := newTestEnv(t)
	instructor := env.seedUser(t, "teacher1", models.RoleInstructor)

	rec := env.doJSON(t, http.MethodGet, "/api/lessons", nil, env.sessionFor(t, instructor))
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestCreateLesson_AsAdmin(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedUser(t, "admin1", models.RoleAdmin)

	rec := env.doJSON(t, http.MethodPost, "/api/lessons", dto.CreateLessonRequest{
		StudentID:    1,
		InstructorID: 2,
		LessonDate:   "2026-09-01",
		LessonTime:   "14:30",
		Duration:     45,
		Instrument:   "piano",
	}, env.sessionFor(t, admin))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Lesson added successfully"}`, rec.Body.String())
	require.Len(t, env.lessons.lessons, 1)
}

func TestCreateLesson_AsInstructorForbidden(t *testing.T) {
	env := newTestEnv(t)
	instructor := env.seedUser(t, "teacher1", models.RoleInstructor)

	rec := env.doJSON(t, http.MethodPost, "/api/lessons", dto.CreateLessonRequest{
		StudentID:    1,
		InstructorID: instructor.ID,
		LessonDate:   "2026-09-01",
		LessonTime:   "14:30",
	}, env.sessionFor(t, instructor))

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	assert.Empty(t, env.lessons.lessons, "forbidden request must not create a lesson")
}

func TestListMyLessons_ScopedToSession(t *testing.T) {
	env := newTestEnv(t)
	instructor := env.seedUser(t, "teacher1", models.RoleInstructor)
	other := env.seedUser(t, "teacher2", models.RoleInstructor)
	env.lessons.lessons = []models.Lesson{
		{ID: 1, InstructorID: instructor.ID, StudentName: "Ana"},
		{ID: 2, InstructorID: other.ID, StudentName: "Ben"},
		{ID: 3, InstructorID: instructor.ID, StudentName: "Cem"},
	}

	rec := env.doJSON(t, http.MethodGet, "/api/my-lessons", nil, env.sessionFor(t, instructor))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.LessonsResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Lessons, 2)
	for _, l := range resp.Lessons {
		assert.Equal(t, instructor.ID, l.InstructorID)
	}
}

func TestListMyLessons_AsAdminForbidden(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedUser(t, "admin1", models.RoleAdmin)

	rec := env.doJSON(t, http.MethodGet, "/api/my-lessons", nil, env.sessionFor(t, admin))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateLessonNotes_Owned(t *testing.T) {
	env := newTestEnv(t)
	instructor := env.seedUser(t, "teacher1", models.RoleInstructor)
	env.lessons.lessons = []models.Lesson{
		{ID: 10, InstructorID: instructor.ID, Notes: "old"},
	}

	rec := env.doJSON(t, http.MethodPost, "/api/lesson-notes", dto.UpdateLessonNotesRequest{
		LessonID: 10,
		Notes:    "worked on scales",
	}, env.sessionFor(t, instructor))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Notes updated successfully"}`, rec.Body.String())
	assert.Equal(t, "worked on scales", env.lessons.lessons[0].Notes)
}

func TestUpdateLessonNotes_NotOwned(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "teacher1", models.RoleInstructor)
	other := env.seedUser(t, "teacher2", models.RoleInstructor)
	env.lessons.lessons = []models.Lesson{
		{ID: 10, InstructorID: owner.ID, Notes: "old"},
	}

	rec := env.doJSON(t, http.MethodPost, "/api/lesson-notes", dto.UpdateLessonNotesRequest{
		LessonID: 10,
		Notes:    "should not land",
	}, env.sessionFor(t, other))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Lesson not found or unauthorized"}`, rec.Body.String())
	assert.Equal(t, "old", env.lessons.lessons[0].Notes, "notes must stay unchanged")
}

func TestUpdateLessonNotes_MissingLesson(t *testing.T) {
	env := newTestEnv(t)
	instructor := env.seedUser(t, "teacher1", models.RoleInstructor)

	rec := env.doJSON(t, http.MethodPost, "/api/lesson-notes", dto.UpdateLessonNotesRequest{
		LessonID: 999,
		Notes:    "x",
	}, env.sessionFor(t, instructor))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Lesson not found or unauthorized"}`, rec.Body.String())
}
