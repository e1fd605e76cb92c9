package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrah/lessonhub/internal/app/models"
	"github.com/emrah/lessonhub/internal/app/models/dto"
)

func TestListUsers(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedUser(t, "admin1", models.RoleAdmin)
	env.seedUser(t, "teacher1", models.RoleInstructor)

	rec := env.doJSON(t, http.MethodGet, "/api/users", nil, env.sessionFor(t, admin))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.UsersResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Users, 2)
	assert.NotContains(t, rec.Body.String(), testPasswordHash(t), "password hashes must not leave the server")
}

func TestListUsers_RequiresSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodGet, "/api/users", nil, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Authentication required"}`, rec.Body.String())
}

func TestCreateUser_AsAdmin(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedUser(t, "admin1", models.RoleAdmin)

	rec := env.doJSON(t, http.MethodPost, "/api/users", dto.CreateUserRequest{
		Username: "teacher2",
		Password: "newpassword",
		Role:     "instructor",
	}, env.sessionFor(t, admin))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"User added successfully"}`, rec.Body.String())
	require.Len(t, env.users.users, 2)
	assert.Equal(t, "teacher2", env.users.users[1].Username)
}

func TestCreateUser_AsInstructorForbidden(t *testing.T) {
	env := newTestEnv(t)
	instructor := env.seedUser(t, "teacher1", models.RoleInstructor)

	rec := env.doJSON(t, http.MethodPost, "/api/users", dto.CreateUserRequest{
		Username: "intruder",
		Password: "pw",
		Role:     "admin",
	}, env.sessionFor(t, instructor))

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	assert.Len(t, env.users.users, 1, "forbidden request must not reach the store")
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedUser(t, "admin1", models.RoleAdmin)

	rec := env.doJSON(t, http.MethodPost, "/api/users", dto.CreateUserRequest{
		Username: "admin1",
		Password: "pw",
		Role:     "instructor",
	}, env.sessionFor(t, admin))

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"Username already exists"}`, rec.Body.String())
}
