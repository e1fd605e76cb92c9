package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/emrah/lessonhub/internal/app/controllers"
	"github.com/emrah/lessonhub/internal/app/models"
	"github.com/emrah/lessonhub/internal/app/routes"
	"github.com/emrah/lessonhub/internal/app/services"
	"github.com/emrah/lessonhub/internal/middleware"
	"github.com/emrah/lessonhub/internal/pkg/apperrors"
	"github.com/emrah/lessonhub/internal/pkg/auth"
	"github.com/emrah/lessonhub/internal/pkg/session"
)

// testPassword is shared by every seeded user; its hash is computed once
// because bcrypt at the production cost is slow.
const testPassword = "password123"

var (
	testHashOnce sync.Once
	testHash     string
)

func testPasswordHash(t *testing.T) string {
	t.Helper()
	testHashOnce.Do(func() {
		h, err := auth.HashPassword(testPassword)
		if err != nil {
			t.Fatalf("hashing test password: %v", err)
		}
		testHash = h
	})
	return testHash
}

// In-memory stores backing the real service implementations, so handler
// tests exercise everything above the database.

type stubUserStore struct {
	users []models.User
}

func (s *stubUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			copied := u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *stubUserStore) GetAll(_ context.Context) ([]models.User, error) {
	out := make([]models.User, len(s.users))
	for i, u := range s.users {
		u.Password = ""
		out[i] = u
	}
	return out, nil
}

func (s *stubUserStore) Create(_ context.Context, user *models.User) error {
	for _, u := range s.users {
		if u.Username == user.Username {
			return apperrors.ErrUsernameExists
		}
	}
	user.ID = int64(len(s.users) + 1)
	s.users = append(s.users, *user)
	return nil
}

type stubStudentStore struct {
	students []models.Student
}

func (s *stubStudentStore) GetAll(_ context.Context) ([]models.Student, error) {
	return s.students, nil
}

func (s *stubStudentStore) Create(_ context.Context, student *models.Student) error {
	student.ID = int64(len(s.students) + 1)
	s.students = append(s.students, *student)
	return nil
}

type stubLessonStore struct {
	lessons []models.Lesson
}

func (s *stubLessonStore) GetAll(_ context.Context) ([]models.Lesson, error) {
	return s.lessons, nil
}

func (s *stubLessonStore) GetByInstructor(_ context.Context, instructorID int64) ([]models.Lesson, error) {
	var out []models.Lesson
	for _, l := range s.lessons {
		if l.InstructorID == instructorID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *stubLessonStore) Create(_ context.Context, lesson *models.Lesson) error {
	lesson.ID = int64(len(s.lessons) + 1)
	s.lessons = append(s.lessons, *lesson)
	return nil
}

func (s *stubLessonStore) UpdateNotes(_ context.Context, lessonID, instructorID int64, notes string) (int64, error) {
	for i, l := range s.lessons {
		if l.ID == lessonID && l.InstructorID == instructorID {
			s.lessons[i].Notes = notes
			return 1, nil
		}
	}
	return 0, nil
}

type stubAvailabilityStore struct {
	entries []models.Availability
}

func (s *stubAvailabilityStore) GetByInstructor(_ context.Context, instructorID int64) ([]models.Availability, error) {
	var out []models.Availability
	for _, e := range s.entries {
		if e.InstructorID == instructorID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubAvailabilityStore) CreateBatch(_ context.Context, entries []*models.Availability) error {
	for _, e := range entries {
		e.ID = int64(len(s.entries) + 1)
		s.entries = append(s.entries, *e)
	}
	return nil
}

type stubTimeOffStore struct {
	entries []models.TimeOff
}

func (s *stubTimeOffStore) GetByInstructor(_ context.Context, instructorID int64) ([]models.TimeOff, error) {
	var out []models.TimeOff
	for _, e := range s.entries {
		if e.InstructorID == instructorID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubTimeOffStore) Create(_ context.Context, entry *models.TimeOff) error {
	entry.ID = int64(len(s.entries) + 1)
	s.entries = append(s.entries, *entry)
	return nil
}

type stubInstrumentStore struct {
	entries []models.InstructorInstrument
}

func (s *stubInstrumentStore) GetByInstructor(_ context.Context, instructorID int64) ([]models.InstructorInstrument, error) {
	var out []models.InstructorInstrument
	for _, e := range s.entries {
		if e.InstructorID == instructorID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubInstrumentStore) Create(_ context.Context, entry *models.InstructorInstrument) error {
	entry.ID = int64(len(s.entries) + 1)
	s.entries = append(s.entries, *entry)
	return nil
}

// testEnv wires real controllers, services and middleware over the stub
// stores, mirroring the production router.
type testEnv struct {
	router   *gin.Engine
	sessions *session.MemoryStore
	codec    *auth.SessionTokenCodec

	users        *stubUserStore
	students     *stubStudentStore
	lessons      *stubLessonStore
	availability *stubAvailabilityStore
	timeOff      *stubTimeOffStore
	instruments  *stubInstrumentStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		sessions:     session.NewMemoryStore(time.Hour),
		codec:        auth.NewSessionTokenCodec("test-secret", "lessonhub-test"),
		users:        &stubUserStore{},
		students:     &stubStudentStore{},
		lessons:      &stubLessonStore{},
		availability: &stubAvailabilityStore{},
		timeOff:      &stubTimeOffStore{},
		instruments:  &stubInstrumentStore{},
	}
	t.Cleanup(env.sessions.Close)

	authService := services.NewAuthService(env.users)
	userService := services.NewUserService(env.users)
	studentService := services.NewStudentService(env.students)
	lessonService := services.NewLessonService(env.lessons)
	availabilityService := services.NewAvailabilityService(env.availability)
	timeOffService := services.NewTimeOffService(env.timeOff)
	instrumentService := services.NewInstrumentService(env.instruments)

	env.router = gin.New()
	routes.SetupRouter(
		env.router,
		controllers.NewAuthController(authService, env.sessions, env.codec, zerolog.Nop()),
		controllers.NewUserController(userService),
		controllers.NewStudentController(studentService),
		controllers.NewLessonController(lessonService),
		controllers.NewAvailabilityController(availabilityService),
		controllers.NewTimeOffController(timeOffService),
		controllers.NewInstrumentController(instrumentService),
		middleware.NewAuthMiddleware(env.codec, env.sessions),
	)

	return env
}

// seedUser stores a user whose password is testPassword.
func (e *testEnv) seedUser(t *testing.T, username string, role models.Role) *models.User {
	t.Helper()
	user := models.User{
		ID:       int64(len(e.users.users) + 1),
		Username: username,
		Password: testPasswordHash(t),
		Role:     role,
	}
	e.users.users = append(e.users.users, user)
	return &user
}

// sessionFor creates a live session for user and returns the signed cookie.
func (e *testEnv) sessionFor(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()
	sess, err := e.sessions.Create(user.ID, user.Username, string(user.Role))
	require.NoError(t, err)

	token, err := e.codec.Encode(sess.ID, sess.ExpiresAt)
	require.NoError(t, err)

	return &http.Cookie{Name: auth.SessionCookieName, Value: token}
}

// doJSON performs a request against the router, optionally with a body
// and a session cookie.
func (e *testEnv) doJSON(t *testing.T, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals the recorded response body into target.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
}

// sessionCookie extracts the session cookie from a response, failing the
// test when it is absent.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.SessionCookieName {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}
