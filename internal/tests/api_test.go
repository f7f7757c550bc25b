package tests

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/edukit/coursehub/internal/adapters/web"
	"github.com/edukit/coursehub/internal/core/domain"
)

// MockCourseService helper for tests
type MockCourseService struct {
	mock.Mock
}

func (m *MockCourseService) Create(ctx context.Context, in domain.CreateCourseInput) (*domain.Course, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *MockCourseService) List(ctx context.Context) ([]domain.CourseSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CourseSummary), args.Error(1)
}

func (m *MockCourseService) Export(ctx context.Context) ([]domain.CourseSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CourseSummary), args.Error(1)
}

func (m *MockCourseService) Get(ctx context.Context, id string) (*domain.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *MockCourseService) Update(ctx context.Context, id string, in domain.UpdateCourseInput) (*domain.Course, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *MockCourseService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAuditService helper for tests
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Log(ctx context.Context, action domain.AuditAction, target, details string) error {
	args := m.Called(ctx, action, target, details)
	return args.Error(0)
}

func (m *MockAuditService) GetLogs(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLog), args.Error(1)
}

type apiFixture struct {
	auth    *MockAuthService
	courses *MockCourseService
	audit   *MockAuditService
	handler http.Handler
}

func newAPIFixture(t *testing.T) *apiFixture {
	auth := &MockAuthService{}
	courses := &MockCourseService{}
	audit := &MockAuditService{}
	server := web.NewServer(":0", auth, courses, audit)
	t.Cleanup(server.Close)
	return &apiFixture{
		auth:    auth,
		courses: courses,
		audit:   audit,
		handler: web.SetupRoutes(server),
	}
}

func (f *apiFixture) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	return w
}

// actorToken wires the mock so that the given token resolves to the given user.
func (f *apiFixture) actorToken(token string, user *domain.User) {
	f.auth.On("Authenticate", mock.Anything, token).Return(user, nil)
}

func TestRootGreeting(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do("GET", "/", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello World!", w.Body.String())
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("Returns 201 with access token", func(t *testing.T) {
		f := newAPIFixture(t)
		f.auth.On("Register", mock.Anything, domain.RegisterInput{
			Fname: "Ada", Lname: "Lovelace", Email: "ada@edu.local", Password: "s3cret-pass",
		}).Return("signed.jwt.token", nil).Once()

		w := f.do("POST", "/api/v1/auth/register",
			`{"fname":"Ada","lname":"Lovelace","email":"ada@edu.local","password":"s3cret-pass"}`, "")

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp domain.TokenResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "signed.jwt.token", resp.AccessToken)
		f.auth.AssertExpectations(t)
	})

	t.Run("Duplicate email yields 409", func(t *testing.T) {
		f := newAPIFixture(t)
		f.auth.On("Register", mock.Anything, mock.Anything).Return("", domain.ErrEmailTaken).Once()

		w := f.do("POST", "/api/v1/auth/register",
			`{"fname":"Ada","lname":"Lovelace","email":"ada@edu.local","password":"s3cret-pass"}`, "")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "User already exists")
	})

	t.Run("Validation failure yields 400 with field details", func(t *testing.T) {
		f := newAPIFixture(t)
		f.auth.On("Register", mock.Anything, mock.Anything).Return("", &domain.ValidationError{
			Fields: []domain.FieldError{{Field: "email", Message: "must be a valid email address"}},
		}).Once()

		w := f.do("POST", "/api/v1/auth/register",
			`{"fname":"Ada","lname":"Lovelace","email":"not-an-email","password":"s3cret-pass"}`, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "email")
	})

	t.Run("Malformed JSON yields 400", func(t *testing.T) {
		f := newAPIFixture(t)

		w := f.do("POST", "/api/v1/auth/register", `{"fname":`, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		f.auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("Returns 200 with access token", func(t *testing.T) {
		f := newAPIFixture(t)
		f.auth.On("Login", mock.Anything, domain.Credentials{
			Email: "ada@edu.local", Password: "s3cret-pass",
		}).Return("signed.jwt.token", nil).Once()

		w := f.do("POST", "/api/v1/auth/login", `{"email":"ada@edu.local","password":"s3cret-pass"}`, "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "signed.jwt.token")
	})

	t.Run("Bad credentials yield 401", func(t *testing.T) {
		f := newAPIFixture(t)
		f.auth.On("Login", mock.Anything, mock.Anything).Return("", domain.ErrInvalidCredentials).Once()

		w := f.do("POST", "/api/v1/auth/login", `{"email":"ada@edu.local","password":"wrong"}`, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	})

	t.Run("Store outage yields 500, not 401", func(t *testing.T) {
		f := newAPIFixture(t)
		f.auth.On("Login", mock.Anything, mock.Anything).
			Return("", errors.New("failed to look up user: driver: connection refused")).Once()

		w := f.do("POST", "/api/v1/auth/login", `{"email":"ada@edu.local","password":"s3cret-pass"}`, "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal server error")
		assert.NotContains(t, w.Body.String(), "Invalid credentials")
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestAuthRateLimit(t *testing.T) {
	f := newAPIFixture(t)
	f.auth.On("Login", mock.Anything, mock.Anything).Return("", domain.ErrInvalidCredentials)

	var last int
	for i := 0; i < 6; i++ {
		req := httptest.NewRequest("POST", "/api/v1/auth/login",
			strings.NewReader(`{"email":"ada@edu.local","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "10.9.8.7:40000"
		w := httptest.NewRecorder()
		f.handler.ServeHTTP(w, req)
		last = w.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestCourseEndpoints(t *testing.T) {
	owner := &domain.User{ID: "u-1", Fname: "Ada", Lname: "Lovelace", Email: "ada@edu.local", Role: domain.RoleInstructor}

	t.Run("Rejects unauthenticated access", func(t *testing.T) {
		f := newAPIFixture(t)

		w := f.do("GET", "/api/v1/courses", "", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "no token provided")
		f.courses.AssertNotCalled(t, "List", mock.Anything)
	})

	t.Run("Create returns 201 with the stored course", func(t *testing.T) {
		f := newAPIFixture(t)
		f.actorToken("tok", owner)
		in := domain.CreateCourseInput{
			Name: "Compilers", Description: "Lexing to codegen", Duration: 40,
			CreatedBy: owner.ID, UpdatedBy: owner.ID,
		}
		f.courses.On("Create", mock.Anything, in).Return(&domain.Course{
			ID: "c-1", Name: in.Name, Description: in.Description, Duration: in.Duration,
			CreatedBy: owner.ID, UpdatedBy: owner.ID,
		}, nil).Once()

		body := fmt.Sprintf(`{"name":"Compilers","description":"Lexing to codegen","duration":40,"createdBy":%q,"updatedBy":%q}`, owner.ID, owner.ID)
		w := f.do("POST", "/api/v1/courses", body, "tok")

		assert.Equal(t, http.StatusCreated, w.Code)

		var got domain.Course
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "c-1", got.ID)
		assert.Equal(t, owner.ID, got.CreatedBy)
		f.courses.AssertExpectations(t)
	})

	t.Run("Create with unknown owner yields 404", func(t *testing.T) {
		f := newAPIFixture(t)
		f.actorToken("tok", owner)
		f.courses.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrUserNotFound).Once()

		body := `{"name":"Compilers","description":"Lexing to codegen","duration":40,"createdBy":"ghost","updatedBy":"ghost"}`
		w := f.do("POST", "/api/v1/courses", body, "tok")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "User not found")
	})

	t.Run("Duplicate name yields 409", func(t *testing.T) {
		f := newAPIFixture(t)
		f.actorToken("tok", owner)
		f.courses.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrCourseNameTaken).Once()

		body := fmt.Sprintf(`{"name":"Compilers","description":"again","duration":10,"createdBy":%q,"updatedBy":%q}`, owner.ID, owner.ID)
		w := f.do("POST", "/api/v1/courses", body, "tok")

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("List joins creator identity and hides audit references", func(t *testing.T) {
		f := newAPIFixture(t)
		f.actorToken("tok", owner)
		f.courses.On("List", mock.Anything).Return([]domain.CourseSummary{{
			ID: "c-1", Name: "Compilers", Duration: 40,
			Creator: domain.CreatorIdentity{ID: owner.ID, Fname: "Ada", Lname: "Lovelace", Email: "ada@edu.local", Role: domain.RoleInstructor},
		}}, nil).Once()

		w := f.do("GET", "/api/v1/courses", "", "tok")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"createdByUser"`)
		assert.NotContains(t, w.Body.String(), `"createdBy":`)
	})

	t.Run("Get missing course yields 404", func(t *testing.T) {
		f := newAPIFixture(t)
		f.actorToken("tok", owner)
		f.courses.On("Get", mock.Anything, "c-404").Return(nil, domain.ErrCourseNotFound).Once()

		w := f.do("GET", "/api/v1/courses/c-404", "", "tok")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Patch applies a partial update", func(t *testing.T) {
		f := newAPIFixture(t)
		f.actorToken("tok", owner)
		newName := "Compilers II"
		f.courses.On("Update", mock.Anything, "c-1", domain.UpdateCourseInput{Name: &newName}).Return(&domain.Course{
			ID: "c-1", Name: newName, Duration: 40, CreatedBy: owner.ID, UpdatedBy: owner.ID,
		}, nil).Once()

		w := f.do("PATCH", "/api/v1/courses/c-1", `{"name":"Compilers II"}`, "tok")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Compilers II")
		f.courses.AssertExpectations(t)
	})

	t.Run("Delete reports success even for a missing course", func(t *testing.T) {
		f := newAPIFixture(t)
		f.actorToken("tok", owner)
		f.courses.On("Delete", mock.Anything, "c-1").Return(nil).Once()

		w := f.do("DELETE", "/api/v1/courses/c-1", "", "tok")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Course deleted successfully")
	})
}

func TestAuditLogEndpoint(t *testing.T) {
	t.Run("Admin can read the trail", func(t *testing.T) {
		f := newAPIFixture(t)
		f.actorToken("admin-tok", &domain.User{ID: "a-1", Role: domain.RoleAdmin})
		f.audit.On("GetLogs", mock.Anything, 100).Return([]domain.AuditLog{
			{ID: 1, Action: domain.ActionLogin, Actor: "admin@edu.local"},
		}, nil).Once()

		w := f.do("GET", "/api/v1/audit-logs", "", "admin-tok")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"logs"`)
		f.audit.AssertExpectations(t)
	})

	t.Run("Respects the limit query parameter", func(t *testing.T) {
		f := newAPIFixture(t)
		f.actorToken("admin-tok", &domain.User{ID: "a-1", Role: domain.RoleAdmin})
		f.audit.On("GetLogs", mock.Anything, 5).Return([]domain.AuditLog{}, nil).Once()

		w := f.do("GET", "/api/v1/audit-logs?limit=5", "", "admin-tok")

		assert.Equal(t, http.StatusOK, w.Code)
		f.audit.AssertExpectations(t)
	})

	t.Run("Students are denied", func(t *testing.T) {
		f := newAPIFixture(t)
		f.actorToken("student-tok", &domain.User{ID: "s-1", Role: domain.RoleStudent})

		w := f.do("GET", "/api/v1/audit-logs", "", "student-tok")

		assert.Equal(t, http.StatusForbidden, w.Code)
		f.audit.AssertNotCalled(t, "GetLogs", mock.Anything, mock.Anything)
	})
}

func TestMeEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	f.actorToken("tok", &domain.User{ID: "u-1", Email: "ada@edu.local", Role: domain.RoleStudent})

	w := f.do("GET", "/api/v1/me", "", "tok")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ada@edu.local")
	assert.NotContains(t, w.Body.String(), "PasswordHash")
}

func TestExportEndpoint(t *testing.T) {
	summaries := []domain.CourseSummary{{
		ID: "c-1", Name: "Compilers", Duration: 40,
		Creator: domain.CreatorIdentity{ID: "u-1", Email: "ada@edu.local"},
	}}

	t.Run("CSV attachment", func(t *testing.T) {
		f := newAPIFixture(t)
		f.actorToken("tok", &domain.User{ID: "u-1", Role: domain.RoleInstructor})
		f.courses.On("Export", mock.Anything).Return(summaries, nil).Once()

		w := f.do("GET", "/api/v1/courses/export?format=csv", "", "tok")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "courses.csv")
		assert.Contains(t, w.Body.String(), "Compilers")
	})

	t.Run("JSON is the default format", func(t *testing.T) {
		f := newAPIFixture(t)
		f.actorToken("tok", &domain.User{ID: "u-1", Role: domain.RoleInstructor})
		f.courses.On("Export", mock.Anything).Return(summaries, nil).Once()

		w := f.do("GET", "/api/v1/courses/export", "", "tok")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "courses.json")
	})
}
