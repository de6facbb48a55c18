package signup

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/washify/marketplace-service/internal/domain"
	"github.com/washify/marketplace-service/internal/service/auth"
)

type stubAuthService struct {
	result *auth.AuthResult
	err    error
}

func (s *stubAuthService) Signup(context.Context, *auth.SignupRequest) (*auth.AuthResult, error) {
	return s.result, s.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doSignup(t *testing.T, service AuthService, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	r := httptest.NewRequest("POST", "/api/auth/signup", bytes.NewReader(raw))
	w := httptest.NewRecorder()

	NewHandler(service, noopLogger{}).Handle(w, r)
	return w
}

func TestHandle_Created(t *testing.T) {
	service := &stubAuthService{
		result: &auth.AuthResult{
			User:  &domain.User{ID: 1, Name: "Alice", Email: "alice@example.com", Role: domain.RoleCustomer},
			Token: "jwt-token",
		},
	}

	w := doSignup(t, service, map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp SignupResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, int64(1), resp.User.ID)
	assert.Equal(t, "jwt-token", resp.Token)
}

func TestHandle_ValidationFailure(t *testing.T) {
	w := doSignup(t, &stubAuthService{}, map[string]string{
		"name":     "A",
		"email":    "not-an-email",
		"password": "short",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandle_InvalidJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/auth/signup", bytes.NewReader([]byte("{broken")))
	w := httptest.NewRecorder()

	NewHandler(&stubAuthService{}, noopLogger{}).Handle(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandle_EmailTaken(t *testing.T) {
	w := doSignup(t, &stubAuthService{err: auth.ErrEmailTaken}, map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), msgEmailTaken)
}

func TestHandle_InternalError(t *testing.T) {
	w := doSignup(t, &stubAuthService{err: auth.ErrInternal}, map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
