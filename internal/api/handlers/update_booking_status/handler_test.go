package update_booking_status

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/washify/marketplace-service/internal/api/middleware"
	"github.com/washify/marketplace-service/internal/domain"
	"github.com/washify/marketplace-service/internal/service/bookings"
	"github.com/washify/marketplace-service/pkg/tokens"
)

type stubBookingsService struct {
	booking *domain.Booking
	err     error
	lastReq *bookings.UpdateStatusRequest
}

func (s *stubBookingsService) UpdateStatus(_ context.Context, req *bookings.UpdateStatusRequest) (*domain.Booking, error) {
	s.lastReq = req
	return s.booking, s.err
}

type stubVerifier struct {
	claims *tokens.Claims
}

func (v *stubVerifier) Verify(string) (*tokens.Claims, error) {
	return v.claims, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(service BookingsService, claims *tokens.Claims, bookingID, body string) *httptest.ResponseRecorder {
	handler := NewHandler(service, noopLogger{})
	authenticator := middleware.NewAuthenticator(&stubVerifier{claims: claims}, noopLogger{})

	router := mux.NewRouter()
	router.Handle("/api/bookings/{bookingId}/status",
		authenticator.RequireOperator(http.HandlerFunc(handler.Handle))).Methods(http.MethodPatch)

	r := httptest.NewRequest("PATCH", "/api/bookings/"+bookingID+"/status", bytes.NewReader([]byte(body)))
	r.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)
	return w
}

func operatorClaims() *tokens.Claims {
	return &tokens.Claims{UserID: 5, Role: "OPERATOR"}
}

func TestHandle_StatusUpdated(t *testing.T) {
	service := &stubBookingsService{
		booking: &domain.Booking{ID: 1, UserID: 2, BusinessID: 10, ServiceID: 20, Status: domain.StatusInProgress},
	}

	w := doRequest(service, operatorClaims(), "1", `{"status":"IN_PROGRESS"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"IN_PROGRESS"`)

	require.NotNil(t, service.lastReq)
	assert.Equal(t, int64(1), service.lastReq.BookingID)
	assert.Equal(t, int64(5), service.lastReq.ActorID)
	assert.False(t, service.lastReq.ActorIsAdmin)
}

func TestHandle_AdminFlagPropagated(t *testing.T) {
	service := &stubBookingsService{booking: &domain.Booking{ID: 1, Status: domain.StatusCancelled}}

	w := doRequest(service, &tokens.Claims{UserID: 1, Role: "ADMIN"}, "1", `{"status":"CANCELLED"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, service.lastReq.ActorIsAdmin)
}

func TestHandle_InvalidBookingID(t *testing.T) {
	w := doRequest(&stubBookingsService{}, operatorClaims(), "abc", `{"status":"CANCELLED"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandle_UnknownStatusRejected(t *testing.T) {
	w := doRequest(&stubBookingsService{}, operatorClaims(), "1", `{"status":"DONE"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandle_BookingNotFound(t *testing.T) {
	w := doRequest(&stubBookingsService{err: bookings.ErrBookingNotFound}, operatorClaims(), "1", `{"status":"CANCELLED"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandle_AccessDenied(t *testing.T) {
	w := doRequest(&stubBookingsService{err: bookings.ErrAccessDenied}, operatorClaims(), "1", `{"status":"CANCELLED"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandle_InvalidTransition(t *testing.T) {
	w := doRequest(&stubBookingsService{err: bookings.ErrInvalidTransition}, operatorClaims(), "1", `{"status":"COMPLETED"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), msgInvalidTransition)
}
