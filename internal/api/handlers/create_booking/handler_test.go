package create_booking

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	accessStorage "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/access"
	bookingStorage "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/booking"
	bookRoom "github.com/m04kA/SMC-ScheduleService/internal/usecase/book_room"
)

type stubTimeProvider struct {
	now time.Time
}

func (p *stubTimeProvider) Now() time.Time { return p.now }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestHandler(t *testing.T) (*Handler, *accessStorage.Repository) {
	t.Helper()
	access := accessStorage.NewRepository(nil)
	clock := &stubTimeProvider{now: time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)}
	uc := bookRoom.NewUseCase(bookingStorage.NewRepository(), access, clock, noopLogger{})
	return NewHandler(uc, nil, noopLogger{}), access
}

func doRequest(h *Handler, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set(middleware.HeaderUserID, userID)
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandleCreated(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(h, "1", `{"date":"2024-06-10","startTime":"09:00","durationMinutes":60}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "2024-06-10", resp.Date)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "10:00", resp.EndTime)
	assert.Equal(t, int64(1), resp.OwnerID)
}

func TestHandleConflict(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(h, "1", `{"date":"2024-06-10","startTime":"09:00","durationMinutes":60}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(h, "2", `{"date":"2024-06-10","startTime":"09:30","durationMinutes":30}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleRestrictedUser(t *testing.T) {
	h, access := newTestHandler(t)
	access.Restrict(1)

	rec := doRequest(h, "1", `{"date":"2024-06-10","startTime":"09:00","durationMinutes":60}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandleBadRequests(t *testing.T) {
	h, _ := newTestHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"date":`},
		{"unknown field", `{"date":"2024-06-10","startTime":"09:00","durationMinutes":60,"extra":1}`},
		{"bad date format", `{"date":"10.06.2024","startTime":"09:00","durationMinutes":60}`},
		{"bad time format", `{"date":"2024-06-10","startTime":"9am","durationMinutes":60}`},
		{"bad duration", `{"date":"2024-06-10","startTime":"09:00","durationMinutes":45}`},
		{"past date", `{"date":"2024-06-09","startTime":"09:00","durationMinutes":60}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(h, "1", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
