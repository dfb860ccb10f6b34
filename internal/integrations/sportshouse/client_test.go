package sportshouse

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSchedule() *domain.SlotSchedule {
	return &domain.SlotSchedule{
		ID:                  uuid.New(),
		TurfID:              uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		SportID:             uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		Day:                 domain.Monday,
		StartDate:           time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		EndDate:             time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC),
		StartTime:           "09:00",
		EndTime:             "11:00",
		SlotDurationMinutes: 60,
		Price:               500,
		Slots: []domain.GeneratedSlot{
			{StartTime: "09:00", EndTime: "10:10"},
			{StartTime: "10:10", EndTime: "11:00"},
		},
	}
}

func TestClient_PushSchedule(t *testing.T) {
	var received SchedulePayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/slots/save", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", time.Second, nopLogger{})
	require.NoError(t, client.PushSchedule(context.Background(), testSchedule()))

	assert.Equal(t, "11111111-1111-1111-1111-111111111111", received.TurfID)
	assert.Equal(t, "Monday", received.Day)
	assert.Equal(t, "2026-11-01", received.StartDate)
	assert.Equal(t, "2026-11-30", received.EndDate)
	assert.Equal(t, 60, received.SlotDuration)
	assert.Equal(t, []SlotPayload{
		{StartTime: "09:00", EndTime: "10:10"},
		{StartTime: "10:10", EndTime: "11:00"},
	}, received.Slots)
}

func TestClient_PushSchedule_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "rejected with message", status: http.StatusBadRequest, body: `{"code":400,"message":"overlap"}`, wantErr: ErrRejected},
		{name: "rejected without body", status: http.StatusConflict, wantErr: ErrRejected},
		{name: "server error", status: http.StatusBadGateway, body: "bad gateway", wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := NewClient(srv.URL, time.Second, nopLogger{}).PushSchedule(context.Background(), testSchedule())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_PushScheduleWithGracefulDegradation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	srv.Close()

	err := NewClient(srv.URL, 100*time.Millisecond, nopLogger{}).
		PushScheduleWithGracefulDegradation(context.Background(), testSchedule())
	assert.ErrorIs(t, err, ErrServiceDegraded)
}
