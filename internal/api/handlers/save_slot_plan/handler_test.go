package save_slot_plan

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurfService/internal/api/middleware"
	"github.com/m04kA/SMC-TurfService/internal/domain"
	saveSlotPlan "github.com/m04kA/SMC-TurfService/internal/usecase/save_slot_plan"
	"github.com/m04kA/SMC-TurfService/pkg/logger"
)

type fakeUseCase struct {
	got  *saveSlotPlan.Request
	resp *saveSlotPlan.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *saveSlotPlan.Request) (*saveSlotPlan.Response, error) {
	f.got = req
	return f.resp, f.err
}

const body = `{
	"turfId": "8d5f2c1e-4b7a-4f0e-9a51-0d3c2b1a9e77",
	"sportId": "1b2c3d4e-5f60-4718-8293-a4b5c6d7e8f9",
	"startDate": "2026-11-01",
	"endDate": "2026-11-30",
	"bufferMinutes": 10,
	"days": [{"day": "Monday", "slotDurationMinutes": 60, "price": 800,
		"timeRanges": [{"startTime": "09:00", "endTime": "11:00"}]}]
}`

func serve(t *testing.T, uc *fakeUseCase, withOwner bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/slot-plans", strings.NewReader(body))
	if withOwner {
		req = req.WithContext(middleware.WithOwnerID(req.Context(), uuid.MustParse("f4a1c2d3-0000-4000-8000-000000000001")))
	}
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandle_Saved(t *testing.T) {
	scheduleID := uuid.New()
	uc := &fakeUseCase{resp: &saveSlotPlan.Response{
		TurfID:         uuid.MustParse("8d5f2c1e-4b7a-4f0e-9a51-0d3c2b1a9e77"),
		SavedSchedules: 1,
		SavedSlots:     1,
		Days: []saveSlotPlan.DayResult{{
			Day:    domain.Monday,
			Status: saveSlotPlan.DayStatusSaved,
			Ranges: []saveSlotPlan.RangeResult{{
				StartTime: "09:00", EndTime: "11:00",
				Status: saveSlotPlan.StatusSaved, ScheduleID: &scheduleID, SlotsCount: 1,
			}},
		}},
	}}

	rec := serve(t, uc, true)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.got)
	assert.Equal(t, "f4a1c2d3-0000-4000-8000-000000000001", uc.got.OwnerID.String())
	assert.Equal(t, 10, uc.got.Config.BufferMinutes)
	require.Len(t, uc.got.Config.Days, 1)
	assert.Equal(t, domain.Monday, uc.got.Config.Days[0].Day)

	var resp SavePlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Days, 1)
	require.NotNil(t, resp.Days[0].Ranges[0].ScheduleID)
	assert.Equal(t, scheduleID.String(), *resp.Days[0].Ranges[0].ScheduleID)
}

func TestHandle_PartialFailure(t *testing.T) {
	uc := &fakeUseCase{resp: &saveSlotPlan.Response{FailedRanges: 1, SavedSchedules: 2}}

	rec := serve(t, uc, true)
	assert.Equal(t, http.StatusMultiStatus, rec.Code)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid", err: saveSlotPlan.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "turf not found", err: saveSlotPlan.ErrTurfNotFound, want: http.StatusNotFound},
		{name: "sport not found", err: saveSlotPlan.ErrSportNotFound, want: http.StatusNotFound},
		{name: "forbidden", err: saveSlotPlan.ErrAccessDenied, want: http.StatusForbidden},
		{name: "internal", err: saveSlotPlan.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeUseCase{err: tt.err}, true)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandle_MissingOwner(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(t, uc, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.got)
}
