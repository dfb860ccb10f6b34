package preview_slot_plan

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	previewSlotPlan "github.com/m04kA/SMC-TurfService/internal/usecase/preview_slot_plan"
	"github.com/m04kA/SMC-TurfService/pkg/logger"
)

func newHandler() *Handler {
	return NewHandler(previewSlotPlan.NewUseCase(4, logger.Nop()), logger.Nop())
}

func TestHandle_Preview(t *testing.T) {
	body := `{
		"turfId": "8d5f2c1e-4b7a-4f0e-9a51-0d3c2b1a9e77",
		"sportId": "1b2c3d4e-5f60-4718-8293-a4b5c6d7e8f9",
		"startDate": "2026-11-01",
		"endDate": "2026-11-30",
		"bufferMinutes": 10,
		"days": [
			{"day": "Monday", "slotDurationMinutes": 60, "price": 800,
			 "timeRanges": [{"startTime": "9:00", "endTime": "11:00"}]},
			{"day": "Tuesday", "slotDurationMinutes": 30, "price": 500,
			 "timeRanges": [{"startTime": "18:00", "endTime": ""}]}
		]
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/slot-plans/preview", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newHandler().Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp PreviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Days, 2)
	monday := resp.Days[0]
	assert.Equal(t, "Monday", monday.Day)
	require.Len(t, monday.Ranges, 1)
	assert.Equal(t, []string{"09:00"}, monday.Ranges[0].Starts)
	require.Len(t, monday.Ranges[0].Slots, 1)
	// последний слот заканчивается на границе интервала
	assert.Equal(t, "11:00", monday.Ranges[0].Slots[0].EndTime)

	// незаполненный интервал не ломает превью
	assert.Equal(t, 0, resp.Days[1].SlotsCount)
	assert.Equal(t, 1, resp.TotalSlots)

	require.Len(t, resp.Schedules, 2)
	assert.Equal(t, "2026-11-01", resp.Schedules[0].StartDate)
	assert.Equal(t, 60, resp.Schedules[0].SlotDuration)
}

func TestHandle_InvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/slot-plans/preview", strings.NewReader(`{"days": 5}`))
	rec := httptest.NewRecorder()
	newHandler().Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_TooManyRanges(t *testing.T) {
	body := `{"days": [{"day": "Monday", "slotDurationMinutes": 30, "timeRanges": [
		{"startTime": "06:00", "endTime": "07:00"},
		{"startTime": "07:00", "endTime": "08:00"},
		{"startTime": "08:00", "endTime": "09:00"},
		{"startTime": "09:00", "endTime": "10:00"},
		{"startTime": "10:00", "endTime": "11:00"}
	]}]}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/slot-plans/preview", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newHandler().Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
