package copy_day_plan

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	copyDayPlan "github.com/m04kA/SMC-TurfService/internal/usecase/copy_day_plan"
	"github.com/m04kA/SMC-TurfService/pkg/logger"
)

const plan = `{
	"bufferMinutes": 0,
	"days": [
		{"day": "Monday", "slotDurationMinutes": 45, "price": 700,
		 "timeRanges": [{"startTime": "06:00", "endTime": "07:30"}, {"startTime": "18:00", "endTime": "19:30"}]},
		{"day": "Tuesday", "slotDurationMinutes": 60, "price": 300,
		 "timeRanges": [{"startTime": "10:00", "endTime": "12:00"}]}
	]
}`

const maxRangesPerDay = 2

const crowdedPlan = `{
	"bufferMinutes": 0,
	"days": [
		{"day": "Monday", "slotDurationMinutes": 30, "price": 100,
		 "timeRanges": [{"startTime": "06:00", "endTime": "07:00"}, {"startTime": "08:00", "endTime": "09:00"},
		                {"startTime": "10:00", "endTime": "11:00"}]}
	]
}`

func post(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/slot-plans/copy-day", strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewHandler(copyDayPlan.NewUseCase(maxRangesPerDay, logger.Nop()), logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandle_CopyPreviousDay(t *testing.T) {
	rec := post(t, `{"plan": `+plan+`, "targetDay": "tuesday"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CopyDayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "Monday", resp.SourceDay)
	assert.Equal(t, "Tuesday", resp.Preview.Day)
	assert.Equal(t, 45, resp.Preview.SlotDurationMinutes)
	assert.Equal(t, 700.0, resp.Preview.Price)
	require.Len(t, resp.Preview.Ranges, 2)
	assert.Equal(t, []string{"06:00", "06:45"}, resp.Preview.Ranges[0].Starts)

	require.Len(t, resp.Plan.Days, 2)
	assert.Len(t, resp.Plan.Days[1].TimeRanges, 2)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "monday without source", body: `{"plan": ` + plan + `, "targetDay": "Monday"}`, want: http.StatusBadRequest},
		{name: "unknown target", body: `{"plan": ` + plan + `, "targetDay": "Funday"}`, want: http.StatusBadRequest},
		{name: "source not configured", body: `{"plan": ` + plan + `, "targetDay": "Friday", "sourceDay": "Sunday"}`, want: http.StatusNotFound},
		{name: "too many ranges in a day", body: `{"plan": ` + crowdedPlan + `, "targetDay": "Tuesday"}`, want: http.StatusBadRequest},
		{name: "broken body", body: `{"plan": `, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, post(t, tt.body).Code)
		})
	}
}
