package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	planModels "github.com/m04kA/SMC-TurfService/internal/service/planner/models"
	copyDayPlan "github.com/m04kA/SMC-TurfService/internal/usecase/copy_day_plan"
)

const planYAML = `turf_id: 8d5f2c1e-4b7a-4f0e-9a51-0d3c2b1a9e77
sport_id: 1b2c3d4e-5f60-4718-8293-a4b5c6d7e8f9
start_date: "2026-11-01"
end_date: "2026-11-30"
buffer_minutes: 10
days:
  - day: Monday
    slot_duration_minutes: 60
    price: 800
    time_ranges:
      - start_time: "09:00"
        end_time: "11:00"
      - start_time: "18:00"
        end_time: "18:30"
  - day: Wednesday
    slot_duration_minutes: 30
    price: 400
    time_ranges:
      - start_time: "06:00"
        end_time: "07:10"
`

func writePlan(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(planYAML), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPreview_PrintsSchedules(t *testing.T) {
	out, err := run(t, "preview", "-f", writePlan(t))
	require.NoError(t, err)

	var schedules []planModels.ScheduleView
	require.NoError(t, json.Unmarshal([]byte(out), &schedules))
	require.Len(t, schedules, 3)

	first := schedules[0]
	assert.Equal(t, "Monday", first.Day)
	assert.Equal(t, "2026-11-01", first.StartDate)
	assert.Equal(t, 60, first.SlotDuration)
	assert.Equal(t, []planModels.SlotView{{StartTime: "09:00", EndTime: "11:00"}}, first.Slots)

	// интервал короче слота не дает слотов
	assert.Empty(t, schedules[1].Slots)

	wednesday := schedules[2]
	assert.Equal(t, "Wednesday", wednesday.Day)
	assert.Equal(t, []planModels.SlotView{
		{StartTime: "06:00", EndTime: "06:40"},
		{StartTime: "06:40", EndTime: "07:10"},
	}, wednesday.Slots)
}

func TestPreview_Days(t *testing.T) {
	out, err := run(t, "preview", "-f", writePlan(t), "--days")
	require.NoError(t, err)

	var days []planModels.DayView
	require.NoError(t, json.Unmarshal([]byte(out), &days))
	require.Len(t, days, 2)
	assert.Equal(t, 1, days[0].SlotsCount)
	assert.Equal(t, 2, days[1].SlotsCount)
}

func TestPreview_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("buffer: 10\n"), 0o644))

	_, err := run(t, "preview", "-f", path)
	assert.Error(t, err)
}

func TestCopyDay_PreviousDayAndWrite(t *testing.T) {
	path := writePlan(t)

	out, err := run(t, "copy-day", "-f", path, "--to", "thursday", "--write")
	require.NoError(t, err)

	var day planModels.DayView
	require.NoError(t, json.Unmarshal([]byte(out), &day))
	assert.Equal(t, "Thursday", day.Day)
	assert.Equal(t, 30, day.SlotDurationMinutes)
	assert.Equal(t, 2, day.SlotsCount)

	form, err := readPlanFile(path)
	require.NoError(t, err)
	require.Len(t, form.Days, 3)
	assert.Equal(t, "Thursday", form.Days[2].Day)
	assert.Equal(t, 400.0, form.Days[2].Price)
}

func TestCopyDay_Errors(t *testing.T) {
	path := writePlan(t)

	_, err := run(t, "copy-day", "-f", path, "--to", "Monday")
	assert.ErrorIs(t, err, copyDayPlan.ErrNoPreviousDay)

	_, err = run(t, "copy-day", "-f", path, "--to", "Friday")
	assert.ErrorIs(t, err, copyDayPlan.ErrSourceDayNotFound)

	_, err = run(t, "copy-day", "-f", path, "--to", "Someday")
	assert.Error(t, err)
}

func TestInit_RoundTripsThroughPreview(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")

	_, err := run(t, "init", "--turf", "8d5f2c1e-4b7a-4f0e-9a51-0d3c2b1a9e77", "--duration", "45", "-o", path)
	require.NoError(t, err)

	form, err := readPlanFile(path)
	require.NoError(t, err)
	assert.Equal(t, "8d5f2c1e-4b7a-4f0e-9a51-0d3c2b1a9e77", form.TurfID)
	require.Len(t, form.Days, 7)
	assert.Equal(t, 45, form.Days[3].SlotDurationMinutes)

	out, err := run(t, "preview", "-f", path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestInit_InvalidFlag(t *testing.T) {
	_, err := run(t, "init", "--start-date", "01/11/2026")
	assert.Error(t, err)
}
