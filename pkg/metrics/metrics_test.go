package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSlotPlanCounters(t *testing.T) {
	m := NewWithRegistry("turf-service", prometheus.NewRegistry())

	m.IncSchedulesSaved("saved")
	m.IncSchedulesSaved("saved")
	m.IncSchedulesSaved("failed")
	m.AddSlotsSaved("Monday", 5)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SchedulesSaved.WithLabelValues("turf-service", "saved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SchedulesSaved.WithLabelValues("turf-service", "failed")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.SlotsSaved.WithLabelValues("turf-service", "Monday")))
	assert.Equal(t, "turf-service", m.ServiceName())
}
