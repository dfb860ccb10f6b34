package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	serviceName string

	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration    *prometheus.HistogramVec
	DBQueryErrors      *prometheus.CounterVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec

	// Планирование слотов
	SchedulesSaved *prometheus.CounterVec
	SlotsSaved     *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре (его отдает promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "route", "status"},
		),

		DBQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"service", "operation"},
		),
		DBQueryErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "db_query_errors_total",
				Help: "Total number of failed database queries",
			},
			[]string{"service", "operation"},
		),
		DBOpenConnections: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_open_connections",
				Help: "Number of established database connections",
			},
			[]string{"service"},
		),
		DBInUseConnections: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_in_use_connections",
				Help: "Number of database connections currently in use",
			},
			[]string{"service"},
		),
		DBIdleConnections: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_idle_connections",
				Help: "Number of idle database connections",
			},
			[]string{"service"},
		),

		SchedulesSaved: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "slot_schedules_saved_total",
				Help: "Slot schedules processed by save slot plan, by result",
			},
			[]string{"service", "result"},
		),
		SlotsSaved: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "slots_saved_total",
				Help: "Number of persisted slots, by weekday",
			},
			[]string{"service", "day"},
		),
	}
}

// ServiceName возвращает имя сервиса, которым помечаются метрики
func (m *Metrics) ServiceName() string {
	return m.serviceName
}

// IncSchedulesSaved учитывает обработанное расписание (result: saved, skipped, failed)
func (m *Metrics) IncSchedulesSaved(result string) {
	m.SchedulesSaved.WithLabelValues(m.serviceName, result).Inc()
}

// AddSlotsSaved учитывает сохраненные слоты для дня недели
func (m *Metrics) AddSlotsSaved(day string, count int) {
	m.SlotsSaved.WithLabelValues(m.serviceName, day).Add(float64(count))
}
