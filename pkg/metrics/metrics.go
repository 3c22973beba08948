package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "practice"

type Collector struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	PatientsAdmittedTotal   prometheus.Counter
	HistoryEntriesTotal     *prometheus.CounterVec
	AppointmentsTotal       prometheus.Counter
	AppointmentTogglesTotal *prometheus.CounterVec
	FinancialRecordsTotal   *prometheus.CounterVec
	GoalProgressPercent     prometheus.Gauge

	SettingsCacheTotal *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewCollector registers every practice metric on reg. A nil reg uses a
// fresh registry, which keeps tests independent of the global one.
func NewCollector(reg *prometheus.Registry) *Collector {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Collector{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, route, and status code.",
		}, []string{"method", "route", "status"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency distribution.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		}, []string{"method", "route"}),

		PatientsAdmittedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "clinical",
			Name:      "patients_admitted_total",
			Help:      "Total number of patients admitted.",
		}),

		HistoryEntriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "clinical",
			Name:      "history_entries_total",
			Help:      "Total clinical history entries by category.",
		}, []string{"category"}),

		AppointmentsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "schedule",
			Name:      "appointments_total",
			Help:      "Total appointments booked.",
		}),

		AppointmentTogglesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "schedule",
			Name:      "appointment_toggles_total",
			Help:      "Appointment status toggles by resulting status.",
		}, []string{"status"}),

		FinancialRecordsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "finance",
			Name:      "records_total",
			Help:      "Financial records entered by type.",
		}, []string{"type"}),

		GoalProgressPercent: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "finance",
			Name:      "goal_progress_percent",
			Help:      "Monthly goal progress at the last dashboard build.",
		}),

		SettingsCacheTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "settings",
			Name:      "cache_lookups_total",
			Help:      "Settings cache lookups by result.",
		}, []string{"result"}),

		gatherer: reg,
	}
}

// Handler serves the collector's registry
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

func (c *Collector) ObserveRequest(method, route string, status int, seconds float64) {
	if c == nil {
		return
	}
	c.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.RequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func (c *Collector) PatientAdmitted() {
	if c == nil {
		return
	}
	c.PatientsAdmittedTotal.Inc()
}

func (c *Collector) HistoryAppended(category string) {
	if c == nil {
		return
	}
	c.HistoryEntriesTotal.WithLabelValues(category).Inc()
}

func (c *Collector) AppointmentBooked() {
	if c == nil {
		return
	}
	c.AppointmentsTotal.Inc()
}

func (c *Collector) AppointmentToggled(status string) {
	if c == nil {
		return
	}
	c.AppointmentTogglesTotal.WithLabelValues(status).Inc()
}

func (c *Collector) FinancialRecorded(kind string) {
	if c == nil {
		return
	}
	c.FinancialRecordsTotal.WithLabelValues(kind).Inc()
}

func (c *Collector) SetGoalProgress(percent int) {
	if c == nil {
		return
	}
	c.GoalProgressPercent.Set(float64(percent))
}

// SettingsCacheLookup records a hit, miss or error
func (c *Collector) SettingsCacheLookup(result string) {
	if c == nil {
		return
	}
	c.SettingsCacheTotal.WithLabelValues(result).Inc()
}
