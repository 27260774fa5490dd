package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	SubmissionStages        *prometheus.CounterVec
	AvailabilityResolutions *prometheus.CounterVec
	IntegrationDuration     *prometheus.HistogramVec
}

// New регистрирует метрики в собственном реестре сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		SubmissionStages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_submission_stage_total",
			Help:        "Outcomes of booking submission pipeline stages",
			ConstLabels: constLabels,
		}, []string{"stage", "outcome"}),
		AvailabilityResolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_availability_resolutions_total",
			Help:        "Availability resolutions by variant and data source",
			ConstLabels: constLabels,
		}, []string{"variant", "source"}),
		IntegrationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "integration_request_duration_seconds",
			Help:        "Latency of outbound calls to collaborating services",
			ConstLabels: constLabels,
			Buckets:     []float64{.025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"service", "operation", "result"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SubmissionStages,
		m.AvailabilityResolutions,
		m.IntegrationDuration,
	)

	return m
}

// Handler HTTP-обработчик для scrape эндпоинта
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry реестр метрик (для тестов и дополнительных коллекторов)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveStage учитывает исход стадии оформления бронирования
func (m *Metrics) ObserveStage(stage, outcome string) {
	m.SubmissionStages.WithLabelValues(stage, outcome).Inc()
}

// ObserveAvailability учитывает источник данных о доступности (live/fallback)
func (m *Metrics) ObserveAvailability(variant, source string) {
	m.AvailabilityResolutions.WithLabelValues(variant, source).Inc()
}

// ObserveIntegration учитывает длительность вызова внешнего сервиса
func (m *Metrics) ObserveIntegration(service, operation string, started time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.IntegrationDuration.WithLabelValues(service, operation, result).Observe(time.Since(started).Seconds())
}

// Noop реализация без сбора метрик, используется при metrics.enabled = false
type Noop struct{}

func (Noop) ObserveStage(string, string)                         {}
func (Noop) ObserveAvailability(string, string)                  {}
func (Noop) ObserveIntegration(string, string, time.Time, error) {}
