package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса.
// Все методы безопасны для nil-получателя, чтобы при выключенных метриках
// можно было передавать nil вместо коллектора.
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	bookingsTotal       *prometheus.CounterVec
	validationFailures  *prometheus.CounterVec
	specialsLoads       *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном реестре (используется в тестах)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 7.5, 10},
			},
			[]string{"service", "method", "path"},
		),
		bookingsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reservation_bookings_total",
				Help: "Booking submissions by outcome",
			},
			[]string{"service", "outcome"},
		),
		validationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reservation_validation_failures_total",
				Help: "Reservation form validation failures by field",
			},
			[]string{"service", "field"},
		),
		specialsLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "specials_loads_total",
				Help: "Weekly specials loads by source",
			},
			[]string{"service", "source"},
		),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.bookingsTotal,
		m.validationFailures,
		m.specialsLoads,
	)

	return m
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// IncBooking увеличивает счетчик бронирований с указанным исходом
func (m *Metrics) IncBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(m.serviceName, outcome).Inc()
}

// IncValidationFailure увеличивает счетчик ошибок валидации поля
func (m *Metrics) IncValidationFailure(field string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(m.serviceName, field).Inc()
}

// IncSpecialsLoad фиксирует источник, из которого загружено меню недели
func (m *Metrics) IncSpecialsLoad(source string) {
	if m == nil {
		return
	}
	m.specialsLoads.WithLabelValues(m.serviceName, source).Inc()
}
