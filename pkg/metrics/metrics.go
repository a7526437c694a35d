package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the service
type Metrics struct {
	service string

	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Database
	DBQueryDuration    *prometheus.HistogramVec
	DBQueryErrorsTotal *prometheus.CounterVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	// Business
	OrdersCreatedTotal      *prometheus.CounterVec
	CapacityRejectionsTotal *prometheus.CounterVec
	NotificationsSentTotal  *prometheus.CounterVec
}

// New registers the metrics on the default Prometheus registry
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the metrics on reg. Tests pass a fresh prometheus.NewRegistry().
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		service: serviceName,

		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),

		DBQueryErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),

		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established connections",
		}, []string{"service"}),

		DBInUseConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),

		DBIdleConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle connections",
		}, []string{"service"}),

		DBWaitCount: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_count",
			Help: "Total number of connections waited for",
		}, []string{"service"}),

		OrdersCreatedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total number of created orders by booking type",
		}, []string{"service", "booking_type"}),

		CapacityRejectionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "order_capacity_rejections_total",
			Help: "Orders rejected because the delivery date was already full",
		}, []string{"service", "booking_type"}),

		NotificationsSentTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_notifications_sent_total",
			Help: "Admin notifications delivered by event type",
		}, []string{"service", "event"}),
	}
}

// Service returns the value of the service label
func (m *Metrics) Service() string {
	return m.service
}

// Recording methods are no-ops on a nil *Metrics.

// ObserveHTTPRequest records a single HTTP request
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(m.service, method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.service, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery records query latency and failures
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(m.service, operation).Observe(duration.Seconds())
	if err != nil {
		m.DBQueryErrorsTotal.WithLabelValues(m.service, operation).Inc()
	}
}

func (m *Metrics) OrderCreated(bookingType string) {
	if m == nil {
		return
	}
	m.OrdersCreatedTotal.WithLabelValues(m.service, bookingType).Inc()
}

func (m *Metrics) CapacityRejected(bookingType string) {
	if m == nil {
		return
	}
	m.CapacityRejectionsTotal.WithLabelValues(m.service, bookingType).Inc()
}

func (m *Metrics) NotificationSent(event string, delivered int) {
	if m == nil {
		return
	}
	m.NotificationsSentTotal.WithLabelValues(m.service, event).Add(float64(delivered))
}
