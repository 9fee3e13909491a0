package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var durationBuckets = []float64{0.1, 0.5, 1, 2, 5, 10, 20, 50, 100, 200, 500}

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "boarding_requests_total",
		Help: "Total HTTP requests by route and status",
	}, []string{"route", "status"})
	RequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "boarding_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: durationBuckets,
	}, []string{"route"})
	AssignmentsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "boarding_assignments_total",
		Help: "Total computed assignments by strategy",
	}, []string{"strategy"})
	AssignmentErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "boarding_assignment_errors_total",
		Help: "Total failed assignments by strategy",
	}, []string{"strategy"})
	AssignmentDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "boarding_assignment_duration_ms",
		Help:    "Assignment computation time in milliseconds",
		Buckets: durationBuckets,
	}, []string{"strategy"})
	ChartsRenderedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "boarding_charts_rendered_total",
		Help: "Total rendered charts by format",
	}, []string{"format"})
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestDurationMs)
	prometheus.MustRegister(AssignmentsTotal)
	prometheus.MustRegister(AssignmentErrorsTotal)
	prometheus.MustRegister(AssignmentDurationMs)
	prometheus.MustRegister(ChartsRenderedTotal)
}

// ObserveAssignment records one assignment computation that started at start
func ObserveAssignment(strategy string, start time.Time, err error) {
	if err != nil {
		AssignmentErrorsTotal.WithLabelValues(strategy).Inc()
		return
	}
	AssignmentsTotal.WithLabelValues(strategy).Inc()
	AssignmentDurationMs.WithLabelValues(strategy).Observe(milliseconds(time.Since(start)))
}

// ObserveRequest records one served request; route is the registered path, not the raw URL
func ObserveRequest(route string, status int, duration time.Duration) {
	RequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	RequestDurationMs.WithLabelValues(route).Observe(milliseconds(duration))
}

func milliseconds(duration time.Duration) float64 {
	return float64(duration.Microseconds()) / 1000
}

// Handler exposes the registered collectors for scraping
func Handler() http.Handler { return promhttp.Handler() }
