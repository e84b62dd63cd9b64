package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	followUpRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "followup_runs_total",
			Help: "Total number of follow-up runs executed",
		},
	)

	leadsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "followup_leads_processed_total",
			Help: "Leads processed by outcome (contacted, converted, skipped, failed)",
		},
		[]string{"outcome"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

// RecordRun vuelca el resumen de una corrida a los contadores.
func RecordRun(contacted, converted, skipped, failed int) {
	followUpRuns.Inc()
	leadsProcessed.WithLabelValues("contacted").Add(float64(contacted))
	leadsProcessed.WithLabelValues("converted").Add(float64(converted))
	leadsProcessed.WithLabelValues("skipped").Add(float64(skipped))
	leadsProcessed.WithLabelValues("failed").Add(float64(failed))
}
