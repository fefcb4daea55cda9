package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/xavierca1/alertas-pedidos/internal/entity"
	"github.com/xavierca1/alertas-pedidos/internal/usecase"
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

	alertRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alert_runs_total",
			Help: "Total number of pendency scans by result",
		},
		[]string{"result"},
	)

	alertRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "alert_run_duration_seconds",
			Help:    "Duration of pendency scans in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	alertDigestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alert_digests_total",
			Help: "Total number of collaborator digests by dispatch status",
		},
		[]string{"status"},
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

// RecordRun contabiliza uma execução e o destino de cada digest.
func RecordRun(report *entity.RunReport, err error, elapsed time.Duration) {
	alertRunDuration.Observe(elapsed.Seconds())

	switch {
	case err != nil || report == nil:
		alertRunsTotal.WithLabelValues("error").Inc()
		return
	case report.Success:
		alertRunsTotal.WithLabelValues("success").Inc()
	default:
		alertRunsTotal.WithLabelValues("partial").Inc()
	}

	for _, o := range report.Outcomes {
		alertDigestsTotal.WithLabelValues(string(o.Status)).Inc()
	}
}

type instrumentedRunner struct {
	next usecase.AlertRunner
}

// InstrumentRunner embrulha o runner para que todo gatilho (HTTP, agendador,
// fila) alimente as mesmas métricas.
func InstrumentRunner(next usecase.AlertRunner) usecase.AlertRunner {
	return &instrumentedRunner{next: next}
}

func (r *instrumentedRunner) Execute(ctx context.Context) (*entity.RunReport, error) {
	start := time.Now()
	report, err := r.next.Execute(ctx)
	RecordRun(report, err, time.Since(start))
	return report, err
}
