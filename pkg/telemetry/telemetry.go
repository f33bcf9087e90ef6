package telemetry

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"postsdb/pkg/httpx"
	"postsdb/pkg/logger"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "postsdb_http_requests_total",
		Help: "HTTP requests by action and status code.",
	}, []string{"action", "status"})
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "postsdb_http_request_duration_seconds",
		Help:    "HTTP request latency by action.",
		Buckets: prometheus.DefBuckets,
	}, []string{"action"})
)

// Middleware records request count and latency per action. Paths outside
// the RPC prefix collapse into a single "unknown" label to keep the metric
// cardinality bounded.
func Middleware(next httpx.HandlerFunc) httpx.HandlerFunc {
	return func(w httpx.ResponseWriter, r *httpx.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next(rec, r)

		status := rec.status
		if status == 0 {
			status = 200
		}
		action := actionLabel(r.Path)
		dur := time.Since(start)
		requestsTotal.WithLabelValues(action, strconv.Itoa(status)).Inc()
		requestDuration.WithLabelValues(action).Observe(dur.Seconds())
		logger.Debug("request_done", "path", r.Path, "status", status, "duration_ms", dur.Milliseconds())
	}
}

func actionLabel(path string) string {
	if rest, ok := strings.CutPrefix(path, "/posts."); ok {
		switch rest {
		case "list", "getById", "create", "edit", "delete":
			return rest
		}
	}
	return "unknown"
}

// statusRecorder captures the response status code written downstream.
type statusRecorder struct {
	httpx.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
