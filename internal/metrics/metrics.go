// Package metrics exposes Prometheus metrics for the frame loop and the
// HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mission_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"path", "method", "code"},
	)

	httpDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mission_http_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	framesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mission_frames_total",
		Help: "Frames advanced by the scene.",
	})

	frameDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "mission_frame_duration_seconds",
		Help:    "Wall time spent advancing one frame.",
		Buckets: prometheus.ExponentialBuckets(0.00005, 2, 12),
	})

	sceneGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mission_scene_objects",
			Help: "Objects in the scene by kind.",
		},
		[]string{"kind"},
	)

	streamClients = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "mission_stream_clients",
		Help: "Connected frame stream clients.",
	})
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpDurationSeconds)
	prometheus.MustRegister(framesTotal)
	prometheus.MustRegister(frameDurationSeconds)
	prometheus.MustRegister(sceneGauge)
	prometheus.MustRegister(streamClients)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveFrame records one advanced frame and how long it took.
func ObserveFrame(d time.Duration) {
	framesTotal.Inc()
	frameDurationSeconds.Observe(d.Seconds())
}

// SetScene updates the scene object gauges.
func SetScene(points, satellites, planets int) {
	sceneGauge.WithLabelValues("points").Set(float64(points))
	sceneGauge.WithLabelValues("satellites").Set(float64(satellites))
	sceneGauge.WithLabelValues("planets").Set(float64(planets))
}

// SetStreamClients records the number of connected stream clients.
func SetStreamClients(n int) {
	streamClients.Set(float64(n))
}

var knownRoutes = map[string]bool{
	"/":                 true,
	"/metrics":          true,
	"/api/v1/status":    true,
	"/api/v1/frame":     true,
	"/api/v1/catalog":   true,
	"/api/v1/events":    true,
	"/api/v1/stream":    true,
	"/api/v1/select":    true,
	"/api/v1/deselect":  true,
	"/api/v1/filter":    true,
	"/api/v1/pointer":   true,
	"/api/v1/container": true,
	"/api/v1/planets":   true,
	"/api/v1/speed":     true,
	"/api/v1/snapshot":  true,
}

// normalizeRoute collapses parameterised and unknown paths so label
// cardinality stays bounded.
func normalizeRoute(path string) string {
	if knownRoutes[path] {
		return path
	}
	if rest, ok := strings.CutPrefix(path, "/api/v1/theme/"); ok && rest != "" && !strings.Contains(rest, "/") {
		return "/api/v1/theme/{id}"
	}
	if rest, ok := strings.CutPrefix(path, "/api/v1/planets/"); ok && rest != "" && !strings.Contains(rest, "/") {
		return "/api/v1/planets/{id}"
	}
	return "other"
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Flush lets streaming handlers flush through the wrapper.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Middleware records request count and duration for each request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		code := strconv.Itoa(rw.statusCode)
		path := normalizeRoute(r.URL.Path)

		httpRequestsTotal.WithLabelValues(path, r.Method, code).Inc()
		httpDurationSeconds.WithLabelValues(path, r.Method).Observe(duration)
	})
}
