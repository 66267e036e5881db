// Package api serves the Mission Control scene over HTTP.
// GET endpoints are public (read-only observation).
// POST and DELETE endpoints require a bearer token when an admin key is set.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/talgya/mission-control/internal/catalog"
	"github.com/talgya/mission-control/internal/engine"
	"github.com/talgya/mission-control/internal/metrics"
	"github.com/talgya/mission-control/internal/persistence"
)

const (
	maxSSEConns           = 4
	defaultStreamInterval = 100 * time.Millisecond
	planetsPerMinute      = 30
)

// Server serves the scene over HTTP.
type Server struct {
	Scene    *engine.Scene
	Eng      *engine.Engine
	Catalog  *catalog.Catalog
	DB       *persistence.DB // nil disables snapshot and stored events
	Port     int
	AdminKey string // Bearer token for POST/DELETE endpoints. Empty = open.

	// StreamInterval is the gap between frames on /api/v1/stream.
	StreamInterval time.Duration

	started  time.Time
	sseConns int32
	httpSrv  *http.Server
}

// Handler builds the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	if s.started.IsZero() {
		s.started = time.Now()
	}
	if s.Catalog == nil {
		s.Catalog = catalog.Default()
	}
	planetLimiter := NewRateLimiter(planetsPerMinute, time.Minute)

	mux := http.NewServeMux()

	// Public endpoints (GET, read-only).
	mux.HandleFunc("GET /api/v1/status", s.handleStatus)
	mux.HandleFunc("GET /api/v1/frame", s.handleFrame)
	mux.HandleFunc("GET /api/v1/catalog", s.handleCatalog)
	mux.HandleFunc("GET /api/v1/theme/{id}", s.handleTheme)
	mux.HandleFunc("GET /api/v1/events", s.handleEvents)
	mux.HandleFunc("GET /api/v1/planets", s.handlePlanets)
	mux.HandleFunc("GET /api/v1/speed", s.handleSpeed)
	mux.HandleFunc("GET /api/v1/stream", s.handleStream)
	mux.Handle("GET /metrics", metrics.Handler())

	// Control endpoints.
	mux.HandleFunc("POST /api/v1/select", s.adminOnly(s.handleSelect))
	mux.HandleFunc("POST /api/v1/deselect", s.adminOnly(s.handleDeselect))
	mux.HandleFunc("POST /api/v1/filter", s.adminOnly(s.handleFilter))
	mux.HandleFunc("POST /api/v1/pointer", s.adminOnly(s.handlePointer))
	mux.HandleFunc("POST /api/v1/container", s.adminOnly(s.handleContainer))
	mux.HandleFunc("POST /api/v1/planets", s.adminOnly(RateLimitMiddleware(planetLimiter, s.handleAddPlanet)))
	mux.HandleFunc("DELETE /api/v1/planets/{id}", s.adminOnly(s.handleRemovePlanet))
	mux.HandleFunc("POST /api/v1/speed", s.adminOnly(s.handleSpeed))
	mux.HandleFunc("POST /api/v1/snapshot", s.adminOnly(s.handleSnapshot))

	var handler http.Handler = mux
	handler = corsMiddleware(handler)
	handler = metrics.Middleware(handler)
	return handler
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.Port)
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		// No WriteTimeout: the frame stream is long-lived.
	}
	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.AdminKey != "")
	if s.AdminKey == "" {
		slog.Warn("control endpoints are open (no MISSION_ADMIN_KEY set)")
	}

	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// corsMiddleware adds CORS headers for allowed frontend origins.
// Set CORS_ORIGINS env var to a comma-separated list of allowed origins.
// Localhost dev servers are always allowed.
func corsMiddleware(next http.Handler) http.Handler {
	allowedOrigins := map[string]bool{
		"http://localhost:3000": true,
		"http://localhost:5173": true,
	}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins[origin] = true
			}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// checkBearerToken returns true if the request has a valid admin bearer token.
func (s *Server) checkBearerToken(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, "Bearer ") && strings.TrimPrefix(auth, "Bearer ") == s.AdminKey
}

// adminOnly wraps a handler to require bearer token auth on mutating
// requests. With no admin key configured every request passes.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && s.AdminKey != "" && !s.checkBearerToken(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

// decodeJSON reads a small JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<16)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}

func writeJSONStatus(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) streamConns() int {
	return int(atomic.LoadInt32(&s.sseConns))
}
