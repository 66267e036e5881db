package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/talgya/mission-control/internal/metrics"
)

// handleStream provides an SSE endpoint that pushes frame snapshots at a
// fixed interval. Concurrent connections are limited.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	current := atomic.AddInt32(&s.sseConns, 1)
	if current > maxSSEConns {
		atomic.AddInt32(&s.sseConns, -1)
		http.Error(w, "too many SSE connections", http.StatusServiceUnavailable)
		return
	}
	metrics.SetStreamClients(int(current))
	defer func() {
		metrics.SetStreamClients(int(atomic.AddInt32(&s.sseConns, -1)))
	}()

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	points := wantPoints(r)
	snapshot := s.Scene.Frame
	if points {
		snapshot = s.Scene.FrameWithPoints
	}

	// Catch-up: recent events, then the current frame.
	for _, e := range s.Scene.Events(50) {
		writeSSE(w, "event", e)
	}
	f := snapshot()
	writeSSE(w, "frame", f)
	last := f.Rev
	flusher.Flush()

	slog.Info("SSE client connected", "remote", r.RemoteAddr, "points", points)

	interval := s.StreamInterval
	if interval <= 0 {
		interval = defaultStreamInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	heartbeat := time.NewTicker(15 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-ticker.C:
			// Skip states the client already has. Rev also moves while the
			// clock is stopped, e.g. on select or filter.
			if f := snapshot(); f.Rev != last {
				writeSSE(w, "frame", f)
				last = f.Rev
				flusher.Flush()
			}
		case <-heartbeat.C:
			fmt.Fprintf(w, ": heartbeat\n\n")
			flusher.Flush()
		case <-r.Context().Done():
			slog.Info("SSE client disconnected", "remote", r.RemoteAddr)
			return
		}
	}
}

// writeSSE writes a single named event in SSE format.
func writeSSE(w http.ResponseWriter, name string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, data)
}
