// Command observer watches a running missiond through its HTTP API and
// logs a health summary on a fixed interval.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/talgya/mission-control/internal/observer"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Configuration from environment.
	apiURL := envOrDefault("MISSION_API_URL", "http://localhost:8080")
	intervalSec := envIntOrDefault("OBSERVER_INTERVAL", 30)
	fps := envIntOrDefault("MISSION_FPS", 60)

	interval := time.Duration(intervalSec) * time.Second

	slog.Info("Mission Control observer starting",
		"api_url", apiURL,
		"interval", interval,
	)

	obs := observer.NewObserver(apiURL)

	// Wait for missiond to be ready before the first cycle.
	slog.Info("waiting for missiond API...")
	waitForAPI(obs)

	prev := runCycle(obs, nil, float64(fps))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			prev = runCycle(obs, prev, float64(fps))
		case sig := <-sigCh:
			slog.Info("received signal, shutting down", "signal", sig)
			fmt.Println("Observer stopped.")
			return
		}
	}
}

// runCycle takes one snapshot and logs its triage against the previous
// one. Returns the snapshot to compare against next time.
func runCycle(obs *observer.Observer, prev *observer.Snapshot, fps float64) *observer.Snapshot {
	snap, err := obs.Observe()
	if err != nil {
		slog.Error("observation failed", "error", err)
		return prev
	}

	h := observer.Triage(prev, snap, fps)
	attrs := []any{
		"level", h.Level,
		"scene", snap.Status.SceneID,
		"frame", humanize.Comma(int64(snap.Status.Frame)),
		"clock", snap.Status.Clock,
		"fps", fmt.Sprintf("%.1f", h.FrameRate),
		"satellites", len(snap.Frame.Satellites),
		"planets", snap.Status.Planets,
		"paused", h.Paused,
	}
	switch h.Level {
	case observer.LevelStalled, observer.LevelSlow:
		slog.Warn("scene unhealthy", attrs...)
	case observer.LevelWatch:
		slog.Warn("scene placements off", append(attrs, "bad_placements", h.BadPlacements, "out_of_ring", h.OutOfRing)...)
	default:
		slog.Info("scene healthy", attrs...)
	}
	for _, e := range snap.Events {
		if prev == nil || e.Frame > prev.Status.Frame {
			slog.Info("scene event", "frame", e.Frame, "category", e.Category, "description", e.Description)
		}
	}
	return snap
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envIntOrDefault(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

// waitForAPI polls the status endpoint with exponential backoff until it
// responds. Exits after 5 minutes if the API never becomes ready.
func waitForAPI(obs *observer.Observer) {
	backoff := 2 * time.Second
	maxBackoff := 30 * time.Second
	deadline := time.Now().Add(5 * time.Minute)

	for {
		if obs.Ready() {
			slog.Info("missiond API is ready")
			return
		}
		if time.Now().After(deadline) {
			slog.Error("missiond API did not become ready within 5 minutes")
			os.Exit(1)
		}
		slog.Info("missiond not ready, retrying...", "backoff", backoff)
		time.Sleep(backoff)
		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
}
