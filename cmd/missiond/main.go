// Command missiond runs the Mission Control scene host: it generates the
// particle fields, drives the orbit engine every frame and serves the
// scene over HTTP.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/talgya/mission-control/internal/api"
	"github.com/talgya/mission-control/internal/catalog"
	"github.com/talgya/mission-control/internal/engine"
	"github.com/talgya/mission-control/internal/entropy"
	"github.com/talgya/mission-control/internal/metrics"
	"github.com/talgya/mission-control/internal/persistence"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("Mission Control scene host")

	// Configuration from environment.
	dbPath := envOrDefault("MISSION_DB", "data/mission.db")
	apiPort := envIntOrDefault("MISSION_PORT", 8080)
	fps := envIntOrDefault("MISSION_FPS", engine.DefaultFPS)
	adminKey := os.Getenv("MISSION_ADMIN_KEY")

	// ── Database ──────────────────────────────────────────────────────
	if dir := filepath.Dir(dbPath); dir != "." {
		os.MkdirAll(dir, 0755)
	}
	db, err := persistence.Open(dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", dbPath)

	// ── Catalog ───────────────────────────────────────────────────────
	cat := loadCatalog(db)

	// ── Scene (regenerated from seed, durable state restored) ────────
	saved, err := db.HasScene()
	if err != nil {
		slog.Error("failed to read scene meta", "error", err)
		os.Exit(1)
	}

	cfg := engine.DefaultConfig()
	cfg.Catalog = cat
	cfg = cfg.WithSeed(chooseSeed(db, saved))

	scene, err := engine.NewScene(cfg)
	if err != nil {
		slog.Error("failed to build scene", "error", err)
		os.Exit(1)
	}
	if saved {
		slog.Info("found saved scene, restoring...")
		if err := db.RestoreScene(scene); err != nil {
			slog.Error("failed to restore scene", "error", err)
			os.Exit(1)
		}
	} else if err := db.SaveScene(scene); err != nil {
		slog.Error("initial save failed", "error", err)
	}

	// ── Frame Engine ──────────────────────────────────────────────────
	eng := engine.NewEngine(fps)
	st := scene.Status()
	eng.Resume(st.Frame, st.Elapsed)

	eng.OnFrame = func(frame uint64, dt float64) {
		start := time.Now()
		scene.Advance(dt)
		metrics.ObserveFrame(time.Since(start))
	}
	eng.OnSecond = func(frame uint64) {
		st := scene.Status()
		metrics.SetScene(st.Points, st.Satellites, st.Planets)
	}
	eng.OnMinute = func(frame uint64) {
		if err := db.SaveScene(scene); err != nil {
			slog.Error("autosave failed", "error", err)
		}
		st := scene.Status()
		slog.Info("scene heartbeat",
			"frame", humanize.Comma(int64(st.Frame)),
			"clock", engine.FormatElapsed(st.Elapsed),
			"planets", st.Planets,
			"filter", st.Filter,
		)
	}

	// ── HTTP API ──────────────────────────────────────────────────────
	srv := &api.Server{
		Scene:    scene,
		Eng:      eng,
		Catalog:  cat,
		DB:       db,
		Port:     apiPort,
		AdminKey: adminKey,
	}
	srv.Start()

	// ── Run until signalled ───────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("scene ready",
		"id", scene.ID,
		"points", humanize.Comma(int64(st.Points)),
		"satellites", st.Satellites,
		"fps", fps,
		"port", apiPort,
	)
	eng.Run(ctx)

	// ── Shutdown ──────────────────────────────────────────────────────
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP shutdown failed", "error", err)
	}
	if err := db.SaveScene(scene); err != nil {
		slog.Error("final save failed", "error", err)
	}
	slog.Info("Mission Control stopped")
}

// loadCatalog seeds the catalog table on first run and reads it back.
// The built-in catalog is used if storage fails or the table is empty.
func loadCatalog(db *persistence.DB) *catalog.Catalog {
	if _, err := db.SeedCatalog(catalog.Default().All()); err != nil {
		slog.Warn("catalog seed failed, using built-in catalog", "error", err)
		return catalog.Default()
	}
	ips, err := db.LoadCatalog()
	if err != nil || len(ips) == 0 {
		slog.Warn("catalog load failed, using built-in catalog", "error", err)
		return catalog.Default()
	}
	slog.Info("catalog loaded", "ips", len(ips))
	return catalog.New(ips)
}

// chooseSeed picks the field seed. MISSION_SEED wins ("random" draws a
// fresh one), then the saved scene's seed, then the default.
func chooseSeed(db *persistence.DB, saved bool) uint32 {
	v := strings.TrimSpace(os.Getenv("MISSION_SEED"))
	switch {
	case strings.EqualFold(v, "random"):
		seed := entropy.RandomSeed()
		slog.Info("using random seed", "seed", seed)
		return seed
	case v != "":
		n, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return entropy.SeedFromInt64(n)
		}
		slog.Warn("ignoring malformed MISSION_SEED", "value", v, "error", err)
	}
	if saved {
		if seed, ok := db.SavedSeed(); ok {
			return seed
		}
	}
	return engine.DefaultConfig().Primary.Seed
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
