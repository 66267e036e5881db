// Package persistence stores Mission Control scene state in SQLite so a
// restarted host resumes with the same catalog, planets and settings.
package persistence

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/mission-control/internal/catalog"
	"github.com/talgya/mission-control/internal/engine"
	"github.com/talgya/mission-control/internal/orbit"
)

// Scene meta keys.
const (
	MetaSeed          = "seed"
	MetaFilter        = "filter"
	MetaContainerSize = "container_size"
	MetaNextPlanet    = "next_planet"
	MetaFrame         = "frame"
	MetaElapsed       = "elapsed"
	MetaSceneID       = "scene_id"
)

// DB wraps a SQLite connection for scene persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS ips (
		position INTEGER NOT NULL,
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		tagline TEXT NOT NULL,
		category TEXT NOT NULL,
		status TEXT NOT NULL,
		orbit_radius REAL NOT NULL,
		orbit_speed REAL NOT NULL,
		color TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS planets (
		id INTEGER PRIMARY KEY,
		color TEXT NOT NULL,
		size REAL NOT NULL,
		radius REAL NOT NULL,
		speed REAL NOT NULL,
		orbit_offset REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		frame INTEGER NOT NULL,
		elapsed REAL NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS scene_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_frame ON events(frame);
	CREATE INDEX IF NOT EXISTS idx_ips_position ON ips(position);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SeedCatalog writes ips when the table is empty, so edits made directly
// in the database survive restarts. Reports whether anything was written.
func (db *DB) SeedCatalog(ips []catalog.IP) (bool, error) {
	var n int
	if err := db.conn.Get(&n, "SELECT COUNT(*) FROM ips"); err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT INTO ips
		(position, id, title, tagline, category, status, orbit_radius, orbit_speed, color)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return false, err
	}
	defer stmt.Close()

	for i, ip := range ips {
		_, err := stmt.Exec(i, ip.ID, ip.Title, ip.Tagline, string(ip.Category), string(ip.Status),
			ip.OrbitRadius, ip.OrbitSpeed, ip.Color)
		if err != nil {
			return false, fmt.Errorf("insert ip %s: %w", ip.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	slog.Info("catalog seeded", "ips", len(ips))
	return true, nil
}

// LoadCatalog returns the stored IPs in catalog order.
func (db *DB) LoadCatalog() ([]catalog.IP, error) {
	var ips []catalog.IP
	err := db.conn.Select(&ips, `SELECT id, title, tagline, category, status,
		orbit_radius, orbit_speed, color FROM ips ORDER BY position`)
	return ips, err
}

// SavePlanets writes all planets to the database (full replace).
func (db *DB) SavePlanets(planets []orbit.Planet) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM planets"); err != nil {
		return err
	}

	stmt, err := tx.Preparex(`INSERT INTO planets
		(id, color, size, radius, speed, orbit_offset)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range planets {
		if _, err := stmt.Exec(int64(p.ID), p.Color, p.Size, p.Radius, p.Speed, p.Offset); err != nil {
			return fmt.Errorf("insert planet %d: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

// LoadPlanets returns the saved planets in key order.
func (db *DB) LoadPlanets() ([]orbit.Planet, error) {
	var planets []orbit.Planet
	err := db.conn.Select(&planets,
		"SELECT id, color, size, radius, speed, orbit_offset FROM planets ORDER BY id")
	return planets, err
}

// SaveEvents appends events to the database.
func (db *DB) SaveEvents(events []engine.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range events {
		_, err := tx.Exec(
			"INSERT INTO events (frame, elapsed, description, category) VALUES (?, ?, ?, ?)",
			int64(e.Frame), e.Elapsed, e.Description, e.Category,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// RecentEvents returns the most recent N events, newest first.
func (db *DB) RecentEvents(limit int) ([]engine.Event, error) {
	var events []engine.Event
	err := db.conn.Select(&events,
		"SELECT frame, elapsed, description, category FROM events ORDER BY id DESC LIMIT ?",
		limit,
	)
	return events, err
}

// SaveMeta stores a key-value pair in scene metadata.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO scene_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value. A missing key returns sql.ErrNoRows.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM scene_meta WHERE key = ?", key)
	return value, err
}

// SaveScene performs a full save of the scene's durable state. Pending
// events are appended and acknowledged only once stored, so a failed save
// leaves them queued for the next attempt.
func (db *DB) SaveScene(s *engine.Scene) error {
	d := s.Durable()
	slog.Info("saving scene", "planets", len(d.Planets), "events", len(d.Events), "frame", d.Frame)

	if err := db.SavePlanets(d.Planets); err != nil {
		return fmt.Errorf("save planets: %w", err)
	}
	if err := db.SaveEvents(d.Events); err != nil {
		return fmt.Errorf("save events: %w", err)
	}
	s.AckEvents(d.EventsUpTo)

	meta := map[string]string{
		MetaSeed:          strconv.FormatUint(uint64(d.Seed), 10),
		MetaFilter:        string(d.Filter),
		MetaContainerSize: strconv.FormatFloat(d.ContainerSize, 'g', -1, 64),
		MetaNextPlanet:    strconv.FormatUint(d.NextPlanet, 10),
		MetaFrame:         strconv.FormatUint(d.Frame, 10),
		MetaElapsed:       strconv.FormatFloat(d.Elapsed, 'g', -1, 64),
		MetaSceneID:       d.SceneID,
	}
	var errs []error
	for k, v := range meta {
		if err := db.SaveMeta(k, v); err != nil {
			errs = append(errs, fmt.Errorf("save meta %s: %w", k, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	slog.Info("scene saved")
	return nil
}
