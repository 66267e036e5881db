package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/talgya/mission-control/internal/catalog"
	"github.com/talgya/mission-control/internal/engine"
)

// HasScene reports whether a scene has been saved before.
func (db *DB) HasScene() (bool, error) {
	_, err := db.GetMeta(MetaSceneID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

// SavedSeed returns the seed the saved scene was generated from.
func (db *DB) SavedSeed() (uint32, bool) {
	v, err := db.GetMeta(MetaSeed)
	if err != nil {
		return 0, false
	}
	seed, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		slog.Warn("ignoring malformed saved seed", "value", v, "error", err)
		return 0, false
	}
	return uint32(seed), true
}

// RestoreScene applies saved planets, filter, container size and clock to
// s. Malformed meta values are skipped with a warning.
func (db *DB) RestoreScene(s *engine.Scene) error {
	planets, err := db.LoadPlanets()
	if err != nil {
		return fmt.Errorf("load planets: %w", err)
	}
	var next uint64
	if v, err := db.GetMeta(MetaNextPlanet); err == nil {
		if n, perr := strconv.ParseUint(v, 10, 64); perr == nil {
			next = n
		} else {
			slog.Warn("ignoring malformed next planet id", "value", v)
		}
	}
	s.RestorePlanets(planets, next)

	if v, err := db.GetMeta(MetaFilter); err == nil {
		if err := s.SetFilter(catalog.Filter(v)); err != nil {
			slog.Warn("ignoring saved filter", "value", v, "error", err)
		}
	}
	if v, err := db.GetMeta(MetaContainerSize); err == nil {
		px, perr := strconv.ParseFloat(v, 64)
		if perr == nil {
			perr = s.SetContainerSize(px)
		}
		if perr != nil {
			slog.Warn("ignoring saved container size", "value", v, "error", perr)
		}
	}

	var frame uint64
	var elapsed float64
	if v, err := db.GetMeta(MetaFrame); err == nil {
		frame, _ = strconv.ParseUint(v, 10, 64)
	}
	if v, err := db.GetMeta(MetaElapsed); err == nil {
		elapsed, _ = strconv.ParseFloat(v, 64)
	}
	s.Resume(frame, elapsed)

	slog.Info("scene restored", "planets", len(planets), "frame", frame, "filter", s.Filter())
	return nil
}
