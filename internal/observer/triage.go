package observer

import (
	"math"

	"github.com/talgya/mission-control/internal/orbit"
)

// Health levels, worst first.
const (
	LevelStalled = "STALLED"
	LevelSlow    = "SLOW"
	LevelWatch   = "WATCH"
	LevelHealthy = "HEALTHY"
)

// slowFraction of the expected frame rate below which the host is slow.
const slowFraction = 0.5

// Health holds diagnostics derived from two consecutive snapshots.
// Runs locally, deterministic and free.
type Health struct {
	FrameRate      float64 // frames per wall second between snapshots
	SceneRate      float64 // scene seconds per wall second
	Paused         bool    // speed 0 or a selection holding the satellites
	BadPlacements  int     // satellites whose counter-rotation is not -angle
	OutOfRing      int     // satellites placed outside the mapped radius band
	Level          string
	ExpectedFPS    float64
	ObservedWindow float64 // wall seconds between snapshots
}

// Triage compares prev and cur. prev may be nil on the first cycle, in
// which case only the per-frame checks run.
func Triage(prev, cur *Snapshot, expectedFPS float64) *Health {
	h := &Health{
		ExpectedFPS: expectedFPS,
		Paused:      cur.Status.Speed == 0 || cur.Frame.Selected != "",
		Level:       LevelHealthy,
	}

	lo := orbit.PercentRadius(orbit.DomainMin)
	hi := orbit.PercentRadius(orbit.DomainMax)
	for _, p := range cur.Frame.Satellites {
		if p.CounterRotation != -p.Angle {
			h.BadPlacements++
		}
		if p.RadiusPercent < lo-1e-9 || p.RadiusPercent > hi+1e-9 {
			h.OutOfRing++
		}
	}

	if prev != nil && prev.Status.SceneID == cur.Status.SceneID {
		h.ObservedWindow = cur.Taken.Sub(prev.Taken).Seconds()
		if h.ObservedWindow > 0 {
			h.FrameRate = float64(cur.Status.Frame-min(cur.Status.Frame, prev.Status.Frame)) / h.ObservedWindow
			h.SceneRate = math.Max(0, cur.Status.Elapsed-prev.Status.Elapsed) / h.ObservedWindow
		}
	}

	switch {
	case prev != nil && h.ObservedWindow > 0 && cur.Status.Speed > 0 && h.FrameRate == 0:
		h.Level = LevelStalled
	case prev != nil && h.ObservedWindow > 0 && cur.Status.Speed > 0 && expectedFPS > 0 && h.FrameRate < expectedFPS*slowFraction:
		h.Level = LevelSlow
	case h.BadPlacements > 0 || h.OutOfRing > 0:
		h.Level = LevelWatch
	}
	return h
}
