// Package orbit places catalog entities on circular orbits around a shared
// centre and advances them with elapsed time.
// Angles are in degrees and accumulate without wraparound.
package orbit

import (
	"math"
	"time"
)

// DefaultCycleSeconds is the time a speed-1.0 entity takes for one orbit.
const DefaultCycleSeconds = 80.0

// Entity is one item on an orbit.
type Entity struct {
	ID           string  `json:"id"`
	Radius       float64 `json:"radius"`        // logical units, see DomainMin/DomainMax
	Speed        float64 `json:"speed"`         // relative angular velocity
	InitialAngle float64 `json:"initial_angle"` // degrees
	Paused       bool    `json:"paused"`
	Color        string  `json:"color"`
}

// Stationary reports whether the entity never advances: paused, or a speed
// of zero (whose cycle duration would be undefined).
func (e Entity) Stationary() bool {
	return e.Paused || e.Speed == 0
}

// Engine computes orbit angles. The zero value uses DefaultCycleSeconds.
type Engine struct {
	CycleSeconds float64
}

// NewEngine creates an engine with the default cycle.
func NewEngine() Engine {
	return Engine{CycleSeconds: DefaultCycleSeconds}
}

func (g Engine) cycle() float64 {
	if g.CycleSeconds <= 0 {
		return DefaultCycleSeconds
	}
	return g.CycleSeconds
}

// Rate returns the base angular rate in degrees per second.
func (g Engine) Rate() float64 {
	return 360 / g.cycle()
}

// Angle returns the entity's orbit angle at elapsed time t (seconds).
// Stationary entities stay at their initial angle.
func (g Engine) Angle(e Entity, t float64) float64 {
	if e.Stationary() {
		return e.InitialAngle
	}
	return e.InitialAngle + t*g.Rate()*e.Speed
}

// CounterRotation returns the rotation that keeps a child of the orbiting
// token upright. It is always the exact negation of Angle.
func (g Engine) CounterRotation(e Entity, t float64) float64 {
	return -g.Angle(e, t)
}

// CycleDuration returns how long one full orbit takes. The second result is
// false when the entity is stationary.
func (g Engine) CycleDuration(e Entity) (time.Duration, bool) {
	if e.Speed == 0 {
		return 0, false
	}
	secs := g.cycle() / math.Abs(e.Speed)
	return time.Duration(secs * float64(time.Second)), true
}

// Offset returns the (x, z) offset from the centre for an orbit of the
// given rendered radius.
func (g Engine) Offset(e Entity, t, radius float64) (x, z float64) {
	sin, cos := math.Sincos(g.Angle(e, t) * math.Pi / 180)
	return cos * radius, sin * radius
}

// Placement is everything a renderer needs to draw one entity for a frame.
type Placement struct {
	ID              string  `json:"id"`
	Angle           float64 `json:"angle"`
	CounterRotation float64 `json:"counter_rotation"`
	RadiusPercent   float64 `json:"radius_percent"`
	RadiusPx        float64 `json:"radius_px"`
	X               float64 `json:"x"`
	Z               float64 `json:"z"`
	Paused          bool    `json:"paused"`
	Color           string  `json:"color"`
}

// Place computes the placement of e at time t inside a container of the
// given size in pixels.
func (g Engine) Place(e Entity, t, containerSize float64) Placement {
	px := PixelRadius(e.Radius, containerSize)
	x, z := g.Offset(e, t, px)
	angle := g.Angle(e, t)
	return Placement{
		ID:              e.ID,
		Angle:           angle,
		CounterRotation: -angle,
		RadiusPercent:   PercentRadius(e.Radius),
		RadiusPx:        px,
		X:               x,
		Z:               z,
		Paused:          e.Paused,
		Color:           e.Color,
	}
}

// PlaceAll places every entity at the same time t.
func (g Engine) PlaceAll(entities []Entity, t, containerSize float64) []Placement {
	out := make([]Placement, len(entities))
	for i, e := range entities {
		out[i] = g.Place(e, t, containerSize)
	}
	return out
}
