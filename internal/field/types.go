// Package field builds seeded point clouds and moves them every frame.
// A field is generated once from an integer seed and never regenerated
// unless its configuration changes; per-frame motion is a pure function of
// the base positions, elapsed time, and interaction parameters.
package field

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidCount indicates a negative point count.
	ErrInvalidCount = errors.New("field: count must be >= 0")
	// ErrInvalidRadius indicates negative, non-finite, or inverted radius bounds.
	ErrInvalidRadius = errors.New("field: radius bounds must be finite, >= 0, and min <= max")
	// ErrUnknownShape indicates a Shape value outside the defined set.
	ErrUnknownShape = errors.New("field: unknown shape")
)

// Vec3 is a position in field space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Length returns the distance from the origin.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Point is one particle: its fixed base position and the position computed
// for the most recent frame.
type Point struct {
	Base    Vec3 `json:"base"`
	Current Vec3 `json:"current"`
}

// Shape selects how base positions are distributed.
type Shape uint8

const (
	ShapeSphere Shape = iota // Uniform over solid angle, radius in [min, max]
	ShapeCube                // Uniform box of half-width RadiusMax
	ShapeSpiral              // Fibonacci shell with seeded radial jitter
)

// ShapeName returns a human-readable name for a shape.
func ShapeName(s Shape) string {
	switch s {
	case ShapeSphere:
		return "sphere"
	case ShapeCube:
		return "cube"
	case ShapeSpiral:
		return "spiral"
	default:
		return "unknown"
	}
}

// Config holds field generation and motion parameters.
type Config struct {
	Name      string  `json:"name"`
	Seed      uint32  `json:"seed"`
	Count     int     `json:"count"`
	RadiusMin float64 `json:"radius_min"`
	RadiusMax float64 `json:"radius_max"`
	Shape     Shape   `json:"shape"`
	Color     string  `json:"color"`

	// Motion. Interactive fields take rotation speed and zoom from the
	// pointer controls; the rest rotate at BaseRotation with zoom 1.
	Interactive   bool    `json:"interactive"`
	BaseRotation  float64 `json:"base_rotation"`   // rad/s about Y
	Direction     float64 `json:"direction"`       // +1 or -1
	PhaseStep     float64 `json:"phase_step"`      // per-index angle offset (rad)
	WaveAmplitude float64 `json:"wave_amplitude"`  // Y wave height
	WaveFrequency float64 `json:"wave_frequency"`  // rad/s
	WavePhaseStep float64 `json:"wave_phase_step"` // per-index wave offset (rad)
	WavePhase     float64 `json:"wave_phase"`      // constant wave offset (π/2 turns sin into cos)
	Turbulence    float64 `json:"turbulence"`      // simplex drift amplitude, 0 = off
}

// Validate checks the generation parameters. Motion parameters are free.
func (c Config) Validate() error {
	return validate(c.Count, c.RadiusMin, c.RadiusMax, c.Shape)
}

func validate(count int, radiusMin, radiusMax float64, shape Shape) error {
	if count < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if !finite(radiusMin) || !finite(radiusMax) || radiusMin < 0 || radiusMax < 0 || radiusMin > radiusMax {
		return fmt.Errorf("%w: got [%g, %g]", ErrInvalidRadius, radiusMin, radiusMax)
	}
	if shape > ShapeSpiral {
		return fmt.Errorf("%w: %d", ErrUnknownShape, shape)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// PrimaryConfig is the cyan star layer that follows the pointer.
func PrimaryConfig() Config {
	return Config{
		Name:          "primary",
		Seed:          54321,
		Count:         1500,
		RadiusMin:     3,
		RadiusMax:     7,
		Shape:         ShapeSphere,
		Color:         "#00F5FF",
		Interactive:   true,
		BaseRotation:  0.3,
		Direction:     1,
		PhaseStep:     0.0001,
		WaveAmplitude: 0.1,
		WaveFrequency: 0.5,
		WavePhaseStep: 0.01,
	}
}

// SecondaryConfig is the magenta layer that counter-rotates behind the
// primary one at a fixed rate.
func SecondaryConfig() Config {
	return Config{
		Name:          "secondary",
		Seed:          67890,
		Count:         600,
		RadiusMin:     4,
		RadiusMax:     9,
		Shape:         ShapeSphere,
		Color:         "#FF006E",
		BaseRotation:  0.15,
		Direction:     -1,
		PhaseStep:     0.0002,
		WaveAmplitude: 0.15,
		WaveFrequency: 0.3,
		WavePhaseStep: 0.02,
		WavePhase:     math.Pi / 2,
	}
}
