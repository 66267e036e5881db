package field

import (
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/mission-control/internal/entropy"
)

// Params are the interaction values read by every frame update.
type Params struct {
	RotationSpeed float64 `json:"rotation_speed"` // rad/s, interactive fields only
	Zoom          float64 `json:"zoom"`           // base scale, interactive fields only
}

// DefaultParams is the resting state before any pointer input.
func DefaultParams() Params {
	return Params{RotationSpeed: 0.3, Zoom: 1}
}

// Field owns a point cloud. Base and current positions live in two flat
// buffers (x, y, z per point) so a frame update allocates nothing.
type Field struct {
	cfg     Config
	base    []float64
	current []float64
	noise   opensimplex.Noise // nil when turbulence is off
}

// New generates the field described by cfg.
func New(cfg Config) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("field %q: %w", cfg.Name, err)
	}
	if cfg.Direction == 0 {
		cfg.Direction = 1
	}

	f := &Field{
		cfg:     cfg,
		base:    make([]float64, cfg.Count*3),
		current: make([]float64, cfg.Count*3),
	}
	fill(f.base, cfg.Shape, entropy.NewStream(cfg.Seed), cfg.RadiusMin, cfg.RadiusMax)
	copy(f.current, f.base)

	if cfg.Turbulence != 0 {
		f.noise = opensimplex.New(int64(cfg.Seed))
	}
	return f, nil
}

// Config returns the configuration the field was built from.
func (f *Field) Config() Config {
	return f.cfg
}

// Len returns the number of points.
func (f *Field) Len() int {
	return len(f.base) / 3
}

// Base returns the fixed base position of point i.
func (f *Field) Base(i int) Vec3 {
	return Vec3{X: f.base[i*3], Y: f.base[i*3+1], Z: f.base[i*3+2]}
}

// Current returns the position of point i as of the last Update.
func (f *Field) Current(i int) Vec3 {
	return Vec3{X: f.current[i*3], Y: f.current[i*3+1], Z: f.current[i*3+2]}
}

// Positions returns the current buffer. Callers must not modify it.
func (f *Field) Positions() []float64 {
	return f.current
}

// Points copies the field out as Point values.
func (f *Field) Points() []Point {
	pts := make([]Point, f.Len())
	for i := range pts {
		pts[i] = Point{Base: f.Base(i), Current: f.Current(i)}
	}
	return pts
}

// Update rewrites every current position for elapsed time t (seconds).
// It reads only the base buffer, t, and p, so repeating a call with the
// same arguments gives the same result.
func (f *Field) Update(t float64, p Params) {
	rot := f.cfg.BaseRotation
	zoom := 1.0
	if f.cfg.Interactive {
		rot = p.RotationSpeed
		zoom = p.Zoom
	}

	n := f.Len()
	for i := 0; i < n; i++ {
		i3 := i * 3
		bx := f.base[i3] * zoom
		by := f.base[i3+1] * zoom
		bz := f.base[i3+2] * zoom

		angle := f.cfg.Direction*t*rot + float64(i)*f.cfg.PhaseStep
		sin, cos := math.Sincos(angle)
		x := bx*cos - bz*sin
		z := bx*sin + bz*cos
		y := by + math.Sin(t*f.cfg.WaveFrequency+float64(i)*f.cfg.WavePhaseStep+f.cfg.WavePhase)*f.cfg.WaveAmplitude

		if f.noise != nil {
			dx, dy, dz := f.drift(i3, t)
			x += dx
			y += dy
			z += dz
		}

		f.current[i3] = x
		f.current[i3+1] = y
		f.current[i3+2] = z
	}
}

// Turbulence sampling scales.
const (
	driftSpatial  = 0.35
	driftTemporal = 0.2
	driftAxisSkew = 31.7
)

// drift samples 4D simplex noise at the point's base position and time,
// with each axis offset so the three components are uncorrelated.
func (f *Field) drift(i3 int, t float64) (float64, float64, float64) {
	sx := f.base[i3] * driftSpatial
	sy := f.base[i3+1] * driftSpatial
	sz := f.base[i3+2] * driftSpatial
	st := t * driftTemporal
	a := f.cfg.Turbulence

	dx := f.noise.Eval4(sx, sy, sz, st) * a
	dy := f.noise.Eval4(sx+driftAxisSkew, sy, sz, st) * a
	dz := f.noise.Eval4(sx, sy+driftAxisSkew, sz, st) * a
	return dx, dy, dz
}
