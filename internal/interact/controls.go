// Package interact turns raw pointer movement into the rotation speed and
// zoom read by every frame update. Raw deltas are low-pass filtered so
// sparse or bursty pointer events never make the scene jump.
package interact

import (
	"github.com/charmbracelet/harmonica"
	"golang.org/x/exp/constraints"

	"github.com/talgya/mission-control/internal/field"
)

// Tuning for the pointer response.
const (
	RestRotation    = 0.3  // rad/s with no pointer movement
	RotationGain    = 8.0  // rad/s per unit of horizontal velocity
	RotationSmooth  = 0.15 // fraction of the gap closed per 60 Hz step
	MinRotation     = 0.02
	MaxRotation     = 3.0
	ZoomGain        = 1.5 // zoom per unit of vertical velocity (up = out)
	MinZoom         = 0.4
	MaxZoom         = 2.5
	stepHz          = 60
	maxStepsPerCall = 30
	zoomFrequency   = 6.0
	zoomDamping     = 1.0
)

// Controls holds the smoothed interaction state. It is not safe for
// concurrent use; the owning scene serialises access.
type Controls struct {
	// Pointer position in normalised device coordinates, [-1, 1].
	x, y float64
	// Movement since the last step, consumed exactly once.
	dx, dy float64

	rotation   float64
	zoomTarget float64
	zoom       float64
	zoomVel    float64

	spring harmonica.Spring
	acc    float64
}

// NewControls returns controls at rest.
func NewControls() *Controls {
	return &Controls{
		rotation:   RestRotation,
		zoomTarget: 1,
		zoom:       1,
		spring:     harmonica.NewSpring(harmonica.FPS(stepHz), zoomFrequency, zoomDamping),
	}
}

// Move records a pointer sample. Coordinates outside [-1, 1] are clamped.
func (c *Controls) Move(x, y float64) {
	x = clamp(x, -1, 1)
	y = clamp(y, -1, 1)
	c.dx += x - c.x
	c.dy += y - c.y
	c.x, c.y = x, y
}

// Step advances smoothing by dt seconds. Work is done in fixed 60 Hz steps
// so the response is the same at any frame rate.
func (c *Controls) Step(dt float64) {
	if dt <= 0 {
		return
	}
	const step = 1.0 / stepHz
	const eps = 1e-9
	c.acc += dt

	n := 0
	for c.acc >= step-eps && n < maxStepsPerCall {
		c.tick()
		c.acc -= step
		n++
	}
	if n == maxStepsPerCall {
		// Long stall: drop the backlog instead of replaying it.
		c.acc = 0
	}
}

func (c *Controls) tick() {
	velX, velY := c.dx, c.dy
	c.dx, c.dy = 0, 0

	target := RestRotation + velX*RotationGain
	c.rotation += (target - c.rotation) * RotationSmooth
	c.rotation = clamp(c.rotation, MinRotation, MaxRotation)

	c.zoomTarget = clamp(c.zoomTarget-velY*ZoomGain, MinZoom, MaxZoom)
	c.zoom, c.zoomVel = c.spring.Update(c.zoom, c.zoomVel, c.zoomTarget)
	c.zoom = clamp(c.zoom, MinZoom, MaxZoom)
}

// Params returns the values the frame update reads.
func (c *Controls) Params() field.Params {
	return field.Params{RotationSpeed: c.rotation, Zoom: c.zoom}
}

// ZoomTarget returns where the displayed zoom is heading.
func (c *Controls) ZoomTarget() float64 {
	return c.zoomTarget
}

// Reset returns the controls to rest.
func (c *Controls) Reset() {
	*c = *NewControls()
}

func clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
