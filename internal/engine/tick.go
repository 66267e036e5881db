// Package engine provides the frame loop and the Scene it drives.
// Motion is driven by elapsed time, never by frame count, so the scene
// moves at the same speed whatever the frame rate.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"
)

// Frame loop defaults.
const (
	DefaultFPS = 60
	// MaxFrameStep caps the time one frame may advance the scene, so a
	// stalled host resumes smoothly instead of jumping.
	MaxFrameStep = 0.25
)

// Engine drives a scene forward once per frame.
type Engine struct {
	Interval time.Duration // Target frame interval

	// Callbacks for each layer, populated during setup.
	OnFrame  func(frame uint64, dt float64) // Every frame, dt in scene seconds
	OnSecond func(frame uint64)             // Each whole scene second crossed
	OnMinute func(frame uint64)             // Each whole scene minute crossed

	mu      sync.Mutex
	frame   uint64
	elapsed float64 // scene seconds
	speed   float64 // 1.0 = real time, 0 = paused
	running bool
	cancel  context.CancelFunc
}

// NewEngine creates an engine running at fps frames per second.
func NewEngine(fps int) *Engine {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Engine{
		Interval: time.Second / time.Duration(fps),
		speed:    1.0,
	}
}

// Run starts the frame loop. Blocks until ctx is cancelled or Stop is called.
func (e *Engine) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	e.mu.Lock()
	e.running = true
	e.cancel = cancel
	e.mu.Unlock()
	defer cancel()

	slog.Info("frame engine started", "frame", e.Frame(), "interval", e.Interval, "speed", e.Speed())

	ticker := time.NewTicker(e.Interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			e.mu.Lock()
			e.running = false
			e.mu.Unlock()
			slog.Info("frame engine stopped", "frame", e.Frame(), "elapsed", FormatElapsed(e.Elapsed()))
			return
		case now := <-ticker.C:
			wall := now.Sub(last).Seconds()
			last = now
			e.Step(math.Min(wall, MaxFrameStep))
		}
	}
}

// Stop halts the frame loop.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel != nil {
		e.cancel()
	}
}

// Running reports whether Run is active.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Step advances by wall seconds scaled by the current speed and fires
// callbacks. A paused engine (speed 0) does not advance or fire.
func (e *Engine) Step(wall float64) {
	e.mu.Lock()
	if e.speed <= 0 || wall <= 0 {
		e.mu.Unlock()
		return
	}
	dt := wall * e.speed
	before := e.elapsed
	e.elapsed += dt
	e.frame++
	frame, after := e.frame, e.elapsed
	e.mu.Unlock()

	if e.OnFrame != nil {
		e.OnFrame(frame, dt)
	}
	if e.OnSecond != nil && math.Floor(after) > math.Floor(before) {
		e.OnSecond(frame)
	}
	if e.OnMinute != nil && math.Floor(after/60) > math.Floor(before/60) {
		e.OnMinute(frame)
	}
}

// Frame returns the number of frames stepped.
func (e *Engine) Frame() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frame
}

// Elapsed returns scene seconds since the engine started.
func (e *Engine) Elapsed() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.elapsed
}

// Speed returns the time multiplier.
func (e *Engine) Speed() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.speed
}

// SetSpeed changes the time multiplier. Negative values pause.
func (e *Engine) SetSpeed(speed float64) {
	if speed < 0 || math.IsNaN(speed) {
		speed = 0
	}
	e.mu.Lock()
	e.speed = speed
	e.mu.Unlock()
}

// Resume restores frame and elapsed counters, e.g. from saved scene meta.
func (e *Engine) Resume(frame uint64, elapsed float64) {
	e.mu.Lock()
	e.frame = frame
	e.elapsed = elapsed
	e.mu.Unlock()
}

// FormatElapsed returns a compact clock string for scene seconds.
func FormatElapsed(secs float64) string {
	total := int64(secs)
	h := total / 3600
	m := (total / 60) % 60
	s := total % 60
	ms := int64((secs - math.Floor(secs)) * 1000)
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d.%03d", h, m, s, ms)
	}
	return fmt.Sprintf("%d:%02d.%03d", m, s, ms)
}
