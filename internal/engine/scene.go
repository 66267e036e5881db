package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/talgya/mission-control/internal/catalog"
	"github.com/talgya/mission-control/internal/field"
	"github.com/talgya/mission-control/internal/interact"
	"github.com/talgya/mission-control/internal/orbit"
)

// Scene errors.
var (
	ErrUnknownEntity = errors.New("engine: unknown entity")
	ErrUnknownPlanet = errors.New("engine: unknown planet")
	ErrInvalidSize   = errors.New("engine: invalid container size")
)

// Scene defaults.
const (
	DefaultContainerSize = 800.0
	// secondarySeedOffset keeps the secondary field's seed a fixed distance
	// from the primary's when the host overrides the seed.
	secondarySeedOffset = 13569
	maxEvents           = 256
)

// Config describes a scene at construction.
type Config struct {
	Primary       field.Config
	Secondary     field.Config
	Catalog       *catalog.Catalog
	Filter        catalog.Filter
	ContainerSize float64
	PauseMode     orbit.PauseMode
	CycleSeconds  float64
}

// DefaultConfig returns the stock Mission Control scene.
func DefaultConfig() Config {
	return Config{
		Primary:       field.PrimaryConfig(),
		Secondary:     field.SecondaryConfig(),
		Catalog:       catalog.Default(),
		Filter:        catalog.FilterAll,
		ContainerSize: DefaultContainerSize,
		PauseMode:     orbit.PauseSnap,
		CycleSeconds:  orbit.DefaultCycleSeconds,
	}
}

// WithSeed reseeds both fields from one value.
func (c Config) WithSeed(seed uint32) Config {
	c.Primary.Seed = seed
	c.Secondary.Seed = seed + secondarySeedOffset
	return c
}

// Event is something notable that happened in the scene.
type Event struct {
	Frame       uint64  `json:"frame" db:"frame"`
	Elapsed     float64 `json:"elapsed" db:"elapsed"`
	Description string  `json:"description" db:"description"`
	Category    string  `json:"category" db:"category"` // "selection", "filter" or "planet"
}

// Scene is the complete Mission Control state: two particle fields, the
// orbiting catalog view, user planets and the pointer controls. All
// methods are safe for concurrent use.
type Scene struct {
	ID string

	mu        sync.RWMutex
	catalog   *catalog.Catalog
	primary   *field.Field
	secondary *field.Field
	orbits    orbit.Engine
	pauseMode orbit.PauseMode
	motions   []orbit.Motion
	index     map[string]int
	planets   *orbit.Planets
	controls  *interact.Controls

	filter        catalog.Filter
	selected      string
	containerSize float64
	elapsed       float64
	frame         uint64
	rev           uint64

	events      []Event
	pending     []Event
	pendingBase uint64 // sequence number of pending[0]
}

// NewScene builds a scene. Invalid field or catalog configuration is
// rejected here; per-frame operations never fail on it later.
func NewScene(cfg Config) (*Scene, error) {
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.Default()
	}
	filter, err := catalog.ParseFilter(string(cfg.Filter))
	if err != nil {
		return nil, err
	}
	cfg.Filter = filter
	if cfg.ContainerSize == 0 {
		cfg.ContainerSize = DefaultContainerSize
	}
	if !validSize(cfg.ContainerSize) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, cfg.ContainerSize)
	}

	primary, err := field.New(cfg.Primary)
	if err != nil {
		return nil, fmt.Errorf("primary field: %w", err)
	}
	secondary, err := field.New(cfg.Secondary)
	if err != nil {
		return nil, fmt.Errorf("secondary field: %w", err)
	}

	s := &Scene{
		ID:            uuid.New().String(),
		catalog:       cfg.Catalog,
		primary:       primary,
		secondary:     secondary,
		orbits:        orbit.Engine{CycleSeconds: cfg.CycleSeconds},
		pauseMode:     cfg.PauseMode,
		planets:       orbit.NewPlanets(),
		controls:      interact.NewControls(),
		filter:        cfg.Filter,
		containerSize: cfg.ContainerSize,
	}
	if err := s.layout(); err != nil {
		return nil, err
	}
	s.primary.Update(0, s.controls.Params())
	s.secondary.Update(0, s.controls.Params())

	slog.Info("scene created",
		"id", s.ID,
		"points", humanize.Comma(int64(primary.Len()+secondary.Len())),
		"entities", len(s.motions),
		"filter", s.filter,
	)
	return s, nil
}

// layout rebuilds the orbiting entities for the current filter. Every
// clock restarts, which is what a new layout means.
func (s *Scene) layout() error {
	view := s.catalog.View(s.filter)
	ents, err := orbit.Layout(catalog.Records(view))
	if err != nil {
		return fmt.Errorf("layout %s: %w", s.filter, err)
	}
	s.motions = orbit.NewMotions(ents)
	s.index = make(map[string]int, len(ents))
	for i, e := range ents {
		s.index[e.ID] = i
	}

	if _, ok := s.index[s.selected]; !ok {
		s.selected = ""
	}
	s.applySelection()
	return nil
}

// applySelection pauses every satellite while anything is selected.
func (s *Scene) applySelection() {
	paused := s.selected != ""
	for i := range s.motions {
		s.motions[i].SetPaused(paused, s.pauseMode)
	}
}

// Advance moves the scene forward by dt seconds. Non-positive or
// non-finite steps are ignored.
func (s *Scene) Advance(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.elapsed += dt
	s.frame++
	s.rev++

	s.controls.Step(dt)
	p := s.controls.Params()
	s.primary.Update(s.elapsed, p)
	s.secondary.Update(s.elapsed, p)

	for i := range s.motions {
		s.motions[i].Advance(dt)
	}
}

// Select opens the dossier for id and pauses every satellite.
func (s *Scene) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[id]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEntity, id)
	}
	if s.selected == id {
		return nil
	}
	s.selected = id
	s.applySelection()
	s.rev++

	title := id
	if ip, ok := s.catalog.Get(id); ok {
		title = ip.Title
	}
	s.logEvent(fmt.Sprintf("Selected %s", title), "selection")
	return nil
}

// Deselect closes the dossier and resumes orbiting.
func (s *Scene) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == "" {
		return
	}
	s.selected = ""
	s.applySelection()
	s.rev++
	s.logEvent("Selection cleared", "selection")
}

// Selected returns the selected id, or "" when nothing is selected.
func (s *Scene) Selected() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// SetFilter switches the catalog view and lays the satellites out again.
// A selection outside the new view is cleared.
func (s *Scene) SetFilter(f catalog.Filter) error {
	f, err := catalog.ParseFilter(string(f))
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if f == s.filter {
		return nil
	}
	prev := s.filter
	s.filter = f
	if err := s.layout(); err != nil {
		s.filter = prev
		_ = s.layout()
		return err
	}
	s.rev++
	s.logEvent(fmt.Sprintf("Filter %s → %s (%d satellites)", prev, f, len(s.motions)), "filter")
	return nil
}

// Filter returns the active catalog filter.
func (s *Scene) Filter() catalog.Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// SetContainerSize sets the rendered container edge in pixels.
func (s *Scene) SetContainerSize(px float64) error {
	if !validSize(px) {
		return fmt.Errorf("%w: %v", ErrInvalidSize, px)
	}
	s.mu.Lock()
	s.containerSize = px
	s.rev++
	s.mu.Unlock()
	return nil
}

func validSize(px float64) bool {
	return px > 0 && !math.IsInf(px, 0)
}

// PointerMove records a pointer sample in normalised device coordinates.
func (s *Scene) PointerMove(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	s.mu.Lock()
	s.controls.Move(x, y)
	s.rev++
	s.mu.Unlock()
}

// AddPlanet spawns the next preset planet.
func (s *Scene) AddPlanet() orbit.Planet {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.planets.Add()
	s.rev++
	s.logEvent(fmt.Sprintf("Planet %d spawned at radius %.1f", p.ID, p.Radius), "planet")
	return p
}

// RemovePlanet deletes a planet. Its id is never handed out again.
func (s *Scene) RemovePlanet(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.planets.Remove(id) {
		return fmt.Errorf("%w: %d", ErrUnknownPlanet, id)
	}
	s.rev++
	s.logEvent(fmt.Sprintf("Planet %d removed", id), "planet")
	return nil
}

// Planets returns the live planets and the next id to be issued.
func (s *Scene) Planets() ([]orbit.Planet, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.planets.List(), s.planets.NextID()
}

// RestorePlanets replaces the planets with a saved set.
func (s *Scene) RestorePlanets(list []orbit.Planet, next uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.planets.Restore(list, next)
	s.rev++
}

// Resume restores the scene clock, e.g. from saved scene meta. Satellite
// clocks are not saved and start from their initial angles.
func (s *Scene) Resume(frame uint64, elapsed float64) {
	if !(elapsed >= 0) || math.IsInf(elapsed, 0) {
		elapsed = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = frame
	s.elapsed = elapsed
	s.rev++
	p := s.controls.Params()
	s.primary.Update(s.elapsed, p)
	s.secondary.Update(s.elapsed, p)
}

// logEvent appends to the ring and the pending queue. Caller holds mu.
func (s *Scene) logEvent(desc, category string) {
	ev := Event{Frame: s.frame, Elapsed: s.elapsed, Description: desc, Category: category}
	s.events = append(s.events, ev)
	if len(s.events) > maxEvents {
		s.events = s.events[len(s.events)-maxEvents:]
	}
	s.pending = append(s.pending, ev)
	if over := len(s.pending) - maxEvents; over > 0 {
		s.pending = s.pending[over:]
		s.pendingBase += uint64(over)
	}
}

// Events returns up to n of the most recent events, oldest first.
// n <= 0 returns all retained events.
func (s *Scene) Events(n int) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ev := s.events
	if n > 0 && len(ev) > n {
		ev = ev[len(ev)-n:]
	}
	return append([]Event(nil), ev...)
}

// PendingEvents returns the events not yet acknowledged, and the sequence
// number to pass to AckEvents once they are stored.
func (s *Scene) PendingEvents() ([]Event, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Event(nil), s.pending...), s.pendingBase + uint64(len(s.pending))
}

// AckEvents drops pending events numbered below upTo. Events logged after
// the matching PendingEvents call stay queued.
func (s *Scene) AckEvents(upTo uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if upTo <= s.pendingBase {
		return
	}
	n := upTo - s.pendingBase
	if n > uint64(len(s.pending)) {
		n = uint64(len(s.pending))
	}
	s.pending = append([]Event(nil), s.pending[n:]...)
	s.pendingBase += n
}

// Durable is the part of the scene that survives a restart, read under a
// single lock so its fields agree with each other.
type Durable struct {
	SceneID       string
	Seed          uint32
	Filter        catalog.Filter
	ContainerSize float64
	Planets       []orbit.Planet
	NextPlanet    uint64
	Frame         uint64
	Elapsed       float64
	Events        []Event
	EventsUpTo    uint64
}

// Durable snapshots the persistent state.
func (s *Scene) Durable() Durable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Durable{
		SceneID:       s.ID,
		Seed:          s.primary.Config().Seed,
		Filter:        s.filter,
		ContainerSize: s.containerSize,
		Planets:       s.planets.List(),
		NextPlanet:    s.planets.NextID(),
		Frame:         s.frame,
		Elapsed:       s.elapsed,
		Events:        append([]Event(nil), s.pending...),
		EventsUpTo:    s.pendingBase + uint64(len(s.pending)),
	}
}
