package engine

import (
	"github.com/talgya/mission-control/internal/catalog"
	"github.com/talgya/mission-control/internal/field"
	"github.com/talgya/mission-control/internal/orbit"
)

// FieldFrame is one particle field as of the last update.
type FieldFrame struct {
	Name      string    `json:"name"`
	Seed      uint32    `json:"seed"`
	Count     int       `json:"count"`
	Color     string    `json:"color"`
	Positions []float64 `json:"positions,omitempty"` // x, y, z per point
}

// Frame is a copy-out snapshot of the scene. It shares no memory with the
// scene and may be read from any goroutine.
type Frame struct {
	SceneID       string                 `json:"scene_id"`
	Frame         uint64                 `json:"frame"`
	Rev           uint64                 `json:"rev"` // bumped by every state change
	Elapsed       float64                `json:"elapsed"`
	Filter        catalog.Filter         `json:"filter"`
	Selected      string                 `json:"selected,omitempty"`
	ContainerSize float64                `json:"container_size"`
	Params        field.Params           `json:"params"`
	ZoomTarget    float64                `json:"zoom_target"`
	Satellites    []orbit.Placement      `json:"satellites"`
	Planets       []orbit.PlanetPosition `json:"planets"`
	Primary       FieldFrame             `json:"primary"`
	Secondary     FieldFrame             `json:"secondary"`
}

// Frame returns a snapshot without particle positions.
func (s *Scene) Frame() Frame {
	return s.snapshot(false)
}

// FrameWithPoints returns a snapshot including every particle position.
func (s *Scene) FrameWithPoints() Frame {
	return s.snapshot(true)
}

func (s *Scene) snapshot(points bool) Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.controls.Params()
	f := Frame{
		SceneID:       s.ID,
		Frame:         s.frame,
		Rev:           s.rev,
		Elapsed:       s.elapsed,
		Filter:        s.filter,
		Selected:      s.selected,
		ContainerSize: s.containerSize,
		Params:        p,
		ZoomTarget:    s.controls.ZoomTarget(),
		Satellites:    make([]orbit.Placement, len(s.motions)),
		Primary:       fieldFrame(s.primary, points),
		Secondary:     fieldFrame(s.secondary, points),
	}
	for i := range s.motions {
		f.Satellites[i] = s.motions[i].Place(s.orbits, s.pauseMode, s.containerSize)
	}

	list := s.planets.List()
	f.Planets = make([]orbit.PlanetPosition, len(list))
	for i, pl := range list {
		f.Planets[i] = pl.Position(s.elapsed, p.RotationSpeed, p.Zoom)
	}
	return f
}

func fieldFrame(fl *field.Field, points bool) FieldFrame {
	cfg := fl.Config()
	ff := FieldFrame{Name: cfg.Name, Seed: cfg.Seed, Count: fl.Len(), Color: cfg.Color}
	if points {
		ff.Positions = append([]float64(nil), fl.Positions()...)
	}
	return ff
}

// Status is a compact summary of the scene.
type Status struct {
	SceneID    string         `json:"scene_id"`
	Frame      uint64         `json:"frame"`
	Elapsed    float64        `json:"elapsed"`
	Points     int            `json:"points"`
	Satellites int            `json:"satellites"`
	Planets    int            `json:"planets"`
	NextPlanet uint64         `json:"next_planet"`
	Filter     catalog.Filter `json:"filter"`
	Selected   string         `json:"selected,omitempty"`
	Seeds      [2]uint32      `json:"seeds"`
}

// Status summarises the scene.
func (s *Scene) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Status{
		SceneID:    s.ID,
		Frame:      s.frame,
		Elapsed:    s.elapsed,
		Points:     s.primary.Len() + s.secondary.Len(),
		Satellites: len(s.motions),
		Planets:    s.planets.Len(),
		NextPlanet: s.planets.NextID(),
		Filter:     s.filter,
		Selected:   s.selected,
		Seeds:      [2]uint32{s.primary.Config().Seed, s.secondary.Config().Seed},
	}
}
