package orbit

import "math"

// Planet is a body spawned by the user. Angles here are radians, matching
// the 3D scene the planets live in.
type Planet struct {
	ID     uint64  `json:"id" db:"id"`
	Color  string  `json:"color" db:"color"`
	Size   float64 `json:"size" db:"size"`
	Radius float64 `json:"radius" db:"radius"`
	Speed  float64 `json:"speed" db:"speed"`         // rad/s before the rotation multiplier
	Offset float64 `json:"offset" db:"orbit_offset"` // initial angle (rad)
}

type planetPreset struct {
	color  string
	size   float64
	radius float64
	speed  float64
	offset float64
}

// Presets cycle by planet ID so spawned planets are deterministic.
var planetPresets = [...]planetPreset{
	{"#FF6B6B", 0.12, 1.8, 0.45, 0.5},
	{"#4ECDC4", 0.18, 2.5, 0.65, 1.2},
	{"#FFE66D", 0.14, 3.2, 0.38, 2.1},
	{"#95E1D3", 0.22, 2.1, 0.72, 3.5},
	{"#F38181", 0.16, 3.8, 0.52, 4.2},
	{"#AA96DA", 0.13, 2.8, 0.88, 5.1},
	{"#FCBAD3", 0.19, 1.6, 0.42, 0.8},
	{"#A8D8EA", 0.15, 3.5, 0.58, 2.8},
}

// Planets is an append-only collection keyed by a monotonic counter.
// A key is never handed out twice, even after its planet is removed.
type Planets struct {
	nextID uint64
	list   []Planet
}

// NewPlanets creates an empty collection.
func NewPlanets() *Planets {
	return &Planets{}
}

// Add spawns the next planet.
func (ps *Planets) Add() Planet {
	preset := planetPresets[ps.nextID%uint64(len(planetPresets))]
	p := Planet{
		ID:     ps.nextID,
		Color:  preset.color,
		Size:   preset.size,
		Radius: preset.radius,
		Speed:  preset.speed,
		Offset: preset.offset,
	}
	ps.nextID++
	ps.list = append(ps.list, p)
	return p
}

// Remove deletes a planet by ID. Its key is not reused.
func (ps *Planets) Remove(id uint64) bool {
	for i, p := range ps.list {
		if p.ID == id {
			ps.list = append(ps.list[:i], ps.list[i+1:]...)
			return true
		}
	}
	return false
}

// List returns a copy of the current planets in spawn order.
func (ps *Planets) List() []Planet {
	return append([]Planet(nil), ps.list...)
}

// Len returns the number of live planets.
func (ps *Planets) Len() int {
	return len(ps.list)
}

// NextID returns the key the next Add will use.
func (ps *Planets) NextID() uint64 {
	return ps.nextID
}

// Restore replaces the collection with saved planets. The counter resumes
// above both next and the highest restored key.
func (ps *Planets) Restore(list []Planet, next uint64) {
	ps.list = append([]Planet(nil), list...)
	for _, p := range list {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	ps.nextID = next
}

// PlanetPosition is a planet's position for one frame.
type PlanetPosition struct {
	ID    uint64  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Color string  `json:"color"`
	Size  float64 `json:"size"`
}

// Position returns where p is at time t given the scene's rotation speed
// multiplier and zoom.
func (p Planet) Position(t, rotSpeed, zoom float64) PlanetPosition {
	a := t*p.Speed*rotSpeed + p.Offset
	sin, cos := math.Sincos(a)
	return PlanetPosition{
		ID:    p.ID,
		X:     cos * p.Radius * zoom,
		Y:     math.Sin(t*0.5+p.Offset) * 0.5 * zoom,
		Z:     sin * p.Radius * zoom,
		Color: p.Color,
		Size:  p.Size,
	}
}
