package orbit

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidEntity indicates a record that cannot be placed on an orbit.
var ErrInvalidEntity = errors.New("orbit: invalid entity record")

// Record is the slice of a catalog entry the orbit engine consumes.
type Record struct {
	ID     string
	Radius float64
	Speed  float64
	Color  string
}

// InitialAngle returns the starting angle of entity i of n, in degrees,
// spacing siblings evenly around the circle.
func InitialAngle(i, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(i) / float64(n) * 360
}

// Layout validates records and turns them into evenly spaced entities.
// Problems are reported here, before any frame is computed.
func Layout(records []Record) ([]Entity, error) {
	seen := make(map[string]bool, len(records))
	entities := make([]Entity, len(records))

	for i, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("%w: record %d has no id", ErrInvalidEntity, i)
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidEntity, r.ID)
		}
		seen[r.ID] = true

		if math.IsNaN(r.Radius) || math.IsInf(r.Radius, 0) || r.Radius < 0 {
			return nil, fmt.Errorf("%w: %q radius %g", ErrInvalidEntity, r.ID, r.Radius)
		}
		if math.IsNaN(r.Speed) || math.IsInf(r.Speed, 0) || r.Speed < 0 {
			return nil, fmt.Errorf("%w: %q speed %g", ErrInvalidEntity, r.ID, r.Speed)
		}

		entities[i] = Entity{
			ID:           r.ID,
			Radius:       r.Radius,
			Speed:        r.Speed,
			InitialAngle: InitialAngle(i, len(records)),
			Color:        r.Color,
		}
	}
	return entities, nil
}
