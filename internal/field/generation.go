// Field generation from a seeded stream.
// Every draw comes from one caller-owned entropy.Stream, so the same
// (seed, count, bounds, shape) always yields bit-identical positions.
package field

import (
	"math"

	"github.com/talgya/mission-control/internal/entropy"
	"github.com/talgya/mission-control/internal/phi"
)

// Generate returns count points distributed uniformly over solid angle with
// radii in [radiusMin, radiusMax]. Current equals Base for every point.
func Generate(seed uint32, count int, radiusMin, radiusMax float64) ([]Point, error) {
	if err := validate(count, radiusMin, radiusMax, ShapeSphere); err != nil {
		return nil, err
	}

	buf := make([]float64, count*3)
	fill(buf, ShapeSphere, entropy.NewStream(seed), radiusMin, radiusMax)

	points := make([]Point, count)
	for i := range points {
		v := Vec3{X: buf[i*3], Y: buf[i*3+1], Z: buf[i*3+2]}
		points[i] = Point{Base: v, Current: v}
	}
	return points, nil
}

// fill writes len(buf)/3 base positions into buf.
func fill(buf []float64, shape Shape, rng *entropy.Stream, radiusMin, radiusMax float64) {
	count := len(buf) / 3
	span := radiusMax - radiusMin

	for i := 0; i < count; i++ {
		var x, y, z float64

		switch shape {
		case ShapeCube:
			// Original background layout: a box centred on the origin.
			x = (rng.Float() - 0.5) * 2 * radiusMax
			y = (rng.Float() - 0.5) * 2 * radiusMax
			z = (rng.Float() - 0.5) * 2 * radiusMax

		case ShapeSpiral:
			ux, uy, uz := phi.Fibonacci(i, count)
			r := radiusMin + rng.Float()*span
			x, y, z = ux*r, uy*r, uz*r

		default:
			// Azimuth, then polar via acos(2u-1) so density is uniform per
			// unit solid angle instead of bunching at the poles.
			theta := rng.Float() * 2 * math.Pi
			polar := math.Acos(2*rng.Float() - 1)
			r := radiusMin + rng.Float()*span

			sinP := math.Sin(polar)
			x = r * sinP * math.Cos(theta)
			y = r * sinP * math.Sin(theta)
			z = r * math.Cos(polar)
		}

		buf[i*3] = x
		buf[i*3+1] = y
		buf[i*3+2] = z
	}
}
