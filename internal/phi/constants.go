// Package phi holds the golden-ratio constants behind the spiral field shape.
package phi

import "math"

// Phi is the golden ratio.
const Phi = 1.6180339887498948

// GoldenAngle is the golden angle in radians: 2π(1 − Φ⁻¹).
var GoldenAngle = 2 * math.Pi * (1 - 1/Phi)

// Fibonacci returns the unit vector of point i of an n-point Fibonacci sphere.
// Successive points advance by the golden angle in azimuth and evenly in z.
func Fibonacci(i, n int) (x, y, z float64) {
	if n <= 0 {
		return 0, 0, 0
	}
	z = 1 - (2*float64(i)+1)/float64(n)
	r := math.Sqrt(1 - z*z)
	theta := GoldenAngle * float64(i)
	return r * math.Cos(theta), r * math.Sin(theta), z
}
