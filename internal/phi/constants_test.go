package phi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoldenAngleDegrees(t *testing.T) {
	assert.InDelta(t, 137.5077, GoldenAngle*180/math.Pi, 1e-3)
}

func TestFibonacciUnitVectors(t *testing.T) {
	const n = 200
	for i := 0; i < n; i++ {
		x, y, z := Fibonacci(i, n)
		assert.InDelta(t, 1.0, math.Sqrt(x*x+y*y+z*z), 1e-12)
	}
}

func TestFibonacciEmpty(t *testing.T) {
	x, y, z := Fibonacci(0, 0)
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.Zero(t, z)
}
