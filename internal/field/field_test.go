package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKnownScenario(t *testing.T) {
	pts, err := Generate(12345, 3, 3, 7)
	require.NoError(t, err)
	require.Len(t, pts, 3)

	want := []Vec3{
		{X: 4.5163035630525492, Y: -0.57837746236148802, Z: -1.9080592228170707},
		{X: 1.8170924196337388, Y: -3.9953015574060564, Z: 0.082778960387675210},
		{X: 5.2892966826923749, Y: 2.6432249737678548, Z: 3.7227871401081574},
	}
	for i, w := range want {
		assert.InDelta(t, w.X, pts[i].Base.X, 1e-9, "point %d x", i)
		assert.InDelta(t, w.Y, pts[i].Base.Y, 1e-9, "point %d y", i)
		assert.InDelta(t, w.Z, pts[i].Base.Z, 1e-9, "point %d z", i)
		assert.Equal(t, pts[i].Base, pts[i].Current)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(99, 500, 1, 2)
	require.NoError(t, err)
	b, err := Generate(99, 500, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := Generate(100, 500, 1, 2)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGenerateCountFidelity(t *testing.T) {
	for _, n := range []int{0, 1, 2, 17, 1000} {
		pts, err := Generate(1, n, 0, 1)
		require.NoError(t, err)
		assert.Len(t, pts, n)
	}
}

func TestGenerateRadiusBound(t *testing.T) {
	pts, err := Generate(2024, 5000, 3, 7)
	require.NoError(t, err)
	for i, p := range pts {
		r := p.Base.Length()
		require.GreaterOrEqual(t, r, 3-1e-9, "point %d", i)
		require.LessOrEqual(t, r, 7+1e-9, "point %d", i)
	}
}

func TestGenerateEqualBounds(t *testing.T) {
	pts, err := Generate(5, 100, 2, 2)
	require.NoError(t, err)
	for _, p := range pts {
		assert.InDelta(t, 2.0, p.Base.Length(), 1e-9)
	}
}

func TestGenerateSphericalUniformity(t *testing.T) {
	const n = 10000
	const bins = 10
	pts, err := Generate(777, n, 1, 1)
	require.NoError(t, err)

	// Uniform over solid angle means cos(polar) = z/r is uniform on [-1, 1].
	var cosHist [bins]int
	// Polar angle bins: a naive linear polar angle would fill these evenly.
	var polarHist [bins]int
	for _, p := range pts {
		c := p.Base.Z / p.Base.Length()
		b := int((c + 1) / 2 * bins)
		if b == bins {
			b = bins - 1
		}
		cosHist[b]++

		polar := math.Acos(c)
		pb := int(polar / math.Pi * bins)
		if pb == bins {
			pb = bins - 1
		}
		polarHist[pb]++
	}

	for i, c := range cosHist {
		assert.InDelta(t, n/bins, c, 200, "cos(polar) bin %d", i)
	}
	// Expected share of the first polar bin is (1 - cos(π/10)) / 2 ≈ 2.4%.
	assert.Less(t, polarHist[0], 500)
	assert.Less(t, polarHist[bins-1], 500)
	assert.Greater(t, polarHist[bins/2], 1200)
}

func TestGenerateInvalid(t *testing.T) {
	_, err := Generate(1, -1, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = Generate(1, 10, 5, 1)
	assert.ErrorIs(t, err, ErrInvalidRadius)

	_, err = Generate(1, 10, -1, 1)
	assert.ErrorIs(t, err, ErrInvalidRadius)

	_, err = Generate(1, 10, 0, math.Inf(1))
	assert.ErrorIs(t, err, ErrInvalidRadius)

	_, err = Generate(1, 10, math.NaN(), 1)
	assert.ErrorIs(t, err, ErrInvalidRadius)
}

func TestNewMatchesGenerate(t *testing.T) {
	cfg := PrimaryConfig()
	f, err := New(cfg)
	require.NoError(t, err)

	pts, err := Generate(cfg.Seed, cfg.Count, cfg.RadiusMin, cfg.RadiusMax)
	require.NoError(t, err)

	require.Equal(t, len(pts), f.Len())
	for i := range pts {
		assert.Equal(t, pts[i].Base, f.Base(i))
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := PrimaryConfig()
	cfg.RadiusMin = 10
	_, err := New(cfg)
	assert.ErrorIs(t, err, ErrInvalidRadius)

	cfg = PrimaryConfig()
	cfg.Shape = Shape(42)
	_, err = New(cfg)
	assert.ErrorIs(t, err, ErrUnknownShape)
}

func TestUpdateIdempotent(t *testing.T) {
	cfg := PrimaryConfig()
	cfg.Count = 200
	cfg.Turbulence = 0.2
	f, err := New(cfg)
	require.NoError(t, err)

	p := Params{RotationSpeed: 0.8, Zoom: 1.4}
	f.Update(3.25, p)
	first := append([]float64(nil), f.Positions()...)

	f.Update(9.0, DefaultParams())
	f.Update(3.25, p)
	assert.Equal(t, first, f.Positions())
}

func TestUpdateLeavesBaseUntouched(t *testing.T) {
	cfg := SecondaryConfig()
	cfg.Count = 50
	f, err := New(cfg)
	require.NoError(t, err)

	before := f.Points()
	for i := 0; i < 10; i++ {
		f.Update(float64(i)*0.5, Params{RotationSpeed: 2, Zoom: 2})
	}
	for i, p := range before {
		assert.Equal(t, p.Base, f.Base(i))
	}
}

func TestUpdateAtZeroIsBasePlusWave(t *testing.T) {
	cfg := PrimaryConfig()
	cfg.Count = 20
	cfg.PhaseStep = 0
	f, err := New(cfg)
	require.NoError(t, err)

	f.Update(0, Params{RotationSpeed: 1, Zoom: 1})
	for i := 0; i < f.Len(); i++ {
		b, c := f.Base(i), f.Current(i)
		assert.InDelta(t, b.X, c.X, 1e-12)
		assert.InDelta(t, b.Z, c.Z, 1e-12)
		wave := math.Sin(float64(i)*cfg.WavePhaseStep) * cfg.WaveAmplitude
		assert.InDelta(t, b.Y+wave, c.Y, 1e-12)
	}
}

func TestUpdatePreservesHorizontalRadius(t *testing.T) {
	cfg := PrimaryConfig()
	cfg.Count = 100
	f, err := New(cfg)
	require.NoError(t, err)

	zoom := 1.7
	f.Update(12.5, Params{RotationSpeed: 0.9, Zoom: zoom})
	for i := 0; i < f.Len(); i++ {
		b, c := f.Base(i), f.Current(i)
		want := math.Hypot(b.X, b.Z) * zoom
		assert.InDelta(t, want, math.Hypot(c.X, c.Z), 1e-9)
	}
}

func TestSecondaryIgnoresPointer(t *testing.T) {
	cfg := SecondaryConfig()
	cfg.Count = 30
	f, err := New(cfg)
	require.NoError(t, err)

	f.Update(4, Params{RotationSpeed: 3, Zoom: 2.5})
	a := append([]float64(nil), f.Positions()...)
	f.Update(4, DefaultParams())
	assert.Equal(t, a, f.Positions())
}

func TestSecondaryCounterRotates(t *testing.T) {
	cfg := SecondaryConfig()
	cfg.Count = 1
	cfg.PhaseStep = 0
	f, err := New(cfg)
	require.NoError(t, err)

	b := f.Base(0)
	f.Update(1, DefaultParams())
	c := f.Current(0)

	baseAngle := math.Atan2(b.Z, b.X)
	gotAngle := math.Atan2(c.Z, c.X)
	delta := math.Remainder(gotAngle-baseAngle, 2*math.Pi)
	assert.InDelta(t, -cfg.BaseRotation, delta, 1e-9)
}

func TestShapes(t *testing.T) {
	for _, shape := range []Shape{ShapeSphere, ShapeCube, ShapeSpiral} {
		t.Run(ShapeName(shape), func(t *testing.T) {
			cfg := Config{Seed: 3, Count: 400, RadiusMin: 2, RadiusMax: 5, Shape: shape}
			f, err := New(cfg)
			require.NoError(t, err)
			g, err := New(cfg)
			require.NoError(t, err)
			assert.Equal(t, f.Points(), g.Points())

			for i := 0; i < f.Len(); i++ {
				b := f.Base(i)
				switch shape {
				case ShapeCube:
					assert.LessOrEqual(t, math.Abs(b.X), 5.0)
					assert.LessOrEqual(t, math.Abs(b.Y), 5.0)
					assert.LessOrEqual(t, math.Abs(b.Z), 5.0)
				default:
					assert.GreaterOrEqual(t, b.Length(), 2-1e-9)
					assert.LessOrEqual(t, b.Length(), 5+1e-9)
				}
			}
		})
	}
	assert.Equal(t, "unknown", ShapeName(Shape(9)))
}

func TestEmptyField(t *testing.T) {
	f, err := New(Config{Count: 0, RadiusMin: 0, RadiusMax: 0})
	require.NoError(t, err)
	f.Update(1, DefaultParams())
	assert.Zero(t, f.Len())
	assert.Empty(t, f.Points())
}
