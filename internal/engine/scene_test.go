package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/mission-control/internal/catalog"
	"github.com/talgya/mission-control/internal/orbit"
)

func newTestScene(t *testing.T) *Scene {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Primary.Count = 40
	cfg.Secondary.Count = 20
	s, err := NewScene(cfg)
	require.NoError(t, err)
	return s
}

func satellite(t *testing.T, f Frame, id string) orbit.Placement {
	t.Helper()
	for _, p := range f.Satellites {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("satellite %q not in frame", id)
	return orbit.Placement{}
}

func TestNewSceneLayout(t *testing.T) {
	s := newTestScene(t)
	f := s.Frame()

	require.Len(t, f.Satellites, 10)
	for i, p := range f.Satellites {
		assert.InDelta(t, float64(i)*36, p.Angle, 1e-12, p.ID)
		assert.Equal(t, -p.Angle, p.CounterRotation)
		assert.False(t, p.Paused)
	}
	assert.Equal(t, 40, f.Primary.Count)
	assert.Equal(t, 20, f.Secondary.Count)
	assert.Empty(t, f.Primary.Positions)
	assert.NotEmpty(t, s.ID)
}

func TestNewSceneRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Primary.Count = -1
	_, err := NewScene(cfg)
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.ContainerSize = -5
	_, err = NewScene(cfg)
	assert.ErrorIs(t, err, ErrInvalidSize)

	cfg = DefaultConfig()
	cfg.Filter = "games"
	_, err = NewScene(cfg)
	assert.ErrorIs(t, err, catalog.ErrUnknownFilter)
}

func TestAdvanceMovesSatellitesByElapsedTime(t *testing.T) {
	s := newTestScene(t)
	s.Advance(10)

	// incharacter: speed 1, 360/80 deg/s.
	p := satellite(t, s.Frame(), "incharacter")
	assert.InDelta(t, 45.0, p.Angle, 1e-9)

	// smash-the-police-state: slot 9 of 10, speed 0.2.
	p = satellite(t, s.Frame(), "smash-the-police-state")
	assert.InDelta(t, 324+10*4.5*0.2, p.Angle, 1e-9)
}

func TestAdvanceFrameRateIndependent(t *testing.T) {
	a := newTestScene(t)
	b := newTestScene(t)
	for i := 0; i < 120; i++ {
		a.Advance(1.0 / 60)
	}
	for i := 0; i < 40; i++ {
		b.Advance(3.0 / 60)
	}
	fa, fb := a.Frame(), b.Frame()
	for i := range fa.Satellites {
		assert.InDelta(t, fa.Satellites[i].Angle, fb.Satellites[i].Angle, 1e-9)
	}
	assert.InDelta(t, fa.Elapsed, fb.Elapsed, 1e-12)
}

func TestAdvanceIgnoresBadSteps(t *testing.T) {
	s := newTestScene(t)
	s.Advance(0)
	s.Advance(-1)
	st := s.Status()
	assert.Zero(t, st.Frame)
	assert.Zero(t, st.Elapsed)
}

func TestSelectPausesAndHolds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Primary.Count = 0
	cfg.Secondary.Count = 0
	cfg.PauseMode = orbit.PauseHold
	s, err := NewScene(cfg)
	require.NoError(t, err)
	s.Advance(4)
	before := satellite(t, s.Frame(), "proximus")

	require.NoError(t, s.Select("dignity"))
	assert.Equal(t, "dignity", s.Selected())
	s.Advance(20)
	held := s.Frame()
	for _, p := range held.Satellites {
		assert.True(t, p.Paused)
	}
	assert.InDelta(t, before.Angle, satellite(t, held, "proximus").Angle, 1e-12)

	s.Deselect()
	assert.Empty(t, s.Selected())
	s.Advance(2)
	after := satellite(t, s.Frame(), "proximus")
	assert.InDelta(t, before.Angle+2*4.5*0.85, after.Angle, 1e-9)
}

func TestSelectSnapsToInitialAndRestarts(t *testing.T) {
	s := newTestScene(t)
	for i := 0; i < 600; i++ {
		s.Advance(1.0 / 60)
	}
	require.NoError(t, s.Select("incharacter"))
	p := satellite(t, s.Frame(), "proximus")
	assert.True(t, p.Paused)
	assert.Equal(t, 36.0, p.Angle)

	s.Advance(5)
	s.Deselect()
	p = satellite(t, s.Frame(), "proximus")
	assert.False(t, p.Paused)
	assert.Equal(t, 36.0, p.Angle)

	s.Advance(1.0 / 60)
	p = satellite(t, s.Frame(), "proximus")
	assert.InDelta(t, 36+4.5*0.85/60, p.Angle, 1e-9)
}

func TestSelectUnknown(t *testing.T) {
	s := newTestScene(t)
	err := s.Select("nope")
	assert.ErrorIs(t, err, ErrUnknownEntity)
	assert.Empty(t, s.Selected())
}

func TestSetFilterRebuildsLayout(t *testing.T) {
	s := newTestScene(t)
	require.NoError(t, s.Select("dignity"))

	require.NoError(t, s.SetFilter(catalog.FilterSDK))
	f := s.Frame()
	assert.Equal(t, catalog.FilterSDK, f.Filter)
	require.Len(t, f.Satellites, 6)
	for i, p := range f.Satellites {
		assert.InDelta(t, float64(i)*60, p.Angle, 1e-12)
	}
	// dignity is an investment IP, so the selection is gone.
	assert.Empty(t, f.Selected)

	require.NoError(t, s.SetFilter(catalog.FilterInvestment))
	require.NoError(t, s.Select("dignity"))
	require.NoError(t, s.SetFilter(""))
	assert.Equal(t, catalog.FilterAll, s.Filter())
	assert.Equal(t, "dignity", s.Selected())
	for _, p := range s.Frame().Satellites {
		assert.True(t, p.Paused)
	}

	assert.ErrorIs(t, s.SetFilter("games"), catalog.ErrUnknownFilter)
	assert.Equal(t, catalog.FilterAll, s.Filter())
}

func TestSetContainerSize(t *testing.T) {
	s := newTestScene(t)
	require.NoError(t, s.SetContainerSize(1000))
	p := satellite(t, s.Frame(), "incharacter")
	ip, ok := catalog.Default().Get("incharacter")
	require.True(t, ok)
	assert.InDelta(t, orbit.PixelRadius(ip.OrbitRadius, 1000), p.RadiusPx, 1e-9)

	assert.ErrorIs(t, s.SetContainerSize(0), ErrInvalidSize)
	assert.ErrorIs(t, s.SetContainerSize(-3), ErrInvalidSize)
	assert.Equal(t, 1000.0, s.Frame().ContainerSize)
}

func TestPlanetKeysNeverReused(t *testing.T) {
	s := newTestScene(t)
	a := s.AddPlanet()
	b := s.AddPlanet()
	require.NoError(t, s.RemovePlanet(b.ID))
	c := s.AddPlanet()

	assert.Equal(t, uint64(0), a.ID)
	assert.Equal(t, uint64(2), c.ID)
	assert.ErrorIs(t, s.RemovePlanet(b.ID), ErrUnknownPlanet)

	list, next := s.Planets()
	require.Len(t, list, 2)
	assert.Equal(t, uint64(3), next)
	assert.Len(t, s.Frame().Planets, 2)
}

func TestRestorePlanets(t *testing.T) {
	s := newTestScene(t)
	s.RestorePlanets([]orbit.Planet{{ID: 7, Radius: 2, Speed: 0.5}}, 3)
	p := s.AddPlanet()
	assert.Equal(t, uint64(8), p.ID)
}

func TestFrameWithPointsIsACopy(t *testing.T) {
	s := newTestScene(t)
	s.Advance(0.5)
	f := s.FrameWithPoints()
	require.Len(t, f.Primary.Positions, 40*3)
	require.Len(t, f.Secondary.Positions, 20*3)

	orig := f.Primary.Positions[0]
	f.Primary.Positions[0] = 1e6
	assert.Equal(t, orig, s.FrameWithPoints().Primary.Positions[0])
}

func TestPointerMoveChangesRotation(t *testing.T) {
	s := newTestScene(t)
	s.PointerMove(0.2, 0)
	s.Advance(1.0 / 60)
	assert.Greater(t, s.Frame().Params.RotationSpeed, 0.3)
}

func TestEventsRingAndDrain(t *testing.T) {
	s := newTestScene(t)
	for i := 0; i < maxEvents+10; i++ {
		s.AddPlanet()
	}
	assert.Len(t, s.Events(0), maxEvents)
	assert.Len(t, s.Events(5), 5)
	assert.Equal(t, "planet", s.Events(1)[0].Category)

	pending, upTo := s.PendingEvents()
	assert.Len(t, pending, maxEvents)
	assert.Equal(t, uint64(maxEvents+10), upTo)
	s.AckEvents(upTo)
	pending, _ = s.PendingEvents()
	assert.Empty(t, pending)
}

func TestAckKeepsLaterEvents(t *testing.T) {
	s := newTestScene(t)
	s.AddPlanet()
	_, upTo := s.PendingEvents()
	s.AddPlanet()

	s.AckEvents(upTo)
	pending, _ := s.PendingEvents()
	require.Len(t, pending, 1)
	assert.Equal(t, "Planet 1 spawned at radius 2.5", pending[0].Description)

	// Stale acks are ignored.
	s.AckEvents(upTo)
	pending, _ = s.PendingEvents()
	assert.Len(t, pending, 1)
}

func TestDurableIsConsistent(t *testing.T) {
	s := newTestScene(t)
	s.AddPlanet()
	s.AddPlanet()
	require.NoError(t, s.RemovePlanet(0))
	require.NoError(t, s.SetContainerSize(500))
	s.Advance(2)

	d := s.Durable()
	assert.Equal(t, s.ID, d.SceneID)
	assert.Equal(t, uint32(54321), d.Seed)
	require.Len(t, d.Planets, 1)
	assert.Equal(t, uint64(2), d.NextPlanet)
	assert.Equal(t, 500.0, d.ContainerSize)
	assert.Equal(t, uint64(1), d.Frame)
	assert.Len(t, d.Events, 3)
	assert.Equal(t, uint64(3), d.EventsUpTo)
}

func TestRevTracksEveryChange(t *testing.T) {
	s := newTestScene(t)
	rev := s.Frame().Rev
	changes := []func(){
		func() { require.NoError(t, s.Select("dignity")) },
		func() { s.Deselect() },
		func() { require.NoError(t, s.SetFilter(catalog.FilterSDK)) },
		func() { require.NoError(t, s.SetContainerSize(300)) },
		func() { s.PointerMove(0.1, 0.1) },
		func() { s.AddPlanet() },
		func() { s.Advance(0.1) },
	}
	for i, change := range changes {
		change()
		next := s.Frame().Rev
		assert.Greater(t, next, rev, "change %d", i)
		rev = next
	}
	assert.Equal(t, uint64(1), s.Frame().Frame)
}

func TestWithSeed(t *testing.T) {
	cfg := DefaultConfig().WithSeed(100)
	assert.Equal(t, uint32(100), cfg.Primary.Seed)
	assert.Equal(t, uint32(100+13569), cfg.Secondary.Seed)

	def := DefaultConfig()
	assert.Equal(t, def.Secondary.Seed, def.Primary.Seed+secondarySeedOffset)
}

func TestStatus(t *testing.T) {
	s := newTestScene(t)
	s.AddPlanet()
	s.Advance(1)
	st := s.Status()
	assert.Equal(t, uint64(1), st.Frame)
	assert.Equal(t, 60, st.Points)
	assert.Equal(t, 10, st.Satellites)
	assert.Equal(t, 1, st.Planets)
	assert.Equal(t, uint64(1), st.NextPlanet)
	assert.Equal(t, [2]uint32{54321, 67890}, st.Seeds)
}

func TestResume(t *testing.T) {
	s := newTestScene(t)
	s.Resume(500, 12.5)
	st := s.Status()
	assert.Equal(t, uint64(500), st.Frame)
	assert.Equal(t, 12.5, st.Elapsed)
}
