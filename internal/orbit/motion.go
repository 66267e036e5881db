package orbit

// PauseMode decides what a paused entity shows.
type PauseMode uint8

const (
	// PauseSnap returns the entity to its initial angle while paused and
	// restarts its orbit from there on resume.
	PauseSnap PauseMode = iota
	// PauseHold freezes the entity where it is; resuming continues from there.
	PauseHold
)

// Motion is an entity plus its own orbit clock. The clock only accrues
// while the entity is orbiting.
type Motion struct {
	Entity
	active float64
}

// NewMotions wraps entities in motions with zeroed clocks.
func NewMotions(entities []Entity) []Motion {
	out := make([]Motion, len(entities))
	for i, e := range entities {
		out[i] = Motion{Entity: e}
	}
	return out
}

// Advance moves the clock forward by dt seconds unless paused.
// Negative steps are ignored.
func (m *Motion) Advance(dt float64) {
	if m.Paused || dt <= 0 {
		return
	}
	m.active += dt
}

// Elapsed returns the accumulated orbiting time in seconds.
func (m *Motion) Elapsed() float64 {
	return m.active
}

// SetPaused switches between the Orbiting and Paused states. Under
// PauseSnap, leaving Paused restarts the clock at zero.
func (m *Motion) SetPaused(paused bool, mode PauseMode) {
	if m.Paused && !paused && mode == PauseSnap {
		m.active = 0
	}
	m.Paused = paused
}

// Place computes the entity's placement from its own clock.
func (m *Motion) Place(g Engine, mode PauseMode, containerSize float64) Placement {
	e := m.Entity
	if mode == PauseHold {
		// The clock is already frozen; evaluate as orbiting at that time.
		e.Paused = false
	}
	p := g.Place(e, m.active, containerSize)
	p.Paused = m.Paused
	return p
}
