package object

// Enemy is a descending hostile ship.
type Enemy struct {
	Entity

	DescentSpeed int // Downward pixels per tick
	DriftSpeed   int // Sideways pixels per tick, may be zero or negative
}

// NewEnemy creates an enemy at pos moving with the given speeds.
func NewEnemy(pos, size Vec, descent, drift int) *Enemy {
	e := &Enemy{Entity: NewEntity(pos, size)}
	e.Reset(pos, descent, drift)
	return e
}

// Reset repositions the enemy in place with new speeds (respawn without removal).
func (e *Enemy) Reset(pos Vec, descent, drift int) {
	e.Pos = pos
	e.DescentSpeed = descent
	e.DriftSpeed = drift
	e.Vel = Vec{X: float64(drift), Y: float64(descent)}
}
