package actor

import (
	"github.com/tomz197/spaceshooter/internal/config"
	"github.com/tomz197/spaceshooter/internal/object"
	"github.com/tomz197/spaceshooter/internal/physics"
	"github.com/tomz197/spaceshooter/internal/random"
)

// Spawner draws enemy spawn points and speeds and decides when an enemy has left play.
type Spawner struct {
	rng     random.Source
	size    object.Vec
	maxX    int // Exclusive upper bound for the spawn column
	spawnY  config.Range
	descent config.Range
	drift   config.Range

	marginBottom float64
	marginLeft   float64
	marginRight  float64
}

// NewSpawner creates a spawner for the configured screen and enemy ranges.
func NewSpawner(s config.Settings, rng random.Source) *Spawner {
	return &Spawner{
		rng:          rng,
		size:         object.Vec{X: float64(s.Enemy.Size.Width), Y: float64(s.Enemy.Size.Height)},
		maxX:         s.Screen.Width - s.Enemy.Size.Width,
		spawnY:       s.Enemy.SpawnY,
		descent:      s.Enemy.Descent,
		drift:        s.Enemy.Drift,
		marginBottom: float64(s.Enemy.ExitMarginBottom),
		marginLeft:   float64(s.Enemy.ExitMarginLeft),
		marginRight:  float64(s.Enemy.ExitMarginRight),
	}
}

// New creates an enemy at a random point above the visible area.
func (s *Spawner) New() *object.Enemy {
	pos, descent, drift := s.draw()
	return object.NewEnemy(pos, s.size, descent, drift)
}

// Respawn moves e to a fresh random spawn point with a new descent speed.
// The sideways drift is kept.
func (s *Spawner) Respawn(e *object.Enemy) {
	pos, descent := s.drawPosition()
	e.Reset(pos, descent, e.DriftSpeed)
}

// Exited reports whether e has left the visible area: below the bottom edge, or
// past the left or right edge by more than the configured margin.
func (s *Spawner) Exited(e *object.Enemy, screen physics.Rect) bool {
	b := e.Bounds()
	return b.Top() > screen.Bottom()+s.marginBottom ||
		b.Left() < screen.Left()-s.marginLeft ||
		b.Right() > screen.Right()+s.marginRight
}

func (s *Spawner) draw() (object.Vec, int, int) {
	pos, descent := s.drawPosition()
	drift := s.rng.IntRange(s.drift.Min, s.drift.Max)
	return pos, descent, drift
}

func (s *Spawner) drawPosition() (object.Vec, int) {
	pos := object.Vec{
		X: float64(s.rng.IntRange(0, s.maxX)),
		Y: float64(s.rng.IntRange(s.spawnY.Min, s.spawnY.Max)),
	}
	return pos, s.rng.IntRange(s.descent.Min, s.descent.Max)
}
