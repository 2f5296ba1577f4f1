// Package actor owns the player and the enemy population.
package actor

import (
	"time"

	"github.com/tomz197/spaceshooter/internal/config"
	"github.com/tomz197/spaceshooter/internal/input"
	"github.com/tomz197/spaceshooter/internal/object"
	"github.com/tomz197/spaceshooter/internal/physics"
	"github.com/tomz197/spaceshooter/internal/random"
)

// ProjectileSpawner receives shot requests from the player.
type ProjectileSpawner interface {
	Spawn(origin object.Vec)
}

// Manager owns the player and all enemies.
type Manager struct {
	screen  physics.Rect
	player  *object.Player
	enemies []*object.Enemy
	spawner *Spawner
}

// NewManager creates the player at the bottom center of the screen and spawns the
// initial enemy population.
func NewManager(s config.Settings, rng random.Source) *Manager {
	screen := physics.Rect{W: float64(s.Screen.Width), H: float64(s.Screen.Height)}
	size := object.Vec{X: float64(s.Player.Size.Width), Y: float64(s.Player.Size.Height)}
	pos := object.Vec{
		X: float64(s.Screen.Width/2) - size.X/2,
		Y: screen.Bottom() - float64(s.Player.BottomMargin) - size.Y,
	}

	m := &Manager{
		screen:  screen,
		player:  object.NewPlayer(pos, size, float64(s.Player.Speed), s.Player.ShootCooldown()),
		spawner: NewSpawner(s, rng),
	}
	for i := 0; i < s.Enemy.Count; i++ {
		m.SpawnEnemy()
	}
	return m
}

// Player returns the player ship.
func (m *Manager) Player() *object.Player {
	return m.player
}

// Enemies returns the enemy slice. Callers must not retain it across ticks.
func (m *Manager) Enemies() []*object.Enemy {
	return m.enemies
}

// SpawnEnemy adds one enemy at a random point above the visible area.
func (m *Manager) SpawnEnemy() *object.Enemy {
	e := m.spawner.New()
	m.enemies = append(m.enemies, e)
	return e
}

// Advance moves the player from the input snapshot, then moves every enemy.
// Enemies that leave the visible area are respawned in place.
func (m *Manager) Advance(in input.Snapshot) {
	m.movePlayer(in)

	for _, e := range m.enemies {
		if !e.IsAlive() {
			continue
		}
		e.Move()
		if m.spawner.Exited(e, m.screen) {
			m.spawner.Respawn(e)
		}
	}
}

// movePlayer applies axis-independent movement and clamps the ship to the screen.
// Diagonals are not normalized: two keys move at full speed on both axes.
func (m *Manager) movePlayer(in input.Snapshot) {
	p := m.player
	if in.Left {
		p.Pos.X -= p.Speed
	}
	if in.Right {
		p.Pos.X += p.Speed
	}
	if in.Up {
		p.Pos.Y -= p.Speed
	}
	if in.Down {
		p.Pos.Y += p.Speed
	}

	size := p.Size()
	p.Pos.X, p.Pos.Y = physics.ClampInside(p.Pos.X, p.Pos.Y, size.X, size.Y, m.screen)
}

// RequestShot fires one projectile from the player's muzzle if the cooldown has elapsed.
// Returns false when the shot is dropped.
func (m *Manager) RequestShot(now time.Duration, projectiles ProjectileSpawner) bool {
	if !m.player.TryShoot(now) {
		return false
	}
	projectiles.Spawn(m.player.Muzzle())
	return true
}

// Prune removes enemies that were marked not-alive this tick.
func (m *Manager) Prune() int {
	kept := m.enemies[:0] // reuse backing array
	for _, e := range m.enemies {
		if e.IsAlive() {
			kept = append(kept, e)
		}
	}
	removed := len(m.enemies) - len(kept)
	clear(m.enemies[len(kept):])
	m.enemies = kept
	return removed
}

// LiveEnemies returns the number of enemies still in play.
func (m *Manager) LiveEnemies() int {
	n := 0
	for _, e := range m.enemies {
		if e.IsAlive() {
			n++
		}
	}
	return n
}
