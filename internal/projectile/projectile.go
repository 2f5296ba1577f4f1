// Package projectile owns the player's active shots.
package projectile

import (
	"github.com/tomz197/spaceshooter/internal/config"
	"github.com/tomz197/spaceshooter/internal/object"
)

// Manager owns all active projectiles.
type Manager struct {
	size        object.Vec
	speed       float64
	projectiles []*object.Projectile
}

// NewManager creates an empty projectile manager.
func NewManager(s config.ProjectileSettings) *Manager {
	return &Manager{
		size:  object.Vec{X: float64(s.Size.Width), Y: float64(s.Size.Height)},
		speed: float64(s.Speed),
	}
}

// Spawn creates one projectile at origin (implements actor.ProjectileSpawner).
func (m *Manager) Spawn(origin object.Vec) {
	m.projectiles = append(m.projectiles, object.NewProjectile(origin, m.size, m.speed))
}

// Advance moves every live projectile and marks those above the screen not-alive.
func (m *Manager) Advance() {
	for _, p := range m.projectiles {
		if !p.IsAlive() {
			continue
		}
		p.Move()
		if p.AboveScreen() {
			p.Kill()
		}
	}
}

// Prune removes not-alive projectiles. Called once per tick after collision resolution.
func (m *Manager) Prune() {
	kept := m.projectiles[:0] // reuse backing array
	for _, p := range m.projectiles {
		if p.IsAlive() {
			kept = append(kept, p)
		}
	}
	clear(m.projectiles[len(kept):])
	m.projectiles = kept
}

// Projectiles returns the active set. Callers must not retain it across ticks.
func (m *Manager) Projectiles() []*object.Projectile {
	return m.projectiles
}

// Len returns the number of projectiles in the active set.
func (m *Manager) Len() int {
	return len(m.projectiles)
}
