// Package effect owns transient visual effects such as explosions.
package effect

import (
	"image/color"

	"github.com/tomz197/spaceshooter/internal/config"
	"github.com/tomz197/spaceshooter/internal/object"
)

// Manager owns all live effects.
type Manager struct {
	duration  int
	maxRadius float64
	effects   []*object.Effect
}

// NewManager creates an empty effects manager.
func NewManager(s config.EffectSettings) *Manager {
	return &Manager{
		duration:  s.DurationTicks,
		maxRadius: float64(s.MaxRadius),
	}
}

// Spawn creates an effect at center with age zero.
func (m *Manager) Spawn(center object.Vec, c color.RGBA) {
	m.effects = append(m.effects, object.NewEffect(center, m.duration, m.maxRadius, c))
}

// Advance ages every effect by one tick and removes expired ones.
func (m *Manager) Advance() {
	kept := m.effects[:0]
	for _, e := range m.effects {
		e.Tick()
		if !e.Expired() {
			kept = append(kept, e)
		}
	}
	clear(m.effects[len(kept):])
	m.effects = kept
}

// Effects returns the live effects. Callers must not retain it across ticks.
func (m *Manager) Effects() []*object.Effect {
	return m.effects
}

// Len returns the number of live effects.
func (m *Manager) Len() int {
	return len(m.effects)
}
