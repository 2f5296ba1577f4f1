package effect

import (
	"image/color"
	"testing"

	"github.com/tomz197/spaceshooter/internal/config"
	"github.com/tomz197/spaceshooter/internal/object"
)

func TestEffectExpandsAndFades(t *testing.T) {
	m := NewManager(config.Default().Effect)
	m.Spawn(object.Vec{X: 100, Y: 100}, color.RGBA{R: 255, G: 160, A: 255})

	for tick := 1; tick <= 15; tick++ {
		m.Advance()
	}
	if m.Len() != 1 {
		t.Fatalf("Expected effect alive at T+15, got %d", m.Len())
	}
	e := m.Effects()[0]
	if e.Radius() != 15 {
		t.Errorf("Expected radius 15 at T+15, got %d", e.Radius())
	}
	if e.Alpha() != 127 {
		t.Errorf("Expected alpha 127 at T+15, got %d", e.Alpha())
	}

	for tick := 16; tick <= 30; tick++ {
		m.Advance()
	}
	if m.Len() != 1 {
		t.Fatalf("Expected effect alive at T+30, got %d", m.Len())
	}

	m.Advance() // T+31
	if m.Len() != 0 {
		t.Errorf("Expected effect absent at T+31, got %d", m.Len())
	}
}

func TestStaggeredEffects(t *testing.T) {
	m := NewManager(config.EffectSettings{DurationTicks: 3, MaxRadius: 30})
	m.Spawn(object.Vec{}, color.RGBA{A: 255})
	m.Advance()
	m.Advance()
	m.Spawn(object.Vec{X: 1}, color.RGBA{A: 255})

	m.Advance()
	m.Advance() // first reaches age 4
	if m.Len() != 1 {
		t.Fatalf("Expected only the second effect alive, got %d", m.Len())
	}
	if got := m.Effects()[0].Center.X; got != 1 {
		t.Errorf("Expected surviving effect at x=1, got %v", got)
	}
}
