package projectile

import (
	"testing"

	"github.com/tomz197/spaceshooter/internal/config"
	"github.com/tomz197/spaceshooter/internal/object"
)

func TestSpawnAndAdvance(t *testing.T) {
	m := NewManager(config.Default().Projectile)
	m.Spawn(object.Vec{X: 400, Y: 550})

	if m.Len() != 1 {
		t.Fatalf("Expected 1 projectile, got %d", m.Len())
	}
	p := m.Projectiles()[0]
	if p.Pos != (object.Vec{X: 397.5, Y: 540}) {
		t.Errorf("Expected projectile at (397.5, 540), got %+v", p.Pos)
	}

	m.Advance()
	if p.Pos.Y != 530 {
		t.Errorf("Expected y 530 after one tick, got %v", p.Pos.Y)
	}
}

func TestProjectileRemovedAfterLeavingTop(t *testing.T) {
	m := NewManager(config.Default().Projectile)
	m.Spawn(object.Vec{X: 100, Y: 15}) // top at 5, bottom at 15

	m.Advance() // bottom at 5
	m.Prune()
	if m.Len() != 1 {
		t.Fatalf("Expected projectile still on screen, got %d", m.Len())
	}

	m.Advance() // bottom at -5
	if m.Projectiles()[0].IsAlive() {
		t.Error("Expected projectile above the screen to be marked not-alive")
	}
	m.Prune()
	if m.Len() != 0 {
		t.Errorf("Expected projectile pruned, got %d", m.Len())
	}
}

func TestPruneKeepsLive(t *testing.T) {
	m := NewManager(config.Default().Projectile)
	for i := 0; i < 5; i++ {
		m.Spawn(object.Vec{X: float64(i * 50), Y: 300})
	}
	m.Projectiles()[1].Kill()
	m.Projectiles()[3].Kill()

	m.Prune()

	if m.Len() != 3 {
		t.Fatalf("Expected 3 projectiles, got %d", m.Len())
	}
	wantX := []float64{-2.5, 97.5, 197.5}
	for i, p := range m.Projectiles() {
		if p.Pos.X != wantX[i] {
			t.Errorf("projectile %d: expected x %v, got %v", i, wantX[i], p.Pos.X)
		}
	}
}
