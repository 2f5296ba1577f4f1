package render

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/colornames"

	"github.com/tomz197/spaceshooter/internal/config"
	"github.com/tomz197/spaceshooter/internal/object"
)

func newScene() Scene {
	s := config.Default()
	return Scene{
		Player: object.NewPlayer(object.Vec{X: 380, Y: 550}, object.Vec{X: 40, Y: 40}, 5, s.Player.ShootCooldown()),
		Enemies: []*object.Enemy{
			object.NewEnemy(object.Vec{X: 100, Y: 100}, object.Vec{X: 30, Y: 30}, 2, 0),
		},
		Projectiles: []*object.Projectile{
			object.NewProjectile(object.Vec{X: 300, Y: 300}, object.Vec{X: 5, Y: 10}, 10),
		},
	}
}

func TestRenderDrawsEntities(t *testing.T) {
	r := New(config.Default())
	frame := r.Render(newScene())

	if frame.Bounds() != image.Rect(0, 0, 800, 600) {
		t.Fatalf("Expected 800x600 frame, got %v", frame.Bounds())
	}

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"player body", 400, 570, colornames.Lime},
		{"player tip corner is background", 381, 551, background},
		{"enemy body", 105, 105, colornames.Red},
		{"enemy cap", 115, 103, colornames.Yellow},
		{"enemy inset corner is background", 101, 101, background},
		{"enemy inset bottom is background", 115, 127, background},
		{"projectile", 299, 295, colornames.Yellow},
		{"empty space", 600, 300, background},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frame.RGBAAt(tt.x, tt.y); got != tt.want {
				t.Errorf("Expected %v at (%d,%d), got %v", tt.want, tt.x, tt.y, got)
			}
		})
	}
}

func TestRenderSkipsDeadEntities(t *testing.T) {
	sc := newScene()
	sc.Enemies[0].Kill()
	sc.Projectiles[0].Kill()

	frame := New(config.Default()).Render(sc)

	if got := frame.RGBAAt(105, 105); got != background {
		t.Errorf("Expected dead enemy to be skipped, got %v", got)
	}
	if got := frame.RGBAAt(299, 295); got != background {
		t.Errorf("Expected dead projectile to be skipped, got %v", got)
	}
}

func TestRenderStars(t *testing.T) {
	sc := Scene{Stars: []object.Star{{X: 50, Y: 400, Speed: 1, Brightness: 150}}}
	frame := New(config.Default()).Render(sc)

	want := color.RGBA{R: 150, G: 150, B: 150, A: 255}
	for _, p := range []image.Point{{X: 50, Y: 400}, {X: 51, Y: 401}} {
		if got := frame.RGBAAt(p.X, p.Y); got != want {
			t.Errorf("Expected star pixel %v at %v, got %v", want, p, got)
		}
	}
	if got := frame.RGBAAt(52, 400); got != background {
		t.Errorf("Expected star to be 2px wide, got %v at (52,400)", got)
	}
}

func TestRenderEffectFades(t *testing.T) {
	fx := object.NewEffect(object.Vec{X: 400, Y: 300}, 30, 30, colornames.Orange)
	for range 15 {
		fx.Tick()
	}
	frame := New(config.Default()).Render(Scene{Effects: []*object.Effect{fx}})

	got := frame.RGBAAt(400, 300)
	if got == background || got == colornames.Orange {
		t.Errorf("Expected partially transparent effect at center, got %v", got)
	}
	if got := frame.RGBAAt(400, 320); got != background {
		t.Errorf("Expected pixel beyond radius 15 untouched, got %v", got)
	}
}

func TestRenderScoreText(t *testing.T) {
	r := New(config.Default())
	frame := r.Render(Scene{Score: 120})

	lit := 0
	for y := 10; y < 23; y++ {
		for x := 10; x < 100; x++ {
			if frame.RGBAAt(x, y) != background {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("Expected score text pixels near (10,10)")
	}
	for x := 0; x < 800; x++ {
		if frame.RGBAAt(x, 5) != background {
			t.Fatalf("Expected no text above y=10, found pixel at (%d,5)", x)
		}
	}
}

func TestRenderReusesFrame(t *testing.T) {
	r := New(config.Default())
	a := r.Render(newScene())
	b := r.Render(Scene{})
	if a != b || r.Frame() != a {
		t.Error("Expected the same frame buffer across renders")
	}
	if got := b.RGBAAt(105, 105); got != background {
		t.Errorf("Expected frame to be cleared between renders, got %v", got)
	}
}
