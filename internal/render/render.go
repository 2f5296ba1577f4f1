// Package render rasterizes a game scene into an RGBA frame.
package render

import (
	"image"
	"image/color"
	imagedraw "image/draw"
	"math"
	"strconv"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/tomz197/spaceshooter/internal/config"
	"github.com/tomz197/spaceshooter/internal/draw"
	"github.com/tomz197/spaceshooter/internal/object"
)

// Score text position (top-left of the glyph box).
const (
	scoreX = 10
	scoreY = 10
)

const starSize = 2

var background = color.RGBA{A: 0xff}

// Scene is a read-only view of everything drawn in one frame.
type Scene struct {
	Player      *object.Player
	Enemies     []*object.Enemy
	Projectiles []*object.Projectile
	Effects     []*object.Effect
	Stars       []object.Star
	Score       int
}

// Renderer owns the frame buffer and pre-built sprites.
type Renderer struct {
	frame      *image.RGBA
	player     *image.RGBA
	enemy      *image.RGBA
	projectile *image.RGBA
	text       font.Drawer
}

// New creates a renderer for the given settings.
func New(s config.Settings) *Renderer {
	frame := image.NewRGBA(image.Rect(0, 0, s.Screen.Width, s.Screen.Height))
	return &Renderer{
		frame:      frame,
		player:     buildSprite(s.Player.Size, playerShapes),
		enemy:      buildSprite(s.Enemy.Size, enemyShapes),
		projectile: buildSprite(s.Projectile.Size, projectileShapes),
		text: font.Drawer{
			Dst:  frame,
			Src:  image.NewUniform(colornames.White),
			Face: basicfont.Face7x13,
		},
	}
}

// Frame returns the frame buffer without redrawing it.
func (r *Renderer) Frame() *image.RGBA {
	return r.frame
}

// Render draws the scene and returns the frame buffer. The buffer is reused across calls.
func (r *Renderer) Render(sc Scene) *image.RGBA {
	draw.Fill(r.frame, background)

	for _, s := range sc.Stars {
		x, y := int(s.X), int(s.Y)
		draw.FillRect(r.frame, image.Rect(x, y, x+starSize, y+starSize),
			color.RGBA{R: s.Brightness, G: s.Brightness, B: s.Brightness, A: 0xff})
	}

	for _, e := range sc.Enemies {
		if e.IsAlive() {
			r.blit(r.enemy, e.Pos)
		}
	}
	for _, p := range sc.Projectiles {
		if p.IsAlive() {
			r.blit(r.projectile, p.Pos)
		}
	}
	if sc.Player != nil {
		r.blit(r.player, sc.Player.Pos)
	}

	for _, fx := range sc.Effects {
		c := draw.Premultiply(fx.Color.R, fx.Color.G, fx.Color.B, fx.Alpha())
		draw.FillCircle(r.frame, fx.Center.X, fx.Center.Y, float64(fx.Radius()), c)
	}

	r.drawScore(sc.Score)
	return r.frame
}

func (r *Renderer) blit(sprite *image.RGBA, pos object.Vec) {
	at := image.Pt(int(math.Round(pos.X)), int(math.Round(pos.Y)))
	rect := sprite.Rect.Add(at)
	imagedraw.Draw(r.frame, rect, sprite, image.Point{}, imagedraw.Over)
}

func (r *Renderer) drawScore(score int) {
	ascent := r.text.Face.Metrics().Ascent.Ceil()
	r.text.Dot = fixed.P(scoreX, scoreY+ascent)
	r.text.DrawString("Score: " + strconv.Itoa(score))
}
