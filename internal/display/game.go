// Package display runs a session in an Ebitengine window with the GPU post-processing pass.
package display

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/spaceshooter/internal/loop"
	"github.com/tomz197/spaceshooter/internal/render"
)

const windowTitle = "Space Shooter"

// Game adapts a session to ebiten.Game. Ebitengine calls Update at the
// configured TPS, so it acts as the tick limiter.
type Game struct {
	session  *loop.Session
	renderer *render.Renderer
	pass     Pass
	clock    loop.Clock
	frame    *ebiten.Image
	width    int
	height   int
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a game drawing the session through pass.
func NewGame(s *loop.Session, pass Pass) *Game {
	cfg := s.Settings()
	return &Game{
		session:  s,
		renderer: render.New(cfg),
		pass:     pass,
		clock:    loop.NewClock(),
		frame:    ebiten.NewImage(cfg.Screen.Width, cfg.Screen.Height),
		width:    cfg.Screen.Width,
		height:   cfg.Screen.Height,
	}
}

// Update ticks the session once and ends the game after it stops.
func (g *Game) Update() error {
	if !g.session.Running() {
		return ebiten.Termination
	}
	g.session.Tick(ReadKeyboard(), g.clock.Now())
	return nil
}

// Draw rasterizes the scene, uploads it and runs the post-processing pass.
func (g *Game) Draw(screen *ebiten.Image) {
	img := g.renderer.Render(g.session.Scene())
	g.frame.WritePixels(img.Pix)
	g.pass.Draw(screen, g.frame, g.session.State().Elapsed)
}

// Layout keeps the logical resolution fixed; Ebitengine scales the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until the session ends or the window closes.
func Run(s *loop.Session, pass Pass) error {
	cfg := s.Settings()
	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(NewGame(s, pass)); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}
