// Package loop ties the managers into a game session and drives it at a fixed rate.
package loop

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/image/colornames"

	"github.com/tomz197/spaceshooter/internal/actor"
	"github.com/tomz197/spaceshooter/internal/collision"
	"github.com/tomz197/spaceshooter/internal/config"
	"github.com/tomz197/spaceshooter/internal/effect"
	"github.com/tomz197/spaceshooter/internal/input"
	"github.com/tomz197/spaceshooter/internal/physics"
	"github.com/tomz197/spaceshooter/internal/projectile"
	"github.com/tomz197/spaceshooter/internal/random"
	"github.com/tomz197/spaceshooter/internal/render"
	"github.com/tomz197/spaceshooter/internal/starfield"
)

// Reason records why a session stopped.
type Reason int

const (
	ReasonNone      Reason = iota // Still running
	ReasonQuit                    // Player requested quit
	ReasonCollision               // Player touched an enemy
)

func (r Reason) String() string {
	switch r {
	case ReasonQuit:
		return "quit"
	case ReasonCollision:
		return "collision"
	default:
		return "none"
	}
}

// State is the session state visible to frontends.
type State struct {
	ID      uuid.UUID
	Score   int
	Running bool
	Elapsed time.Duration // Session time at the last completed tick
	Ticks   uint64
	Reason  Reason
}

// Session owns every manager of one game and advances them tick by tick.
type Session struct {
	state       State
	settings    config.Settings
	actors      *actor.Manager
	projectiles *projectile.Manager
	effects     *effect.Manager
	stars       *starfield.Starfield
	resolver    *collision.Resolver
	log         *log.Logger
}

// NewSession creates a running session. A nil logger discards log output.
func NewSession(s config.Settings, rng random.Source, logger *log.Logger) *Session {
	id := uuid.New()
	if logger == nil {
		logger = log.New(io.Discard)
	}
	area := physics.Rect{W: float64(s.Screen.Width), H: float64(s.Screen.Height)}

	sess := &Session{
		state:       State{ID: id, Running: true},
		settings:    s,
		actors:      actor.NewManager(s, rng),
		projectiles: projectile.NewManager(s.Projectile),
		effects:     effect.NewManager(s.Effect),
		stars:       starfield.New(s, rng),
		resolver:    collision.NewResolver(area, s.Scoring.HitPoints, colornames.Orange),
		log:         logger.With("session", id.String()),
	}
	sess.log.Info("session started", "enemies", s.Enemy.Count, "stars", s.Stars.Count)
	return sess
}

// Settings returns the settings the session was created with.
func (s *Session) Settings() config.Settings {
	return s.settings
}

// State returns a copy of the session state.
func (s *Session) State() State {
	return s.state
}

// Running reports whether the session accepts further ticks.
func (s *Session) Running() bool {
	return s.state.Running
}

// AddScore implements collision.Scorer.
func (s *Session) AddScore(points int) {
	s.state.Score += points
}

// Tick advances the session by one step. now is the session time used for the
// shot cooldown. Ticks after the session stopped are ignored.
func (s *Session) Tick(in input.Snapshot, now time.Duration) {
	if !s.state.Running {
		return
	}
	if in.Quit {
		s.stop(ReasonQuit)
		return
	}

	if in.Shoot && s.actors.RequestShot(now, s.projectiles) {
		s.log.Debug("shot fired", "tick", s.state.Ticks)
	}

	s.actors.Advance(in)
	s.projectiles.Advance()
	s.stars.Advance()
	s.effects.Advance()

	hits := s.resolver.ResolveProjectileEnemyHits(s.actors.Enemies(), s.projectiles.Projectiles())
	if len(hits) > 0 {
		s.resolver.ApplyHits(hits, collision.Outcomes{
			Score:   s,
			Effects: s.effects,
			Enemies: s.actors,
		})
		s.actors.Prune()
		s.log.Debug("enemies destroyed", "count", len(hits), "score", s.state.Score)
	}

	if s.resolver.CheckPlayerCollision(s.actors.Player(), s.actors.Enemies()) {
		s.state.Elapsed = now
		s.stop(ReasonCollision)
		return
	}

	s.projectiles.Prune()

	s.state.Elapsed = now
	s.state.Ticks++
}

func (s *Session) stop(reason Reason) {
	s.state.Running = false
	s.state.Reason = reason
	s.log.Info("game over", "reason", reason, "score", s.state.Score, "ticks", s.state.Ticks, "elapsed", s.state.Elapsed)
}

// Scene returns a read-only view of the session for the renderer.
func (s *Session) Scene() render.Scene {
	return render.Scene{
		Player:      s.actors.Player(),
		Enemies:     s.actors.Enemies(),
		Projectiles: s.projectiles.Projectiles(),
		Effects:     s.effects.Effects(),
		Stars:       s.stars.Stars(),
		Score:       s.state.Score,
	}
}
