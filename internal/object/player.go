package object

import "time"

// Player is the ship controlled by the user. Exactly one exists per session.
type Player struct {
	Entity

	Speed         float64       // Pixels per tick on each axis
	ShootCooldown time.Duration // Minimum interval between shots

	lastShot time.Duration
	hasShot  bool
}

// NewPlayer creates a player at pos.
func NewPlayer(pos, size Vec, speed float64, cooldown time.Duration) *Player {
	return &Player{
		Entity:        NewEntity(pos, size),
		Speed:         speed,
		ShootCooldown: cooldown,
	}
}

// TryShoot records a shot at now if more than ShootCooldown has passed since the last one.
// The first shot of a session is always allowed. Returns false when the shot is dropped.
func (p *Player) TryShoot(now time.Duration) bool {
	if p.hasShot && now-p.lastShot <= p.ShootCooldown {
		return false
	}
	p.lastShot = now
	p.hasShot = true
	return true
}

// LastShot returns the time of the last accepted shot and whether one happened.
func (p *Player) LastShot() (time.Duration, bool) {
	return p.lastShot, p.hasShot
}

// Muzzle returns the top-center point where projectiles originate.
func (p *Player) Muzzle() Vec {
	return Vec{X: p.Pos.X + p.size.X/2, Y: p.Pos.Y}
}
