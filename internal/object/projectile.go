package object

// Projectile is a shot travelling straight up. It keeps no reference to its firer.
type Projectile struct {
	Entity
}

// NewProjectile creates a projectile whose top-center edge sits at origin,
// moving up by speed pixels per tick.
func NewProjectile(origin, size Vec, speed float64) *Projectile {
	pos := Vec{X: origin.X - size.X/2, Y: origin.Y - size.Y}
	p := &Projectile{Entity: NewEntity(pos, size)}
	p.Vel = Vec{Y: -speed}
	return p
}

// AboveScreen reports whether the projectile's bottom edge has passed the top of the screen.
func (p *Projectile) AboveScreen() bool {
	return p.Pos.Y+p.size.Y < 0
}
