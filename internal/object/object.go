// Package object defines the simulated game entities and their capabilities.
package object

import "github.com/tomz197/spaceshooter/internal/physics"

// Vec is a 2D real-valued coordinate or displacement.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Collidable is implemented by entities that take part in collision checks.
// Effects and stars do not implement it.
type Collidable interface {
	Bounds() physics.Rect
	IsAlive() bool
}

// Destructible is implemented by entities that can be removed from play.
type Destructible interface {
	// Kill marks the entity not-alive; it is pruned at the end of the tick.
	Kill()
	// IsAlive returns false once the entity has been killed.
	IsAlive() bool
}

// Entity is the positioned, moving, bounded part shared by players, enemies and projectiles.
// Position is the top-left corner. Size is fixed at construction.
type Entity struct {
	Pos   Vec // Top-left corner
	Vel   Vec // Displacement per tick
	size  Vec
	alive bool
}

// NewEntity creates a live entity at pos with a fixed size.
func NewEntity(pos, size Vec) Entity {
	return Entity{Pos: pos, size: size, alive: true}
}

// Size returns the entity's fixed width and height.
func (e *Entity) Size() Vec {
	return e.size
}

// Bounds returns the entity's bounding box.
func (e *Entity) Bounds() physics.Rect {
	return physics.Rect{X: e.Pos.X, Y: e.Pos.Y, W: e.size.X, H: e.size.Y}
}

// Center returns the center of the bounding box.
func (e *Entity) Center() Vec {
	return Vec{X: e.Pos.X + e.size.X/2, Y: e.Pos.Y + e.size.Y/2}
}

// Move applies one tick of velocity.
func (e *Entity) Move() {
	e.Pos = e.Pos.Add(e.Vel)
}

// Kill marks the entity for removal (implements Destructible).
func (e *Entity) Kill() {
	e.alive = false
}

// IsAlive reports whether the entity is still in play (implements Destructible).
func (e *Entity) IsAlive() bool {
	return e.alive
}
