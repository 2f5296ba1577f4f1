// Package collision detects overlaps between entities and applies their outcomes.
package collision

import (
	"image/color"

	"github.com/tomz197/spaceshooter/internal/object"
	"github.com/tomz197/spaceshooter/internal/physics"
)

// gridCellSize is the broad-phase cell size. It only affects performance, not results.
const gridCellSize = 64

// Hit is one resolved projectile–enemy pair.
type Hit struct {
	Enemy      *object.Enemy
	Projectile *object.Projectile
}

// Scorer receives score awards.
type Scorer interface {
	AddScore(points int)
}

// EffectSpawner creates explosion effects.
type EffectSpawner interface {
	Spawn(center object.Vec, c color.RGBA)
}

// EnemySpawner creates replacement enemies.
type EnemySpawner interface {
	SpawnEnemy() *object.Enemy
}

// Outcomes are the collaborators mutated by resolved hits.
type Outcomes struct {
	Score   Scorer
	Effects EffectSpawner
	Enemies EnemySpawner
}

// Resolver finds projectile–enemy hits and player–enemy contact.
// It holds references to entities only during a single call.
type Resolver struct {
	grid        *physics.SpatialGrid
	points      int
	effectColor color.RGBA
	hits        []Hit
}

// NewResolver creates a resolver for a play area. Hits award points and spawn
// effects in effectColor.
func NewResolver(area physics.Rect, points int, effectColor color.RGBA) *Resolver {
	return &Resolver{
		grid:        physics.NewSpatialGrid(area, gridCellSize),
		points:      points,
		effectColor: effectColor,
	}
}

// ResolveProjectileEnemyHits pairs overlapping live enemies and projectiles and
// marks both members of every pair not-alive.
//
// Each enemy and each projectile joins at most one pair. Enemies are visited in
// slice order; each takes the lowest-indexed overlapping projectile not yet consumed.
// The returned slice is reused by the next call.
func (r *Resolver) ResolveProjectileEnemyHits(enemies []*object.Enemy, projectiles []*object.Projectile) []Hit {
	r.hits = r.hits[:0]
	if len(enemies) == 0 || len(projectiles) == 0 {
		return r.hits
	}

	r.grid.Clear()
	for i, p := range projectiles {
		if p.IsAlive() {
			r.grid.Insert(p.Bounds(), i)
		}
	}

	for _, e := range enemies {
		if !e.IsAlive() {
			continue
		}
		eb := e.Bounds()

		best := -1
		r.grid.QueryRect(eb, func(i int) {
			if best >= 0 && i >= best {
				return
			}
			p := projectiles[i]
			if p.IsAlive() && eb.Intersects(p.Bounds()) {
				best = i
			}
		})
		if best < 0 {
			continue
		}

		p := projectiles[best]
		e.Kill()
		p.Kill()
		r.hits = append(r.hits, Hit{Enemy: e, Projectile: p})
	}

	return r.hits
}

// ApplyHits awards points, spawns one effect at each destroyed enemy's center and
// spawns one replacement enemy per hit.
func (r *Resolver) ApplyHits(hits []Hit, out Outcomes) {
	for _, h := range hits {
		out.Score.AddScore(r.points)
		out.Effects.Spawn(h.Enemy.Center(), r.effectColor)
		out.Enemies.SpawnEnemy()
	}
}

// CheckPlayerCollision reports whether the player overlaps any live enemy.
func (r *Resolver) CheckPlayerCollision(player object.Collidable, enemies []*object.Enemy) bool {
	pb := player.Bounds()
	for _, e := range enemies {
		if e.IsAlive() && pb.Intersects(e.Bounds()) {
			return true
		}
	}
	return false
}
