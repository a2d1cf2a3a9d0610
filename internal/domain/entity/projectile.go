package entity

import "github.com/younwookim/smashninja/internal/domain/geom"

// ProjectileMaxAge is how many ticks a projectile flies before vanishing
const ProjectileMaxAge = 360

// Projectile is an enemy shot travelling horizontally
type Projectile struct {
	Pos       geom.Vec
	Direction float64 // -1 or 1
	Speed     float64
	Age       int
}

// NewProjectile creates a projectile at pos heading in direction
func NewProjectile(pos geom.Vec, direction, speed float64) Projectile {
	return Projectile{Pos: pos, Direction: direction, Speed: speed}
}

// Update moves the projectile one tick
func (p *Projectile) Update() {
	p.Pos.X += p.Direction * p.Speed
	p.Age++
}

// Expired reports whether the projectile outlived maxAge
func (p *Projectile) Expired(maxAge int) bool {
	return p.Age > maxAge
}
