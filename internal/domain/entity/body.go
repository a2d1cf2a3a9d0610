package entity

import (
	"github.com/younwookim/smashninja/internal/domain/anim"
	"github.com/younwookim/smashninja/internal/domain/geom"
)

// Default kinematics shared by every body
const (
	DefaultGravity      = 0.1
	DefaultMaxFallSpeed = 5.0
)

// DefaultAnimOffset is where sprites are drawn relative to the hitbox
var DefaultAnimOffset = geom.V(-3, -3)

// Collider answers the solid-geometry queries the resolver needs.
// *tilemap.Grid satisfies it.
type Collider interface {
	TileSize() int
	SolidRectsNear(p geom.Vec) []geom.Rect
	IsSolidAt(p geom.Vec) bool
}

// Collisions records which sides touched solid geometry during the last update
type Collisions struct {
	Up, Down, Left, Right bool
}

// Side reports whether either wall flag is set
func (c Collisions) Side() bool {
	return c.Left || c.Right
}

// Body is the kinematic state of any simulated entity.
// Pos is the top-left corner of the hitbox.
type Body struct {
	Kind         anim.EntityKind
	Pos          geom.Vec
	Size         geom.Vec
	Velocity     geom.Vec
	Collisions   Collisions
	Action       anim.Action
	Flip         bool // facing left
	LastMovement geom.Vec
	Animation    *anim.Animation
	AnimOffset   geom.Vec

	Gravity      float64
	MaxFallSpeed float64

	anims anim.Provider
}

// NewBody creates a body at pos playing its idle animation
func NewBody(kind anim.EntityKind, anims anim.Provider, pos, size geom.Vec) Body {
	b := Body{
		Kind:         kind,
		Pos:          pos,
		Size:         size,
		AnimOffset:   DefaultAnimOffset,
		Gravity:      DefaultGravity,
		MaxFallSpeed: DefaultMaxFallSpeed,
		anims:        anims,
	}
	b.SetAction(anim.ActionIdle)
	return b
}

// Rect returns the hitbox in world pixels
func (b *Body) Rect() geom.Rect {
	return geom.Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.Size.X, H: b.Size.Y}
}

// Center returns the hitbox center
func (b *Body) Center() geom.Vec {
	return b.Rect().Center()
}

// Facing returns -1 when facing left, 1 otherwise
func (b *Body) Facing() float64 {
	if b.Flip {
		return -1
	}
	return 1
}

// SetAction switches animation. Re-requesting the current action keeps the
// running cursor; a change always starts from a fresh copy.
func (b *Body) SetAction(action anim.Action) {
	if action == b.Action && b.Animation != nil {
		return
	}
	b.Action = action
	if b.anims == nil {
		b.Animation = anim.New(nil, 1, true)
		return
	}
	b.Animation = b.anims.Get(anim.Key{Entity: b.Kind, Action: action})
}

// Update moves the body by movement plus its velocity, resolving collisions
// against grid one axis at a time, then applies gravity and advances the
// animation.
//
// Per-axis displacement is clamped to one tile: the neighbourhood query only
// sees adjacent cells, so anything faster could pass through a wall.
func (b *Body) Update(grid Collider, movement geom.Vec) {
	b.Collisions = Collisions{}

	frame := movement.Add(b.Velocity)
	limit := float64(grid.TileSize())
	frame.X = max(-limit, min(limit, frame.X))
	frame.Y = max(-limit, min(limit, frame.Y))

	b.Pos.X += frame.X
	r := b.Rect()
	for _, tile := range grid.SolidRectsNear(b.Pos) {
		if !r.Overlaps(tile) {
			continue
		}
		if frame.X > 0 {
			r.X = tile.X - r.W
			b.Collisions.Right = true
		}
		if frame.X < 0 {
			r.X = tile.Right()
			b.Collisions.Left = true
		}
		b.Pos.X = r.X
	}

	b.Pos.Y += frame.Y
	r = b.Rect()
	near := grid.SolidRectsNear(b.Pos)
	for _, tile := range near {
		if !r.Overlaps(tile) {
			continue
		}
		if frame.Y > 0 {
			r.Y = tile.Y - r.H
			b.Collisions.Down = true
		}
		if frame.Y < 0 {
			r.Y = tile.Bottom()
			b.Collisions.Up = true
		}
		b.Pos.Y = r.Y
	}

	// Resting contact: standing still on the floor still counts as grounded
	if !b.Collisions.Down && frame.Y >= 0 {
		for _, tile := range near {
			if r.RestsOn(tile) {
				b.Collisions.Down = true
				break
			}
		}
	}

	if movement.X > 0 {
		b.Flip = false
	}
	if movement.X < 0 {
		b.Flip = true
	}

	b.LastMovement = movement

	b.Velocity.Y = min(b.MaxFallSpeed, b.Velocity.Y+b.Gravity)
	if b.Collisions.Down || b.Collisions.Up {
		b.Velocity.Y = 0
	}

	if b.Animation != nil {
		b.Animation.Update()
	}
}
