package entity

import (
	"math"
	"math/rand"

	"github.com/younwookim/smashninja/internal/domain/anim"
	"github.com/younwookim/smashninja/internal/domain/effect"
	"github.com/younwookim/smashninja/internal/domain/geom"
)

// Target is what an enemy aims at and can be killed by
type Target interface {
	Rect() geom.Rect
	Invulnerable() bool
}

// Enemy patrols for a random time, then shoots along its facing if the
// target is level with it and in sight
type Enemy struct {
	Body

	Walking  int // remaining patrol ticks
	Cooldown int // idle ticks left after a shot

	Tuning EnemyTuning
}

// NewEnemy creates an idle enemy at pos
func NewEnemy(anims anim.Provider, pos geom.Vec, tuning EnemyTuning) *Enemy {
	return &Enemy{
		Body:   NewBody(anim.EntityEnemy, anims, pos, tuning.Size),
		Tuning: tuning,
	}
}

// Update runs one tick of patrol, aim and physics. killed reports that the
// target's dash burst hit this enemy; the caller removes it from the roster.
func (e *Enemy) Update(grid Collider, target Target, rng *rand.Rand) (killed bool, events []Event) {
	t := e.Tuning
	var movement geom.Vec

	if e.Walking > 0 {
		c := e.Center()
		foot := geom.V(c.X+e.Facing()*t.FootProbe.X, e.Rect().Bottom()+t.FootProbe.Y)
		switch {
		case !grid.IsSolidAt(foot):
			e.Flip = !e.Flip
		case e.Collisions.Side():
			e.Flip = !e.Flip
		default:
			movement.X = e.Facing() * t.WalkSpeed
		}
		e.Walking--
		if e.Walking == 0 {
			events = e.aim(grid, target, rng, events)
		}
	} else if e.Cooldown > 0 {
		e.Cooldown--
	} else if rng.Float64() < t.WalkChance {
		e.Walking = t.WalkMin + rng.Intn(t.WalkMax-t.WalkMin+1)
	}

	e.Body.Update(grid, movement)
	if movement.X != 0 {
		e.SetAction(anim.ActionRun)
	} else {
		e.SetAction(anim.ActionIdle)
	}

	if target.Invulnerable() && e.Rect().Overlaps(target.Rect()) {
		return true, e.die(rng, events)
	}
	return false, events
}

// aim shoots when the target sits on the facing side within the band
func (e *Enemy) aim(grid Collider, target Target, rng *rand.Rand, events []Event) []Event {
	t := e.Tuning
	tr := target.Rect()
	dx := tr.X - e.Pos.X
	dy := tr.Y - e.Pos.Y
	if math.Abs(dy) >= t.AimVertical {
		return events
	}
	ahead := dx * e.Facing()
	if ahead <= t.AimBandMin || ahead > t.AimBandMax {
		return events
	}
	c := e.Center()
	muzzle := geom.V(c.X+e.Facing()*t.MuzzleOffset, c.Y)
	if !LineOfSight(grid, muzzle, tr.Center()) {
		return events
	}

	events = append(events,
		SpawnProjectileEvent{Projectile: NewProjectile(muzzle, e.Facing(), t.ProjectileSpeed)},
		PlaySoundEvent{Sound: SoundShoot},
	)
	base := 0.0
	if e.Flip {
		base = math.Pi
	}
	for i := 0; i < t.MuzzleSparks; i++ {
		events = sparkEvents(events, effect.NewSpark(muzzle, rng.Float64()-0.5+base, 2+rng.Float64()))
	}
	e.Cooldown = t.AttackCooldown
	return events
}

func (e *Enemy) die(rng *rand.Rand, events []Event) []Event {
	t := e.Tuning
	c := e.Center()
	sparks, particles := effect.Burst(rng, e.anims, c, t.BurstCount)
	events = sparkEvents(events, sparks...)
	events = particleEvents(events, particles...)
	events = sparkEvents(events,
		effect.NewSpark(c, 0, t.KillSparkSpeed+rng.Float64()),
		effect.NewSpark(c, math.Pi, t.KillSparkSpeed+rng.Float64()),
	)
	return append(events, ScreenShakeEvent{Amount: DeathShake}, PlaySoundEvent{Sound: SoundHit})
}

// LineOfSight reports whether the segment from a to b crosses no solid
// cell. The segment is sampled every half tile, plus both end points.
func LineOfSight(grid Collider, a, b geom.Vec) bool {
	d := b.Sub(a)
	dist := math.Hypot(d.X, d.Y)
	step := float64(grid.TileSize()) / 2
	n := int(math.Ceil(dist / step))
	for i := 0; i <= n; i++ {
		f := 1.0
		if n > 0 {
			f = float64(i) / float64(n)
		}
		if grid.IsSolidAt(a.Add(d.Scale(f))) {
			return false
		}
	}
	return true
}
