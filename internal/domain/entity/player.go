package entity

import (
	"math"
	"math/rand"

	"github.com/younwookim/smashninja/internal/domain/anim"
	"github.com/younwookim/smashninja/internal/domain/effect"
	"github.com/younwookim/smashninja/internal/domain/geom"
)

// State is the player's behavior for one tick, derived from its counters
// and collision flags rather than stored
type State int

const (
	StateIdle State = iota
	StateRun
	StateJump
	StateWallSlide
	StateDashBurst
	StateDashDecay
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRun:
		return "Run"
	case StateJump:
		return "Jump"
	case StateWallSlide:
		return "WallSlide"
	case StateDashBurst:
		return "DashBurst"
	case StateDashDecay:
		return "DashDecay"
	default:
		return "Unknown"
	}
}

// Action returns the animation played in this state
func (s State) Action() anim.Action {
	switch s {
	case StateWallSlide:
		return anim.ActionWallSlide
	case StateDashBurst:
		return anim.ActionSlide
	case StateJump:
		return anim.ActionJump
	case StateRun, StateDashDecay:
		return anim.ActionRun
	default:
		return anim.ActionIdle
	}
}

// Snapshot is the kinematic input of DeriveState
type Snapshot struct {
	AirTime        int
	AirborneFrames int
	MovementX      float64
	VelocityX      float64
	WallSlide      bool
	Dashing        int
	BurstFloor     int // dash counter magnitudes above this are the burst phase
}

// DeriveState picks the player's state. Order matters: wall slide wins over
// everything, then the dash burst, then being airborne.
func DeriveState(s Snapshot) State {
	switch {
	case s.WallSlide:
		return StateWallSlide
	case absInt(s.Dashing) > s.BurstFloor:
		return StateDashBurst
	case s.AirTime > s.AirborneFrames:
		return StateJump
	case s.Dashing != 0:
		return StateDashDecay
	case s.MovementX != 0 || s.VelocityX != 0:
		return StateRun
	}
	return StateIdle
}

// Player is the controllable character
type Player struct {
	Body

	AirTime   int
	Jumps     int
	WallSlide bool
	Dashing   int // signed: direction in the sign, remaining ticks in the magnitude
	State     State

	Tuning PlayerTuning
}

// NewPlayer creates a player standing at pos with a full jump count
func NewPlayer(anims anim.Provider, pos geom.Vec, tuning PlayerTuning) *Player {
	return &Player{
		Body:   NewBody(anim.EntityPlayer, anims, pos, tuning.Size),
		Jumps:  tuning.MaxJumps,
		Tuning: tuning,
	}
}

func (p *Player) burstFloor() int {
	return p.Tuning.DashFrames - p.Tuning.DashBurstFrames
}

// Update runs one tick of physics and behavior. movement is the horizontal
// input for this tick.
func (p *Player) Update(grid Collider, movement geom.Vec, rng *rand.Rand) []Event {
	var events []Event
	t := p.Tuning

	p.Body.Update(grid, movement)

	p.AirTime++
	if p.AirTime == t.FallDeathFrames+1 {
		events = append(events, ScreenShakeEvent{Amount: DeathShake}, DiedEvent{Cause: CauseFall})
	}

	if p.Collisions.Down {
		p.AirTime = 0
		p.Jumps = t.MaxJumps
	}
	// coyote window over: the ground jump is gone, air jumps remain
	if p.AirTime > t.CoyoteFrames && p.Jumps == t.MaxJumps {
		p.Jumps = t.MaxJumps - 1
	}

	p.WallSlide = false
	if p.AirTime > t.AirborneFrames && p.Velocity.Y > 0 {
		if (p.Collisions.Right && movement.X > 0) || (p.Collisions.Left && movement.X < 0) {
			p.WallSlide = true
			p.Velocity.Y = min(p.Velocity.Y, t.WallSlideSpeed)
			p.Flip = p.Collisions.Left
			p.Jumps = t.MaxJumps
		}
	}

	p.State = DeriveState(Snapshot{
		AirTime:        p.AirTime,
		AirborneFrames: t.AirborneFrames,
		MovementX:      movement.X,
		VelocityX:      p.Velocity.X,
		WallSlide:      p.WallSlide,
		Dashing:        p.Dashing,
		BurstFloor:     p.burstFloor(),
	})
	p.SetAction(p.State.Action())

	events = p.updateDash(events, rng)

	if p.Velocity.X > 0 {
		p.Velocity.X = max(p.Velocity.X-t.Friction, 0)
	} else {
		p.Velocity.X = min(p.Velocity.X+t.Friction, 0)
	}
	return events
}

func (p *Player) updateDash(events []Event, rng *rand.Rand) []Event {
	t := p.Tuning
	floor := p.burstFloor()

	// dust rings mark the start and the end of the burst
	if d := absInt(p.Dashing); p.Dashing != 0 && (d == t.DashFrames || d == floor) {
		events = particleEvents(events, effect.DustRing(rng, p.anims, p.Center(), t.BurstParticles)...)
	}

	if p.Dashing > 0 {
		p.Dashing--
	} else if p.Dashing < 0 {
		p.Dashing++
	}

	if d := absInt(p.Dashing); d > floor {
		dir := 1.0
		if p.Dashing < 0 {
			dir = -1
		}
		p.Velocity.X = dir * t.DashSpeed
		p.Velocity.Y = 0
		if d == floor+1 {
			p.Velocity.X *= t.DashDecayFactor
		}
		trail := effect.NewParticle(p.anims, effect.ParticleDust, p.Center(),
			geom.V(dir*rng.Float64()*t.DashTrailSpeed, 0), rng.Intn(effect.DustFrames))
		events = append(events, SpawnParticleEvent{Particle: trail})
	}
	return events
}

// Jump tries to jump and reports whether it did. While wall sliding it
// kicks off the wall instead.
func (p *Player) Jump() bool {
	t := p.Tuning
	if p.WallSlide {
		p.Velocity.X = -p.Facing() * t.WallJump.X
		p.Velocity.Y = -t.WallJump.Y
		p.AirTime = t.AirGrace
		p.Jumps = max(0, p.Jumps-1)
		p.WallSlide = false
		return true
	}
	if p.Jumps > 0 {
		p.Velocity.Y = -t.JumpVelocity
		p.Jumps--
		p.AirTime = t.AirGrace
		return true
	}
	return false
}

// Dash starts a dash in the facing direction. It is refused until the
// previous dash counter has run out.
func (p *Player) Dash() (bool, []Event) {
	if p.Dashing != 0 {
		return false, nil
	}
	t := p.Tuning
	p.Dashing = int(p.Facing()) * t.DashFrames

	c := p.Center()
	events := sparkEvents(nil,
		effect.NewSpark(c, 0, t.PopSparkSpeed),
		effect.NewSpark(c, math.Pi, t.PopSparkSpeed),
	)
	events = append(events, PlaySoundEvent{Sound: SoundDash})
	return true, events
}

// FastFall slams the player downward
func (p *Player) FastFall() {
	p.Velocity.Y = p.Tuning.FastFallSpeed
}

// Invulnerable reports whether the dash burst is active. Projectiles pass
// through and enemies touched die.
func (p *Player) Invulnerable() bool {
	return absInt(p.Dashing) >= p.burstFloor()
}

// Reset respawns the player at pos
func (p *Player) Reset(pos geom.Vec) {
	p.Pos = pos
	p.Velocity = geom.Vec{}
	p.Collisions = Collisions{}
	p.AirTime = 0
	p.Jumps = p.Tuning.MaxJumps
	p.WallSlide = false
	p.Dashing = 0
	p.State = StateIdle
	p.SetAction(anim.ActionIdle)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
