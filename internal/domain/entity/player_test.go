package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/smashninja/internal/domain/anim"
	"github.com/younwookim/smashninja/internal/domain/geom"
	"github.com/younwookim/smashninja/internal/domain/tilemap"
)

func newTestPlayer(pos geom.Vec) *Player {
	return NewPlayer(createTestProvider(), pos, DefaultPlayerTuning())
}

func TestNewPlayer(t *testing.T) {
	p := newTestPlayer(geom.V(10, 20))

	assert.Equal(t, geom.V(10, 20), p.Pos)
	assert.Equal(t, geom.V(8, 15), p.Size)
	assert.Equal(t, 2, p.Jumps)
	assert.Equal(t, anim.EntityPlayer, p.Kind)
	assert.Equal(t, anim.ActionIdle, p.Action)
	assert.Equal(t, geom.V(-3, -3), p.AnimOffset)
}

func TestPlayer_DoubleJump(t *testing.T) {
	p := newTestPlayer(geom.V(0, 0))
	p.AirTime = 30
	p.Jumps = 2

	assert.True(t, p.Jump())
	assert.Equal(t, -3.0, p.Velocity.Y)
	assert.True(t, p.Jump())
	assert.False(t, p.Jump(), "no jumps left before landing")
	assert.Equal(t, 0, p.Jumps)
	assert.Equal(t, 5, p.AirTime, "jump sets the air grace")
}

func TestPlayer_LandingRefillsJumps(t *testing.T) {
	g := createFloorGrid(0, 10)
	p := newTestPlayer(geom.V(40, floorY))
	p.Jumps = 0
	p.AirTime = 40

	p.Update(g, geom.Vec{}, rand.New(rand.NewSource(12345)))

	assert.Equal(t, 2, p.Jumps)
	assert.Equal(t, 0, p.AirTime)
	assert.Equal(t, StateIdle, p.State)
}

func TestPlayer_CoyoteWindow(t *testing.T) {
	g := tilemap.New(16)
	rng := rand.New(rand.NewSource(12345))
	p := newTestPlayer(geom.V(0, 0))

	// just walked off a ledge
	for i := 0; i < 6; i++ {
		p.Update(g, geom.Vec{}, rng)
	}
	assert.Equal(t, 2, p.Jumps, "ground jump still available")

	p.Update(g, geom.Vec{}, rng)
	assert.Equal(t, 1, p.Jumps, "window closed, the air jump remains")

	assert.True(t, p.Jump())
	assert.False(t, p.Jump())
}

func TestPlayer_FallDeath(t *testing.T) {
	g := tilemap.New(16)
	rng := rand.New(rand.NewSource(12345))
	p := newTestPlayer(geom.V(0, 0))

	died := 0
	diedAt := 0
	for i := 1; i <= 200; i++ {
		events := p.Update(g, geom.Vec{}, rng)
		if ev, ok := firstEvent[DiedEvent](events); ok {
			died++
			diedAt = i
			assert.Equal(t, CauseFall, ev.Cause)
			assert.Equal(t, 1, countEvents[ScreenShakeEvent](events))
		}
	}
	assert.Equal(t, 1, died)
	assert.Equal(t, 121, diedAt)
}

func TestPlayer_DashLockoutAndRearm(t *testing.T) {
	g := createFloorGrid(0, 79)
	rng := rand.New(rand.NewSource(12345))
	p := newTestPlayer(geom.V(100, floorY))

	ok, events := p.Dash()
	require.True(t, ok)
	assert.Equal(t, 60, p.Dashing)
	assert.Equal(t, 2, countEvents[SpawnSparkEvent](events))
	snd, _ := firstEvent[PlaySoundEvent](events)
	assert.Equal(t, SoundDash, snd.Sound)

	for i := 0; i < 60; i++ {
		again, ev := p.Dash()
		assert.False(t, again, "tick %d", i)
		assert.Nil(t, ev)
		p.Update(g, geom.Vec{}, rng)
	}
	require.Equal(t, 0, p.Dashing)

	p.Flip = true
	ok, _ = p.Dash()
	require.True(t, ok, "re-armed as soon as the counter ran out")
	assert.Equal(t, -60, p.Dashing)

	p.Update(g, geom.Vec{}, rng)
	assert.InDelta(t, -7.9, p.Velocity.X, 1e-9, "burst velocity reversed with facing")
}

func TestPlayer_DashPhases(t *testing.T) {
	g := createFloorGrid(0, 79)
	rng := rand.New(rand.NewSource(12345))
	p := newTestPlayer(geom.V(100, floorY))
	p.Dash()

	events := p.Update(g, geom.Vec{}, rng)
	assert.Equal(t, StateDashBurst, p.State)
	assert.Equal(t, anim.ActionSlide, p.Action)
	assert.Equal(t, 21, countEvents[SpawnParticleEvent](events), "dust ring plus one trailing puff")
	assert.InDelta(t, 7.9, p.Velocity.X, 1e-9)
	assert.Zero(t, p.Velocity.Y)
	assert.True(t, p.Invulnerable())

	for p.Dashing > 52 {
		events = p.Update(g, geom.Vec{}, rng)
		assert.Equal(t, 1, countEvents[SpawnParticleEvent](events))
	}
	p.Update(g, geom.Vec{}, rng)
	assert.Equal(t, 51, p.Dashing)
	assert.InDelta(t, 0.7, p.Velocity.X, 1e-9, "last burst step decays the speed")

	events = p.Update(g, geom.Vec{}, rng)
	assert.Equal(t, 50, p.Dashing)
	assert.Zero(t, countEvents[SpawnParticleEvent](events), "burst over, no trail")
	assert.True(t, p.Invulnerable())

	events = p.Update(g, geom.Vec{}, rng)
	assert.Equal(t, 20, countEvents[SpawnParticleEvent](events), "closing dust ring")
	assert.Equal(t, 49, p.Dashing)
	assert.False(t, p.Invulnerable())

	p.Update(g, geom.Vec{}, rng)
	assert.Equal(t, StateDashDecay, p.State)
}

func TestPlayer_WallSlideAndWallJump(t *testing.T) {
	g := tilemap.New(16)
	addWall(g, 10, 0, 10)
	rng := rand.New(rand.NewSource(12345))
	p := newTestPlayer(geom.V(152, 40))
	p.AirTime = 10
	p.Velocity.Y = 1

	p.Update(g, geom.V(1, 0), rng)

	require.True(t, p.WallSlide)
	assert.True(t, p.Collisions.Right)
	assert.Equal(t, 0.5, p.Velocity.Y)
	assert.False(t, p.Flip, "faces the wall")
	assert.Equal(t, 2, p.Jumps)
	assert.Equal(t, StateWallSlide, p.State)
	assert.Equal(t, anim.ActionWallSlide, p.Action)

	require.True(t, p.Jump())
	assert.Equal(t, -3.5, p.Velocity.X, "pushed away from the wall")
	assert.Equal(t, -2.5, p.Velocity.Y)
	assert.Equal(t, 1, p.Jumps)
	assert.False(t, p.WallSlide)
}

func TestPlayer_NoWallSlideWithoutInput(t *testing.T) {
	g := tilemap.New(16)
	addWall(g, 10, 0, 10)
	p := newTestPlayer(geom.V(152, 40))
	p.AirTime = 10
	p.Velocity = geom.V(1, 1)

	p.Update(g, geom.Vec{}, rand.New(rand.NewSource(1)))

	assert.True(t, p.Collisions.Right)
	assert.False(t, p.WallSlide)
	assert.Equal(t, StateJump, p.State)
}

func TestPlayer_Friction(t *testing.T) {
	g := createFloorGrid(0, 10)
	rng := rand.New(rand.NewSource(1))
	p := newTestPlayer(geom.V(40, floorY))
	p.Velocity.X = 0.25

	p.Update(g, geom.Vec{}, rng)
	assert.InDelta(t, 0.15, p.Velocity.X, 1e-9)
	p.Update(g, geom.Vec{}, rng)
	p.Update(g, geom.Vec{}, rng)
	assert.Zero(t, p.Velocity.X, "friction never overshoots zero")

	p.Velocity.X = -0.05
	p.Update(g, geom.Vec{}, rng)
	assert.Zero(t, p.Velocity.X)
}

func TestPlayer_FastFall(t *testing.T) {
	p := newTestPlayer(geom.V(0, 0))
	p.FastFall()
	assert.Equal(t, 3.0, p.Velocity.Y)
}

func TestPlayer_Reset(t *testing.T) {
	p := newTestPlayer(geom.V(0, 0))
	p.Velocity = geom.V(3, 4)
	p.AirTime = 50
	p.Jumps = 0
	p.Dashing = -30
	p.SetAction(anim.ActionJump)

	p.Reset(geom.V(64, 32))

	assert.Equal(t, geom.V(64, 32), p.Pos)
	assert.Equal(t, geom.Vec{}, p.Velocity)
	assert.Equal(t, 0, p.AirTime)
	assert.Equal(t, 2, p.Jumps)
	assert.Equal(t, 0, p.Dashing)
	assert.Equal(t, anim.ActionIdle, p.Action)
}

func TestDeriveState(t *testing.T) {
	base := Snapshot{AirborneFrames: 4, BurstFloor: 50}

	tests := []struct {
		name string
		edit func(s *Snapshot)
		want State
	}{
		{"idle", func(s *Snapshot) {}, StateIdle},
		{"run from input", func(s *Snapshot) { s.MovementX = 1 }, StateRun},
		{"run from momentum", func(s *Snapshot) { s.VelocityX = -0.3 }, StateRun},
		{"airborne", func(s *Snapshot) { s.AirTime = 5; s.MovementX = 1 }, StateJump},
		{"air grace is not airborne", func(s *Snapshot) { s.AirTime = 4 }, StateIdle},
		{"dash burst", func(s *Snapshot) { s.Dashing = -55; s.AirTime = 20 }, StateDashBurst},
		{"dash decay on ground", func(s *Snapshot) { s.Dashing = 30 }, StateDashDecay},
		{"dash decay in air shows jump", func(s *Snapshot) { s.Dashing = 30; s.AirTime = 9 }, StateJump},
		{"wall slide wins", func(s *Snapshot) { s.WallSlide = true; s.Dashing = 58; s.AirTime = 9 }, StateWallSlide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base
			tt.edit(&s)
			assert.Equal(t, tt.want, DeriveState(s))
		})
	}
}

func TestState_Action(t *testing.T) {
	assert.Equal(t, anim.ActionWallSlide, StateWallSlide.Action())
	assert.Equal(t, anim.ActionSlide, StateDashBurst.Action())
	assert.Equal(t, anim.ActionRun, StateDashDecay.Action())
	assert.Equal(t, anim.ActionJump, StateJump.Action())
	assert.Equal(t, anim.ActionIdle, StateIdle.Action())
	assert.Equal(t, "DashBurst", StateDashBurst.String())
}
