package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/smashninja/internal/application/state"
	"github.com/younwookim/smashninja/internal/domain/effect"
	"github.com/younwookim/smashninja/internal/domain/entity"
	"github.com/younwookim/smashninja/internal/domain/geom"
	"github.com/younwookim/smashninja/internal/domain/tilemap"
	"github.com/younwookim/smashninja/internal/infrastructure/config"
)

func stepN(w *World, n int, in InputState) []entity.Event {
	var all []entity.Event
	for i := 0; i < n; i++ {
		all = append(all, w.Step(in)...)
	}
	return all
}

func TestWorld_FadeIn(t *testing.T) {
	w := createTestWorld()

	stepN(w, 10, InputState{})
	assert.Equal(t, -20, w.Transition)

	stepN(w, 25, InputState{})
	assert.Zero(t, w.Transition, "stops at zero while enemies remain")
}

func TestWorld_CameraEasing(t *testing.T) {
	w := createTestWorld()
	// player centre (36, 87.5), view 320x240, lag 30
	w.Step(InputState{})

	assert.InDelta(t, (36.0-160)/30, w.Scroll.X, 1e-9)
	assert.InDelta(t, (87.5-120)/30, w.Scroll.Y, 1e-9)
	assert.Equal(t, geom.V(-4, -1), w.Camera())
}

func TestWorld_PlayerLandsAndJumps(t *testing.T) {
	w := createTestWorld()

	stepN(w, 20, InputState{})
	require.True(t, w.Player.Collisions.Down)
	assert.InDelta(t, floorY, w.Player.Pos.Y, 1e-9)

	events := w.Step(InputState{JumpPressed: true})
	assert.Contains(t, events, entity.Event(entity.PlaySoundEvent{Sound: entity.SoundJump}))
	assert.Less(t, w.Player.Velocity.Y, 0.0)
}

func TestWorld_MovesWithInput(t *testing.T) {
	w := createTestWorld()
	stepN(w, 20, InputState{})
	x := w.Player.Pos.X

	stepN(w, 10, InputState{Right: true})
	assert.InDelta(t, x+10, w.Player.Pos.X, 1e-9)
	assert.False(t, w.Player.Flip)

	stepN(w, 1, InputState{Left: true})
	assert.True(t, w.Player.Flip)
}

func TestWorld_DashSpawnsEffects(t *testing.T) {
	w := createTestWorld()
	stepN(w, 20, InputState{})

	events := w.Step(InputState{DashPressed: true})

	assert.Contains(t, events, entity.Event(entity.PlaySoundEvent{Sound: entity.SoundDash}))
	assert.NotEmpty(t, w.Effects.Sparks())
	assert.NotEmpty(t, w.Effects.Particles())
	assert.True(t, w.Player.Invulnerable())
}

func TestWorld_ProjectileDeathAndRestart(t *testing.T) {
	w := createTestWorld()
	stepN(w, 20, InputState{})

	p := w.Player.Pos
	w.Combat.AddProjectile(entity.NewProjectile(geom.V(p.X-1, p.Y+7), 1, 1.5))

	events := w.Step(InputState{})
	require.Contains(t, events, entity.Event(entity.DiedEvent{Cause: entity.CauseProjectile}))
	assert.Equal(t, 1, w.Dead)
	assert.Equal(t, float64(entity.DeathShake), w.ScreenShake)

	frozen := w.Player.Pos
	events = stepN(w, 60, InputState{Right: true, JumpPressed: true})

	assert.Equal(t, frozen, w.Player.Pos, "a dead player is not updated")
	assert.Equal(t, 1, countEvents[entity.RestartLevelEvent](events))
	assert.Zero(t, countEvents[entity.DiedEvent](events), "death is reported once")
	assert.Equal(t, 30, w.Transition, "fade-out is capped")
	assert.Zero(t, w.ScreenShake)
}

func TestWorld_FallDeath(t *testing.T) {
	grid := tilemap.New(16)
	grid.Place(tilemap.Tile{Kind: tilemap.KindSpawner, Variant: 0, Pos: geom.V(2, 5)})
	grid.Place(tilemap.Tile{Kind: tilemap.KindSpawner, Variant: 1, Pos: geom.V(40, 5)})
	w, err := LoadWorld(grid, config.Defaults(), createTestProvider(), testRNG(), 0)
	require.NoError(t, err)

	events := stepN(w, 120, InputState{})
	assert.Zero(t, countEvents[entity.DiedEvent](events))

	events = w.Step(InputState{})
	assert.Contains(t, events, entity.Event(entity.DiedEvent{Cause: entity.CauseFall}))
	assert.Equal(t, 1, w.Dead)
}

func TestWorld_LevelCleared(t *testing.T) {
	w := createTestWorld()
	w.Combat.enemies = w.Combat.enemies[:0]

	events := stepN(w, 100, InputState{})

	require.Equal(t, 1, countEvents[entity.LevelClearedEvent](events))
	assert.Contains(t, events, entity.Event(entity.LevelClearedEvent{Level: 0}))
	assert.Greater(t, w.Transition, 30)
}

func TestWorld_Leaves(t *testing.T) {
	settings := config.Defaults()
	settings.Effects.LeafIntensity = 1
	w, err := LoadWorld(createTestGrid(), settings, createTestProvider(), testRNG(), 0)
	require.NoError(t, err)

	w.Step(InputState{})

	require.Len(t, w.Effects.Particles(), 1)
	leaf := w.Effects.Particles()[0]
	assert.Equal(t, effect.ParticleLeaf, leaf.Kind)
	assert.InDelta(t, 204+11.5, leaf.Pos.X, 12.5)
	assert.InDelta(t, 44+6.5+0.3, leaf.Pos.Y, 6.5)
}

func TestWorld_NoLeavesByDefaultOnFirstTick(t *testing.T) {
	w := createTestWorld()
	w.Trees = nil

	stepN(w, 50, InputState{})
	for _, p := range w.Effects.Particles() {
		assert.NotEqual(t, effect.ParticleLeaf, p.Kind)
	}
}

func TestWorld_Deterministic(t *testing.T) {
	script := func(tick int) InputState {
		return InputState{
			Right:       tick%200 < 120,
			Left:        tick%200 >= 150,
			JumpPressed: tick%45 == 0,
			DashPressed: tick%90 == 10,
		}
	}

	a := createTestWorld()
	b := createTestWorld()
	for i := 0; i < 600; i++ {
		a.Step(script(i))
		b.Step(script(i))
	}

	assert.Equal(t, a.Player.Pos, b.Player.Pos)
	assert.Equal(t, a.Dead, b.Dead)
	assert.Equal(t, len(a.Effects.Sparks()), len(b.Effects.Sparks()))
	assert.Equal(t, len(a.Effects.Particles()), len(b.Effects.Particles()))
	assert.Equal(t, len(a.Combat.Enemies()), len(b.Combat.Enemies()))
	assert.Equal(t, a.Scroll, b.Scroll)
}

func TestWorld_Phase(t *testing.T) {
	w := createTestWorld()
	assert.Equal(t, state.StateFadeIn, w.Phase())

	stepN(w, 30, InputState{})
	assert.Equal(t, state.StatePlaying, w.Phase())

	w.Dead = 1
	assert.Equal(t, state.StateDying, w.Phase())

	w.Dead = 0
	w.Combat.enemies = nil
	assert.Equal(t, state.StateLevelClear, w.Phase())
}
