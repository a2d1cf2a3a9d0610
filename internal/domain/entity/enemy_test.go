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

type stubTarget struct {
	rect         geom.Rect
	invulnerable bool
}

func (s stubTarget) Rect() geom.Rect    { return s.rect }
func (s stubTarget) Invulnerable() bool { return s.invulnerable }

var farTarget = stubTarget{rect: geom.R(5000, 0, 8, 15)}

func newTestEnemy(pos geom.Vec) *Enemy {
	return NewEnemy(createTestProvider(), pos, DefaultEnemyTuning())
}

func TestNewEnemy(t *testing.T) {
	e := newTestEnemy(geom.V(32, 48))

	assert.Equal(t, geom.V(32, 48), e.Pos)
	assert.Equal(t, anim.EntityEnemy, e.Kind)
	assert.Equal(t, 0, e.Walking)
	assert.False(t, e.Flip)
}

func TestEnemy_ReversesAtLedge(t *testing.T) {
	g := createFloorGrid(0, 5)
	rng := rand.New(rand.NewSource(12345))
	e := newTestEnemy(geom.V(90, floorY))
	e.Walking = 10

	e.Update(g, farTarget, rng)
	assert.True(t, e.Flip, "no ground ahead")
	assert.Equal(t, 90.0, e.Pos.X, "did not step into the gap")
	assert.Equal(t, 9, e.Walking)

	e.Update(g, farTarget, rng)
	assert.Equal(t, 89.5, e.Pos.X, "walks back the other way")
	assert.Equal(t, anim.ActionRun, e.Action)
}

func TestEnemy_ReversesAtWall(t *testing.T) {
	g := createFloorGrid(0, 20)
	addWall(g, 8, 0, 5)
	rng := rand.New(rand.NewSource(12345))
	e := newTestEnemy(geom.V(120, floorY))
	e.Walking = 5

	e.Update(g, farTarget, rng)
	require.True(t, e.Collisions.Right)
	assert.False(t, e.Flip)

	e.Update(g, farTarget, rng)
	assert.True(t, e.Flip)
}

func TestEnemy_StartsWalking(t *testing.T) {
	g := createFloorGrid(0, 20)
	e := newTestEnemy(geom.V(100, floorY))
	e.Tuning.WalkChance = 1

	e.Update(g, farTarget, rand.New(rand.NewSource(12345)))

	assert.GreaterOrEqual(t, e.Walking, 30)
	assert.LessOrEqual(t, e.Walking, 120)
	assert.Equal(t, anim.ActionIdle, e.Action, "starts moving next tick")
}

func TestEnemy_Shoots(t *testing.T) {
	tests := []struct {
		name   string
		flip   bool
		target geom.Rect
		wall   bool
		shoots bool
	}{
		{"in front", false, geom.R(150, floorY, 8, 15), false, true},
		{"in front facing left", true, geom.R(50, floorY, 8, 15), false, true},
		{"behind", false, geom.R(50, floorY, 8, 15), false, false},
		{"too high", false, geom.R(150, floorY-20, 8, 15), false, false},
		{"out of range", false, geom.R(300, floorY, 8, 15), false, false},
		{"wall in between", false, geom.R(150, floorY, 8, 15), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := createFloorGrid(0, 30)
			if tt.wall {
				addWall(g, 8, 0, 5)
			}
			e := newTestEnemy(geom.V(100, floorY))
			e.Flip = tt.flip
			e.Walking = 1

			killed, events := e.Update(g, stubTarget{rect: tt.target}, rand.New(rand.NewSource(12345)))
			require.False(t, killed)

			proj, ok := firstEvent[SpawnProjectileEvent](events)
			assert.Equal(t, tt.shoots, ok)
			if !tt.shoots {
				assert.Equal(t, 0, e.Cooldown)
				return
			}

			dir := 1.0
			if tt.flip {
				dir = -1
			}
			assert.Equal(t, geom.V(104+dir*7, floorY+7.5), proj.Projectile.Pos)
			assert.Equal(t, dir, proj.Projectile.Direction)
			assert.Equal(t, 1.5, proj.Projectile.Speed)
			assert.Equal(t, 4, countEvents[SpawnSparkEvent](events))
			snd, _ := firstEvent[PlaySoundEvent](events)
			assert.Equal(t, SoundShoot, snd.Sound)
			assert.Equal(t, 30, e.Cooldown)
		})
	}
}

func TestEnemy_CooldownDelaysWalking(t *testing.T) {
	g := createFloorGrid(0, 20)
	rng := rand.New(rand.NewSource(12345))
	e := newTestEnemy(geom.V(100, floorY))
	e.Tuning.WalkChance = 1
	e.Cooldown = 2

	e.Update(g, farTarget, rng)
	e.Update(g, farTarget, rng)
	assert.Equal(t, 0, e.Walking)
	assert.Equal(t, 0, e.Cooldown)

	e.Update(g, farTarget, rng)
	assert.Positive(t, e.Walking)
}

func TestEnemy_KilledByDash(t *testing.T) {
	g := createFloorGrid(0, 20)
	e := newTestEnemy(geom.V(100, floorY))

	target := stubTarget{rect: geom.R(104, floorY, 8, 15), invulnerable: true}
	killed, events := e.Update(g, target, rand.New(rand.NewSource(12345)))

	require.True(t, killed)
	assert.Equal(t, 17, countEvents[SpawnSparkEvent](events))
	assert.Equal(t, 15, countEvents[SpawnParticleEvent](events))
	shake, _ := firstEvent[ScreenShakeEvent](events)
	assert.Equal(t, float64(DeathShake), shake.Amount)
	snd, _ := firstEvent[PlaySoundEvent](events)
	assert.Equal(t, SoundHit, snd.Sound)
}

func TestEnemy_TouchWithoutDashIsHarmless(t *testing.T) {
	g := createFloorGrid(0, 20)
	e := newTestEnemy(geom.V(100, floorY))

	killed, _ := e.Update(g, stubTarget{rect: geom.R(104, floorY, 8, 15)}, rand.New(rand.NewSource(1)))
	assert.False(t, killed)
}

func TestLineOfSight(t *testing.T) {
	g := tilemap.New(16)
	g.Place(tilemap.Tile{Kind: tilemap.KindStone, Pos: geom.V(5, 2)})
	g.Place(tilemap.Tile{Kind: tilemap.KindDecor, Pos: geom.V(5, 4)})

	tests := []struct {
		name string
		a, b geom.Vec
		want bool
	}{
		{"blocked", geom.V(10, 40), geom.V(150, 40), false},
		{"decor does not block", geom.V(10, 72), geom.V(150, 72), true},
		{"clear row", geom.V(10, 8), geom.V(150, 8), true},
		{"same point", geom.V(10, 8), geom.V(10, 8), true},
		{"end inside solid", geom.V(10, 40), geom.V(85, 40), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LineOfSight(g, tt.a, tt.b))
		})
	}
}
