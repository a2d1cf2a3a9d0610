package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/smashninja/internal/domain/entity"
	"github.com/younwookim/smashninja/internal/domain/geom"
	"github.com/younwookim/smashninja/internal/domain/tilemap"
	"github.com/younwookim/smashninja/internal/infrastructure/config"
)

// createCombatGrid is a floor on row 6 with a wall in column 10
func createCombatGrid() *tilemap.Grid {
	g := tilemap.New(16)
	for x := 0; x < 30; x++ {
		g.Place(tilemap.Tile{Kind: tilemap.KindStone, Pos: geom.V(float64(x), 6)})
	}
	for y := 0; y < 6; y++ {
		g.Place(tilemap.Tile{Kind: tilemap.KindStone, Pos: geom.V(10, float64(y))})
	}
	return g
}

func createCombatPlayer(pos geom.Vec) *entity.Player {
	return entity.NewPlayer(createTestProvider(), pos, entity.DefaultPlayerTuning())
}

func TestCombatSystem_SpawnEnemy(t *testing.T) {
	settings := config.Defaults()
	settings.Physics.Gravity = 0.2
	s := NewCombatSystem(settings, createTestProvider())

	e := s.SpawnEnemy(geom.V(40, floorY))

	require.Len(t, s.Enemies(), 1)
	assert.Equal(t, geom.V(40, floorY), e.Pos)
	assert.Equal(t, 0.2, e.Gravity)
	assert.Equal(t, settings.EnemyTuning(), e.Tuning)
}

func TestCombatSystem_ProjectileHitsTile(t *testing.T) {
	tests := []struct {
		name      string
		pos       geom.Vec
		direction float64
		backAngle float64
	}{
		{"moving right", geom.V(159, 40), 1, math.Pi},
		{"moving left", geom.V(177, 40), -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewCombatSystem(config.Defaults(), createTestProvider())
			s.AddProjectile(entity.NewProjectile(tt.pos, tt.direction, 1.5))
			player := createCombatPlayer(geom.V(40, floorY))

			events := s.UpdateProjectiles(createCombatGrid(), player, true, testRNG())

			assert.Empty(t, s.Projectiles())
			require.Equal(t, 4, countEvents[entity.SpawnSparkEvent](events))
			for _, ev := range events {
				sp := ev.(entity.SpawnSparkEvent).Spark
				assert.InDelta(t, tt.backAngle, sp.Angle, 0.5, "sparks fly back toward the shooter")
				assert.GreaterOrEqual(t, sp.Speed, 2.0)
				assert.Less(t, sp.Speed, 3.0)
			}
		})
	}
}

func TestCombatSystem_ProjectileExpires(t *testing.T) {
	s := NewCombatSystem(config.Defaults(), createTestProvider())
	p := entity.NewProjectile(geom.V(300, 40), 1, 1.5)
	p.Age = entity.ProjectileMaxAge - 1
	s.AddProjectile(p)
	player := createCombatPlayer(geom.V(40, floorY))

	s.UpdateProjectiles(createCombatGrid(), player, true, testRNG())
	require.Len(t, s.Projectiles(), 1, "alive at the max age")

	events := s.UpdateProjectiles(createCombatGrid(), player, true, testRNG())
	assert.Empty(t, s.Projectiles())
	assert.Empty(t, events)
}

func TestCombatSystem_ProjectileHitsPlayer(t *testing.T) {
	tests := []struct {
		name    string
		alive   bool
		dashing int
		hit     bool
	}{
		{"alive", true, 0, true},
		{"dash decay is vulnerable", true, 49, true},
		{"dash burst passes through", true, 50, false},
		{"already dead", false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewCombatSystem(config.Defaults(), createTestProvider())
			s.AddProjectile(entity.NewProjectile(geom.V(99, floorY+7), 1, 1.5))
			player := createCombatPlayer(geom.V(100, floorY))
			player.Dashing = tt.dashing

			events := s.UpdateProjectiles(createCombatGrid(), player, tt.alive, testRNG())

			if !tt.hit {
				assert.Len(t, s.Projectiles(), 1)
				assert.Empty(t, events)
				return
			}
			assert.Empty(t, s.Projectiles())
			assert.Equal(t, 1, countEvents[entity.DiedEvent](events))
			assert.Equal(t, 1, countEvents[entity.ScreenShakeEvent](events))
			assert.Equal(t, 30, countEvents[entity.SpawnSparkEvent](events))
			assert.Equal(t, 30, countEvents[entity.SpawnParticleEvent](events))
			assert.Contains(t, events, entity.Event(entity.DiedEvent{Cause: entity.CauseProjectile}))
		})
	}
}

func TestCombatSystem_UpdateEnemies_Kill(t *testing.T) {
	s := NewCombatSystem(config.Defaults(), createTestProvider())
	s.SpawnEnemy(geom.V(100, floorY))
	s.SpawnEnemy(geom.V(300, floorY))

	player := createCombatPlayer(geom.V(102, floorY))
	player.Dashing = 60

	events := s.UpdateEnemies(createCombatGrid(), player, testRNG())

	require.Len(t, s.Enemies(), 1)
	assert.Equal(t, 300.0, s.Enemies()[0].Pos.X)

	require.Equal(t, 1, countEvents[entity.EnemyKilledEvent](events))
	for _, ev := range events {
		if k, ok := ev.(entity.EnemyKilledEvent); ok {
			assert.Equal(t, 1, k.Remaining)
			assert.InDelta(t, 104, k.Pos.X, 1e-9)
		}
	}
	assert.Equal(t, 1, countEvents[entity.ScreenShakeEvent](events))
}

func TestCombatSystem_UpdateEnemies_NoKillWithoutDash(t *testing.T) {
	s := NewCombatSystem(config.Defaults(), createTestProvider())
	s.SpawnEnemy(geom.V(100, floorY))
	player := createCombatPlayer(geom.V(102, floorY))

	events := s.UpdateEnemies(createCombatGrid(), player, testRNG())

	assert.Len(t, s.Enemies(), 1)
	assert.Zero(t, countEvents[entity.EnemyKilledEvent](events))
}
