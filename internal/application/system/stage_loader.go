package system

import (
	"errors"
	"math/rand"

	"github.com/younwookim/smashninja/internal/domain/anim"
	"github.com/younwookim/smashninja/internal/domain/entity"
	"github.com/younwookim/smashninja/internal/domain/geom"
	"github.com/younwookim/smashninja/internal/domain/tilemap"
	"github.com/younwookim/smashninja/internal/infrastructure/config"
)

// ErrNoPlayerSpawn is returned for a level without a player spawner
var ErrNoPlayerSpawn = errors.New("level has no player spawner")

var (
	playerSpawner = tilemap.VariantKey{Kind: tilemap.KindSpawner, Variant: 0}
	enemySpawner  = tilemap.VariantKey{Kind: tilemap.KindSpawner, Variant: 1}
	leafTree      = tilemap.VariantKey{Kind: tilemap.KindLargeDecor, Variant: 2}
)

// LoadWorld builds a World from a freshly loaded grid. Spawners are removed
// from the grid; trees stay and become leaf emitters.
func LoadWorld(grid *tilemap.Grid, settings *config.Settings, anims anim.Provider, rng *rand.Rand, level int) (*World, error) {
	players := grid.Extract(tilemap.Match(playerSpawner), false)
	if len(players) == 0 {
		return nil, ErrNoPlayerSpawn
	}
	spawn := players[len(players)-1].Pos

	w := &World{
		Level:      level,
		Grid:       grid,
		Spawn:      spawn,
		Combat:     NewCombatSystem(settings, anims),
		Effects:    NewEffectSystem(),
		Transition: -settings.Flow.TransitionFrames,
		settings:   settings,
		anims:      anims,
		rng:        rng,
		view:       geom.V(float64(settings.Display.ScreenWidth), float64(settings.Display.ScreenHeight)),
	}

	w.Player = entity.NewPlayer(anims, spawn, settings.PlayerTuning())
	w.Player.Gravity = settings.Physics.Gravity
	w.Player.MaxFallSpeed = settings.Physics.MaxFallSpeed

	for _, t := range grid.Extract(tilemap.Match(enemySpawner), false) {
		w.Combat.SpawnEnemy(t.Pos)
	}

	for _, t := range grid.Extract(tilemap.Match(leafTree), true) {
		w.Trees = append(w.Trees, geom.R(t.Pos.X+4, t.Pos.Y+4, 23, 13))
	}

	return w, nil
}
