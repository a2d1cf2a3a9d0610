package system

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/younwookim/smashninja/internal/domain/anim"
	"github.com/younwookim/smashninja/internal/domain/entity"
	"github.com/younwookim/smashninja/internal/domain/tilemap"
	"github.com/younwookim/smashninja/internal/infrastructure/config"
)

// LevelSource provides numbered level grids. Every call returns a fresh
// grid.
type LevelSource interface {
	LoadIndex(n int) (*tilemap.Grid, error)
	Count() int
}

// Campaign drives the level sequence: it owns the current World and swaps
// it when the world asks for the next level or a restart
type Campaign struct {
	World *World

	levels   LevelSource
	settings *config.Settings
	anims    anim.Provider
	rng      *rand.Rand
	log      *zap.Logger
}

// NewCampaign loads level start
func NewCampaign(levels LevelSource, settings *config.Settings, anims anim.Provider, rng *rand.Rand, log *zap.Logger, start int) (*Campaign, error) {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Campaign{
		levels:   levels,
		settings: settings,
		anims:    anims,
		rng:      rng,
		log:      log,
	}
	if err := c.Load(start); err != nil {
		return nil, err
	}
	return c, nil
}

// Level returns the current level number
func (c *Campaign) Level() int {
	return c.World.Level
}

// Load replaces the world with level n, clamped to the available levels
func (c *Campaign) Load(n int) error {
	count := c.levels.Count()
	if count == 0 {
		return fmt.Errorf("load level %d: no levels available", n)
	}
	n = max(0, min(n, count-1))

	grid, err := c.levels.LoadIndex(n)
	if err != nil {
		return fmt.Errorf("load level %d: %w", n, err)
	}
	w, err := LoadWorld(grid, c.settings, c.anims, c.rng, n)
	if err != nil {
		return fmt.Errorf("load level %d: %w", n, err)
	}
	c.World = w

	c.log.Info("level started",
		zap.Int("level", n),
		zap.Int("enemies", len(w.Combat.Enemies())),
		zap.Int("trees", len(w.Trees)),
	)
	return nil
}

// Reload restarts the current level from disk
func (c *Campaign) Reload() error {
	return c.Load(c.Level())
}

// Step advances the current world one tick and follows its level requests.
// The returned events include the flow events that caused a load.
func (c *Campaign) Step(in InputState) ([]entity.Event, error) {
	events := c.World.Step(in)

	for _, ev := range events {
		switch e := ev.(type) {
		case entity.DiedEvent:
			c.log.Info("player died",
				zap.Int("level", c.Level()),
				zap.Stringer("cause", e.Cause),
				zap.Int("tick", c.World.Tick),
			)
		case entity.EnemyKilledEvent:
			c.log.Debug("enemy killed",
				zap.Float64("x", e.Pos.X),
				zap.Float64("y", e.Pos.Y),
				zap.Int("remaining", e.Remaining),
			)
		case entity.PlaySoundEvent:
			c.log.Debug("sound", zap.Stringer("cue", e.Sound))
		case entity.LevelClearedEvent:
			c.log.Info("level cleared", zap.Int("level", e.Level), zap.Int("tick", c.World.Tick))
			if err := c.Load(e.Level + 1); err != nil {
				return events, err
			}
			return events, nil
		case entity.RestartLevelEvent:
			if err := c.Load(e.Level); err != nil {
				return events, err
			}
			return events, nil
		}
	}
	return events, nil
}
