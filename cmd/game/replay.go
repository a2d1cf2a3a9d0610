package main

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/younwookim/smashninja/internal/application/replay"
	"github.com/younwookim/smashninja/internal/application/system"
	"github.com/younwookim/smashninja/internal/domain/entity"
	"github.com/younwookim/smashninja/internal/domain/geom"
	"github.com/younwookim/smashninja/internal/infrastructure/assets"
	"github.com/younwookim/smashninja/internal/infrastructure/config"
)

// ReplayResult summarizes a headless replay run
type ReplayResult struct {
	Frames    int
	Level     int
	Deaths    int
	Kills     int
	Cleared   int
	Alive     bool
	PlayerPos geom.Vec
}

// runReplay feeds recorded input through the simulation without a window.
// Animation timing comes from the manifest alone, so particle lifetimes and
// therefore the random stream match the recorded session.
func runReplay(data *replay.ReplayData, cfg *config.GameConfig, levels system.LevelSource, log *zap.Logger) (ReplayResult, error) {
	lib, err := assets.HeadlessLibrary(cfg.Animations)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("replay: %w", err)
	}

	rng := rand.New(rand.NewSource(data.Seed))
	campaign, err := system.NewCampaign(levels, cfg.Settings, lib, rng, log, data.Level)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("replay: %w", err)
	}

	var res ReplayResult
	replayer := replay.NewReplayer(*data)
	for {
		in, ok := replayer.GetInput()
		if !ok {
			break
		}
		events, err := campaign.Step(in)
		if err != nil {
			return res, fmt.Errorf("replay frame %d: %w", replayer.CurrentFrame()-1, err)
		}
		for _, ev := range events {
			switch ev.(type) {
			case entity.DiedEvent:
				res.Deaths++
			case entity.EnemyKilledEvent:
				res.Kills++
			case entity.LevelClearedEvent:
				res.Cleared++
			}
		}
	}

	world := campaign.World
	res.Frames = replayer.TotalFrames()
	res.Level = campaign.Level()
	res.Alive = world.Alive()
	res.PlayerPos = world.Player.Pos

	log.Info("replay finished",
		zap.Int("frames", res.Frames),
		zap.Int64("seed", data.Seed),
		zap.Int("level", res.Level),
		zap.Int("deaths", res.Deaths),
		zap.Int("kills", res.Kills),
		zap.Int("cleared", res.Cleared),
		zap.Bool("alive", res.Alive),
		zap.Float64("x", res.PlayerPos.X),
		zap.Float64("y", res.PlayerPos.Y),
	)
	return res, nil
}
