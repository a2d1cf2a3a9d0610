package main

import (
	"flag"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/smashninja/internal/application/game"
	"github.com/younwookim/smashninja/internal/application/replay"
	"github.com/younwookim/smashninja/internal/application/scene/playing"
	"github.com/younwookim/smashninja/internal/infrastructure/assets"
	"github.com/younwookim/smashninja/internal/infrastructure/config"
	"github.com/younwookim/smashninja/internal/infrastructure/level"
)

func main() {
	configDir := flag.String("config", "", "Config directory (default: embedded configs)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Run a recorded session headless and report the outcome")
	watchFlag := flag.Bool("watch", false, "Reload the current level when its file changes (needs -config)")
	levelFlag := flag.Int("level", -1, "Start level (default: from game.toml)")
	seedFlag := flag.Int64("seed", 0, "Random seed (default: current time)")
	flag.Parse()

	fsys, err := configSource(*configDir)
	if err != nil {
		log.Fatalf("config source: %v", err)
	}
	cfg, err := config.NewFSLoader(fsys, *configDir).LoadAll()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := newLogger(cfg.Settings.Logging)
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if *levelFlag >= 0 {
		cfg.Settings.Levels.Start = *levelFlag
	}

	mapsFS, err := fs.Sub(fsys, cfg.Settings.Levels.Dir)
	if err != nil {
		logger.Fatal("levels directory", zap.Error(err))
	}
	levels := level.NewLoader(mapsFS, logger.Named("level"))
	logger.Info("config loaded",
		zap.String("source", sourceName(*configDir)),
		zap.Int("levels", levels.Count()),
		zap.Int("animations", len(cfg.Animations.Animations)),
	)

	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			logger.Fatal("load replay", zap.Error(err))
		}
		if _, err := runReplay(data, cfg, levels, logger); err != nil {
			logger.Fatal("replay failed", zap.Error(err))
		}
		return
	}

	art, err := assets.Load(fsys, cfg.Animations, logger.Named("assets"))
	if err != nil {
		logger.Fatal("load assets", zap.Error(err))
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := playing.Options{
		Settings:   cfg.Settings,
		Assets:     art,
		Levels:     levels,
		Log:        logger,
		Seed:       seed,
		RecordPath: *recordFlag,
	}

	if *watchFlag {
		if *configDir == "" {
			logger.Fatal("-watch needs -config pointing at a directory on disk")
		}
		watcher, err := level.NewWatcher(filepath.Join(*configDir, cfg.Settings.Levels.Dir))
		if err != nil {
			logger.Fatal("watch levels", zap.Error(err))
		}
		defer func() { _ = watcher.Close() }()
		go func() {
			for err := range watcher.Errors {
				logger.Warn("level watcher", zap.Error(err))
			}
		}()
		opts.LevelChanges = watcher.Events
		logger.Info("watching levels", zap.String("dir", cfg.Settings.Levels.Dir))
	}

	scene, err := playing.New(opts)
	if err != nil {
		logger.Fatal("start game", zap.Error(err))
	}

	display := cfg.Settings.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, logger)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game stopped", zap.Error(err))
	}
}

// configSource returns the directory on disk when given, the embedded
// configs otherwise
func configSource(dir string) (fs.FS, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
		return os.DirFS(dir), nil
	}
	return fs.Sub(configFS, "configs")
}

func sourceName(dir string) string {
	if dir == "" {
		return "embedded"
	}
	return dir
}
