// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"math/rand"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/younwookim/smashninja/internal/application/scene"
	"github.com/younwookim/smashninja/internal/application/state"
	"github.com/younwookim/smashninja/internal/application/system"
	"github.com/younwookim/smashninja/internal/domain/entity"
	"github.com/younwookim/smashninja/internal/infrastructure/assets"
	"github.com/younwookim/smashninja/internal/infrastructure/config"
)

// Options configures a Playing scene
type Options struct {
	Settings *config.Settings
	Assets   *assets.Assets
	Levels   system.LevelSource
	Log      *zap.Logger
	Seed     int64
	Bindings system.KeyBindings

	// RecordPath enables input recording when not empty
	RecordPath string
	// LevelChanges carries names of edited level files; the current level
	// is reloaded when its name arrives
	LevelChanges <-chan string
}

// Playing is the main gameplay scene
type Playing struct {
	settings *config.Settings
	assets   *assets.Assets
	campaign *system.Campaign
	input    *system.InputSystem
	log      *zap.Logger
	paused   bool
	seed     int64

	// fx is for cosmetic draws; the simulation has its own stream
	fx *rand.Rand

	// offscreen surfaces, created on first Draw
	layer *ebiten.Image
	frame *ebiten.Image
	mask  *ebiten.Image
	white *ebiten.Image

	changes <-chan string

	recorder   *Recorder
	recordPath string
}

// New creates a new Playing scene on the configured start level
func New(opts Options) (*Playing, error) {
	if opts.Settings == nil || opts.Assets == nil || opts.Levels == nil {
		return nil, errors.New("playing: settings, assets and levels are required")
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	bindings := opts.Bindings
	if len(bindings.Left) == 0 {
		bindings = system.DefaultBindings()
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	campaign, err := system.NewCampaign(opts.Levels, opts.Settings, opts.Assets.Animations, rng, log, opts.Settings.Levels.Start)
	if err != nil {
		return nil, err
	}

	p := &Playing{
		settings:   opts.Settings,
		assets:     opts.Assets,
		campaign:   campaign,
		input:      system.NewInputSystem(bindings),
		log:        log,
		seed:       opts.Seed,
		fx:         rand.New(rand.NewSource(opts.Seed ^ 0x5eed)),
		changes:    opts.LevelChanges,
		recordPath: opts.RecordPath,
	}

	if opts.RecordPath != "" {
		p.recorder = NewRecorder(opts.Seed, campaign.Level())
		log.Info("recording enabled", zap.String("path", opts.RecordPath), zap.Int64("seed", opts.Seed))
	}

	return p, nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	in := p.input.Read()
	if in.Quit {
		return nil, ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		p.paused = !p.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}
	if p.paused {
		return nil, nil
	}

	if err := p.pollLevelChanges(); err != nil {
		return nil, err
	}

	return nil, p.step(in)
}

// step records the input and advances the campaign one tick
func (p *Playing) step(in system.InputState) error {
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	events, err := p.campaign.Step(in)
	if err != nil {
		return err
	}
	for _, ev := range events {
		if _, ok := ev.(entity.DiedEvent); ok && p.recorder != nil {
			p.saveRecording()
		}
	}
	return nil
}

// pollLevelChanges reloads the current level if its file was edited
func (p *Playing) pollLevelChanges() error {
	for p.changes != nil {
		select {
		case name, ok := <-p.changes:
			if !ok {
				p.changes = nil
				return nil
			}
			if name != strconv.Itoa(p.campaign.Level()) {
				continue
			}
			if err := p.campaign.Reload(); err != nil {
				// keep the running level when the file is half-written
				p.log.Warn("level reload failed", zap.String("name", name), zap.Error(err))
				continue
			}
			p.log.Info("level reloaded", zap.String("name", name))
		default:
			return nil
		}
	}
	return nil
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordPath
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.Warn("failed to save recording", zap.Error(err))
		return
	}
	p.log.Info("recording saved", zap.String("path", filename), zap.Int("frames", p.recorder.FrameCount()))
}

// World returns the level currently being played
func (p *Playing) World() *system.World {
	return p.campaign.World
}

// State returns the flow state shown by the HUD
func (p *Playing) State() state.GameState {
	if p.paused {
		return state.StatePaused
	}
	return p.campaign.World.Phase()
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.log.Debug("playing scene entered", zap.Int("level", p.campaign.Level()))
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

func (p *Playing) String() string {
	return "playing"
}
