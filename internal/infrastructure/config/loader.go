package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	SettingsFile   = "game.toml"
	AnimationsFile = "animations.yaml"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Settings   *Settings
	Animations *AnimationManifest
}

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the filesystem the loader reads from
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadSettings loads game.toml over the defaults. A missing file yields the
// defaults unchanged.
func (l *Loader) LoadSettings() (*Settings, error) {
	cfg := Defaults()

	data, err := fs.ReadFile(l.fsys, SettingsFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("read config %s: %w", SettingsFile, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", SettingsFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", SettingsFile, err)
	}

	return cfg, nil
}

// LoadAnimations loads animations.yaml
func (l *Loader) LoadAnimations() (*AnimationManifest, error) {
	data, err := fs.ReadFile(l.fsys, AnimationsFile)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", AnimationsFile, err)
	}

	var m AnimationManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", AnimationsFile, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", AnimationsFile, err)
	}

	return &m, nil
}

// LoadAll loads all base configurations (settings, animations)
func (l *Loader) LoadAll() (*GameConfig, error) {
	settings, err := l.LoadSettings()
	if err != nil {
		return nil, err
	}

	animations, err := l.LoadAnimations()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Settings:   settings,
		Animations: animations,
	}, nil
}
