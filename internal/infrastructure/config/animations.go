package config

import (
	"fmt"
	"sort"

	"github.com/younwookim/smashninja/internal/domain/anim"
	"github.com/younwookim/smashninja/internal/domain/tilemap"
)

// AnimationManifest describes every image the game draws. It is the root of
// animations.yaml.
type AnimationManifest struct {
	Root       string                   `yaml:"root"`
	Animations map[string]AnimationSpec `yaml:"animations"`
	Tiles      map[string]TileSetSpec   `yaml:"tiles"`
	Images     map[string]ImageSpec     `yaml:"images"`
}

// AnimationSpec is one numbered-frame directory played as an animation
type AnimationSpec struct {
	Dir      string `yaml:"dir"`
	Frames   int    `yaml:"frames"`
	Duration int    `yaml:"duration"`
	Loop     bool   `yaml:"loop"`

	// Placeholder used when the frames cannot be read
	Color  string `yaml:"color"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// TileSetSpec is one tile kind; each variant is a numbered image in Dir
type TileSetSpec struct {
	Dir      string `yaml:"dir"`
	Variants int    `yaml:"variants"`
	Color    string `yaml:"color"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
}

// ImageSpec is a single still image (background, projectile)
type ImageSpec struct {
	File   string `yaml:"file"`
	Color  string `yaml:"color"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// AnimationKeys parses the manifest keys, sorted for stable load order
func (m *AnimationManifest) AnimationKeys() ([]anim.Key, error) {
	keys := make([]anim.Key, 0, len(m.Animations))
	for name := range m.Animations {
		key, err := anim.ParseKey(name)
		if err != nil {
			return nil, fmt.Errorf("%w: animations: %v", ErrInvalid, err)
		}
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys, nil
}

// Animation returns the spec registered under key
func (m *AnimationManifest) Animation(key anim.Key) (AnimationSpec, bool) {
	spec, ok := m.Animations[key.String()]
	return spec, ok
}

// TileSet returns the tile set for kind
func (m *AnimationManifest) TileSet(kind tilemap.Kind) (TileSetSpec, bool) {
	spec, ok := m.Tiles[kind.String()]
	return spec, ok
}

// Validate checks names and counts
func (m *AnimationManifest) Validate() error {
	if _, err := m.AnimationKeys(); err != nil {
		return err
	}
	for name, spec := range m.Animations {
		if spec.Frames <= 0 {
			return fmt.Errorf("%w: animations.%s: frames must be positive", ErrInvalid, name)
		}
		if spec.Duration <= 0 {
			return fmt.Errorf("%w: animations.%s: duration must be positive", ErrInvalid, name)
		}
	}
	for name, spec := range m.Tiles {
		if _, err := tilemap.ParseKind(name); err != nil {
			return fmt.Errorf("%w: tiles: %v", ErrInvalid, err)
		}
		if spec.Variants <= 0 {
			return fmt.Errorf("%w: tiles.%s: variants must be positive", ErrInvalid, name)
		}
	}
	return nil
}
