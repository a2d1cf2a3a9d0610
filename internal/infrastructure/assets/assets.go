// Package assets turns the animation manifest into ebiten images and the
// animation library handed to entities.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"

	"github.com/younwookim/smashninja/internal/domain/anim"
	"github.com/younwookim/smashninja/internal/domain/tilemap"
	"github.com/younwookim/smashninja/internal/infrastructure/config"
)

// Assets holds every image the renderer needs
type Assets struct {
	Animations *anim.Library
	Tiles      map[tilemap.Kind][]*ebiten.Image
	Images     map[string]*ebiten.Image
}

// Tile returns the image for a tile variant, nil if unknown
func (a *Assets) Tile(kind tilemap.Kind, variant int) *ebiten.Image {
	imgs := a.Tiles[kind]
	if variant < 0 || variant >= len(imgs) {
		return nil
	}
	return imgs[variant]
}

// Image returns a still image by manifest name, nil if unknown
func (a *Assets) Image(name string) *ebiten.Image {
	return a.Images[name]
}

// Load reads every image named by the manifest from fsys. Missing or
// undecodable images are replaced by solid placeholders of the manifest
// colour so the game stays playable without art.
func Load(fsys fs.FS, m *config.AnimationManifest, log *zap.Logger) (*Assets, error) {
	if log == nil {
		log = zap.NewNop()
	}
	l := &loader{fsys: fsys, root: m.Root, log: log}

	keys, err := m.AnimationKeys()
	if err != nil {
		return nil, err
	}

	a := &Assets{
		Animations: anim.NewLibrary(),
		Tiles:      make(map[tilemap.Kind][]*ebiten.Image),
		Images:     make(map[string]*ebiten.Image),
	}

	for _, key := range keys {
		spec, _ := m.Animation(key)
		frames := l.frames(spec.Dir, spec.Frames, spec.Color, spec.Width, spec.Height)
		a.Animations.Register(key, anim.New(frames, spec.Duration, spec.Loop))
	}

	for name, spec := range m.Tiles {
		kind, err := tilemap.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("tiles: %w", err)
		}
		a.Tiles[kind] = l.frames(spec.Dir, spec.Variants, spec.Color, spec.Width, spec.Height)
	}

	for name, spec := range m.Images {
		img, err := l.image(spec.File)
		if err != nil {
			log.Warn("image missing, using placeholder",
				zap.String("image", name),
				zap.Error(err),
			)
			img = Placeholder(spec.Color, spec.Width, spec.Height)
		}
		a.Images[name] = img
	}

	log.Info("assets loaded",
		zap.Int("animations", len(keys)),
		zap.Int("tilesets", len(a.Tiles)),
		zap.Int("images", len(a.Images)),
	)
	return a, nil
}

// HeadlessLibrary builds a library with the manifest's frame counts and
// timings but no pixel data, for simulations that never draw
func HeadlessLibrary(m *config.AnimationManifest) (*anim.Library, error) {
	keys, err := m.AnimationKeys()
	if err != nil {
		return nil, err
	}
	lib := anim.NewLibrary()
	for _, key := range keys {
		spec, _ := m.Animation(key)
		lib.Register(key, anim.New(make([]*ebiten.Image, spec.Frames), spec.Duration, spec.Loop))
	}
	return lib, nil
}

// Placeholder returns a w×h image filled with the named colour.
// Unknown names fall back to magenta.
func Placeholder(name string, w, h int) *ebiten.Image {
	img := ebiten.NewImage(max(1, w), max(1, h))
	img.Fill(Color(name))
	return img
}

// Color resolves a colour name from the manifest
func Color(name string) color.Color {
	if c, ok := colornames.Map[strings.ToLower(name)]; ok {
		return c
	}
	return colornames.Magenta
}

type loader struct {
	fsys fs.FS
	root string
	log  *zap.Logger
}

// frames loads the first n png files of dir in name order, padding with
// placeholders when fewer are available
func (l *loader) frames(dir string, n int, colorName string, w, h int) []*ebiten.Image {
	full := path.Join(l.root, dir)
	var names []string
	entries, err := fs.ReadDir(l.fsys, full)
	if err == nil {
		for _, e := range entries {
			if !e.IsDir() && strings.EqualFold(path.Ext(e.Name()), ".png") {
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)
	}

	out := make([]*ebiten.Image, 0, n)
	for _, name := range names {
		if len(out) == n {
			break
		}
		img, err := l.image(path.Join(dir, name))
		if err != nil {
			l.log.Warn("frame unreadable", zap.String("dir", full), zap.String("file", name), zap.Error(err))
			continue
		}
		out = append(out, img)
	}

	if len(out) < n {
		l.log.Debug("using placeholder frames",
			zap.String("dir", full),
			zap.Int("found", len(out)),
			zap.Int("want", n),
		)
		ph := Placeholder(colorName, w, h)
		for len(out) < n {
			out = append(out, ph)
		}
	}
	return out
}

func (l *loader) image(file string) (*ebiten.Image, error) {
	if file == "" {
		return nil, fmt.Errorf("empty image path")
	}
	b, err := fs.ReadFile(l.fsys, path.Join(l.root, file))
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}
	return ebiten.NewImageFromImage(img), nil
}
