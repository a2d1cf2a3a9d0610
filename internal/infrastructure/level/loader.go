// Package level reads and writes level documents and watches the maps
// directory for edits.
package level

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/younwookim/smashninja/internal/domain/tilemap"
)

var (
	// ErrNotFound is returned when no document exists for a level name
	ErrNotFound = errors.New("level not found")
	// ErrMalformed is returned when a document cannot be decoded or built
	ErrMalformed = errors.New("malformed level")
)

// extensions in lookup order
var extensions = []string{".json", ".yaml", ".yml"}

// Loader loads level documents from a maps directory
type Loader struct {
	fsys fs.FS
	log  *zap.Logger
}

// NewLoader creates a loader reading from fsys, whose root is the maps
// directory
func NewLoader(fsys fs.FS, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{fsys: fsys, log: log}
}

// Load builds the grid for the named level, trying each known extension
func (l *Loader) Load(name string) (*tilemap.Grid, error) {
	for _, ext := range extensions {
		data, err := fs.ReadFile(l.fsys, name+ext)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read level %s: %w", name, err)
		}
		g, err := Decode(ext, data)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", name+ext, err)
		}
		l.log.Debug("level loaded",
			zap.String("name", name+ext),
			zap.Int("tiles", g.Len()),
		)
		return g, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// LoadIndex loads the level numbered n
func (l *Loader) LoadIndex(n int) (*tilemap.Grid, error) {
	return l.Load(strconv.Itoa(n))
}

// Count returns how many numbered levels exist. Numbering is contiguous from
// zero; a gap ends the count.
func (l *Loader) Count() int {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return 0
	}
	present := make(map[int]bool)
	for _, e := range entries {
		if e.IsDir() || !IsLevelFile(e.Name()) {
			continue
		}
		base := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if n, err := strconv.Atoi(base); err == nil && n >= 0 {
			present[n] = true
		}
	}
	n := 0
	for present[n] {
		n++
	}
	return n
}

// Names returns the level names (file names without extension), sorted
func (l *Loader) Names() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}
	var names []string
	seen := make(map[string]bool)
	for _, e := range entries {
		if e.IsDir() || !IsLevelFile(e.Name()) {
			continue
		}
		base := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if !seen[base] {
			seen[base] = true
			names = append(names, base)
		}
	}
	sort.Strings(names)
	return names, nil
}

// LoadFile loads a level document from a path on disk
func LoadFile(path string) (*tilemap.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	g, err := Decode(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return g, nil
}

// Save writes the grid to path, as YAML for .yaml/.yml and indented JSON
// otherwise
func Save(path string, g *tilemap.Grid) error {
	data, err := Encode(filepath.Ext(path), g)
	if err != nil {
		return fmt.Errorf("encode level %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write level %s: %w", path, err)
	}
	return nil
}

// Decode parses a level document in the format named by ext
func Decode(ext string, data []byte) (*tilemap.Grid, error) {
	var doc tilemap.Document
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}
	g, err := tilemap.FromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return g, nil
}

// Encode serializes the grid in the format named by ext
func Encode(ext string, g *tilemap.Grid) ([]byte, error) {
	doc := g.Document()
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Marshal(doc)
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}

// IsLevelFile reports whether path has a level document extension
func IsLevelFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
