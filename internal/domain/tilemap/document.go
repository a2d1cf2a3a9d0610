package tilemap

import (
	"errors"
	"fmt"

	"github.com/younwookim/smashninja/internal/domain/geom"
)

// Document is the serialized form of a Grid (the level file)
type Document struct {
	TileSize int                `json:"tile_size" yaml:"tile_size"`
	Tilemap  map[string]TileDoc `json:"tilemap" yaml:"tilemap"`
	Offgrid  []TileDoc          `json:"offgrid" yaml:"offgrid"`
	Solid    []string           `json:"solid" yaml:"solid"`
}

// TileDoc is a single tile descriptor in a Document.
// Pos is [x, y] in cells for tilemap entries and in pixels for offgrid entries.
type TileDoc struct {
	Type    string     `json:"type" yaml:"type"`
	Variant int        `json:"variant" yaml:"variant"`
	Pos     [2]float64 `json:"pos" yaml:"pos,flow"`
}

// ErrInvalidDocument is wrapped by every FromDocument failure
var ErrInvalidDocument = errors.New("invalid level document")

// FromDocument builds a Grid from a level document
func FromDocument(doc Document) (*Grid, error) {
	if doc.TileSize <= 0 {
		return nil, fmt.Errorf("%w: tile_size must be positive, got %d", ErrInvalidDocument, doc.TileSize)
	}

	g := New(doc.TileSize)

	if doc.Solid != nil {
		kinds := make([]Kind, 0, len(doc.Solid))
		for _, name := range doc.Solid {
			k, err := ParseKind(name)
			if err != nil {
				return nil, fmt.Errorf("%w: solid: %v", ErrInvalidDocument, err)
			}
			kinds = append(kinds, k)
		}
		g.SetSolidKinds(kinds...)
	}

	for key, td := range doc.Tilemap {
		cell, err := ParseCell(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		t, err := td.tile()
		if err != nil {
			return nil, fmt.Errorf("%w: tilemap[%s]: %v", ErrInvalidDocument, key, err)
		}
		if t.Pos != geom.V(float64(cell.X), float64(cell.Y)) {
			return nil, fmt.Errorf("%w: tilemap[%s]: pos %v does not match key", ErrInvalidDocument, key, td.Pos)
		}
		g.Place(t)
	}

	for i, td := range doc.Offgrid {
		t, err := td.tile()
		if err != nil {
			return nil, fmt.Errorf("%w: offgrid[%d]: %v", ErrInvalidDocument, i, err)
		}
		g.PlaceOffgrid(t)
	}

	return g, nil
}

// Document converts the grid into its serialized form
func (g *Grid) Document() Document {
	doc := Document{
		TileSize: g.tileSize,
		Tilemap:  make(map[string]TileDoc, len(g.tiles)),
		Offgrid:  make([]TileDoc, 0, len(g.offgrid)),
		Solid:    []string{},
	}
	for c, t := range g.tiles {
		doc.Tilemap[c.Key()] = docOf(t)
	}
	for _, t := range g.offgrid {
		doc.Offgrid = append(doc.Offgrid, docOf(t))
	}
	for _, k := range g.SolidKinds() {
		doc.Solid = append(doc.Solid, k.String())
	}
	return doc
}

func (td TileDoc) tile() (Tile, error) {
	k, err := ParseKind(td.Type)
	if err != nil {
		return Tile{}, err
	}
	return Tile{Kind: k, Variant: td.Variant, Pos: geom.V(td.Pos[0], td.Pos[1])}, nil
}

func docOf(t Tile) TileDoc {
	return TileDoc{Type: t.Kind.String(), Variant: t.Variant, Pos: [2]float64{t.Pos.X, t.Pos.Y}}
}
