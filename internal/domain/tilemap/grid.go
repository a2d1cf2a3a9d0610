// Package tilemap holds the tile grid: the level's spatial model, its
// collision queries and its level-document form.
package tilemap

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/younwookim/smashninja/internal/domain/geom"
)

// Tile represents a single placed tile.
// Pos is in cell units for grid tiles and in pixels for off-grid tiles
// and for tiles returned by Extract.
type Tile struct {
	Kind    Kind
	Variant int
	Pos     geom.Vec
}

// Cell is a grid cell coordinate
type Cell struct {
	X, Y int
}

// Key renders the cell as the "x;y" level-document key
func (c Cell) Key() string {
	return strconv.Itoa(c.X) + ";" + strconv.Itoa(c.Y)
}

// ParseCell parses an "x;y" key
func ParseCell(key string) (Cell, error) {
	xs, ys, ok := strings.Cut(key, ";")
	if !ok {
		return Cell{}, fmt.Errorf("invalid cell key %q", key)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Cell{}, fmt.Errorf("invalid cell key %q: %w", key, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Cell{}, fmt.Errorf("invalid cell key %q: %w", key, err)
	}
	return Cell{X: x, Y: y}, nil
}

// VariantKey identifies a (kind, variant) pair
type VariantKey struct {
	Kind    Kind
	Variant int
}

// Filter is the set of (kind, variant) pairs matched by Extract
type Filter map[VariantKey]struct{}

// Match builds a Filter from pairs
func Match(pairs ...VariantKey) Filter {
	f := make(Filter, len(pairs))
	for _, p := range pairs {
		f[p] = struct{}{}
	}
	return f
}

func (f Filter) has(t Tile) bool {
	_, ok := f[VariantKey{Kind: t.Kind, Variant: t.Variant}]
	return ok
}

// neighborOffsets is the 3x3 neighbourhood scanned by collision queries
var neighborOffsets = [9]Cell{
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}, {0, 0}, {-1, 1}, {0, 1}, {1, 1},
}

// Grid is the level's tile map
type Grid struct {
	tileSize int
	tiles    map[Cell]Tile
	offgrid  []Tile
	solid    map[Kind]bool
}

// New creates an empty grid using the default solid kinds
func New(tileSize int) *Grid {
	g := &Grid{
		tileSize: tileSize,
		tiles:    make(map[Cell]Tile),
		solid:    make(map[Kind]bool),
	}
	g.SetSolidKinds(DefaultSolidKinds()...)
	return g
}

// TileSize returns the edge length of a cell in pixels
func (g *Grid) TileSize() int {
	return g.tileSize
}

// SetSolidKinds replaces the collidable kind set
func (g *Grid) SetSolidKinds(kinds ...Kind) {
	g.solid = make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		g.solid[k] = true
	}
}

// SolidKinds returns the collidable kinds in declaration order
func (g *Grid) SolidKinds() []Kind {
	var kinds []Kind
	for _, k := range Kinds() {
		if g.solid[k] {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// IsSolidKind reports whether tiles of kind k collide
func (g *Grid) IsSolidKind(k Kind) bool {
	return g.solid[k]
}

// Place puts a tile on the grid at the cell given by its Pos, replacing
// any tile already there.
func (g *Grid) Place(t Tile) {
	c := Cell{X: int(math.Floor(t.Pos.X)), Y: int(math.Floor(t.Pos.Y))}
	t.Pos = geom.V(float64(c.X), float64(c.Y))
	g.tiles[c] = t
}

// PlaceOffgrid adds a free-placed tile at a pixel position
func (g *Grid) PlaceOffgrid(t Tile) {
	g.offgrid = append(g.offgrid, t)
}

// TileAt returns the grid tile in cell c
func (g *Grid) TileAt(c Cell) (Tile, bool) {
	t, ok := g.tiles[c]
	return t, ok
}

// Len returns the number of grid and off-grid tiles
func (g *Grid) Len() int {
	return len(g.tiles) + len(g.offgrid)
}

// CellAt returns the cell containing the pixel position
func (g *Grid) CellAt(p geom.Vec) Cell {
	ts := float64(g.tileSize)
	return Cell{X: int(math.Floor(p.X / ts)), Y: int(math.Floor(p.Y / ts))}
}

// cellRect returns the pixel rectangle covered by cell c
func (g *Grid) cellRect(c Cell) geom.Rect {
	ts := float64(g.tileSize)
	return geom.R(float64(c.X)*ts, float64(c.Y)*ts, ts, ts)
}

// SolidRectsNear returns the rectangles of solid tiles in the 3x3 cell
// neighbourhood of the cell containing p. Callers must not move more than
// one tile per step for this to find every obstacle.
func (g *Grid) SolidRectsNear(p geom.Vec) []geom.Rect {
	center := g.CellAt(p)
	rects := make([]geom.Rect, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		c := Cell{X: center.X + off.X, Y: center.Y + off.Y}
		if t, ok := g.tiles[c]; ok && g.solid[t.Kind] {
			rects = append(rects, g.cellRect(c))
		}
	}
	return rects
}

// IsSolidAt reports whether the cell containing p holds a solid tile.
// Positions outside the map are never solid.
func (g *Grid) IsSolidAt(p geom.Vec) bool {
	t, ok := g.tiles[g.CellAt(p)]
	return ok && g.solid[t.Kind]
}

// Extract collects every tile matching filter, converting grid positions to
// pixels. Matches are removed from the grid unless keep is true.
func (g *Grid) Extract(filter Filter, keep bool) []Tile {
	var matches []Tile

	kept := g.offgrid[:0]
	for _, t := range g.offgrid {
		if filter.has(t) {
			matches = append(matches, t)
			if !keep {
				continue
			}
		}
		kept = append(kept, t)
	}
	g.offgrid = kept

	ts := float64(g.tileSize)
	for _, c := range g.sortedCells() {
		t := g.tiles[c]
		if !filter.has(t) {
			continue
		}
		m := t
		m.Pos = geom.V(float64(c.X)*ts, float64(c.Y)*ts)
		matches = append(matches, m)
		if !keep {
			delete(g.tiles, c)
		}
	}

	return matches
}

// Visible calls fn for every tile that may appear in a viewport of the
// given size at camera offset cam: all off-grid tiles, then grid tiles whose
// cell lies within the viewport plus one cell of slack. fn receives the
// tile's pixel position.
func (g *Grid) Visible(cam geom.Vec, viewW, viewH int, fn func(t Tile, pixel geom.Vec)) {
	for _, t := range g.offgrid {
		fn(t, t.Pos)
	}

	ts := float64(g.tileSize)
	start := g.CellAt(cam)
	end := g.CellAt(geom.V(cam.X+float64(viewW), cam.Y+float64(viewH)))
	for x := start.X; x <= end.X; x++ {
		for y := start.Y; y <= end.Y; y++ {
			t, ok := g.tiles[Cell{X: x, Y: y}]
			if !ok {
				continue
			}
			fn(t, geom.V(float64(x)*ts, float64(y)*ts))
		}
	}
}

// GridTiles returns the grid tiles ordered by cell (row-major)
func (g *Grid) GridTiles() []Tile {
	cells := g.sortedCells()
	tiles := make([]Tile, len(cells))
	for i, c := range cells {
		tiles[i] = g.tiles[c]
	}
	return tiles
}

// OffgridTiles returns a copy of the off-grid tile list
func (g *Grid) OffgridTiles() []Tile {
	return append([]Tile(nil), g.offgrid...)
}

// sortedCells returns occupied cells in row-major order so that scans are
// deterministic
func (g *Grid) sortedCells() []Cell {
	cells := make([]Cell, 0, len(g.tiles))
	for c := range g.tiles {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}
