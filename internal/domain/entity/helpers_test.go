package entity

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/smashninja/internal/domain/anim"
	"github.com/younwookim/smashninja/internal/domain/geom"
	"github.com/younwookim/smashninja/internal/domain/tilemap"
)

func createTestProvider() *anim.Library {
	lib := anim.NewLibrary()
	for _, e := range []anim.EntityKind{anim.EntityPlayer, anim.EntityEnemy} {
		for _, a := range []anim.Action{anim.ActionIdle, anim.ActionRun, anim.ActionJump, anim.ActionSlide, anim.ActionWallSlide} {
			lib.Register(anim.Key{Entity: e, Action: a}, anim.New(make([]*ebiten.Image, 4), 2, true))
		}
	}
	lib.Register(anim.Key{Entity: anim.EntityParticle, Action: anim.ActionDust}, anim.New(make([]*ebiten.Image, 4), 6, false))
	return lib
}

// createFloorGrid returns a 16px grid with a stone floor on row 6
// (pixels 96..112) spanning columns from..to inclusive
func createFloorGrid(from, to int) *tilemap.Grid {
	g := tilemap.New(16)
	for x := from; x <= to; x++ {
		g.Place(tilemap.Tile{Kind: tilemap.KindStone, Pos: geom.V(float64(x), 6)})
	}
	return g
}

// addWall stacks stone tiles in column x over rows from..to inclusive
func addWall(g *tilemap.Grid, x, from, to int) {
	for y := from; y <= to; y++ {
		g.Place(tilemap.Tile{Kind: tilemap.KindStone, Pos: geom.V(float64(x), float64(y))})
	}
}

// floorY is the top-left Y of a 15px tall body standing on row 6
const floorY = 96 - 15

func countEvents[T Event](events []Event) int {
	n := 0
	for _, ev := range events {
		if _, ok := ev.(T); ok {
			n++
		}
	}
	return n
}

func firstEvent[T Event](events []Event) (T, bool) {
	for _, ev := range events {
		if e, ok := ev.(T); ok {
			return e, true
		}
	}
	var zero T
	return zero, false
}
