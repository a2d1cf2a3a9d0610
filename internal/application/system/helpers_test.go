package system

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/smashninja/internal/domain/anim"
	"github.com/younwookim/smashninja/internal/domain/entity"
	"github.com/younwookim/smashninja/internal/domain/geom"
	"github.com/younwookim/smashninja/internal/domain/tilemap"
	"github.com/younwookim/smashninja/internal/infrastructure/config"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func createTestProvider() *anim.Library {
	lib := anim.NewLibrary()
	for _, e := range []anim.EntityKind{anim.EntityPlayer, anim.EntityEnemy} {
		for _, a := range []anim.Action{anim.ActionIdle, anim.ActionRun, anim.ActionJump, anim.ActionSlide, anim.ActionWallSlide} {
			lib.Register(anim.Key{Entity: e, Action: a}, anim.New(make([]*ebiten.Image, 4), 4, true))
		}
	}
	lib.Register(anim.Key{Entity: anim.EntityParticle, Action: anim.ActionDust}, anim.New(make([]*ebiten.Image, 4), 2, false))
	lib.Register(anim.Key{Entity: anim.EntityParticle, Action: anim.ActionLeaf}, anim.New(make([]*ebiten.Image, 18), 20, false))
	return lib
}

// floorY is the top-left Y of a 15px tall body standing on row 6
const floorY = 96 - 15

// createTestGrid returns a 16px level: stone floor on row 6 over columns
// 0..29, the player spawner at cell (2,5), an enemy spawner at cell (20,5)
// and one leaf tree
func createTestGrid() *tilemap.Grid {
	g := tilemap.New(16)
	for x := 0; x < 30; x++ {
		g.Place(tilemap.Tile{Kind: tilemap.KindStone, Pos: geom.V(float64(x), 6)})
	}
	g.Place(tilemap.Tile{Kind: tilemap.KindSpawner, Variant: 0, Pos: geom.V(2, 5)})
	g.Place(tilemap.Tile{Kind: tilemap.KindSpawner, Variant: 1, Pos: geom.V(20, 5)})
	g.PlaceOffgrid(tilemap.Tile{Kind: tilemap.KindLargeDecor, Variant: 2, Pos: geom.V(200, 40)})
	return g
}

func createTestWorld() *World {
	w, err := LoadWorld(createTestGrid(), config.Defaults(), createTestProvider(), testRNG(), 0)
	if err != nil {
		panic(err)
	}
	return w
}

func countEvents[T entity.Event](events []entity.Event) int {
	n := 0
	for _, ev := range events {
		if _, ok := ev.(T); ok {
			n++
		}
	}
	return n
}
