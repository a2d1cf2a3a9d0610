package playing

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/younwookim/smashninja/internal/application/state"
	"github.com/younwookim/smashninja/internal/domain/entity"
	"github.com/younwookim/smashninja/internal/domain/geom"
	"github.com/younwookim/smashninja/internal/domain/tilemap"
)

// outlineOffsets are where the dark silhouette of the world layer is stamped
// behind it
var outlineOffsets = []geom.Vec{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}}

const (
	silhouetteAlpha = 180.0 / 255.0
	circleSegments  = 48
)

var (
	colorSky   = colornames.Midnightblue
	colorSpark = colornames.White
)

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	w, h := p.settings.Display.ScreenWidth, p.settings.Display.ScreenHeight
	p.ensureSurfaces(w, h)

	world := p.campaign.World
	cam := world.Camera()

	p.layer.Clear()
	p.drawTiles(p.layer, cam, w, h)
	p.drawEnemies(p.layer, cam)
	if world.Alive() {
		p.drawPlayer(p.layer, cam)
	}
	p.drawProjectiles(p.layer, cam)
	p.drawSparks(p.layer, cam)

	// Background and outline go underneath before particles join the layer,
	// so falling leaves get no outline
	p.frame.Clear()
	p.drawBackground(p.frame)
	for _, off := range outlineOffsets {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(off.X, off.Y)
		op.ColorScale.Scale(0, 0, 0, silhouetteAlpha)
		p.frame.DrawImage(p.layer, op)
	}

	p.drawParticles(p.layer, cam)
	if world.Transition != 0 {
		p.drawTransition(p.layer, world.Transition, w, h)
	}
	p.frame.DrawImage(p.layer, nil)

	op := &ebiten.DrawImageOptions{}
	if shake := world.ScreenShake; shake > 0 {
		op.GeoM.Translate(p.fx.Float64()*shake-shake/2, p.fx.Float64()*shake-shake/2)
	}
	screen.Fill(color.Black)
	screen.DrawImage(p.frame, op)

	p.drawHUD(screen)
}

func (p *Playing) ensureSurfaces(w, h int) {
	if p.layer == nil || p.layer.Bounds().Dx() != w || p.layer.Bounds().Dy() != h {
		p.layer = ebiten.NewImage(w, h)
		p.frame = ebiten.NewImage(w, h)
		p.mask = ebiten.NewImage(w, h)
	}
	if p.white == nil {
		// centre texel of a 3x3 image
		base := ebiten.NewImage(3, 3)
		base.Fill(color.White)
		p.white = base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
}

func (p *Playing) drawBackground(dst *ebiten.Image) {
	bg := p.assets.Image("background")
	if bg == nil {
		dst.Fill(colorSky)
		return
	}
	op := &ebiten.DrawImageOptions{}
	bw, bh := bg.Bounds().Dx(), bg.Bounds().Dy()
	op.GeoM.Scale(float64(dst.Bounds().Dx())/float64(bw), float64(dst.Bounds().Dy())/float64(bh))
	dst.DrawImage(bg, op)
}

func (p *Playing) drawTiles(dst *ebiten.Image, cam geom.Vec, w, h int) {
	p.campaign.World.Grid.Visible(cam, w, h, func(t tilemap.Tile, pixel geom.Vec) {
		img := p.assets.Tile(t.Kind, t.Variant)
		if img == nil {
			return
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(pixel.X-cam.X, pixel.Y-cam.Y)
		dst.DrawImage(img, op)
	})
}

// drawBody draws the current animation frame at pos - camera + AnimOffset,
// mirrored when the body faces left
func drawBody(dst *ebiten.Image, b *entity.Body, cam geom.Vec) {
	if b.Animation == nil {
		return
	}
	img := b.Animation.Image()
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if b.Flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(img.Bounds().Dx()), 0)
	}
	op.GeoM.Translate(b.Pos.X-cam.X+b.AnimOffset.X, b.Pos.Y-cam.Y+b.AnimOffset.Y)
	dst.DrawImage(img, op)
}

func (p *Playing) drawPlayer(dst *ebiten.Image, cam geom.Vec) {
	player := p.campaign.World.Player
	// Hidden during the dash burst; the dash trail stands in for the sprite
	if player.Invulnerable() {
		return
	}
	drawBody(dst, &player.Body, cam)
}

func (p *Playing) drawEnemies(dst *ebiten.Image, cam geom.Vec) {
	gun := p.assets.Image("gun")
	for _, e := range p.campaign.World.Combat.Enemies() {
		drawBody(dst, &e.Body, cam)
		if gun == nil {
			continue
		}

		c := e.Center()
		op := &ebiten.DrawImageOptions{}
		gw := float64(gun.Bounds().Dx())
		if e.Flip {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(gw, 0)
			op.GeoM.Translate(c.X-4-gw-cam.X, c.Y-cam.Y)
		} else {
			op.GeoM.Translate(c.X+4-cam.X, c.Y-cam.Y)
		}
		dst.DrawImage(gun, op)
	}
}

func (p *Playing) drawProjectiles(dst *ebiten.Image, cam geom.Vec) {
	img := p.assets.Image("projectile")
	for _, pr := range p.campaign.World.Combat.Projectiles() {
		if img == nil {
			vector.FillRect(dst, float32(pr.Pos.X-cam.X-2), float32(pr.Pos.Y-cam.Y-1), 4, 2, colornames.Orange, false)
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(
			pr.Pos.X-float64(img.Bounds().Dx())/2-cam.X,
			pr.Pos.Y-float64(img.Bounds().Dy())/2-cam.Y,
		)
		dst.DrawImage(img, op)
	}
}

func (p *Playing) drawSparks(dst *ebiten.Image, cam geom.Vec) {
	sparks := p.campaign.World.Effects.Sparks()
	if len(sparks) == 0 {
		return
	}

	r, g, b, a := colorSpark.RGBA()
	vertices := make([]ebiten.Vertex, 0, len(sparks)*4)
	indices := make([]uint16, 0, len(sparks)*6)
	for i := range sparks {
		base := uint16(len(vertices))
		for _, pt := range sparks[i].Polygon() {
			vertices = append(vertices, ebiten.Vertex{
				DstX:   float32(pt.X - cam.X),
				DstY:   float32(pt.Y - cam.Y),
				SrcX:   1.5,
				SrcY:   1.5,
				ColorR: float32(r) / 0xffff,
				ColorG: float32(g) / 0xffff,
				ColorB: float32(b) / 0xffff,
				ColorA: float32(a) / 0xffff,
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	dst.DrawTriangles(vertices, indices, p.white, &ebiten.DrawTrianglesOptions{})
}

func (p *Playing) drawParticles(dst *ebiten.Image, cam geom.Vec) {
	for _, pt := range p.campaign.World.Effects.Particles() {
		img := pt.Animation.Image()
		if img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(
			pt.Pos.X-float64(img.Bounds().Dx())/2-cam.X,
			pt.Pos.Y-float64(img.Bounds().Dy())/2-cam.Y,
		)
		dst.DrawImage(img, op)
	}
}

// drawTransition blacks out the layer except for a centred circle that
// grows as the transition counter approaches zero
func (p *Playing) drawTransition(dst *ebiten.Image, transition, w, h int) {
	frames := float64(p.settings.Flow.TransitionFrames)
	open := max(0, frames-math.Abs(float64(transition))) / frames
	radius := open * math.Hypot(float64(w), float64(h)) / 2

	p.mask.Fill(color.Black)
	if radius > 0 {
		vertices, indices := circleFan(float64(w)/2, float64(h)/2, radius)
		p.mask.DrawTriangles(vertices, indices, p.white, &ebiten.DrawTrianglesOptions{Blend: ebiten.BlendClear})
	}
	dst.DrawImage(p.mask, nil)
}

// circleFan returns a triangle fan approximating a filled circle
func circleFan(cx, cy, r float64) ([]ebiten.Vertex, []uint16) {
	vertices := make([]ebiten.Vertex, 0, circleSegments+1)
	indices := make([]uint16, 0, circleSegments*3)

	vertices = append(vertices, ebiten.Vertex{DstX: float32(cx), DstY: float32(cy), SrcX: 1.5, SrcY: 1.5, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1})
	for i := 0; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		vertices = append(vertices, ebiten.Vertex{
			DstX:   float32(cx + math.Cos(a)*r),
			DstY:   float32(cy + math.Sin(a)*r),
			SrcX:   1.5,
			SrcY:   1.5,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		})
	}
	for i := 0; i < circleSegments; i++ {
		next := (i+1)%circleSegments + 1
		indices = append(indices, 0, uint16(i+1), uint16(next))
	}
	return vertices, indices
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	world := p.campaign.World
	text := fmt.Sprintf("Level %d  Enemies %d", world.Level, len(world.Combat.Enemies()))
	if p.recorder != nil {
		text += "  REC"
	}
	ebitenutil.DebugPrint(screen, text)

	switch p.State() {
	case state.StatePaused:
		w, h := p.settings.Display.ScreenWidth, p.settings.Display.ScreenHeight
		vector.FillRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 128}, false)
		ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress P to resume", w/2-50, h/2-20)
	case state.StateLevelClear:
		ebitenutil.DebugPrintAt(screen, "CLEAR", 4, 16)
	}
}
