// Package anim provides tick-based animations and the lookup table that
// hands entities a fresh playback cursor per (entity kind, action) key.
package anim

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityKind identifies the owner of an animation set
type EntityKind int

const (
	EntityPlayer EntityKind = iota
	EntityEnemy
	EntityParticle
)

var entityNames = [...]string{
	EntityPlayer:   "player",
	EntityEnemy:    "enemy",
	EntityParticle: "particles",
}

func (k EntityKind) String() string {
	if k < 0 || int(k) >= len(entityNames) {
		return "unknown"
	}
	return entityNames[k]
}

// Action identifies one animation of an entity
type Action int

const (
	ActionNone Action = iota
	ActionIdle
	ActionRun
	ActionJump
	ActionSlide
	ActionWallSlide
	ActionLeaf
	ActionDust
)

var actionNames = [...]string{
	ActionNone:      "none",
	ActionIdle:      "idle",
	ActionRun:       "run",
	ActionJump:      "jump",
	ActionSlide:     "slide",
	ActionWallSlide: "wall_slide",
	ActionLeaf:      "leaf",
	ActionDust:      "particle",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Key selects an animation in a Library
type Key struct {
	Entity EntityKind
	Action Action
}

// String renders the key as "entity/action"
func (k Key) String() string {
	return k.Entity.String() + "/" + k.Action.String()
}

// ParseKey parses an "entity/action" key
func ParseKey(s string) (Key, error) {
	es, as, ok := strings.Cut(s, "/")
	if !ok {
		return Key{}, fmt.Errorf("invalid animation key %q", s)
	}
	var key Key
	found := false
	for i, n := range entityNames {
		if n == es {
			key.Entity = EntityKind(i)
			found = true
		}
	}
	if !found {
		return Key{}, fmt.Errorf("unknown entity %q in animation key %q", es, s)
	}
	found = false
	for i, n := range actionNames {
		if n == as && Action(i) != ActionNone {
			key.Action = Action(i)
			found = true
		}
	}
	if !found {
		return Key{}, fmt.Errorf("unknown action %q in animation key %q", as, s)
	}
	return key, nil
}

// Animation is a sequence of images, each shown for frameDuration ticks.
// The image slice is shared between copies; the cursor is not.
type Animation struct {
	images        []*ebiten.Image
	frameDuration int
	loop          bool

	frame int
	done  bool
}

// New creates an animation. frameDuration below 1 is treated as 1.
func New(images []*ebiten.Image, frameDuration int, loop bool) *Animation {
	if frameDuration < 1 {
		frameDuration = 1
	}
	a := &Animation{
		images:        images,
		frameDuration: frameDuration,
		loop:          loop,
	}
	if len(images) == 0 && !loop {
		a.done = true
	}
	return a
}

// Copy returns an animation sharing the images with an independent cursor
// starting at the first frame
func (a *Animation) Copy() *Animation {
	return New(a.images, a.frameDuration, a.loop)
}

// ticks returns the total length of one cycle in ticks
func (a *Animation) ticks() int {
	return a.frameDuration * len(a.images)
}

// Update advances the animation by one tick
func (a *Animation) Update() {
	total := a.ticks()
	if total == 0 {
		return
	}
	if a.loop {
		a.frame = (a.frame + 1) % total
		return
	}
	a.frame = min(a.frame+1, total-1)
	if a.frame >= total-1 {
		a.done = true
	}
}

// Image returns the image for the current tick, nil if there are no images
func (a *Animation) Image() *ebiten.Image {
	if len(a.images) == 0 {
		return nil
	}
	return a.images[a.frame/a.frameDuration]
}

// Frame returns the elapsed tick count within the current cycle
func (a *Animation) Frame() int {
	return a.frame
}

// SetFrame moves the cursor to tick n, clamped to the cycle
func (a *Animation) SetFrame(n int) {
	total := a.ticks()
	if total == 0 {
		return
	}
	a.frame = max(0, min(n, total-1))
}

// Done reports whether a non-looping animation has completed its cycle
func (a *Animation) Done() bool {
	return a.done
}

// Loop reports whether the animation wraps around
func (a *Animation) Loop() bool {
	return a.loop
}

// Len returns the number of images
func (a *Animation) Len() int {
	return len(a.images)
}

// FrameDuration returns the ticks each image is shown for
func (a *Animation) FrameDuration() int {
	return a.frameDuration
}
