package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/smashninja/internal/domain/geom"
)

// KeyBindings maps each control to the keys that trigger it
type KeyBindings struct {
	Left     []ebiten.Key
	Right    []ebiten.Key
	Jump     []ebiten.Key
	FastFall []ebiten.Key
	Dash     []ebiten.Key
	Quit     []ebiten.Key
}

// DefaultBindings returns WASD plus arrows, Space/X to dash
func DefaultBindings() KeyBindings {
	return KeyBindings{
		Left:     []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right:    []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Jump:     []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
		FastFall: []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		Dash:     []ebiten.Key{ebiten.KeySpace, ebiten.KeyX},
		Quit:     []ebiten.Key{ebiten.KeyEscape},
	}
}

// InputSystem handles player input
type InputSystem struct {
	bindings KeyBindings
}

// NewInputSystem creates a new input system
func NewInputSystem(bindings KeyBindings) *InputSystem {
	return &InputSystem{bindings: bindings}
}

// InputState holds the input of one tick. Left and Right are held state,
// the *Pressed fields are true only on the tick the key went down.
type InputState struct {
	Left            bool
	Right           bool
	JumpPressed     bool
	FastFallPressed bool
	DashPressed     bool
	Quit            bool
}

// Read samples the keyboard
func (s *InputSystem) Read() InputState {
	b := s.bindings
	return InputState{
		Left:            anyPressed(b.Left),
		Right:           anyPressed(b.Right),
		JumpPressed:     anyJustPressed(b.Jump),
		FastFallPressed: anyJustPressed(b.FastFall),
		DashPressed:     anyJustPressed(b.Dash),
		Quit:            anyJustPressed(b.Quit),
	}
}

// Movement returns the horizontal input, -1, 0 or 1
func (in InputState) Movement() geom.Vec {
	var x float64
	if in.Right {
		x++
	}
	if in.Left {
		x--
	}
	return geom.V(x, 0)
}

// Intents returns the one-shot actions requested this tick, in the order
// they are applied
func (in InputState) Intents() []Intent {
	var intents []Intent
	if in.JumpPressed {
		intents = append(intents, JumpIntent{})
	}
	if in.FastFallPressed {
		intents = append(intents, FastFallIntent{})
	}
	if in.DashPressed {
		intents = append(intents, DashIntent{})
	}
	return intents
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
