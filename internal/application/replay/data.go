package replay

import "github.com/younwookim/smashninja/internal/application/system"

// Version is written into every recording
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F   int  `json:"f"`             // Frame number
	L   bool `json:"l,omitempty"`   // Left held
	R   bool `json:"r,omitempty"`   // Right held
	J   bool `json:"j,omitempty"`   // Jump pressed
	FF  bool `json:"ff,omitempty"`  // Fast fall pressed
	Dsh bool `json:"dsh,omitempty"` // Dash pressed
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Level     int          `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// FromInput captures the simulation-relevant part of an input state
func FromInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:   frame,
		L:   in.Left,
		R:   in.Right,
		J:   in.JumpPressed,
		FF:  in.FastFallPressed,
		Dsh: in.DashPressed,
	}
}

// Input converts the recorded frame back into an input state
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:            fi.L,
		Right:           fi.R,
		JumpPressed:     fi.J,
		FastFallPressed: fi.FF,
		DashPressed:     fi.Dsh,
	}
}
