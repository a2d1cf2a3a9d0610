package state

// GameState represents the current phase of play
type GameState int

const (
	StateFadeIn GameState = iota
	StatePlaying
	StateDying
	StateLevelClear
	StatePaused
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateFadeIn:
		return "FadeIn"
	case StatePlaying:
		return "Playing"
	case StateDying:
		return "Dying"
	case StateLevelClear:
		return "LevelClear"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}
