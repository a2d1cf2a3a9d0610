package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Validate rejects settings the game cannot run with
func (s *Settings) Validate() error {
	d := s.Display
	switch {
	case d.ScreenWidth <= 0 || d.ScreenHeight <= 0:
		return fmt.Errorf("%w: display: screen size must be positive, got %dx%d", ErrInvalid, d.ScreenWidth, d.ScreenHeight)
	case d.Scale <= 0:
		return fmt.Errorf("%w: display.scale must be positive", ErrInvalid)
	case d.Framerate <= 0:
		return fmt.Errorf("%w: display.framerate must be positive", ErrInvalid)
	}

	switch s.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: logging.format must be json or console, got %q", ErrInvalid, s.Logging.Format)
	}

	if s.Physics.MaxFallSpeed <= 0 {
		return fmt.Errorf("%w: physics.max_fall_speed must be positive", ErrInvalid)
	}

	p := s.Player
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("%w: player: size must be positive", ErrInvalid)
	case p.MaxJumps < 1:
		return fmt.Errorf("%w: player.max_jumps must be at least 1", ErrInvalid)
	case p.DashBurstFrames >= p.DashFrames:
		return fmt.Errorf("%w: player.dash_burst_frames must be below dash_frames", ErrInvalid)
	}

	e := s.Enemy
	switch {
	case e.Width <= 0 || e.Height <= 0:
		return fmt.Errorf("%w: enemy: size must be positive", ErrInvalid)
	case e.WalkMin <= 0 || e.WalkMax < e.WalkMin:
		return fmt.Errorf("%w: enemy: walk range %d..%d", ErrInvalid, e.WalkMin, e.WalkMax)
	}

	if s.Effects.LeafIntensity <= 0 {
		return fmt.Errorf("%w: effects.leaf_intensity must be positive", ErrInvalid)
	}
	if s.Flow.TransitionFrames <= 0 || s.Flow.CameraLag <= 0 {
		return fmt.Errorf("%w: flow: transition_frames and camera_lag must be positive", ErrInvalid)
	}
	if s.Flow.DeathRestart <= s.Flow.DeathFadeStart {
		return fmt.Errorf("%w: flow.death_restart must follow death_fade_start", ErrInvalid)
	}
	return nil
}
