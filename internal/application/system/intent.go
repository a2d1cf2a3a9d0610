package system

// Intent represents an action the player wants to perform this tick
type Intent interface {
	isIntent()
}

// JumpIntent asks for a ground, air or wall jump
type JumpIntent struct{}

func (JumpIntent) isIntent() {}

// FastFallIntent forces the vertical velocity downward
type FastFallIntent struct{}

func (FastFallIntent) isIntent() {}

// DashIntent asks for a dash in the facing direction
type DashIntent struct{}

func (DashIntent) isIntent() {}
