package entity

import "github.com/younwookim/smashninja/internal/domain/geom"

// PlayerTuning holds the player's movement constants, in pixels and ticks
type PlayerTuning struct {
	Size            geom.Vec
	MaxJumps        int
	JumpVelocity    float64
	CoyoteFrames    int
	AirGrace        int
	AirborneFrames  int // air time above this counts as airborne for animation and wall slide
	FallDeathFrames int
	WallSlideSpeed  float64
	WallJump        geom.Vec
	DashFrames      int
	DashBurstFrames int
	DashSpeed       float64
	DashDecayFactor float64
	DashTrailSpeed  float64
	Friction        float64
	FastFallSpeed   float64
	BurstParticles  int
	DeathBurst      int
	PopSparkSpeed   float64
}

// DefaultPlayerTuning returns the stock player feel
func DefaultPlayerTuning() PlayerTuning {
	return PlayerTuning{
		Size:            geom.V(8, 15),
		MaxJumps:        2,
		JumpVelocity:    3,
		CoyoteFrames:    6,
		AirGrace:        5,
		AirborneFrames:  4,
		FallDeathFrames: 120,
		WallSlideSpeed:  0.5,
		WallJump:        geom.V(3.5, 2.5),
		DashFrames:      60,
		DashBurstFrames: 10,
		DashSpeed:       8,
		DashDecayFactor: 0.1,
		DashTrailSpeed:  3,
		Friction:        0.1,
		FastFallSpeed:   3,
		BurstParticles:  20,
		DeathBurst:      30,
		PopSparkSpeed:   2.5,
	}
}

// EnemyTuning holds the patrol and attack constants of an enemy
type EnemyTuning struct {
	Size            geom.Vec
	WalkSpeed       float64
	WalkChance      float64
	WalkMin         int
	WalkMax         int
	FootProbe       geom.Vec
	AimBandMin      float64
	AimBandMax      float64
	AimVertical     float64
	AttackCooldown  int
	MuzzleOffset    float64
	ProjectileSpeed float64
	MuzzleSparks    int
	BurstCount      int
	KillSparkSpeed  float64
}

// DefaultEnemyTuning returns the stock enemy behavior
func DefaultEnemyTuning() EnemyTuning {
	return EnemyTuning{
		Size:            geom.V(8, 15),
		WalkSpeed:       0.5,
		WalkChance:      0.01,
		WalkMin:         30,
		WalkMax:         120,
		FootProbe:       geom.V(7, 8),
		AimBandMin:      0,
		AimBandMax:      160,
		AimVertical:     16,
		AttackCooldown:  30,
		MuzzleOffset:    7,
		ProjectileSpeed: 1.5,
		MuzzleSparks:    4,
		BurstCount:      15,
		KillSparkSpeed:  5,
	}
}
