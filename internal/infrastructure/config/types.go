package config

import (
	"github.com/younwookim/smashninja/internal/domain/entity"
	"github.com/younwookim/smashninja/internal/domain/geom"
)

// Settings is the root of game.toml
type Settings struct {
	Display DisplayConfig `toml:"display"`
	Logging LoggingConfig `toml:"logging"`
	Physics PhysicsConfig `toml:"physics"`
	Player  PlayerConfig  `toml:"player"`
	Enemy   EnemyConfig   `toml:"enemy"`
	Effects EffectsConfig `toml:"effects"`
	Flow    FlowConfig    `toml:"flow"`
	Levels  LevelsConfig  `toml:"levels"`
}

type DisplayConfig struct {
	Title        string `toml:"title"`
	ScreenWidth  int    `toml:"screen_width"`
	ScreenHeight int    `toml:"screen_height"`
	Scale        int    `toml:"scale"`
	Framerate    int    `toml:"framerate"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type PhysicsConfig struct {
	Gravity      float64 `toml:"gravity"`
	MaxFallSpeed float64 `toml:"max_fall_speed"`
}

type PlayerConfig struct {
	Width           float64 `toml:"width"`
	Height          float64 `toml:"height"`
	MaxJumps        int     `toml:"max_jumps"`
	JumpVelocity    float64 `toml:"jump_velocity"`
	CoyoteFrames    int     `toml:"coyote_frames"`
	AirGrace        int     `toml:"air_grace"`
	AirborneFrames  int     `toml:"airborne_frames"`
	FallDeathFrames int     `toml:"fall_death_frames"`
	WallSlideSpeed  float64 `toml:"wall_slide_speed"`
	WallJumpX       float64 `toml:"wall_jump_x"`
	WallJumpY       float64 `toml:"wall_jump_y"`
	DashFrames      int     `toml:"dash_frames"`
	DashBurstFrames int     `toml:"dash_burst_frames"`
	DashSpeed       float64 `toml:"dash_speed"`
	DashDecayFactor float64 `toml:"dash_decay_factor"`
	DashTrailSpeed  float64 `toml:"dash_trail_speed"`
	Friction        float64 `toml:"friction"`
	FastFallSpeed   float64 `toml:"fast_fall_speed"`
	BurstParticles  int     `toml:"burst_particles"`
	DeathBurst      int     `toml:"death_burst"`
	PopSparkSpeed   float64 `toml:"pop_spark_speed"`
}

type EnemyConfig struct {
	Width           float64 `toml:"width"`
	Height          float64 `toml:"height"`
	WalkSpeed       float64 `toml:"walk_speed"`
	WalkChance      float64 `toml:"walk_chance"`
	WalkMin         int     `toml:"walk_min"`
	WalkMax         int     `toml:"walk_max"`
	FootProbeX      float64 `toml:"foot_probe_x"`
	FootProbeY      float64 `toml:"foot_probe_y"`
	AimBandMin      float64 `toml:"aim_band_min"`
	AimBandMax      float64 `toml:"aim_band_max"`
	AimVertical     float64 `toml:"aim_vertical"`
	AttackCooldown  int     `toml:"attack_cooldown"`
	MuzzleOffset    float64 `toml:"muzzle_offset"`
	ProjectileSpeed float64 `toml:"projectile_speed"`
	MuzzleSparks    int     `toml:"muzzle_sparks"`
	BurstCount      int     `toml:"burst_count"`
	KillSparkSpeed  float64 `toml:"kill_spark_speed"`
}

type EffectsConfig struct {
	LeafIntensity    float64 `toml:"leaf_intensity"` // higher is sparser
	LeafVelocityX    float64 `toml:"leaf_velocity_x"`
	LeafVelocityY    float64 `toml:"leaf_velocity_y"`
	LeafMaxFrame     int     `toml:"leaf_max_frame"`
	ProjectileMaxAge int     `toml:"projectile_max_age"`
	TileHitSparks    int     `toml:"tile_hit_sparks"`
}

type FlowConfig struct {
	TransitionFrames int     `toml:"transition_frames"`
	DeathFadeStart   int     `toml:"death_fade_start"`
	DeathRestart     int     `toml:"death_restart"`
	CameraLag        float64 `toml:"camera_lag"`
	ShakeDecay       float64 `toml:"shake_decay"`
}

type LevelsConfig struct {
	Dir   string `toml:"dir"`
	Start int    `toml:"start"`
}

// PlayerTuning converts the player section to the entity tuning
func (s *Settings) PlayerTuning() entity.PlayerTuning {
	p := s.Player
	return entity.PlayerTuning{
		Size:            geom.V(p.Width, p.Height),
		MaxJumps:        p.MaxJumps,
		JumpVelocity:    p.JumpVelocity,
		CoyoteFrames:    p.CoyoteFrames,
		AirGrace:        p.AirGrace,
		AirborneFrames:  p.AirborneFrames,
		FallDeathFrames: p.FallDeathFrames,
		WallSlideSpeed:  p.WallSlideSpeed,
		WallJump:        geom.V(p.WallJumpX, p.WallJumpY),
		DashFrames:      p.DashFrames,
		DashBurstFrames: p.DashBurstFrames,
		DashSpeed:       p.DashSpeed,
		DashDecayFactor: p.DashDecayFactor,
		DashTrailSpeed:  p.DashTrailSpeed,
		Friction:        p.Friction,
		FastFallSpeed:   p.FastFallSpeed,
		BurstParticles:  p.BurstParticles,
		DeathBurst:      p.DeathBurst,
		PopSparkSpeed:   p.PopSparkSpeed,
	}
}

// EnemyTuning converts the enemy section to the entity tuning
func (s *Settings) EnemyTuning() entity.EnemyTuning {
	e := s.Enemy
	return entity.EnemyTuning{
		Size:            geom.V(e.Width, e.Height),
		WalkSpeed:       e.WalkSpeed,
		WalkChance:      e.WalkChance,
		WalkMin:         e.WalkMin,
		WalkMax:         e.WalkMax,
		FootProbe:       geom.V(e.FootProbeX, e.FootProbeY),
		AimBandMin:      e.AimBandMin,
		AimBandMax:      e.AimBandMax,
		AimVertical:     e.AimVertical,
		AttackCooldown:  e.AttackCooldown,
		MuzzleOffset:    e.MuzzleOffset,
		ProjectileSpeed: e.ProjectileSpeed,
		MuzzleSparks:    e.MuzzleSparks,
		BurstCount:      e.BurstCount,
		KillSparkSpeed:  e.KillSparkSpeed,
	}
}

// Defaults returns the settings used when game.toml leaves a key out
func Defaults() *Settings {
	pt := entity.DefaultPlayerTuning()
	et := entity.DefaultEnemyTuning()
	return &Settings{
		Display: DisplayConfig{
			Title:        "Smash Ninja",
			ScreenWidth:  320,
			ScreenHeight: 240,
			Scale:        2,
			Framerate:    60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Physics: PhysicsConfig{
			Gravity:      entity.DefaultGravity,
			MaxFallSpeed: entity.DefaultMaxFallSpeed,
		},
		Player: PlayerConfig{
			Width:           pt.Size.X,
			Height:          pt.Size.Y,
			MaxJumps:        pt.MaxJumps,
			JumpVelocity:    pt.JumpVelocity,
			CoyoteFrames:    pt.CoyoteFrames,
			AirGrace:        pt.AirGrace,
			AirborneFrames:  pt.AirborneFrames,
			FallDeathFrames: pt.FallDeathFrames,
			WallSlideSpeed:  pt.WallSlideSpeed,
			WallJumpX:       pt.WallJump.X,
			WallJumpY:       pt.WallJump.Y,
			DashFrames:      pt.DashFrames,
			DashBurstFrames: pt.DashBurstFrames,
			DashSpeed:       pt.DashSpeed,
			DashDecayFactor: pt.DashDecayFactor,
			DashTrailSpeed:  pt.DashTrailSpeed,
			Friction:        pt.Friction,
			FastFallSpeed:   pt.FastFallSpeed,
			BurstParticles:  pt.BurstParticles,
			DeathBurst:      pt.DeathBurst,
			PopSparkSpeed:   pt.PopSparkSpeed,
		},
		Enemy: EnemyConfig{
			Width:           et.Size.X,
			Height:          et.Size.Y,
			WalkSpeed:       et.WalkSpeed,
			WalkChance:      et.WalkChance,
			WalkMin:         et.WalkMin,
			WalkMax:         et.WalkMax,
			FootProbeX:      et.FootProbe.X,
			FootProbeY:      et.FootProbe.Y,
			AimBandMin:      et.AimBandMin,
			AimBandMax:      et.AimBandMax,
			AimVertical:     et.AimVertical,
			AttackCooldown:  et.AttackCooldown,
			MuzzleOffset:    et.MuzzleOffset,
			ProjectileSpeed: et.ProjectileSpeed,
			MuzzleSparks:    et.MuzzleSparks,
			BurstCount:      et.BurstCount,
			KillSparkSpeed:  et.KillSparkSpeed,
		},
		Effects: EffectsConfig{
			LeafIntensity:    49999,
			LeafVelocityX:    -0.1,
			LeafVelocityY:    0.3,
			LeafMaxFrame:     20,
			ProjectileMaxAge: entity.ProjectileMaxAge,
			TileHitSparks:    4,
		},
		Flow: FlowConfig{
			TransitionFrames: 30,
			DeathFadeStart:   10,
			DeathRestart:     40,
			CameraLag:        30,
			ShakeDecay:       1,
		},
		Levels: LevelsConfig{
			Dir:   "maps",
			Start: 0,
		},
	}
}
