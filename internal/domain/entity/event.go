package entity

import (
	"github.com/younwookim/smashninja/internal/domain/effect"
	"github.com/younwookim/smashninja/internal/domain/geom"
)

// DeathShake is the screen-shake intensity of any death
const DeathShake = 16

// Event is a side effect produced by an entity or the world update and
// consumed by whoever drives the simulation
type Event interface {
	isEvent()
}

// Sound identifies a sound cue
type Sound int

const (
	SoundJump Sound = iota
	SoundDash
	SoundHit
	SoundShoot
	SoundAmbience
)

var soundNames = [...]string{
	SoundJump:     "jump",
	SoundDash:     "dash",
	SoundHit:      "hit",
	SoundShoot:    "shoot",
	SoundAmbience: "ambience",
}

func (s Sound) String() string {
	if s < 0 || int(s) >= len(soundNames) {
		return "unknown"
	}
	return soundNames[s]
}

// DeathCause tells why the player died
type DeathCause int

const (
	CauseFall DeathCause = iota
	CauseProjectile
)

func (c DeathCause) String() string {
	if c == CauseFall {
		return "fall"
	}
	return "projectile"
}

// SpawnSparkEvent adds a spark to the effect system
type SpawnSparkEvent struct {
	Spark effect.Spark
}

func (SpawnSparkEvent) isEvent() {}

// SpawnParticleEvent adds a particle to the effect system
type SpawnParticleEvent struct {
	Particle effect.Particle
}

func (SpawnParticleEvent) isEvent() {}

// SpawnProjectileEvent adds an enemy projectile
type SpawnProjectileEvent struct {
	Projectile Projectile
}

func (SpawnProjectileEvent) isEvent() {}

// ScreenShakeEvent raises the screen shake to at least Amount
type ScreenShakeEvent struct {
	Amount float64
}

func (ScreenShakeEvent) isEvent() {}

// PlaySoundEvent requests a sound cue
type PlaySoundEvent struct {
	Sound Sound
}

func (PlaySoundEvent) isEvent() {}

// DiedEvent reports the player's death
type DiedEvent struct {
	Cause DeathCause
}

func (DiedEvent) isEvent() {}

// EnemyKilledEvent reports an enemy removed from the roster
type EnemyKilledEvent struct {
	Pos       geom.Vec
	Remaining int
}

func (EnemyKilledEvent) isEvent() {}

// LevelClearedEvent asks for the next level once the exit fade finished
type LevelClearedEvent struct {
	Level int
}

func (LevelClearedEvent) isEvent() {}

// RestartLevelEvent asks for the current level to be reloaded after a death
type RestartLevelEvent struct {
	Level int
}

func (RestartLevelEvent) isEvent() {}

func sparkEvents(events []Event, sparks ...effect.Spark) []Event {
	for _, s := range sparks {
		events = append(events, SpawnSparkEvent{Spark: s})
	}
	return events
}

func particleEvents(events []Event, particles ...effect.Particle) []Event {
	for _, p := range particles {
		events = append(events, SpawnParticleEvent{Particle: p})
	}
	return events
}
