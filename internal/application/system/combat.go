package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/smashninja/internal/domain/anim"
	"github.com/younwookim/smashninja/internal/domain/effect"
	"github.com/younwookim/smashninja/internal/domain/entity"
	"github.com/younwookim/smashninja/internal/domain/geom"
	"github.com/younwookim/smashninja/internal/infrastructure/config"
)

// CombatSystem handles the enemy roster, enemy projectiles and their hits
// on the player
type CombatSystem struct {
	settings    *config.Settings
	anims       anim.Provider
	enemies     []*entity.Enemy
	projectiles []entity.Projectile
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(settings *config.Settings, anims anim.Provider) *CombatSystem {
	return &CombatSystem{
		settings:    settings,
		anims:       anims,
		enemies:     make([]*entity.Enemy, 0, 16),
		projectiles: make([]entity.Projectile, 0, 32),
	}
}

// SpawnEnemy adds an enemy at pos
func (s *CombatSystem) SpawnEnemy(pos geom.Vec) *entity.Enemy {
	e := entity.NewEnemy(s.anims, pos, s.settings.EnemyTuning())
	e.Gravity = s.settings.Physics.Gravity
	e.MaxFallSpeed = s.settings.Physics.MaxFallSpeed
	s.enemies = append(s.enemies, e)
	return e
}

// AddProjectile adds a live projectile
func (s *CombatSystem) AddProjectile(p entity.Projectile) {
	s.projectiles = append(s.projectiles, p)
}

// UpdateEnemies runs every enemy for one tick and removes the killed ones
func (s *CombatSystem) UpdateEnemies(grid entity.Collider, target entity.Target, rng *rand.Rand) []entity.Event {
	var events []entity.Event

	n := 0
	var killedAt []geom.Vec
	for _, e := range s.enemies {
		killed, evs := e.Update(grid, target, rng)
		events = append(events, evs...)
		if killed {
			killedAt = append(killedAt, e.Center())
			continue
		}
		s.enemies[n] = e
		n++
	}
	clear(s.enemies[n:])
	s.enemies = s.enemies[:n]

	for _, pos := range killedAt {
		events = append(events, entity.EnemyKilledEvent{Pos: pos, Remaining: n})
	}
	return events
}

// UpdateProjectiles advances projectiles and resolves tile hits, timeouts
// and hits on the player. The player is only hit while alive and not
// dashing through.
func (s *CombatSystem) UpdateProjectiles(grid entity.Collider, player *entity.Player, alive bool, rng *rand.Rand) []entity.Event {
	var events []entity.Event
	fx := s.settings.Effects

	n := 0
	for _, p := range s.projectiles {
		p.Update()

		switch {
		case grid.IsSolidAt(p.Pos):
			// sparks fly back toward the shooter
			back := 0.0
			if p.Direction > 0 {
				back = math.Pi
			}
			for i := 0; i < fx.TileHitSparks; i++ {
				sp := effect.NewSpark(p.Pos, rng.Float64()-0.5+back, 2+rng.Float64())
				events = append(events, entity.SpawnSparkEvent{Spark: sp})
			}
			continue
		case p.Expired(fx.ProjectileMaxAge):
			continue
		case alive && !player.Invulnerable() && player.Rect().ContainsPoint(p.Pos):
			events = append(events, s.hitPlayer(player, rng)...)
			continue
		}

		s.projectiles[n] = p
		n++
	}
	s.projectiles = s.projectiles[:n]
	return events
}

func (s *CombatSystem) hitPlayer(player *entity.Player, rng *rand.Rand) []entity.Event {
	events := []entity.Event{
		entity.DiedEvent{Cause: entity.CauseProjectile},
		entity.PlaySoundEvent{Sound: entity.SoundHit},
		entity.ScreenShakeEvent{Amount: entity.DeathShake},
	}
	sparks, particles := effect.Burst(rng, s.anims, player.Center(), player.Tuning.DeathBurst)
	for _, sp := range sparks {
		events = append(events, entity.SpawnSparkEvent{Spark: sp})
	}
	for _, p := range particles {
		events = append(events, entity.SpawnParticleEvent{Particle: p})
	}
	return events
}

// Enemies returns the live enemies
func (s *CombatSystem) Enemies() []*entity.Enemy {
	return s.enemies
}

// Projectiles returns the live projectiles
func (s *CombatSystem) Projectiles() []entity.Projectile {
	return s.projectiles
}
