package system

import "github.com/younwookim/smashninja/internal/domain/effect"

// EffectSystem owns the live sparks and particles
type EffectSystem struct {
	sparks    []effect.Spark
	particles []effect.Particle
}

// NewEffectSystem creates an empty effect system
func NewEffectSystem() *EffectSystem {
	return &EffectSystem{
		sparks:    make([]effect.Spark, 0, 64),
		particles: make([]effect.Particle, 0, 128),
	}
}

// AddSpark adds a spark
func (s *EffectSystem) AddSpark(sp effect.Spark) {
	s.sparks = append(s.sparks, sp)
}

// AddParticle adds a particle
func (s *EffectSystem) AddParticle(p effect.Particle) {
	s.particles = append(s.particles, p)
}

// Update advances sparks then particles and drops the finished ones,
// compacting in place
func (s *EffectSystem) Update() {
	n := 0
	for i := range s.sparks {
		if s.sparks[i].Update() {
			continue
		}
		s.sparks[n] = s.sparks[i]
		n++
	}
	s.sparks = s.sparks[:n]

	n = 0
	for i := range s.particles {
		if s.particles[i].Update() {
			continue
		}
		s.particles[n] = s.particles[i]
		n++
	}
	clear(s.particles[n:])
	s.particles = s.particles[:n]
}

// Sparks returns the live sparks. The slice is only valid until the next
// Update.
func (s *EffectSystem) Sparks() []effect.Spark {
	return s.sparks
}

// Particles returns the live particles. The slice is only valid until the
// next Update.
func (s *EffectSystem) Particles() []effect.Particle {
	return s.particles
}

// Clear drops every effect
func (s *EffectSystem) Clear() {
	s.sparks = s.sparks[:0]
	clear(s.particles)
	s.particles = s.particles[:0]
}
