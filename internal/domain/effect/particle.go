// Package effect holds the short-lived visual effects: animated particles
// and velocity-decaying sparks.
package effect

import (
	"math"

	"github.com/younwookim/smashninja/internal/domain/anim"
	"github.com/younwookim/smashninja/internal/domain/geom"
)

// ParticleKind selects the particle animation
type ParticleKind int

const (
	ParticleLeaf ParticleKind = iota
	ParticleDust
)

func (k ParticleKind) String() string {
	switch k {
	case ParticleLeaf:
		return "leaf"
	case ParticleDust:
		return "dust"
	}
	return "unknown"
}

// AnimKey returns the animation key for the particle kind
func (k ParticleKind) AnimKey() anim.Key {
	if k == ParticleLeaf {
		return anim.Key{Entity: anim.EntityParticle, Action: anim.ActionLeaf}
	}
	return anim.Key{Entity: anim.EntityParticle, Action: anim.ActionDust}
}

// LeafDrift is the amplitude of the sideways sway applied to leaves
const LeafDrift = 0.3

// Particle is an animated sprite that lives until its animation finishes
type Particle struct {
	Kind      ParticleKind
	Pos       geom.Vec
	Velocity  geom.Vec
	Animation *anim.Animation
}

// NewParticle creates a particle with its own animation cursor set to frame
func NewParticle(provider anim.Provider, kind ParticleKind, pos, vel geom.Vec, frame int) Particle {
	a := provider.Get(kind.AnimKey())
	a.SetFrame(frame)
	return Particle{
		Kind:      kind,
		Pos:       pos,
		Velocity:  vel,
		Animation: a,
	}
}

// Update advances the particle one tick and reports whether it should be
// removed. The check happens before moving, so the final frame is shown once.
func (p *Particle) Update() bool {
	finished := p.Animation.Done()

	p.Pos = p.Pos.Add(p.Velocity)
	p.Animation.Update()

	if p.Kind == ParticleLeaf {
		p.Pos.X += math.Sin(float64(p.Animation.Frame())*0.035) * LeafDrift
	}
	return finished
}
