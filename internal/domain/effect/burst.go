package effect

import (
	"math"
	"math/rand"

	"github.com/younwookim/smashninja/internal/domain/anim"
	"github.com/younwookim/smashninja/internal/domain/geom"
)

// DustFrames is the exclusive upper bound of the random start frame given to
// dust particles so a burst does not animate in lockstep
const DustFrames = 8

// Burst produces count sparks flying out of center in random directions,
// each paired with a dust particle drifting the opposite way
func Burst(rng *rand.Rand, provider anim.Provider, center geom.Vec, count int) ([]Spark, []Particle) {
	sparks := make([]Spark, 0, count)
	particles := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		angle := rng.Float64() * math.Pi * 2
		speed := rng.Float64() * 5
		sparks = append(sparks, NewSpark(center, angle, 2+rng.Float64()))
		vel := geom.V(math.Cos(angle+math.Pi)*speed*0.5, math.Sin(angle+math.Pi)*speed*0.5)
		particles = append(particles, NewParticle(provider, ParticleDust, center, vel, rng.Intn(DustFrames)))
	}
	return sparks, particles
}

// DustRing produces count slow dust particles spreading out of center
func DustRing(rng *rand.Rand, provider anim.Provider, center geom.Vec, count int) []Particle {
	particles := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		angle := rng.Float64() * math.Pi * 2
		speed := rng.Float64()*0.5 + 0.5
		vel := geom.V(math.Cos(angle)*speed, math.Sin(angle)*speed)
		particles = append(particles, NewParticle(provider, ParticleDust, center, vel, rng.Intn(DustFrames)))
	}
	return particles
}
