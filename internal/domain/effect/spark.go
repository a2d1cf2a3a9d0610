package effect

import (
	"math"

	"github.com/younwookim/smashninja/internal/domain/geom"
)

// SparkDecay is the speed a spark loses every tick
const SparkDecay = 0.1

// Spark is a diamond streak moving along Angle and slowing to a stop
type Spark struct {
	Pos   geom.Vec
	Angle float64
	Speed float64
}

// NewSpark creates a spark at pos
func NewSpark(pos geom.Vec, angle, speed float64) Spark {
	return Spark{Pos: pos, Angle: angle, Speed: speed}
}

// Update advances the spark and reports whether it has stopped
func (s *Spark) Update() bool {
	s.Pos.X += math.Cos(s.Angle) * s.Speed
	s.Pos.Y += math.Sin(s.Angle) * s.Speed
	s.Speed = max(0, s.Speed-SparkDecay)
	return s.Speed <= 0
}

// Polygon returns the diamond outline: tip, right side, tail, left side.
// Length scales with speed so sparks shrink as they slow.
func (s *Spark) Polygon() [4]geom.Vec {
	at := func(angle, dist float64) geom.Vec {
		return geom.V(s.Pos.X+math.Cos(angle)*dist, s.Pos.Y+math.Sin(angle)*dist)
	}
	return [4]geom.Vec{
		at(s.Angle, s.Speed*3),
		at(s.Angle+math.Pi/2, s.Speed*0.5),
		at(s.Angle+math.Pi, s.Speed*3),
		at(s.Angle-math.Pi/2, s.Speed*0.5),
	}
}
