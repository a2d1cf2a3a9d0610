package system

import (
	"math/rand"

	"github.com/younwookim/smashninja/internal/application/state"
	"github.com/younwookim/smashninja/internal/domain/anim"
	"github.com/younwookim/smashninja/internal/domain/effect"
	"github.com/younwookim/smashninja/internal/domain/entity"
	"github.com/younwookim/smashninja/internal/domain/geom"
	"github.com/younwookim/smashninja/internal/domain/tilemap"
	"github.com/younwookim/smashninja/internal/infrastructure/config"
)

// World is one loaded level and everything living in it
type World struct {
	Level   int
	Grid    *tilemap.Grid
	Player  *entity.Player
	Spawn   geom.Vec
	Combat  *CombatSystem
	Effects *EffectSystem
	Trees   []geom.Rect

	// Dead counts ticks since the player died, 0 while alive
	Dead int
	// Transition is negative while fading in, positive while fading out
	Transition  int
	ScreenShake float64
	Scroll      geom.Vec
	Tick        int

	settings *config.Settings
	anims    anim.Provider
	rng      *rand.Rand
	view     geom.Vec
	cleared  bool
	expired  bool
}

// Alive reports whether the player is playing
func (w *World) Alive() bool {
	return w.Dead == 0
}

// Cleared reports whether every enemy is gone
func (w *World) Cleared() bool {
	return len(w.Combat.Enemies()) == 0
}

// Camera returns the integer render offset
func (w *World) Camera() geom.Vec {
	return geom.V(float64(int(w.Scroll.X)), float64(int(w.Scroll.Y)))
}

// Step runs one tick and returns the events meant for the caller: sounds,
// deaths, kills, and the level flow requests
func (w *World) Step(in InputState) []entity.Event {
	w.Tick++
	var out []entity.Event

	out = w.updateFlow(out)
	w.updateCamera()
	w.emitLeaves()

	out = w.dispatch(out, w.Combat.UpdateEnemies(w.Grid, w.Player, w.rng))

	if w.Alive() {
		out = w.dispatch(out, w.applyIntents(in))
		out = w.dispatch(out, w.Player.Update(w.Grid, in.Movement(), w.rng))
	}

	out = w.dispatch(out, w.Combat.UpdateProjectiles(w.Grid, w.Player, w.Alive(), w.rng))

	w.Effects.Update()
	return out
}

func (w *World) updateFlow(out []entity.Event) []entity.Event {
	f := w.settings.Flow
	w.ScreenShake = max(0, w.ScreenShake-f.ShakeDecay)

	if w.Cleared() {
		w.Transition++
		if w.Transition > f.TransitionFrames && !w.cleared {
			w.cleared = true
			out = append(out, entity.LevelClearedEvent{Level: w.Level})
		}
	}
	if w.Transition < 0 {
		w.Transition++
	}

	if w.Dead > 0 {
		w.Dead++
		if w.Dead >= f.DeathFadeStart {
			w.Transition = min(f.TransitionFrames, w.Transition+1)
		}
		if w.Dead > f.DeathRestart && !w.expired {
			w.expired = true
			out = append(out, entity.RestartLevelEvent{Level: w.Level})
		}
	}
	return out
}

func (w *World) updateCamera() {
	target := w.Player.Center().Sub(w.view.Scale(0.5))
	w.Scroll = w.Scroll.Add(target.Sub(w.Scroll).Scale(1 / w.settings.Flow.CameraLag))
}

func (w *World) emitLeaves() {
	fx := w.settings.Effects
	vel := geom.V(fx.LeafVelocityX, fx.LeafVelocityY)
	for _, r := range w.Trees {
		if w.rng.Float64()*fx.LeafIntensity >= r.W*r.H {
			continue
		}
		pos := geom.V(r.X+w.rng.Float64()*r.W, r.Y+w.rng.Float64()*r.H)
		frame := w.rng.Intn(fx.LeafMaxFrame + 1)
		w.Effects.AddParticle(effect.NewParticle(w.anims, effect.ParticleLeaf, pos, vel, frame))
	}
}

func (w *World) applyIntents(in InputState) []entity.Event {
	var events []entity.Event
	for _, intent := range in.Intents() {
		switch intent.(type) {
		case JumpIntent:
			if w.Player.Jump() {
				events = append(events, entity.PlaySoundEvent{Sound: entity.SoundJump})
			}
		case FastFallIntent:
			w.Player.FastFall()
		case DashIntent:
			if ok, evs := w.Player.Dash(); ok {
				events = append(events, evs...)
			}
		}
	}
	return events
}

// dispatch applies the events the world consumes itself and appends the
// rest to out
func (w *World) dispatch(out, events []entity.Event) []entity.Event {
	for _, ev := range events {
		switch e := ev.(type) {
		case entity.SpawnSparkEvent:
			w.Effects.AddSpark(e.Spark)
		case entity.SpawnParticleEvent:
			w.Effects.AddParticle(e.Particle)
		case entity.SpawnProjectileEvent:
			w.Combat.AddProjectile(e.Projectile)
		case entity.ScreenShakeEvent:
			w.ScreenShake = max(w.ScreenShake, e.Amount)
		case entity.DiedEvent:
			if w.Dead == 0 {
				w.Dead = 1
				out = append(out, e)
			}
		default:
			out = append(out, ev)
		}
	}
	return out
}

// Phase summarizes the level flow for the HUD and logs
func (w *World) Phase() state.GameState {
	switch {
	case !w.Alive():
		return state.StateDying
	case w.Cleared():
		return state.StateLevelClear
	case w.Transition < 0:
		return state.StateFadeIn
	default:
		return state.StatePlaying
	}
}
