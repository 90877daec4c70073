package dodger

import (
	"time"

	"github.com/vovakirdan/rhythm-dodger/internal/core"
)

// Tick advances a run by one frame. It never modifies prev; the returned
// world and events describe the whole frame, so callers never see a
// partially updated state. Given equal inputs and an RNG in the same
// state, Tick returns equal results.
//
// Order within a frame: obstacles fall and are pruned, the stage spawns,
// reef warnings mature, the player moves, collisions resolve, and then
// either the hit is settled or the frame scores.
func Tick(r *Rules, prev World, in Intent, now time.Time, rng Rand) (World, []core.Event) {
	w := prev.Clone()
	if w.Over {
		return w, nil
	}

	w.Progress.Frame++
	if w.Invincible && !now.Before(w.InvincibleUntil) {
		w.Invincible = false
		w.InvincibleUntil = time.Time{}
	}

	moveObstacles(&w, r, now)

	switch w.Stage {
	case StageClassic:
		spawnClassic(&w, r, rng)
	case StageBeach:
		spawnBeach(&w, r, rng, now)
	}
	spawnHeal(&w, r, rng)

	events := matureWarnings(&w, r, now)

	movePlayer(&w, r, in)

	hitBy, hit, contacts := resolveCollisions(&w, r, in.Moving(), now)
	events = append(events, contacts...)

	if hit {
		return w, append(events, applyHit(&w, r, now, hitBy)...)
	}

	if r.TrailEvery > 0 && w.Progress.Frame%r.TrailEvery == 0 {
		w.Trail = append([]core.Vec{w.Player.Pos}, w.Trail...)
		if len(w.Trail) > r.TrailLength {
			w.Trail = w.Trail[:r.TrailLength]
		}
	}

	w.Score++
	w.Progress = w.Progress.Ramp(w.Score, r)
	events = append(events, core.Event{Kind: core.EventScored, Score: w.Score, Lives: w.Lives, Delta: 1})
	return w, events
}
