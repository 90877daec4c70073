package dodger

import (
	"time"

	"github.com/vovakirdan/rhythm-dodger/internal/core"
)

// Response is what a single contact between player and obstacle does.
type Response int

const (
	RespondIgnore       Response = iota // nothing happens, the obstacle stays
	RespondHeal                         // lives restored, obstacle consumed
	RespondPush                         // player shoved up, obstacle consumed
	RespondRenew                        // invincibility window restarted, obstacle consumed
	RespondDamage                       // player hit, obstacle stays
	RespondDamageRemove                 // player hit, obstacle consumed
)

// Hurts reports whether the response costs a life.
func (r Response) Hurts() bool {
	return r == RespondDamage || r == RespondDamageRemove
}

// Consumes reports whether the obstacle leaves the world.
func (r Response) Consumes() bool {
	switch r {
	case RespondHeal, RespondPush, RespondRenew, RespondDamageRemove:
		return true
	}
	return false
}

// Respond decides what touching an obstacle of the given kind does.
// Rules are checked in priority order: heal, push, reef, invincibility,
// then the stage damage table.
func Respond(stage Stage, kind Kind, moving, invincible bool) Response {
	switch {
	case kind == KindHeal:
		return RespondHeal
	case stage == StageClassic && kind == KindPush:
		return RespondPush
	case stage == StageBeach && kind == KindReef:
		return RespondDamageRemove
	case invincible:
		if stage == StageBeach && kind == KindFish {
			return RespondRenew
		}
		return RespondIgnore
	}

	switch stage {
	case StageClassic:
		switch kind {
		case KindDodge:
			return RespondDamage
		case KindStill:
			if moving {
				return RespondDamage
			}
		case KindMove:
			if !moving {
				return RespondDamage
			}
		}
	case StageBeach:
		switch kind {
		case KindDodge, KindWave, KindFish:
			return RespondDamage
		}
	}
	return RespondIgnore
}

// resolveCollisions walks the obstacles newest first and applies the
// response of each one touching the player. It stops at the first hit and
// returns the ID of the obstacle responsible; the hit itself is settled by
// applyHit.
func resolveCollisions(w *World, r *Rules, moving bool, now time.Time) (hitBy int, hit bool, events []core.Event) {
	for i := len(w.Obstacles) - 1; i >= 0; i-- {
		o := w.Obstacles[i]
		if !o.Touches(w.Player.Rect()) {
			continue
		}

		resp := Respond(w.Stage, o.Kind, moving, w.Invincible)
		if resp.Consumes() {
			w.Obstacles = append(w.Obstacles[:i], w.Obstacles[i+1:]...)
		}

		switch resp {
		case RespondHeal:
			before := w.Lives
			w.Lives = min(r.InitialLives, w.Lives+r.HealAmount)
			events = append(events, core.Event{
				Kind: core.EventHealed, Lives: w.Lives, Delta: w.Lives - before, Subject: o.ID,
			})
		case RespondPush:
			w.Player.Pos.Y = max(0, w.Player.Pos.Y-r.PushAmount)
			events = append(events, core.Event{Kind: core.EventPushed, Subject: o.ID})
		case RespondRenew:
			w.InvincibleUntil = now.Add(r.Invincibility)
			events = append(events, core.Event{Kind: core.EventInvincibilityRenewed, Lives: w.Lives, Subject: o.ID})
		case RespondDamage, RespondDamageRemove:
			return o.ID, true, events
		}
	}
	return 0, false, events
}

// applyHit costs the player a life and either (re)starts the invincibility
// window, replacing any earlier deadline, or ends the run.
func applyHit(w *World, r *Rules, now time.Time, hitBy int) []core.Event {
	w.Lives = max(0, w.Lives-1)
	events := []core.Event{{Kind: core.EventHit, Score: w.Score, Lives: w.Lives, Delta: -1, Subject: hitBy}}

	if w.Lives > 0 {
		w.Invincible = true
		w.InvincibleUntil = now.Add(r.Invincibility)
		return append(events, core.Event{Kind: core.EventInvincibilityStarted, Lives: w.Lives})
	}

	w.Invincible = false
	w.InvincibleUntil = time.Time{}
	w.Over = true
	return append(events, core.Event{Kind: core.EventGameOver, Score: w.Score})
}
