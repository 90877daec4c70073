package dodger

import (
	"math"
	"time"

	"github.com/vovakirdan/rhythm-dodger/internal/core"
)

// Rand is the random source the simulation draws from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// period rounds a fractional frame rate to a whole number of frames, at least 1.
func period(rate float64) int {
	return max(int(math.Round(rate)), 1)
}

// every reports whether frame lands on a multiple of the rounded rate.
func every(frame int, rate float64) bool {
	return frame%period(rate) == 0
}

// ClassicKind picks the kind of one Classic obstacle from a single draw in
// [0, 1). Tiers are tried in order; a tier matches when the score is past
// its threshold and the draw is below its chance.
func ClassicKind(tiers []Tier, score int, draw float64) Kind {
	for _, t := range tiers {
		if score > t.Threshold && draw < t.Chance {
			return t.Kind
		}
	}
	return KindDodge
}

// laneBlock builds a lane-aligned block just above the top edge.
func laneBlock(w *World, r *Rules, lane, lanes int, kind Kind) Obstacle {
	return Obstacle{
		ID:              w.nextID(),
		Pos:             core.Vec{X: float64(lane) * r.LaneWidth(), Y: -r.ObstacleHeight},
		W:               float64(lanes) * r.LaneWidth(),
		H:               r.ObstacleHeight,
		Kind:            kind,
		SpeedMultiplier: 1,
	}
}

// spawnClassic leaves SafeLanes random lanes empty and fills the rest.
func spawnClassic(w *World, r *Rules, rng Rand) {
	if !every(w.Progress.Frame, w.Progress.SpawnRate) {
		return
	}

	safeCount := min(r.SafeLanes, r.Lanes)
	safe := make(map[int]bool, safeCount)
	for len(safe) < safeCount {
		safe[rng.Intn(r.Lanes)] = true
	}

	for lane := 0; lane < r.Lanes; lane++ {
		if safe[lane] {
			continue
		}
		kind := ClassicKind(r.ClassicTiers, w.Score, rng.Float64())
		w.Obstacles = append(w.Obstacles, laneBlock(w, r, lane, 1, kind))
	}
}

// spawnBeach runs the four independent Beach spawn rules.
func spawnBeach(w *World, r *Rules, rng Rand, now time.Time) {
	frame := w.Progress.Frame
	rate := w.Progress.SpawnRate

	if every(frame, rate) {
		w.Obstacles = append(w.Obstacles, laneBlock(w, r, rng.Intn(r.Lanes), 1, KindDodge))
	}

	if w.Score > r.WaveThreshold && frame%period(rate*r.WaveRateFactor) == r.WavePhase {
		width := 2
		if rng.Float64() < r.WaveSingleLaneChance {
			width = 1
		}
		wave := laneBlock(w, r, rng.Intn(r.Lanes-width+1), width, KindWave)
		wave.SpeedMultiplier = r.WaveSpeedMultiplier
		w.Obstacles = append(w.Obstacles, wave)
	}

	if w.Score > r.ReefThreshold && frame%r.ReefEvery == 0 {
		w.Warnings = append(w.Warnings, ReefWarning{
			ID: w.nextID(),
			Pos: core.Vec{
				X: rng.Float64() * (r.BoardW - r.ReefSize),
				Y: rng.Float64() * (r.BoardH - r.ReefSize),
			},
			Size:      r.ReefSize,
			CreatedAt: now,
		})
	}

	if w.Score > r.FishThreshold && frame%r.FishEvery == 0 {
		w.Obstacles = append(w.Obstacles, Obstacle{
			ID:              w.nextID(),
			Pos:             core.Vec{X: math.Floor(rng.Float64() * (r.BoardW - r.FishSize)), Y: -r.FishSize},
			W:               r.FishSize,
			H:               r.FishSize,
			Kind:            KindFish,
			SpeedMultiplier: 1,
		})
	}
}

// spawnHeal drops a heal block when the score about to be awarded crosses
// a multiple of HealInterval. Each milestone yields at most one block, even
// if the scoring tick is lost to a hit and the crossing is seen again.
func spawnHeal(w *World, r *Rules, rng Rand) {
	prev := w.Score / r.HealInterval
	next := (w.Score + 1) / r.HealInterval
	if next <= prev || next <= w.Progress.HealMilestone {
		return
	}
	w.Progress.HealMilestone = next
	w.Obstacles = append(w.Obstacles, laneBlock(w, r, rng.Intn(r.Lanes), 1, KindHeal))
}

// matureWarnings turns warnings that have waited ReefWarning into
// stationary reefs at the same spot, keeping their IDs.
func matureWarnings(w *World, r *Rules, now time.Time) []core.Event {
	var events []core.Event
	kept := w.Warnings[:0]
	for _, warn := range w.Warnings {
		if now.Sub(warn.CreatedAt) < r.ReefWarning {
			kept = append(kept, warn)
			continue
		}
		w.Obstacles = append(w.Obstacles, Obstacle{
			ID:              warn.ID,
			Pos:             warn.Pos,
			W:               warn.Size,
			H:               warn.Size,
			Kind:            KindReef,
			SpeedMultiplier: 0,
			CreatedAt:       now,
		})
		events = append(events, core.Event{Kind: core.EventReefMaterialized, Subject: warn.ID})
	}
	w.Warnings = kept
	return events
}
