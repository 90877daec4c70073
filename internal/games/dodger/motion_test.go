package dodger

import (
	"testing"
	"time"

	"github.com/vovakirdan/rhythm-dodger/internal/core"
)

func vec(x, y float64) core.Vec {
	return core.Vec{X: x, Y: y}
}

// allIntents enumerates all 16 combinations of the four direction flags.
func allIntents() []Intent {
	intents := make([]Intent, 0, 16)
	for mask := 0; mask < 16; mask++ {
		intents = append(intents, Intent{
			Up:    mask&1 != 0,
			Down:  mask&2 != 0,
			Left:  mask&4 != 0,
			Right: mask&8 != 0,
		})
	}
	return intents
}

func TestAdvanceStaysInBounds(t *testing.T) {
	r := DefaultRules()
	maxX, maxY := r.BoardW-r.PlayerSize, r.BoardH-r.PlayerSize

	starts := []core.Vec{
		vec(0, 0),
		vec(maxX, maxY),
		vec(1, 2),
		vec(maxX-1, 3),
		vec(185, 550),
	}

	for _, start := range starts {
		for _, in := range allIntents() {
			pos := start
			for i := 0; i < 200; i++ {
				pos = Advance(pos, in, r.BoardW, r.BoardH, r.PlayerSize, r.PlayerSpeed)
				if pos.X < 0 || pos.X > maxX || pos.Y < 0 || pos.Y > maxY {
					t.Fatalf("start %+v intent %+v: position %+v out of bounds", start, in, pos)
				}
			}
		}
	}
}

func TestAdvanceDirections(t *testing.T) {
	r := DefaultRules()
	start := vec(100, 100)
	s := r.PlayerSpeed

	tests := []struct {
		name string
		in   Intent
		want core.Vec
	}{
		{"none", Intent{}, vec(100, 100)},
		{"up", Intent{Up: true}, vec(100, 100-s)},
		{"down", Intent{Down: true}, vec(100, 100+s)},
		{"left", Intent{Left: true}, vec(100-s, 100)},
		{"right", Intent{Right: true}, vec(100+s, 100)},
		{"diagonal is not normalized", Intent{Up: true, Right: true}, vec(100+s, 100-s)},
		{"opposites cancel", Intent{Up: true, Down: true}, vec(100, 100)},
		{"all four cancel", Intent{Up: true, Down: true, Left: true, Right: true}, vec(100, 100)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Advance(start, tc.in, r.BoardW, r.BoardH, r.PlayerSize, r.PlayerSpeed)
			if got != tc.want {
				t.Errorf("Advance() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestIntentMovingIgnoresClamping(t *testing.T) {
	r := DefaultRules()
	in := Intent{Up: true}

	// Pinned against the top edge the player does not move, but still counts as moving
	pos := Advance(vec(50, 0), in, r.BoardW, r.BoardH, r.PlayerSize, r.PlayerSpeed)
	if pos != vec(50, 0) {
		t.Fatalf("expected clamped position, got %+v", pos)
	}
	if !in.Moving() {
		t.Error("Moving() should be true while a direction is held")
	}
	if (Intent{}).Moving() {
		t.Error("Moving() should be false with no direction held")
	}
}

func TestIntentFrom(t *testing.T) {
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionDown)
	in.Set(core.ActionPause)

	got := IntentFrom(in)
	want := Intent{Down: true, Left: true}
	if got != want {
		t.Errorf("IntentFrom() = %+v, expected %+v", got, want)
	}
}

func TestMoveObstaclesFallAndPrune(t *testing.T) {
	r := DefaultRules()
	w := NewWorld(StageBeach, &r)
	w.Progress.ObstacleSpeed = 1.5
	w.Obstacles = []Obstacle{
		{ID: 1, Pos: vec(0, 100), W: 100, H: 20, Kind: KindDodge, SpeedMultiplier: 1},
		{ID: 2, Pos: vec(0, 100), W: 100, H: 20, Kind: KindWave, SpeedMultiplier: 2},
		{ID: 3, Pos: vec(0, r.BoardH-1), W: 100, H: 20, Kind: KindDodge, SpeedMultiplier: 1},
		{ID: 4, Pos: vec(0, 50), W: 40, H: 40, Kind: KindReef, CreatedAt: t0},
		{ID: 5, Pos: vec(0, 50), W: 40, H: 40, Kind: KindReef, CreatedAt: t0.Add(time.Second)},
	}

	moveObstacles(&w, &r, t0.Add(r.ReefLifespan))

	got := map[int]float64{}
	for _, o := range w.Obstacles {
		got[o.ID] = o.Pos.Y
	}

	want := map[int]float64{1: 101.5, 2: 103, 5: 50}
	if len(got) != len(want) {
		t.Fatalf("remaining obstacles %v, expected %v", got, want)
	}
	for id, y := range want {
		if got[id] != y {
			t.Errorf("obstacle %d at y=%v, expected %v", id, got[id], y)
		}
	}
}
