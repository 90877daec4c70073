package dodger

import (
	"strings"
	"testing"

	"github.com/vovakirdan/rhythm-dodger/internal/core"
)

func TestViewportLayout(t *testing.T) {
	r := DefaultRules()
	v := newViewport(80, 24, &r)

	// 21 rows tall, 400:600 board on 1:2 cells
	want := core.Area{X: 26, Y: 2, W: 28, H: 21}
	if v.area != want {
		t.Errorf("area = %+v, expected %+v", v.area, want)
	}

	// Even a thin obstacle covers at least one row
	a, ok := v.cells(core.NewRect(0, 0, 100, 20))
	if !ok || a.H != 1 || a.W != 7 || a.X != 26 || a.Y != 2 {
		t.Errorf("cells(lane 0 block) = %+v, %v", a, ok)
	}

	// Off the board entirely
	if _, ok := v.cells(core.NewRect(0, -60, 100, 20)); ok {
		t.Error("block above the board should not be drawn")
	}
}

func TestViewportTinyScreen(t *testing.T) {
	r := DefaultRules()
	v := newViewport(10, 5, &r)

	if v.area.W < r.Lanes || v.area.H < 1 {
		t.Errorf("degenerate area %+v", v.area)
	}
}

func TestRenderDrawsEntities(t *testing.T) {
	g, _ := newTestGame(StageClassic)
	g.machine.world.Obstacles = []Obstacle{
		{ID: 1, Pos: vec(0, 0), W: 100, H: 20, Kind: KindDodge, SpeedMultiplier: 1},
		{ID: 2, Pos: vec(300, 0), W: 100, H: 20, Kind: KindHeal, SpeedMultiplier: 1},
	}

	dst := core.NewScreen(80, 24)
	g.Render(dst)

	if c := dst.GetCell(26, 2); c.Rune != BlockChar || c.Color != core.ColorRed {
		t.Errorf("dodge cell = %+v", c)
	}
	if c := dst.GetCell(26+21, 2); c.Rune != HealChar {
		t.Errorf("heal cell = %+v", c)
	}

	// Player starts at (185, 550): columns 12-15, rows 19-20 of the board
	if c := dst.GetCell(26+12, 2+19); c.Rune != PlayerChar {
		t.Errorf("player cell = %+v", c)
	}

	hud := dst.Row(0)
	if !strings.Contains(hud, "CLASSIC") || !strings.Contains(hud, "Score: 0") {
		t.Errorf("HUD = %q", hud)
	}
	if strings.Count(hud, string(HeartFull)) != 3 {
		t.Errorf("HUD should show 3 hearts: %q", hud)
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g, _ := newTestGame(StageBeach)
	g.machine.world.Lives = 1
	g.machine.world.Score = 77
	g.machine.world.Obstacles = []Obstacle{overlapping(g.machine.world, 1, KindDodge)}
	g.Step(input())

	dst := core.NewScreen(80, 24)
	g.Render(dst)

	out := dst.String()
	for _, want := range []string{"GAME OVER", "Final score: 77", "Best: 77"} {
		if !strings.Contains(out, want) {
			t.Errorf("overlay missing %q", want)
		}
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	g, _ := newTestGame(StageClassic)
	g.Step(input(core.ActionPause))

	dst := core.NewScreen(80, 24)
	g.Render(dst)

	if !strings.Contains(dst.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}
}

func TestRenderReefWarning(t *testing.T) {
	g, _ := newTestGame(StageBeach)
	g.machine.world.Warnings = []ReefWarning{{ID: 1, Pos: vec(200, 300), Size: 40, CreatedAt: t0}}

	dst := core.NewScreen(80, 24)
	g.Render(dst)

	if !strings.ContainsRune(dst.String(), WarningChar) {
		t.Error("reef warning not drawn")
	}
}
