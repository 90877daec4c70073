package dodger

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/rhythm-dodger/internal/core"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// Visual characters for rendering
const (
	PlayerChar  = '█'
	TrailChar   = '░'
	BlockChar   = '█'
	HealChar    = '+'
	WaveChar    = '≈'
	ReefChar    = '▓'
	FishChar    = '●'
	WarningChar = '!'
	HeartFull   = '♥'
	HeartEmpty  = '♡'
)

// kindStyle is how one obstacle kind looks on screen.
type kindStyle struct {
	glyph rune
	color core.Color
}

var kindStyles = map[Kind]kindStyle{
	KindDodge: {BlockChar, core.ColorRed},
	KindStill: {BlockChar, core.ColorGreen},
	KindMove:  {BlockChar, core.ColorMagenta},
	KindPush:  {BlockChar, core.ColorBlue},
	KindHeal:  {HealChar, core.ColorBrightWhite},
	KindWave:  {WaveChar, core.ColorBrightCyan},
	KindReef:  {ReefChar, core.ColorGray},
	KindFish:  {FishChar, core.ColorCyan},
}

// viewport maps world units onto the board area of the screen.
type viewport struct {
	area           core.Area // inner board area, border excluded
	boardW, boardH float64
}

func newViewport(screenW, screenH int, r *Rules) viewport {
	rows := max(screenH-3, 4)
	cols := int(math.Round(float64(rows) * r.BoardW / r.BoardH * cellAspect))
	cols = min(cols, screenW-2)
	// Whole cells per lane keep lane edges crisp
	if cols >= r.Lanes {
		cols -= cols % r.Lanes
	}
	cols = max(cols, r.Lanes)

	return viewport{
		area:   core.Area{X: (screenW - cols) / 2, Y: 2, W: cols, H: rows},
		boardW: r.BoardW,
		boardH: r.BoardH,
	}
}

// cells returns the screen cells covered by a world rectangle, clipped to
// the board. Anything on the board covers at least one cell.
func (v viewport) cells(rect core.Rect) (core.Area, bool) {
	cols, rows := float64(v.area.W), float64(v.area.H)
	x0 := int(math.Floor(rect.X * cols / v.boardW))
	x1 := int(math.Ceil(rect.Right() * cols / v.boardW))
	y0 := int(math.Floor(rect.Y * rows / v.boardH))
	y1 := int(math.Ceil(rect.Bottom() * rows / v.boardH))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0, x1 = max(x0, 0), min(x1, v.area.W)
	y0, y1 = max(y0, 0), min(y1, v.area.H)
	if x0 >= x1 || y0 >= y1 {
		return core.Area{}, false
	}
	return core.Area{X: v.area.X + x0, Y: v.area.Y + y0, W: x1 - x0, H: y1 - y0}, true
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot(), g.machine.Rules(), g.config.ShowTrail)
}

// RenderSnapshot draws one frame of a session: HUD, board and overlays.
func RenderSnapshot(dst *core.Screen, s Snapshot, r *Rules, showTrail bool) {
	dst.Clear()
	w := s.World
	v := newViewport(dst.Width(), dst.Height(), r)

	drawHUD(dst, s, r)

	border := core.Area{X: v.area.X - 1, Y: v.area.Y - 1, W: v.area.W + 2, H: v.area.H + 2}
	dst.DrawBoxColored(border, core.ColorCyan)

	// Lane dividers
	laneCols := v.area.W / r.Lanes
	for lane := 1; lane < r.Lanes; lane++ {
		x := v.area.X + lane*laneCols
		for y := v.area.Y; y < v.area.Bottom(); y++ {
			dst.SetColored(x, y, '┊', core.ColorGray)
		}
	}

	for _, warn := range w.Warnings {
		if a, ok := v.cells(warn.Rect()); ok {
			dst.DrawRectColored(a, '░', core.ColorYellow)
			dst.SetColored(a.X+a.W/2, a.Y+a.H/2, WarningChar, core.ColorBrightYellow)
		}
	}

	if showTrail {
		for _, pos := range w.Trail {
			trail := Player{Pos: pos, Size: w.Player.Size}
			if a, ok := v.cells(trail.Rect()); ok {
				dst.DrawRectColored(a, TrailChar, core.ColorGray)
			}
		}
	}

	if a, ok := v.cells(w.Player.Rect()); ok {
		color := core.ColorBrightYellow
		// Blink while invincible
		if w.Invincible && (w.Progress.Frame/8)%2 == 0 {
			color = core.ColorGray
		}
		dst.DrawRectColored(a, PlayerChar, color)
	}

	for _, o := range w.Obstacles {
		a, ok := v.cells(o.Rect())
		if !ok {
			continue
		}
		style := kindStyles[o.Kind]
		dst.DrawRectColored(a, style.glyph, style.color)
	}

	switch {
	case s.Phase == PhaseGameOver:
		drawMessage(dst, core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Final score: %d", w.Score),
			fmt.Sprintf("Best: %d", s.Best),
			"",
			"WASD/arrows: restart   B: change stage",
		)
	case s.Paused:
		drawMessage(dst, core.ColorBrightWhite, "PAUSED", "Press P to resume")
	}
}

// drawHUD writes the score line above the board.
func drawHUD(dst *core.Screen, s Snapshot, r *Rules) {
	w := s.World
	hearts := strings.Repeat(string(HeartFull), max(w.Lives, 0)) +
		strings.Repeat(string(HeartEmpty), max(r.InitialLives-w.Lives, 0))

	left := fmt.Sprintf(" %s  Score: %d", strings.ToUpper(s.Stage.Title()), w.Score)
	right := fmt.Sprintf("Best: %d ", max(s.Best, w.Score))

	dst.DrawTextColored(0, 0, left, core.ColorBrightCyan)
	dst.DrawTextCenteredColored(0, hearts, core.ColorBrightRed)
	dst.DrawTextColored(dst.Width()-len(right), 0, right, core.ColorWhite)
}

// drawMessage draws a message box in the center of the screen.
func drawMessage(dst *core.Screen, titleColor core.Color, title string, lines ...string) {
	boxW := len(title)
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	box := core.Area{X: (dst.Width() - boxW) / 2, Y: (dst.Height() - boxH) / 2, W: boxW, H: boxH}

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, titleColor)
	for i, l := range lines {
		dst.DrawText(box.X+(boxW-len([]rune(l)))/2, box.Y+3+i, l)
	}
}
