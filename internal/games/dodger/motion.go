package dodger

import (
	"time"

	"github.com/vovakirdan/rhythm-dodger/internal/core"
)

// Advance moves a square of the given size by speed along every held
// direction and clamps it inside a boundsW x boundsH board. Diagonals are
// not normalized.
func Advance(pos core.Vec, in Intent, boundsW, boundsH, size, speed float64) core.Vec {
	if in.Up {
		pos.Y -= speed
	}
	if in.Down {
		pos.Y += speed
	}
	if in.Left {
		pos.X -= speed
	}
	if in.Right {
		pos.X += speed
	}
	pos.X = core.ClampF(pos.X, 0, boundsW-size)
	pos.Y = core.ClampF(pos.Y, 0, boundsH-size)
	return pos
}

// movePlayer applies one frame of intent to the world's player.
func movePlayer(w *World, r *Rules, in Intent) {
	w.Player.Pos = Advance(w.Player.Pos, in, r.BoardW, r.BoardH, w.Player.Size, r.PlayerSpeed)
}

// moveObstacles lets every obstacle fall one frame, then drops the ones
// that left the board and reefs past their lifespan.
func moveObstacles(w *World, r *Rules, now time.Time) {
	kept := w.Obstacles[:0]
	for _, o := range w.Obstacles {
		o.Pos.Y += w.Progress.ObstacleSpeed * o.SpeedMultiplier
		if o.Kind == KindReef && !o.CreatedAt.IsZero() && now.Sub(o.CreatedAt) >= r.ReefLifespan {
			continue
		}
		if o.Pos.Y >= r.BoardH || o.Pos.Y <= -r.PruneAbove {
			continue
		}
		kept = append(kept, o)
	}
	w.Obstacles = kept
}
