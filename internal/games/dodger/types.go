package dodger

import (
	"fmt"
	"time"

	"github.com/vovakirdan/rhythm-dodger/internal/core"
)

// Stage selects the spawn rules, obstacle kinds and collision policy of a run.
type Stage int

const (
	StageClassic Stage = iota
	StageBeach
)

// Stages lists every stage in menu order.
var Stages = []Stage{StageClassic, StageBeach}

// String returns the stage identifier, also used as the score storage key.
func (s Stage) String() string {
	switch s {
	case StageClassic:
		return "classic"
	case StageBeach:
		return "beach"
	default:
		return "unknown"
	}
}

// Title returns the display name of the stage.
func (s Stage) Title() string {
	switch s {
	case StageClassic:
		return "Classic"
	case StageBeach:
		return "Beach"
	default:
		return "Unknown"
	}
}

// Blurb is the one-line stage description shown on the select screen.
func (s Stage) Blurb() string {
	switch s {
	case StageClassic:
		return "The original dodge. Green, purple and blue blocks each play by their own rule."
	case StageBeach:
		return "Fast waves, sudden reefs and fish that get in the way."
	default:
		return ""
	}
}

// ParseStage maps a stage identifier back to a Stage.
func ParseStage(id string) (Stage, error) {
	for _, s := range Stages {
		if s.String() == id {
			return s, nil
		}
	}
	return 0, fmt.Errorf("dodger: unknown stage %q", id)
}

// Kind is the archetype of a falling obstacle.
type Kind int

const (
	KindDodge Kind = iota // always hurts
	KindStill             // hurts a moving player (Classic)
	KindMove              // hurts a stationary player (Classic)
	KindPush              // shoves the player up (Classic)
	KindHeal              // restores lives (both stages)
	KindWave              // fast, one or two lanes wide (Beach)
	KindReef              // stationary, hurts through invincibility (Beach)
	KindFish              // round, renews invincibility (Beach)
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindDodge:
		return "Dodge"
	case KindStill:
		return "Still"
	case KindMove:
		return "Move"
	case KindPush:
		return "Push"
	case KindHeal:
		return "Heal"
	case KindWave:
		return "Wave"
	case KindReef:
		return "Reef"
	case KindFish:
		return "Fish"
	default:
		return "Unknown"
	}
}

// Obstacle is a collidable entity in the world.
type Obstacle struct {
	ID              int
	Pos             core.Vec
	W, H            float64
	Kind            Kind
	SpeedMultiplier float64   // scales the stage fall speed; 0 is stationary
	CreatedAt       time.Time // set for reefs only, drives their lifespan
}

// Rect returns the obstacle's bounding box.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.Pos.X, o.Pos.Y, o.W, o.H)
}

// Round reports whether the obstacle collides as a circle.
func (o Obstacle) Round() bool {
	return o.Kind == KindFish
}

// Touches reports whether the obstacle overlaps the given player hitbox.
func (o Obstacle) Touches(player core.Rect) bool {
	if o.Round() {
		return core.InscribedCircle(o.Rect()).IntersectsRect(player)
	}
	return o.Rect().Intersects(player)
}

// ReefWarning marks where a reef will appear. It never collides.
type ReefWarning struct {
	ID        int
	Pos       core.Vec
	Size      float64
	CreatedAt time.Time
}

// Rect returns the area the reef will cover.
func (w ReefWarning) Rect() core.Rect {
	return core.NewRect(w.Pos.X, w.Pos.Y, w.Size, w.Size)
}

// Player is the square the user steers.
type Player struct {
	Pos  core.Vec
	Size float64
}

// Rect returns the player's hitbox.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.Pos.X, p.Pos.Y, p.Size, p.Size)
}

// Intent is the set of movement directions held this frame.
type Intent struct {
	Up, Down, Left, Right bool
}

// Moving reports whether any direction is held, whether or not the
// player actually moves after clamping.
func (i Intent) Moving() bool {
	return i.Up || i.Down || i.Left || i.Right
}

// IntentFrom extracts movement intent from a platform input frame.
func IntentFrom(in core.InputFrame) Intent {
	return Intent{
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
	}
}

// Progress is the difficulty sub-state threaded through every tick.
type Progress struct {
	Frame         int     // ticks since run start, incremented first thing each tick
	ObstacleSpeed float64 // base fall speed, never decreases
	SpawnRate     float64 // frames between spawns, never increases
	HealMilestone int     // last heal interval that produced a heal block
}

// World is the complete state of one run.
type World struct {
	Stage           Stage
	Player          Player
	Score           int
	Lives           int
	Invincible      bool
	InvincibleUntil time.Time
	Over            bool
	Obstacles       []Obstacle // oldest first
	Warnings        []ReefWarning
	Trail           []core.Vec // most recent first
	Progress        Progress
	NextID          int
}

// NewWorld creates the state of a fresh run on the given stage.
func NewWorld(stage Stage, r *Rules) World {
	return World{
		Stage:  stage,
		Player: r.PlayerStart(),
		Lives:  r.InitialLives,
		Progress: Progress{
			ObstacleSpeed: r.InitialObstacleSpeed,
			SpawnRate:     r.InitialSpawnRate,
		},
	}
}

// Clone returns a deep copy of the world.
func (w World) Clone() World {
	c := w
	c.Obstacles = append([]Obstacle(nil), w.Obstacles...)
	c.Warnings = append([]ReefWarning(nil), w.Warnings...)
	c.Trail = append([]core.Vec(nil), w.Trail...)
	return c
}

func (w *World) nextID() int {
	id := w.NextID
	w.NextID++
	return id
}
