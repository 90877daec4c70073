// Package dodger implements Rhythm Dodger: blocks fall down four lanes and
// the player steers a square around them. Each stage (Classic, Beach) has
// its own obstacle archetypes and collision rules.
//
// The simulation is a pure function, Tick, over a World value. Machine
// wraps it with the stage select / playing / game over states and Game
// adapts that to the platform's registry interface.
package dodger

import (
	"time"

	"github.com/vovakirdan/rhythm-dodger/internal/core"
	"github.com/vovakirdan/rhythm-dodger/internal/registry"
)

// Game adapts a Machine bound to one stage to registry.Game.
type Game struct {
	stage   Stage
	machine *Machine
	config  core.RuntimeConfig

	clock     func() time.Time
	paused    bool
	pausedAt  time.Time
	pausedFor time.Duration // wall time spent paused, hidden from the simulation
}

// New creates a game for the given stage. Reset must be called before Step.
func New(stage Stage) *Game {
	return &Game{
		stage: stage,
		clock: time.Now,
	}
}

// ID returns the stage identifier.
func (g *Game) ID() string {
	return g.stage.String()
}

// Title returns the stage display name.
func (g *Game) Title() string {
	return g.stage.Title()
}

// SetClock replaces the wall clock the simulation reads.
func (g *Game) SetClock(clock func() time.Time) {
	g.clock = clock
}

// Reset starts a fresh run, keeping the best score already known.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	best := 0
	if g.machine != nil {
		best = g.machine.Best(g.stage)
	}

	g.config = cfg
	g.machine = NewMachine(DefaultRules(), cfg.Seed)
	g.machine.SetBest(g.stage, best)
	g.machine.Start(g.stage)
	g.resetPause()
}

// SetBest seeds the stored best score for this stage.
func (g *Game) SetBest(score int) {
	if g.machine == nil {
		g.Reset(core.DefaultConfig())
	}
	g.machine.SetBest(g.stage, score)
}

// Run identifies the current run; see Machine.Run.
func (g *Game) Run() int {
	if g.machine == nil {
		return 0
	}
	return g.machine.Run()
}

// ChangeStage abandons the run and hands control back to stage select.
func (g *Game) ChangeStage() {
	if g.machine != nil {
		g.machine.ChangeStage()
	}
	g.resetPause()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.machine.Phase() {
	case PhaseStageSelect:
		return core.StepResult{State: g.State()}
	case PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.machine.Restart()
			g.resetPause()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.togglePause()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	events := g.machine.Step(IntentFrom(in), g.now())
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	w := g.machine.World()
	return core.GameState{
		Score:    w.Score,
		Lives:    w.Lives,
		Best:     g.machine.Best(g.stage),
		GameOver: g.machine.Phase() == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Snapshot returns a copy of the session for rendering or inspection.
func (g *Game) Snapshot() Snapshot {
	s := g.machine.Snapshot()
	s.Paused = g.paused
	return s
}

// now is the simulation clock: wall time minus time spent paused, so reef
// and invincibility deadlines do not run out during a pause.
func (g *Game) now() time.Time {
	return g.clock().Add(-g.pausedFor)
}

func (g *Game) togglePause() {
	if g.paused {
		g.pausedFor += g.clock().Sub(g.pausedAt)
		g.paused = false
		return
	}
	g.paused = true
	g.pausedAt = g.clock()
}

func (g *Game) resetPause() {
	g.paused = false
	g.pausedAt = time.Time{}
}

// Register both stages with the registry
func init() {
	for _, s := range Stages {
		s := s
		registry.Register(s.String(), func() registry.Game {
			return New(s)
		})
	}
}
