package dodger

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/rhythm-dodger/internal/core"
)

// Phase is the coarse state of a play session. Exactly one is active.
type Phase int

const (
	PhaseStageSelect Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStageSelect:
		return "StageSelect"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Machine owns a play session: the current phase, the active run and the
// best score per stage. Tick only runs while Playing.
type Machine struct {
	rules *Rules
	rng   *rand.Rand
	phase Phase
	stage Stage
	world World
	run   int // bumped whenever a run starts or is abandoned
	best  map[Stage]int
}

// NewMachine creates a session waiting on the stage select screen.
func NewMachine(rules Rules, seed int64) *Machine {
	return &Machine{
		rules: &rules,
		rng:   rand.New(rand.NewSource(seed)),
		phase: PhaseStageSelect,
		best:  make(map[Stage]int),
	}
}

// Rules returns the rule set the session plays by.
func (m *Machine) Rules() *Rules { return m.rules }

// Phase returns the current phase.
func (m *Machine) Phase() Phase { return m.phase }

// Stage returns the stage of the current or last run.
func (m *Machine) Stage() Stage { return m.stage }

// Run identifies the current run. It changes whenever a run starts or the
// session leaves a run, so work scheduled for an older run can be dropped.
func (m *Machine) Run() int { return m.run }

// World returns the current run state. Callers must treat it as read-only.
func (m *Machine) World() World { return m.world }

// Best returns the best score recorded for the stage.
func (m *Machine) Best(s Stage) int { return m.best[s] }

// SetBest seeds the best score for a stage, typically from storage.
// Lower values than the one already known are ignored.
func (m *Machine) SetBest(s Stage, score int) {
	if score > m.best[s] {
		m.best[s] = score
	}
}

// Start begins a fresh run on the given stage.
func (m *Machine) Start(s Stage) {
	m.stage = s
	m.world = NewWorld(s, m.rules)
	m.phase = PhasePlaying
	m.run++
}

// Restart begins a new run on the same stage. Only valid after game over.
func (m *Machine) Restart() bool {
	if m.phase != PhaseGameOver {
		return false
	}
	m.Start(m.stage)
	return true
}

// ChangeStage abandons the current run and returns to stage select.
// Calling it again is a no-op.
func (m *Machine) ChangeStage() {
	if m.phase == PhaseStageSelect {
		return
	}
	m.phase = PhaseStageSelect
	m.run++
}

// Step runs one tick if a run is in progress and returns its events.
// On game over the best score is updated and the GameOver event carries
// NewBest when the run beat it.
func (m *Machine) Step(in Intent, now time.Time) []core.Event {
	if m.phase != PhasePlaying {
		return nil
	}

	next, events := Tick(m.rules, m.world, in, now, m.rng)
	m.world = next

	if next.Over {
		m.phase = PhaseGameOver
		for i := range events {
			if events[i].Kind != core.EventGameOver {
				continue
			}
			if next.Score > m.best[m.stage] {
				m.best[m.stage] = next.Score
				events[i].NewBest = true
			}
		}
	}
	return events
}
