package dodger

// Snapshot is everything the presentation layer needs to draw one frame.
// It owns its slices, so holding on to it is safe while the game keeps
// ticking.
type Snapshot struct {
	Phase  Phase
	Stage  Stage
	Paused bool
	Best   int
	World  World
}

// Snapshot returns a copy of the current session state.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Phase: m.phase,
		Stage: m.stage,
		Best:  m.best[m.stage],
		World: m.world.Clone(),
	}
}
