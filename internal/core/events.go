package core

// EventKind identifies a discrete thing that happened during a tick.
type EventKind int

const (
	EventScored               EventKind = iota // Score advanced by one
	EventHit                                   // Player took damage
	EventHealed                                // Heal block consumed
	EventPushed                                // Push block shoved the player up
	EventInvincibilityStarted                  // Invincibility window (re)triggered by a hit
	EventInvincibilityRenewed                  // Window reset without damage (fish while invincible)
	EventReefMaterialized                      // A warning turned into a reef
	EventGameOver                              // Last life lost
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventScored:
		return "Scored"
	case EventHit:
		return "Hit"
	case EventHealed:
		return "Healed"
	case EventPushed:
		return "Pushed"
	case EventInvincibilityStarted:
		return "InvincibilityStarted"
	case EventInvincibilityRenewed:
		return "InvincibilityRenewed"
	case EventReefMaterialized:
		return "ReefMaterialized"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is a signal emitted by a game step for the presentation and
// persistence layers. Fields not relevant to the kind are zero.
type Event struct {
	Kind    EventKind
	Score   int  // Score after the tick
	Lives   int  // Lives after the event
	Delta   int  // Change applied by the event (score or lives)
	Subject int  // ID of the obstacle involved, if any
	NewBest bool // Set on EventGameOver when Score beats the stored best
}

// HasEvent reports whether events contains at least one event of kind k.
func HasEvent(events []Event, k EventKind) bool {
	for _, e := range events {
		if e.Kind == k {
			return true
		}
	}
	return false
}
