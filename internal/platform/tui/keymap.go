package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rhythm-dodger/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// KeyState turns direction key presses into held flags.
// Terminals report presses and auto-repeats but never releases, so a
// direction stays held for a short window after its latest press.
type KeyState struct {
	hold    time.Duration
	last    [len(core.MovementActions)]time.Time
	pending [len(core.MovementActions)]bool // pressed since the last Apply
}

// NewKeyState creates a key state with the given hold window.
func NewKeyState(hold time.Duration) *KeyState {
	return &KeyState{hold: hold}
}

func movementIndex(a core.Action) (int, bool) {
	if !a.IsMovement() {
		return 0, false
	}
	return int(a - core.ActionUp), true
}

// Press records a direction press. It reports whether the press is fresh,
// meaning the direction was not already held (an auto-repeat is not fresh).
func (k *KeyState) Press(a core.Action, now time.Time) bool {
	i, ok := movementIndex(a)
	if !ok {
		return false
	}
	fresh := !k.Held(a, now)
	k.last[i] = now
	k.pending[i] = true
	return fresh
}

// Held reports whether the direction counts as held at now.
func (k *KeyState) Held(a core.Action, now time.Time) bool {
	i, ok := movementIndex(a)
	if !ok {
		return false
	}
	if k.pending[i] {
		return true
	}
	return !k.last[i].IsZero() && now.Sub(k.last[i]) < k.hold
}

// Apply sets every held direction on the frame. A press always lasts at
// least one tick, even with a zero hold window.
func (k *KeyState) Apply(frame *core.InputFrame, now time.Time) {
	for i, a := range core.MovementActions {
		if k.Held(a, now) {
			frame.Set(a)
		}
		k.pending[i] = false
	}
}

// Release forgets every press.
func (k *KeyState) Release() {
	*k = KeyState{hold: k.hold}
}
