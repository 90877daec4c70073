package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rhythm-dodger/internal/core"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{runeKey('w'), core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{runeKey('s'), core.ActionDown, false},
		{runeKey('a'), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{runeKey('p'), core.ActionPause, false},
		{runeKey('r'), core.ActionRestart, false},
		{runeKey('b'), core.ActionBack, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		action, quit := km.MapKey(tc.msg)
		if action != tc.action || quit != tc.quit {
			t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), action, quit, tc.action, tc.quit)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('b'), MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestKeyStateHoldWindow(t *testing.T) {
	hold := 150 * time.Millisecond
	ks := NewKeyState(hold)

	if !ks.Press(core.ActionLeft, t0) {
		t.Error("first press should be fresh")
	}
	if ks.Press(core.ActionLeft, t0.Add(30*time.Millisecond)) {
		t.Error("auto-repeat inside the hold window should not be fresh")
	}

	frame := core.NewInputFrame()
	ks.Apply(&frame, t0.Add(100*time.Millisecond))
	if !frame.Has(core.ActionLeft) || frame.Has(core.ActionRight) {
		t.Errorf("frame = %v, expected only Left", frame.Actions)
	}

	frame.Clear()
	ks.Apply(&frame, t0.Add(30*time.Millisecond+hold))
	if frame.Has(core.ActionLeft) {
		t.Error("Left still held after the hold window")
	}

	if !ks.Press(core.ActionLeft, t0.Add(time.Second)) {
		t.Error("press after the window should be fresh again")
	}
	if ks.Press(core.ActionPause, t0) {
		t.Error("non-movement actions are never fresh presses")
	}
}

func TestKeyStateZeroHoldLastsOneTick(t *testing.T) {
	ks := NewKeyState(0)
	ks.Press(core.ActionUp, t0)

	frame := core.NewInputFrame()
	ks.Apply(&frame, t0.Add(time.Second))
	if !frame.Has(core.ActionUp) {
		t.Fatal("a press should reach at least one tick")
	}

	frame.Clear()
	ks.Apply(&frame, t0.Add(time.Second))
	if frame.Has(core.ActionUp) {
		t.Error("press held for more than one tick with no hold window")
	}
}

func TestKeyStateRelease(t *testing.T) {
	ks := NewKeyState(time.Second)
	ks.Press(core.ActionDown, t0)
	ks.Release()

	if ks.Held(core.ActionDown, t0) {
		t.Error("Release left a direction held")
	}
	if !ks.Press(core.ActionDown, t0) {
		t.Error("press after Release should be fresh")
	}
}
