package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilemerge/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		action   core.Action
		wantQuit bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"j", runeKey('j'), core.ActionDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := keys.MapKey(tt.msg)
			if action != tt.action || quit != tt.wantQuit {
				t.Errorf("MapKey = %v/%v, want %v/%v", action, quit, tt.action, tt.wantQuit)
			}
		})
	}
}

func TestMapKeyToFrameKeepsFirstDirection(t *testing.T) {
	keys := DefaultKeyMap()
	frame := core.NewInputFrame()

	keys.MapKeyToFrame(runeKey('a'), &frame)
	keys.MapKeyToFrame(runeKey('w'), &frame)

	dir, ok := frame.Direction()
	if !ok || dir != core.ActionLeft {
		t.Errorf("Direction = %v/%v, want Left", dir, ok)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('k'), MenuActionUp},
		{runeKey('b'), MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := keys.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
