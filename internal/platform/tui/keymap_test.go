package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rainmaker/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKeyMapActions(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionSpeedUp},
		{"w", runeKey('w'), core.ActionSpeedUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSpeedDown},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionTurnLeft},
		{"d", runeKey('d'), core.ActionTurnRight},
		{"ignition", runeKey('i'), core.ActionIgnition},
		{"space seeds", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionSeed},
		{"pause", runeKey('p'), core.ActionPause},
		{"restart", runeKey('r'), core.ActionRestart},
		{"quit", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestGameKeyMapHelpCoversBindings(t *testing.T) {
	keys := DefaultGameKeyMap()

	count := 0
	for _, col := range keys.FullHelp() {
		count += len(col)
	}
	if count != 11 {
		t.Errorf("FullHelp() lists %d bindings, expected 11", count)
	}
	for _, b := range keys.ShortHelp() {
		if b.Help().Key == "" {
			t.Errorf("binding %v has no help text", b.Keys())
		}
	}
}
