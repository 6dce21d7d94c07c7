package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rainmaker/internal/storage"
)

func TestScoreboardTogglesRounds(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	if _, err := store.SaveScore("rainmaker", 4200); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRound(storage.RoundRecord{
		GameID: "rainmaker", Outcome: "crashed", AvgWater: 12.5, Duration: 75,
	}); err != nil {
		t.Fatal(err)
	}

	m := NewScoreboardModel(store, 120, 40)
	if len(m.scores) != 1 || len(m.rounds) != 1 {
		t.Fatalf("loaded %d scores and %d rounds, want 1 and 1", len(m.scores), len(m.rounds))
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("expected the high score view first")
	}

	next, _ := m.Update(runeKey('v'))
	m = next.(ScoreboardModel)
	view := m.View()
	if !strings.Contains(view, "RECENT ROUNDS") {
		t.Error("expected the round history after toggling")
	}
	if !strings.Contains(view, "1:15") {
		t.Errorf("expected the round duration in the table:\n%s", view)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		back     bool
		quitting bool
	}{
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, true, false},
		{"b", runeKey('b'), true, false},
		{"q", runeKey('q'), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreboardModel(nil, 60, 20)
			next, _ := m.Update(tt.msg)
			sb := next.(ScoreboardModel)
			if sb.IsGoingBack() != tt.back {
				t.Errorf("IsGoingBack() = %v, want %v", sb.IsGoingBack(), tt.back)
			}
			if sb.IsQuitting() != tt.quitting {
				t.Errorf("IsQuitting() = %v, want %v", sb.IsQuitting(), tt.quitting)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		secs float64
		want string
	}{
		{0, "0:00"},
		{59.9, "0:59"},
		{75, "1:15"},
		{600, "10:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.secs); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}
