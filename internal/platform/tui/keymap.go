package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rainmaker/internal/core"
)

// GameKeyMap defines the in-flight key bindings.
type GameKeyMap struct {
	Faster   key.Binding
	Slower   key.Binding
	Left     key.Binding
	Right    key.Binding
	Ignition key.Binding
	Seed     key.Binding
	Pause    key.Binding
	Restart  key.Binding
	Help     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Ignition, k.Seed, k.Pause, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Faster, k.Slower, k.Left, k.Right},
		{k.Ignition, k.Seed, k.Pause, k.Restart},
		{k.Help, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns the default flight bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Faster: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("up/w", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "slower"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("left/a", "turn left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("right/d", "turn right"),
		),
		Ignition: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "ignition"),
		),
		Seed: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "seed cloud"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message into a simulation action.
// Keys without a simulation meaning map to ActionNone.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Faster):
		return core.ActionSpeedUp
	case key.Matches(msg, k.Slower):
		return core.ActionSpeedDown
	case key.Matches(msg, k.Left):
		return core.ActionTurnLeft
	case key.Matches(msg, k.Right):
		return core.ActionTurnRight
	case key.Matches(msg, k.Ignition):
		return core.ActionIgnition
	case key.Matches(msg, k.Seed):
		return core.ActionSeed
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// MenuKeyMap defines the bindings for the mode picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Select, k.Scores, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Scores, k.Quit},
	}
}

// DefaultMenuKeyMap returns the default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/right", "difficulty"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next difficulty"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "fly"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
