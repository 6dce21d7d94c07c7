package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rainmaker/internal/registry"
	"github.com/vovakirdan/rainmaker/internal/storage"
)

const (
	maxScores = 100
	maxRounds = 50
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Toggle   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Toggle, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextMode, k.PrevMode, k.Toggle},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev mode")),
		Toggle:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "scores/rounds")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the winning scores or the round history of one mode
// at a time.
type ScoreboardModel struct {
	modes      []registry.GameInfo
	mode       int
	store      *storage.Store
	scores     []storage.ScoreEntry
	rounds     []storage.RoundRecord
	summary    *storage.RoundSummary
	showRounds bool
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a scoreboard opened on the first mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.reload()
	return m
}

// reload fetches the current mode's records and rebuilds the table.
func (m *ScoreboardModel) reload() {
	m.scores, m.rounds, m.summary = nil, nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.mode].ID
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if rounds, err := m.store.RecentRounds(id, maxRounds); err == nil {
			m.rounds = rounds
		}
		if sum, err := m.store.GetRoundSummary(id); err == nil {
			m.summary = sum
		}
	}
	m.rebuildTable()
}

func (m *ScoreboardModel) rebuildTable() {
	columns, rows := m.scoreColumns(), m.scoreRows()
	if m.showRounds {
		columns, rows = roundColumns(), m.roundRows()
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m.table = t
}

func (m *ScoreboardModel) scoreColumns() []table.Column {
	date := min(max(m.width-30, 12), 20)
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: date},
	}
}

func (m *ScoreboardModel) scoreRows() []table.Row {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func roundColumns() []table.Column {
	return []table.Column{
		{Title: "Outcome", Width: 8},
		{Title: "Water", Width: 7},
		{Title: "Fuel", Width: 7},
		{Title: "Time", Width: 7},
		{Title: "Date", Width: 14},
	}
}

func (m *ScoreboardModel) roundRows() []table.Row {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		rows[i] = table.Row{
			r.Outcome,
			fmt.Sprintf("%.1f", r.AvgWater),
			strconv.Itoa(int(r.Fuel)),
			formatDuration(r.Duration),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// formatDuration renders simulated seconds as m:ss.
func formatDuration(secs float64) string {
	total := int(secs)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.switchMode(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.switchMode(-1)
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			m.showRounds = !m.showRounds
			m.rebuildTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.rebuildTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) switchMode(step int) {
	if len(m.modes) == 0 {
		return
	}
	m.mode = (m.mode + step + len(m.modes)) % len(m.modes)
	m.reload()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if m.showRounds {
		title = "RECENT ROUNDS"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(boardFrameStyle.Render(m.renderBody()), m.width))
	b.WriteString("\n")
	if line := m.summaryLine(); line != "" {
		b.WriteString(centerText(boardDimStyle.Render(line), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		style := boardTabStyle
		if i == m.mode {
			style = boardActiveTab
		}
		tabs[i] = style.Render(g.Title)
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.width-4 && len(m.modes) > 0 {
		return fmt.Sprintf("< %s >", m.modes[m.mode].Title)
	}
	return line
}

func (m ScoreboardModel) renderBody() string {
	empty := len(m.scores) == 0
	if m.showRounds {
		empty = len(m.rounds) == 0
	}
	if !empty {
		return m.table.View()
	}

	msg := "No winning landings yet.\nFill the ponds and land on the pad to score."
	if m.showRounds {
		msg = "No rounds played yet."
	}
	return boardDimStyle.Italic(true).Padding(2, 4).Render(msg)
}

func (m ScoreboardModel) summaryLine() string {
	if m.summary == nil || m.summary.Rounds == 0 {
		return ""
	}
	s := m.summary
	return fmt.Sprintf("%d rounds  %d won  %d crashed  best water %.1f  avg time %s",
		s.Rounds, s.Wins, s.Crashes, s.BestWater, formatDuration(s.AvgDuration))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen. It reports whether the player
// went back to the menu rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
