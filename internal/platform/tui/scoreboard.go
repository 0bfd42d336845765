package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilemerge/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the stats sidebar
	sidebarWidth       = 24  // Width of stats sidebar
	maxRuns            = 100 // Max runs to load
)

// runFilters are the slide rule tabs; "" shows every run.
var runFilters = []string{"", "step", "cascade"}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFilter, k.PrevFilter, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextFilter, k.PrevFilter},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next rule"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev rule"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	gameID      string
	store       *storage.Store
	runs        []storage.Run // every loaded run, best first
	visible     []storage.Run // runs passing the current filter
	stats       *storage.GameStats
	filter      int
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, gameID string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		gameID:      gameID,
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Max tile", Width: 9},
		{Title: "Moves", Width: 7},
		{Title: "Slide", Width: 8},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for header, tabs and help
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

	return t
}

// loadRuns reads runs and stats from the store.
func (m *ScoreboardModel) loadRuns() {
	m.runs, m.stats = nil, nil
	if m.store != nil {
		if runs, err := m.store.TopRuns(m.gameID, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(m.gameID); err == nil {
			m.stats = stats
		}
	}
	m.applyFilter()
}

// applyFilter rebuilds the visible rows for the current slide rule tab.
func (m *ScoreboardModel) applyFilter() {
	want := runFilters[m.filter]
	m.visible = nil
	for _, r := range m.runs {
		if want == "" || r.Slide == want {
			m.visible = append(m.visible, r)
		}
	}

	rows := make([]table.Row, len(m.visible))
	for i, r := range m.visible {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.MaxTile),
			fmt.Sprintf("%d", r.Moves),
			r.Slide,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextFilter):
			m.filter = (m.filter + 1) % len(runFilters)
			m.applyFilter()
			return m, nil

		case key.Matches(msg, m.keys.PrevFilter):
			m.filter = (m.filter + len(runFilters) - 1) % len(runFilters)
			m.applyFilter()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.applyFilter()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(centerText(tableRendered, m.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders the slide rule filter tabs.
func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(runFilters))
	for i, f := range runFilters {
		name := f
		if name == "" {
			name = "all"
		}
		if i == m.filter {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(" " + name + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// renderSidebar renders aggregate stats.
func (m ScoreboardModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Stats\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	st := m.stats
	if st == nil || st.GamesCount == 0 {
		sb.WriteString("no runs yet")
		return sidebarStyle.Render(sb.String())
	}

	fmt.Fprintf(&sb, "Runs:      %d\n", st.GamesCount)
	fmt.Fprintf(&sb, "Best:      %d\n", st.HighScore)
	fmt.Fprintf(&sb, "Best tile: %d\n", st.BestTile)
	fmt.Fprintf(&sb, "Average:   %.0f\n", st.AvgScore)
	fmt.Fprintf(&sb, "Moves:     %d\n", st.TotalMoves)
	if !st.LastPlayed.IsZero() {
		fmt.Fprintf(&sb, "Last:      %s", st.LastPlayed.Format("Jan 02"))
	}
	return sidebarStyle.Render(sb.String())
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.visible) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nFinish a game to set a high score!")
	}

	return m.table.View()
}

// Visible returns the runs shown under the current filter.
func (m ScoreboardModel) Visible() []storage.Run {
	return m.visible
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(store *storage.Store, gameID string, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, gameID, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
