package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilemerge/internal/core"
)

// SlideOption is one entry of the slide rule picker.
type SlideOption struct {
	Rule        string
	Title       string
	Description string
}

// SlideOptions lists the selectable slide rules in display order.
var SlideOptions = []SlideOption{
	{Rule: "step", Title: "Step", Description: "tiles move one cell per key"},
	{Rule: "cascade", Title: "Cascade", Description: "tiles slide until they stop"},
}

// RulesModel lets users choose the slide rule before a run.
type RulesModel struct {
	cursor   int
	width    int
	height   int
	keys     KeyMap
	selected string
	quitting bool
}

// NewRulesModel creates a new slide rule picker.
func NewRulesModel(width, height int) RulesModel {
	return RulesModel{
		width:  width,
		height: height,
		keys:   DefaultKeyMap(),
	}
}

// Init initializes the model.
func (m RulesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m RulesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m RulesModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(SlideOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selected = SlideOptions[m.cursor].Rule
		return m, tea.Quit
	}
	return m, nil
}

// View renders the picker.
func (m RulesModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("2 0 4 8", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select slide rule:", m.width))
	b.WriteString("\n\n")

	for i, opt := range SlideOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-8s %s", cursor, opt.Title, opt.Description)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen rule, or "" if the picker was left.
func (m RulesModel) Selected() string {
	return m.selected
}

// RunRuleSelector shows the slide rule picker. An empty result means the
// user backed out.
func RunRuleSelector(cfg core.RuntimeConfig) (string, error) {
	p := tea.NewProgram(
		NewRulesModel(cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(RulesModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
