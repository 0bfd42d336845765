package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilemerge/internal/core"
)

// colorStyles caches one lipgloss style per core.Color.
var colorStyles = map[core.Color]lipgloss.Style{}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := colorStyles[c]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if code := c.ANSI(); code != "" {
		st = st.Foreground(lipgloss.Color(code))
	}
	colorStyles[c] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// centerText pads text on the left to center it in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
