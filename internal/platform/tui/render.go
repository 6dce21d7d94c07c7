package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rainmaker/internal/core"
)

// palette maps the simulation's colors to terminal colors. Clouds shade from
// white to gray as they saturate, so those two stay close to the ANSI base.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:         "1",
	core.ColorGreen:       "2",
	core.ColorYellow:      "3",
	core.ColorBlue:        "4",
	core.ColorCyan:        "6",
	core.ColorWhite:       "7",
	core.ColorBrightBlue:  "12",
	core.ColorBrightWhite: "15",
	core.ColorOrange:      "208",
	core.ColorGray:        "245",
}

var cellStyles = buildCellStyles()

func buildCellStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c, term := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(term)
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := cellStyles[c]; ok {
		return s
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of cells sharing a color are rendered with one style call.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()

	var sb strings.Builder
	sb.Grow(w*h*2 + h)

	var run strings.Builder
	for y := range h {
		if y > 0 {
			sb.WriteByte('\n')
		}

		runColor := core.ColorDefault
		for x := range w {
			cell := s.GetCell(x, y)
			if x > 0 && cell.Color != runColor {
				sb.WriteString(styleFor(runColor).Render(run.String()))
				run.Reset()
			}
			runColor = cell.Color
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			sb.WriteString(styleFor(runColor).Render(run.String()))
			run.Reset()
		}
	}
	return sb.String()
}
