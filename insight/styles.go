package insight

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"showmarket/types"
)

var (
	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EA80FC"))

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#667085"))

	spreadTightStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#12B76A"))

	spreadModerateStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#F79009"))

	spreadWideStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F97066"))

	upStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#12B76A"))
	downStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97066"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#667085"))
)

// RenderTabs renders the view-mode tab bar.
func RenderTabs(mode ViewMode) string {
	tabs := []struct {
		mode  ViewMode
		label string
	}{
		{ViewSummary, "[1:Sum]"},
		{ViewHistory, "[2:Hist]"},
		{ViewOrders, "[3:Orders]"},
	}

	out := ""
	for i, tab := range tabs {
		if i > 0 {
			out += " "
		}
		if tab.mode == mode {
			out += tabActiveStyle.Render(tab.label)
		} else {
			out += tabInactiveStyle.Render(tab.label)
		}
	}
	return out
}

func RenderSpreadValue(spread string) string {
	switch spread {
	case "Tight":
		return spreadTightStyle.Render(spread)
	case "Moderate":
		return spreadModerateStyle.Render(spread)
	case "Wide":
		return spreadWideStyle.Render(spread)
	default:
		return tabInactiveStyle.Render(spread)
	}
}

// RenderChange colors a series change by sign and prefixes the trend glyph.
func RenderChange(s types.SeriesSummary) string {
	text := TrendGlyph(s.Trend) + " " + FormatChange(s)
	switch {
	case !s.ChangeKnown:
		return mutedStyle.Render(text)
	case s.ChangePct > 0:
		return upStyle.Render(text)
	case s.ChangePct < 0:
		return downStyle.Render(text)
	default:
		return mutedStyle.Render(text)
	}
}

// RenderSigned colors a stub amount green when positive and red otherwise.
func RenderSigned(v float64) string {
	if v >= 0 {
		return upStyle.Render("+" + FormatStubs(v))
	}
	return downStyle.Render(FormatStubs(v))
}

// BlendHex mixes two hex colors in HSV space.
func BlendHex(a, b string, t float64) string {
	t = max(0, min(1, t))
	start, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	end, err := colorful.Hex(b)
	if err != nil {
		return b
	}
	return start.BlendHsv(end, t).Clamped().Hex()
}
