package insight

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderOrdersBody renders the completed-order histogram and percentile band.
func RenderOrdersBody(stats OrderStats, width int, maxRows int) []string {
	if width < 24 {
		width = 24
	}
	if maxRows < 2 {
		maxRows = 2
	}

	if len(stats.Histogram) == 0 {
		return []string{
			"Completed Orders",
			"~ insufficient data ~",
		}
	}

	bins := stats.Histogram
	maxBins := max(1, maxRows-1) // last line holds percentiles
	if len(bins) > maxBins {
		bins = bins[:maxBins]
	}

	maxCount := 1
	for _, b := range bins {
		maxCount = max(maxCount, b.Count)
	}

	barWidth := max(6, min(22, width-18))
	lines := make([]string, 0, len(bins)+1)

	for i, bin := range bins {
		ratio := float64(bin.Count) / float64(maxCount)
		bar := renderHistogramBar(ratio, barWidth, i, len(bins))
		label := truncate(bin.Label, 11)
		marker := " "
		if bin.MinPrice <= stats.P25 {
			marker = "★"
		}
		line := fmt.Sprintf("%-11s %s %2d %s", label, bar, bin.Count, marker)
		lines = append(lines, clipANSIWidth(line, width))
	}

	var percentileLine string
	switch {
	case width >= 56:
		percentileLine = fmt.Sprintf("P10:%s P25:%s Med:%s P75:%s P90:%s",
			compactStubs(stats.P10),
			compactStubs(stats.P25),
			compactStubs(stats.Median),
			compactStubs(stats.P75),
			compactStubs(stats.P90),
		)
	case width >= 40:
		percentileLine = fmt.Sprintf("P25:%s Med:%s P75:%s",
			compactStubs(stats.P25),
			compactStubs(stats.Median),
			compactStubs(stats.P75),
		)
	default:
		percentileLine = fmt.Sprintf("Med:%s n=%d", compactStubs(stats.Median), stats.Count)
	}
	lines = append(lines, clipANSIWidth(percentileLine, width))

	return lines
}

func renderHistogramBar(ratio float64, width, idx, total int) string {
	ratio = max(0, min(1, ratio))
	filled := max(0, min(width, int(math.Round(ratio*float64(width)))))

	gradient := 0.0
	if total > 1 {
		gradient = float64(idx) / float64(total-1)
	}
	color := BlendHex(sparkLow, sparkHigh, gradient)
	filledBar := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(strings.Repeat("█", filled))
	return filledBar + strings.Repeat("░", width-filled)
}
