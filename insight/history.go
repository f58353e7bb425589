package insight

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"showmarket/types"
)

const (
	sparkLow  = "#12B76A"
	sparkHigh = "#D92D20"
)

// RenderHistoryBody renders buy/sell sparklines followed by the most recent days.
func RenderHistoryBody(history []types.PriceHistoryEntry, width int, maxRows int) []string {
	if width < 24 {
		width = 24
	}
	if maxRows < 3 {
		maxRows = 3
	}
	if len(history) < 2 {
		return []string{
			"Price History",
			"~ insufficient data ~",
		}
	}

	sells := make([]float64, len(history))
	buys := make([]float64, len(history))
	// Oldest on the left.
	for i, entry := range history {
		sells[len(history)-1-i] = entry.BestSellPrice
		buys[len(history)-1-i] = entry.BestBuyPrice
	}

	sparkWidth := max(4, min(len(history), width-6))
	lines := []string{
		"Sell " + RenderSparkline(sells, sparkWidth),
		"Buy  " + RenderSparkline(buys, sparkWidth),
	}

	rows := min(len(history), maxRows-2)
	for _, entry := range history[:rows] {
		var line string
		if width >= 40 {
			line = fmt.Sprintf("%s  buy %-9s sell %s",
				entry.Date.Format("Jan 02"),
				FormatStubs(entry.BestBuyPrice),
				FormatStubs(entry.BestSellPrice),
			)
		} else {
			line = fmt.Sprintf("%s %s/%s",
				entry.Date.Format("01/02"),
				compactStubs(entry.BestBuyPrice),
				compactStubs(entry.BestSellPrice),
			)
		}
		lines = append(lines, line)
	}
	return clipAll(lines, width)
}

// RenderSparkline draws prices as block glyphs resampled to width.
func RenderSparkline(prices []float64, width int) string {
	if width <= 0 {
		return ""
	}
	if len(prices) == 0 {
		return strings.Repeat(" ", width)
	}

	blocks := []rune("▁▂▃▄▅▆▇█")
	bins := make([]float64, width)
	for i := 0; i < width; i++ {
		start := i * len(prices) / width
		end := (i + 1) * len(prices) / width
		if end <= start {
			end = min(len(prices), start+1)
		}
		if start >= len(prices) {
			start = len(prices) - 1
		}
		var sum float64
		for j := start; j < end; j++ {
			sum += prices[j]
		}
		bins[i] = sum / float64(max(1, end-start))
	}

	minPrice, maxPrice := bins[0], bins[0]
	for _, value := range bins[1:] {
		minPrice = min(minPrice, value)
		maxPrice = max(maxPrice, value)
	}

	var b strings.Builder
	for _, value := range bins {
		ratio := 0.5
		if maxPrice > minPrice {
			ratio = (value - minPrice) / (maxPrice - minPrice)
		}
		level := int(math.Round(ratio * float64(len(blocks)-1)))
		level = max(0, min(len(blocks)-1, level))
		color := BlendHex(sparkLow, sparkHigh, ratio)
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(blocks[level])))
	}
	return b.String()
}
