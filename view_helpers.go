package main

import (
	"fmt"
	"math"
	"strings"

	"showmarket/insight"
	"showmarket/types"

	xansi "github.com/charmbracelet/x/ansi"
)

// renderPager draws the page selector for page of total.
func renderPager(page, total, windowSize int) string {
	if total < 1 {
		return scrollInfoStyle.Render(fmt.Sprintf("page %d", max(1, page)))
	}

	plan, err := types.ComputeWindow(types.PageWindowSpec{Current: page, Total: total}, windowSize)
	if err != nil {
		return scrollInfoStyle.Render(fmt.Sprintf("page %d of %d", page, total))
	}

	parts := make([]string, 0, len(plan)+2)
	if page > 1 {
		parts = append(parts, keyDescStyle.Render("‹"))
	}
	for _, marker := range plan {
		switch {
		case marker.Ellipsis:
			parts = append(parts, separatorStyle.Render("…"))
		case marker.Page == page:
			parts = append(parts, activeTitleStyle.Render(fmt.Sprintf("[%d]", marker.Page)))
		default:
			parts = append(parts, mutedStyle.Render(fmt.Sprintf("%d", marker.Page)))
		}
	}
	if page < total {
		parts = append(parts, keyDescStyle.Render("›"))
	}
	return strings.Join(parts, " ")
}

// renderAttributeBar draws a rating bar scaled to axisMax and colored by tier.
func renderAttributeBar(value, axisMax, width int) string {
	if width <= 0 {
		return ""
	}
	if axisMax <= 0 {
		return strings.Repeat("░", width)
	}

	ratio := math.Min(1, math.Max(0, float64(value)/float64(axisMax)))
	filled := max(0, min(width, int(math.Round(ratio*float64(width)))))
	return tierStyleFor(value).Render(strings.Repeat("█", filled)) + separatorStyle.Render(strings.Repeat("░", width-filled))
}

// renderTeamBadge renders a club abbreviation in its colors.
func renderTeamBadge(t types.Team, fallback string) string {
	info, ok := t.Info()
	if !ok {
		return mutedStyle.Render(truncate(fallback, 4))
	}
	return teamStyleFor(t).Render(info.Abbrev)
}

func formatFlip(net float64) string {
	if net >= 0 {
		return successStyle.Render("+" + insight.FormatStubs(net))
	}
	return dangerStyle.Render(insight.FormatStubs(net))
}

// padRight pads a styled string with spaces to width visible columns.
func padRight(s string, width int) string {
	gap := width - xansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// padLeft right-aligns a styled string in width visible columns.
func padLeft(s string, width int) string {
	gap := width - xansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}

// fitLine clips a styled line to width visible columns.
func fitLine(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if xansi.StringWidth(line) <= width {
		return line
	}
	return xansi.Truncate(line, width, "…")
}

func fitLines(lines []string, width int) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = fitLine(line, width)
	}
	return out
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
