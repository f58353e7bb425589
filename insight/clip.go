package insight

import xansi "github.com/charmbracelet/x/ansi"

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

func clipANSIWidth(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if xansi.StringWidth(line) <= width {
		return line
	}
	if width <= 1 {
		return "…"
	}
	return xansi.Truncate(line, width, "…")
}

func clipAll(lines []string, width int) []string {
	for i, line := range lines {
		lines[i] = clipANSIWidth(line, width)
	}
	return lines
}
