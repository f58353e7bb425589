package insight

import "strings"

var skeletonFrames = []string{
	"░▒▓█▓▒░",
	"▒▓█▓▒░░",
	"▓█▓▒░░▒",
	"█▓▒░░▒▓",
}

// RenderSkeleton returns compact animated placeholder lines.
func RenderSkeleton(frame int, width int) []string {
	if width < 16 {
		width = 16
	}

	idx := frame % len(skeletonFrames)
	if idx < 0 {
		idx = 0
	}
	base := []rune(skeletonFrames[idx])

	fill := func(n int) string {
		if n <= 0 {
			return ""
		}
		block := []rune(strings.Repeat(string(base), n/len(base)+1))
		return string(block[:n])
	}

	long := width - 8
	mid := width - 12
	short := max(6, width-16)
	if mid < short {
		mid = short + 2
	}
	if long < mid {
		long = mid + 2
	}

	return clipAll([]string{
		"Sell:    " + fill(long),
		"Buy:     " + fill(mid),
		"Change:  " + fill(short),
		"Range:   " + fill(mid),
		"Orders:  " + fill(short),
	}, width)
}
