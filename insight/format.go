package insight

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"showmarket/types"
)

// FormatStubs renders a stub amount with thousands separators.
func FormatStubs(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	n := int64(math.Round(v))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return sign + digits
	}

	var b strings.Builder
	b.WriteString(sign)
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// compactStubs renders 465000 as 465k and 1250000 as 1.3M.
func compactStubs(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000:
		return trimZero(fmt.Sprintf("%.1f", v/1_000_000)) + "M"
	case abs >= 10_000:
		return fmt.Sprintf("%.0fk", v/1_000)
	case abs >= 1_000:
		return trimZero(fmt.Sprintf("%.1f", v/1_000)) + "k"
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}

// FormatChange renders a day-over-day change, or n/a when it is unknown.
func FormatChange(s types.SeriesSummary) string {
	if !s.ChangeKnown {
		return "n/a"
	}
	if s.ChangePct >= 0 {
		return fmt.Sprintf("+%.2f%%", s.ChangePct)
	}
	return fmt.Sprintf("%.2f%%", s.ChangePct)
}

// TrendGlyph returns ▲ for an upward trend and ▼ otherwise.
func TrendGlyph(t types.Trend) string {
	if t == types.TrendUp {
		return "▲"
	}
	return "▼"
}
