package insight

import "fmt"

// RenderSummaryBody renders the summary-tab lines below the tab bar.
// The caller controls reveal animation and panel framing.
func RenderSummaryBody(in ListingInsight, width int) []string {
	if width < 20 {
		width = 20
	}

	sell := in.Summary.Sell
	buy := in.Summary.Buy
	flip := fmt.Sprintf("Flip: %s (%.1f%%) after %s tax", RenderSigned(in.FlipNet), in.FlipPct, FormatStubs(in.FlipTax))

	lines := []string{
		fmt.Sprintf("Sell: %s  Buy: %s", FormatStubs(in.BestSellPrice), FormatStubs(in.BestBuyPrice)),
		flip,
	}

	if !in.Summary.Sufficient() {
		lines = append(lines, "~ insufficient price history ~")
		return clipAll(lines, width)
	}

	if width < 44 {
		lines = append(lines,
			"Sell "+RenderChange(sell),
			"Buy  "+RenderChange(buy),
			fmt.Sprintf("Avg: %s / %s", compactStubs(sell.Average), compactStubs(buy.Average)),
			fmt.Sprintf("Span: %dd  Samples: %d", in.Summary.SpanDays, in.Summary.Samples),
		)
		return clipAll(lines, width)
	}

	lines = append(lines,
		fmt.Sprintf("Sell %s  Buy %s", RenderChange(sell), RenderChange(buy)),
		fmt.Sprintf("Avg sell: %s   Avg buy: %s", FormatStubs(sell.Average), FormatStubs(buy.Average)),
		fmt.Sprintf("Sell range: %s - %s", FormatStubs(sell.Min), FormatStubs(sell.Max)),
		fmt.Sprintf("Buy range:  %s - %s", FormatStubs(buy.Min), FormatStubs(buy.Max)),
		fmt.Sprintf("Span: %d days  Samples: %d  Orders: %s", in.Summary.SpanDays, in.Summary.Samples, RenderSpreadValue(in.Orders.Spread)),
	)
	return clipAll(lines, width)
}
