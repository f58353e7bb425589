package insight

import (
	"fmt"

	"showmarket/types"
)

// ViewMode controls which listing detail view is active in the UI.
type ViewMode int

const (
	ViewSummary ViewMode = iota
	ViewHistory
	ViewOrders
)

func (m ViewMode) Label() string {
	switch m {
	case ViewHistory:
		return "History"
	case ViewOrders:
		return "Orders"
	default:
		return "Summary"
	}
}

// ListingInsight is everything the detail views show for one listing.
type ListingInsight struct {
	Name          string
	BestSellPrice float64
	BestBuyPrice  float64

	Summary types.PriceSummary
	Orders  OrderStats

	FlipNet float64
	FlipTax float64
	FlipPct float64
}

// OrderStats describes the distribution of completed-order prices.
type OrderStats struct {
	Count   int
	Min     float64
	Max     float64
	Average float64
	Median  float64

	P10 float64
	P25 float64
	P75 float64
	P90 float64

	StdDev float64
	CoV    float64
	Spread string

	Histogram []HistogramBin
}

type HistogramBin struct {
	Label    string
	Count    int
	MinPrice float64
	MaxPrice float64
}

// Calculate summarizes a listing's price history and completed orders.
func Calculate(listing types.Listing) (ListingInsight, error) {
	summary, err := types.Summarize(listing.PriceHistory)
	if err != nil {
		return ListingInsight{}, fmt.Errorf("summarize %q: %w", listing.ListingName, err)
	}

	net, tax, pct := types.ListingMargin(listing)
	return ListingInsight{
		Name:          listing.ListingName,
		BestSellPrice: listing.BestSellPrice,
		BestBuyPrice:  listing.BestBuyPrice,
		Summary:       summary,
		Orders:        CalculateOrderStats(listing.CompletedOrders),
		FlipNet:       net,
		FlipTax:       tax,
		FlipPct:       pct,
	}, nil
}
