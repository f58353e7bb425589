package types

// MarketTaxPercent is the cut the marketplace takes from every sale.
const MarketTaxPercent = 10.0

// MarketTax returns the tax charged on a sale at price.
func MarketTax(price float64) float64 {
	if price <= 0 {
		return 0
	}
	return price * MarketTaxPercent / 100
}

// FlipMargin computes the result of filling a buy order at buyOrder and
// relisting at sellOrder. pct is relative to buyOrder and 0 when buyOrder is 0.
func FlipMargin(buyOrder, sellOrder float64) (net float64, tax float64, pct float64) {
	tax = MarketTax(sellOrder)
	net = sellOrder - tax - buyOrder
	if buyOrder > 0 {
		pct = (net / buyOrder) * 100
	}
	return net, tax, pct
}

// ListingMargin is FlipMargin at the listing's current best orders.
func ListingMargin(l Listing) (net float64, tax float64, pct float64) {
	return FlipMargin(l.BestBuyPrice, l.BestSellPrice)
}
