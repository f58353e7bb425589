package insight

import (
	"fmt"
	"math"
	"sort"

	"showmarket/types"
)

// maxOrderBuckets bounds the histogram so it fits the detail panel.
const maxOrderBuckets = 10

// stubSteps are the bucket widths a price histogram may use. Orders are
// whole stub amounts, so edges land on round numbers players recognize.
var stubSteps = []float64{
	1, 5, 10, 25, 50, 100, 250, 500,
	1_000, 2_500, 5_000, 10_000, 25_000, 50_000,
	100_000, 250_000, 500_000, 1_000_000,
}

var spreadClasses = []struct {
	below float64
	label string
}{
	{below: 0.15, label: "Tight"},
	{below: 0.35, label: "Moderate"},
}

// CalculateOrderStats describes the prices completed orders filled at.
func CalculateOrderStats(orders []types.CompletedOrder) OrderStats {
	stats := OrderStats{Spread: "N/A"}
	ladder := newPriceLadder(orders)
	if len(ladder) == 0 {
		return stats
	}

	mean, stdDev := ladder.dispersion()
	cov := 0.0
	if mean > 0 {
		cov = stdDev / mean
	}

	stats.Count = len(ladder)
	stats.Min = ladder[0]
	stats.Max = ladder[len(ladder)-1]
	stats.Average = mean
	stats.Median = ladder.at(0.50)
	stats.P10 = ladder.at(0.10)
	stats.P25 = ladder.at(0.25)
	stats.P75 = ladder.at(0.75)
	stats.P90 = ladder.at(0.90)
	stats.StdDev = stdDev
	stats.CoV = cov
	stats.Spread = spreadOf(cov)
	stats.Histogram = ladder.buckets()
	return stats
}

// priceLadder is the ascending list of filled prices.
type priceLadder []float64

func newPriceLadder(orders []types.CompletedOrder) priceLadder {
	if len(orders) == 0 {
		return nil
	}
	l := make(priceLadder, len(orders))
	for i, o := range orders {
		l[i] = o.Price
	}
	sort.Float64s(l)
	return l
}

// at interpolates linearly between the two fills around quantile q.
func (l priceLadder) at(q float64) float64 {
	q = math.Max(0, math.Min(1, q))
	pos := q * float64(len(l)-1)
	i := int(pos)
	if i+1 >= len(l) {
		return l[len(l)-1]
	}
	return l[i] + (l[i+1]-l[i])*(pos-float64(i))
}

// dispersion returns the mean and population standard deviation.
func (l priceLadder) dispersion() (mean, stdDev float64) {
	var sum float64
	for _, p := range l {
		sum += p
	}
	mean = sum / float64(len(l))

	var sq float64
	for _, p := range l {
		sq += (p - mean) * (p - mean)
	}
	return mean, math.Sqrt(sq / float64(len(l)))
}

// buckets groups fills into stub-aligned ranges [edge, edge+step).
func (l priceLadder) buckets() []HistogramBin {
	if len(l) == 0 {
		return nil
	}
	lo, hi := l[0], l[len(l)-1]
	if lo == hi {
		return []HistogramBin{{Label: compactStubs(lo), Count: len(l), MinPrice: lo, MaxPrice: hi}}
	}

	step := stubStep((hi - lo) / float64(bucketTarget(len(l))))
	start := math.Floor(lo/step) * step
	n := int(math.Floor((hi-start)/step)) + 1

	bins := make([]HistogramBin, n)
	for i := range bins {
		edge := start + float64(i)*step
		bins[i] = HistogramBin{
			Label:    fmt.Sprintf("%s-%s", compactStubs(edge), compactStubs(edge+step)),
			MinPrice: edge,
			MaxPrice: edge + step,
		}
	}
	for _, p := range l {
		bins[min(int((p-start)/step), n-1)].Count++
	}
	return bins
}

// bucketTarget is Sturges' rule, capped to the panel.
func bucketTarget(n int) int {
	if n <= 1 {
		return 1
	}
	return min(maxOrderBuckets-1, int(math.Ceil(1+math.Log2(float64(n)))))
}

// stubStep rounds a raw bucket width up to the next stub step.
func stubStep(width float64) float64 {
	for _, s := range stubSteps {
		if s >= width {
			return s
		}
	}
	last := stubSteps[len(stubSteps)-1]
	return math.Ceil(width/last) * last
}

func spreadOf(cov float64) string {
	for _, c := range spreadClasses {
		if cov < c.below {
			return c.label
		}
	}
	return "Wide"
}
