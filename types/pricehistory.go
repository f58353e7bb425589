package types

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedEntry marks price-history or order data that cannot be analyzed.
var ErrMalformedEntry = errors.New("malformed market entry")

// MalformedEntryError reports which entry and field failed validation.
type MalformedEntryError struct {
	Series string
	Index  int
	Field  string
	Reason string
}

func (e *MalformedEntryError) Error() string {
	series := e.Series
	if series == "" {
		series = "price_history"
	}
	return fmt.Sprintf("%s[%d].%s: %s", series, e.Index, e.Field, e.Reason)
}

func (e *MalformedEntryError) Unwrap() error {
	return ErrMalformedEntry
}

// PriceHistoryEntry is one daily best buy/sell observation.
type PriceHistoryEntry struct {
	Date          time.Time
	BestBuyPrice  float64
	BestSellPrice float64
}

// Trend is the direction of a price series over its whole span.
type Trend int

const (
	TrendDown Trend = iota // down or flat
	TrendUp
)

func (t Trend) String() string {
	if t == TrendUp {
		return "up"
	}
	return "down"
}

func (t Trend) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// SeriesSummary holds the analytics of one price series.
type SeriesSummary struct {
	Average float64 `json:"average"`
	// ChangePct is the latest period-over-period change. It is 0 with
	// ChangeKnown false when the prior price is zero.
	ChangePct   float64 `json:"change_pct"`
	ChangeKnown bool    `json:"change_known"`
	Trend       Trend   `json:"trend"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
}

// PriceSummary is the result of Summarize.
type PriceSummary struct {
	Samples  int           `json:"samples"`
	SpanDays int           `json:"span_days"`
	Sell     SeriesSummary `json:"sell"`
	Buy      SeriesSummary `json:"buy"`
}

// Sufficient reports whether the series had enough samples to summarize.
func (s PriceSummary) Sufficient() bool {
	return s.Samples >= 2
}

// Summarize computes averages, latest change, overall trend, extrema and span
// for a series ordered most recent first. Fewer than two entries yields an
// insufficient summary rather than an error.
func Summarize(series []PriceHistoryEntry) (PriceSummary, error) {
	for i, entry := range series {
		if err := validateHistoryEntry(i, entry); err != nil {
			return PriceSummary{}, err
		}
	}

	summary := PriceSummary{Samples: len(series)}
	if len(series) < 2 {
		return summary, nil
	}

	sells := make([]float64, len(series))
	buys := make([]float64, len(series))
	for i, entry := range series {
		sells[i] = entry.BestSellPrice
		buys[i] = entry.BestBuyPrice
	}

	summary.Sell = summarizeSeries(sells)
	summary.Buy = summarizeSeries(buys)
	summary.SpanDays = spanDays(series[0].Date, series[len(series)-1].Date)
	return summary, nil
}

func summarizeSeries(prices []float64) SeriesSummary {
	out := SeriesSummary{
		Min: prices[0],
		Max: prices[0],
	}

	var sum float64
	for _, p := range prices {
		sum += p
		if p < out.Min {
			out.Min = p
		}
		if p > out.Max {
			out.Max = p
		}
	}
	out.Average = sum / float64(len(prices))

	if prior := prices[1]; prior != 0 {
		out.ChangePct = (prices[0] - prior) / prior * 100
		out.ChangeKnown = true
	}

	if prices[0]-prices[len(prices)-1] > 0 {
		out.Trend = TrendUp
	} else {
		out.Trend = TrendDown
	}
	return out
}

func spanDays(a, b time.Time) int {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

func validateHistoryEntry(i int, entry PriceHistoryEntry) error {
	if entry.Date.IsZero() {
		return &MalformedEntryError{Series: "price_history", Index: i, Field: "date", Reason: "missing date"}
	}
	if reason := invalidPrice(entry.BestBuyPrice); reason != "" {
		return &MalformedEntryError{Series: "price_history", Index: i, Field: "best_buy_price", Reason: reason}
	}
	if reason := invalidPrice(entry.BestSellPrice); reason != "" {
		return &MalformedEntryError{Series: "price_history", Index: i, Field: "best_sell_price", Reason: reason}
	}
	return nil
}

func invalidPrice(p float64) string {
	switch {
	case math.IsNaN(p) || math.IsInf(p, 0):
		return "not a finite number"
	case p < 0:
		return "negative price"
	default:
		return ""
	}
}

var marketDateLayouts = []string{
	"01/02/2006 15:04:05",
	"01/02/2006",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02",
}

// ParseMarketDate parses the date formats the marketplace emits. Year-less
// "MM/DD" dates take the latest year, not after ref's, in which the day
// exists and does not fall after ref.
func ParseMarketDate(raw string, ref time.Time) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}

	for _, layout := range marketDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	md, err := time.Parse("01/02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
	}
	ref = ref.UTC()
	// Feb 29 can be up to eight years back across a skipped century leap year.
	for year := ref.Year(); year >= ref.Year()-8; year-- {
		t := time.Date(year, md.Month(), md.Day(), 0, 0, 0, 0, time.UTC)
		if t.Day() == md.Day() && !t.After(ref) {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

// parseStubAmount accepts JSON numbers and comma-grouped numeric strings.
func parseStubAmount(raw []byte) (float64, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0, nil
	}
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return 0, fmt.Errorf("invalid string %s", s)
		}
		s = strings.ReplaceAll(strings.TrimSpace(unquoted), ",", "")
		if s == "" {
			return 0, nil
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %s", string(raw))
	}
	if reason := invalidPrice(v); reason != "" {
		return 0, errors.New(reason)
	}
	return v, nil
}
