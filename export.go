package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"showmarket/types"
)

// HistoryExport is the JSON export document of one listing.
type HistoryExport struct {
	ListingName  string                    `json:"listing_name"`
	ExportedAt   time.Time                 `json:"exported_at"`
	Summary      types.PriceSummary        `json:"summary"`
	Insufficient bool                      `json:"insufficient_data"`
	PriceHistory []types.PriceHistoryEntry `json:"price_history"`
}

// ExportHistoryCSV writes the listing's price history, most recent first.
func ExportHistoryCSV(path string, listing types.Listing) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv export: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write([]string{"date", "best_buy_price", "best_sell_price"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, entry := range listing.PriceHistory {
		row := []string{
			entry.Date.Format("2006-01-02"),
			fmt.Sprintf("%.0f", entry.BestBuyPrice),
			fmt.Sprintf("%.0f", entry.BestSellPrice),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv export: %w", err)
	}
	return nil
}

// ExportHistoryJSON writes the listing's price history with its summary.
func ExportHistoryJSON(path string, listing types.Listing, now time.Time) error {
	summary, err := types.Summarize(listing.PriceHistory)
	if err != nil {
		return fmt.Errorf("summarize export: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create json export: %w", err)
	}
	defer f.Close()

	doc := HistoryExport{
		ListingName:  listing.ListingName,
		ExportedAt:   now.UTC(),
		Summary:      summary,
		Insufficient: !summary.Sufficient(),
		PriceHistory: listing.PriceHistory,
	}
	if doc.PriceHistory == nil {
		doc.PriceHistory = []types.PriceHistoryEntry{}
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode json export: %w", err)
	}
	return nil
}

func BuildExportPath(homeDir, listingName, ext string, now time.Time) string {
	sanitized := sanitizeFilename(listingName)
	if sanitized == "" {
		sanitized = "listing"
	}
	if ext == "" {
		ext = "csv"
	}
	name := fmt.Sprintf("showmarket-%s-%s.%s", sanitized, now.Format("20060102-150405"), ext)
	return filepath.Join(homeDir, name)
}

func sanitizeFilename(name string) string {
	trimmed := strings.TrimSpace(strings.ToLower(name))
	if trimmed == "" {
		return ""
	}

	var b strings.Builder
	prevDash := false
	for _, r := range trimmed {
		isAlphaNum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlphaNum {
			b.WriteRune(r)
			prevDash = false
			continue
		}
		if !prevDash {
			b.WriteByte('-')
			prevDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	if len(out) > 40 {
		out = strings.Trim(out[:40], "-")
	}
	return out
}
