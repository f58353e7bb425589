package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Listing is a marketplace entry pairing an item with its order book and history.
type Listing struct {
	ListingName     string              `json:"listing_name"`
	BestSellPrice   float64             `json:"best_sell_price"`
	BestBuyPrice    float64             `json:"best_buy_price"`
	Item            Item                `json:"item"`
	PriceHistory    []PriceHistoryEntry `json:"price_history,omitempty"`
	CompletedOrders []CompletedOrder    `json:"completed_orders,omitempty"`
}

// CompletedOrder is a filled marketplace order.
type CompletedOrder struct {
	Date  time.Time
	Price float64
}

// PageInfo is the paging envelope shared by collection endpoints.
type PageInfo struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
}

type CaptainPage struct {
	PageInfo
	Captains []Captain `json:"captains"`
}

type ItemPage struct {
	PageInfo
	Items []Item `json:"items"`
}

type ListingPage struct {
	PageInfo
	Listings []Listing `json:"listings"`
}

type listingWire struct {
	ListingName     string               `json:"listing_name"`
	BestSellPrice   json.RawMessage      `json:"best_sell_price"`
	BestBuyPrice    json.RawMessage      `json:"best_buy_price"`
	Item            Item                 `json:"item"`
	PriceHistory    []priceHistoryWire   `json:"price_history"`
	CompletedOrders []completedOrderWire `json:"completed_orders"`
}

type priceHistoryWire struct {
	Date          string          `json:"date"`
	BestBuyPrice  json.RawMessage `json:"best_buy_price"`
	BestSellPrice json.RawMessage `json:"best_sell_price"`
}

type completedOrderWire struct {
	Date  string          `json:"date"`
	Price json.RawMessage `json:"price"`
}

// DecodeListing decodes one upstream listing, resolving year-less dates
// against ref.
func DecodeListing(data []byte, ref time.Time) (Listing, error) {
	var wire listingWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return Listing{}, fmt.Errorf("decode listing: %w", err)
	}
	return wire.toListing(ref)
}

// UnmarshalJSON resolves year-less history dates against the current time.
func (l *Listing) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeListing(data, time.Now())
	if err != nil {
		return err
	}
	*l = decoded
	return nil
}

func (w listingWire) toListing(ref time.Time) (Listing, error) {
	sell, err := parseStubAmount(w.BestSellPrice)
	if err != nil {
		return Listing{}, &MalformedEntryError{Series: "listing", Field: "best_sell_price", Reason: err.Error()}
	}
	buy, err := parseStubAmount(w.BestBuyPrice)
	if err != nil {
		return Listing{}, &MalformedEntryError{Series: "listing", Field: "best_buy_price", Reason: err.Error()}
	}

	out := Listing{
		ListingName:   w.ListingName,
		BestSellPrice: sell,
		BestBuyPrice:  buy,
		Item:          w.Item,
	}

	if len(w.PriceHistory) > 0 {
		out.PriceHistory = make([]PriceHistoryEntry, 0, len(w.PriceHistory))
	}
	for i, raw := range w.PriceHistory {
		date, err := ParseMarketDate(raw.Date, ref)
		if err != nil {
			return Listing{}, &MalformedEntryError{Series: "price_history", Index: i, Field: "date", Reason: err.Error()}
		}
		buy, err := parseStubAmount(raw.BestBuyPrice)
		if err != nil {
			return Listing{}, &MalformedEntryError{Series: "price_history", Index: i, Field: "best_buy_price", Reason: err.Error()}
		}
		sell, err := parseStubAmount(raw.BestSellPrice)
		if err != nil {
			return Listing{}, &MalformedEntryError{Series: "price_history", Index: i, Field: "best_sell_price", Reason: err.Error()}
		}
		out.PriceHistory = append(out.PriceHistory, PriceHistoryEntry{Date: date, BestBuyPrice: buy, BestSellPrice: sell})
	}

	if len(w.CompletedOrders) > 0 {
		out.CompletedOrders = make([]CompletedOrder, 0, len(w.CompletedOrders))
	}
	for i, raw := range w.CompletedOrders {
		date, err := ParseMarketDate(raw.Date, ref)
		if err != nil {
			return Listing{}, &MalformedEntryError{Series: "completed_orders", Index: i, Field: "date", Reason: err.Error()}
		}
		price, err := parseStubAmount(raw.Price)
		if err != nil {
			return Listing{}, &MalformedEntryError{Series: "completed_orders", Index: i, Field: "price", Reason: err.Error()}
		}
		out.CompletedOrders = append(out.CompletedOrders, CompletedOrder{Date: date, Price: price})
	}

	return out, nil
}

func (e PriceHistoryEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date          string  `json:"date"`
		BestBuyPrice  float64 `json:"best_buy_price"`
		BestSellPrice float64 `json:"best_sell_price"`
	}{
		Date:          e.Date.Format("2006-01-02"),
		BestBuyPrice:  e.BestBuyPrice,
		BestSellPrice: e.BestSellPrice,
	})
}

func (o CompletedOrder) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date  string  `json:"date"`
		Price float64 `json:"price"`
	}{
		Date:  o.Date.Format(time.RFC3339),
		Price: o.Price,
	})
}
