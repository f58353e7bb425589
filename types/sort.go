package types

import (
	"fmt"
	"sort"
	"strings"
)

// ListingSort selects the upstream sort key for listings.
type ListingSort string

const (
	ListingSortRank      ListingSort = "rank"
	ListingSortSellPrice ListingSort = "best_sell_price"
	ListingSortBuyPrice  ListingSort = "best_buy_price"
)

var listingSorts = []ListingSort{ListingSortRank, ListingSortSellPrice, ListingSortBuyPrice}

// ParseListingSort resolves a sort key; empty means rank.
func ParseListingSort(raw string) (ListingSort, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return ListingSortRank, nil
	}
	for _, s := range listingSorts {
		if string(s) == key {
			return s, nil
		}
	}
	return ListingSortRank, fmt.Errorf("unknown sort %q", raw)
}

// Next cycles rank -> sell -> buy.
func (s ListingSort) Next() ListingSort {
	for i, candidate := range listingSorts {
		if candidate == s {
			return listingSorts[(i+1)%len(listingSorts)]
		}
	}
	return ListingSortRank
}

func (s ListingSort) Label() string {
	switch s {
	case ListingSortSellPrice:
		return "Sell Price"
	case ListingSortBuyPrice:
		return "Buy Price"
	default:
		return "Rank"
	}
}

// SortOrder selects ascending or descending order.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// ParseSortOrder resolves an order; empty means desc.
func ParseSortOrder(raw string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return SortOrderDesc, nil
	case string(SortOrderAsc):
		return SortOrderAsc, nil
	case string(SortOrderDesc):
		return SortOrderDesc, nil
	default:
		return SortOrderDesc, fmt.Errorf("unknown order %q", raw)
	}
}

func (o SortOrder) Toggle() SortOrder {
	if o == SortOrderAsc {
		return SortOrderDesc
	}
	return SortOrderAsc
}

// ItemSortField selects a local sort for an already-loaded item page.
type ItemSortField string

const (
	ItemSortOVR    ItemSortField = "ovr"
	ItemSortName   ItemSortField = "name"
	ItemSortRarity ItemSortField = "rarity"
	ItemSortTeam   ItemSortField = "team"
)

var itemSortFields = []ItemSortField{ItemSortOVR, ItemSortName, ItemSortRarity, ItemSortTeam}

// Next cycles through the item sort fields.
func (f ItemSortField) Next() ItemSortField {
	f = normalizeItemSortField(f)
	for i, candidate := range itemSortFields {
		if candidate == f {
			return itemSortFields[(i+1)%len(itemSortFields)]
		}
	}
	return ItemSortOVR
}

// SortItems returns a sorted copy of in.
func SortItems(in []Item, field ItemSortField, order SortOrder) []Item {
	if len(in) <= 1 {
		return append([]Item(nil), in...)
	}

	field = normalizeItemSortField(field)
	out := append([]Item(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareItem(out[i], out[j], field)
		if cmp == 0 {
			return false
		}
		if order == SortOrderDesc {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

func normalizeItemSortField(field ItemSortField) ItemSortField {
	switch ItemSortField(strings.ToLower(strings.TrimSpace(string(field)))) {
	case ItemSortName:
		return ItemSortName
	case ItemSortRarity:
		return ItemSortRarity
	case ItemSortTeam:
		return ItemSortTeam
	default:
		return ItemSortOVR
	}
}

func compareItem(a, b Item, field ItemSortField) int {
	switch field {
	case ItemSortName:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	case ItemSortRarity:
		return int(a.Rarity) - int(b.Rarity)
	case ItemSortTeam:
		return strings.Compare(strings.ToLower(a.Team), strings.ToLower(b.Team))
	default:
		return a.OVR - b.OVR
	}
}
