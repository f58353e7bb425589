package types

import (
	"errors"
	"net/url"
	"strconv"
	"testing"
)

func TestPagingNavigation(t *testing.T) {
	tests := []struct {
		name string
		got  Paging
		want int
	}{
		{name: "unset is page one", got: Paging{}, want: 1},
		{name: "next advances", got: Paging{Page: 2}.Next(5), want: 3},
		{name: "next stops at total", got: Paging{Page: 5}.Next(5), want: 5},
		{name: "next with unknown total", got: Paging{Page: 5}.Next(0), want: 6},
		{name: "prev steps back", got: Paging{Page: 3}.Prev(), want: 2},
		{name: "prev stops at one", got: Paging{Page: 1}.Prev(), want: 1},
		{name: "goto clamps high", got: Paging{}.Goto(99, 12), want: 12},
		{name: "goto clamps low", got: Paging{}.Goto(-3, 12), want: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got.Current() != tc.want {
				t.Fatalf("expected page %d, got %d", tc.want, tc.got.Current())
			}
		})
	}
}

func TestListingsQueryDefaultsAndValues(t *testing.T) {
	q := NewListingsQuery()
	v := q.Values()

	want := map[string]string{"type": "mlb_card", "page": "1", "sort": "rank", "order": "desc", "rarity": "diamond"}
	for key, val := range want {
		if got := v.Get(key); got != val {
			t.Fatalf("expected %s=%s, got %q", key, val, got)
		}
	}
	if got := q.WithRarity(RarityUnknown).Values(); got.Has("rarity") {
		t.Fatalf("expected rarity omitted for any, got %q", got.Get("rarity"))
	}

	q = q.WithRarity(RarityGold)
	if got := q.Values().Get("rarity"); got != "gold" {
		t.Fatalf("expected rarity=gold, got %q", got)
	}
}

func TestListingsQueryFilterChangesResetPage(t *testing.T) {
	base := NewListingsQuery()
	base.Page = 7

	tests := []struct {
		name string
		q    ListingsQuery
	}{
		{name: "type", q: base.WithType(ItemTypeStadium)},
		{name: "sort", q: base.WithSort(ListingSortSellPrice)},
		{name: "order", q: base.WithOrder(SortOrderAsc)},
		{name: "rarity", q: base.WithRarity(RarityDiamond)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.q.Current() != 1 {
				t.Fatalf("expected page reset to 1, got %d", tc.q.Current())
			}
		})
	}

	items := ItemsQuery{Paging: Paging{Page: 4}}.WithType(ItemTypeEquipment)
	if items.Current() != 1 || items.Type != ItemTypeEquipment {
		t.Fatalf("expected items query reset to page 1 of equipment, got %+v", items)
	}
}

func TestParseListingsQuery(t *testing.T) {
	q, err := ParseListingsQuery(url.Values{
		"page":   {"3"},
		"type":   {"equipment"},
		"sort":   {"best_sell_price"},
		"order":  {"asc"},
		"rarity": {"silver"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if q.Current() != 3 || q.Type != ItemTypeEquipment || q.Sort != ListingSortSellPrice || q.Order != SortOrderAsc || q.Rarity != RaritySilver {
		t.Fatalf("unexpected query: %+v", q)
	}

	q, err = ParseListingsQuery(url.Values{})
	if err != nil {
		t.Fatalf("expected defaults to parse, got %v", err)
	}
	if q != NewListingsQuery() {
		t.Fatalf("expected default query, got %+v", q)
	}
	if q.Rarity != RarityDiamond {
		t.Fatalf("expected diamond when rarity is missing, got %v", q.Rarity)
	}

	q, err = ParseListingsQuery(url.Values{"rarity": {"any"}})
	if err != nil {
		t.Fatalf("expected any rarity to parse, got %v", err)
	}
	if q.Rarity != RarityUnknown || q.Values().Has("rarity") {
		t.Fatalf("expected explicit any to drop the rarity filter, got %+v", q)
	}
}

func TestParseQueryErrors(t *testing.T) {
	tests := []struct {
		name      string
		values    url.Values
		wantParam string
	}{
		{name: "non-numeric page", values: url.Values{"page": {"two"}}, wantParam: "page"},
		{name: "zero page", values: url.Values{"page": {"0"}}, wantParam: "page"},
		{name: "unknown type", values: url.Values{"type": {"hats"}}, wantParam: "type"},
		{name: "unknown sort", values: url.Values{"sort": {"ovr"}}, wantParam: "sort"},
		{name: "unknown order", values: url.Values{"order": {"sideways"}}, wantParam: "order"},
		{name: "unknown rarity", values: url.Values{"rarity": {"mythic"}}, wantParam: "rarity"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseListingsQuery(tc.values)
			var qErr *QueryError
			if !errors.As(err, &qErr) {
				t.Fatalf("expected *QueryError, got %v", err)
			}
			if qErr.Param != tc.wantParam {
				t.Fatalf("expected param %q, got %q", tc.wantParam, qErr.Param)
			}
		})
	}
}

func TestParseItemsAndCaptainsQuery(t *testing.T) {
	items, err := ParseItemsQuery(url.Values{"type": {"stadium"}, "page": {"2"}})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if items.Type != ItemTypeStadium || items.Current() != 2 {
		t.Fatalf("unexpected items query: %+v", items)
	}

	captains, err := ParseCaptainsQuery(url.Values{"page": {strconv.Itoa(9)}})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := captains.Values().Get("page"); got != "9" {
		t.Fatalf("expected page=9, got %q", got)
	}
}

func TestItemTypeCycle(t *testing.T) {
	seen := map[ItemType]bool{}
	typ := ItemTypeMLBCard
	for range ItemTypes() {
		seen[typ] = true
		typ = typ.Next()
	}
	if typ != ItemTypeMLBCard || len(seen) != len(ItemTypes()) {
		t.Fatalf("expected full cycle back to mlb_card, saw %v", seen)
	}
}
