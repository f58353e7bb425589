package types

import "testing"

func TestSortItems(t *testing.T) {
	input := []Item{
		{Name: "Mookie Betts", OVR: 92, Rarity: RarityDiamond, Team: "Dodgers"},
		{Name: "aaron Judge", OVR: 97, Rarity: RarityDiamond, Team: "Yankees"},
		{Name: "Luis Arraez", OVR: 78, Rarity: RaritySilver, Team: "Padres"},
	}

	tests := []struct {
		name      string
		field     ItemSortField
		order     SortOrder
		wantOrder []string
	}{
		{
			name:      "ovr descending",
			field:     ItemSortOVR,
			order:     SortOrderDesc,
			wantOrder: []string{"aaron Judge", "Mookie Betts", "Luis Arraez"},
		},
		{
			name:      "ovr ascending",
			field:     ItemSortOVR,
			order:     SortOrderAsc,
			wantOrder: []string{"Luis Arraez", "Mookie Betts", "aaron Judge"},
		},
		{
			name:      "name ascending ignores case",
			field:     ItemSortName,
			order:     SortOrderAsc,
			wantOrder: []string{"aaron Judge", "Luis Arraez", "Mookie Betts"},
		},
		{
			name:      "rarity ascending is stable",
			field:     ItemSortRarity,
			order:     SortOrderAsc,
			wantOrder: []string{"Luis Arraez", "Mookie Betts", "aaron Judge"},
		},
		{
			name:      "team descending",
			field:     ItemSortTeam,
			order:     SortOrderDesc,
			wantOrder: []string{"aaron Judge", "Luis Arraez", "Mookie Betts"},
		},
		{
			name:      "unknown field falls back to ovr",
			field:     ItemSortField("speed"),
			order:     SortOrderDesc,
			wantOrder: []string{"aaron Judge", "Mookie Betts", "Luis Arraez"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SortItems(input, tc.field, tc.order)
			if len(got) != len(tc.wantOrder) {
				t.Fatalf("expected %d results, got %d", len(tc.wantOrder), len(got))
			}
			for i, name := range tc.wantOrder {
				if got[i].Name != name {
					t.Fatalf("index %d: expected %s, got %s", i, name, got[i].Name)
				}
			}
		})
	}

	if input[0].Name != "Mookie Betts" {
		t.Fatal("expected SortItems to leave input untouched")
	}
}

func TestListingSortCycleAndParse(t *testing.T) {
	if got := ListingSortRank.Next().Next().Next(); got != ListingSortRank {
		t.Fatalf("expected three steps to cycle back to rank, got %s", got)
	}
	if _, err := ParseListingSort("ovr"); err == nil {
		t.Fatal("expected error for unsupported sort")
	}
	if got, _ := ParseListingSort(""); got != ListingSortRank {
		t.Fatalf("expected empty sort to mean rank, got %s", got)
	}
	if got, _ := ParseSortOrder(""); got != SortOrderDesc {
		t.Fatalf("expected empty order to mean desc, got %s", got)
	}
	if SortOrderDesc.Toggle() != SortOrderAsc || SortOrderAsc.Toggle() != SortOrderDesc {
		t.Fatal("expected Toggle to flip order")
	}
}
