package types

import "testing"

func TestParseRarity(t *testing.T) {
	tests := []struct {
		raw     string
		want    Rarity
		wantErr bool
	}{
		{raw: "", want: RarityUnknown},
		{raw: "all", want: RarityUnknown},
		{raw: "Diamond", want: RarityDiamond},
		{raw: " gold ", want: RarityGold},
		{raw: "common", want: RarityCommon},
		{raw: "mythic", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseRarity(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestRarityNextCyclesThroughAny(t *testing.T) {
	r := RarityUnknown
	for i := 0; i < len(Rarities())+1; i++ {
		r = r.Next()
	}
	if r != RarityUnknown {
		t.Fatalf("expected cycle to return to any, got %v", r)
	}
	if RarityUnknown.Label() != "Any" {
		t.Fatalf("expected Any label, got %q", RarityUnknown.Label())
	}
}
