package types

import "testing"

func TestTierFor(t *testing.T) {
	tests := []struct {
		value int
		want  AttributeTier
	}{
		{value: 99, want: TierHigh},
		{value: 80, want: TierHigh},
		{value: 79, want: TierMid},
		{value: 50, want: TierMid},
		{value: 49, want: TierLow},
		{value: 0, want: TierLow},
	}
	for _, tc := range tests {
		if got := TierFor(tc.value); got != tc.want {
			t.Fatalf("value %d: expected tier %d, got %d", tc.value, tc.want, got)
		}
	}
}

func TestAttributesDropsZeroRatings(t *testing.T) {
	d := ItemDetail{Stamina: 0, ContactLeft: 88, Speed: 61}
	got := Attributes(d)
	if len(got) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(got))
	}
	if got[0].Name != "Contact Left" || got[1].Name != "Speed" {
		t.Fatalf("expected display order preserved, got %+v", got)
	}
}

func TestAxisMax(t *testing.T) {
	tests := []struct {
		values []int
		want   int
	}{
		{values: []int{99, 45}, want: 120},
		{values: []int{100}, want: 120},
		{values: []int{61}, want: 100},
		{values: nil, want: 20},
	}
	for _, tc := range tests {
		if got := AxisMax(tc.values...); got != tc.want {
			t.Fatalf("values %v: expected %d, got %d", tc.values, tc.want, got)
		}
	}

	pitches := []Pitch{{Name: "4-Seam", Speed: 99, Control: 70, Movement: 55}}
	if got := AxisMax(PitchValues(pitches)...); got != 120 {
		t.Fatalf("expected pitch axis 120, got %d", got)
	}
}
