package types

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestComputeWindow(t *testing.T) {
	tests := []struct {
		name       string
		in         PageWindowSpec
		windowSize int
		want       []PageMarker
	}{
		{
			name: "single page",
			in:   PageWindowSpec{Current: 1, Total: 1},
			want: []PageMarker{{Page: 1}},
		},
		{
			name: "fits in window",
			in:   PageWindowSpec{Current: 1, Total: 3},
			want: []PageMarker{{Page: 1}, {Page: 2}, {Page: 3}},
		},
		{
			name: "exactly window size",
			in:   PageWindowSpec{Current: 3, Total: 5},
			want: []PageMarker{{Page: 1}, {Page: 2}, {Page: 3}, {Page: 4}, {Page: 5}},
		},
		{
			name: "middle of many",
			in:   PageWindowSpec{Current: 10, Total: 20},
			want: []PageMarker{{Page: 1}, {Ellipsis: true}, {Page: 9}, {Page: 10}, {Page: 11}, {Ellipsis: true}, {Page: 20}},
		},
		{
			name: "first page of many",
			in:   PageWindowSpec{Current: 1, Total: 20},
			want: []PageMarker{{Page: 1}, {Page: 2}, {Ellipsis: true}, {Page: 20}},
		},
		{
			name: "last page of many",
			in:   PageWindowSpec{Current: 20, Total: 20},
			want: []PageMarker{{Page: 1}, {Ellipsis: true}, {Page: 19}, {Page: 20}},
		},
		{
			name: "head adjacent to window has no ellipsis",
			in:   PageWindowSpec{Current: 3, Total: 20},
			want: []PageMarker{{Page: 1}, {Page: 2}, {Page: 3}, {Page: 4}, {Ellipsis: true}, {Page: 20}},
		},
		{
			name:       "custom window size",
			in:         PageWindowSpec{Current: 4, Total: 7},
			windowSize: 7,
			want:       []PageMarker{{Page: 1}, {Page: 2}, {Page: 3}, {Page: 4}, {Page: 5}, {Page: 6}, {Page: 7}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeWindow(tc.in, tc.windowSize)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestComputeWindowInvariants(t *testing.T) {
	for total := 1; total <= 30; total++ {
		for cur := 1; cur <= total; cur++ {
			plan, err := ComputeWindow(PageWindowSpec{Current: cur, Total: total}, DefaultWindowSize)
			if err != nil {
				t.Fatalf("%d/%d: unexpected error %v", cur, total, err)
			}
			pages := Pages(plan)
			if pages[0] != 1 || pages[len(pages)-1] != total {
				t.Fatalf("%d/%d: expected first and last pages present, got %v", cur, total, pages)
			}
			found := false
			for i, p := range pages {
				if p == cur {
					found = true
				}
				if i > 0 && p <= pages[i-1] {
					t.Fatalf("%d/%d: pages not strictly increasing: %v", cur, total, pages)
				}
			}
			if !found {
				t.Fatalf("%d/%d: current page missing from %v", cur, total, pages)
			}
			for i := 1; i < len(plan); i++ {
				if plan[i].Ellipsis && plan[i-1].Ellipsis {
					t.Fatalf("%d/%d: consecutive ellipses in %+v", cur, total, plan)
				}
			}

			again, _ := ComputeWindow(PageWindowSpec{Current: cur, Total: total}, DefaultWindowSize)
			if !reflect.DeepEqual(plan, again) {
				t.Fatalf("%d/%d: expected identical plans on repeat", cur, total)
			}
		}
	}
}

func TestComputeWindowRejectsInvalidInput(t *testing.T) {
	tests := []PageWindowSpec{
		{Current: 0, Total: 5},
		{Current: 6, Total: 5},
		{Current: 1, Total: 0},
		{Current: -1, Total: -1},
	}
	for _, in := range tests {
		_, err := ComputeWindow(in, DefaultWindowSize)
		if !errors.Is(err, ErrPageOutOfRange) {
			t.Fatalf("%+v: expected ErrPageOutOfRange, got %v", in, err)
		}
		var rangeErr *PageRangeError
		if !errors.As(err, &rangeErr) || rangeErr.Current != in.Current || rangeErr.Total != in.Total {
			t.Fatalf("%+v: expected PageRangeError with input, got %v", in, err)
		}
	}
}

func TestPageMarkerJSON(t *testing.T) {
	out, err := json.Marshal([]PageMarker{{Page: 1}, {Ellipsis: true}, {Page: 9}})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := `[{"page":1},{"ellipsis":true},{"page":9}]`
	if string(out) != want {
		t.Fatalf("expected %s, got %s", want, out)
	}
}
