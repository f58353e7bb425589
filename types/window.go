package types

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DefaultWindowSize is the page count at or below which every page is shown.
const DefaultWindowSize = 5

// ErrPageOutOfRange marks a page selector request outside [1, total].
var ErrPageOutOfRange = errors.New("page out of range")

// PageRangeError reports an invalid current/total pair.
type PageRangeError struct {
	Current int
	Total   int
}

func (e *PageRangeError) Error() string {
	return fmt.Sprintf("page %d of %d: %v", e.Current, e.Total, ErrPageOutOfRange)
}

func (e *PageRangeError) Unwrap() error {
	return ErrPageOutOfRange
}

// PageWindowSpec is the input to ComputeWindow.
type PageWindowSpec struct {
	Current int
	Total   int
}

// Validate checks 1 <= Current <= Total.
func (s PageWindowSpec) Validate() error {
	if s.Total < 1 || s.Current < 1 || s.Current > s.Total {
		return &PageRangeError{Current: s.Current, Total: s.Total}
	}
	return nil
}

// PageMarker is one entry of a page selector: a page number or an ellipsis.
type PageMarker struct {
	Page     int
	Ellipsis bool
}

func (p PageMarker) MarshalJSON() ([]byte, error) {
	if p.Ellipsis {
		return []byte(`{"ellipsis":true}`), nil
	}
	return json.Marshal(struct {
		Page int `json:"page"`
	}{Page: p.Page})
}

// ComputeWindow returns the page markers to show around w.Current.
// When Total fits in windowSize every page is listed. Otherwise the plan is
// page 1, the neighbours of Current, and Total, with an ellipsis wherever two
// consecutive numbers are not adjacent. windowSize < 1 uses DefaultWindowSize.
func ComputeWindow(w PageWindowSpec, windowSize int) ([]PageMarker, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if windowSize < 1 {
		windowSize = DefaultWindowSize
	}

	if w.Total <= windowSize {
		out := make([]PageMarker, 0, w.Total)
		for p := 1; p <= w.Total; p++ {
			out = append(out, PageMarker{Page: p})
		}
		return out, nil
	}

	lo := max(1, w.Current-1)
	hi := min(w.Total, w.Current+1)

	pages := make([]int, 0, 5)
	if lo > 1 {
		pages = append(pages, 1)
	}
	for p := lo; p <= hi; p++ {
		pages = append(pages, p)
	}
	if hi < w.Total {
		pages = append(pages, w.Total)
	}

	out := make([]PageMarker, 0, len(pages)+2)
	for i, p := range pages {
		if i > 0 && p-pages[i-1] > 1 {
			out = append(out, PageMarker{Ellipsis: true})
		}
		out = append(out, PageMarker{Page: p})
	}
	return out, nil
}

// Pages returns only the numeric entries of a plan.
func Pages(plan []PageMarker) []int {
	out := make([]int, 0, len(plan))
	for _, m := range plan {
		if !m.Ellipsis {
			out = append(out, m.Page)
		}
	}
	return out
}
