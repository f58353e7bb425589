package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"showmarket/api"
	"showmarket/types"
)

const judgeUUID = "a03aad508e99fc341087a8b9ec12c053"

type stubCatalog struct {
	listingsQuery types.ListingsQuery
	listing       types.Listing
	err           error
	calls         int
}

func (s *stubCatalog) Captains(ctx context.Context, q types.CaptainsQuery) (types.CaptainPage, error) {
	s.calls++
	if s.err != nil {
		return types.CaptainPage{}, s.err
	}
	return types.CaptainPage{
		PageInfo: types.PageInfo{Page: q.Current(), TotalPages: 3},
		Captains: []types.Captain{{Name: "Ohtani Captain"}},
	}, nil
}

func (s *stubCatalog) Items(ctx context.Context, q types.ItemsQuery) (types.ItemPage, error) {
	s.calls++
	return types.ItemPage{PageInfo: types.PageInfo{Page: q.Current()}}, s.err
}

func (s *stubCatalog) Item(ctx context.Context, id string) (types.ItemDetail, error) {
	s.calls++
	return types.ItemDetail{UUID: id, Name: "Aaron Judge"}, s.err
}

func (s *stubCatalog) Listings(ctx context.Context, q types.ListingsQuery) (types.ListingPage, error) {
	s.calls++
	s.listingsQuery = q
	return types.ListingPage{PageInfo: types.PageInfo{Page: q.Current(), TotalPages: 10}}, s.err
}

func (s *stubCatalog) Listing(ctx context.Context, id string) (types.Listing, error) {
	s.calls++
	return s.listing, s.err
}

func serve(t *testing.T, catalog api.Catalog, target string) *httptest.ResponseRecorder {
	t.Helper()
	srv := New(catalog, nil, Options{WindowSize: 5})
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body["error"]
}

func TestHealthz(t *testing.T) {
	rec := serve(t, &stubCatalog{}, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("expected ok status, got %s", rec.Body.String())
	}
}

func TestCaptainsReturnsJSON(t *testing.T) {
	rec := serve(t, &stubCatalog{}, "/api/captains?page=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %q", ct)
	}
	var page types.CaptainPage
	if err := json.NewDecoder(rec.Body).Decode(&page); err != nil {
		t.Fatalf("decode captains: %v", err)
	}
	if page.Page != 2 || len(page.Captains) != 1 {
		t.Fatalf("unexpected captains page: %+v", page)
	}
}

func TestListingsThreadsQuery(t *testing.T) {
	stub := &stubCatalog{}
	rec := serve(t, stub, "/api/listings?page=3&sort=best_sell_price&order=asc&rarity=gold")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	q := stub.listingsQuery
	if q.Current() != 3 || q.Sort != types.ListingSortSellPrice || q.Order != types.SortOrderAsc || q.Rarity != types.RarityGold {
		t.Fatalf("unexpected query passed to catalog: %+v", q)
	}
}

func TestListingsDefaultsToDiamond(t *testing.T) {
	stub := &stubCatalog{}
	rec := serve(t, stub, "/api/listings")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if stub.listingsQuery.Rarity != types.RarityDiamond {
		t.Fatalf("expected diamond rarity by default, got %v", stub.listingsQuery.Rarity)
	}
}

func TestBadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "non-numeric page", target: "/api/captains?page=two"},
		{name: "zero page", target: "/api/items?page=0"},
		{name: "unknown type", target: "/api/items?type=baseball"},
		{name: "unknown sort", target: "/api/listings?sort=hype"},
		{name: "unknown rarity", target: "/api/listings?rarity=mythic"},
		{name: "missing uuid", target: "/api/item"},
		{name: "malformed uuid", target: "/api/listing?uuid=not-a-uuid"},
		{name: "page past total", target: "/api/pager?page=9&total_pages=4"},
		{name: "zero total", target: "/api/pager?page=1&total_pages=0"},
		{name: "non-numeric window", target: "/api/pager?page=1&total_pages=4&window=x"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubCatalog{}
			rec := serve(t, stub, tc.target)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if msg := decodeError(t, rec); msg == "" {
				t.Fatal("expected error message")
			}
			if stub.calls != 0 {
				t.Fatalf("expected no upstream calls, got %d", stub.calls)
			}
		})
	}
}

func TestUpstreamFailureStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "upstream 500", err: &api.HTTPStatusError{Endpoint: "listings", Status: 500, Body: "boom"}, want: http.StatusBadGateway},
		{name: "upstream 404", err: &api.HTTPStatusError{Endpoint: "listings", Status: 404}, want: http.StatusBadGateway},
		{name: "malformed data", err: types.ErrMalformedEntry, want: http.StatusBadGateway},
		{name: "transport", err: errors.New("connection refused"), want: http.StatusBadGateway},
		{name: "timeout", err: context.DeadlineExceeded, want: http.StatusGatewayTimeout},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(t, &stubCatalog{err: tc.err}, "/api/listings")
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestListingSummary(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 4, d, 0, 0, 0, 0, time.UTC) }
	stub := &stubCatalog{listing: types.Listing{
		ListingName: "Aaron Judge",
		PriceHistory: []types.PriceHistoryEntry{
			{Date: day(3), BestBuyPrice: 100, BestSellPrice: 120},
			{Date: day(2), BestBuyPrice: 90, BestSellPrice: 110},
			{Date: day(1), BestBuyPrice: 80, BestSellPrice: 100},
		},
	}}

	rec := serve(t, stub, "/api/listing/summary?uuid="+judgeUUID)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		ListingName      string `json:"listing_name"`
		Samples          int    `json:"samples"`
		SpanDays         int    `json:"span_days"`
		InsufficientData bool   `json:"insufficient_data"`
		Sell             struct {
			Average float64 `json:"average"`
			Trend   string  `json:"trend"`
		} `json:"sell"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if body.InsufficientData || body.Samples != 3 || body.SpanDays != 2 {
		t.Fatalf("unexpected summary: %+v", body)
	}
	if body.Sell.Average != 110 || body.Sell.Trend != "up" {
		t.Fatalf("expected sell average 110 trending up, got %+v", body.Sell)
	}
}

func TestListingSummaryInsufficient(t *testing.T) {
	stub := &stubCatalog{listing: types.Listing{ListingName: "Rookie"}}
	rec := serve(t, stub, "/api/listing/summary?uuid="+judgeUUID)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"insufficient_data":true`) {
		t.Fatalf("expected insufficient_data flag, got %s", rec.Body.String())
	}
}

func TestListingSummaryMalformedHistory(t *testing.T) {
	stub := &stubCatalog{listing: types.Listing{
		ListingName:  "Broken",
		PriceHistory: []types.PriceHistoryEntry{{BestBuyPrice: 1, BestSellPrice: 2}, {BestBuyPrice: 1, BestSellPrice: 2}},
	}}
	rec := serve(t, stub, "/api/listing/summary?uuid="+judgeUUID)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestPager(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{name: "fits window", target: "/api/pager?page=2&total_pages=3", want: `[{"page":1},{"page":2},{"page":3}]`},
		{name: "middle", target: "/api/pager?page=6&total_pages=12", want: `[{"page":1},{"ellipsis":true},{"page":5},{"page":6},{"page":7},{"ellipsis":true},{"page":12}]`},
		{name: "custom window", target: "/api/pager?page=1&total_pages=7&window=10", want: `[{"page":1},{"page":2},{"page":3},{"page":4},{"page":5},{"page":6},{"page":7}]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(t, &stubCatalog{}, tc.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
			}
			if got := strings.TrimSpace(rec.Body.String()); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	srv := New(&stubCatalog{}, nil, Options{AllowedOrigin: "https://example.test"})

	req := httptest.NewRequest(http.MethodOptions, "/api/listings", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 preflight, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://example.test" {
		t.Fatalf("expected configured origin, got %q", got)
	}
}

func TestRejectsNonGet(t *testing.T) {
	srv := New(&stubCatalog{}, nil, Options{})
	req := httptest.NewRequest(http.MethodPost, "/api/listings", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := New(&stubCatalog{}, nil, Options{Addr: "127.0.0.1:0"})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("expected Run to return after cancel")
	}
}
