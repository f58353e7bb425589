package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"showmarket/types"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": {"application/json"}},
	}
}

func newTestClient(fn roundTripFunc) *Client {
	return NewClient("https://show.test/apis/", &http.Client{Transport: fn})
}

const judgeUUID = "a03aad508e99fc341087a8b9ec12c053"

func TestListingsBuildsQueryAndDecodesPage(t *testing.T) {
	var gotPath, gotQuery, gotAgent string
	client := NewClient("https://show.test/apis", &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			gotPath = req.URL.Path
			gotQuery = req.URL.RawQuery
			gotAgent = req.Header.Get("User-Agent")
			return jsonResponse(http.StatusOK, `{
				"page": 2, "per_page": 25, "total_pages": 9,
				"listings": [{
					"listing_name": "Aaron Judge",
					"best_sell_price": 465000,
					"best_buy_price": 440100,
					"item": {"uuid": "`+judgeUUID+`", "rarity": "diamond", "team_short_name": "NYY"}
				}]
			}`), nil
		}),
	}, WithUserAgent("showmarket-test"))

	q := types.NewListingsQuery().WithRarity(types.RarityDiamond).WithSort(types.ListingSortSellPrice)
	q.Page = 2

	page, err := client.Listings(context.Background(), q)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotPath != "/apis/listings.json" {
		t.Fatalf("expected listings path, got %q", gotPath)
	}
	if gotQuery != "order=desc&page=2&rarity=diamond&sort=best_sell_price&type=mlb_card" {
		t.Fatalf("unexpected query %q", gotQuery)
	}
	if gotAgent != "showmarket-test" {
		t.Fatalf("expected custom user agent, got %q", gotAgent)
	}
	if page.TotalPages != 9 || len(page.Listings) != 1 {
		t.Fatalf("unexpected page: %+v", page.PageInfo)
	}
	if page.Listings[0].Item.Rarity != types.RarityDiamond {
		t.Fatalf("expected diamond, got %v", page.Listings[0].Item.Rarity)
	}
}

func TestListingsOmitsRarityForAny(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		if req.URL.Query().Has("rarity") {
			t.Fatalf("expected no rarity param, got %q", req.URL.RawQuery)
		}
		return jsonResponse(http.StatusOK, `{"page":1,"total_pages":1,"listings":[]}`), nil
	})

	if _, err := client.Listings(context.Background(), types.NewListingsQuery().WithRarity(types.RarityUnknown)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestListingDecodesHistoryAgainstClock(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		if got := req.URL.Query().Get("uuid"); got != judgeUUID {
			t.Fatalf("expected normalized uuid, got %q", got)
		}
		return jsonResponse(http.StatusOK, `{
			"listing_name": "Aaron Judge",
			"best_sell_price": 120, "best_buy_price": 100,
			"price_history": [
				{"date": "01/02", "best_buy_price": 100, "best_sell_price": 120},
				{"date": "12/31", "best_buy_price": 90, "best_sell_price": 110}
			],
			"completed_orders": [{"date": "01/02/2025 10:00:00", "price": "1,250"}]
		}`), nil
	})
	client.now = func() time.Time { return time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC) }

	listing, err := client.Listing(context.Background(), "A03AAD50-8E99-FC34-1087-A8B9EC12C053")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := listing.PriceHistory[1].Date.Year(); got != 2024 {
		t.Fatalf("expected prior-year date, got %d", got)
	}
	if listing.CompletedOrders[0].Price != 1250 {
		t.Fatalf("expected comma-grouped price parsed, got %v", listing.CompletedOrders[0].Price)
	}
}

func TestItemRejectsInvalidUUIDBeforeRequest(t *testing.T) {
	var calls int32
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		atomic.AddInt32(&calls, 1)
		return jsonResponse(http.StatusOK, `{}`), nil
	})

	for _, id := range []string{"", "not-a-uuid", "a03aad508e99"} {
		_, err := client.Item(context.Background(), id)
		if !errors.Is(err, ErrInvalidUUID) {
			t.Fatalf("%q: expected ErrInvalidUUID, got %v", id, err)
		}
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatalf("expected no upstream calls, got %d", calls)
	}
}

func TestClientChecksHTTPStatus(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusTooManyRequests, "too many requests"), nil
	})

	_, err := client.Items(context.Background(), types.NewItemsQuery())
	var statusErr *HTTPStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *HTTPStatusError, got %v", err)
	}
	if statusErr.Endpoint != "items" || statusErr.Status != http.StatusTooManyRequests {
		t.Fatalf("unexpected status error: %+v", statusErr)
	}
	if ClassifyError(err) != ErrorRateLimit {
		t.Fatalf("expected rate_limit, got %s", ClassifyError(err))
	}
}

func TestClientReportsDecodeErrors(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"page": "one"`), nil
	})

	_, err := client.Captains(context.Background(), types.CaptainsQuery{})
	if err == nil {
		t.Fatal("expected decode error")
	}
	if ClassifyError(err) != ErrorDecode {
		t.Fatalf("expected decode kind, got %s (%v)", ClassifyError(err), err)
	}
}

func TestClientCoalescesIdenticalRequests(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return jsonResponse(http.StatusOK, `{"page":1,"total_pages":3,"captains":[{"name":"Ace"}]}`), nil
	})

	const callers = 5
	var wg sync.WaitGroup
	var started sync.WaitGroup
	errs := make(chan error, callers)
	started.Add(callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			started.Done()
			page, err := client.Captains(context.Background(), types.CaptainsQuery{})
			if err == nil && len(page.Captains) != 1 {
				err = errors.New("missing captains")
			}
			errs <- err
		}()
	}
	started.Wait()
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	if got := atomic.LoadInt32(&calls); got < 1 || got >= callers {
		t.Fatalf("expected coalesced upstream calls, got %d", got)
	}
}

func TestClientHonorsContextCancellation(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		<-block
		return jsonResponse(http.StatusOK, `{}`), nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Captains(ctx, types.CaptainsQuery{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if ClassifyError(err) != ErrorCanceled {
		t.Fatalf("expected canceled kind, got %s", ClassifyError(err))
	}
}

func TestNormalizeUUID(t *testing.T) {
	got, err := NormalizeUUID(" A03AAD508E99FC341087A8B9EC12C053 ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != judgeUUID {
		t.Fatalf("expected %s, got %s", judgeUUID, got)
	}
}
