package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"showmarket/api"
	"showmarket/types"
)

// ListingSummaryResponse is the body of /api/listing/summary.
type ListingSummaryResponse struct {
	ListingName string `json:"listing_name"`
	types.PriceSummary
	InsufficientData bool `json:"insufficient_data"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleCaptains(w http.ResponseWriter, r *http.Request) {
	q, err := types.ParseCaptainsQuery(r.URL.Query())
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	page, err := s.catalog.Captains(r.Context(), q)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeJSON(w, page)
}

func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	q, err := types.ParseItemsQuery(r.URL.Query())
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	page, err := s.catalog.Items(r.Context(), q)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeJSON(w, page)
}

func (s *Server) handleItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r.URL.Query())
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	item, err := s.catalog.Item(r.Context(), id)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeJSON(w, item)
}

func (s *Server) handleListings(w http.ResponseWriter, r *http.Request) {
	q, err := types.ParseListingsQuery(r.URL.Query())
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	page, err := s.catalog.Listings(r.Context(), q)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeJSON(w, page)
}

func (s *Server) handleListing(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r.URL.Query())
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	listing, err := s.catalog.Listing(r.Context(), id)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeJSON(w, listing)
}

func (s *Server) handleListingSummary(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r.URL.Query())
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	listing, err := s.catalog.Listing(r.Context(), id)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	summary, err := types.Summarize(listing.PriceHistory)
	if err != nil {
		s.writeFailure(w, r, fmt.Errorf("summarize %s: %w", listing.ListingName, err))
		return
	}
	writeJSON(w, ListingSummaryResponse{
		ListingName:      listing.ListingName,
		PriceSummary:     summary,
		InsufficientData: !summary.Sufficient(),
	})
}

func (s *Server) handlePager(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()
	current, err := intParam(v, "page", 1)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	total, err := intParam(v, "total_pages", 0)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	window, err := intParam(v, "window", s.opts.WindowSize)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}

	plan, err := types.ComputeWindow(types.PageWindowSpec{Current: current, Total: total}, window)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeJSON(w, plan)
}

func uuidParam(v url.Values) (string, error) {
	raw := strings.TrimSpace(v.Get("uuid"))
	if raw == "" {
		return "", &types.QueryError{Param: "uuid", Value: raw, Err: errors.New("required")}
	}
	return api.NormalizeUUID(raw)
}

func intParam(v url.Values, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(v.Get(name))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &types.QueryError{Param: name, Value: raw, Err: err}
	}
	return n, nil
}

// statusFor maps a handler error to its response status.
func statusFor(err error) int {
	var queryErr *types.QueryError
	if errors.As(err, &queryErr) || errors.Is(err, api.ErrInvalidUUID) || errors.Is(err, types.ErrPageOutOfRange) {
		return http.StatusBadRequest
	}
	switch api.ClassifyError(err) {
	case api.ErrorTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

func (s *Server) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	if api.ClassifyError(err) == api.ErrorCanceled && r.Context().Err() != nil {
		s.logger.Debug("client went away", "path", r.URL.Path)
		return
	}
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Warn("upstream failure", "path", r.URL.Path, "kind", api.ClassifyError(err), "err", err)
	}
	writeError(w, status, err.Error())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
