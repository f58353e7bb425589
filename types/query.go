package types

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Collection names one of the browsable resource collections.
type Collection int

const (
	CollectionCaptains Collection = iota
	CollectionItems
	CollectionListings
)

var collectionLabels = map[Collection]string{
	CollectionCaptains: "Captains",
	CollectionItems:    "Items",
	CollectionListings: "Marketplace",
}

func Collections() []Collection {
	return []Collection{CollectionCaptains, CollectionItems, CollectionListings}
}

func (c Collection) Label() string {
	return collectionLabels[c]
}

// ItemType is the upstream resource type filter.
type ItemType string

const (
	ItemTypeMLBCard     ItemType = "mlb_card"
	ItemTypeStadium     ItemType = "stadium"
	ItemTypeEquipment   ItemType = "equipment"
	ItemTypeSponsorship ItemType = "sponsorship"
	ItemTypeUnlockable  ItemType = "unlockable"
)

var itemTypes = []ItemType{ItemTypeMLBCard, ItemTypeStadium, ItemTypeEquipment, ItemTypeSponsorship, ItemTypeUnlockable}

var itemTypeLabels = map[ItemType]string{
	ItemTypeMLBCard:     "MLB Card",
	ItemTypeStadium:     "Stadium",
	ItemTypeEquipment:   "Equipment",
	ItemTypeSponsorship: "Sponsorship",
	ItemTypeUnlockable:  "Unlockable",
}

func ItemTypes() []ItemType {
	return append([]ItemType(nil), itemTypes...)
}

// ParseItemType resolves a type; empty means mlb_card.
func ParseItemType(raw string) (ItemType, error) {
	key := ItemType(strings.ToLower(strings.TrimSpace(raw)))
	if key == "" {
		return ItemTypeMLBCard, nil
	}
	if _, ok := itemTypeLabels[key]; ok {
		return key, nil
	}
	return ItemTypeMLBCard, fmt.Errorf("unknown type %q", raw)
}

func (t ItemType) Label() string {
	if label, ok := itemTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

func (t ItemType) Next() ItemType {
	for i, candidate := range itemTypes {
		if candidate == t {
			return itemTypes[(i+1)%len(itemTypes)]
		}
	}
	return ItemTypeMLBCard
}

// QueryError reports a request parameter that could not be parsed.
type QueryError struct {
	Param string
	Value string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Param, e.Value, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Paging is the page cursor of one collection.
type Paging struct {
	Page int
}

// Current returns the page, treating unset as page 1.
func (p Paging) Current() int {
	if p.Page < 1 {
		return 1
	}
	return p.Page
}

// Next advances one page, stopping at total.
func (p Paging) Next(total int) Paging {
	return p.Goto(p.Current()+1, total)
}

// Prev steps back one page, stopping at 1.
func (p Paging) Prev() Paging {
	if p.Current() <= 1 {
		return Paging{Page: 1}
	}
	return Paging{Page: p.Current() - 1}
}

// Goto jumps to page clamped to [1, total]. total < 1 is treated as unknown.
func (p Paging) Goto(page, total int) Paging {
	if total >= 1 && page > total {
		page = total
	}
	if page < 1 {
		page = 1
	}
	return Paging{Page: page}
}

// CaptainsQuery is the state of the captains collection.
type CaptainsQuery struct {
	Paging
}

func (q CaptainsQuery) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Current()))
	return v
}

// ItemsQuery is the state of the items collection.
type ItemsQuery struct {
	Paging
	Type ItemType
}

// NewItemsQuery returns the default items state.
func NewItemsQuery() ItemsQuery {
	return ItemsQuery{Paging: Paging{Page: 1}, Type: ItemTypeMLBCard}
}

// WithType switches type and resets to the first page.
func (q ItemsQuery) WithType(t ItemType) ItemsQuery {
	q.Type = t
	q.Paging = Paging{Page: 1}
	return q
}

func (q ItemsQuery) Values() url.Values {
	v := url.Values{}
	v.Set("type", string(orDefaultType(q.Type)))
	v.Set("page", strconv.Itoa(q.Current()))
	return v
}

// ListingsQuery is the state of the marketplace collection.
type ListingsQuery struct {
	Paging
	Type   ItemType
	Sort   ListingSort
	Order  SortOrder
	Rarity Rarity
}

// NewListingsQuery returns the default marketplace state.
func NewListingsQuery() ListingsQuery {
	return ListingsQuery{
		Paging: Paging{Page: 1},
		Type:   ItemTypeMLBCard,
		Sort:   ListingSortRank,
		Order:  SortOrderDesc,
		Rarity: RarityDiamond,
	}
}

func (q ListingsQuery) WithType(t ItemType) ListingsQuery {
	q.Type = t
	q.Paging = Paging{Page: 1}
	return q
}

func (q ListingsQuery) WithSort(s ListingSort) ListingsQuery {
	q.Sort = s
	q.Paging = Paging{Page: 1}
	return q
}

func (q ListingsQuery) WithOrder(o SortOrder) ListingsQuery {
	q.Order = o
	q.Paging = Paging{Page: 1}
	return q
}

func (q ListingsQuery) WithRarity(r Rarity) ListingsQuery {
	q.Rarity = r
	q.Paging = Paging{Page: 1}
	return q
}

// Values encodes the query; RarityUnknown (any) omits the rarity param.
func (q ListingsQuery) Values() url.Values {
	v := url.Values{}
	v.Set("type", string(orDefaultType(q.Type)))
	v.Set("page", strconv.Itoa(q.Current()))
	sortKey := q.Sort
	if sortKey == "" {
		sortKey = ListingSortRank
	}
	v.Set("sort", string(sortKey))
	order := q.Order
	if order == "" {
		order = SortOrderDesc
	}
	v.Set("order", string(order))
	if q.Rarity != RarityUnknown {
		v.Set("rarity", q.Rarity.String())
	}
	return v
}

// ParseCaptainsQuery decodes proxy request parameters.
func ParseCaptainsQuery(v url.Values) (CaptainsQuery, error) {
	page, err := parsePageParam(v)
	if err != nil {
		return CaptainsQuery{}, err
	}
	return CaptainsQuery{Paging: Paging{Page: page}}, nil
}

func ParseItemsQuery(v url.Values) (ItemsQuery, error) {
	page, err := parsePageParam(v)
	if err != nil {
		return ItemsQuery{}, err
	}
	t, err := ParseItemType(v.Get("type"))
	if err != nil {
		return ItemsQuery{}, &QueryError{Param: "type", Value: v.Get("type"), Err: err}
	}
	return ItemsQuery{Paging: Paging{Page: page}, Type: t}, nil
}

func ParseListingsQuery(v url.Values) (ListingsQuery, error) {
	page, err := parsePageParam(v)
	if err != nil {
		return ListingsQuery{}, err
	}
	q := NewListingsQuery()
	q.Page = page

	if q.Type, err = ParseItemType(v.Get("type")); err != nil {
		return ListingsQuery{}, &QueryError{Param: "type", Value: v.Get("type"), Err: err}
	}
	if q.Sort, err = ParseListingSort(v.Get("sort")); err != nil {
		return ListingsQuery{}, &QueryError{Param: "sort", Value: v.Get("sort"), Err: err}
	}
	if q.Order, err = ParseSortOrder(v.Get("order")); err != nil {
		return ListingsQuery{}, &QueryError{Param: "order", Value: v.Get("order"), Err: err}
	}
	// A missing rarity keeps the diamond default; "any" must be explicit.
	if raw := v.Get("rarity"); strings.TrimSpace(raw) != "" {
		if q.Rarity, err = ParseRarity(raw); err != nil {
			return ListingsQuery{}, &QueryError{Param: "rarity", Value: raw, Err: err}
		}
	}
	return q, nil
}

func parsePageParam(v url.Values) (int, error) {
	raw := strings.TrimSpace(v.Get("page"))
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &QueryError{Param: "page", Value: raw, Err: err}
	}
	if page < 1 {
		return 0, &QueryError{Param: "page", Value: raw, Err: fmt.Errorf("must be >= 1")}
	}
	return page, nil
}

func orDefaultType(t ItemType) ItemType {
	if t == "" {
		return ItemTypeMLBCard
	}
	return t
}
