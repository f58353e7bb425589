package types

// ItemFilter narrows an already-loaded page of items or listings.
// Zero values match everything.
type ItemFilter struct {
	Team   Team
	Rarity Rarity
}

// Active reports whether any constraint is set.
func (f ItemFilter) Active() bool {
	return f.Team != TeamUnknown || f.Rarity != RarityUnknown
}

// Match reports whether it satisfies the filter.
func (f ItemFilter) Match(it Item) bool {
	if f.Team != TeamUnknown && it.TeamID() != f.Team {
		return false
	}
	if f.Rarity != RarityUnknown && it.Rarity != f.Rarity {
		return false
	}
	return true
}

// ApplyItemFilter returns the items matching f.
func ApplyItemFilter(in []Item, f ItemFilter) []Item {
	if len(in) == 0 {
		return nil
	}
	if !f.Active() {
		return append([]Item(nil), in...)
	}

	out := make([]Item, 0, len(in))
	for _, it := range in {
		if f.Match(it) {
			out = append(out, it)
		}
	}
	return out
}

// ApplyListingFilter returns the listings whose item matches f.
func ApplyListingFilter(in []Listing, f ItemFilter) []Listing {
	if len(in) == 0 {
		return nil
	}
	if !f.Active() {
		return append([]Listing(nil), in...)
	}

	out := make([]Listing, 0, len(in))
	for _, l := range in {
		if f.Match(l.Item) {
			out = append(out, l)
		}
	}
	return out
}
