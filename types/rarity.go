package types

import (
	"fmt"
	"strings"
)

// Rarity is the closed set of card rarities used by the marketplace.
type Rarity int

const (
	RarityUnknown Rarity = iota
	RarityCommon
	RarityBronze
	RaritySilver
	RarityGold
	RarityDiamond
)

type rarityInfo struct {
	Key   string
	Label string
}

var rarityTable = map[Rarity]rarityInfo{
	RarityCommon:  {Key: "common", Label: "Common"},
	RarityBronze:  {Key: "bronze", Label: "Bronze"},
	RaritySilver:  {Key: "silver", Label: "Silver"},
	RarityGold:    {Key: "gold", Label: "Gold"},
	RarityDiamond: {Key: "diamond", Label: "Diamond"},
}

var rarityByKey = func() map[string]Rarity {
	out := make(map[string]Rarity, len(rarityTable))
	for r, info := range rarityTable {
		out[info.Key] = r
	}
	return out
}()

// Rarities returns the known rarities from lowest to highest.
func Rarities() []Rarity {
	return []Rarity{RarityCommon, RarityBronze, RaritySilver, RarityGold, RarityDiamond}
}

// ParseRarity resolves a rarity key. Empty or "all" yields RarityUnknown,
// which callers treat as "any rarity".
func ParseRarity(raw string) (Rarity, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" || key == "all" || key == "any" {
		return RarityUnknown, nil
	}
	if r, ok := rarityByKey[key]; ok {
		return r, nil
	}
	return RarityUnknown, fmt.Errorf("unknown rarity %q", raw)
}

// String returns the wire key, or "" for RarityUnknown.
func (r Rarity) String() string {
	return rarityTable[r].Key
}

// Label returns the display name.
func (r Rarity) Label() string {
	if info, ok := rarityTable[r]; ok {
		return info.Label
	}
	return "Any"
}

// Next cycles through "any" and every known rarity.
func (r Rarity) Next() Rarity {
	if r >= RarityDiamond || r < RarityUnknown {
		return RarityUnknown
	}
	return r + 1
}

func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText is lenient: values the table doesn't know decode to RarityUnknown.
func (r *Rarity) UnmarshalText(text []byte) error {
	parsed, err := ParseRarity(string(text))
	if err != nil {
		*r = RarityUnknown
		return nil
	}
	*r = parsed
	return nil
}
