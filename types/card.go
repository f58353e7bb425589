package types

// Captain is a team-builder captain card with its tiered boosts.
type Captain struct {
	UUID            string  `json:"uuid"`
	Img             string  `json:"img"`
	BakedImg        string  `json:"baked_img"`
	Name            string  `json:"name"`
	DisplayPosition string  `json:"display_position"`
	Team            string  `json:"team"`
	OVR             int     `json:"ovr"`
	AbilityName     string  `json:"ability_name"`
	AbilityDesc     string  `json:"ability_desc"`
	UpdateDate      string  `json:"update_date"`
	Boosts          []Boost `json:"boosts"`
}

type Boost struct {
	Tier        string      `json:"tier"`
	Description string      `json:"description"`
	Attributes  []Attribute `json:"attributes"`
}

type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Item is the summary form of a collectible returned by paged endpoints.
type Item struct {
	UUID            string `json:"uuid"`
	Type            string `json:"type"`
	Img             string `json:"img"`
	BakedImg        string `json:"baked_img"`
	Name            string `json:"name"`
	Rarity          Rarity `json:"rarity"`
	Team            string `json:"team"`
	TeamShortName   string `json:"team_short_name"`
	OVR             int    `json:"ovr"`
	Series          string `json:"series"`
	SeriesYear      int    `json:"series_year"`
	DisplayPosition string `json:"display_position"`
	HasAugment      bool   `json:"has_augment"`
	AugmentText     string `json:"augment_text"`
	NewRank         int    `json:"new_rank"`
	HasRankChange   bool   `json:"has_rank_change"`
	Event           bool   `json:"event"`
	SetName         string `json:"set_name"`
	IsLiveSet       bool   `json:"is_live_set"`
}

// TeamID resolves the free-form upstream team fields through the team table.
func (it Item) TeamID() Team {
	if t := LookupTeam(it.TeamShortName); t != TeamUnknown {
		return t
	}
	return LookupTeam(it.Team)
}

type Pitch struct {
	Name     string `json:"name"`
	Speed    int    `json:"speed"`
	Control  int    `json:"control"`
	Movement int    `json:"movement"`
}

type Quirk struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Img         string `json:"img"`
}

// ItemDetail is the full record returned by the single-item endpoint.
// Nullable upstream fields decode to their zero value.
type ItemDetail struct {
	UUID                      string  `json:"uuid"`
	Type                      string  `json:"type"`
	Img                       string  `json:"img"`
	BakedImg                  string  `json:"baked_img"`
	Name                      string  `json:"name"`
	Rarity                    Rarity  `json:"rarity"`
	Team                      string  `json:"team"`
	TeamShortName             string  `json:"team_short_name"`
	OVR                       int     `json:"ovr"`
	Series                    string  `json:"series"`
	SeriesYear                int     `json:"series_year"`
	DisplayPosition           string  `json:"display_position"`
	DisplaySecondaryPositions string  `json:"display_secondary_positions"`
	JerseyNumber              string  `json:"jersey_number"`
	Age                       int     `json:"age"`
	BatHand                   string  `json:"bat_hand"`
	ThrowHand                 string  `json:"throw_hand"`
	Weight                    string  `json:"weight"`
	Height                    string  `json:"height"`
	Born                      string  `json:"born"`
	IsHitter                  bool    `json:"is_hitter"`
	IsSellable                bool    `json:"is_sellable"`
	Stamina                   int     `json:"stamina"`
	PitchingClutch            int     `json:"pitching_clutch"`
	HitsPerBF                 int     `json:"hits_per_bf"`
	KPerBF                    int     `json:"k_per_bf"`
	BBPerBF                   int     `json:"bb_per_bf"`
	HRPerBF                   int     `json:"hr_per_bf"`
	PitchVelocity             int     `json:"pitch_velocity"`
	PitchControl              int     `json:"pitch_control"`
	PitchMovement             int     `json:"pitch_movement"`
	ContactLeft               int     `json:"contact_left"`
	ContactRight              int     `json:"contact_right"`
	PowerLeft                 int     `json:"power_left"`
	PowerRight                int     `json:"power_right"`
	PlateVision               int     `json:"plate_vision"`
	PlateDiscipline           int     `json:"plate_discipline"`
	BattingClutch             int     `json:"batting_clutch"`
	BuntingAbility            int     `json:"bunting_ability"`
	DragBuntingAbility        int     `json:"drag_bunting_ability"`
	HittingDurability         int     `json:"hitting_durability"`
	FieldingDurability        int     `json:"fielding_durability"`
	FieldingAbility           int     `json:"fielding_ability"`
	ArmStrength               int     `json:"arm_strength"`
	ArmAccuracy               int     `json:"arm_accuracy"`
	ReactionTime              int     `json:"reaction_time"`
	Blocking                  int     `json:"blocking"`
	Speed                     int     `json:"speed"`
	BaserunningAbility        int     `json:"baserunning_ability"`
	BaserunningAggression     int     `json:"baserunning_aggression"`
	Pitches                   []Pitch `json:"pitches"`
	Quirks                    []Quirk `json:"quirks"`
	HasAugment                bool    `json:"has_augment"`
	AugmentText               string  `json:"augment_text"`
	Event                     bool    `json:"event"`
	SetName                   string  `json:"set_name"`
	IsLiveSet                 bool    `json:"is_live_set"`
}

// IsPlayerCard reports whether the detail carries player ratings.
func (d ItemDetail) IsPlayerCard() bool {
	return d.Type == string(ItemTypeMLBCard)
}

// TeamID resolves the team through the team table.
func (d ItemDetail) TeamID() Team {
	if t := LookupTeam(d.TeamShortName); t != TeamUnknown {
		return t
	}
	return LookupTeam(d.Team)
}
