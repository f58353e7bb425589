package types

import "strings"

// Team identifies an MLB club.
type Team int

const (
	TeamUnknown Team = iota
	TeamDiamondbacks
	TeamBraves
	TeamOrioles
	TeamRedSox
	TeamCubs
	TeamWhiteSox
	TeamReds
	TeamGuardians
	TeamRockies
	TeamTigers
	TeamAstros
	TeamRoyals
	TeamAngels
	TeamDodgers
	TeamMarlins
	TeamBrewers
	TeamTwins
	TeamMets
	TeamYankees
	TeamAthletics
	TeamPhillies
	TeamPirates
	TeamPadres
	TeamGiants
	TeamMariners
	TeamCardinals
	TeamRays
	TeamRangers
	TeamBlueJays
	TeamNationals
)

// TeamInfo is one row of the team lookup table.
type TeamInfo struct {
	Name      string
	City      string
	Abbrev    string
	Primary   string
	Secondary string
}

var teamTable = map[Team]TeamInfo{
	TeamDiamondbacks: {Name: "D-backs", City: "Arizona", Abbrev: "ARI", Primary: "#A71930", Secondary: "#E3D4AD"},
	TeamBraves:       {Name: "Braves", City: "Atlanta", Abbrev: "ATL", Primary: "#CE1141", Secondary: "#13274F"},
	TeamOrioles:      {Name: "Orioles", City: "Baltimore", Abbrev: "BAL", Primary: "#DF4601", Secondary: "#000000"},
	TeamRedSox:       {Name: "Red Sox", City: "Boston", Abbrev: "BOS", Primary: "#BD3039", Secondary: "#0C2340"},
	TeamCubs:         {Name: "Cubs", City: "Chicago", Abbrev: "CHC", Primary: "#0E3386", Secondary: "#CC3433"},
	TeamWhiteSox:     {Name: "White Sox", City: "Chicago", Abbrev: "CWS", Primary: "#27251F", Secondary: "#C4CED4"},
	TeamReds:         {Name: "Reds", City: "Cincinnati", Abbrev: "CIN", Primary: "#C6011F", Secondary: "#000000"},
	TeamGuardians:    {Name: "Guardians", City: "Cleveland", Abbrev: "CLE", Primary: "#0C2340", Secondary: "#E31937"},
	TeamRockies:      {Name: "Rockies", City: "Colorado", Abbrev: "COL", Primary: "#33006F", Secondary: "#C4CED4"},
	TeamTigers:       {Name: "Tigers", City: "Detroit", Abbrev: "DET", Primary: "#0C2340", Secondary: "#FA4616"},
	TeamAstros:       {Name: "Astros", City: "Houston", Abbrev: "HOU", Primary: "#EB6E1F", Secondary: "#002D62"},
	TeamRoyals:       {Name: "Royals", City: "Kansas City", Abbrev: "KC", Primary: "#004687", Secondary: "#C09A5B"},
	TeamAngels:       {Name: "Angels", City: "Los Angeles", Abbrev: "LAA", Primary: "#BA0021", Secondary: "#003263"},
	TeamDodgers:      {Name: "Dodgers", City: "Los Angeles", Abbrev: "LAD", Primary: "#005A9C", Secondary: "#EF3E42"},
	TeamMarlins:      {Name: "Marlins", City: "Miami", Abbrev: "MIA", Primary: "#00A3E0", Secondary: "#EF3340"},
	TeamBrewers:      {Name: "Brewers", City: "Milwaukee", Abbrev: "MIL", Primary: "#12284B", Secondary: "#FFC52F"},
	TeamTwins:        {Name: "Twins", City: "Minnesota", Abbrev: "MIN", Primary: "#002B5C", Secondary: "#D31145"},
	TeamMets:         {Name: "Mets", City: "New York", Abbrev: "NYM", Primary: "#002D72", Secondary: "#FF5910"},
	TeamYankees:      {Name: "Yankees", City: "New York", Abbrev: "NYY", Primary: "#003087", Secondary: "#E4002B"},
	TeamAthletics:    {Name: "Athletics", City: "Oakland", Abbrev: "OAK", Primary: "#003831", Secondary: "#EFB21E"},
	TeamPhillies:     {Name: "Phillies", City: "Philadelphia", Abbrev: "PHI", Primary: "#E81828", Secondary: "#002D72"},
	TeamPirates:      {Name: "Pirates", City: "Pittsburgh", Abbrev: "PIT", Primary: "#FDB827", Secondary: "#27251F"},
	TeamPadres:       {Name: "Padres", City: "San Diego", Abbrev: "SD", Primary: "#2F241D", Secondary: "#FFC425"},
	TeamGiants:       {Name: "Giants", City: "San Francisco", Abbrev: "SF", Primary: "#FD5A1E", Secondary: "#27251F"},
	TeamMariners:     {Name: "Mariners", City: "Seattle", Abbrev: "SEA", Primary: "#0C2C56", Secondary: "#005C5C"},
	TeamCardinals:    {Name: "Cardinals", City: "St. Louis", Abbrev: "STL", Primary: "#C41E3A", Secondary: "#0C2340"},
	TeamRays:         {Name: "Rays", City: "Tampa Bay", Abbrev: "TB", Primary: "#092C5C", Secondary: "#8FBCE6"},
	TeamRangers:      {Name: "Rangers", City: "Texas", Abbrev: "TEX", Primary: "#003278", Secondary: "#C0111F"},
	TeamBlueJays:     {Name: "Blue Jays", City: "Toronto", Abbrev: "TOR", Primary: "#134A8E", Secondary: "#1D2D5C"},
	TeamNationals:    {Name: "Nationals", City: "Washington", Abbrev: "WSH", Primary: "#AB0003", Secondary: "#14225A"},
}

var teamLookup = func() map[string]Team {
	out := make(map[string]Team, len(teamTable)*4)
	for team, info := range teamTable {
		out[teamKey(info.Name)] = team
		out[teamKey(info.Abbrev)] = team
		out[teamKey(info.City+" "+info.Name)] = team
	}
	// Alternate spellings seen in upstream payloads.
	out[teamKey("Diamondbacks")] = TeamDiamondbacks
	out[teamKey("Arizona Diamondbacks")] = TeamDiamondbacks
	out[teamKey("AZ")] = TeamDiamondbacks
	out[teamKey("CHW")] = TeamWhiteSox
	out[teamKey("WSN")] = TeamNationals
	out[teamKey("Indians")] = TeamGuardians
	out[teamKey("A's")] = TeamAthletics
	return out
}()

func teamKey(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LookupTeam matches a club by name, abbreviation, or "City Name".
func LookupTeam(raw string) Team {
	key := teamKey(raw)
	if key == "" {
		return TeamUnknown
	}
	return teamLookup[key]
}

// Teams returns every known club in table order.
func Teams() []Team {
	out := make([]Team, 0, len(teamTable))
	for t := TeamDiamondbacks; t <= TeamNationals; t++ {
		out = append(out, t)
	}
	return out
}

// Info returns the table row; ok is false for TeamUnknown.
func (t Team) Info() (TeamInfo, bool) {
	info, ok := teamTable[t]
	return info, ok
}

func (t Team) String() string {
	if info, ok := teamTable[t]; ok {
		return info.Name
	}
	return ""
}

// FullName returns "City Name".
func (t Team) FullName() string {
	if info, ok := teamTable[t]; ok {
		return info.City + " " + info.Name
	}
	return ""
}
