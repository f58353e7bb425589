package api

import (
	_ "embed"
	"encoding/json"
	"math"
	"regexp"
	"sort"
	"strings"

	"showmarket/types"
)

const (
	maxResolveTokens     = 3
	minResolveScore      = 0.34
	minResolveSeparation = 0.08
	maxSuggestions       = 6
)

var (
	//go:embed data/team_aliases.json
	embeddedTeamAliases []byte

	tokenPattern = regexp.MustCompile(`[a-z0-9]+`)
	stopWords    = map[string]struct{}{
		"the": {}, "and": {}, "of": {},
	}
)

// TeamAliases is one catalog row: a club abbreviation and its nicknames.
type TeamAliases struct {
	Team     string   `json:"team"`
	Division string   `json:"division"`
	Aliases  []string `json:"aliases"`
}

type teamDocument struct {
	team       types.Team
	display    string
	nameLower  string
	aliases    []string
	aliasesLow []string
	terms      map[string]float64
	vector     map[string]float64
}

// TeamIndex resolves free-text team input and suggests completions.
type TeamIndex struct {
	teams []teamDocument
	idf   map[string]float64
}

// NewTeamIndex builds the index from the embedded alias catalog.
func NewTeamIndex() *TeamIndex {
	return newTeamIndexFromEntries(loadTeamAliases())
}

func newTeamIndexFromEntries(entries []TeamAliases) *TeamIndex {
	idx := &TeamIndex{
		teams: make([]teamDocument, 0, len(entries)),
		idf:   map[string]float64{},
	}

	documentTerms := make([]map[string]float64, 0, len(entries))
	df := map[string]int{}

	for _, raw := range entries {
		entry := sanitizeEntry(raw)
		team := types.LookupTeam(entry.Team)
		if team == types.TeamUnknown {
			continue
		}
		info, _ := team.Info()

		terms := map[string]float64{}
		for _, token := range tokenize(info.City + " " + info.Name) {
			terms[token] += 2.0
		}
		for _, token := range tokenize(info.Abbrev) {
			terms[token] += 2.0
		}
		for _, token := range tokenize(strings.Join(entry.Aliases, " ")) {
			terms[token] += 1.5
		}
		for _, token := range tokenize(entry.Division) {
			terms[token] += 0.5
		}

		for token := range terms {
			df[token]++
		}

		doc := teamDocument{
			team:      team,
			display:   team.FullName(),
			nameLower: strings.ToLower(team.FullName()),
			aliases:   append([]string{info.Name, info.Abbrev}, entry.Aliases...),
			terms:     terms,
		}
		for _, alias := range doc.aliases {
			doc.aliasesLow = append(doc.aliasesLow, strings.ToLower(alias))
		}

		idx.teams = append(idx.teams, doc)
		documentTerms = append(documentTerms, terms)
	}

	n := float64(len(documentTerms))
	for token, docsWithToken := range df {
		idx.idf[token] = math.Log((1.0+n)/(1.0+float64(docsWithToken))) + 1.0
	}

	for i, terms := range documentTerms {
		idx.teams[i].vector = normalizeVector(weightedVector(terms, idx.idf))
	}

	return idx
}

// Resolve maps a name, abbreviation, or nickname to a club. It returns
// TeamUnknown when no club matches with enough confidence, or when the
// query's tokens fit several clubs and none matches a name or alias exactly.
func (idx *TeamIndex) Resolve(query string) types.Team {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return types.TeamUnknown
	}
	if team := types.LookupTeam(trimmed); team != types.TeamUnknown {
		return team
	}
	if idx == nil || len(idx.teams) == 0 {
		return types.TeamUnknown
	}

	tokens := tokenize(trimmed)
	if len(tokens) == 0 || len(tokens) > maxResolveTokens {
		return types.TeamUnknown
	}

	queryVector := normalizeVector(weightedVector(termCounts(tokens), idx.idf))
	queryLower := strings.ToLower(trimmed)

	top := types.TeamUnknown
	topScore := 0.0
	topExact := false
	secondScore := 0.0
	covering := 0

	for _, doc := range idx.teams {
		if doc.coversAll(tokens) {
			covering++
		}

		score := cosineSimilarity(queryVector, doc.vector)
		exact := queryLower == doc.nameLower
		if exact {
			score += 0.50
		}
		for _, alias := range doc.aliasesLow {
			if queryLower == alias {
				score += 0.50
				exact = true
				break
			}
			if len(queryLower) >= 3 && strings.HasPrefix(alias, queryLower) {
				score += 0.10
				break
			}
		}

		if score > topScore {
			secondScore = topScore
			topScore = score
			topExact = exact
			top = doc.team
			continue
		}
		if score > secondScore {
			secondScore = score
		}
	}

	if covering > 1 && !topExact {
		return types.TeamUnknown
	}
	if topScore < minResolveScore || (topScore-secondScore) < minResolveSeparation {
		return types.TeamUnknown
	}
	return top
}

// Suggest returns ranked club names for the current input prefix.
func (idx *TeamIndex) Suggest(prefix string) []string {
	p := strings.TrimSpace(strings.ToLower(prefix))
	if idx == nil || len(idx.teams) == 0 || len(p) < 2 {
		return nil
	}

	queryVector := normalizeVector(weightedVector(termCounts(tokenize(p)), idx.idf))

	type candidate struct {
		value string
		score float64
	}
	candidates := make([]candidate, 0, len(idx.teams))

	for _, doc := range idx.teams {
		baseScore := 0.0
		if len(queryVector) > 0 {
			baseScore = cosineSimilarity(queryVector, doc.vector)
		}

		best := 0.0
		if strings.HasPrefix(doc.nameLower, p) {
			best = 3.0
		} else if tokenHasPrefix(doc.nameLower, p) {
			best = 2.4
		}
		for _, alias := range doc.aliasesLow {
			switch {
			case alias == p:
				best = max(best, 5.0)
			case strings.HasPrefix(alias, p):
				best = max(best, 4.0)
			case tokenHasPrefix(alias, p):
				best = max(best, 3.4)
			}
		}
		if best == 0 {
			continue
		}
		candidates = append(candidates, candidate{value: doc.display, score: best + baseScore})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score == candidates[j].score {
			return candidates[i].value < candidates[j].value
		}
		return candidates[i].score > candidates[j].score
	})

	out := make([]string, 0, maxSuggestions)
	for _, c := range candidates {
		out = append(out, c.value)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

func (doc teamDocument) coversAll(tokens []string) bool {
	for _, token := range tokens {
		if _, ok := doc.terms[token]; !ok {
			return false
		}
	}
	return true
}

func tokenHasPrefix(text, prefix string) bool {
	if prefix == "" {
		return false
	}
	for _, token := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		if strings.HasPrefix(token, prefix) {
			return true
		}
	}
	return false
}

func loadTeamAliases() []TeamAliases {
	var entries []TeamAliases
	if err := json.Unmarshal(embeddedTeamAliases, &entries); err != nil || len(entries) == 0 {
		return defaultTeamAliases()
	}
	return entries
}

// defaultTeamAliases covers every club with no nicknames.
func defaultTeamAliases() []TeamAliases {
	teams := types.Teams()
	out := make([]TeamAliases, 0, len(teams))
	for _, team := range teams {
		info, _ := team.Info()
		out = append(out, TeamAliases{Team: info.Abbrev})
	}
	return out
}

func sanitizeEntry(entry TeamAliases) TeamAliases {
	entry.Team = strings.TrimSpace(entry.Team)
	entry.Division = strings.TrimSpace(entry.Division)

	aliases := make([]string, 0, len(entry.Aliases))
	seen := map[string]struct{}{}
	for _, raw := range entry.Aliases {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		aliases = append(aliases, trimmed)
	}
	entry.Aliases = aliases
	return entry
}

func tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	if len(raw) == 0 {
		return nil
	}

	out := make([]string, 0, len(raw))
	for _, token := range raw {
		if _, skip := stopWords[token]; skip {
			continue
		}
		out = append(out, token)
	}
	return out
}

func termCounts(tokens []string) map[string]float64 {
	if len(tokens) == 0 {
		return nil
	}
	counts := make(map[string]float64, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	return counts
}

func weightedVector(counts map[string]float64, idf map[string]float64) map[string]float64 {
	if len(counts) == 0 {
		return nil
	}
	vector := map[string]float64{}
	for term, tf := range counts {
		termIDF, ok := idf[term]
		if !ok {
			continue
		}
		vector[term] = (1.0 + math.Log(tf)) * termIDF
	}
	return vector
}

func normalizeVector(vector map[string]float64) map[string]float64 {
	if len(vector) == 0 {
		return nil
	}

	norm := 0.0
	for _, weight := range vector {
		norm += weight * weight
	}
	if norm == 0 {
		return nil
	}
	scale := 1.0 / math.Sqrt(norm)

	out := make(map[string]float64, len(vector))
	for term, weight := range vector {
		out[term] = weight * scale
	}
	return out
}

func cosineSimilarity(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	score := 0.0
	for term, left := range a {
		if right, ok := b[term]; ok {
			score += left * right
		}
	}
	return score
}
