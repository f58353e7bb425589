package api

import (
	"testing"

	"showmarket/types"
)

func TestTeamIndexResolve(t *testing.T) {
	idx := NewTeamIndex()

	tests := []struct {
		query string
		want  types.Team
	}{
		{query: "yanks", want: types.TeamYankees},
		{query: "Bronx Bombers", want: types.TeamYankees},
		{query: "NYY", want: types.TeamYankees},
		{query: "halos", want: types.TeamAngels},
		{query: "brew crew", want: types.TeamBrewers},
		{query: "tribe", want: types.TeamGuardians},
		{query: "sox", want: types.TeamUnknown},
		{query: "SOX ", want: types.TeamUnknown},
		{query: "new york", want: types.TeamUnknown},
		{query: "red sox", want: types.TeamRedSox},
		{query: "white sox", want: types.TeamWhiteSox},
		{query: "", want: types.TeamUnknown},
		{query: "a team nobody has heard of", want: types.TeamUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			if got := idx.Resolve(tc.query); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestTeamIndexResolveSharedNicknameNeedsExactAlias(t *testing.T) {
	idx := newTeamIndexFromEntries([]TeamAliases{
		{Team: "BOS", Aliases: []string{"red sox", "boston red sox", "bosox"}},
		{Team: "CWS", Aliases: []string{"white sox"}},
	})

	if got := idx.Resolve("sox"); got != types.TeamUnknown {
		t.Fatalf("expected shared nickname to stay unresolved, got %v", got)
	}
	if got := idx.Resolve("bosox"); got != types.TeamRedSox {
		t.Fatalf("expected Red Sox, got %v", got)
	}
}

func TestTeamIndexSuggestReturnsRankedPrefixMatches(t *testing.T) {
	idx := NewTeamIndex()

	got := idx.Suggest("ya")
	if len(got) == 0 || got[0] != "New York Yankees" {
		t.Fatalf("expected Yankees first, got %v", got)
	}

	got = idx.Suggest("new")
	if len(got) != 2 || got[0] != "New York Mets" || got[1] != "New York Yankees" {
		t.Fatalf("expected both New York clubs, got %v", got)
	}
}

func TestTeamIndexSuggestCapsAndSkipsShortInput(t *testing.T) {
	idx := NewTeamIndex()

	if got := idx.Suggest("y"); got != nil {
		t.Fatalf("expected no suggestions for one character, got %v", got)
	}
	if got := idx.Suggest("   "); got != nil {
		t.Fatalf("expected no suggestions for blank input, got %v", got)
	}
	if got := idx.Suggest("al"); len(got) > maxSuggestions {
		t.Fatalf("expected at most %d suggestions, got %d", maxSuggestions, len(got))
	}
}

func TestTeamIndexSkipsUnknownCatalogRows(t *testing.T) {
	idx := newTeamIndexFromEntries([]TeamAliases{
		{Team: "XYZ", Aliases: []string{"nobody"}},
		{Team: "SEA", Aliases: []string{" m's ", "M's", ""}},
	})

	if len(idx.teams) != 1 {
		t.Fatalf("expected 1 indexed team, got %d", len(idx.teams))
	}
	if got := idx.Resolve("m's"); got != types.TeamMariners {
		t.Fatalf("expected Mariners, got %v", got)
	}
	if got := idx.Resolve("nobody"); got != types.TeamUnknown {
		t.Fatalf("expected unknown, got %v", got)
	}
}

func TestNilTeamIndexFallsBackToLookup(t *testing.T) {
	var idx *TeamIndex
	if got := idx.Resolve("Cubs"); got != types.TeamCubs {
		t.Fatalf("expected Cubs, got %v", got)
	}
	if got := idx.Suggest("cu"); got != nil {
		t.Fatalf("expected nil suggestions, got %v", got)
	}
}
