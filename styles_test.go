package main

import (
	"strings"
	"testing"

	"showmarket/types"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderGradientText(t *testing.T) {
	input := "s h o w m a r k e t"
	output := renderGradientText(input, "#7D56F4", "#EA80FC")

	if output == "" {
		t.Fatal("expected gradient output to be non-empty")
	}
	if got, want := lipgloss.Width(output), lipgloss.Width(input); got != want {
		t.Fatalf("expected visual width %d, got %d", want, got)
	}
}

func TestRarityStyles(t *testing.T) {
	tests := []struct {
		name  string
		input types.Rarity
		want  lipgloss.TerminalColor
	}{
		{name: "common", input: types.RarityCommon, want: lipgloss.Color("#98A2B3")},
		{name: "bronze", input: types.RarityBronze, want: lipgloss.Color("#CD7F32")},
		{name: "silver", input: types.RaritySilver, want: lipgloss.Color("#C0C0C0")},
		{name: "gold", input: types.RarityGold, want: lipgloss.Color("#FFC107")},
		{name: "diamond", input: types.RarityDiamond, want: lipgloss.Color("#4DC9F6")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := rarityStyleFor(tt.input)
			if got := style.GetForeground(); got != tt.want {
				t.Fatalf("expected foreground %v, got %v", tt.want, got)
			}
			if strings.TrimSpace(style.Render("card")) == "" {
				t.Fatalf("expected rendered rarity text for %s to be non-empty", tt.name)
			}
		})
	}

	unknown := rarityStyleFor(types.RarityUnknown)
	if got, want := unknown.GetForeground(), defaultRarityStyle.GetForeground(); got != want {
		t.Fatalf("expected unknown rarity fallback foreground %v, got %v", want, got)
	}
}

func TestTeamStylesCoverEveryClub(t *testing.T) {
	for _, team := range types.Teams() {
		if _, ok := teamStyles[team]; !ok {
			t.Fatalf("expected a style for %s", team)
		}
	}

	unknown := teamStyleFor(types.TeamUnknown)
	if got, want := unknown.GetForeground(), defaultTeamStyle.GetForeground(); got != want {
		t.Fatalf("expected unknown team fallback foreground %v, got %v", want, got)
	}
}

func TestReadableTeamColor(t *testing.T) {
	tests := []struct {
		name      string
		primary   string
		secondary string
		want      string
	}{
		{name: "bright primary kept", primary: "#BA0021", secondary: "#003263", want: "#BA0021"},
		{name: "near-black primary swapped", primary: "#0A0A0A", secondary: "#FDB827", want: "#FDB827"},
		{name: "bad primary", primary: "nope", secondary: "#FDB827", want: "#FDB827"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readableTeamColor(tt.primary, tt.secondary); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestTierStyles(t *testing.T) {
	tests := []struct {
		value int
		want  lipgloss.TerminalColor
	}{
		{value: 95, want: colorSuccess},
		{value: 60, want: colorWarning},
		{value: 20, want: colorDanger},
	}

	for _, tt := range tests {
		if got := tierStyleFor(tt.value).GetForeground(); got != tt.want {
			t.Fatalf("value %d: expected foreground %v, got %v", tt.value, tt.want, got)
		}
	}
}

func TestRenderPanelTitleTruncationSafety(t *testing.T) {
	panelWidth := 14
	panel := renderPanel("/", "超長いタイトルで切り詰めを確認する", "content", panelWidth, 1, false, false)
	lines := strings.Split(panel, "\n")
	if len(lines) == 0 {
		t.Fatal("expected rendered panel lines")
	}
	if got, want := lipgloss.Width(lines[0]), panelWidth+2; got != want {
		t.Fatalf("expected top border width %d, got %d", want, got)
	}
	if !strings.Contains(lines[0], "/") {
		t.Fatalf("expected icon to remain visible in title, got %q", lines[0])
	}
}
