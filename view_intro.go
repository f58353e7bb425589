package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	introFrom     = "#7D56F4"
	introTo       = "#EA80FC"
	introBackdrop = "#1D1D2E"
	introGlowSpan = 0.15
)

// introArtLines spells "showmarket" in a small figlet face.
var introArtLines = []string{
	`     _                                  _        _   `,
	` ___| |_   ___ __ __ __ _ __   __ _ _ _| |__ ___| |_ `,
	`(_-<| ' \ / _ \\ V  V /| '  \ / _` + "`" + ` | '_| / // -_)  _|`,
	`/__/|_||_|\___/ \_/\_/ |_|_|_|\__,_|_| |_\_\\___|\__|`,
	``,
	`          ◇ ─ ─ ◆ ─ ─ ◇ ─ ─ ◆ ─ ─ ◇`,
}

// introFrame is the animation position derived from the intro tick.
type introFrame struct {
	reveal float64
	glow   float64
	fade   float64
}

func (m Model) introFrame() introFrame {
	var f introFrame
	switch m.intro.Phase {
	case 0:
		f.reveal = math.Min(1, float64(m.intro.Tick)/float64(introRevealTicks))
	case 1:
		f.reveal = 1
		f.glow = math.Min(1, float64(m.intro.Tick-introRevealTicks)/float64(introGlowTicks))
	case 2:
		f.reveal = 1
		f.glow = 1
		f.fade = math.Min(1, float64(m.intro.Tick-introRevealTicks-introGlowTicks)/float64(introFadeTicks))
	}
	return f
}

// introCharColor picks the color of the character at position t in [0,1].
func (m Model) introCharColor(t float64, f introFrame) string {
	base := interpolateHexColor(introFrom, introTo, t)

	var color string
	if m.intro.Phase == 0 {
		appear := 0.0
		if f.reveal > t {
			appear = math.Min(1, (f.reveal-t)*3)
		}
		color = interpolateHexColor(introBackdrop, base, appear)
	} else {
		color = base
		if dist := math.Abs(t - f.glow); dist < introGlowSpan {
			color = interpolateHexColor(base, "#FFFFFF", (1-dist/introGlowSpan)*0.7)
		}
	}

	if m.intro.Phase == 2 {
		color = interpolateHexColor(color, introBackdrop, f.fade)
	}
	return color
}

func (m Model) renderIntro() string {
	width := 0
	total := 0
	for _, line := range introArtLines {
		n := len([]rune(line))
		width = max(width, n)
		total += n
	}
	total = max(1, total)

	f := m.introFrame()
	rendered := make([]string, 0, len(introArtLines))
	index := 0
	for _, line := range introArtLines {
		runes := []rune(line)
		var b strings.Builder
		for _, r := range runes {
			t := float64(index) / float64(total)
			index++
			if t > f.reveal || r == ' ' {
				b.WriteRune(' ')
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.introCharColor(t, f))).Render(string(r)))
		}
		if pad := width - len(runes); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		rendered = append(rendered, b.String())
	}

	subtitle := ""
	if m.intro.Phase >= 1 {
		opacity := 1.0
		switch m.intro.Phase {
		case 1:
			opacity = f.glow
		case 2:
			opacity = 1 - f.fade
		}
		subtitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(interpolateHexColor(introBackdrop, "#667085", min(1, opacity)))).
			Render("MLB The Show marketplace browser")
	}

	skipHint := ""
	if m.intro.Tick > 5 {
		opacity := min(1.0, float64(m.intro.Tick-5)/10.0)
		if m.intro.Phase == 2 {
			opacity = max(0, opacity*(1-f.fade))
		}
		skipHint = lipgloss.NewStyle().
			Foreground(lipgloss.Color(interpolateHexColor(introBackdrop, "#475467", opacity))).
			Italic(true).
			Render("press any key to skip")
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		strings.Join(rendered, "\n"),
		"",
		subtitle,
		"",
		skipHint,
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
