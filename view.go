package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	minWidth      = 64
	minHeight     = 16
	stackedBelow  = 100
	detailMinRows = 8
)

// layoutSpec holds the panel sizes for the current terminal.
type layoutSpec struct {
	stacked      bool
	browseWidth  int
	detailWidth  int
	fullWidth    int
	browseHeight int
	detailHeight int
}

func (m Model) layout() layoutSpec {
	contentWidth := max(minWidth, m.width) - 4
	height := max(minHeight, m.height)

	l := layoutSpec{
		stacked:   m.width < stackedBelow,
		fullWidth: max(minWidth, m.width) - 2,
	}

	if l.stacked {
		l.browseWidth = contentWidth
		l.detailWidth = contentWidth
		l.detailHeight = max(detailMinRows, height/3)
		l.browseHeight = max(browseChromeRows+1, height-layoutOverhead-(l.detailHeight+2))
		return l
	}

	l.browseWidth = contentWidth * 3 / 5
	l.detailWidth = contentWidth - l.browseWidth
	l.browseHeight = max(browseChromeRows+1, height-layoutOverhead)
	l.detailHeight = l.browseHeight
	return l
}

// View renders the UI (required by tea.Model interface).
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.intro.Show {
		return m.renderIntro()
	}

	if m.width < minWidth || m.height < minHeight {
		return helpStyle.Render(
			fmt.Sprintf(
				"Terminal too small (%dx%d). Resize to at least %dx%d.",
				m.width,
				m.height,
				minWidth,
				minHeight,
			),
		)
	}

	l := m.layout()

	appHeader := m.renderAppHeader(l.fullWidth)
	browsePanel := m.renderBrowsePanel(l.browseWidth, l.browseHeight)
	detailPanel := m.renderDetailPanel(l.detailWidth, l.detailHeight)
	filterPanel := m.renderFilterPanel(l.fullWidth, 1)
	recentPanel := m.renderRecentPanel(l.fullWidth, 1)
	helpBar := m.renderHelpBar()

	mainArea := ""
	if l.stacked {
		mainArea = lipgloss.JoinVertical(
			lipgloss.Left,
			browsePanel,
			detailPanel,
		)
	} else {
		mainArea = lipgloss.JoinHorizontal(
			lipgloss.Top,
			browsePanel,
			detailPanel,
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		appHeader,
		mainArea,
		filterPanel,
		recentPanel,
		helpBar,
	)
}

func (m Model) renderAppHeader(contentWidth int) string {
	title := renderGradientText("s h o w m a r k e t", "#7D56F4", "#EA80FC")
	subtitle := mutedStyle.Render("MLB The Show Marketplace")
	separator := renderGradientText(strings.Repeat("━", max(8, contentWidth)), "#7D56F4", "#EA80FC")
	return lipgloss.JoinVertical(lipgloss.Left, fitLine(title+" "+subtitle, contentWidth), separator)
}
