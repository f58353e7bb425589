package main

import (
	"fmt"
	"strings"

	"showmarket/api"
	"showmarket/insight"
	"showmarket/types"
)

func (m Model) renderBrowsePanel(width, height int) string {
	active := m.focusedPanel == panelBrowse
	flashActive := active && m.focusFlash.Active
	inner := width - 2

	lines := []string{fitLine(m.renderCollectionTabs(), inner)}

	rows := m.rowCount()
	if rows == 0 {
		if m.loading {
			lines = append(lines, m.spinner.View()+" Loading "+m.collection.Label()+strings.Repeat(".", m.loadingDots))
		} else if m.filter.Active() && m.pageInfo().Page > 0 {
			lines = append(lines, emptyStyle.Render("~ nothing on this page matches the filter ~"))
			lines = append(lines, keyStyle.Render("x")+keyDescStyle.Render(" clear filter"))
		} else {
			lines = append(lines, emptyStyle.Render("~ No rows yet ~"))
			lines = append(lines, keyStyle.Render("r")+keyDescStyle.Render(" reload"))
		}
		return renderPanel("#", "Browse", strings.Join(fitLines(lines, inner), "\n"), width, height, active, flashActive)
	}

	visibleRows := m.visibleRows()
	if m.reveal.Revealing {
		visibleRows = max(0, min(visibleRows, m.reveal.Rows))
	}

	start := max(0, m.rowsOffset)
	maxStart := max(0, rows-max(1, visibleRows))
	if start > maxStart {
		start = maxStart
	}
	end := min(rows, start+visibleRows)

	var header string
	var body []string
	switch m.collection {
	case types.CollectionCaptains:
		header, body = m.captainRows(inner, start, end, active)
	case types.CollectionItems:
		header, body = m.itemRows(inner, start, end, active)
	default:
		header, body = m.listingRows(inner, start, end, active)
	}
	lines = append(lines, headerStyle.Render(fitLine(header, inner)))
	lines = append(lines, fitLines(body, inner)...)

	if visibleRows == 0 {
		lines = append(lines, scrollInfoStyle.Render("revealing..."))
	} else {
		pager := renderPager(m.currentPage(), m.pageInfo().TotalPages, m.windowSize)
		count := scrollInfoStyle.Render(fmt.Sprintf("  %d-%d of %d", start+1, end, rows))
		lines = append(lines, fitLine(pager+count, inner))
	}

	content := strings.Join(lines, "\n")
	return renderPanel("#", "Browse", content, width, height, active, flashActive)
}

func (m Model) renderCollectionTabs() string {
	tabs := make([]string, 0, 3)
	for _, c := range types.Collections() {
		if c == m.collection {
			tabs = append(tabs, activeTitleStyle.Render("["+c.Label()+"]"))
		} else {
			tabs = append(tabs, mutedStyle.Render(c.Label()))
		}
	}
	out := strings.Join(tabs, " ")

	var badges []string
	switch m.collection {
	case types.CollectionListings:
		badges = append(badges,
			labelStyle.Render("sort ")+valueStyle.Render(m.listingsQ.Sort.Label())+" "+orderGlyph(m.listingsQ.Order),
			rarityStyleFor(m.listingsQ.Rarity).Render(m.listingsQ.Rarity.Label()),
			mutedStyle.Render(m.listingsQ.Type.Label()),
		)
	case types.CollectionItems:
		badges = append(badges,
			labelStyle.Render("sort ")+valueStyle.Render(string(m.itemSort))+" "+orderGlyph(m.itemOrder),
			mutedStyle.Render(m.itemsQ.Type.Label()),
		)
	}
	if m.filter.Team != types.TeamUnknown {
		badges = append(badges, labelStyle.Render("team ")+renderTeamBadge(m.filter.Team, ""))
	}
	if m.filter.Rarity != types.RarityUnknown && m.collection != types.CollectionListings {
		badges = append(badges, rarityStyleFor(m.filter.Rarity).Render(m.filter.Rarity.Label()))
	}
	if m.loading {
		badges = append(badges, m.spinner.View())
	}
	if len(badges) > 0 {
		out += "  " + strings.Join(badges, separatorStyle.Render(" · "))
	}
	return out
}

func orderGlyph(o types.SortOrder) string {
	if o == types.SortOrderAsc {
		return mutedStyle.Render("↑")
	}
	return mutedStyle.Render("↓")
}

func styleRow(row string, index, selected int, active bool) string {
	switch {
	case index == selected && active:
		return selectedRowStyle.Render(row)
	case index%2 == 1:
		return rowAltStyle.Render(row)
	default:
		return rowStyle.Render(row)
	}
}

func cursorFor(index, selected int) string {
	if index == selected {
		return "▸ "
	}
	return "  "
}

func (m Model) listingRows(width, start, end int, active bool) (string, []string) {
	const (
		colRarity = 8
		colPrice  = 9
	)
	showFlip := width >= 60
	fixed := 2 + (1 + colRarity) + 2*(1+colPrice)
	if showFlip {
		fixed += 1 + colPrice
	}
	colName := max(8, width-fixed)

	header := "  " + padRight("Name", colName) + " " + padRight("Rarity", colRarity) +
		" " + padLeft("Sell", colPrice) + " " + padLeft("Buy", colPrice)
	if showFlip {
		header += " " + padLeft("Flip", colPrice)
	}

	listings := m.visibleListings()
	out := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		l := listings[i]
		row := cursorFor(i, m.selectedIndex) +
			padRight(truncate(l.ListingName, colName), colName) + " " +
			rarityStyleFor(l.Item.Rarity).Render(padRight(truncate(l.Item.Rarity.Label(), colRarity), colRarity)) + " " +
			priceStyle.Render(padLeft(insight.FormatStubs(l.BestSellPrice), colPrice)) + " " +
			valueStyle.Render(padLeft(insight.FormatStubs(l.BestBuyPrice), colPrice))
		if showFlip {
			net, _, _ := types.ListingMargin(l)
			row += " " + padLeft(formatFlip(net), colPrice)
		}
		out = append(out, styleRow(row, i, m.selectedIndex, active))
	}
	return header, out
}

func (m Model) itemRows(width, start, end int, active bool) (string, []string) {
	const (
		colOVR    = 3
		colRarity = 8
		colTeam   = 4
		colPos    = 4
	)
	colName := max(8, width-(2+(1+colOVR)+(1+colRarity)+(1+colTeam)+(1+colPos)))

	header := "  " + padRight("Name", colName) + " " + padLeft("OVR", colOVR) + " " +
		padRight("Rarity", colRarity) + " " + padRight("Team", colTeam) + " " + padRight("Pos", colPos)

	items := m.visibleItems()
	out := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		it := items[i]
		row := cursorFor(i, m.selectedIndex) +
			padRight(truncate(it.Name, colName), colName) + " " +
			tierStyleFor(it.OVR).Render(padLeft(fmt.Sprintf("%d", it.OVR), colOVR)) + " " +
			rarityStyleFor(it.Rarity).Render(padRight(truncate(it.Rarity.Label(), colRarity), colRarity)) + " " +
			padRight(renderTeamBadge(it.TeamID(), it.TeamShortName), colTeam) + " " +
			padRight(truncate(it.DisplayPosition, colPos), colPos)
		out = append(out, styleRow(row, i, m.selectedIndex, active))
	}
	return header, out
}

func (m Model) captainRows(width, start, end int, active bool) (string, []string) {
	const (
		colTeam = 4
		colOVR  = 3
	)
	flex := max(16, width-(2+(1+colTeam)+(1+colOVR)+1))
	colName := flex / 2
	colAbility := flex - colName

	header := "  " + padRight("Name", colName) + " " + padRight("Team", colTeam) + " " +
		padLeft("OVR", colOVR) + " " + padRight("Ability", colAbility)

	captains := m.visibleCaptains()
	out := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		c := captains[i]
		row := cursorFor(i, m.selectedIndex) +
			padRight(truncate(c.Name, colName), colName) + " " +
			padRight(renderTeamBadge(types.LookupTeam(c.Team), c.Team), colTeam) + " " +
			tierStyleFor(c.OVR).Render(padLeft(fmt.Sprintf("%d", c.OVR), colOVR)) + " " +
			padRight(truncate(c.AbilityName, colAbility), colAbility)
		out = append(out, styleRow(row, i, m.selectedIndex, active))
	}
	return header, out
}

func (m Model) renderDetailPanel(width, height int) string {
	active := m.focusedPanel == panelDetail
	flashActive := active && m.focusFlash.Active
	inner := width - 2

	if m.detail.Kind == detailNone {
		content := emptyStyle.Render("── ── ──") + "\n" + mutedStyle.Render("select a row and press enter")
		return renderPanel("~", "Detail", content, width, height, active, flashActive)
	}

	lines := m.detailHeaderLines()
	if m.detail.Loading {
		lines = append(lines, insight.RenderSkeleton(m.skeletonFrame, inner)...)
	} else {
		body := m.detailBodyLines(inner, height-len(lines))
		revealCount := min(len(body), max(0, m.detailReveal.Revealed))
		lines = append(lines, body[:revealCount]...)
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	content := strings.Join(fitLines(lines, inner), "\n")
	return renderPanel("~", "Detail", content, width, height, active, flashActive)
}

func (m Model) detailHeaderLines() []string {
	d := m.detail
	switch d.Kind {
	case detailListing:
		name := rarityStyleFor(d.Listing.Item.Rarity).Render(d.Name)
		if !d.Loading {
			name += " " + renderTeamBadge(d.Listing.Item.TeamID(), d.Listing.Item.TeamShortName)
		}
		return []string{name, insight.RenderTabs(m.viewMode)}
	case detailItem:
		if d.Loading {
			return []string{valueStyle.Render(d.Name), mutedStyle.Render("loading card...")}
		}
		it := d.Item
		meta := []string{
			tierStyleFor(it.OVR).Render(fmt.Sprintf("OVR %d", it.OVR)),
			rarityStyleFor(it.Rarity).Render(it.Rarity.Label()),
			renderTeamBadge(it.TeamID(), it.TeamShortName),
		}
		if it.DisplayPosition != "" {
			meta = append(meta, mutedStyle.Render(it.DisplayPosition))
		}
		return []string{rarityStyleFor(it.Rarity).Render(it.Name), strings.Join(meta, separatorStyle.Render(" · "))}
	default:
		c := d.Captain
		meta := renderTeamBadge(types.LookupTeam(c.Team), c.Team) + separatorStyle.Render(" · ") +
			tierStyleFor(c.OVR).Render(fmt.Sprintf("OVR %d", c.OVR))
		return []string{valueStyle.Render(c.Name), meta}
	}
}

// detailBodyLines renders the detail body for the current state within width and rows.
func (m Model) detailBodyLines(width, rows int) []string {
	if rows < 1 || m.detail.Loading {
		return nil
	}

	var lines []string
	switch m.detail.Kind {
	case detailListing:
		switch m.viewMode {
		case insight.ViewHistory:
			lines = insight.RenderHistoryBody(m.detail.Listing.PriceHistory, width, rows)
		case insight.ViewOrders:
			lines = insight.RenderOrdersBody(m.detail.Insight.Orders, width, rows)
		default:
			lines = insight.RenderSummaryBody(m.detail.Insight, width)
		}
	case detailItem:
		lines = itemDetailLines(m.detail.Item, width)
	case detailCaptain:
		lines = captainDetailLines(m.detail.Captain, width)
	}

	if len(lines) > rows {
		lines = lines[:rows]
	}
	return lines
}

func itemDetailLines(d types.ItemDetail, width int) []string {
	if !d.IsPlayerCard() {
		lines := []string{
			labelStyle.Render("Type: ") + valueStyle.Render(types.ItemType(d.Type).Label()),
		}
		if d.Series != "" {
			lines = append(lines, labelStyle.Render("Series: ")+valueStyle.Render(d.Series))
		}
		if d.SetName != "" {
			lines = append(lines, labelStyle.Render("Set: ")+valueStyle.Render(d.SetName))
		}
		return lines
	}

	const colLabel = 16
	barWidth := max(4, width-colLabel-6)
	attrs := types.Attributes(d)
	values := make([]int, len(attrs))
	for i, a := range attrs {
		values[i] = a.Value
	}
	axis := types.AxisMax(values...)

	lines := make([]string, 0, len(attrs)+len(d.Pitches)*4+1)
	for _, a := range attrs {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			labelStyle.Render(padRight(truncate(a.Name, colLabel), colLabel)),
			tierStyleFor(a.Value).Render(fmt.Sprintf("%3d", a.Value)),
			renderAttributeBar(a.Value, axis, barWidth),
		))
	}

	if len(d.Pitches) > 0 {
		pitchAxis := types.AxisMax(types.PitchValues(d.Pitches)...)
		for _, p := range d.Pitches {
			lines = append(lines, titleStyle.Render(p.Name))
			for _, metric := range []types.AttributeValue{{Name: "Speed", Value: p.Speed}, {Name: "Control", Value: p.Control}, {Name: "Movement", Value: p.Movement}} {
				lines = append(lines, fmt.Sprintf("%s %s %s",
					labelStyle.Render(padRight("  "+metric.Name, colLabel)),
					tierStyleFor(metric.Value).Render(fmt.Sprintf("%3d", metric.Value)),
					renderAttributeBar(metric.Value, pitchAxis, barWidth),
				))
			}
		}
	}

	if len(d.Quirks) > 0 {
		names := make([]string, len(d.Quirks))
		for i, q := range d.Quirks {
			names[i] = q.Name
		}
		lines = append(lines, labelStyle.Render("Quirks: ")+textStyle.Render(strings.Join(names, ", ")))
	}
	return lines
}

func captainDetailLines(c types.Captain, width int) []string {
	lines := []string{
		labelStyle.Render("Ability: ") + valueStyle.Render(c.AbilityName),
	}
	if c.AbilityDesc != "" {
		lines = append(lines, mutedStyle.Render(truncate(c.AbilityDesc, width)))
	}
	for _, b := range c.Boosts {
		lines = append(lines, titleStyle.Render(b.Tier)+" "+textStyle.Render(b.Description))
		for _, a := range b.Attributes {
			lines = append(lines, "  "+labelStyle.Render(a.Name)+" "+successStyle.Render(a.Value))
		}
	}
	return lines
}

func (m Model) renderFilterPanel(width, height int) string {
	active := m.focusedPanel == panelFilter
	flashActive := active && m.focusFlash.Active

	content := labelStyle.Render("Team:") + " " + m.filterInput.View()
	if m.filter.Team != types.TeamUnknown && !active {
		content += "  " + renderTeamBadge(m.filter.Team, "") + " " + mutedStyle.Render(m.filter.Team.FullName())
	}
	return renderPanel("/", "Filter", fitLine(content, width-2), width, height, active, flashActive)
}

func (m Model) renderRecentPanel(width, height int) string {
	active := m.focusedPanel == panelRecent
	flashActive := active && m.focusFlash.Active

	entries := m.recent.Entries()
	if len(entries) == 0 {
		content := mutedStyle.Render("Nothing viewed yet")
		return renderPanel(">", "Recent", content, width, height, active, flashActive)
	}

	const maxItems = 5
	start := 0
	if len(entries) > maxItems && m.recentIndex >= maxItems {
		start = m.recentIndex - maxItems + 1
	}
	if start+maxItems > len(entries) {
		start = len(entries) - maxItems
	}
	if start < 0 {
		start = 0
	}

	end := min(len(entries), start+maxItems)
	items := entries[start:end]
	rendered := make([]string, len(items))
	for i, entry := range items {
		label := truncate(entry.Name, 18)
		selected := start+i == m.recentIndex
		if selected {
			marker := "> " + label
			if when := formatRelativeTime(entry.ViewedAt, m.now()); when != "" && active {
				marker += " " + when
			}
			if active {
				rendered[i] = recentSelectedStyle.Render(marker)
			} else {
				rendered[i] = activeTitleStyle.Render(marker)
			}
			continue
		}
		rendered[i] = recentItemStyle.Render(label)
	}

	content := labelStyle.Render("Recent:") + " " + strings.Join(rendered, separatorStyle.Render(" › "))
	return renderPanel(">", "Recent", fitLine(content, width-2), width, height, active, flashActive)
}

func (m Model) renderHelpBar() string {
	helpModel := m.help
	helpModel.Width = max(0, m.width-2)
	help := helpModel.View(m.keys)

	if m.notice != "" && m.err == nil {
		help = fitLine(successStyle.Render(m.notice)+"  "+help, max(1, m.width-2))
	}
	if m.err != nil {
		errLine := dangerStyle.Render(fmt.Sprintf("Error: %v", m.err))
		if hint := api.ActionableError(m.err); hint != "" {
			errLine += "  " + warningStyle.Render(hint)
		}
		return helpStyle.Render(fitLine(errLine, max(1, m.width-2)) + "\n" + help)
	}

	return helpStyle.Render(help)
}
