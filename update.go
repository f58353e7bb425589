package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"showmarket/api"
	"showmarket/insight"
	"showmarket/types"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Total ticks for each intro phase.
const (
	introRevealTicks = 30 // character-by-character reveal
	introGlowTicks   = 15 // glow sweep across text
	introFadeTicks   = 8  // fade out
	introTotalTicks  = introRevealTicks + introGlowTicks + introFadeTicks
)

// Update handles messages and updates the model (required by tea.Model interface).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case introTickMsg:
		if !m.intro.Show {
			return m, nil
		}
		m.intro.Tick++

		if m.intro.Tick < introRevealTicks {
			m.intro.Phase = 0
		} else if m.intro.Tick < introRevealTicks+introGlowTicks {
			m.intro.Phase = 1
		} else if m.intro.Tick < introTotalTicks {
			m.intro.Phase = 2
		} else {
			m.intro.Show = false
			m.intro.Completed = true
			return m, nil
		}

		return m, tea.Tick(40*time.Millisecond, func(time.Time) tea.Msg {
			return introTickMsg{}
		})

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampRowsOffset()
		return m, nil

	case loadPageMsg:
		return m.startPageLoad()

	case pageLoadedMsg:
		return m.handlePageLoaded(msg)

	case listingLoadedMsg:
		return m.handleListingLoaded(msg)

	case itemLoadedMsg:
		return m.handleItemLoaded(msg)

	case exportResultMsg:
		if msg.err != nil {
			m.err = msg.err
			m.notice = ""
			return m, nil
		}
		m.err = nil
		m.notice = "exported " + msg.path
		m.logger.Info("exported listing history", "path", msg.path)
		return m, nil

	case focusFlashTickMsg:
		if msg.gen != m.focusFlash.Gen || !m.focusFlash.Active {
			return m, nil
		}
		if m.focusFlash.Ticks <= 1 {
			m.focusFlash.Ticks = 0
			m.focusFlash.Active = false
			return m, nil
		}
		m.focusFlash.Ticks--
		gen := m.focusFlash.Gen
		return m, tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
			return focusFlashTickMsg{gen: gen}
		})

	case revealRowTickMsg:
		if msg.gen != m.reveal.Gen || !m.reveal.Revealing {
			return m, nil
		}
		targetRows := min(m.rowCount(), m.visibleRows())
		if m.reveal.Rows < targetRows {
			m.reveal.Rows++
		}
		if m.reveal.Rows >= targetRows {
			m.reveal.Revealing = false
			return m, nil
		}
		gen := m.reveal.Gen
		return m, tea.Tick(30*time.Millisecond, func(time.Time) tea.Msg {
			return revealRowTickMsg{gen: gen}
		})

	case detailRevealTickMsg:
		if msg.gen != m.detailReveal.Gen || m.detail.Loading {
			return m, nil
		}
		target := m.detailRevealTarget()
		if m.detailReveal.Revealed >= target {
			return m, nil
		}
		m.detailReveal.Revealed++
		if m.detailReveal.Revealed >= target {
			return m, nil
		}
		gen := m.detailReveal.Gen
		return m, tea.Tick(m.detailRevealTickDuration(), func(time.Time) tea.Msg {
			return detailRevealTickMsg{gen: gen}
		})

	case spinner.TickMsg:
		if m.loading || m.detail.Loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			m.loadingDots = (m.loadingDots + 1) % 4
			if !m.reduceMotion {
				m.skeletonFrame++
			}
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		updated, cmd := m.handleKeyMsg(msg)
		return updated, cmd
	}

	return m, nil
}

func (m Model) handlePageLoaded(msg pageLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.pageGen {
		return m, nil
	}

	m.cancelPageLoad()
	m.loading = false
	if msg.err != nil {
		if api.ClassifyError(msg.err) == api.ErrorCanceled {
			return m, nil
		}
		m.err = msg.err
		m.logger.Warn("page load failed",
			"collection", msg.collection.Label(),
			"kind", api.ClassifyError(msg.err),
			"err", msg.err,
		)
		m.reveal.Revealing = false
		return m, nil
	}

	switch msg.collection {
	case types.CollectionCaptains:
		m.captains = msg.captains
	case types.CollectionItems:
		m.items = msg.items
	default:
		m.listings = msg.listings
	}
	m.err = nil
	m.logger.Debug("page loaded", "collection", msg.collection.Label(), "page", m.pageInfo().Page, "total_pages", m.pageInfo().TotalPages)

	if msg.collection != m.collection {
		return m, nil
	}
	return m.resetRows()
}

// resetRows moves the cursor to the top and replays the row reveal.
func (m Model) resetRows() (tea.Model, tea.Cmd) {
	m.selectedIndex = 0
	m.rowsOffset = 0
	m.reveal.Gen++

	rows := m.rowCount()
	if rows == 0 || m.reduceMotion {
		m.reveal.Revealing = false
		m.reveal.Rows = min(rows, m.visibleRows())
		return m, nil
	}

	m.reveal.Rows = 0
	m.reveal.Revealing = true
	gen := m.reveal.Gen
	return m, tea.Tick(30*time.Millisecond, func(time.Time) tea.Msg {
		return revealRowTickMsg{gen: gen}
	})
}

func (m Model) handleListingLoaded(msg listingLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.detailGen {
		return m, nil
	}

	m.cancelDetailLoad()
	m.detail.Loading = false
	if msg.err != nil {
		if api.ClassifyError(msg.err) == api.ErrorCanceled {
			return m, nil
		}
		m.err = msg.err
		m.logger.Warn("listing load failed", "uuid", m.detail.UUID, "kind", api.ClassifyError(msg.err), "err", msg.err)
		return m, nil
	}

	m.detail.Listing = msg.listing
	if msg.listing.ListingName != "" {
		m.detail.Name = msg.listing.ListingName
	}
	in, err := insight.Calculate(msg.listing)
	if err != nil {
		m.err = err
		m.logger.Warn("listing history malformed", "uuid", m.detail.UUID, "err", err)
	} else {
		m.err = nil
	}
	m.detail.Insight = in
	m.recent.Add(RecentEntry{Kind: detailListing, UUID: m.detail.UUID, Name: m.detail.Name, ViewedAt: m.now()})
	return m.restartDetailReveal()
}

func (m Model) handleItemLoaded(msg itemLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.detailGen {
		return m, nil
	}

	m.cancelDetailLoad()
	m.detail.Loading = false
	if msg.err != nil {
		if api.ClassifyError(msg.err) == api.ErrorCanceled {
			return m, nil
		}
		m.err = msg.err
		m.logger.Warn("item load failed", "uuid", m.detail.UUID, "kind", api.ClassifyError(msg.err), "err", msg.err)
		return m, nil
	}

	m.err = nil
	m.detail.Item = msg.item
	if msg.item.Name != "" {
		m.detail.Name = msg.item.Name
	}
	m.recent.Add(RecentEntry{Kind: detailItem, UUID: m.detail.UUID, Name: m.detail.Name, ViewedAt: m.now()})
	return m.restartDetailReveal()
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.intro.Show {
		m.intro.Show = false
		m.intro.Completed = true
		return m, nil
	}

	// Let the filter input accept literal characters.
	typing := m.focusedPanel == panelFilter

	if key.Matches(msg, m.keys.ToggleAnim) && !typing {
		m = m.toggleReduceMotion()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.cancelActiveLoads()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Quit):
		if !typing {
			m.cancelActiveLoads()
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Tab):
		// Prioritize textinput autocomplete before global focus cycling.
		if typing && m.filterInput.ShowSuggestions && m.hasFilterSuggestionMatch() {
			return m.handleFilterKeys(msg)
		}
		return m.changeFocus((m.focusedPanel + 1) % panelCount)

	case key.Matches(msg, m.keys.ShiftTab):
		prevPanel := m.focusedPanel - 1
		if prevPanel < 0 {
			prevPanel = panelCount - 1
		}
		return m.changeFocus(prevPanel)

	case key.Matches(msg, m.keys.Filter):
		if !typing {
			return m.changeFocus(panelFilter)
		}

	case key.Matches(msg, m.keys.Escape):
		return m.changeFocus(panelBrowse)
	}

	switch m.focusedPanel {
	case panelBrowse:
		return m.handleBrowseKeys(msg)
	case panelDetail:
		return m.handleDetailKeys(msg)
	case panelFilter:
		return m.handleFilterKeys(msg)
	case panelRecent:
		return m.handleRecentKeys(msg)
	}

	return m, nil
}

func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		return m.openSelected()
	case key.Matches(msg, m.keys.NextPage):
		return m.gotoPage(func(p types.Paging, total int) types.Paging { return p.Next(total) })
	case key.Matches(msg, m.keys.PrevPage):
		return m.gotoPage(func(p types.Paging, total int) types.Paging { return p.Prev() })
	case key.Matches(msg, m.keys.FirstPage):
		return m.gotoPage(func(p types.Paging, total int) types.Paging { return p.Goto(1, total) })
	case key.Matches(msg, m.keys.LastPage):
		return m.gotoPage(func(p types.Paging, total int) types.Paging {
			if total < 1 {
				return p
			}
			return p.Goto(total, total)
		})
	case key.Matches(msg, m.keys.NextColl):
		return m.switchCollection(1)
	case key.Matches(msg, m.keys.PrevColl):
		return m.switchCollection(-1)
	case key.Matches(msg, m.keys.Sort):
		return m.cycleSort()
	case key.Matches(msg, m.keys.Order):
		return m.toggleOrder()
	case key.Matches(msg, m.keys.Rarity):
		return m.cycleRarity()
	case key.Matches(msg, m.keys.Type):
		return m.cycleType()
	case key.Matches(msg, m.keys.ClearFilter):
		return m.clearFilter()
	case key.Matches(msg, m.keys.Retry):
		return m.startPageLoad()
	}
	return m.handleDetailShortcuts(msg)
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Retry) {
		return m.reopenDetail()
	}
	return m.handleDetailShortcuts(msg)
}

// handleDetailShortcuts handles keys that act on the open detail from any non-input panel.
func (m Model) handleDetailShortcuts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ViewSum):
		return m.changeViewMode(insight.ViewSummary)
	case key.Matches(msg, m.keys.ViewHist):
		return m.changeViewMode(insight.ViewHistory)
	case key.Matches(msg, m.keys.ViewOrders):
		return m.changeViewMode(insight.ViewOrders)
	case key.Matches(msg, m.keys.ExportCSV):
		return m.startExport("csv")
	case key.Matches(msg, m.keys.ExportJSON):
		return m.startExport("json")
	}
	return m, nil
}

func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Enter) {
		return m.applyTeamFilter(m.filterInput.Value())
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.refreshFilterSuggestions()
	return m, cmd
}

func (m Model) handleRecentKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.RecentNext) {
		if m.recentIndex < m.recent.Len()-1 {
			m.recentIndex++
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.RecentPrev) {
		if m.recentIndex > 0 {
			m.recentIndex--
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Enter) {
		entry, ok := m.recent.At(m.recentIndex)
		if !ok {
			return m, nil
		}
		return m.openEntry(entry)
	}

	return m, nil
}

func (m *Model) moveSelection(delta int) {
	if m.reveal.Revealing {
		m.reveal.Revealing = false
		m.reveal.Rows = min(m.rowCount(), m.visibleRows())
	}
	rows := m.rowCount()
	if rows == 0 {
		return
	}
	m.selectedIndex = max(0, min(rows-1, m.selectedIndex+delta))

	visible := m.visibleRows()
	if m.selectedIndex >= m.rowsOffset+visible {
		m.rowsOffset = m.selectedIndex - visible + 1
	}
	if m.selectedIndex < m.rowsOffset {
		m.rowsOffset = m.selectedIndex
	}
}

func (m *Model) clampRowsOffset() {
	rows := m.rowCount()
	visible := m.visibleRows()
	if m.rowsOffset > 0 && m.rowsOffset+visible > rows {
		m.rowsOffset = max(0, rows-visible)
	}
	if m.selectedIndex >= rows {
		m.selectedIndex = max(0, rows-1)
	}
}

func (m Model) gotoPage(step func(types.Paging, int) types.Paging) (tea.Model, tea.Cmd) {
	total := m.pageInfo().TotalPages
	before := m.currentPage()

	switch m.collection {
	case types.CollectionCaptains:
		m.captainsQ.Paging = step(m.captainsQ.Paging, total)
	case types.CollectionItems:
		m.itemsQ.Paging = step(m.itemsQ.Paging, total)
	default:
		m.listingsQ.Paging = step(m.listingsQ.Paging, total)
	}

	if m.currentPage() == before {
		return m, nil
	}
	return m.startPageLoad()
}

func (m Model) switchCollection(delta int) (tea.Model, tea.Cmd) {
	all := types.Collections()
	idx := 0
	for i, c := range all {
		if c == m.collection {
			idx = i
			break
		}
	}
	m.collection = all[(idx+delta+len(all))%len(all)]
	m.err = nil

	if m.pageInfo().Page == 0 {
		return m.startPageLoad()
	}
	return m.resetRows()
}

func (m Model) cycleSort() (tea.Model, tea.Cmd) {
	switch m.collection {
	case types.CollectionListings:
		m.listingsQ = m.listingsQ.WithSort(m.listingsQ.Sort.Next())
		return m.startPageLoad()
	case types.CollectionItems:
		m.itemSort = m.itemSort.Next()
		return m.resetRows()
	}
	return m, nil
}

func (m Model) toggleOrder() (tea.Model, tea.Cmd) {
	switch m.collection {
	case types.CollectionListings:
		m.listingsQ = m.listingsQ.WithOrder(m.listingsQ.Order.Toggle())
		return m.startPageLoad()
	case types.CollectionItems:
		m.itemOrder = m.itemOrder.Toggle()
		return m.resetRows()
	}
	return m, nil
}

func (m Model) cycleRarity() (tea.Model, tea.Cmd) {
	if m.collection == types.CollectionListings {
		m.listingsQ = m.listingsQ.WithRarity(m.listingsQ.Rarity.Next())
		return m.startPageLoad()
	}
	m.filter.Rarity = m.filter.Rarity.Next()
	return m.resetRows()
}

func (m Model) cycleType() (tea.Model, tea.Cmd) {
	switch m.collection {
	case types.CollectionListings:
		m.listingsQ = m.listingsQ.WithType(m.listingsQ.Type.Next())
		return m.startPageLoad()
	case types.CollectionItems:
		m.itemsQ = m.itemsQ.WithType(m.itemsQ.Type.Next())
		return m.startPageLoad()
	}
	return m, nil
}

func (m Model) clearFilter() (tea.Model, tea.Cmd) {
	if !m.filter.Active() {
		return m, nil
	}
	m.filter = types.ItemFilter{}
	m.filterInput.SetValue("")
	m.filterInput.SetSuggestions(nil)
	m.notice = "filter cleared"
	return m.resetRows()
}

func (m Model) applyTeamFilter(raw string) (tea.Model, tea.Cmd) {
	query := strings.TrimSpace(raw)
	if query == "" {
		m.filter.Team = types.TeamUnknown
		m.notice = "team filter cleared"
		m.err = nil
		updated, cmd := m.resetRows()
		m = updated.(Model)
		return m.changeFocusWith(panelBrowse, cmd)
	}

	team := m.teamIndex.Resolve(query)
	if team == types.TeamUnknown {
		m.err = fmt.Errorf("no team matches %q", query)
		return m, nil
	}

	m.err = nil
	m.filter.Team = team
	m.filterInput.SetValue(team.FullName())
	m.notice = "showing " + team.FullName()
	updated, cmd := m.resetRows()
	m = updated.(Model)
	return m.changeFocusWith(panelBrowse, cmd)
}

func (m *Model) refreshFilterSuggestions() {
	prefix := strings.TrimSpace(m.filterInput.Value())
	if len(prefix) < 2 || m.teamIndex == nil {
		m.filterInput.SetSuggestions(nil)
		return
	}
	m.filterInput.SetSuggestions(m.teamIndex.Suggest(prefix))
}

func (m Model) hasFilterSuggestionMatch() bool {
	if len(m.filterInput.MatchedSuggestions()) > 0 {
		return true
	}

	prefix := strings.ToLower(strings.TrimSpace(m.filterInput.Value()))
	if prefix == "" {
		return false
	}

	for _, suggestion := range m.filterInput.AvailableSuggestions() {
		if strings.HasPrefix(strings.ToLower(suggestion), prefix) {
			return true
		}
	}
	return false
}

func (m Model) openSelected() (tea.Model, tea.Cmd) {
	switch m.collection {
	case types.CollectionCaptains:
		rows := m.visibleCaptains()
		if m.selectedIndex >= len(rows) {
			return m, nil
		}
		return m.openCaptain(rows[m.selectedIndex])
	case types.CollectionItems:
		rows := m.visibleItems()
		if m.selectedIndex >= len(rows) {
			return m, nil
		}
		it := rows[m.selectedIndex]
		return m.openItem(it.UUID, it.Name)
	default:
		rows := m.visibleListings()
		if m.selectedIndex >= len(rows) {
			return m, nil
		}
		l := rows[m.selectedIndex]
		return m.openListing(l.Item.UUID, l.ListingName)
	}
}

func (m Model) openEntry(entry RecentEntry) (tea.Model, tea.Cmd) {
	switch entry.Kind {
	case detailListing:
		return m.openListing(entry.UUID, entry.Name)
	case detailItem:
		return m.openItem(entry.UUID, entry.Name)
	case detailCaptain:
		for _, c := range m.captains.Captains {
			if c.UUID == entry.UUID {
				return m.openCaptain(c)
			}
		}
		m.notice = entry.Name + " is not on the loaded captains page"
	}
	return m, nil
}

func (m Model) reopenDetail() (tea.Model, tea.Cmd) {
	switch m.detail.Kind {
	case detailListing:
		return m.openListing(m.detail.UUID, m.detail.Name)
	case detailItem:
		return m.openItem(m.detail.UUID, m.detail.Name)
	}
	return m, nil
}

func (m Model) openCaptain(c types.Captain) (tea.Model, tea.Cmd) {
	m.cancelDetailLoad()
	m.detailGen++
	m.detail = DetailState{Kind: detailCaptain, UUID: c.UUID, Name: c.Name, Captain: c}
	m.err = nil
	m.recent.Add(RecentEntry{Kind: detailCaptain, UUID: c.UUID, Name: c.Name, ViewedAt: m.now()})
	return m.restartDetailReveal()
}

func (m Model) openListing(id, name string) (tea.Model, tea.Cmd) {
	ctx, gen := m.beginDetailLoad(detailListing, id, name)
	catalog := m.catalog
	return m, tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			listing, err := catalog.Listing(ctx, id)
			return listingLoadedMsg{gen: gen, listing: listing, err: err}
		},
	)
}

func (m Model) openItem(id, name string) (tea.Model, tea.Cmd) {
	ctx, gen := m.beginDetailLoad(detailItem, id, name)
	catalog := m.catalog
	return m, tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			item, err := catalog.Item(ctx, id)
			return itemLoadedMsg{gen: gen, item: item, err: err}
		},
	)
}

func (m *Model) beginDetailLoad(kind detailKind, id, name string) (context.Context, int) {
	m.cancelDetailLoad()
	ctx, cancel := context.WithCancel(context.Background())
	m.detailCancel = cancel
	m.detailGen++

	m.detail = DetailState{Kind: kind, Loading: true, UUID: id, Name: name}
	m.detailReveal.Gen++
	m.detailReveal.Revealed = 0
	m.skeletonFrame = 0
	m.err = nil
	m.notice = ""
	return ctx, m.detailGen
}

func (m Model) startPageLoad() (tea.Model, tea.Cmd) {
	m.cancelPageLoad()
	ctx, cancel := context.WithCancel(context.Background())
	m.pageCancel = cancel
	m.pageGen++

	m.loading = true
	m.loadingDots = 0
	m.err = nil
	m.notice = ""

	return m, tea.Batch(m.spinner.Tick, m.fetchPage(ctx, m.pageGen))
}

// fetchPage creates a command that loads the active collection's page.
func (m Model) fetchPage(ctx context.Context, gen int) tea.Cmd {
	catalog := m.catalog
	collection := m.collection
	captainsQ, itemsQ, listingsQ := m.captainsQ, m.itemsQ, m.listingsQ

	return func() tea.Msg {
		msg := pageLoadedMsg{collection: collection, gen: gen}
		switch collection {
		case types.CollectionCaptains:
			msg.captains, msg.err = catalog.Captains(ctx, captainsQ)
		case types.CollectionItems:
			msg.items, msg.err = catalog.Items(ctx, itemsQ)
		default:
			msg.listings, msg.err = catalog.Listings(ctx, listingsQ)
		}
		return msg
	}
}

func (m *Model) cancelPageLoad() {
	if m.pageCancel == nil {
		return
	}
	m.pageCancel()
	m.pageCancel = nil
}

func (m *Model) cancelDetailLoad() {
	if m.detailCancel == nil {
		return
	}
	m.detailCancel()
	m.detailCancel = nil
}

func (m *Model) cancelActiveLoads() {
	m.cancelPageLoad()
	m.cancelDetailLoad()
}

func (m Model) startExport(ext string) (tea.Model, tea.Cmd) {
	if m.detail.Kind != detailListing || m.detail.Loading {
		m.notice = "open a marketplace listing to export"
		return m, nil
	}

	listing := m.detail.Listing
	homeDir := m.homeDir
	now := m.now()
	return m, func() tea.Msg {
		dir, err := homeDir()
		if err != nil {
			return exportResultMsg{err: fmt.Errorf("resolve export directory: %w", err)}
		}
		path := BuildExportPath(dir, listing.ListingName, ext, now)
		if ext == "json" {
			err = ExportHistoryJSON(path, listing, now)
		} else {
			err = ExportHistoryCSV(path, listing)
		}
		return exportResultMsg{path: path, err: err}
	}
}

func (m Model) changeViewMode(mode insight.ViewMode) (tea.Model, tea.Cmd) {
	if m.viewMode == mode {
		return m, nil
	}
	m.viewMode = mode
	if m.detail.Kind != detailListing || m.detail.Loading {
		return m, nil
	}
	return m.restartDetailReveal()
}

func (m Model) restartDetailReveal() (tea.Model, tea.Cmd) {
	m.detailReveal.Gen++
	if m.reduceMotion {
		m.detailReveal.Revealed = m.detailRevealTarget()
		return m, nil
	}
	m.detailReveal.Revealed = 0
	gen := m.detailReveal.Gen
	return m, tea.Tick(m.detailRevealTickDuration(), func(time.Time) tea.Msg {
		return detailRevealTickMsg{gen: gen}
	})
}

func (m Model) detailRevealTarget() int {
	l := m.layout()
	return len(m.detailBodyLines(l.detailWidth-2, l.detailHeight-2))
}

func (m Model) detailRevealTickDuration() time.Duration {
	if m.detail.Kind == detailListing && m.viewMode == insight.ViewSummary {
		return 40 * time.Millisecond
	}
	return 20 * time.Millisecond
}

func (m Model) toggleReduceMotion() Model {
	m.reduceMotion = !m.reduceMotion
	if !m.reduceMotion {
		return m
	}

	// Snap every animation channel to a stable resting state immediately.
	m.focusFlash.Gen++
	m.focusFlash.Active = false
	m.focusFlash.Ticks = 0

	m.reveal.Gen++
	m.reveal.Revealing = false
	m.reveal.Rows = min(m.rowCount(), m.visibleRows())

	m.detailReveal.Gen++
	m.detailReveal.Revealed = m.detailRevealTarget()
	return m
}

// updateFocus manages focus state for the filter input.
func (m Model) updateFocus() Model {
	if m.focusedPanel == panelFilter {
		m.filterInput.Focus()
	} else {
		m.filterInput.Blur()
	}
	return m
}

func (m Model) changeFocus(newPanel int) (tea.Model, tea.Cmd) {
	return m.changeFocusWith(newPanel, nil)
}

func (m Model) changeFocusWith(newPanel int, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.focusedPanel == newPanel {
		m = m.updateFocus()
		return m, cmd
	}

	m.focusedPanel = newPanel
	m = m.updateFocus()
	m.focusFlash.Gen++
	if m.reduceMotion {
		m.focusFlash.Ticks = 0
		m.focusFlash.Active = false
		return m, cmd
	}
	m.focusFlash.Ticks = 3
	m.focusFlash.Active = true
	gen := m.focusFlash.Gen

	return m, tea.Batch(cmd, tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return focusFlashTickMsg{gen: gen}
	}))
}
