package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"showmarket/api"
	"showmarket/insight"
	"showmarket/logging"
	"showmarket/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Panel focus states
const (
	panelBrowse = iota
	panelDetail
	panelFilter
	panelRecent
	panelCount
)

// layoutOverhead is the number of rows outside the browse panel body.
const layoutOverhead = 14

// browseChromeRows is the tab line, the two-line table header and the pager line.
const browseChromeRows = 4

// IntroAnimation groups intro animation state.
type IntroAnimation struct {
	Show      bool
	Completed bool
	Tick      int
	Phase     int // 0=reveal letters, 1=glow sweep, 2=fade out
}

// FocusFlash groups focus highlight animation state.
type FocusFlash struct {
	Ticks  int
	Gen    int
	Active bool
}

// RevealAnim groups row reveal animation state.
type RevealAnim struct {
	Rows      int
	Gen       int
	Revealing bool
}

// DetailReveal groups line-by-line reveal state of the detail panel.
type DetailReveal struct {
	Revealed int
	Gen      int
}

type detailKind int

const (
	detailNone detailKind = iota
	detailListing
	detailItem
	detailCaptain
)

// DetailState is what the detail panel currently shows.
type DetailState struct {
	Kind    detailKind
	Loading bool
	UUID    string
	Name    string

	Listing types.Listing
	Insight insight.ListingInsight
	Item    types.ItemDetail
	Captain types.Captain
}

// Options wires the model to its collaborators.
type Options struct {
	Catalog    api.Catalog
	Logger     *slog.Logger
	WindowSize int
}

// Model represents the application state.
type Model struct {
	// Terminal dimensions
	width  int
	height int

	// Shared components
	keys keyMap
	help help.Model

	// Intro animation
	intro IntroAnimation

	// Focus management
	focusedPanel int

	// Per-collection query state
	collection types.Collection
	captainsQ  types.CaptainsQuery
	itemsQ     types.ItemsQuery
	listingsQ  types.ListingsQuery

	// Loaded pages
	captains types.CaptainPage
	items    types.ItemPage
	listings types.ListingPage

	// Local ordering and filtering of the loaded page
	itemSort    types.ItemSortField
	itemOrder   types.SortOrder
	filter      types.ItemFilter
	filterInput textinput.Model
	teamIndex   *api.TeamIndex

	selectedIndex int
	rowsOffset    int

	// Detail
	detail   DetailState
	viewMode insight.ViewMode

	// Recently viewed
	recent      RecentList
	recentIndex int

	// State
	loading       bool
	loadingDots   int
	skeletonFrame int
	spinner       spinner.Model
	err           error
	notice        string
	reduceMotion  bool

	// Upstream
	catalog    api.Catalog
	logger     *slog.Logger
	windowSize int
	now        func() time.Time
	homeDir    func() (string, error)

	pageGen      int
	pageCancel   context.CancelFunc
	detailGen    int
	detailCancel context.CancelFunc

	// Animations
	focusFlash   FocusFlash
	reveal       RevealAnim
	detailReveal DetailReveal
}

// NewModel creates a new application model with initial state.
func NewModel(opts Options) Model {
	fi := textinput.New()
	fi.Placeholder = "team (yanks, halos, NYY)"
	fi.CharLimit = 40
	fi.Width = 28
	fi.ShowSuggestions = true

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	hp := help.New()
	hp.ShortSeparator = "  "
	hp.FullSeparator = "   "
	hp.Styles.ShortKey = keyStyle
	hp.Styles.ShortDesc = keyDescStyle
	hp.Styles.ShortSeparator = separatorStyle
	hp.Styles.Ellipsis = separatorStyle
	hp.Styles.FullKey = keyStyle
	hp.Styles.FullDesc = keyDescStyle
	hp.Styles.FullSeparator = separatorStyle

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = api.NewClient(api.DefaultBaseURL, nil, api.WithLogger(logger))
	}
	windowSize := opts.WindowSize
	if windowSize < 1 {
		windowSize = types.DefaultWindowSize
	}

	return Model{
		keys:         defaultKeyMap(),
		help:         hp,
		intro:        IntroAnimation{Show: true},
		focusedPanel: panelBrowse,
		collection:   types.CollectionListings,
		captainsQ:    types.CaptainsQuery{Paging: types.Paging{Page: 1}},
		itemsQ:       types.NewItemsQuery(),
		listingsQ:    types.NewListingsQuery(),
		itemSort:     types.ItemSortOVR,
		itemOrder:    types.SortOrderDesc,
		filterInput:  fi,
		teamIndex:    api.NewTeamIndex(),
		spinner:      sp,
		catalog:      catalog,
		logger:       logger,
		windowSize:   windowSize,
		now:          time.Now,
		homeDir:      os.UserHomeDir,
	}
}

// Init initializes the model (required by tea.Model interface).
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Tick(40*time.Millisecond, func(time.Time) tea.Msg {
			return introTickMsg{}
		}),
		func() tea.Msg { return loadPageMsg{} },
	)
}

// browseHeight returns the content height of the browse panel.
func (m Model) browseHeight() int {
	return m.layout().browseHeight
}

// visibleRows returns how many table rows fit in the browse panel.
func (m Model) visibleRows() int {
	return max(1, m.browseHeight()-browseChromeRows)
}

// rowCount returns the number of rows of the active collection after filtering.
func (m Model) rowCount() int {
	switch m.collection {
	case types.CollectionCaptains:
		return len(m.visibleCaptains())
	case types.CollectionItems:
		return len(m.visibleItems())
	default:
		return len(m.visibleListings())
	}
}

func (m Model) visibleCaptains() []types.Captain {
	if m.filter.Team == types.TeamUnknown {
		return m.captains.Captains
	}
	out := make([]types.Captain, 0, len(m.captains.Captains))
	for _, c := range m.captains.Captains {
		if types.LookupTeam(c.Team) == m.filter.Team {
			out = append(out, c)
		}
	}
	return out
}

func (m Model) visibleItems() []types.Item {
	return types.SortItems(types.ApplyItemFilter(m.items.Items, m.filter), m.itemSort, m.itemOrder)
}

func (m Model) visibleListings() []types.Listing {
	return types.ApplyListingFilter(m.listings.Listings, m.filter)
}

// pageInfo returns the paging envelope of the active collection.
func (m Model) pageInfo() types.PageInfo {
	switch m.collection {
	case types.CollectionCaptains:
		return m.captains.PageInfo
	case types.CollectionItems:
		return m.items.PageInfo
	default:
		return m.listings.PageInfo
	}
}

// currentPage returns the requested page of the active collection.
func (m Model) currentPage() int {
	switch m.collection {
	case types.CollectionCaptains:
		return m.captainsQ.Current()
	case types.CollectionItems:
		return m.itemsQ.Current()
	default:
		return m.listingsQ.Current()
	}
}

type loadPageMsg struct{}

// pageLoadedMsg carries one collection page from the catalog.
type pageLoadedMsg struct {
	collection types.Collection
	gen        int
	captains   types.CaptainPage
	items      types.ItemPage
	listings   types.ListingPage
	err        error
}

type listingLoadedMsg struct {
	gen     int
	listing types.Listing
	err     error
}

type itemLoadedMsg struct {
	gen  int
	item types.ItemDetail
	err  error
}

type exportResultMsg struct {
	path string
	err  error
}

type focusFlashTickMsg struct {
	gen int
}

type revealRowTickMsg struct {
	gen int
}

type detailRevealTickMsg struct {
	gen int
}

type introTickMsg struct{}
