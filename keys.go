package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit        key.Binding
	ForceQuit   key.Binding
	Tab         key.Binding
	ShiftTab    key.Binding
	NextColl    key.Binding
	PrevColl    key.Binding
	NextPage    key.Binding
	PrevPage    key.Binding
	FirstPage   key.Binding
	LastPage    key.Binding
	Sort        key.Binding
	Order       key.Binding
	Rarity      key.Binding
	Type        key.Binding
	Filter      key.Binding
	Retry       key.Binding
	ViewSum     key.Binding
	ViewHist    key.Binding
	ViewOrders  key.Binding
	ExportCSV   key.Binding
	ExportJSON  key.Binding
	ToggleAnim  key.Binding
	Escape      key.Binding
	Enter       key.Binding
	Down        key.Binding
	Up          key.Binding
	RecentNext  key.Binding
	RecentPrev  key.Binding
	ClearFilter key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next/accept"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev panel"),
		),
		NextColl: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next tab"),
		),
		PrevColl: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev tab"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n/right", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p/left", "prev page"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first page"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last page"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Order: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "order"),
		),
		Rarity: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "rarity"),
		),
		Type: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "type"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/", "f"),
			key.WithHelp("/", "team filter"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		ViewSum: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "summary"),
		),
		ViewHist: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "history"),
		),
		ViewOrders: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "orders"),
		),
		ExportCSV: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export csv"),
		),
		ExportJSON: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "export json"),
		),
		ToggleAnim: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "motion"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "browse"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open/apply"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "navigate"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "navigate"),
		),
		RecentNext: key.NewBinding(
			key.WithKeys("j", "right"),
			key.WithHelp("j/right", "next recent"),
		),
		RecentPrev: key.NewBinding(
			key.WithKeys("k", "left"),
			key.WithHelp("k/left", "prev recent"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filter"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Down, k.NextPage, k.NextColl, k.Filter, k.Sort, k.Tab, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Enter, k.Escape, k.Filter, k.ClearFilter},
		{k.Down, k.Up, k.NextPage, k.PrevPage, k.FirstPage, k.LastPage},
		{k.NextColl, k.PrevColl, k.Sort, k.Order, k.Rarity, k.Type},
		{k.ViewSum, k.ViewHist, k.ViewOrders, k.ExportCSV, k.ExportJSON},
		{k.Tab, k.ShiftTab, k.Retry, k.ToggleAnim, k.Quit, k.ForceQuit},
	}
}
