package main

import (
	"fmt"
	"strings"
	"time"
)

const recentMaxEntries = 20

// RecentEntry is one viewed listing, item or captain.
type RecentEntry struct {
	Kind     detailKind
	UUID     string
	Name     string
	ViewedAt time.Time
}

func (e RecentEntry) key() string {
	return fmt.Sprintf("%d:%s", e.Kind, strings.ToLower(strings.TrimSpace(e.UUID)))
}

// RecentList is the in-memory, most-recent-first list of viewed entries.
type RecentList struct {
	entries []RecentEntry
}

// Add records entry, moving an existing entry for the same record to the front.
func (l *RecentList) Add(entry RecentEntry) {
	entry.UUID = strings.TrimSpace(entry.UUID)
	entry.Name = strings.TrimSpace(entry.Name)
	if entry.UUID == "" {
		return
	}

	k := entry.key()
	for i, existing := range l.entries {
		if existing.key() == k {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			break
		}
	}
	l.entries = append([]RecentEntry{entry}, l.entries...)
	if len(l.entries) > recentMaxEntries {
		l.entries = l.entries[:recentMaxEntries]
	}
}

// Entries returns a copy of the list.
func (l RecentList) Entries() []RecentEntry {
	return append([]RecentEntry(nil), l.entries...)
}

func (l RecentList) Len() int {
	return len(l.entries)
}

// At returns the entry at i.
func (l RecentList) At(i int) (RecentEntry, bool) {
	if i < 0 || i >= len(l.entries) {
		return RecentEntry{}, false
	}
	return l.entries[i], true
}

func formatRelativeTime(ts, now time.Time) string {
	if ts.IsZero() {
		return ""
	}

	if now.Before(ts) {
		return "just now"
	}

	d := now.Sub(ts)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return ts.Format("Jan 02")
	}
}
