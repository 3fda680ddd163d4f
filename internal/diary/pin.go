package diary

import (
	"cmp"
	"slices"
	"time"

	"github.com/dmitrijs2005/unsaid/internal/common"
)

// Pin marks the entry with id as the single pinned entry. Every other entry
// is unpinned. The input slice is not modified.
func Pin(entries []Entry, id string) ([]Entry, error) {
	if !slices.ContainsFunc(entries, func(e Entry) bool { return e.ID == id }) {
		return nil, common.ErrorNotFound
	}
	out := slices.Clone(entries)
	for i := range out {
		out[i].IsPinned = out[i].ID == id
	}
	return out, nil
}

// Unpin clears the pin on the entry with id.
func Unpin(entries []Entry, id string) ([]Entry, error) {
	i := slices.IndexFunc(entries, func(e Entry) bool { return e.ID == id })
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	out := slices.Clone(entries)
	out[i].IsPinned = false
	return out, nil
}

// Pinned returns the pinned entry, if any.
func Pinned(entries []Entry) (Entry, bool) {
	for _, e := range entries {
		if e.IsPinned {
			return e, true
		}
	}
	return Entry{}, false
}

func newestFirst(a, b Entry) int {
	return cmp.Compare(b.Timestamp, a.Timestamp)
}

// SortNewestFirst orders entries pinned first, then by timestamp descending.
func SortNewestFirst(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if a.IsPinned != b.IsPinned {
			if a.IsPinned {
				return -1
			}
			return 1
		}
		return newestFirst(a, b)
	})
}

// Filter selects entries for the diary view. Zero fields match everything.
type Filter struct {
	Type          EntryType
	Emotion       Emotion
	FavoritesOnly bool
	PinnedOnly    bool
	// Month restricts to a YYYY-MM month in Location.
	Month    string
	Location *time.Location
}

func (f Filter) Match(e Entry) bool {
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	if f.FavoritesOnly && !e.IsFavorite {
		return false
	}
	if f.PinnedOnly && !e.IsPinned {
		return false
	}
	if f.Emotion != "" && !slices.Contains(e.Emotions, f.Emotion) {
		return false
	}
	if f.Month != "" {
		loc := f.Location
		if loc == nil {
			loc = time.Local
		}
		if DayKey(e.Timestamp, loc)[:7] != f.Month {
			return false
		}
	}
	return true
}

// Apply returns the matching entries in their original order.
func (f Filter) Apply(entries []Entry) []Entry {
	var out []Entry
	for _, e := range entries {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out
}
