package diary

import (
	"cmp"
	"slices"
	"time"

	"github.com/dmitrijs2005/unsaid/internal/common"
)

// DayKey returns the YYYY-MM-DD calendar day of a millisecond timestamp
// in loc.
func DayKey(timestampMs int64, loc *time.Location) string {
	return time.UnixMilli(timestampMs).In(loc).Format(common.DayLayout)
}

// noon pins t to midday so that stepping by whole days never crosses a
// DST edge into the wrong date.
func noon(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, t.Location())
}

// CurrentStreak counts consecutive calendar days with at least one entry,
// starting at the day of now and walking backwards. A day without entries
// ends the streak, including today.
func CurrentStreak(entries []Entry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}
	loc := now.Location()
	days := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		days[DayKey(e.Timestamp, loc)] = struct{}{}
	}

	streak := 0
	for day := noon(now); ; day = day.AddDate(0, 0, -1) {
		if _, ok := days[day.Format(common.DayLayout)]; !ok {
			return streak
		}
		streak++
	}
}

type EmotionCount struct {
	Emotion Emotion `json:"emotion"`
	Count   int     `json:"count"`
}

// EmotionHistogram counts tag occurrences across entries, most frequent
// first; equal counts are ordered by tag name. Every occurrence counts,
// unknown tags included.
func EmotionHistogram(entries []Entry) []EmotionCount {
	counts := map[Emotion]int{}
	for _, e := range entries {
		for _, tag := range e.Emotions {
			counts[tag]++
		}
	}

	out := make([]EmotionCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, EmotionCount{Emotion: tag, Count: n})
	}
	slices.SortFunc(out, func(a, b EmotionCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Emotion, b.Emotion)
	})
	return out
}

// GroupByDay buckets entries by DayKey, each bucket newest first.
func GroupByDay(entries []Entry, loc *time.Location) map[string][]Entry {
	out := map[string][]Entry{}
	for _, e := range entries {
		k := DayKey(e.Timestamp, loc)
		out[k] = append(out[k], e)
	}
	for k := range out {
		slices.SortStableFunc(out[k], newestFirst)
	}
	return out
}

// EntriesOnDay returns the entries written on day (YYYY-MM-DD), newest first.
func EntriesOnDay(entries []Entry, day string, loc *time.Location) []Entry {
	var out []Entry
	for _, e := range entries {
		if DayKey(e.Timestamp, loc) == day {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, newestFirst)
	return out
}

// CalendarCell is one slot of a month view. Blank leading cells have Day 0.
type CalendarCell struct {
	Day   int
	Key   string
	Count int
	Today bool
}

// MonthGrid lays out a month in weeks starting on Sunday. The first week is
// padded with blank cells; the last week is not padded.
func MonthGrid(year int, month time.Month, entries []Entry, now time.Time) []CalendarCell {
	loc := now.Location()
	first := time.Date(year, month, 1, 12, 0, 0, 0, loc)
	daysIn := time.Date(year, month+1, 0, 12, 0, 0, 0, loc).Day()
	todayKey := now.Format(common.DayLayout)

	byDay := map[string]int{}
	for _, e := range entries {
		byDay[DayKey(e.Timestamp, loc)]++
	}

	cells := make([]CalendarCell, int(first.Weekday()), int(first.Weekday())+daysIn)
	for d := 1; d <= daysIn; d++ {
		key := time.Date(year, month, d, 12, 0, 0, 0, loc).Format(common.DayLayout)
		cells = append(cells, CalendarCell{
			Day:   d,
			Key:   key,
			Count: byDay[key],
			Today: key == todayKey,
		})
	}
	return cells
}
