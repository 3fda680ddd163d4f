package cli

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dmitrijs2005/unsaid/internal/common"
	"github.com/dmitrijs2005/unsaid/internal/diary"
)

var monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

// parseFilter reads list arguments in any order: an entry type, an
// emotion (with or without '#'), "fav", "pinned" and a YYYY-MM month.
func parseFilter(args []string) (diary.Filter, error) {
	var f diary.Filter
	for _, arg := range args {
		switch low := strings.ToLower(arg); {
		case low == "fav" || low == "favorites":
			f.FavoritesOnly = true
		case low == "pinned":
			f.PinnedOnly = true
		case monthRe.MatchString(arg):
			f.Month = arg
		default:
			if t, err := diary.ParseEntryType(low); err == nil {
				f.Type = t
				continue
			}
			if e, ok := diary.ParseEmotion(strings.TrimPrefix(arg, "#")); ok {
				f.Emotion = e
				continue
			}
			return diary.Filter{}, usage("list [vent|letter|reflection|chat] [#emotion] [fav] [pinned] [YYYY-MM]")
		}
	}
	return f, nil
}

func (a *App) List(ctx context.Context, args []string) error {
	f, err := parseFilter(args)
	if err != nil {
		return err
	}

	l, err := a.journal.List(ctx, a.userID(), f)
	if err != nil {
		return err
	}
	if l.Offline {
		a.setMode(ctx, ModeOffline)
		a.println(mutedStyle.Render("(offline, showing entries saved on this device)"))
	}
	a.println(renderList(l.Entries, a.journal.Location()))
	return nil
}

// Calendar shows a month with the number of entries per day.
func (a *App) Calendar(ctx context.Context, args []string) error {
	now := a.journal.Now().In(a.journal.Location())
	year, month := now.Year(), now.Month()
	if len(args) > 0 {
		t, err := time.ParseInLocation("2006-01", args[0], a.journal.Location())
		if err != nil {
			return usage("calendar [YYYY-MM]")
		}
		year, month = t.Year(), t.Month()
	}

	l, err := a.journal.List(ctx, a.userID(), diary.Filter{})
	if err != nil {
		return err
	}
	a.println(renderCalendar(year, month, diary.MonthGrid(year, month, l.Entries, now)))
	return nil
}

// Day lists the entries written on one calendar day.
func (a *App) Day(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("day YYYY-MM-DD")
	}
	if _, err := time.Parse(common.DayLayout, args[0]); err != nil {
		return usage("day YYYY-MM-DD")
	}

	l, err := a.journal.List(ctx, a.userID(), diary.Filter{})
	if err != nil {
		return err
	}
	a.println(renderList(diary.EntriesOnDay(l.Entries, args[0], a.journal.Location()), a.journal.Location()))
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	e, err := a.resolve(ctx, args, "show <id>")
	if err != nil {
		return err
	}
	a.println(renderEntry(e, a.journal.Location()))
	return nil
}

// resolve finds the entry whose id starts with args[0]. The prefix must
// be unambiguous.
func (a *App) resolve(ctx context.Context, args []string, use string) (diary.Entry, error) {
	e, _, err := a.resolveIn(ctx, args, use)
	return e, err
}

// resolveIn is resolve that also hands back the listing it searched.
func (a *App) resolveIn(ctx context.Context, args []string, use string) (diary.Entry, []diary.Entry, error) {
	if len(args) == 0 || args[0] == "" {
		return diary.Entry{}, nil, usage(use)
	}
	prefix := strings.ToLower(args[0])

	l, err := a.journal.List(ctx, a.userID(), diary.Filter{})
	if err != nil {
		return diary.Entry{}, nil, err
	}

	var found []diary.Entry
	for _, e := range l.Entries {
		if strings.HasPrefix(strings.ToLower(e.ID), prefix) {
			found = append(found, e)
		}
	}
	switch len(found) {
	case 0:
		return diary.Entry{}, nil, common.ErrorNotFound
	case 1:
		return found[0], l.Entries, nil
	}
	return diary.Entry{}, nil, fmt.Errorf("%w: %q matches %d entries, type more of the id", common.ErrorValidation, args[0], len(found))
}
