package cli

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/unsaid/internal/client/client"
	"github.com/dmitrijs2005/unsaid/internal/common"
	"github.com/dmitrijs2005/unsaid/internal/diary"
)

func (a *App) Stats(ctx context.Context) error {
	st, err := a.journal.Stats(ctx, a.userID())
	if err != nil {
		return err
	}
	a.println(renderStats(st))
	return nil
}

// Prompt prints the writing prompt of today or of the given date. It
// needs no session.
func (a *App) Prompt(ctx context.Context, args []string) error {
	day := a.journal.Now().In(a.journal.Location())
	if len(args) > 0 {
		t, err := time.ParseInLocation(common.DayLayout, args[0], a.journal.Location())
		if err != nil {
			return usage("prompt [YYYY-MM-DD]")
		}
		day = t
	}
	prompt, _ := diary.DailyPrompt(day)
	a.println(titleStyle.Render(prompt))
	return nil
}

// Chat runs a conversation until an empty line, /done, or the daily limit.
func (a *App) Chat(ctx context.Context) error {
	a.println(renderHistory(a.companion.History()))
	a.println(mutedStyle.Render("(empty line or /done to stop)"))

	for {
		line, err := getSimpleText(a.reader, "you", a.out)
		if err != nil {
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" || line == "/done" {
			return nil
		}

		resp, err := a.companion.Chat(ctx, line)
		if err != nil {
			if errors.Is(err, client.ErrUnavailable) {
				a.setMode(ctx, ModeOffline)
			}
			return err
		}
		a.println(renderReply(resp))
		if !resp.Allowed {
			return nil
		}
	}
}

func (a *App) Quota(ctx context.Context) error {
	al, err := a.companion.Allowance(ctx)
	if err != nil {
		return err
	}
	a.println(renderAllowance(al))
	return nil
}

// Sync pushes entries written or deleted while offline.
func (a *App) Sync(ctx context.Context) error {
	rep, err := a.journal.Sync(ctx, a.userID())
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			a.setMode(ctx, ModeOffline)
		}
		return err
	}
	a.setMode(ctx, ModeOnline)
	switch {
	case rep.Pushed == 0 && rep.Failed == 0:
		a.println("Everything is in sync.")
	case rep.Failed == 0:
		a.printf("Synced %d change(s).\n", rep.Pushed)
	default:
		a.printf("Synced %d change(s), %d failed and stay queued.\n", rep.Pushed, rep.Failed)
	}
	return nil
}
