package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := ""
	if name := a.identityName(); name != "" {
		s = name + " "
	}
	if m := a.Mode(); m != "" {
		s += string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root restores a saved session, starts the connectivity watcher and runs
// the REPL until the user leaves.
func (a *App) Root(ctx context.Context) {
	a.println(titleStyle.Render("Unsaid") + mutedStyle.Render(" - a quiet place for what you don't say out loud (type 'help')"))

	id, ok, err := a.authService.Restore(ctx)
	switch {
	case err != nil:
		a.logger.Warn(ctx, "could not restore session", "error", err)
	case ok:
		a.setIdentity(id)
		a.checkOnline(ctx)
		a.greet(ctx)
	default:
		a.println("Type 'login' to sign in or 'register' to create an account.")
	}

	wctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(wctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}
