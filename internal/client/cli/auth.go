package cli

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/unsaid/internal/client/services"
	"github.com/dmitrijs2005/unsaid/internal/common"
)

// getSimpleText and getPassword are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register creates an account. The user still has to login afterwards.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, userName, password); err != nil {
		return err
	}

	a.println(okStyle.Render("Account created. You can login now."))
	return nil
}

func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.authService.Login(ctx, userName, password)
	if err != nil {
		a.logger.Warn(ctx, "login failed", "username", userName, "error", err)
		return err
	}

	a.setIdentity(id)
	a.setMode(ctx, ModeOnline)
	a.companion.Reset()
	a.greet(ctx)
	return nil
}

// Logout forgets the saved session. Cached entries stay on disk for the
// next login of the same user.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.setIdentity(services.Identity{})
	a.companion.Reset()
	a.println("Logged out.")
	return nil
}

// Name shows the profile, or renames the user when a new name is given.
func (a *App) Name(ctx context.Context, args []string) error {
	if len(args) > 0 {
		name := strings.Join(args, " ")
		if err := a.authService.SetName(ctx, name); err != nil {
			return err
		}
		a.println(okStyle.Render("Nice to meet you, " + name + "."))
		return nil
	}

	p, err := a.authService.Profile(ctx)
	if err != nil {
		return err
	}
	name := p.Name
	if name == "" {
		name = "(not set, use 'name <your name>')"
	}
	joined := "-"
	if p.JoinedDate > 0 {
		joined = time.UnixMilli(p.JoinedDate).In(a.journal.Location()).Format("02 Jan 2006")
	}
	a.printf("username: %s\nname:     %s\njoined:   %s\nstreak:   %d day(s)\n", p.Username, name, joined, p.Streak)
	return nil
}

// greet prints the welcome line. The display name comes from the server
// when it is reachable, otherwise the username is used.
func (a *App) greet(ctx context.Context) {
	name := a.identityName()
	if p, err := a.authService.Profile(ctx); err == nil && p.Name != "" {
		name = p.Name
	}
	a.println(titleStyle.Render("Welcome back, " + name + "."))
}
