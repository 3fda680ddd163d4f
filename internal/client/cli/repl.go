package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App implements
// it; tests use a recording stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Name(ctx context.Context, args []string) error

	Vent(ctx context.Context) error
	Letter(ctx context.Context) error
	Reflect(ctx context.Context) error

	List(ctx context.Context, args []string) error
	Calendar(ctx context.Context, args []string) error
	Day(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error

	Pin(ctx context.Context, args []string) error
	Unpin(ctx context.Context, args []string) error
	Favorite(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Attach(ctx context.Context, args []string) error
	Audio(ctx context.Context, args []string) error

	Stats(ctx context.Context) error
	Prompt(ctx context.Context, args []string) error
	Chat(ctx context.Context) error
	Quota(ctx context.Context) error
	Sync(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: register, login, prompt, help, exit"
	helpSignedIn  = `Available commands:
  vent | letter | reflect          write an entry
  list [type] [#emotion] [fav] [pinned] [YYYY-MM]
  calendar [YYYY-MM] | day YYYY-MM-DD | show <id>
  pin | unpin | fav | delete <id>
  attach <id> <file> | audio <id>
  chat | quota | stats | prompt [YYYY-MM-DD]
  sync | name [new name] | logout | exit`
)

// signedInOnly lists the commands that need a session.
var signedInOnly = map[string]bool{
	"logout": true, "name": true,
	"vent": true, "letter": true, "reflect": true,
	"list": true, "l": true, "calendar": true, "day": true, "show": true,
	"pin": true, "unpin": true, "fav": true, "delete": true,
	"attach": true, "audio": true,
	"stats": true, "chat": true, "quota": true, "sync": true,
}

// runREPL reads commands from reader until EOF, exit or quit. The first
// token selects the command, the rest are its arguments. Command errors are
// reported and never end the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("unsaid %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		if signedInOnly[cmd] && !a.isLoggedIn() {
			printlnFn("Please login first.")
			continue
		}

		var cerr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpAnonymous)
			}
		case "register":
			cerr = a.Register(ctx)
		case "login":
			cerr = a.Login(ctx)
		case "logout":
			cerr = a.Logout(ctx)
		case "name":
			cerr = a.Name(ctx, args)
		case "vent":
			cerr = a.Vent(ctx)
		case "letter":
			cerr = a.Letter(ctx)
		case "reflect":
			cerr = a.Reflect(ctx)
		case "l", "list":
			cerr = a.List(ctx, args)
		case "calendar":
			cerr = a.Calendar(ctx, args)
		case "day":
			cerr = a.Day(ctx, args)
		case "show":
			cerr = a.Show(ctx, args)
		case "pin":
			cerr = a.Pin(ctx, args)
		case "unpin":
			cerr = a.Unpin(ctx, args)
		case "fav":
			cerr = a.Favorite(ctx, args)
		case "delete":
			cerr = a.Delete(ctx, args)
		case "attach":
			cerr = a.Attach(ctx, args)
		case "audio":
			cerr = a.Audio(ctx, args)
		case "stats":
			cerr = a.Stats(ctx)
		case "prompt":
			cerr = a.Prompt(ctx, args)
		case "chat":
			cerr = a.Chat(ctx)
		case "quota":
			cerr = a.Quota(ctx)
		case "sync":
			cerr = a.Sync(ctx)
		case "exit", "quit":
			printlnFn("Take care. Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if cerr != nil {
			printlnFn(errorStyle.Render(describeError(cerr)))
		}
		if err != nil {
			return
		}
	}
}
