package cli

import (
	"context"
	"os/exec"
	"runtime"

	"github.com/dmitrijs2005/unsaid/internal/diary"
)

// Pin keeps one entry on top of the list. Only one entry is pinned at a
// time, so pinning replaces the previous pin.
func (a *App) Pin(ctx context.Context, args []string) error {
	e, all, err := a.resolveIn(ctx, args, "pin <id>")
	if err != nil {
		return err
	}
	if err := a.journal.Pin(ctx, a.userID(), e.ID); err != nil {
		return err
	}
	msg := "Pinned " + shortID(e.ID) + "."
	if prev, ok := diary.Pinned(all); ok && prev.ID != e.ID {
		msg += " It replaces " + shortID(prev.ID) + "."
	}
	a.println(okStyle.Render(msg))
	return nil
}

func (a *App) Unpin(ctx context.Context, args []string) error {
	e, err := a.resolve(ctx, args, "unpin <id>")
	if err != nil {
		return err
	}
	if err := a.journal.Unpin(ctx, a.userID(), e.ID); err != nil {
		return err
	}
	a.println("Unpinned " + shortID(e.ID) + ".")
	return nil
}

func (a *App) Favorite(ctx context.Context, args []string) error {
	e, err := a.resolve(ctx, args, "fav <id>")
	if err != nil {
		return err
	}
	fav, err := a.journal.ToggleFavorite(ctx, a.userID(), e.ID)
	if err != nil {
		return err
	}
	if fav {
		a.println(okStyle.Render("★ Added " + shortID(e.ID) + " to favorites."))
	} else {
		a.println("Removed " + shortID(e.ID) + " from favorites.")
	}
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	e, err := a.resolve(ctx, args, "delete <id>")
	if err != nil {
		return err
	}
	a.println(renderEntryLine(e, a.journal.Location()))
	if !Confirm(a.reader, "Delete this entry for good?", a.out) {
		a.println("Kept.")
		return nil
	}

	pending, err := a.journal.Delete(ctx, a.userID(), e.ID)
	if err != nil {
		return err
	}
	if pending {
		a.setMode(ctx, ModeOffline)
		a.println(mutedStyle.Render("Deleted on this device. The server copy goes on the next sync."))
		return nil
	}
	a.println("Deleted.")
	return nil
}

// Attach uploads a voice note and links it to an existing entry.
func (a *App) Attach(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("attach <id> <file>")
	}
	e, err := a.resolve(ctx, args[:1], "attach <id> <file>")
	if err != nil {
		return err
	}
	audioID, err := a.audio.Attach(ctx, args[1])
	if err != nil {
		return err
	}
	if err := a.journal.AttachAudio(ctx, a.userID(), e.ID, audioID); err != nil {
		return err
	}
	a.println(okStyle.Render("Voice note attached to " + shortID(e.ID) + "."))
	return nil
}

// openFn hands a downloaded file to the desktop player; swapped in tests.
var openFn = openFile

func openFile(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}

// Audio downloads the voice note of an entry and tries to play it.
func (a *App) Audio(ctx context.Context, args []string) error {
	e, err := a.resolve(ctx, args, "audio <id>")
	if err != nil {
		return err
	}
	if !e.HasAudio() {
		a.println("This entry has no voice note.")
		return nil
	}

	path, err := a.audio.Fetch(ctx, e.AudioID)
	if err != nil {
		return err
	}
	a.println("Saved to " + path)
	if err := openFn(path); err != nil {
		a.logger.Debug(ctx, "no player for voice note", "path", path, "error", err)
	}
	return nil
}
