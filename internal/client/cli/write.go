package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/unsaid/internal/client/client"
	"github.com/dmitrijs2005/unsaid/internal/client/services"
	"github.com/dmitrijs2005/unsaid/internal/diary"
)

const (
	emptyEntryMessage = "Write something or record a voice note first 🙂"
	voiceNoteContent  = "(Voice Note)"
)

// Vent saves a free-form entry with an optional voice note. Unless the
// user asks for silence, the companion answers as a listener.
func (a *App) Vent(ctx context.Context) error {
	text, err := GetMultiline(a.reader, "What's on your mind?", a.out)
	if err != nil {
		return err
	}
	path, err := getSimpleText(a.reader, "Voice note file (optional, Enter to skip)", a.out)
	if err != nil {
		return err
	}
	if text == "" && path == "" {
		a.println(emptyEntryMessage)
		return nil
	}

	var audioID string
	if path != "" {
		if audioID, err = a.audio.Attach(ctx, path); err != nil {
			return err
		}
	}

	voiceOnly := text == ""
	if voiceOnly {
		text = voiceNoteContent
	}

	silent := !Confirm(a.reader, "Would you like a gentle reply?", a.out)

	if err := a.save(ctx, services.Draft{
		Type:     diary.TypeVent,
		Text:     text,
		IsSilent: silent,
		AudioID:  audioID,
	}); err != nil {
		return err
	}

	if !silent && !voiceOnly {
		a.listen(ctx, text)
	}
	return nil
}

// Letter saves an unsent letter. Letters never get a reply.
func (a *App) Letter(ctx context.Context) error {
	text, err := GetMultiline(a.reader, "Write the letter you will never send.", a.out)
	if err != nil {
		return err
	}
	if text == "" {
		a.println(emptyEntryMessage)
		return nil
	}
	return a.save(ctx, services.Draft{Type: diary.TypeLetter, Text: text, IsSilent: true})
}

// Reflect answers today's prompt and names the feelings behind it.
func (a *App) Reflect(ctx context.Context) error {
	prompt, _ := diary.DailyPrompt(a.journal.Now())
	a.println(titleStyle.Render(prompt))

	text, err := GetMultiline(a.reader, "Take your time.", a.out)
	if err != nil {
		return err
	}
	if text == "" {
		a.println(emptyEntryMessage)
		return nil
	}

	names := make([]string, len(diary.AllEmotions))
	for i, e := range diary.AllEmotions {
		names[i] = string(e)
	}
	line, err := getSimpleText(a.reader, "How are you feeling? ("+strings.Join(names, ", ")+")", a.out)
	if err != nil {
		return err
	}

	return a.save(ctx, services.Draft{
		Type:     diary.TypeReflection,
		Text:     text,
		Emotions: splitList(line),
		IsSilent: true,
	})
}

func (a *App) save(ctx context.Context, d services.Draft) error {
	saved, err := a.journal.Save(ctx, a.userID(), d)
	if err != nil {
		return err
	}
	if saved.Pending {
		a.setMode(ctx, ModeOffline)
		a.println(mutedStyle.Render("Saved on this device. It will sync when the server is back."))
		return nil
	}
	a.println(okStyle.Render("Saved " + shortID(saved.Entry.ID) + "."))
	return nil
}

// listen prints a listener reply. Failures are only logged: the entry is
// already saved.
func (a *App) listen(ctx context.Context, text string) {
	if a.Mode() == ModeOffline {
		return
	}
	resp, err := a.companion.Listen(ctx, text)
	if err != nil {
		if errors.Is(err, client.ErrCompanionUnavailable) {
			a.println(mutedStyle.Render(describeError(err)))
		}
		a.logger.Warn(ctx, "listener reply failed", "error", err)
		return
	}
	a.println(renderReply(resp))
}
