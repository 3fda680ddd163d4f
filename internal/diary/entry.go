// Package diary holds the journal data model and the pure computations the
// client and server derive from it: day keys, streaks, the emotion histogram,
// pinning, calendar grouping and the daily writing prompt.
package diary

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/unsaid/internal/common"
)

type EntryType string

const (
	TypeVent       EntryType = "vent"
	TypeLetter     EntryType = "letter"
	TypeReflection EntryType = "reflection"
	TypeChat       EntryType = "chat"
)

// Valid reports whether t is one of the known entry types.
func (t EntryType) Valid() bool {
	switch t {
	case TypeVent, TypeLetter, TypeReflection, TypeChat:
		return true
	}
	return false
}

// ParseEntryType accepts a type name in any case.
func ParseEntryType(s string) (EntryType, error) {
	t := EntryType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown entry type %q", common.ErrorValidation, s)
	}
	return t, nil
}

type Emotion string

const (
	Anxious     Emotion = "Anxious"
	Drained     Emotion = "Drained"
	Lonely      Emotion = "Lonely"
	Overwhelmed Emotion = "Overwhelmed"
	Angry       Emotion = "Angry"
	Sad         Emotion = "Sad"
	Numb        Emotion = "Numb"
	Confused    Emotion = "Confused"
	Peaceful    Emotion = "Peaceful"
	Grateful    Emotion = "Grateful"
)

// AllEmotions lists the selectable tags in display order.
var AllEmotions = []Emotion{
	Anxious, Drained, Lonely, Overwhelmed, Angry,
	Sad, Numb, Confused, Peaceful, Grateful,
}

// ParseEmotion matches a tag case-insensitively against AllEmotions.
func ParseEmotion(s string) (Emotion, bool) {
	s = strings.TrimSpace(s)
	for _, e := range AllEmotions {
		if strings.EqualFold(string(e), s) {
			return e, true
		}
	}
	return "", false
}

// NormalizeEmotions validates tags chosen for a new entry and drops
// duplicates, keeping first-seen order.
func NormalizeEmotions(tags []string) ([]Emotion, error) {
	out := make([]Emotion, 0, len(tags))
	for _, tag := range tags {
		e, ok := ParseEmotion(tag)
		if !ok {
			return nil, fmt.Errorf("%w: unknown emotion %q", common.ErrorValidation, tag)
		}
		if !slices.Contains(out, e) {
			out = append(out, e)
		}
	}
	return out, nil
}

// Entry is one journal record. Content is opaque here: it may be an
// encrypted envelope, legacy plaintext or empty.
type Entry struct {
	ID         string    `json:"id"`
	Timestamp  int64     `json:"timestamp"` // ms since epoch, set at creation
	Content    string    `json:"content"`
	Type       EntryType `json:"type"`
	Emotions   []Emotion `json:"emotions,omitempty"`
	IsSilent   bool      `json:"isSilent,omitempty"`
	IsPinned   bool      `json:"isPinned,omitempty"`
	IsFavorite bool      `json:"isFavorite,omitempty"`
	AudioID    string    `json:"audioId,omitempty"`
}

// HasAudio reports whether a voice note is attached.
func (e Entry) HasAudio() bool { return e.AudioID != "" }

// UserProfile is the small per-user record kept next to the journal.
type UserProfile struct {
	Name       string `json:"name"`
	JoinedDate int64  `json:"joinedDate"`
	Streak     int    `json:"streak"`
	LastUsed   int64  `json:"lastUsed"`
}
