package models

import "time"

// CheckIn records that a user checked in, without any of the text.
type CheckIn struct {
	UserID     string
	HasText    bool
	TextLength int
	HasAudio   bool
	AIUsed     bool
	CreatedAt  time.Time
}
