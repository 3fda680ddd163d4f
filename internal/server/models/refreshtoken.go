package models

import "time"

type RefreshToken struct {
	UserID  string
	Expires time.Time
}
