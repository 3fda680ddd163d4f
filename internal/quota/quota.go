// Package quota caps how many companion replies a user may request per
// calendar day. The counter lives in a Repository; "today" is a YYYY-MM-DD
// key computed in the meter's location.
package quota

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/unsaid/internal/common"
)

// DailyLimit is the default number of companion calls per user per day.
const DailyLimit = 20

// ExceededMessage is shown when a user has no allowance left.
const ExceededMessage = "You've reached today's limit for companion replies. Come back tomorrow, I'll be here."

var ErrEmptyUserID = errors.New("quota: empty user id")

// Record is the stored per-user counter.
type Record struct {
	Date       string
	CountToday int
	UpdatedAt  time.Time
}

type Allowance struct {
	Allowed   bool   `json:"allowed"`
	Remaining int    `json:"remaining"`
	Limit     int    `json:"limit"`
	Date      string `json:"date"`
}

// Repository stores one Record per user. Get returns common.ErrorNotFound
// when the user has no record yet.
type Repository interface {
	Get(ctx context.Context, userID string) (Record, error)
	Put(ctx context.Context, userID string, r Record) error
}

// Incrementer is implemented by repositories that can bump the counter in a
// single atomic step: reset to 1 when the stored date differs from today,
// otherwise add one. It returns the new count.
type Incrementer interface {
	Increment(ctx context.Context, userID, today string, now time.Time) (int, error)
}

type Meter struct {
	repo  Repository
	limit int
	now   func() time.Time
	loc   *time.Location
}

type Option func(*Meter)

func WithLimit(n int) Option {
	return func(m *Meter) {
		if n > 0 {
			m.limit = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Meter) { m.now = now }
}

func WithLocation(loc *time.Location) Option {
	return func(m *Meter) {
		if loc != nil {
			m.loc = loc
		}
	}
}

func NewMeter(repo Repository, opts ...Option) *Meter {
	m := &Meter{repo: repo, limit: DailyLimit, now: time.Now, loc: time.Local}
	for _, o := range opts {
		o(m)
	}
	return m
}

func (m *Meter) Limit() int { return m.limit }

// Today returns the current day key in the meter's location.
func (m *Meter) Today() string {
	return m.now().In(m.loc).Format(common.DayLayout)
}

// CheckAllowance reports how many calls the user has left today. It never
// writes.
func (m *Meter) CheckAllowance(ctx context.Context, userID string) (Allowance, error) {
	if userID == "" {
		return Allowance{}, ErrEmptyUserID
	}
	today := m.Today()
	full := Allowance{Allowed: true, Remaining: m.limit, Limit: m.limit, Date: today}

	rec, err := m.repo.Get(ctx, userID)
	if errors.Is(err, common.ErrorNotFound) {
		return full, nil
	}
	if err != nil {
		return Allowance{}, err
	}
	if rec.Date != today {
		return full, nil
	}

	remaining := m.limit - rec.CountToday
	if remaining <= 0 {
		return Allowance{Allowed: false, Remaining: 0, Limit: m.limit, Date: today}, nil
	}
	return Allowance{Allowed: true, Remaining: remaining, Limit: m.limit, Date: today}, nil
}

// RecordUsage counts one successful call for today and returns the new
// count. Call it only after the external call succeeded.
//
// Without an Incrementer the update is read-then-write: two concurrent
// calls for the same user can both read count N and both write N+1.
func (m *Meter) RecordUsage(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, ErrEmptyUserID
	}
	now := m.now()
	today := now.In(m.loc).Format(common.DayLayout)

	if inc, ok := m.repo.(Incrementer); ok {
		return inc.Increment(ctx, userID, today, now)
	}

	rec, err := m.repo.Get(ctx, userID)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		rec = Record{}
	case err != nil:
		return 0, err
	}

	next := Record{Date: today, CountToday: 1, UpdatedAt: now}
	if rec.Date == today {
		next.CountToday = rec.CountToday + 1
	}
	if err := m.repo.Put(ctx, userID, next); err != nil {
		return 0, err
	}
	return next.CountToday, nil
}

// Reset deletes today's count by writing a zero record.
func (m *Meter) Reset(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	now := m.now()
	return m.repo.Put(ctx, userID, Record{Date: now.In(m.loc).Format(common.DayLayout), UpdatedAt: now})
}
