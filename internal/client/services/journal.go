package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/unsaid/internal/client/client"
	"github.com/dmitrijs2005/unsaid/internal/client/repositories/entries"
	"github.com/dmitrijs2005/unsaid/internal/common"
	"github.com/dmitrijs2005/unsaid/internal/cryptox"
	"github.com/dmitrijs2005/unsaid/internal/dbx"
	"github.com/dmitrijs2005/unsaid/internal/diary"
	"github.com/dmitrijs2005/unsaid/internal/logging"
	"github.com/dmitrijs2005/unsaid/internal/rpc"
	"github.com/google/uuid"
)

// Draft is a new entry as typed by the user.
type Draft struct {
	Type     diary.EntryType
	Text     string
	Emotions []string
	IsSilent bool
	AudioID  string
}

// Saved reports where a new entry ended up. Pending entries live only in
// the local cache until the next Sync.
type Saved struct {
	Entry   diary.Entry
	Pending bool
}

// Listing is a decrypted, newest-first view of the journal.
type Listing struct {
	Entries []diary.Entry
	Offline bool
}

type SyncReport struct {
	Pushed int
	Failed int
}

type Stats struct {
	Total     int
	Streak    int
	Favorites int
	ByType    map[diary.EntryType]int
	Emotions  []diary.EmotionCount
}

type JournalService struct {
	client client.Client
	db     *sql.DB
	codec  *cryptox.Codec
	logger logging.Logger
	loc    *time.Location
	now    func() time.Time
}

func NewJournalService(c client.Client, db *sql.DB, codec *cryptox.Codec, loc *time.Location, l logging.Logger) *JournalService {
	if loc == nil {
		loc = time.Local
	}
	return &JournalService{client: c, db: db, codec: codec, logger: l, loc: loc, now: time.Now}
}

func (s *JournalService) repo(db dbx.DBTX) entries.Repository {
	return entries.NewSQLiteRepository(db)
}

// Now is the journal's clock in its configured location.
func (s *JournalService) Now() time.Time {
	return s.now().In(s.loc)
}

func (s *JournalService) Location() *time.Location {
	return s.loc
}

// seal encrypts text for storage. Blank text is stored as "".
func (s *JournalService) seal(text string) (string, error) {
	if !cryptox.ShouldEncrypt(text) {
		return "", nil
	}
	return s.codec.Encrypt(text)
}

// open reverses seal. Legacy plaintext passes through; an envelope that
// fails to decrypt becomes cryptox.Placeholder so one bad entry never
// hides the rest.
func (s *JournalService) open(ctx context.Context, e diary.Entry) diary.Entry {
	if !cryptox.IsEnvelope(e.Content) {
		return e
	}
	plain, err := s.codec.Decrypt(e.Content)
	if err != nil {
		s.logger.Warn(ctx, "entry does not decrypt", "entry_id", e.ID, "error", err)
		e.Content = cryptox.Placeholder
		return e
	}
	e.Content = plain
	return e
}

func (s *JournalService) Save(ctx context.Context, userID string, d Draft) (Saved, error) {
	if !d.Type.Valid() {
		return Saved{}, fmt.Errorf("%w: unknown entry type %q", common.ErrorValidation, d.Type)
	}
	emotions, err := diary.NormalizeEmotions(d.Emotions)
	if err != nil {
		return Saved{}, err
	}
	if len(emotions) == 0 {
		emotions = nil
	}

	content, err := s.seal(d.Text)
	if err != nil {
		return Saved{}, fmt.Errorf("encrypt entry: %w", err)
	}

	e := diary.Entry{
		ID:        uuid.NewString(),
		Timestamp: s.now().UnixMilli(),
		Content:   content,
		Type:      d.Type,
		Emotions:  emotions,
		IsSilent:  d.IsSilent,
		AudioID:   d.AudioID,
	}

	pending := false
	if _, err := s.client.PutEntry(ctx, e); err != nil {
		if errors.Is(err, common.ErrorValidation) {
			return Saved{}, err
		}
		s.logger.Warn(ctx, "entry kept locally until next sync", "entry_id", e.ID, "error", err)
		pending = true
	}

	if err := s.repo(s.db).Upsert(ctx, userID, e, pending); err != nil {
		return Saved{}, err
	}

	if content != "" {
		e.Content = d.Text
	}
	return Saved{Entry: e, Pending: pending}, nil
}

// refreshCache replaces the synced part of the cache with the server copy.
// Pending rows survive so offline writes are not lost.
func (s *JournalService) refreshCache(ctx context.Context, userID string, remote []diary.Entry) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		if err := r.DropSynced(ctx, userID); err != nil {
			return err
		}
		for _, e := range remote {
			if err := r.InsertSynced(ctx, userID, e); err != nil {
				return err
			}
		}
		return nil
	})
}

// List reads from the server and refreshes the cache, falling back to the
// cache when the server cannot be reached.
func (s *JournalService) List(ctx context.Context, userID string, f diary.Filter) (Listing, error) {
	offline := false

	remote, err := s.client.ListEntries(ctx, 0)
	if err != nil {
		if errors.Is(err, client.ErrSessionExpired) {
			return Listing{}, err
		}
		s.logger.Warn(ctx, "listing from local cache", "error", err)
		offline = true
	} else if err := s.refreshCache(ctx, userID, remote); err != nil {
		return Listing{}, fmt.Errorf("refresh cache: %w", err)
	}

	cached, err := s.repo(s.db).List(ctx, userID)
	if err != nil {
		return Listing{}, err
	}

	if f.Location == nil {
		f.Location = s.loc
	}
	out := make([]diary.Entry, 0, len(cached))
	for _, e := range f.Apply(cached) {
		out = append(out, s.open(ctx, e))
	}
	diary.SortNewestFirst(out)

	return Listing{Entries: out, Offline: offline}, nil
}

// Get returns one decrypted entry from the cache.
func (s *JournalService) Get(ctx context.Context, userID, id string) (diary.Entry, error) {
	e, err := s.repo(s.db).Get(ctx, userID, id)
	if err != nil {
		return diary.Entry{}, err
	}
	return s.open(ctx, e), nil
}

func (s *JournalService) Pin(ctx context.Context, userID, id string) error {
	if err := s.client.PinEntry(ctx, id, true); err != nil {
		return err
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		e, err := r.Get(ctx, userID, id)
		if err != nil {
			return err
		}
		if err := r.UnpinAll(ctx, userID); err != nil {
			return err
		}
		e.IsPinned = true
		return r.Upsert(ctx, userID, e, false)
	})
}

func (s *JournalService) Unpin(ctx context.Context, userID, id string) error {
	if err := s.client.PinEntry(ctx, id, false); err != nil {
		return err
	}
	r := s.repo(s.db)
	e, err := r.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	e.IsPinned = false
	return r.Upsert(ctx, userID, e, false)
}

// ToggleFavorite flips the favorite flag and returns the new value.
func (s *JournalService) ToggleFavorite(ctx context.Context, userID, id string) (bool, error) {
	r := s.repo(s.db)
	e, err := r.Get(ctx, userID, id)
	if err != nil {
		return false, err
	}

	fav := !e.IsFavorite
	updated, err := s.client.UpdateEntry(ctx, rpc.UpdateEntryRequest{ID: id, IsFavorite: &fav})
	if err != nil {
		return false, err
	}
	if err := r.Upsert(ctx, userID, updated, false); err != nil {
		return false, err
	}
	return updated.IsFavorite, nil
}

// AttachAudio records a voice note id on an existing entry.
func (s *JournalService) AttachAudio(ctx context.Context, userID, id, audioID string) error {
	updated, err := s.client.UpdateEntry(ctx, rpc.UpdateEntryRequest{ID: id, AudioID: &audioID})
	if err != nil {
		return err
	}
	return s.repo(s.db).Upsert(ctx, userID, updated, false)
}

// Delete removes an entry. Offline, the entry is tombstoned and the
// deletion is pushed by the next Sync; pending is true in that case.
func (s *JournalService) Delete(ctx context.Context, userID, id string) (pending bool, err error) {
	r := s.repo(s.db)

	err = s.client.DeleteEntry(ctx, id)
	switch {
	case err == nil:
		return false, r.Remove(ctx, userID, id)
	case errors.Is(err, common.ErrorNotFound):
		// Never reached the server: only a local copy exists.
		if _, gerr := r.Get(ctx, userID, id); gerr != nil {
			return false, gerr
		}
		return false, r.Remove(ctx, userID, id)
	case errors.Is(err, client.ErrUnavailable):
		s.logger.Warn(ctx, "deletion queued until next sync", "entry_id", id)
		return true, r.MarkDeleted(ctx, userID, id)
	default:
		return false, err
	}
}

// Sync pushes pending local changes. It stops at the first sign the
// server is unreachable; other per-entry failures are counted and logged.
func (s *JournalService) Sync(ctx context.Context, userID string) (SyncReport, error) {
	r := s.repo(s.db)

	pending, err := r.ListPending(ctx, userID)
	if err != nil {
		return SyncReport{}, err
	}

	var rep SyncReport
	for _, rec := range pending {
		if rec.Deleted {
			err = s.client.DeleteEntry(ctx, rec.ID)
			if errors.Is(err, common.ErrorNotFound) {
				err = nil
			}
			if err == nil {
				err = r.Remove(ctx, userID, rec.ID)
			}
		} else {
			_, err = s.client.PutEntry(ctx, rec.Entry)
			if err == nil {
				err = r.MarkSynced(ctx, userID, rec.ID)
			}
		}

		if err != nil {
			if errors.Is(err, client.ErrUnavailable) || errors.Is(err, client.ErrSessionExpired) {
				return rep, err
			}
			s.logger.Warn(ctx, "sync of entry failed", "entry_id", rec.ID, "error", err)
			rep.Failed++
			continue
		}
		rep.Pushed++
	}
	return rep, nil
}

// Stats summarises the journal. It works offline from the cache.
func (s *JournalService) Stats(ctx context.Context, userID string) (Stats, error) {
	l, err := s.List(ctx, userID, diary.Filter{})
	if err != nil {
		return Stats{}, err
	}
	return Summarise(l.Entries, s.Now()), nil
}

// Summarise computes Stats for entries as of now.
func Summarise(list []diary.Entry, now time.Time) Stats {
	st := Stats{
		Total:    len(list),
		Streak:   diary.CurrentStreak(list, now),
		ByType:   map[diary.EntryType]int{},
		Emotions: diary.EmotionHistogram(list),
	}
	for _, e := range list {
		st.ByType[e.Type]++
		if e.IsFavorite {
			st.Favorites++
		}
	}
	return st
}
