package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/unsaid/internal/common"
	"github.com/dmitrijs2005/unsaid/internal/dbx"
	"github.com/dmitrijs2005/unsaid/internal/diary"
	"github.com/dmitrijs2005/unsaid/internal/logging"
	"github.com/dmitrijs2005/unsaid/internal/server/models"
	"github.com/dmitrijs2005/unsaid/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// AudioRemover deletes a stored voice note.
type AudioRemover interface {
	Delete(ctx context.Context, userID, audioID string) error
}

// EntryService stores journal entries. Content is kept exactly as the
// client sent it; the client does the encryption.
type EntryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	audio       AudioRemover
	logger      logging.Logger
	now         func() time.Time
}

func NewEntryService(db *sql.DB, m repomanager.RepositoryManager, audio AudioRemover, l logging.Logger) *EntryService {
	return &EntryService{
		db:          db,
		repomanager: m,
		audio:       audio,
		logger:      l.With("module", "entry_service"),
		now:         time.Now,
	}
}

// Save creates or replaces an entry. A missing id is generated and a
// missing timestamp is set to now. Pin state is only changed by Pin/Unpin.
func (s *EntryService) Save(ctx context.Context, userID string, e diary.Entry) (*diary.Entry, error) {
	if !e.Type.Valid() {
		return nil, common.ErrorValidation
	}
	tags := make([]string, len(e.Emotions))
	for i, t := range e.Emotions {
		tags[i] = string(t)
	}
	emotions, err := diary.NormalizeEmotions(tags)
	if err != nil {
		return nil, err
	}
	e.Emotions = emotions
	e.ID = strings.TrimSpace(e.ID)
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp <= 0 {
		e.Timestamp = s.now().UnixMilli()
	}

	saved, err := s.repomanager.Entries(s.db).CreateOrUpdate(ctx, &models.Entry{Entry: e, UserID: userID})
	if err != nil {
		return nil, err
	}
	return &saved.Entry, nil
}

// List returns the user's entries, newest first. sinceMs of 0 means all.
func (s *EntryService) List(ctx context.Context, userID string, sinceMs int64) ([]diary.Entry, error) {
	rows, err := s.repomanager.Entries(s.db).ListByUser(ctx, userID, sinceMs)
	if err != nil {
		return nil, err
	}
	return toDiary(rows), nil
}

func (s *EntryService) Update(ctx context.Context, userID, id string, flags models.EntryFlags) (*diary.Entry, error) {
	if flags.AudioID != nil && *flags.AudioID != "" {
		if _, err := uuid.Parse(*flags.AudioID); err != nil {
			return nil, common.ErrorValidation
		}
	}
	updated, err := s.repomanager.Entries(s.db).UpdateFlags(ctx, userID, id, flags)
	if err != nil {
		return nil, err
	}
	return &updated.Entry, nil
}

// Pin makes id the user's only pinned entry. Clearing the old pin and
// setting the new one happen in one transaction.
func (s *EntryService) Pin(ctx context.Context, userID, id string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Entries(tx)
		if _, err := repo.GetByID(ctx, userID, id); err != nil {
			return err
		}
		if err := repo.UnpinAll(ctx, userID); err != nil {
			return err
		}
		return repo.SetPinned(ctx, userID, id, true)
	})
}

func (s *EntryService) Unpin(ctx context.Context, userID, id string) error {
	return s.repomanager.Entries(s.db).SetPinned(ctx, userID, id, false)
}

// Delete removes the entry and then its voice note. A failed blob delete
// is logged, the entry stays deleted.
func (s *EntryService) Delete(ctx context.Context, userID, id string) error {
	audioID, err := s.repomanager.Entries(s.db).Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if audioID == "" || s.audio == nil {
		return nil
	}
	if err := s.audio.Delete(ctx, userID, audioID); err != nil && !errors.Is(err, common.ErrorNotFound) {
		s.logger.Warn(ctx, "voice note cleanup failed", "user_id", userID, "audio_id", audioID, "err", err)
	}
	return nil
}
