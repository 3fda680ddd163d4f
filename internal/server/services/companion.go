package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/unsaid/internal/common"
	"github.com/dmitrijs2005/unsaid/internal/companion"
	"github.com/dmitrijs2005/unsaid/internal/logging"
	"github.com/dmitrijs2005/unsaid/internal/quota"
	"github.com/dmitrijs2005/unsaid/internal/server/config"
	"github.com/dmitrijs2005/unsaid/internal/server/models"
	"github.com/dmitrijs2005/unsaid/internal/server/repositories/repomanager"
)

// Reply is the outcome of one companion call.
type Reply struct {
	Text      string
	Allowed   bool
	Remaining int
	// Fallback is set when the canned reply replaced a failed backend call.
	Fallback bool
}

type CompanionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	meter       *quota.Meter
	gen         companion.Generator
	logger      logging.Logger
}

func NewCompanionService(db *sql.DB, m repomanager.RepositoryManager, gen companion.Generator, cfg *config.Config, l logging.Logger) *CompanionService {
	meter := quota.NewMeter(m.Usage(db),
		quota.WithLimit(cfg.DailyLimit),
		quota.WithLocation(cfg.Location()))
	return &CompanionService{
		db:          db,
		repomanager: m,
		meter:       meter,
		gen:         gen,
		logger:      l.With("module", "companion_service"),
	}
}

func (s *CompanionService) Allowance(ctx context.Context, userID string) (quota.Allowance, error) {
	return s.meter.CheckAllowance(ctx, userID)
}

// Reply asks the backend for an answer to text. A user over the daily limit
// gets the come-back-tomorrow message with Allowed=false. A failed backend
// call gets the mode's fallback and does not count against the limit. An
// answer is never dropped because the usage write failed.
// companion.ErrMissingAPIKey is returned as is.
func (s *CompanionService) Reply(ctx context.Context, userID, text string, history []companion.Message, mode string) (*Reply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, common.ErrorValidation
	}
	m, err := companion.ParseMode(mode)
	if err != nil {
		return nil, common.ErrorValidation
	}

	allowance, err := s.meter.CheckAllowance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !allowance.Allowed {
		return &Reply{Text: quota.ExceededMessage, Allowed: false}, nil
	}

	answer, err := s.gen.Generate(ctx, companion.BuildRequest(m, text, history))
	if errors.Is(err, companion.ErrMissingAPIKey) {
		return nil, err
	}
	if err != nil {
		s.logger.Warn(ctx, "companion backend failed", "user_id", userID, "err", err)
		s.recordCheckIn(ctx, userID, text, false)
		return &Reply{Text: companion.Fallback(m), Allowed: true, Remaining: allowance.Remaining, Fallback: true}, nil
	}
	if strings.TrimSpace(answer) == "" {
		answer = companion.EmptyFallback(m)
	}

	remaining := max(allowance.Remaining-1, 0)
	if count, err := s.meter.RecordUsage(ctx, userID); err != nil {
		s.logger.Warn(ctx, "usage not recorded", "user_id", userID, "err", err)
	} else {
		remaining = max(s.meter.Limit()-count, 0)
	}
	s.recordCheckIn(ctx, userID, text, true)

	return &Reply{Text: answer, Allowed: true, Remaining: remaining}, nil
}

// recordCheckIn stores the shape of the message, never its text.
func (s *CompanionService) recordCheckIn(ctx context.Context, userID, text string, aiUsed bool) {
	c := &models.CheckIn{
		UserID:     userID,
		HasText:    text != "",
		TextLength: utf8.RuneCountInString(text),
		AIUsed:     aiUsed,
	}
	if err := s.repomanager.CheckIns(s.db).Create(ctx, c); err != nil {
		s.logger.Warn(ctx, "check-in not recorded", "user_id", userID, "err", err)
	}
}
