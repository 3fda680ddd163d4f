package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/unsaid/internal/client/client"
	"github.com/dmitrijs2005/unsaid/internal/common"
	"github.com/dmitrijs2005/unsaid/internal/companion"
	"github.com/dmitrijs2005/unsaid/internal/quota"
	"github.com/dmitrijs2005/unsaid/internal/rpc"
)

// CompanionService keeps the running chat conversation in memory and
// forwards turns to the server. The conversation opens with
// companion.Greeting and is lost when the process exits.
type CompanionService struct {
	client client.Client

	mu      sync.Mutex
	history []companion.Message
}

func NewCompanionService(c client.Client) *CompanionService {
	s := &CompanionService{client: c}
	s.Reset()
	return s
}

// Reset starts a new conversation.
func (s *CompanionService) Reset() {
	s.mu.Lock()
	s.history = []companion.Message{{Role: companion.RoleModel, Text: companion.Greeting}}
	s.mu.Unlock()
}

func (s *CompanionService) History() []companion.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]companion.Message(nil), s.history...)
}

// Chat sends one turn with the last companion.HistoryLimit messages as
// context. Both sides of the turn are appended to the history whenever the
// server answers, fallback and limit replies included.
func (s *CompanionService) Chat(ctx context.Context, text string) (rpc.ChatResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return rpc.ChatResponse{}, fmt.Errorf("%w: nothing to say", common.ErrorValidation)
	}

	s.mu.Lock()
	past := append([]companion.Message(nil), companion.TrimHistory(s.history, companion.HistoryLimit)...)
	s.mu.Unlock()

	resp, err := s.client.Chat(ctx, rpc.ChatRequest{Text: text, History: past, Mode: string(companion.ModeChat)})
	if err != nil {
		return rpc.ChatResponse{}, err
	}

	s.mu.Lock()
	s.history = append(s.history,
		companion.Message{Role: companion.RoleUser, Text: text},
		companion.Message{Role: companion.RoleModel, Text: resp.Reply})
	s.mu.Unlock()
	return resp, nil
}

// Listen asks for a one-off listener reply to a vent or reflection. It
// does not touch the chat history.
func (s *CompanionService) Listen(ctx context.Context, text string) (rpc.ChatResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return rpc.ChatResponse{}, fmt.Errorf("%w: nothing to say", common.ErrorValidation)
	}
	return s.client.Chat(ctx, rpc.ChatRequest{Text: text, Mode: string(companion.ModeListener)})
}

func (s *CompanionService) Allowance(ctx context.Context) (quota.Allowance, error) {
	return s.client.Allowance(ctx)
}
