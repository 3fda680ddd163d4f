package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/unsaid/internal/common"
	"github.com/dmitrijs2005/unsaid/internal/companion"
	"github.com/dmitrijs2005/unsaid/internal/quota"
	"github.com/dmitrijs2005/unsaid/internal/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanion_ChatKeepsRollingHistory(t *testing.T) {
	ctx := context.Background()
	fc := newFakeClient()
	fc.chatResp = rpc.ChatResponse{Reply: "Tell me more.", Allowed: true, Remaining: 5}
	cs := NewCompanionService(fc)

	require.Equal(t, []companion.Message{{Role: companion.RoleModel, Text: companion.Greeting}}, cs.History())

	resp, err := cs.Chat(ctx, "  rough day ")
	require.NoError(t, err)
	assert.Equal(t, "Tell me more.", resp.Reply)

	require.Len(t, fc.chatReqs, 1)
	req := fc.chatReqs[0]
	assert.Equal(t, "rough day", req.Text)
	assert.Equal(t, string(companion.ModeChat), req.Mode)
	assert.Equal(t, []companion.Message{{Role: companion.RoleModel, Text: companion.Greeting}}, req.History)

	h := cs.History()
	require.Len(t, h, 3)
	assert.Equal(t, companion.Message{Role: companion.RoleUser, Text: "rough day"}, h[1])
	assert.Equal(t, companion.Message{Role: companion.RoleModel, Text: "Tell me more."}, h[2])

	for i := 0; i < 10; i++ {
		_, err := cs.Chat(ctx, fmt.Sprintf("turn %d", i))
		require.NoError(t, err)
	}
	last := fc.chatReqs[len(fc.chatReqs)-1]
	assert.Len(t, last.History, companion.HistoryLimit)
	assert.Len(t, cs.History(), 23)

	cs.Reset()
	assert.Len(t, cs.History(), 1)
}

func TestCompanion_ChatErrorLeavesHistory(t *testing.T) {
	fc := newFakeClient()
	fc.chatErr = errors.New("boom")
	cs := NewCompanionService(fc)

	_, err := cs.Chat(context.Background(), "hello")
	require.Error(t, err)
	assert.Len(t, cs.History(), 1)

	_, err = cs.Chat(context.Background(), "   ")
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestCompanion_ListenSendsNoHistory(t *testing.T) {
	fc := newFakeClient()
	fc.chatResp = rpc.ChatResponse{Reply: companion.ListenerFallback, Allowed: true, Fallback: true}
	cs := NewCompanionService(fc)

	resp, err := cs.Listen(context.Background(), "I feel stuck")
	require.NoError(t, err)
	assert.True(t, resp.Fallback)

	require.Len(t, fc.chatReqs, 1)
	assert.Equal(t, string(companion.ModeListener), fc.chatReqs[0].Mode)
	assert.Empty(t, fc.chatReqs[0].History)
	assert.Len(t, cs.History(), 1)

	_, err = cs.Listen(context.Background(), "")
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestCompanion_Allowance(t *testing.T) {
	fc := newFakeClient()
	fc.allowance = quota.Allowance{Allowed: true, Remaining: 7, Limit: 20, Date: "2025-03-10"}
	cs := NewCompanionService(fc)

	a, err := cs.Allowance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fc.allowance, a)
}
