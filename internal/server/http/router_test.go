package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/unsaid/internal/common"
	"github.com/dmitrijs2005/unsaid/internal/companion"
	"github.com/dmitrijs2005/unsaid/internal/logging"
	"github.com/dmitrijs2005/unsaid/internal/quota"
	"github.com/dmitrijs2005/unsaid/internal/server/auth"
	"github.com/dmitrijs2005/unsaid/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "secret"

type fakeCompanion struct {
	reply    *services.Reply
	err      error
	gotUser  string
	gotMode  string
	gotHist  []companion.Message
	allowErr error
}

func (f *fakeCompanion) Allowance(_ context.Context, userID string) (quota.Allowance, error) {
	if f.allowErr != nil {
		return quota.Allowance{}, f.allowErr
	}
	return quota.Allowance{Allowed: true, Remaining: 7, Limit: 20, Date: "2026-10-17"}, nil
}

func (f *fakeCompanion) Reply(_ context.Context, userID, text string, history []companion.Message, mode string) (*services.Reply, error) {
	f.gotUser, f.gotMode, f.gotHist = userID, mode, history
	return f.reply, f.err
}

func newTestRouter(svc CompanionService, origins ...string) http.Handler {
	return NewRouter(RouterConfig{SecretKey: secret, CORSAllowedOrigins: origins}, svc, logging.Nop{})
}

func bearer(t *testing.T, ttl time.Duration) string {
	t.Helper()
	tok, err := auth.GenerateToken("u1", []byte(secret), ttl)
	require.NoError(t, err)
	return "Bearer " + tok
}

func do(t *testing.T, h http.Handler, method, path, authz, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(&fakeCompanion{}), http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestCompanion_OK(t *testing.T) {
	svc := &fakeCompanion{reply: &services.Reply{Text: "I hear you.", Allowed: true, Remaining: 19}}
	body := `{"text":"rough day","mode":"chat","history":[{"role":"user","text":"hi"}]}`

	rec := do(t, newTestRouter(svc), http.MethodPost, "/api/companion", bearer(t, time.Hour), body)

	require.Equal(t, http.StatusOK, rec.Code)
	m := decode(t, rec)
	assert.Equal(t, "I hear you.", m["reply"])
	assert.EqualValues(t, 19, m["remaining"])
	assert.Equal(t, false, m["fallback"])
	assert.Equal(t, "u1", svc.gotUser)
	assert.Equal(t, "chat", svc.gotMode)
	require.Len(t, svc.gotHist, 1)
}

func TestCompanion_Errors(t *testing.T) {
	for _, tc := range []struct {
		name   string
		svc    *fakeCompanion
		body   string
		code   int
		errMsg string
	}{
		{"no text", &fakeCompanion{}, `{"text":"  "}`, http.StatusBadRequest, "No text provided"},
		{"bad json", &fakeCompanion{}, `{`, http.StatusBadRequest, "No text provided"},
		{"bad mode", &fakeCompanion{err: common.ErrorValidation}, `{"text":"x","mode":"?"}`, http.StatusBadRequest, "Invalid mode"},
		{"no api key", &fakeCompanion{err: companion.ErrMissingAPIKey}, `{"text":"x"}`, http.StatusServiceUnavailable, "Companion is not configured"},
		{"internal", &fakeCompanion{err: errors.New("db down")}, `{"text":"x"}`, http.StatusInternalServerError, "Something went wrong"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, newTestRouter(tc.svc), http.MethodPost, "/api/companion", bearer(t, time.Hour), tc.body)
			assert.Equal(t, tc.code, rec.Code)
			assert.Equal(t, tc.errMsg, decode(t, rec)["error"])
		})
	}
}

func TestCompanion_QuotaExhausted(t *testing.T) {
	svc := &fakeCompanion{reply: &services.Reply{Text: quota.ExceededMessage, Allowed: false}}

	rec := do(t, newTestRouter(svc), http.MethodPost, "/api/companion", bearer(t, time.Hour), `{"text":"x"}`)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	m := decode(t, rec)
	assert.Equal(t, quota.ExceededMessage, m["reply"])
	assert.NotEmpty(t, m["error"])
}

func TestCompanion_MethodNotAllowed(t *testing.T) {
	rec := do(t, newTestRouter(&fakeCompanion{}), http.MethodGet, "/api/companion", bearer(t, time.Hour), "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method not allowed", decode(t, rec)["error"])
}

func TestMethodNotAllowed_BeforeAuth(t *testing.T) {
	h := newTestRouter(&fakeCompanion{})

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/companion"},
		{http.MethodPost, "/api/usage"},
	} {
		rec := do(t, h, tc.method, tc.path, "", "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, "%s %s", tc.method, tc.path)
		assert.Equal(t, "Method not allowed", decode(t, rec)["error"])
	}

	rec := do(t, h, http.MethodPost, "/api/companion", "", `{"text":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth(t *testing.T) {
	h := newTestRouter(&fakeCompanion{})

	rec := do(t, h, http.MethodGet, "/api/usage", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/usage", "Bearer junk", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", decode(t, rec)["error"])

	rec = do(t, h, http.MethodGet, "/api/usage", bearer(t, -time.Minute), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "token expired", decode(t, rec)["error"])
}

func TestUsage(t *testing.T) {
	rec := do(t, newTestRouter(&fakeCompanion{}), http.MethodGet, "/api/usage", bearer(t, time.Hour), "")
	require.Equal(t, http.StatusOK, rec.Code)
	m := decode(t, rec)
	assert.EqualValues(t, 7, m["remaining"])
	assert.EqualValues(t, 20, m["limit"])
	assert.Equal(t, true, m["allowed"])

	rec = do(t, newTestRouter(&fakeCompanion{allowErr: errors.New("x")}), http.MethodGet, "/api/usage", bearer(t, time.Hour), "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCORS(t *testing.T) {
	h := newTestRouter(&fakeCompanion{}, "https://app.example")

	req := httptest.NewRequest(http.MethodOptions, "/api/companion", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "https://app.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_ServeAndShutdown(t *testing.T) {
	s := NewServer("127.0.0.1:0", newTestRouter(&fakeCompanion{}), logging.Nop{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
