package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/unsaid/internal/common"
	"github.com/dmitrijs2005/unsaid/internal/companion"
	"github.com/dmitrijs2005/unsaid/internal/logging"
	"github.com/dmitrijs2005/unsaid/internal/quota"
	"github.com/dmitrijs2005/unsaid/internal/server/auth"
	"github.com/dmitrijs2005/unsaid/internal/server/services"
)

type CompanionService interface {
	Allowance(ctx context.Context, userID string) (quota.Allowance, error)
	Reply(ctx context.Context, userID, text string, history []companion.Message, mode string) (*services.Reply, error)
}

type CompanionHandler struct {
	Svc    CompanionService
	Logger logging.Logger
}

type companionReq struct {
	Text    string              `json:"text"`
	History []companion.Message `json:"history"`
	Mode    string              `json:"mode"`
}

type companionResp struct {
	Reply     string `json:"reply"`
	Remaining int    `json:"remaining"`
	Fallback  bool   `json:"fallback"`
}

type errorResp struct {
	Error string `json:"error"`
	Reply string `json:"reply,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResp{Error: msg})
}

func (h *CompanionHandler) Reply(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req companionReq
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "No text provided")
		return
	}

	reply, err := h.Svc.Reply(r.Context(), uid, req.Text, req.History, req.Mode)
	switch {
	case errors.Is(err, common.ErrorValidation):
		writeError(w, http.StatusBadRequest, "Invalid mode")
		return
	case errors.Is(err, companion.ErrMissingAPIKey):
		writeError(w, http.StatusServiceUnavailable, "Companion is not configured")
		return
	case err != nil:
		h.Logger.Error(r.Context(), "companion request failed", "user_id", uid, "err", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	if !reply.Allowed {
		writeJSON(w, http.StatusTooManyRequests, errorResp{Error: "Daily limit reached", Reply: reply.Text})
		return
	}
	writeJSON(w, http.StatusOK, companionResp{Reply: reply.Text, Remaining: reply.Remaining, Fallback: reply.Fallback})
}

func (h *CompanionHandler) Usage(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	a, err := h.Svc.Allowance(r.Context(), uid)
	if err != nil {
		h.Logger.Error(r.Context(), "usage lookup failed", "user_id", uid, "err", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}
	writeJSON(w, http.StatusOK, a)
}
