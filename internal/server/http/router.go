// Package http is the HTTP face of the companion: a JSON proxy in front of
// the text-generation backend plus a usage endpoint.
package http

import (
	"net/http"

	"github.com/dmitrijs2005/unsaid/internal/logging"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type RouterConfig struct {
	SecretKey          string
	CORSAllowedOrigins []string
}

func NewRouter(cfg RouterConfig, svc CompanionService, l logging.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(CORS(cfg.CORSAllowedOrigins))
	}

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Auth wraps each route rather than the group so a wrong method is a
	// 405 whether or not a token is sent.
	ch := &CompanionHandler{Svc: svc, Logger: l.With("module", "http_companion")}
	authed := r.With(RequireAuth([]byte(cfg.SecretKey)))
	authed.Post("/api/companion", ch.Reply)
	authed.Get("/api/usage", ch.Usage)

	return r
}
