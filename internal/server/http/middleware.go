package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/unsaid/internal/common"
	"github.com/dmitrijs2005/unsaid/internal/server/auth"
	"github.com/go-chi/cors"
)

// RequireAuth accepts "Authorization: Bearer <access token>" and stores the
// user id in the request context.
func RequireAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			uid, err := auth.GetUserIDFromToken(strings.TrimPrefix(h, "Bearer "), secret)
			if err != nil {
				msg := "unauthorized"
				if errors.Is(err, common.ErrTokenExpired) {
					msg = common.ErrTokenExpired.Error()
				}
				writeError(w, http.StatusUnauthorized, msg)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), uid)))
		})
	}
}

func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	})
}
