package middleware

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/store"
)

// SessionCookie is the browser session cookie name.
const SessionCookie = "session_id"

// AuthMiddleware guards the private-view API: requests must carry a
// valid session cookie and the session must have authenticated. The
// gate never errors for the public landing surface, so unauthenticated
// requests get a 401 envelope pointing the client back to login.
func AuthMiddleware(repo *store.Repository, logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || !repo.ValidSession(cookie.Value) || !repo.IsAuthenticated() {
				logger.Printf("unauthorized %s %s", r.Method, r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]any{
					"success":       false,
					"error":         "Se requiere autenticación",
					"auth_required": true,
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
