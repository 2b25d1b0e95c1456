package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/heartmarshall/roommatch-backend/internal/auth"
	"github.com/heartmarshall/roommatch-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (auth.Identity, error)
}

// Auth rejects requests without a valid bearer token and stores the caller's
// user ID and role in the request context. WebSocket upgrades may pass the
// token as the access_token query parameter instead.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				writeUnauthorized(w, "missing bearer token")
				return
			}
			id, err := validator.ValidateAccessToken(token)
			if err != nil {
				writeUnauthorized(w, "invalid or expired token")
				return
			}
			noteUser(w, id.UserID)
			ctx := ctxutil.WithUserID(r.Context(), id.UserID)
			ctx = ctxutil.WithUserRole(ctx, string(id.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request) string {
	if token := extractBearerToken(r); token != "" {
		return token
	}
	if websocket.IsWebSocketUpgrade(r) {
		return r.URL.Query().Get("access_token")
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	WriteError(w, http.StatusUnauthorized, "unauthorized", msg)
}
