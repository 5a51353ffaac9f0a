package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/taskdeck/taskdeck-go/internal/crypto"
)

type contextKey string

const callerEmailKey contextKey = "callerEmail"

// JWTAuth returns middleware that validates a Bearer token from the
// Authorization header and stores the verified subject email in the request
// context. The token itself is never logged.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			email, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), callerEmailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CallerEmailFromContext extracts the authenticated caller email from the
// request context.
func CallerEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(callerEmailKey).(string)
	return email, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
