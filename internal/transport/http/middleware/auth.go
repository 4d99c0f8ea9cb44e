package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/inkwell-blog/inkwell/internal/service"
)

type contextKey string

const userIDKey contextKey = "user_id"

// SessionCookie is the HTTP-only cookie carrying the signed session token.
const SessionCookie = "token"

// Identity resolves the session cookie to a user ID and stores it in the
// request context. Missing or invalid tokens leave the request anonymous;
// they never fail it.
func Identity(auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			userID, ok := auth.ResolveToken(cookie.Value)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser redirects anonymous requests to the log-in page.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserID(r.Context()); !ok {
			http.Redirect(w, r, "/log-in", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserID extracts the resolved user ID from the request context.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}
