package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
)

type ctxKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s != nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

// Middleware resolves the bearer token to a session and stores it in the
// request context. Requests without a live session get 401.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		sess, err := s.Authenticate(r.Context(), token)
		if err != nil {
			if !errors.Is(err, ErrSessionNotFound) {
				slog.Error("failed to load session", "error", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)

				return
			}

			http.Error(w, "invalid or expired session", http.StatusUnauthorized)

			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
	})
}

func require(kind Kind) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := FromContext(r.Context())
			if !ok {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			if sess.Kind != kind {
				http.Error(w, string(kind)+" session required", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin lets only admin sessions through. Use after Middleware.
func RequireAdmin(next http.Handler) http.Handler {
	return require(KindAdmin)(next)
}

// RequireStaff lets only staff sessions through. Use after Middleware.
func RequireStaff(next http.Handler) http.Handler {
	return require(KindStaff)(next)
}
