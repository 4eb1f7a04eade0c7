package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shinyfy/shinyfy/internal/auth"
	"github.com/shinyfy/shinyfy/internal/model"
	"github.com/shinyfy/shinyfy/internal/store"
)

// SessionResolver resolves a bearer token or cookie into a user.
// *auth.Authenticator satisfies it.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*model.User, error)
}

// RequireSession returns a middleware that authenticates the request via the
// session cookie or Authorization header and injects the user into the
// request context. Unauthenticated requests get 401; a valid session whose
// user record is gone gets 404.
func RequireSession(resolver SessionResolver, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := resolver.ResolveSession(r.Context(), auth.TokenFromRequest(r))
			if err != nil {
				logger.Warn("session rejected",
					slog.String("request_id", GetRequestID(r.Context())),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("error", err.Error()),
				)
				if errors.Is(err, store.ErrNotFound) {
					writeSessionError(w, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
					return
				}
				writeSessionError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "Not authenticated")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.ContextWithUser(r.Context(), user)))
		})
	}
}

// OptionalSession resolves the session when one is presented and otherwise
// lets the request through anonymously. Resolution failures are treated as
// anonymous, never as errors.
func OptionalSession(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user, err := resolver.ResolveSession(r.Context(), auth.TokenFromRequest(r)); err == nil {
				r = r.WithContext(auth.ContextWithUser(r.Context(), user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// writeSessionError writes a JSON error without depending on the handler
// package. The shape matches the handlers' error responses.
func writeSessionError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + message + `","code":"` + code + `"}`))
}
