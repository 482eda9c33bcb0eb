package httpmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/tair/packing-checklist/pkg/auth"
	"github.com/tair/packing-checklist/pkg/logger"
)

type contextKey string

const principalKey contextKey = "principal"

// Principal is the authenticated caller
type Principal struct {
	UserID    uint
	Authority string
}

// WithPrincipal stores p in ctx
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext returns the caller stored by AuthMiddleware
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}

// AuthMiddleware validates the bearer token and stores the caller in the request context
func AuthMiddleware(tokens *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn(r.Context()).Msg("Missing authorization header")
				RespondFailure(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authorization header required")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				logger.Warn(r.Context()).Msg("Invalid authorization header format")
				RespondFailure(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid authorization header format")
				return
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				logger.Warn(r.Context()).Err(err).Msg("Invalid token")
				RespondFailure(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
				return
			}

			ctx := WithPrincipal(r.Context(), Principal{UserID: claims.UserID, Authority: claims.Authority})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
