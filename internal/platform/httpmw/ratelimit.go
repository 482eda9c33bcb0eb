package httpmw

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/tair/packing-checklist/pkg/logger"
	"github.com/tair/packing-checklist/pkg/ratelimit"
)

// Limiter decides whether one more request for an identifier is allowed
type Limiter interface {
	Allow(ctx context.Context, identifier string) (ratelimit.Decision, error)
}

// RateLimitMiddleware limits requests per authenticated user, falling back to the
// remote address. Limiter failures let the request through.
func RateLimitMiddleware(limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identifier := "ip:" + r.RemoteAddr
			if p, ok := PrincipalFromContext(r.Context()); ok {
				identifier = fmt.Sprintf("user:%d", p.UserID)
			}

			d, err := limiter.Allow(r.Context(), identifier)
			if err != nil {
				logger.Error(r.Context()).Err(err).Str("identifier", identifier).Msg("Rate limiter error")
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.Unix(), 10))

			if !d.Allowed {
				retry := time.Until(d.ResetAt).Round(time.Second)
				if retry < time.Second {
					retry = time.Second
				}
				w.Header().Set("Retry-After", strconv.Itoa(int(retry.Seconds())))
				logger.Warn(r.Context()).
					Str("identifier", identifier).
					Int("limit", d.Limit).
					Msg("Rate limit exceeded")
				RespondFailure(w, http.StatusTooManyRequests, "RATE_LIMITED", fmt.Sprintf("Too many requests. Try again in %v", retry))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
