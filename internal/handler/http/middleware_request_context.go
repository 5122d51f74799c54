package http

import (
	"net/http"

	"github.com/krazykeith/apistarter/internal/logger"
	"github.com/krazykeith/apistarter/internal/utils"
	"github.com/rs/zerolog"
)

// anonymousUserMarker is logged as the user id for unauthenticated requests.
const anonymousUserMarker = "anonymous"

// withRequestContext enriches the request-scoped logging context with the
// running environment name and the resolved caller identity, so every log
// line emitted while handling the request carries both.
//
// Mounted after the auth middleware on protected routes (the real user is
// logged) and directly on open routes (the anonymous marker is logged).
// Purely observability-affecting; it never touches the response.
func (h *Handler) withRequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		l := logger.FromContext(ctx).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			c = c.Str("environment", h.environment)

			if user, ok := utils.GetUserFromContext(ctx); ok {
				return c.Str("user_id", user.UserID).Str("user_name", user.Name)
			}
			return c.Str("user_id", anonymousUserMarker)
		})

		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}
