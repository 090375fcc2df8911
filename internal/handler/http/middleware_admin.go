package http

import (
	"net/http"

	"github.com/adilzhm/travel-diary/internal/logger"
	"github.com/adilzhm/travel-diary/internal/utils"
)

// requireAdmin is the privilege guard for /admin routes. It must be composed
// after [Handler.auth]: the principal is taken from the request context, so
// the token is resolved exactly once per request.
//
// The guard loads the account on every request and rejects with 403 when the
// account is missing or not flagged as admin. The flag is never cached across
// requests; revoking admin rights takes effect immediately.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		userID, ok := utils.GetUserIDFromContext(ctx)
		if !ok {
			log.Error().Msg("admin guard reached without authenticated principal")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		user, err := h.services.DiaryService.GetUserByID(ctx, userID)
		if err != nil {
			log.Err(err).Int64("user_id", userID).Msg("admin guard user lookup failed")
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		if !user.IsAdmin {
			log.Warn().Int64("user_id", userID).Msg("non-admin attempted admin route")
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
