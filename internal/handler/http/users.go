package http

import (
	"net/http"

	"github.com/adilzhm/travel-diary/internal/logger"
	"github.com/adilzhm/travel-diary/internal/utils"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.services.DiaryService.ListUsers(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUsers").Msg("error listing users")
		http.Error(w, "error listing users", statusFromError(err))
		return
	}

	// models.User never serializes the password hash (json:"-").
	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.profile").Msg("no authenticated principal in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	profile, err := h.services.DiaryService.Profile(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.profile").Int64("user_id", userID).Msg("error assembling profile")
		http.Error(w, "error assembling profile", statusFromError(err))
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) recentActivity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	activity, err := h.services.DiaryService.RecentActivity(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.recentActivity").Msg("error listing activity")
		http.Error(w, "error listing activity", statusFromError(err))
		return
	}

	utils.WriteJSON(w, activity, http.StatusOK)
}
