package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adilzhm/travel-diary/internal/logger"
	"github.com/adilzhm/travel-diary/internal/service"
	"github.com/adilzhm/travel-diary/internal/store"
	"github.com/adilzhm/travel-diary/internal/utils"
	"github.com/adilzhm/travel-diary/models"
)

// Admin route handlers. All of them sit behind auth + requireAdmin; by the
// time they run the caller is a verified administrator.

func (h *Handler) adminDashboard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	dashboard, err := h.services.DiaryService.AdminDashboard(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.adminDashboard").Msg("error assembling dashboard")
		http.Error(w, "error assembling dashboard", statusFromError(err))
		return
	}

	utils.WriteJSON(w, dashboard, http.StatusOK)
}

func (h *Handler) adminDeletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.DeletePostRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.adminDeletePost").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.DiaryService.DeletePost(ctx, request.UserID, request.PostID); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Str("func", "*Handler.adminDeletePost").Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Str("func", "*Handler.adminDeletePost").Int64("user_id", request.UserID).Msg("post owner not found")
			http.Error(w, "user not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.adminDeletePost").Msg("error deleting post")
			http.Error(w, "error deleting post", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Post deleted successfully"}, http.StatusOK)
}

func (h *Handler) adminDeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.DeleteUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.adminDeleteUser").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.DiaryService.DeleteUser(ctx, request.UserID); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Str("func", "*Handler.adminDeleteUser").Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Str("func", "*Handler.adminDeleteUser").Int64("user_id", request.UserID).Msg("user not found")
			http.Error(w, "user not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.adminDeleteUser").Msg("error deleting user")
			http.Error(w, "error deleting user", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "User and all their posts deleted successfully"}, http.StatusOK)
}
