package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/adilzhm/travel-diary/internal/logger"
	"github.com/adilzhm/travel-diary/internal/service"
	"github.com/adilzhm/travel-diary/internal/store"
	"github.com/adilzhm/travel-diary/internal/utils"
	"github.com/adilzhm/travel-diary/models"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.createPost").Msg("no authenticated principal in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Err(err).Str("func", "*Handler.createPost").Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	date, err := parseDate(r.FormValue("date"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.createPost").Msg("invalid date")
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	post := models.DiaryPost{
		Destination: r.FormValue("destination"),
		Date:        date,
		Description: r.FormValue("description"),
		Itinerary:   r.FormValue("itinerary"),
		Visibility:  models.Visibility(r.FormValue("visibility")),
	}

	imagePath, err := h.saveUploadedFile(r, "image")
	if err != nil {
		log.Err(err).Str("func", "*Handler.createPost").Msg("error saving post image")
		http.Error(w, "error saving post image", http.StatusInternalServerError)
		return
	}
	post.Image = imagePath

	created, err := h.services.DiaryService.CreatePost(ctx, userID, post)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Str("func", "*Handler.createPost").Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Str("func", "*Handler.createPost").Int64("user_id", userID).Msg("post owner not found")
			http.Error(w, "user not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.createPost").Msg("error creating post")
			http.Error(w, "error creating post", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listAllPosts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	posts, err := h.services.DiaryService.ListAllPosts(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listAllPosts").Msg("error listing posts")
		http.Error(w, "error listing posts", statusFromError(err))
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

// parseDate accepts both RFC 3339 timestamps and bare YYYY-MM-DD values,
// which is what browser date inputs submit.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
