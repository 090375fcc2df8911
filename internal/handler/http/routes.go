package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/users", h.listUsers)
		r.Get("/recent-activity", h.recentActivity)
		r.Get("/users-posts", h.listAllPosts)
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/profile", h.profile)
		r.Post("/diary-posts", h.createPost)
		r.Post("/book-trip", h.bookTrip)
	})

	// admin routes: token first, then the privilege guard
	router.Route("/admin", func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.requireAdmin)
		r.Get("/dashboard", h.adminDashboard)
		r.Delete("/deletePost", h.adminDeletePost)
		r.Delete("/deleteUser", h.adminDeleteUser)
	})

	// static passthrough for uploaded images
	if h.uploadsDir != "" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadsDir)))
		router.Get("/uploads/*", fileServer.ServeHTTP)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
