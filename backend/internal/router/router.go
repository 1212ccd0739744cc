package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/itchan-dev/hackorsnooze/backend/internal/setup"
	mw "github.com/itchan-dev/hackorsnooze/shared/middleware"
	"github.com/itchan-dev/hackorsnooze/shared/middleware/metrics"
)

// New builds the API router. Reads are public; everything that changes
// state or reveals a user needs a token.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()
	httpMetrics := metrics.NewHTTP("snooze_api")

	r.Use(middleware.Recoverer)
	r.Use(httpMetrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))
	r.Use(mw.SecurityHeaders(deps.Config.Server.HTTPS))

	r.Handle("/metrics", httpMetrics.Handler())

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Get("/stories", h.GetStories)
	r.Get("/stories/{storyId}", h.GetStory)
	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(authMw.NeedAuth())

		r.Post("/stories", h.CreateStory)
		r.Delete("/stories/{storyId}", h.DeleteStory)

		r.Get("/users/{username}", h.GetUser)
		r.Post("/users/{username}/favorites/{storyId}", h.AddFavorite)
		r.Delete("/users/{username}/favorites/{storyId}", h.RemoveFavorite)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not found", http.StatusNotFound)
	})

	return r
}
