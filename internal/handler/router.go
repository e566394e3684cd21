package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"lines-be/internal/container"
	"lines-be/internal/middleware"
)

// NewRouter configures and returns the HTTP router
func NewRouter(container *container.Container) *chi.Mux {
	cfg := container.GetConfig()
	log := container.GetLogger()

	r := chi.NewRouter()

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowedOrigins = cfg.AllowedOrigins

	// Setup middlewares
	r.Use(middleware.CORS(corsConfig, log))
	r.Use(middleware.RequestID(log))
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Compress(5)) // gzip level 5 (balanced)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	healthHandler := NewHealthHandler(container)
	videoHandler := NewVideoHandler(container)
	suggestionHandler := NewSuggestionHandler(container)
	commentHandler := NewCommentHandler(container)
	libraryHandler := NewLibraryHandler(container)

	r.Get("/health", healthHandler.Check)

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", videoHandler.Categories)
		r.Get("/channels", videoHandler.Channels)
		r.Get("/suggestions", suggestionHandler.Suggest)

		r.Route("/videos", func(r chi.Router) {
			r.Get("/", videoHandler.List)
			r.Post("/", videoHandler.Create)

			r.Route("/{videoId}", func(r chi.Router) {
				r.Get("/", videoHandler.Get)

				r.Route("/comments", func(r chi.Router) {
					r.Get("/", commentHandler.List)
					r.Post("/", commentHandler.Create)
					r.Post("/{commentId}/replies", commentHandler.Reply)
					r.Patch("/{commentId}", commentHandler.Edit)
					r.Delete("/{commentId}", commentHandler.Delete)
				})
			})
		})

		// Local user's library
		r.Route("/me", func(r chi.Router) {
			r.Get("/likes", libraryHandler.Ratings)
			r.Get("/likes/videos", libraryHandler.LikedVideos)
			r.Post("/likes/{videoId}", libraryHandler.ToggleLike)
			r.Post("/dislikes/{videoId}", libraryHandler.ToggleDislike)

			r.Get("/playlists", libraryHandler.Playlists)
			r.Post("/playlists", libraryHandler.CreatePlaylist)
			r.Post("/playlists/{playlistId}/videos/{videoId}", libraryHandler.TogglePlaylistVideo)

			r.Get("/history", libraryHandler.History)
			r.Post("/history", libraryHandler.AddToHistory)

			r.Get("/subscriptions", libraryHandler.Subscriptions)
			r.Post("/subscriptions/{channelName}", libraryHandler.ToggleSubscription)
			r.Put("/subscriptions/{channelName}/notifications", libraryHandler.SetNotificationLevel)

			r.Get("/recent-searches", libraryHandler.RecentSearches)
			r.Post("/recent-searches", libraryHandler.AddRecentSearch)
			r.Delete("/recent-searches", libraryHandler.ClearRecentSearches)
		})
	})

	// 404 handler
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":{"type":"not_found","message":"Endpoint not found"}}`))
	})

	log.Info("Router configured successfully")
	return r
}
