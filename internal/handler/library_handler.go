package handler

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"lines-be/internal/container"
	"lines-be/internal/domain"
	"lines-be/pkg/errors"

	"github.com/go-chi/chi/v5"
)

const maxPlaylistNameLength = 150

// LibraryHandler serves the local user's likes, playlists, history, follows
// and recent searches
type LibraryHandler struct {
	container *container.Container
}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler(container *container.Container) *LibraryHandler {
	return &LibraryHandler{
		container: container,
	}
}

type ratingsView struct {
	Liked    []string `json:"liked"`
	Disliked []string `json:"disliked"`
}

type playlistToggleView struct {
	Playlist playlistView `json:"playlist"`
	Member   bool         `json:"member"`
}

type subscriptionsView struct {
	Subscriptions []domain.FollowedChannel `json:"subscriptions"`
	Following     bool                     `json:"following"`
}

type createPlaylistRequest struct {
	Name    string `json:"name"`
	VideoID string `json:"videoId"`
}

type historyRequest struct {
	VideoID string `json:"videoId"`
}

type notificationRequest struct {
	Level domain.NotificationLevel `json:"level"`
}

type recentSearchRequest struct {
	Query string `json:"query"`
}

func newRatingsView(liked, disliked domain.IDSet) ratingsView {
	return ratingsView{Liked: liked.Slice(), Disliked: disliked.Slice()}
}

// Ratings handles GET /api/me/likes
func (h *LibraryHandler) Ratings(w http.ResponseWriter, r *http.Request) {
	store := h.container.GetUserStateService()
	writeJSON(w, h.container.GetLogger(), http.StatusOK, newRatingsView(store.Liked(), store.Disliked()))
}

// LikedVideos handles GET /api/me/likes/videos
func (h *LibraryHandler) LikedVideos(w http.ResponseWriter, r *http.Request) {
	videos := h.container.GetUserStateService().LikedVideos()
	writeJSON(w, h.container.GetLogger(), http.StatusOK, toVideoViews(videos, time.Now()))
}

// ToggleLike handles POST /api/me/likes/{videoId}
func (h *LibraryHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	liked, disliked := h.container.GetUserStateService().ToggleLike(r.Context(), chi.URLParam(r, "videoId"))
	writeJSON(w, h.container.GetLogger(), http.StatusOK, newRatingsView(liked, disliked))
}

// ToggleDislike handles POST /api/me/dislikes/{videoId}
func (h *LibraryHandler) ToggleDislike(w http.ResponseWriter, r *http.Request) {
	liked, disliked := h.container.GetUserStateService().ToggleDislike(r.Context(), chi.URLParam(r, "videoId"))
	writeJSON(w, h.container.GetLogger(), http.StatusOK, newRatingsView(liked, disliked))
}

// Playlists handles GET /api/me/playlists
func (h *LibraryHandler) Playlists(w http.ResponseWriter, r *http.Request) {
	playlists := h.container.GetUserStateService().Playlists()
	writeJSON(w, h.container.GetLogger(), http.StatusOK, toPlaylistViews(playlists))
}

// CreatePlaylist handles POST /api/me/playlists
func (h *LibraryHandler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	var req createPlaylistRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, logger, err)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || len([]rune(name)) > maxPlaylistNameLength {
		writeError(w, r, logger, errors.NewValidationError("Playlist name must be 1 to 150 characters", map[string]interface{}{
			"field": "name",
		}))
		return
	}

	playlist := h.container.GetUserStateService().CreatePlaylist(r.Context(), name, strings.TrimSpace(req.VideoID))
	writeJSON(w, logger, http.StatusCreated, toPlaylistView(playlist))
}

// TogglePlaylistVideo handles POST /api/me/playlists/{playlistId}/videos/{videoId}
func (h *LibraryHandler) TogglePlaylistVideo(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	playlist, member, found := h.container.GetUserStateService().ToggleVideoInPlaylist(
		r.Context(),
		chi.URLParam(r, "playlistId"),
		chi.URLParam(r, "videoId"),
	)
	if !found {
		writeError(w, r, logger, errors.NewNotFoundError("Playlist not found"))
		return
	}

	writeJSON(w, logger, http.StatusOK, playlistToggleView{Playlist: toPlaylistView(playlist), Member: member})
}

// History handles GET /api/me/history
func (h *LibraryHandler) History(w http.ResponseWriter, r *http.Request) {
	videos := h.container.GetUserStateService().History()
	writeJSON(w, h.container.GetLogger(), http.StatusOK, toVideoViews(videos, time.Now()))
}

// AddToHistory handles POST /api/me/history
func (h *LibraryHandler) AddToHistory(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	var req historyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, logger, err)
		return
	}
	if strings.TrimSpace(req.VideoID) == "" {
		writeError(w, r, logger, errors.NewValidationError("videoId is required", map[string]interface{}{
			"field": "videoId",
		}))
		return
	}

	ids := h.container.GetUserStateService().AddToHistory(r.Context(), strings.TrimSpace(req.VideoID))
	writeJSON(w, logger, http.StatusOK, ids)
}

// Subscriptions handles GET /api/me/subscriptions
func (h *LibraryHandler) Subscriptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.container.GetLogger(), http.StatusOK, h.container.GetUserStateService().Followed())
}

// ToggleSubscription handles POST /api/me/subscriptions/{channelName}
func (h *LibraryHandler) ToggleSubscription(w http.ResponseWriter, r *http.Request) {
	followed, following := h.container.GetUserStateService().ToggleSubscription(r.Context(), channelParam(r))
	writeJSON(w, h.container.GetLogger(), http.StatusOK, subscriptionsView{Subscriptions: followed, Following: following})
}

// SetNotificationLevel handles PUT /api/me/subscriptions/{channelName}/notifications
func (h *LibraryHandler) SetNotificationLevel(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	var req notificationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, logger, err)
		return
	}
	if !req.Level.Valid() {
		writeError(w, r, logger, errors.NewValidationError("Unknown notification level", map[string]interface{}{
			"field": "level",
			"value": req.Level,
		}))
		return
	}

	channel, ok := h.container.GetUserStateService().SetNotificationLevel(r.Context(), channelParam(r), req.Level)
	if !ok {
		writeError(w, r, logger, errors.NewNotFoundError("Channel is not followed"))
		return
	}

	writeJSON(w, logger, http.StatusOK, channel)
}

// RecentSearches handles GET /api/me/recent-searches
func (h *LibraryHandler) RecentSearches(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.container.GetLogger(), http.StatusOK, h.container.GetUserStateService().RecentSearches())
}

// AddRecentSearch handles POST /api/me/recent-searches
func (h *LibraryHandler) AddRecentSearch(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	var req recentSearchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, h.container.GetUserStateService().AddRecentSearch(r.Context(), req.Query))
}

// ClearRecentSearches handles DELETE /api/me/recent-searches
func (h *LibraryHandler) ClearRecentSearches(w http.ResponseWriter, r *http.Request) {
	h.container.GetUserStateService().ClearRecentSearches(r.Context())
	writeJSON(w, h.container.GetLogger(), http.StatusOK, []string{})
}

// channelParam returns the decoded channel name path segment
func channelParam(r *http.Request) string {
	raw := chi.URLParam(r, "channelName")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}
