package handler

import (
	"net/http"
	"strings"
	"time"

	"lines-be/internal/container"
	"lines-be/internal/domain"
	"lines-be/pkg/errors"

	"github.com/go-chi/chi/v5"
)

const maxTitleLength = 100

// VideoHandler serves the catalog and the query engine
type VideoHandler struct {
	container *container.Container
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(container *container.Container) *VideoHandler {
	return &VideoHandler{
		container: container,
	}
}

// Categories handles GET /api/categories
func (h *VideoHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.container.GetLogger(), http.StatusOK, h.container.GetVideoService().Categories())
}

// Channels handles GET /api/channels
func (h *VideoHandler) Channels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.container.GetLogger(), http.StatusOK, h.container.GetVideoService().Channels())
}

// List handles GET /api/videos?page&limit&category&q&scope
func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	q, err := h.parseQuery(r)
	if err != nil {
		writeError(w, r, logger, err)
		return
	}

	isLatest, finish := beginStream(r, h.container.GetRequestTracker(), "videos")
	defer finish()

	page, err := h.container.GetVideoService().QueryVideos(r.Context(), q)
	if err != nil {
		writeError(w, r, logger, err)
		return
	}

	if !isLatest() {
		writeJSON(w, logger, http.StatusOK, staleResponse{Stale: true})
		return
	}

	writeJSON(w, logger, http.StatusOK, videoPageView{
		Videos:   toVideoViews(page.Videos, time.Now()),
		HasMore:  page.HasMore,
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    page.Total,
	})
}

func (h *VideoHandler) parseQuery(r *http.Request) (domain.VideoQuery, error) {
	values := r.URL.Query()

	page, err := queryInt(r, "page")
	if err != nil {
		return domain.VideoQuery{}, err
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		return domain.VideoQuery{}, err
	}

	var scope domain.Scope
	switch strings.ToLower(values.Get("scope")) {
	case "", "global":
		scope = domain.ScopeGlobal
	case "regional":
		scope = domain.ScopeRegional
	default:
		return domain.VideoQuery{}, errors.NewValidationError("Unknown scope", map[string]interface{}{
			"field": "scope",
			"value": values.Get("scope"),
		})
	}

	category := values.Get("category")
	if canonical, ok := h.container.Catalog.CanonicalCategory(category); ok {
		category = canonical
	}

	return domain.VideoQuery{
		Page:     page,
		PageSize: limit,
		Category: category,
		Query:    values.Get("q"),
		Scope:    scope,
	}, nil
}

// Get handles GET /api/videos/{videoId}
func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()
	videoID := chi.URLParam(r, "videoId")

	video, ok, err := h.container.GetVideoService().GetVideoByID(r.Context(), videoID)
	if err != nil {
		writeError(w, r, logger, err)
		return
	}
	if !ok {
		writeError(w, r, logger, errors.NewNotFoundError("Video not found"))
		return
	}

	writeJSON(w, logger, http.StatusOK, toVideoView(video, time.Now()))
}

// Create handles POST /api/videos
func (h *VideoHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	var draft domain.VideoDraft
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, r, logger, err)
		return
	}

	if err := h.validateDraft(&draft); err != nil {
		writeError(w, r, logger, err)
		return
	}

	video := h.container.GetVideoService().AddVideo(draft)
	writeJSON(w, logger, http.StatusCreated, toVideoView(video, time.Now()))
}

func (h *VideoHandler) validateDraft(draft *domain.VideoDraft) error {
	draft.Title = strings.TrimSpace(draft.Title)
	if draft.Title == "" {
		return errors.NewValidationError("Title is required", map[string]interface{}{
			"field": "title",
		})
	}
	if len([]rune(draft.Title)) > maxTitleLength {
		return errors.NewValidationError("Title is too long", map[string]interface{}{
			"field": "title",
			"max":   maxTitleLength,
		})
	}

	if draft.Visibility != "" && !draft.Visibility.Valid() {
		return errors.NewValidationError("Unknown visibility", map[string]interface{}{
			"field": "visibility",
			"value": draft.Visibility,
		})
	}

	if draft.Category != "" {
		canonical, ok := h.container.Catalog.CanonicalCategory(draft.Category)
		if !ok || canonical == domain.CategoryAll || canonical == domain.CategoryTrending {
			return errors.NewValidationError("Unknown category", map[string]interface{}{
				"field": "category",
				"value": draft.Category,
			})
		}
		draft.Category = canonical
	}
	return nil
}
