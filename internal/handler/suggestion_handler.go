package handler

import (
	"net/http"

	"lines-be/internal/container"
	"lines-be/internal/domain"
)

// SuggestionHandler serves search-as-you-type
type SuggestionHandler struct {
	container *container.Container
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(container *container.Container) *SuggestionHandler {
	return &SuggestionHandler{
		container: container,
	}
}

type suggestionsView struct {
	Query       string              `json:"query"`
	Suggestions []domain.Suggestion `json:"suggestions"`
}

// Suggest handles GET /api/suggestions?q
func (h *SuggestionHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()
	query := r.URL.Query().Get("q")

	isLatest, finish := beginStream(r, h.container.GetRequestTracker(), "suggest")
	defer finish()

	suggestions, err := h.container.GetSuggestionService().Suggest(r.Context(), query)
	if err != nil {
		writeError(w, r, logger, err)
		return
	}

	if !isLatest() {
		writeJSON(w, logger, http.StatusOK, staleResponse{Stale: true})
		return
	}

	if suggestions == nil {
		suggestions = []domain.Suggestion{}
	}
	writeJSON(w, logger, http.StatusOK, suggestionsView{Query: query, Suggestions: suggestions})
}
