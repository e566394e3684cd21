package handler

import (
	"net/http"

	"lines-be/internal/container"
	"lines-be/internal/domain"
	"lines-be/pkg/errors"

	"github.com/go-chi/chi/v5"
)

// CommentHandler serves comment threads
type CommentHandler struct {
	container *container.Container
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(container *container.Container) *CommentHandler {
	return &CommentHandler{
		container: container,
	}
}

type commentsView struct {
	Comments []domain.Comment `json:"comments"`
	Total    int              `json:"total"`
	Sort     string           `json:"sort"`
}

type commentRequest struct {
	Text string `json:"text"`
}

type deleteCommentView struct {
	Removed int `json:"removed"`
}

// List handles GET /api/videos/{videoId}/comments?sort=top|newest
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	order := domain.CommentSort(r.URL.Query().Get("sort"))
	switch order {
	case "":
		order = domain.SortTop
	case domain.SortTop, domain.SortNewest:
	default:
		writeError(w, r, logger, errors.NewValidationError("Unknown sort order", map[string]interface{}{
			"field": "sort",
			"value": order,
		}))
		return
	}

	comments, total, err := h.container.GetCommentService().List(chi.URLParam(r, "videoId"), order)
	if err != nil {
		writeError(w, r, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, commentsView{Comments: comments, Total: total, Sort: string(order)})
}

// Create handles POST /api/videos/{videoId}/comments
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, logger, err)
		return
	}

	comment, err := h.container.GetCommentService().Add(chi.URLParam(r, "videoId"), req.Text)
	if err != nil {
		writeError(w, r, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusCreated, comment)
}

// Reply handles POST /api/videos/{videoId}/comments/{commentId}/replies
func (h *CommentHandler) Reply(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, logger, err)
		return
	}

	reply, err := h.container.GetCommentService().Reply(chi.URLParam(r, "videoId"), chi.URLParam(r, "commentId"), req.Text)
	if err != nil {
		writeError(w, r, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusCreated, reply)
}

// Edit handles PATCH /api/videos/{videoId}/comments/{commentId}
func (h *CommentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, logger, err)
		return
	}

	comment, err := h.container.GetCommentService().Edit(chi.URLParam(r, "videoId"), chi.URLParam(r, "commentId"), req.Text)
	if err != nil {
		writeError(w, r, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, comment)
}

// Delete handles DELETE /api/videos/{videoId}/comments/{commentId}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	removed, err := h.container.GetCommentService().Delete(chi.URLParam(r, "videoId"), chi.URLParam(r, "commentId"))
	if err != nil {
		writeError(w, r, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, deleteCommentView{Removed: removed})
}
