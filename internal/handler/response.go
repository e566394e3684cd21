package handler

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"lines-be/internal/domain"
	"lines-be/internal/middleware"
	"lines-be/internal/service"
	"lines-be/pkg/errors"
	"lines-be/pkg/format"
	"lines-be/pkg/logger"
)

// Response is the success envelope shared by every endpoint
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message,omitempty"`
}

// videoView adds display strings to a video
type videoView struct {
	domain.Video
	Views      string `json:"views"`
	UploadedAt string `json:"uploadedAt"`
}

type videoPageView struct {
	Videos   []videoView `json:"videos"`
	HasMore  bool        `json:"hasMore"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
	Total    int         `json:"total"`
}

type playlistView struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	VideoIDs     []string `json:"videoIds"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	VideoCount   int      `json:"videoCount"`
}

// staleResponse tells the shell a newer request on the same stream superseded this one
type staleResponse struct {
	Stale bool `json:"stale"`
}

func toVideoView(v domain.Video, now time.Time) videoView {
	return videoView{
		Video:      v,
		Views:      format.CompactNumber(v.ViewCount),
		UploadedAt: format.TimeAgo(v.UploadDate, now),
	}
}

func toVideoViews(videos []domain.Video, now time.Time) []videoView {
	out := make([]videoView, len(videos))
	for i, v := range videos {
		out[i] = toVideoView(v, now)
	}
	return out
}

func toPlaylistView(p domain.Playlist) playlistView {
	return playlistView{
		ID:           p.ID,
		Name:         p.Name,
		VideoIDs:     p.VideoIDs.Slice(),
		ThumbnailURL: p.ThumbnailURL,
		VideoCount:   p.VideoCount,
	}
}

func toPlaylistViews(playlists []domain.Playlist) []playlistView {
	out := make([]playlistView, len(playlists))
	for i, p := range playlists {
		out[i] = toPlaylistView(p)
	}
	return out
}

// writeJSON writes data wrapped in the success envelope
func writeJSON(w http.ResponseWriter, log *logger.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(Response{Success: true, Data: data}); err != nil {
		log.WithError(err).Error("Failed to encode response")
	}
}

// writeError renders err as an ErrorResponse. Errors that are not AppErrors
// become internal errors; a cancelled request gets no body at all.
func writeError(w http.ResponseWriter, r *http.Request, log *logger.Logger, err error) {
	if stderrors.Is(err, context.Canceled) {
		log.Debug("Request cancelled by client")
		return
	}

	appErr := errors.As(err)
	if appErr == nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			appErr = errors.NewInternalError("Request timed out", err)
			appErr.StatusCode = http.StatusGatewayTimeout
		} else {
			appErr = errors.NewInternalError("Internal server error", err)
		}
	}

	requestID := middleware.GetRequestID(r.Context())
	entry := log.WithError(appErr).WithFields(map[string]interface{}{
		"request_id": requestID,
		"path":       r.URL.Path,
	})
	if appErr.StatusCode >= http.StatusInternalServerError {
		entry.Error("Request failed")
	} else {
		entry.Debug("Request rejected")
	}

	var resp errors.ErrorResponse
	resp.Error.Type = appErr.Type
	resp.Error.Message = appErr.Message
	resp.Error.Details = appErr.Details
	resp.Error.RequestID = requestID
	resp.Error.Timestamp = time.Now().UTC().Format(time.RFC3339)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.WithError(err).Error("Failed to encode error response")
	}
}

// decodeJSON reads a JSON body into dst
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.NewValidationError("Invalid request body", map[string]interface{}{
			"reason": err.Error(),
		})
	}
	return nil
}

// queryInt parses an optional integer query parameter; absent yields 0
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewValidationError("Query parameter must be an integer", map[string]interface{}{
			"field": name,
			"value": raw,
		})
	}
	return n, nil
}

// beginStream opens a request token when the caller identifies its session.
// isLatest reports whether the request is still the newest one; finish must be
// called once the response is decided so the stream can be released.
func beginStream(r *http.Request, tracker *service.RequestTracker, name string) (isLatest func() bool, finish func()) {
	session := r.Header.Get(middleware.SessionIDHeader)
	if session == "" || tracker == nil {
		return func() bool { return true }, func() {}
	}
	stream := session + ":" + name
	token := tracker.Begin(stream)
	return func() bool { return tracker.IsLatest(stream, token) },
		func() { tracker.End(stream, token) }
}
