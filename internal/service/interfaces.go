package service

import (
	"context"

	"lines-be/internal/domain"
)

// VideoService defines the catalog read and publish operations
type VideoService interface {
	// QueryVideos filters, ranks and paginates the catalog
	QueryVideos(ctx context.Context, q domain.VideoQuery) (*domain.VideoPage, error)

	// GetVideoByID looks up a single video; ok is false on a miss
	GetVideoByID(ctx context.Context, id string) (video domain.Video, ok bool, err error)

	// AddVideo publishes a new video to the front of the catalog
	AddVideo(draft domain.VideoDraft) domain.Video

	// Categories returns the category list
	Categories() []string

	// Channels returns the static channel directory
	Channels() []domain.FollowedChannel
}

// SuggestionService defines search-as-you-type operations
type SuggestionService interface {
	// Suggest returns at most 8 suggestions for a partial query
	Suggest(ctx context.Context, partial string) ([]domain.Suggestion, error)
}

// Services aggregates all services
type Services struct {
	Videos      VideoService
	Suggestions SuggestionService
	UserState   *UserStateService
	Comments    *CommentService
	Requests    *RequestTracker
}
