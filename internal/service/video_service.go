package service

import (
	"context"

	"lines-be/internal/catalog"
	"lines-be/internal/domain"
	"lines-be/pkg/logger"
)

// videoService answers catalog queries with simulated network latency
type videoService struct {
	catalog *catalog.Catalog
	cfg     EngineConfig
	logger  *logger.Logger
}

// NewVideoService creates a new video service
func NewVideoService(cat *catalog.Catalog, cfg EngineConfig, log *logger.Logger) VideoService {
	return &videoService{
		catalog: cat,
		cfg:     cfg,
		logger:  log.Named("videos"),
	}
}

// QueryVideos implements the category/scope ranking, text filter and pagination.
// page <= 0 is treated as 1 and pageSize <= 0 falls back to the configured default.
func (s *videoService) QueryVideos(ctx context.Context, q domain.VideoQuery) (*domain.VideoPage, error) {
	if err := simulateLatency(ctx, s.cfg.QueryLatency); err != nil {
		return nil, err
	}

	page := q.Page
	if page <= 0 {
		page = 1
	}
	size := q.PageSize
	if size <= 0 {
		size = s.cfg.pageSize()
	}

	videos := selectAndRank(s.catalog.All(), q.Category, q.Scope, s.cfg.now(), s.cfg.ViewerCountry)
	videos = matchText(videos, q.Query)
	window, hasMore := paginate(videos, page, size)

	s.logger.WithFields(map[string]interface{}{
		"category": q.Category,
		"scope":    q.Scope,
		"page":     page,
		"results":  len(window),
		"total":    len(videos),
	}).Debug("Videos queried")

	return &domain.VideoPage{
		Videos:   append([]domain.Video{}, window...),
		HasMore:  hasMore,
		Page:     page,
		PageSize: size,
		Total:    len(videos),
	}, nil
}

// GetVideoByID looks up a video after the lookup latency
func (s *videoService) GetVideoByID(ctx context.Context, id string) (domain.Video, bool, error) {
	if err := simulateLatency(ctx, s.cfg.LookupLatency); err != nil {
		return domain.Video{}, false, err
	}

	v, ok := s.catalog.Get(id)
	return v, ok, nil
}

// AddVideo publishes a draft through the catalog
func (s *videoService) AddVideo(draft domain.VideoDraft) domain.Video {
	v := s.catalog.Add(draft)
	s.logger.WithFields(map[string]interface{}{
		"video_id": v.ID,
		"channel":  v.ChannelName,
	}).Info("Video published")
	return v
}

// Categories returns the catalog category list
func (s *videoService) Categories() []string {
	return s.catalog.Categories()
}

// Channels returns the channel directory
func (s *videoService) Channels() []domain.FollowedChannel {
	return s.catalog.Channels()
}
