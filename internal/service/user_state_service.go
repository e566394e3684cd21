package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"lines-be/internal/catalog"
	"lines-be/internal/domain"
	"lines-be/internal/repository"
	"lines-be/pkg/logger"

	"github.com/google/uuid"
)

// UserStateService holds the per-installation library: likes, playlists,
// follows, watch history and recent searches. Every mutation updates memory
// and writes through to the repository before returning. Storage failures are
// logged and swallowed.
type UserStateService struct {
	mu       sync.RWMutex
	catalog  *catalog.Catalog
	repo     repository.StateRepository
	logger   *logger.Logger
	withSeed bool

	playlists []domain.Playlist
	liked     domain.IDSet
	disliked  domain.IDSet
	followed  []domain.FollowedChannel
	history   []string
	recent    []string
}

// NewUserStateService creates the store with fallback state. Call Load to rehydrate.
// withSeed selects the demo library as the fallback instead of empty collections.
func NewUserStateService(cat *catalog.Catalog, repo repository.StateRepository, log *logger.Logger, withSeed bool) *UserStateService {
	s := &UserStateService{
		catalog:  cat,
		repo:     repo,
		logger:   log.Named("user_state"),
		withSeed: withSeed,
	}
	for _, key := range repository.StateKeys {
		s.applyFallback(key)
	}
	return s
}

// Load rehydrates every key. Missing keys and unreadable payloads fall back to defaults.
func (s *UserStateService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range repository.StateKeys {
		data, ok, err := s.repo.Get(ctx, key)
		if err != nil {
			s.logger.WithError(err).WithField("key", key).Warn("Failed to read user state, using defaults")
			s.applyFallback(key)
			continue
		}
		if !ok {
			s.applyFallback(key)
			continue
		}
		if err := s.decode(key, data); err != nil {
			s.logger.WithError(decodeError(key, err)).WithField("key", key).Warn("Discarding unreadable user state")
			s.applyFallback(key)
		}
	}

	// liked wins if a stored payload had an id in both sets
	for _, id := range s.liked.Slice() {
		s.disliked.Remove(id)
	}

	s.logger.WithFields(map[string]interface{}{
		"playlists": len(s.playlists),
		"liked":     s.liked.Len(),
		"followed":  len(s.followed),
		"history":   len(s.history),
	}).Info("User state loaded")
}

func (s *UserStateService) decode(key string, data []byte) error {
	var err error
	switch key {
	case repository.KeyPlaylists:
		var v []domain.Playlist
		if v, err = decodePlaylists(data); err == nil {
			s.playlists = v
		}
	case repository.KeyLikedVideos:
		var v domain.IDSet
		if v, err = decodeIDSet(data); err == nil {
			s.liked = v
		}
	case repository.KeyDislikedVideos:
		var v domain.IDSet
		if v, err = decodeIDSet(data); err == nil {
			s.disliked = v
		}
	case repository.KeyFollowedChannels:
		var v []domain.FollowedChannel
		if v, err = decodeFollowed(data); err == nil {
			s.followed = v
		}
	case repository.KeyWatchHistory:
		var v []string
		if v, err = decodeHistory(data); err == nil {
			s.history = v
		}
	case repository.KeyRecentSearches:
		var v []string
		if v, err = decodeRecentSearches(data); err == nil {
			s.recent = v
		}
	}
	return err
}

func (s *UserStateService) applyFallback(key string) {
	switch key {
	case repository.KeyPlaylists:
		s.playlists = nil
		if s.withSeed {
			s.playlists = []domain.Playlist{
				{ID: "pl-1", Name: "Watch Later", VideoIDs: domain.NewIDSet("2"), ThumbnailURL: "https://picsum.photos/seed/pl-watch-later/400/225"},
				{ID: "pl-2", Name: "Favorites", VideoIDs: domain.NewIDSet(), ThumbnailURL: "https://picsum.photos/seed/pl-favs/400/225"},
			}
		}
	case repository.KeyLikedVideos:
		s.liked = domain.NewIDSet()
		if s.withSeed {
			s.liked = domain.NewIDSet("1", "4", "8")
		}
	case repository.KeyDislikedVideos:
		s.disliked = domain.NewIDSet()
	case repository.KeyFollowedChannels:
		s.followed = nil
		if s.withSeed {
			channels := s.catalog.Channels()
			if len(channels) > 4 {
				channels = channels[:4]
			}
			for _, ch := range channels {
				ch.NotificationLevel = domain.NotificationAll
				s.followed = append(s.followed, ch)
			}
		}
	case repository.KeyWatchHistory:
		s.history = nil
		if s.withSeed {
			s.history = []string{"8", "1", "4", "5"}
		}
	case repository.KeyRecentSearches:
		s.recent = nil
	}
}

// persist writes one key through to the repository. Failures are logged only.
// The write is detached from ctx cancellation so a dropped client does not lose it.
func (s *UserStateService) persist(ctx context.Context, key string, value interface{}) {
	var (
		data []byte
		err  error
	)
	switch v := value.(type) {
	case []domain.Playlist:
		data, err = encodePlaylists(v)
	case domain.IDSet:
		data, err = encodeIDSet(v)
	default:
		data, err = json.Marshal(v)
	}
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Error("Failed to encode user state")
		return
	}

	if err := s.repo.Set(context.WithoutCancel(ctx), key, data); err != nil {
		s.logger.WithError(err).WithField("key", key).Error("Failed to persist user state")
	}
}

// Liked returns a copy of the liked set
func (s *UserStateService) Liked() domain.IDSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.liked.Clone()
}

// Disliked returns a copy of the disliked set
func (s *UserStateService) Disliked() domain.IDSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.disliked.Clone()
}

// ToggleLike unlikes a liked video, otherwise likes it and clears any dislike
func (s *UserStateService) ToggleLike(ctx context.Context, videoID string) (liked, disliked domain.IDSet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.liked.Remove(videoID) {
		s.liked.Add(videoID)
		s.disliked.Remove(videoID)
	}
	s.persist(ctx, repository.KeyLikedVideos, s.liked)
	s.persist(ctx, repository.KeyDislikedVideos, s.disliked)

	return s.liked.Clone(), s.disliked.Clone()
}

// ToggleDislike is the mirror image of ToggleLike
func (s *UserStateService) ToggleDislike(ctx context.Context, videoID string) (liked, disliked domain.IDSet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.disliked.Remove(videoID) {
		s.disliked.Add(videoID)
		s.liked.Remove(videoID)
	}
	s.persist(ctx, repository.KeyDislikedVideos, s.disliked)
	s.persist(ctx, repository.KeyLikedVideos, s.liked)

	return s.liked.Clone(), s.disliked.Clone()
}

// LikedVideos resolves liked ids, most recently liked first. Unknown ids are skipped.
func (s *UserStateService) LikedVideos() []domain.Video {
	s.mu.RLock()
	ids := s.liked.Newest()
	s.mu.RUnlock()

	return s.resolve(ids)
}

func (s *UserStateService) resolve(ids []string) []domain.Video {
	out := make([]domain.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := s.catalog.Get(id); ok {
			out = append(out, v)
		}
	}
	return out
}

// annotate refreshes the derived count and thumbnail. The thumbnail comes from
// the most recently added member found in the catalog.
func (s *UserStateService) annotate(p domain.Playlist) domain.Playlist {
	p = p.Clone()
	p.VideoCount = p.VideoIDs.Len()
	for _, id := range p.VideoIDs.Newest() {
		if v, ok := s.catalog.Get(id); ok {
			p.ThumbnailURL = v.ThumbnailURL
			break
		}
	}
	return p
}

// Playlists returns every playlist with fresh count and thumbnail
func (s *UserStateService) Playlists() []domain.Playlist {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Playlist, 0, len(s.playlists))
	for _, p := range s.playlists {
		out = append(out, s.annotate(p))
	}
	return out
}

// CreatePlaylist appends a playlist, optionally seeded with one video
func (s *UserStateService) CreatePlaylist(ctx context.Context, name, videoID string) domain.Playlist {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := domain.NewIDSet()
	if videoID != "" {
		ids.Add(videoID)
	}
	p := domain.Playlist{
		ID:           "pl-" + uuid.NewString(),
		Name:         name,
		VideoIDs:     ids,
		ThumbnailURL: newPlaylistThumbnail,
		VideoCount:   ids.Len(),
	}
	s.playlists = append(s.playlists, p)
	s.persist(ctx, repository.KeyPlaylists, s.playlists)

	return s.annotate(p)
}

// ToggleVideoInPlaylist flips membership of videoID. found is false for an
// unknown playlist, in which case nothing changes.
func (s *UserStateService) ToggleVideoInPlaylist(ctx context.Context, playlistID, videoID string) (playlist domain.Playlist, member bool, found bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.playlists {
		if s.playlists[i].ID != playlistID {
			continue
		}
		p := &s.playlists[i]
		member = p.VideoIDs.Toggle(videoID)
		p.VideoCount = p.VideoIDs.Len()
		s.persist(ctx, repository.KeyPlaylists, s.playlists)
		return s.annotate(*p), member, true
	}
	return domain.Playlist{}, false, false
}

// AddToHistory moves videoID to the front of the watch history
func (s *UserStateService) AddToHistory(ctx context.Context, videoID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = pushFront(s.history, videoID, MaxHistoryItems, func(id string) string { return id })
	s.persist(ctx, repository.KeyWatchHistory, s.history)

	return append([]string(nil), s.history...)
}

// History resolves the watch history, most recent first. Unknown ids are skipped.
func (s *UserStateService) History() []domain.Video {
	s.mu.RLock()
	ids := append([]string(nil), s.history...)
	s.mu.RUnlock()

	return s.resolve(ids)
}

// Followed returns a copy of the followed channels
func (s *UserStateService) Followed() []domain.FollowedChannel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.FollowedChannel{}, s.followed...)
}

// ToggleSubscription unfollows a followed channel or follows a directory channel
// with notifications set to all. Unknown names change nothing.
func (s *UserStateService) ToggleSubscription(ctx context.Context, channelName string) (followed []domain.FollowedChannel, following bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.followedIndex(channelName)
	switch {
	case idx >= 0:
		s.followed = append(s.followed[:idx:idx], s.followed[idx+1:]...)
	default:
		ch, ok := s.catalog.FindChannel(channelName)
		if !ok {
			return append([]domain.FollowedChannel{}, s.followed...), false
		}
		ch.NotificationLevel = domain.NotificationAll
		s.followed = append(s.followed, ch)
		following = true
	}
	s.persist(ctx, repository.KeyFollowedChannels, s.followed)

	return append([]domain.FollowedChannel{}, s.followed...), following
}

// SetNotificationLevel changes how a followed channel notifies. found is false
// when the channel is not followed.
func (s *UserStateService) SetNotificationLevel(ctx context.Context, channelName string, level domain.NotificationLevel) (domain.FollowedChannel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.followedIndex(channelName)
	if idx < 0 || !level.Valid() {
		return domain.FollowedChannel{}, false
	}
	s.followed[idx].NotificationLevel = level
	s.persist(ctx, repository.KeyFollowedChannels, s.followed)

	return s.followed[idx], true
}

func (s *UserStateService) followedIndex(name string) int {
	for i, ch := range s.followed {
		if ch.Name == name {
			return i
		}
	}
	return -1
}

// RecentSearches returns recent queries, most recent first
func (s *UserStateService) RecentSearches() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.recent...)
}

// AddRecentSearch records a query. Blank queries are ignored and repeats
// differing only in case collapse onto the newest spelling.
func (s *UserStateService) AddRecentSearch(ctx context.Context, query string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	query = strings.TrimSpace(query)
	if query == "" {
		return append([]string{}, s.recent...)
	}
	s.recent = pushFront(s.recent, query, MaxRecentSearches, strings.ToLower)
	s.persist(ctx, repository.KeyRecentSearches, s.recent)

	return append([]string{}, s.recent...)
}

// ClearRecentSearches forgets every recent query and removes the stored key
func (s *UserStateService) ClearRecentSearches(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recent = nil
	if err := s.repo.Delete(context.WithoutCancel(ctx), repository.KeyRecentSearches); err != nil {
		s.logger.WithError(err).WithField("key", repository.KeyRecentSearches).Error("Failed to clear user state")
	}
}
