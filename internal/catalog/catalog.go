package catalog

import (
	"strings"
	"sync"
	"time"

	"lines-be/internal/domain"

	"github.com/google/uuid"
)

// Identity of the local user. Uploads are published to this user's channel
// and new comments are authored by them.
const (
	CurrentUserID      = "current-user"
	CurrentUserName    = "John Doe"
	CurrentUserAvatar  = "https://picsum.photos/seed/user-avatar/40/40"
	CurrentUserChannel = "CodeMasters"
)

var defaultCategories = []string{
	domain.CategoryAll, domain.CategoryTrending,
	"Gaming", "Music", "Coding", "Design", "Travel", "Cooking", "Health", "Technology",
}

// Catalog holds the video collection in display order plus an id index
type Catalog struct {
	mu         sync.RWMutex
	videos     []*domain.Video
	byID       map[string]*domain.Video
	channels   []domain.FollowedChannel
	categories []string
	publisher  string
	now        func() time.Time
}

// Option configures a Catalog
type Option func(*Catalog)

// WithClock overrides the time source used for uploads
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) {
		c.now = now
	}
}

// WithCategories replaces the default category list
func WithCategories(categories []string) Option {
	return func(c *Catalog) {
		c.categories = append([]string(nil), categories...)
	}
}

// WithPublisher sets the channel new uploads are published to
func WithPublisher(channelName string) Option {
	return func(c *Catalog) {
		c.publisher = channelName
	}
}

// New builds a catalog. Videos keep the given order; a repeated id keeps its first entry.
func New(videos []domain.Video, channels []domain.FollowedChannel, opts ...Option) *Catalog {
	c := &Catalog{
		videos:     make([]*domain.Video, 0, len(videos)),
		byID:       make(map[string]*domain.Video, len(videos)),
		channels:   append([]domain.FollowedChannel(nil), channels...),
		categories: defaultCategories,
		publisher:  CurrentUserChannel,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	for i := range videos {
		if _, dup := c.byID[videos[i].ID]; dup {
			continue
		}
		v := videos[i]
		c.videos = append(c.videos, &v)
		c.byID[v.ID] = &v
	}
	return c
}

// NewSeeded builds the demo catalog with upload dates relative to now
func NewSeeded(now time.Time, opts ...Option) *Catalog {
	return New(SeedVideos(now), SeedChannels(), opts...)
}

// Get looks a video up by id. The returned value must be treated as read-only.
func (c *Catalog) Get(id string) (domain.Video, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.byID[id]
	if !ok {
		return domain.Video{}, false
	}
	return *v, true
}

// All returns a snapshot of the catalog in display order
func (c *Catalog) All() []domain.Video {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Video, len(c.videos))
	for i, v := range c.videos {
		out[i] = *v
	}
	return out
}

// Len returns the number of videos
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.videos)
}

// Add publishes a new video at the front of the catalog
func (c *Catalog) Add(draft domain.VideoDraft) domain.Video {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := &domain.Video{
		ID:           "video-" + uuid.NewString(),
		Title:        draft.Title,
		Description:  draft.Description,
		ThumbnailURL: draft.ThumbnailURL,
		VideoURL:     draft.VideoURL,
		ChannelName:  c.publisher,
		UploadDate:   c.now().UTC(),
		Duration:     draft.Duration,
		Category:     draft.Category,
		Visibility:   draft.Visibility,
		Tags:         append([]string(nil), draft.Tags...),
		MadeForKids:  draft.MadeForKids,
		Comments:     []domain.Comment{},
	}
	if !v.Visibility.Valid() {
		v.Visibility = domain.VisibilityPublic
	}
	if ch, ok := c.findChannel(c.publisher); ok {
		v.ChannelAvatarURL = ch.AvatarURL
		v.Followers = ch.SubscriberCount
	}

	c.videos = append([]*domain.Video{v}, c.videos...)
	c.byID[v.ID] = v
	return *v
}

// SetComments replaces the comment tree of a video
func (c *Catalog) SetComments(id string, comments []domain.Comment) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.byID[id]
	if !ok {
		return false
	}
	v.Comments = comments
	return true
}

// Channels returns the static channel directory
func (c *Catalog) Channels() []domain.FollowedChannel {
	return append([]domain.FollowedChannel(nil), c.channels...)
}

// FindChannel looks a directory channel up by exact name
func (c *Catalog) FindChannel(name string) (domain.FollowedChannel, bool) {
	return c.findChannel(name)
}

func (c *Catalog) findChannel(name string) (domain.FollowedChannel, bool) {
	for _, ch := range c.channels {
		if ch.Name == name {
			return ch, true
		}
	}
	return domain.FollowedChannel{}, false
}

// Categories returns the category list, pseudo-categories first
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// IsCategory reports whether name is a known category, ignoring case
func (c *Catalog) IsCategory(name string) bool {
	_, ok := c.CanonicalCategory(name)
	return ok
}

// CanonicalCategory maps name to the catalog spelling of a category
func (c *Catalog) CanonicalCategory(name string) (string, bool) {
	for _, cat := range c.categories {
		if strings.EqualFold(cat, name) {
			return cat, true
		}
	}
	return "", false
}
