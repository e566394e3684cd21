package domain

import "time"

// Visibility controls who can see a video
type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityUnlisted Visibility = "unlisted"
	VisibilityPrivate  Visibility = "private"
)

// Valid reports whether v is one of the known visibilities
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityUnlisted, VisibilityPrivate:
		return true
	}
	return false
}

// Badge is an optional marker shown on the thumbnail
type Badge string

const (
	BadgeNone Badge = ""
	BadgeLive Badge = "live"
	Badge4K   Badge = "4k"
)

// Video is the catalog unit
type Video struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	ThumbnailURL     string     `json:"thumbnailUrl"`
	VideoURL         string     `json:"videoUrl"`
	ChannelName      string     `json:"channelName"`
	ChannelAvatarURL string     `json:"channelAvatarUrl"`
	ViewCount        int64      `json:"viewCount"`
	UploadDate       time.Time  `json:"uploadDate"`
	Duration         string     `json:"duration"`
	Category         string     `json:"category"`
	Visibility       Visibility `json:"visibility"`
	Badge            Badge      `json:"badge,omitempty"`
	Rank             int        `json:"rank,omitempty"` // 0 means unranked
	CountryCode      string     `json:"countryCode,omitempty"`
	Likes            int64      `json:"likes"`
	Dislikes         int64      `json:"dislikes"`
	Followers        int64      `json:"followers"`
	Tags             []string   `json:"tags,omitempty"`
	MadeForKids      bool       `json:"isMadeForKids"`
	Comments         []Comment  `json:"comments"`
}

// Comment belongs to exactly one video and owns its replies
type Comment struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Author    string    `json:"author"`
	AvatarURL string    `json:"avatarUrl"`
	Text      string    `json:"text"`
	Date      time.Time `json:"date"`
	Likes     int64     `json:"likes"`
	Replies   []Comment `json:"replies"`
}

// VideoDraft is what the upload flow supplies for a new video. Identity,
// channel, counters and publish time are assigned by the catalog.
type VideoDraft struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ThumbnailURL string     `json:"thumbnailUrl"`
	VideoURL     string     `json:"videoUrl"`
	Duration     string     `json:"duration"`
	Category     string     `json:"category"`
	Visibility   Visibility `json:"visibility"`
	Tags         []string   `json:"tags,omitempty"`
	MadeForKids  bool       `json:"isMadeForKids"`
}
