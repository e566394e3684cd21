package domain

// NotificationLevel is how loudly a followed channel notifies
type NotificationLevel string

const (
	NotificationAll          NotificationLevel = "all"
	NotificationPersonalized NotificationLevel = "personalized"
	NotificationNone         NotificationLevel = "none"
)

// Valid reports whether l is a known level
func (l NotificationLevel) Valid() bool {
	switch l {
	case NotificationAll, NotificationPersonalized, NotificationNone:
		return true
	}
	return false
}

// FollowedChannel is a channel in the directory or in the user's followed list
type FollowedChannel struct {
	Name              string            `json:"name"`
	Handle            string            `json:"handle"`
	AvatarURL         string            `json:"avatarUrl"`
	SubscriberCount   int64             `json:"subscriberCount"`
	IsLive            bool              `json:"isLive,omitempty"`
	NotificationLevel NotificationLevel `json:"notificationLevel,omitempty"`
}

// Playlist is a named, user-curated collection of video ids.
// VideoCount always equals VideoIDs.Len() on anything handed out by the store.
type Playlist struct {
	ID           string
	Name         string
	VideoIDs     IDSet
	ThumbnailURL string
	VideoCount   int
}

// Clone returns a deep copy
func (p Playlist) Clone() Playlist {
	p.VideoIDs = p.VideoIDs.Clone()
	return p
}
