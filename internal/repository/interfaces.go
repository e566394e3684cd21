package repository

import (
	"context"
)

// State keys of the persisted user-state layout
const (
	KeyPlaylists        = "playlists"
	KeyLikedVideos      = "likedVideos"
	KeyDislikedVideos   = "dislikedVideos"
	KeyFollowedChannels = "followedChannels"
	KeyWatchHistory     = "watchHistory"
	KeyRecentSearches   = "recentSearches"
)

// StateKeys lists every persisted key in load order
var StateKeys = []string{
	KeyPlaylists,
	KeyLikedVideos,
	KeyDislikedVideos,
	KeyFollowedChannels,
	KeyWatchHistory,
	KeyRecentSearches,
}

// StateRepository is a key/value store for JSON-encoded user state of one installation
type StateRepository interface {
	// Get returns the stored value; ok is false when the key has never been written
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
}
