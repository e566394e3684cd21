package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"lines-be/internal/domain"
)

const (
	MaxHistoryItems        = 100
	MaxRecentSearches      = 5
	newPlaylistThumbnail   = "https://picsum.photos/seed/newpl/400/225"
	defaultNotificationLvl = domain.NotificationAll
)

// playlistRecord is the persisted playlist layout; the id set travels as an array
type playlistRecord struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	VideoIDs     []string `json:"videoIds"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	VideoCount   int      `json:"videoCount"`
}

func encodePlaylists(playlists []domain.Playlist) ([]byte, error) {
	records := make([]playlistRecord, 0, len(playlists))
	for _, p := range playlists {
		records = append(records, playlistRecord{
			ID:           p.ID,
			Name:         p.Name,
			VideoIDs:     p.VideoIDs.Slice(),
			ThumbnailURL: p.ThumbnailURL,
			VideoCount:   p.VideoIDs.Len(),
		})
	}
	return json.Marshal(records)
}

func decodePlaylists(data []byte) ([]domain.Playlist, error) {
	var records []playlistRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(records))
	out := make([]domain.Playlist, 0, len(records))
	for _, r := range records {
		if r.ID == "" || seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		ids := domain.NewIDSet(r.VideoIDs...)
		out = append(out, domain.Playlist{
			ID:           r.ID,
			Name:         r.Name,
			VideoIDs:     ids,
			ThumbnailURL: r.ThumbnailURL,
			VideoCount:   ids.Len(),
		})
	}
	return out, nil
}

func encodeIDSet(s domain.IDSet) ([]byte, error) {
	return json.Marshal(s.Slice())
}

func decodeIDSet(data []byte) (domain.IDSet, error) {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return domain.IDSet{}, err
	}
	return domain.NewIDSet(ids...), nil
}

// decodeFollowed drops repeated channel names and fills a missing notification level
func decodeFollowed(data []byte) ([]domain.FollowedChannel, error) {
	var channels []domain.FollowedChannel
	if err := json.Unmarshal(data, &channels); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(channels))
	out := make([]domain.FollowedChannel, 0, len(channels))
	for _, ch := range channels {
		if ch.Name == "" || seen[ch.Name] {
			continue
		}
		seen[ch.Name] = true
		if !ch.NotificationLevel.Valid() {
			ch.NotificationLevel = defaultNotificationLvl
		}
		out = append(out, ch)
	}
	return out, nil
}

// decodeHistory keeps the first occurrence of each id, capped at MaxHistoryItems
func decodeHistory(data []byte) ([]string, error) {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, err
	}
	return uniqueCapped(ids, MaxHistoryItems, func(s string) string { return s }), nil
}

func decodeRecentSearches(data []byte) ([]string, error) {
	var queries []string
	if err := json.Unmarshal(data, &queries); err != nil {
		return nil, err
	}
	trimmed := make([]string, 0, len(queries))
	for _, q := range queries {
		if q = strings.TrimSpace(q); q != "" {
			trimmed = append(trimmed, q)
		}
	}
	return uniqueCapped(trimmed, MaxRecentSearches, strings.ToLower), nil
}

func uniqueCapped(items []string, limit int, key func(string) string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		k := key(it)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, it)
		if len(out) == limit {
			break
		}
	}
	return out
}

// pushFront moves item to the front of list, removing earlier entries with the
// same key, and truncates the result to limit.
func pushFront(list []string, item string, limit int, key func(string) string) []string {
	out := make([]string, 0, len(list)+1)
	out = append(out, item)
	k := key(item)
	for _, it := range list {
		if key(it) != k {
			out = append(out, it)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func decodeError(key string, err error) error {
	return fmt.Errorf("corrupt %s payload: %w", key, err)
}
