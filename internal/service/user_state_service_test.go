package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"lines-be/internal/domain"
	"lines-be/internal/repository"
	"lines-be/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserState(t *testing.T, repo repository.StateRepository, withSeed bool) *UserStateService {
	t.Helper()
	s := NewUserStateService(seededCatalog(), repo, logger.NewNop(), withSeed)
	s.Load(context.Background())
	return s
}

func storedJSON(t *testing.T, repo repository.StateRepository, key string) string {
	t.Helper()
	data, ok, err := repo.Get(context.Background(), key)
	require.NoError(t, err)
	require.True(t, ok, "key %s not persisted", key)
	return string(data)
}

func TestUserState_SeedDefaults(t *testing.T) {
	s := newUserState(t, repository.NewMemoryStateRepository(), true)

	assert.Equal(t, []string{"1", "4", "8"}, s.Liked().Slice())
	assert.Equal(t, 0, s.Disliked().Len())

	playlists := s.Playlists()
	require.Len(t, playlists, 2)
	assert.Equal(t, "Watch Later", playlists[0].Name)
	assert.Equal(t, 1, playlists[0].VideoCount)
	assert.Equal(t, "https://picsum.photos/seed/react/640/360", playlists[0].ThumbnailURL)
	assert.Equal(t, "Favorites", playlists[1].Name)
	assert.Equal(t, 0, playlists[1].VideoCount)
	assert.Equal(t, "https://picsum.photos/seed/pl-favs/400/225", playlists[1].ThumbnailURL)

	followed := s.Followed()
	require.Len(t, followed, 4)
	for _, ch := range followed {
		assert.Equal(t, domain.NotificationAll, ch.NotificationLevel)
	}
	assert.Equal(t, "DesignScapes", followed[3].Name)

	assert.Equal(t, []string{"8", "1", "4", "5"}, ids(s.History()))
	assert.Empty(t, s.RecentSearches())
}

func TestUserState_EmptyDefaultsWithoutSeed(t *testing.T) {
	s := newUserState(t, repository.NewMemoryStateRepository(), false)

	assert.Equal(t, 0, s.Liked().Len())
	assert.Empty(t, s.Playlists())
	assert.Empty(t, s.Followed())
	assert.Empty(t, s.History())
}

func TestUserState_ToggleLikeClearsDislike(t *testing.T) {
	s := newUserState(t, repository.NewMemoryStateRepository(), false)
	ctx := context.Background()

	for _, id := range []string{"1", "2", "x", "1", "2"} {
		s.ToggleDislike(ctx, id)
		liked, disliked := s.ToggleLike(ctx, id)
		if liked.Has(id) {
			assert.False(t, disliked.Has(id))
			assert.False(t, s.Disliked().Has(id))
		}
	}
}

func TestUserState_ToggleLikeTwiceUnlikes(t *testing.T) {
	s := newUserState(t, repository.NewMemoryStateRepository(), false)
	ctx := context.Background()

	liked, _ := s.ToggleLike(ctx, "7")
	assert.True(t, liked.Has("7"))
	liked, _ = s.ToggleLike(ctx, "7")
	assert.False(t, liked.Has("7"))
}

func TestUserState_ToggleDislikeMovesFromLiked(t *testing.T) {
	repo := repository.NewMemoryStateRepository()
	require.NoError(t, repo.Set(context.Background(), repository.KeyLikedVideos, []byte(`["1","2"]`)))
	require.NoError(t, repo.Set(context.Background(), repository.KeyDislikedVideos, []byte(`[]`)))
	s := newUserState(t, repo, true)

	liked, disliked := s.ToggleDislike(context.Background(), "1")

	assert.Equal(t, []string{"2"}, liked.Slice())
	assert.Equal(t, []string{"1"}, disliked.Slice())
	assert.JSONEq(t, `["2"]`, storedJSON(t, repo, repository.KeyLikedVideos))
	assert.JSONEq(t, `["1"]`, storedJSON(t, repo, repository.KeyDislikedVideos))
}

func TestUserState_LoadResolvesOverlap(t *testing.T) {
	repo := repository.NewMemoryStateRepository()
	require.NoError(t, repo.Set(context.Background(), repository.KeyLikedVideos, []byte(`["1","2"]`)))
	require.NoError(t, repo.Set(context.Background(), repository.KeyDislikedVideos, []byte(`["2","3"]`)))
	s := newUserState(t, repo, false)

	assert.Equal(t, []string{"3"}, s.Disliked().Slice())
}

func TestUserState_LikedVideos(t *testing.T) {
	s := newUserState(t, repository.NewMemoryStateRepository(), true)
	s.ToggleLike(context.Background(), "ghost")
	s.ToggleLike(context.Background(), "3")

	assert.Equal(t, []string{"3", "8", "4", "1"}, ids(s.LikedVideos()))
}

func TestUserState_PlaylistCountInvariant(t *testing.T) {
	s := newUserState(t, repository.NewMemoryStateRepository(), true)
	ctx := context.Background()

	ops := []struct{ playlist, video string }{
		{"pl-1", "3"}, {"pl-1", "2"}, {"pl-2", "1"}, {"pl-1", "3"}, {"pl-2", "1"},
		{"pl-2", "9"}, {"pl-1", "2"}, {"pl-1", "2"}, {"pl-2", "10"},
	}
	for _, op := range ops {
		p, _, found := s.ToggleVideoInPlaylist(ctx, op.playlist, op.video)
		require.True(t, found)
		assert.Equal(t, p.VideoIDs.Len(), p.VideoCount)

		for _, pl := range s.Playlists() {
			assert.Equal(t, pl.VideoIDs.Len(), pl.VideoCount)
		}
	}
}

func TestUserState_ToggleVideoInPlaylist(t *testing.T) {
	repo := repository.NewMemoryStateRepository()
	s := newUserState(t, repo, true)
	ctx := context.Background()

	p, member, found := s.ToggleVideoInPlaylist(ctx, "pl-2", "5")
	require.True(t, found)
	assert.True(t, member)
	assert.Equal(t, 1, p.VideoCount)
	assert.Equal(t, "https://picsum.photos/seed/steak/640/360", p.ThumbnailURL)

	p, member, _ = s.ToggleVideoInPlaylist(ctx, "pl-2", "5")
	assert.False(t, member)
	assert.Equal(t, 0, p.VideoCount)
	assert.Equal(t, "https://picsum.photos/seed/pl-favs/400/225", p.ThumbnailURL)

	before := storedJSON(t, repo, repository.KeyPlaylists)
	_, _, found = s.ToggleVideoInPlaylist(ctx, "pl-unknown", "5")
	assert.False(t, found)
	assert.Equal(t, before, storedJSON(t, repo, repository.KeyPlaylists))
}

func TestUserState_PlaylistThumbnailUsesNewestResolvableMember(t *testing.T) {
	s := newUserState(t, repository.NewMemoryStateRepository(), false)
	ctx := context.Background()

	p := s.CreatePlaylist(ctx, "Mix", "1")
	s.ToggleVideoInPlaylist(ctx, p.ID, "4")
	p, _, _ = s.ToggleVideoInPlaylist(ctx, p.ID, "gone")

	assert.Equal(t, 3, p.VideoCount)
	assert.Equal(t, "https://picsum.photos/seed/cyberpunk/640/360", p.ThumbnailURL)
}

func TestUserState_CreatePlaylist(t *testing.T) {
	repo := repository.NewMemoryStateRepository()
	s := newUserState(t, repo, true)
	ctx := context.Background()

	empty := s.CreatePlaylist(ctx, "Later", "")
	assert.True(t, strings.HasPrefix(empty.ID, "pl-"))
	assert.Equal(t, 0, empty.VideoCount)
	assert.Equal(t, "https://picsum.photos/seed/newpl/400/225", empty.ThumbnailURL)

	seeded := s.CreatePlaylist(ctx, "Cooking", "9")
	assert.Equal(t, 1, seeded.VideoCount)
	assert.True(t, seeded.VideoIDs.Has("9"))
	assert.NotEqual(t, empty.ID, seeded.ID)

	all := s.Playlists()
	require.Len(t, all, 4)
	assert.Equal(t, "Cooking", all[3].Name)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(storedJSON(t, repo, repository.KeyPlaylists)), &records))
	require.Len(t, records, 4)
	assert.Equal(t, []interface{}{"9"}, records[3]["videoIds"])
	assert.Equal(t, float64(1), records[3]["videoCount"])
}

func TestUserState_PlaylistsRoundTrip(t *testing.T) {
	repo := repository.NewMemoryStateRepository()
	ctx := context.Background()

	first := newUserState(t, repo, true)
	created := first.CreatePlaylist(ctx, "Roundtrip", "3")
	first.ToggleVideoInPlaylist(ctx, created.ID, "7")
	first.ToggleVideoInPlaylist(ctx, created.ID, "missing-id")
	first.ToggleVideoInPlaylist(ctx, "pl-1", "2")
	want := first.Playlists()

	second := newUserState(t, repo, true)
	got := second.Playlists()

	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Name, got[i].Name)
		assert.ElementsMatch(t, want[i].VideoIDs.Slice(), got[i].VideoIDs.Slice())
		assert.Equal(t, got[i].VideoIDs.Len(), got[i].VideoCount)
	}
}

func TestUserState_HistoryInvariants(t *testing.T) {
	repo := repository.NewMemoryStateRepository()
	s := newUserState(t, repo, false)
	ctx := context.Background()

	var last string
	for i := 0; i < 250; i++ {
		last = fmt.Sprintf("v%d", (i*7)%130)
		s.AddToHistory(ctx, last)
	}
	history := s.AddToHistory(ctx, "v3")

	assert.LessOrEqual(t, len(history), MaxHistoryItems)
	assert.Equal(t, "v3", history[0])
	assert.Equal(t, last, history[1])

	seen := make(map[string]bool)
	for _, id := range history {
		assert.False(t, seen[id], "duplicate %s", id)
		seen[id] = true
	}

	var persisted []string
	require.NoError(t, json.Unmarshal([]byte(storedJSON(t, repo, repository.KeyWatchHistory)), &persisted))
	assert.Equal(t, history, persisted)
}

func TestUserState_HistoryMovesRewatchToFront(t *testing.T) {
	s := newUserState(t, repository.NewMemoryStateRepository(), true)

	history := s.AddToHistory(context.Background(), "4")
	assert.Equal(t, []string{"4", "8", "1", "5"}, history)

	s.AddToHistory(context.Background(), "ghost")
	assert.Equal(t, []string{"4", "8", "1", "5"}, ids(s.History()))
}

func TestUserState_HistoryDropsOldest(t *testing.T) {
	s := newUserState(t, repository.NewMemoryStateRepository(), false)
	ctx := context.Background()

	for i := 0; i < MaxHistoryItems+1; i++ {
		s.AddToHistory(ctx, fmt.Sprintf("v%d", i))
	}
	history := s.AddToHistory(ctx, "v100")

	assert.Len(t, history, MaxHistoryItems)
	assert.Equal(t, "v100", history[0])
	assert.NotContains(t, history, "v0")
}

func TestUserState_ToggleSubscriptionIdempotence(t *testing.T) {
	s := newUserState(t, repository.NewMemoryStateRepository(), true)
	ctx := context.Background()

	names := func(chs []domain.FollowedChannel) []string {
		out := make([]string, len(chs))
		for i, ch := range chs {
			out[i] = ch.Name
		}
		return out
	}
	original := names(s.Followed())

	for _, name := range []string{"CodeMasters", "ZenLife"} {
		_, first := s.ToggleSubscription(ctx, name)
		_, second := s.ToggleSubscription(ctx, name)
		assert.NotEqual(t, first, second)
		assert.ElementsMatch(t, original, names(s.Followed()))
	}
}

func TestUserState_ToggleSubscription(t *testing.T) {
	repo := repository.NewMemoryStateRepository()
	s := newUserState(t, repo, false)
	ctx := context.Background()

	followed, following := s.ToggleSubscription(ctx, "Gourmet Chef")
	require.True(t, following)
	require.Len(t, followed, 1)
	assert.Equal(t, domain.NotificationAll, followed[0].NotificationLevel)
	assert.True(t, followed[0].IsLive)

	followed, following = s.ToggleSubscription(ctx, "Nobody")
	assert.False(t, following)
	assert.Len(t, followed, 1)

	followed, following = s.ToggleSubscription(ctx, "Gourmet Chef")
	assert.False(t, following)
	assert.Empty(t, followed)
	assert.JSONEq(t, `[]`, storedJSON(t, repo, repository.KeyFollowedChannels))
}

func TestUserState_SetNotificationLevel(t *testing.T) {
	repo := repository.NewMemoryStateRepository()
	s := newUserState(t, repo, true)
	ctx := context.Background()

	ch, ok := s.SetNotificationLevel(ctx, "FutureVisions", domain.NotificationNone)
	require.True(t, ok)
	assert.Equal(t, domain.NotificationNone, ch.NotificationLevel)
	assert.Contains(t, storedJSON(t, repo, repository.KeyFollowedChannels), `"notificationLevel":"none"`)

	_, ok = s.SetNotificationLevel(ctx, "ZenLife", domain.NotificationNone)
	assert.False(t, ok, "not followed")

	_, ok = s.SetNotificationLevel(ctx, "FutureVisions", domain.NotificationLevel("loud"))
	assert.False(t, ok, "invalid level")
}

func TestUserState_RecentSearches(t *testing.T) {
	repo := repository.NewMemoryStateRepository()
	s := newUserState(t, repo, true)
	ctx := context.Background()

	for _, q := range []string{"go", "rust", "  ", "Zig", "react", "vue", "GO"} {
		s.AddRecentSearch(ctx, q)
	}
	got := s.RecentSearches()

	assert.Equal(t, []string{"GO", "vue", "react", "Zig", "rust"}, got)
	assert.JSONEq(t, `["GO","vue","react","Zig","rust"]`, storedJSON(t, repo, repository.KeyRecentSearches))

	s.ClearRecentSearches(ctx)
	assert.Empty(t, s.RecentSearches())

	_, ok, err := repo.Get(ctx, repository.KeyRecentSearches)
	require.NoError(t, err)
	assert.False(t, ok, "cleared searches should not stay in storage")

	reloaded := newUserState(t, repo, true)
	assert.Empty(t, reloaded.RecentSearches())
}

func TestUserState_CorruptPayloadFallsBack(t *testing.T) {
	repo := repository.NewMemoryStateRepository()
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, repository.KeyLikedVideos, []byte(`{not json`)))
	require.NoError(t, repo.Set(ctx, repository.KeyPlaylists, []byte(`"nope"`)))
	require.NoError(t, repo.Set(ctx, repository.KeyWatchHistory, []byte(`["9","9","2"]`)))

	s := newUserState(t, repo, true)

	assert.Equal(t, []string{"1", "4", "8"}, s.Liked().Slice())
	assert.Len(t, s.Playlists(), 2)
	assert.Equal(t, []string{"9", "2"}, ids(s.History()))
}

func TestUserState_FailingStorageIsSwallowed(t *testing.T) {
	repo := &failingRepository{}
	s := newUserState(t, repo, true)
	ctx := context.Background()

	// reads fell back to the seed
	assert.Equal(t, 3, s.Liked().Len())

	liked, _ := s.ToggleLike(ctx, "2")
	assert.True(t, liked.Has("2"))
	assert.True(t, s.Liked().Has("2"))

	p := s.CreatePlaylist(ctx, "Offline", "1")
	assert.Equal(t, 1, p.VideoCount)
	s.AddToHistory(ctx, "3")
	s.ToggleSubscription(ctx, "ZenLife")
	s.AddRecentSearch(ctx, "offline")
	s.ClearRecentSearches(ctx)

	assert.Equal(t, 6, repo.sets)
	assert.Equal(t, 1, repo.deletes)
	assert.Empty(t, s.RecentSearches())
	assert.Equal(t, "3", s.History()[0].ID)
}

func TestUserState_ReadsReturnCopies(t *testing.T) {
	s := newUserState(t, repository.NewMemoryStateRepository(), true)

	liked := s.Liked()
	liked.Add("mutated")
	assert.False(t, s.Liked().Has("mutated"))

	playlists := s.Playlists()
	playlists[0].VideoIDs.Add("mutated")
	assert.False(t, s.Playlists()[0].VideoIDs.Has("mutated"))

	followed := s.Followed()
	followed[0].Name = "mutated"
	assert.NotEqual(t, "mutated", s.Followed()[0].Name)
}
