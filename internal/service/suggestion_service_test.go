package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"lines-be/internal/catalog"
	"lines-be/internal/domain"
	"lines-be/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSuggestionService(cat *catalog.Catalog) SuggestionService {
	return NewSuggestionService(cat, testEngineConfig(), logger.NewNop())
}

func suggestionTypes(s []domain.Suggestion) []domain.SuggestionType {
	out := make([]domain.SuggestionType, len(s))
	for i, sg := range s {
		out[i] = sg.Type
	}
	return out
}

func TestSuggest_ChannelThenVideosByViews(t *testing.T) {
	videos := []domain.Video{
		{ID: "r1", Title: "React basics", ViewCount: 10},
		{ID: "r2", Title: "React hooks", ViewCount: 50},
		{ID: "r3", Title: "React router", ViewCount: 30},
		{ID: "r4", Title: "React testing", ViewCount: 40},
		{ID: "r5", Title: "React native", ViewCount: 20},
	}
	channels := []domain.FollowedChannel{
		{Name: "React Masters", Handle: "@reactmasters"},
		{Name: "Gardening", Handle: "@garden"},
	}
	cat := catalog.New(videos, channels, catalog.WithCategories([]string{"All", "Technology"}))

	got, err := newSuggestionService(cat).Suggest(context.Background(), "re")
	require.NoError(t, err)

	require.Len(t, got, 6)
	assert.Equal(t, domain.QuerySuggestion("re"), got[0])
	require.NotNil(t, got[1].Channel)
	assert.Equal(t, "React Masters", got[1].Channel.Name)

	var videoIDs []string
	for _, s := range got[2:] {
		require.Equal(t, domain.SuggestionVideo, s.Type)
		videoIDs = append(videoIDs, s.Video.ID)
	}
	assert.Equal(t, []string{"r2", "r4", "r3", "r5"}, videoIDs)
}

func TestSuggest_BlankInput(t *testing.T) {
	svc := newSuggestionService(seededCatalog())

	for _, q := range []string{"", "   ", "\t"} {
		got, err := svc.Suggest(context.Background(), q)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestSuggest_EchoesRawQuery(t *testing.T) {
	svc := newSuggestionService(seededCatalog())

	got, err := svc.Suggest(context.Background(), "  Alps ")
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "  Alps ", got[0].Query)
}

func TestSuggest_TruncatesToEight(t *testing.T) {
	svc := newSuggestionService(seededCatalog())

	got, err := svc.Suggest(context.Background(), "e")
	require.NoError(t, err)

	require.Len(t, got, 8)
	assert.Equal(t, []domain.SuggestionType{
		domain.SuggestionQuery,
		domain.SuggestionChannel, domain.SuggestionChannel,
		domain.SuggestionKeyword, domain.SuggestionKeyword, domain.SuggestionKeyword,
		domain.SuggestionKeyword, domain.SuggestionKeyword,
	}, suggestionTypes(got))
	assert.Equal(t, "CodeMasters", got[1].Channel.Name)
	assert.Equal(t, "Nature Explorers", got[2].Channel.Name)
	assert.Equal(t, "Trending", got[3].Keyword)
	assert.Equal(t, "Technology", got[7].Keyword)
}

func TestSuggest_SkipsExactKeyword(t *testing.T) {
	svc := newSuggestionService(seededCatalog())

	got, err := svc.Suggest(context.Background(), "coding")
	require.NoError(t, err)

	for _, s := range got {
		assert.NotEqual(t, domain.SuggestionKeyword, s.Type)
	}
	require.Len(t, got, 5)
	assert.Equal(t, "10", got[1].Video.ID)
}

func TestSuggest_HonoursCancellation(t *testing.T) {
	cfg := testEngineConfig()
	cfg.SuggestLatency = 5 * time.Second
	svc := NewSuggestionService(seededCatalog(), cfg, logger.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.Suggest(ctx, "react")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRequestTracker(t *testing.T) {
	tr := NewRequestTracker()

	first := tr.Begin("session-a:suggest")
	assert.True(t, tr.IsLatest("session-a:suggest", first))

	second := tr.Begin("session-a:suggest")
	assert.Greater(t, second, first)
	assert.False(t, tr.IsLatest("session-a:suggest", first))
	assert.True(t, tr.IsLatest("session-a:suggest", second))

	// streams are independent
	other := tr.Begin("session-b:suggest")
	assert.True(t, tr.IsLatest("session-b:suggest", other))
	assert.True(t, tr.IsLatest("session-a:suggest", second))
}

func TestRequestTracker_ReleasesFinishedStreams(t *testing.T) {
	tr := NewRequestTracker()

	for i := 0; i < 1000; i++ {
		stream := fmt.Sprintf("session-%d:suggest", i)
		token := tr.Begin(stream)
		require.True(t, tr.IsLatest(stream, token))
		tr.End(stream, token)
	}
	assert.Zero(t, tr.Len())

	// a superseded request ending does not release the newer one
	old := tr.Begin("tab:videos")
	current := tr.Begin("tab:videos")
	tr.End("tab:videos", old)
	assert.Equal(t, 1, tr.Len())
	assert.True(t, tr.IsLatest("tab:videos", current))

	tr.End("tab:videos", current)
	assert.Zero(t, tr.Len())

	// reopening a released stream never revives an old token
	reopened := tr.Begin("tab:videos")
	assert.False(t, tr.IsLatest("tab:videos", old))
	assert.True(t, tr.IsLatest("tab:videos", reopened))
}
