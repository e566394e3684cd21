package service

import (
	"context"
	"sort"
	"strings"

	"lines-be/internal/catalog"
	"lines-be/internal/domain"
	"lines-be/pkg/logger"
)

const (
	maxSuggestions        = 8
	suggestionBuildCap    = 10
	maxChannelSuggestions = 2
	maxVideoSuggestions   = 4
)

type suggestionService struct {
	catalog *catalog.Catalog
	cfg     EngineConfig
	logger  *logger.Logger
}

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(cat *catalog.Catalog, cfg EngineConfig, log *logger.Logger) SuggestionService {
	return &suggestionService{
		catalog: cat,
		cfg:     cfg,
		logger:  log.Named("suggestions"),
	}
}

// Suggest builds the mixed suggestion list in precedence order:
// raw query, channels, category keywords, then most-viewed title matches.
func (s *suggestionService) Suggest(ctx context.Context, partial string) ([]domain.Suggestion, error) {
	if err := simulateLatency(ctx, s.cfg.SuggestLatency); err != nil {
		return nil, err
	}

	if strings.TrimSpace(partial) == "" {
		return []domain.Suggestion{}, nil
	}

	needle := strings.ToLower(partial)
	out := make([]domain.Suggestion, 0, suggestionBuildCap)
	out = append(out, domain.QuerySuggestion(partial))

	channels := 0
	for _, ch := range s.catalog.Channels() {
		if channels == maxChannelSuggestions {
			break
		}
		if strings.Contains(strings.ToLower(ch.Name), needle) {
			out = append(out, domain.ChannelSuggestion(ch))
			channels++
		}
	}

	for _, cat := range s.catalog.Categories() {
		lower := strings.ToLower(cat)
		if len(out) < suggestionBuildCap && strings.Contains(lower, needle) && lower != needle {
			out = append(out, domain.KeywordSuggestion(cat))
		}
	}

	var matches []domain.Video
	for _, v := range s.catalog.All() {
		if strings.Contains(strings.ToLower(v.Title), needle) {
			matches = append(matches, v)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].ViewCount > matches[j].ViewCount
	})
	if len(matches) > maxVideoSuggestions {
		matches = matches[:maxVideoSuggestions]
	}
	for _, v := range matches {
		if len(out) < suggestionBuildCap {
			out = append(out, domain.VideoSuggestion(v))
		}
	}

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}

	s.logger.WithFields(map[string]interface{}{
		"query_length": len(partial),
		"results":      len(out),
	}).Debug("Suggestions built")

	return out, nil
}
