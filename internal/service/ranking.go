package service

import (
	"sort"
	"strings"
	"time"

	"lines-be/internal/domain"
)

const (
	recencyWindow = 7 * 24 * time.Hour
	recencyBoost  = 1.5
	localityBoost = 2.0
)

// regionalScore is views × recency boost × locality boost
func regionalScore(v domain.Video, now time.Time, viewerCountry string) float64 {
	score := float64(v.ViewCount)
	if v.UploadDate.After(now.Add(-recencyWindow)) {
		score *= recencyBoost
	}
	if viewerCountry != "" && v.CountryCode == viewerCountry {
		score *= localityBoost
	}
	return score
}

// selectAndRank picks the base set for category and orders it.
// "All" keeps catalog order untouched; every other category is always sorted.
// The input slice must be a private copy since Regional ranks are written into it.
func selectAndRank(videos []domain.Video, category string, scope domain.Scope, now time.Time, viewerCountry string) []domain.Video {
	if category == "" || category == domain.CategoryAll {
		return videos
	}

	filtered := videos
	if category != domain.CategoryTrending {
		filtered = make([]domain.Video, 0, len(videos))
		for _, v := range videos {
			if v.Category == category {
				filtered = append(filtered, v)
			}
		}
	}

	if scope == domain.ScopeRegional {
		scores := make(map[string]float64, len(filtered))
		for _, v := range filtered {
			scores[v.ID] = regionalScore(v, now, viewerCountry)
		}
		sort.SliceStable(filtered, func(i, j int) bool {
			return scores[filtered[i].ID] > scores[filtered[j].ID]
		})
		for i := range filtered {
			filtered[i].Rank = i + 1
		}
		return filtered
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].ViewCount > filtered[j].ViewCount
	})
	return filtered
}

// matchText keeps videos whose title or description contains query, ignoring case
func matchText(videos []domain.Video, query string) []domain.Video {
	query = strings.TrimSpace(query)
	if query == "" {
		return videos
	}

	needle := strings.ToLower(query)
	out := make([]domain.Video, 0, len(videos))
	for _, v := range videos {
		if strings.Contains(strings.ToLower(v.Title), needle) ||
			strings.Contains(strings.ToLower(v.Description), needle) {
			out = append(out, v)
		}
	}
	return out
}

// paginate returns the 1-based page window and whether more items follow it
func paginate(videos []domain.Video, page, size int) ([]domain.Video, bool) {
	total := len(videos)
	if page-1 > total/size {
		return videos[total:], false
	}
	start := (page - 1) * size
	end := page * size

	if start > total {
		start = total
	}
	stop := end
	if stop > total {
		stop = total
	}
	return videos[start:stop], end < total
}
