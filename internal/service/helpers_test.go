package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"lines-be/internal/catalog"
	"lines-be/internal/domain"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func testEngineConfig() EngineConfig {
	return EngineConfig{
		ViewerCountry:   "us",
		DefaultPageSize: 8,
		Clock:           func() time.Time { return fixedNow },
	}
}

func seededCatalog() *catalog.Catalog {
	return catalog.NewSeeded(fixedNow, catalog.WithClock(func() time.Time { return fixedNow }))
}

func video(id string, views int64, country string, age time.Duration) domain.Video {
	return domain.Video{
		ID:          id,
		Title:       "Video " + id,
		ViewCount:   views,
		CountryCode: country,
		UploadDate:  fixedNow.Add(-age),
		Category:    "Gaming",
		Visibility:  domain.VisibilityPublic,
	}
}

func ids(videos []domain.Video) []string {
	out := make([]string, len(videos))
	for i, v := range videos {
		out[i] = v.ID
	}
	return out
}

var errStorageDown = errors.New("storage unavailable")

// failingRepository fails every call and counts writes and deletes
type failingRepository struct {
	mu      sync.Mutex
	sets    int
	deletes int
}

func (r *failingRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, errStorageDown
}

func (r *failingRepository) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	r.sets++
	r.mu.Unlock()
	return errStorageDown
}

func (r *failingRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	r.deletes++
	r.mu.Unlock()
	return errStorageDown
}
