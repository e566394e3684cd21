package service

import (
	"context"
	"time"
)

// Default artificial delays of the simulated network calls
const (
	DefaultQueryLatency   = 500 * time.Millisecond
	DefaultLookupLatency  = 300 * time.Millisecond
	DefaultSuggestLatency = 200 * time.Millisecond

	DefaultPageSize      = 8
	DefaultViewerCountry = "us"
)

// EngineConfig holds the tunables shared by the read engines
type EngineConfig struct {
	QueryLatency    time.Duration
	LookupLatency   time.Duration
	SuggestLatency  time.Duration
	ViewerCountry   string
	DefaultPageSize int
	Clock           func() time.Time
}

// DefaultEngineConfig returns the stock latencies and viewer locale
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		QueryLatency:    DefaultQueryLatency,
		LookupLatency:   DefaultLookupLatency,
		SuggestLatency:  DefaultSuggestLatency,
		ViewerCountry:   DefaultViewerCountry,
		DefaultPageSize: DefaultPageSize,
		Clock:           time.Now,
	}
}

func (c EngineConfig) now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock()
}

func (c EngineConfig) pageSize() int {
	if c.DefaultPageSize <= 0 {
		return DefaultPageSize
	}
	return c.DefaultPageSize
}

// simulateLatency blocks for d or until ctx is done
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
