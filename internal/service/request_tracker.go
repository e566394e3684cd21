package service

import "sync"

// RequestTracker hands out monotonically increasing tokens per stream so a
// caller can tell whether a finished request has been superseded. A stream is
// forgotten once its newest request ends, so only in-flight streams are held.
type RequestTracker struct {
	mu     sync.Mutex
	latest map[string]uint64
	seq    uint64
}

// NewRequestTracker creates an empty tracker
func NewRequestTracker() *RequestTracker {
	return &RequestTracker{latest: make(map[string]uint64)}
}

// Begin opens a new request on stream and returns its token
func (t *RequestTracker) Begin(stream string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	// tokens come from one global sequence so a stream that was released and
	// reopened never reissues a token an older request still holds
	t.seq++
	t.latest[stream] = t.seq
	return t.seq
}

// IsLatest reports whether token is still the newest request on stream
func (t *RequestTracker) IsLatest(stream string, token uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.latest[stream] == token
}

// End releases stream when token is its newest request. Ending a superseded
// request leaves the stream to the newer one.
func (t *RequestTracker) End(stream string, token uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.latest[stream] == token {
		delete(t.latest, stream)
	}
}

// Len returns the number of streams with a request in flight
func (t *RequestTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.latest)
}
