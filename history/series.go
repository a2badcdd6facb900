package history

import "sync"

// Kind tags which time-series a key refers to.
type Kind int

const (
	KindIORead Kind = iota
	KindIOWrite
	KindFSUsed
)

// SeriesKind is a lookup key for the store. FSUsed keys carry the device
// name; the aggregate IO keys leave it empty.
type SeriesKind struct {
	Kind Kind
	Name string
}

// IORead keys the aggregate read-throughput series.
func IORead() SeriesKind { return SeriesKind{Kind: KindIORead} }

// IOWrite keys the aggregate write-throughput series.
func IOWrite() SeriesKind { return SeriesKind{Kind: KindIOWrite} }

// FSUsed keys the used-space series of one device.
func FSUsed(name string) SeriesKind { return SeriesKind{Kind: KindFSUsed, Name: name} }

// View describes the requested display window: Width columns, each covering
// Zoom samples. Renderers pass it through unchanged; only Lookup reads it.
type View struct {
	Width int
	Zoom  int
}

// series is a fixed-capacity ring of samples.
type series struct {
	buf  []uint64
	head int
	size int
}

func (s *series) push(v uint64) {
	s.buf[s.head] = v
	s.head = (s.head + 1) % len(s.buf)
	if s.size < len(s.buf) {
		s.size++
	}
}

// last returns a copy of the most recent n samples, oldest first.
func (s *series) last(n int) []uint64 {
	if n > s.size {
		n = s.size
	}
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		idx := (s.head - n + i + len(s.buf)) % len(s.buf)
		out[i] = s.buf[idx]
	}
	return out
}

// Store keeps one bounded sample ring per series kind. Pushes happen on the
// collection tick, lookups on the render tick, hence the lock.
type Store struct {
	mu     sync.RWMutex
	cap    int
	series map[SeriesKind]*series
}

// NewStore creates a store retaining up to capacity samples per series.
func NewStore(capacity int) *Store {
	if capacity < 1 {
		capacity = 1
	}
	return &Store{cap: capacity, series: make(map[SeriesKind]*series)}
}

// Push appends a sample to the series for k, creating it on first use.
func (h *Store) Push(k SeriesKind, v uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.series[k]
	if !ok {
		s = &series{buf: make([]uint64, h.cap)}
		h.series[k] = s
	}
	s.push(v)
}

// PruneFSUsed drops used-space series for devices absent from keep, so a
// detached filesystem does not hold its samples forever. IO series are
// never pruned.
func (h *Store) PruneFSUsed(keep map[string]bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for k := range h.series {
		if k.Kind == KindFSUsed && !keep[k.Name] {
			delete(h.series, k)
		}
	}
}

// Lookup returns the window of samples for k described by view, oldest
// first, or (nil, false) when the series is not tracked. The window covers
// the last Width*Zoom samples; each returned value averages Zoom samples,
// so at most Width values come back.
func (h *Store) Lookup(k SeriesKind, view View) ([]uint64, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	s, ok := h.series[k]
	if !ok {
		return nil, false
	}

	width := view.Width
	if width < 1 {
		width = 1
	}
	zoom := view.Zoom
	if zoom < 1 {
		zoom = 1
	}

	raw := s.last(width * zoom)
	if zoom == 1 {
		return raw, true
	}

	// Average buckets of zoom samples into one column each. A short
	// leading bucket keeps the oldest samples visible.
	out := make([]uint64, 0, width)
	for end := len(raw); end > 0; end -= zoom {
		start := end - zoom
		if start < 0 {
			start = 0
		}
		var sum uint64
		for _, v := range raw[start:end] {
			sum += v
		}
		out = append(out, sum/uint64(end-start))
	}
	// Buckets were built newest-first; reverse into display order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, true
}
