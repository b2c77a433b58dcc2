package profilecache

import (
	"sync"
	"time"
)

// Metrics collects hit/miss/eviction counters shared across all typed
// stores. It backs the health predicate and the stats surface.
type Metrics struct {
	mu sync.RWMutex

	hits      int64
	misses    int64
	evictions int64

	startTime time.Time
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordHit records a cache hit.
func (m *Metrics) RecordHit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hits++
}

// RecordMiss records a cache miss.
func (m *Metrics) RecordMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.misses++
}

// RecordEviction records an LRU eviction.
func (m *Metrics) RecordEviction() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evictions++
}

// HitRate returns hits / (hits + misses), or 0 when there has been no
// traffic yet.
func (m *Metrics) HitRate() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hitRateLocked()
}

func (m *Metrics) hitRateLocked() float64 {
	total := m.hits + m.misses
	if total == 0 {
		return 0.0
	}
	return float64(m.hits) / float64(total)
}

// Snapshot returns a point-in-time view of the counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return MetricsSnapshot{
		Hits:      m.hits,
		Misses:    m.misses,
		Evictions: m.evictions,
		HitRate:   m.hitRateLocked(),
		Uptime:    time.Since(m.startTime),
	}
}

// Reset clears all counters and restarts the uptime clock.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hits = 0
	m.misses = 0
	m.evictions = 0
	m.startTime = time.Now()
}

// MetricsSnapshot provides a point-in-time view of cache metrics.
type MetricsSnapshot struct {
	Hits      int64         `json:"hits"`
	Misses    int64         `json:"misses"`
	Evictions int64         `json:"evictions"`
	HitRate   float64       `json:"hit_rate"`
	Uptime    time.Duration `json:"uptime"`
}
