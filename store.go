package profilecache

import (
	"container/list"
	"sync"
	"time"
)

// Store is a capacity-bounded keyed container for TTL-bound entries of one
// entity kind. A map gives O(1) key lookup and a doubly-linked list maintains
// recency order: front is most recently used, back is least recently used.
//
// Store has no knowledge of entity semantics. Defensive copying of list and
// set values is the Registry's responsibility.
//
// Store is safe for concurrent use by multiple goroutines.
type Store[T any] struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	entries  map[string]*list.Element
	order    *list.List
	metrics  *Metrics
}

// NewStore creates a store for one entity kind with the given capacity and
// default TTL. Hits, misses and evictions are recorded on metrics.
func NewStore[T any](capacity int, ttl time.Duration, metrics *Metrics) *Store[T] {
	return &Store[T]{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
		metrics:  metrics,
	}
}

// Get retrieves the value for key. An expired entry is removed and reported
// as a miss. A hit refreshes the entry's access metadata and recency.
func (s *Store[T]) Get(key string) (T, bool) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.entries[key]
	if !ok {
		s.metrics.RecordMiss()
		return zero, false
	}

	e := el.Value.(*Entry[T])
	if e.IsExpired() {
		s.removeLocked(key)
		s.metrics.RecordMiss()
		return zero, false
	}

	e.AccessedAt = time.Now()
	e.AccessCount++
	s.order.MoveToFront(el)
	s.metrics.RecordHit()
	return e.Data, true
}

// Put stores value under key with the store's default TTL.
func (s *Store[T]) Put(key string, value T) {
	s.PutTTL(key, value, s.ttl)
}

// PutTTL stores value under key with an explicit TTL. An existing entry is
// replaced wholesale: CreatedAt, AccessedAt and the access count all reset.
// If the store is at capacity, the single least-recently-used entry is
// evicted before the new entry is inserted.
func (s *Store[T]) PutTTL(key string, value T, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	e := &Entry[T]{
		Key:        key,
		Data:       value,
		CreatedAt:  now,
		AccessedAt: now,
		TTL:        ttl,
	}

	if el, ok := s.entries[key]; ok {
		el.Value = e
		s.order.MoveToFront(el)
		return
	}

	if len(s.entries) >= s.capacity {
		s.evictOldestLocked()
	}

	s.entries[key] = s.order.PushFront(e)
}

// Remove deletes the entry for key if present. Removing an absent key is a
// no-op.
func (s *Store[T]) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(key)
}

// SweepExpired removes every expired entry and returns how many were
// removed. It does not touch access metadata or the hit/miss counters; it is
// meant for scheduled maintenance, not the read path.
func (s *Store[T]) SweepExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, el := range s.entries {
		if el.Value.(*Entry[T]).IsExpired() {
			delete(s.entries, key)
			s.order.Remove(el)
			removed++
		}
	}
	return removed
}

// Scan visits every live (non-expired) entry's key and value without
// refreshing access metadata or counting hits. Used by the invalidation
// cascade to cross-reference cached values; the store is bounded, so a full
// scan is acceptable.
func (s *Store[T]) Scan(visit func(key string, value T)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, el := range s.entries {
		e := el.Value.(*Entry[T])
		if e.IsExpired() {
			continue
		}
		visit(key, e.Data)
	}
}

// Len returns the number of currently stored entries, including entries that
// have expired but have not been swept yet.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Clear removes all entries.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*list.Element)
	s.order.Init()
}

// peek returns the value and TTL for key without refreshing access
// metadata, counting a hit or miss, or removing an expired entry. The
// optimistic executor uses it to snapshot the previous value before
// overwriting.
func (s *Store[T]) peek(key string) (T, time.Duration, bool) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.entries[key]
	if !ok {
		return zero, 0, false
	}
	e := el.Value.(*Entry[T])
	if e.IsExpired() {
		return zero, 0, false
	}
	return e.Data, e.TTL, true
}

func (s *Store[T]) removeLocked(key string) {
	el, ok := s.entries[key]
	if !ok {
		return
	}
	delete(s.entries, key)
	s.order.Remove(el)
}

// evictOldestLocked evicts exactly one entry: the one with the oldest
// AccessedAt. The list back is that entry, because recency updates and list
// moves happen together under the lock.
func (s *Store[T]) evictOldestLocked() {
	el := s.order.Back()
	if el == nil {
		return
	}
	e := el.Value.(*Entry[T])
	delete(s.entries, e.Key)
	s.order.Remove(el)
	s.metrics.RecordEviction()
}
