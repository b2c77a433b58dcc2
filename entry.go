package profilecache

import "time"

// Entry represents a single entry in a typed store.
type Entry[T any] struct {
	// Key is the unique identifier for this cache entry.
	Key string
	// Data contains the cached value.
	Data T
	// CreatedAt is when this entry was created. Replacing an entry resets it.
	CreatedAt time.Time
	// AccessedAt is when this entry was last read.
	AccessedAt time.Time
	// TTL is the time-to-live for this entry.
	TTL time.Duration
	// AccessCount tracks how many times this entry has been read.
	AccessCount int64
}

// IsExpired returns true if the entry has expired based on its TTL.
// An expired entry is semantically absent even before it is removed.
func (e *Entry[T]) IsExpired() bool {
	return time.Since(e.CreatedAt) > e.TTL
}
