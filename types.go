package profilecache

import (
	"time"

	platformerrors "github.com/jmgilman/go/errors"
)

// Avatar is a single avatar entity owned by a user.
type Avatar struct {
	// ID is the unique identifier of the avatar.
	ID string
	// OwnerID is the user that owns this avatar.
	OwnerID string
	// Name is the display name of the avatar.
	Name string
	// Bio is the avatar's profile text.
	Bio string
	// ImageURL points at the avatar image.
	ImageURL string
	// CreatedAt is when the avatar was created in the remote store.
	CreatedAt time.Time
}

// ProfileAggregate is the assembled profile view for an avatar: the entity
// itself plus the derived data a profile screen renders.
type ProfileAggregate struct {
	Avatar Avatar
	Stats  EngagementStats
	// IsFollowing reports whether the current user follows this avatar.
	IsFollowing bool
}

// EngagementStats holds the engagement counters for an avatar.
type EngagementStats struct {
	AvatarID  string
	Followers int64
	Posts     int64
	Likes     int64
}

// Post is a content item owned by an avatar, as seen by feed filtering.
type Post struct {
	ID       string
	AvatarID string
	Caption  string
}

// IDSet is a set of string identifiers.
type IDSet map[string]struct{}

// Contains reports whether id is in the set. A nil set contains nothing.
func (s IDSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Clone returns an independent copy of the set.
func (s IDSet) Clone() IDSet {
	if s == nil {
		return nil
	}
	out := make(IDSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Config holds configuration for cache behavior.
type Config struct {
	// Capacity is the maximum number of entries held by each typed store.
	Capacity int
	// AvatarTTL is the time-to-live for cached avatar entities.
	AvatarTTL time.Duration
	// ProfileTTL is the time-to-live for cached profile aggregates.
	ProfileTTL time.Duration
	// StatsTTL is the time-to-live for cached engagement statistics.
	StatsTTL time.Duration
	// OwnerListTTL is the time-to-live for cached owner avatar lists.
	OwnerListTTL time.Duration
	// MembershipTTL is the time-to-live for blocked/muted membership sets.
	MembershipTTL time.Duration
	// MaintenanceInterval controls the optional background sweep of expired
	// entries. Zero or negative disables the background sweep; expired
	// entries are still removed lazily on read and by PerformMaintenance.
	MaintenanceInterval time.Duration
}

// DefaultConfig returns the default cache configuration.
func DefaultConfig() Config {
	return Config{
		Capacity:      256,
		AvatarTTL:     15 * time.Minute,
		ProfileTTL:    10 * time.Minute,
		StatsTTL:      5 * time.Minute,
		OwnerListTTL:  15 * time.Minute,
		MembershipTTL: 5 * time.Minute,
	}
}

// Validate checks that the cache configuration is valid.
func (c *Config) Validate() error {
	if c.Capacity <= 0 {
		return platformerrors.New(platformerrors.CodeInvalidConfig,
			"capacity must be greater than 0")
	}
	for _, ttl := range []time.Duration{
		c.AvatarTTL, c.ProfileTTL, c.StatsTTL, c.OwnerListTTL, c.MembershipTTL,
	} {
		if ttl <= 0 {
			return platformerrors.New(platformerrors.CodeInvalidConfig,
				"entry TTLs must be greater than 0")
		}
	}
	return nil
}

// SetDefaults applies default values to unset fields in the configuration.
func (c *Config) SetDefaults() {
	def := DefaultConfig()
	if c.Capacity == 0 {
		c.Capacity = def.Capacity
	}
	if c.AvatarTTL == 0 {
		c.AvatarTTL = def.AvatarTTL
	}
	if c.ProfileTTL == 0 {
		c.ProfileTTL = def.ProfileTTL
	}
	if c.StatsTTL == 0 {
		c.StatsTTL = def.StatsTTL
	}
	if c.OwnerListTTL == 0 {
		c.OwnerListTTL = def.OwnerListTTL
	}
	if c.MembershipTTL == 0 {
		c.MembershipTTL = def.MembershipTTL
	}
}
