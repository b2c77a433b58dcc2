package profilecache

// Registry owns one typed store per entity kind, each with its own default
// TTL. All reads and writes of cached data go through its accessors; only
// the invalidation and optimistic-update paths touch stores directly.
type Registry struct {
	avatars    *Store[Avatar]
	active     *Store[Avatar]
	profiles   *Store[ProfileAggregate]
	engagement *Store[EngagementStats]
	ownerLists *Store[[]Avatar]
	blocked    *Store[IDSet]
	muted      *Store[IDSet]

	metrics *Metrics
}

// NewRegistry creates the typed stores from the given configuration. The
// configuration must already be validated.
func NewRegistry(cfg Config, metrics *Metrics) *Registry {
	return &Registry{
		avatars:    NewStore[Avatar](cfg.Capacity, cfg.AvatarTTL, metrics),
		active:     NewStore[Avatar](cfg.Capacity, cfg.AvatarTTL, metrics),
		profiles:   NewStore[ProfileAggregate](cfg.Capacity, cfg.ProfileTTL, metrics),
		engagement: NewStore[EngagementStats](cfg.Capacity, cfg.StatsTTL, metrics),
		ownerLists: NewStore[[]Avatar](cfg.Capacity, cfg.OwnerListTTL, metrics),
		blocked:    NewStore[IDSet](cfg.Capacity, cfg.MembershipTTL, metrics),
		muted:      NewStore[IDSet](cfg.Capacity, cfg.MembershipTTL, metrics),
		metrics:    metrics,
	}
}

// GetAvatar retrieves a cached avatar by id.
func (r *Registry) GetAvatar(avatarID string) (Avatar, bool) {
	return r.avatars.Get(avatarID)
}

// CacheAvatar stores an avatar keyed by its id.
func (r *Registry) CacheAvatar(avatar Avatar) {
	r.avatars.Put(avatar.ID, avatar)
}

// GetProfile retrieves a cached profile aggregate by avatar id.
func (r *Registry) GetProfile(avatarID string) (ProfileAggregate, bool) {
	return r.profiles.Get(avatarID)
}

// CacheProfile stores a profile aggregate keyed by its avatar id.
func (r *Registry) CacheProfile(profile ProfileAggregate) {
	r.profiles.Put(profile.Avatar.ID, profile)
}

// GetEngagement retrieves cached engagement statistics by avatar id.
func (r *Registry) GetEngagement(avatarID string) (EngagementStats, bool) {
	return r.engagement.Get(avatarID)
}

// CacheEngagement stores engagement statistics keyed by their avatar id.
func (r *Registry) CacheEngagement(stats EngagementStats) {
	r.engagement.Put(stats.AvatarID, stats)
}

// GetOwnerAvatars retrieves the cached avatar list for a user. The returned
// slice is the caller's to keep; mutating it does not affect the cache.
func (r *Registry) GetOwnerAvatars(userID string) ([]Avatar, bool) {
	avatars, ok := r.ownerLists.Get(userID)
	if !ok {
		return nil, false
	}
	return cloneAvatars(avatars), true
}

// CacheOwnerAvatars stores a user's avatar list. The list is copied on
// insertion so later mutation of the caller's slice cannot corrupt the
// cache.
func (r *Registry) CacheOwnerAvatars(userID string, avatars []Avatar) {
	r.ownerLists.Put(userID, cloneAvatars(avatars))
}

// BlockedSet retrieves the cached blocked-avatar set for a user as an
// independent copy.
func (r *Registry) BlockedSet(userID string) (IDSet, bool) {
	set, ok := r.blocked.Get(userID)
	if !ok {
		return nil, false
	}
	return set.Clone(), true
}

// CacheBlockedSet stores a user's blocked-avatar set as a copy.
func (r *Registry) CacheBlockedSet(userID string, set IDSet) {
	r.blocked.Put(userID, set.Clone())
}

// MutedSet retrieves the cached muted-avatar set for a user as an
// independent copy.
func (r *Registry) MutedSet(userID string) (IDSet, bool) {
	set, ok := r.muted.Get(userID)
	if !ok {
		return nil, false
	}
	return set.Clone(), true
}

// CacheMutedSet stores a user's muted-avatar set as a copy.
func (r *Registry) CacheMutedSet(userID string, set IDSet) {
	r.muted.Put(userID, set.Clone())
}

// ClearAll removes every entry from every store. Counters are not reset.
func (r *Registry) ClearAll() {
	r.avatars.Clear()
	r.active.Clear()
	r.profiles.Clear()
	r.engagement.Clear()
	r.ownerLists.Clear()
	r.blocked.Clear()
	r.muted.Clear()
}

// totalEntries returns the number of entries across all stores.
func (r *Registry) totalEntries() int {
	return r.avatars.Len() +
		r.active.Len() +
		r.profiles.Len() +
		r.engagement.Len() +
		r.ownerLists.Len() +
		r.blocked.Len() +
		r.muted.Len()
}

// sweepExpired removes expired entries from every store and returns the
// total removed.
func (r *Registry) sweepExpired() int {
	return r.avatars.SweepExpired() +
		r.active.SweepExpired() +
		r.profiles.SweepExpired() +
		r.engagement.SweepExpired() +
		r.ownerLists.SweepExpired() +
		r.blocked.SweepExpired() +
		r.muted.SweepExpired()
}

func cloneAvatars(avatars []Avatar) []Avatar {
	if avatars == nil {
		return nil
	}
	out := make([]Avatar, len(avatars))
	copy(out, avatars)
	return out
}
