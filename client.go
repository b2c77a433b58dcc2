package profilecache

import (
	"context"
	"sync"
	"time"

	platformerrors "github.com/jmgilman/go/errors"
)

// Client is the caching layer's entry point. It owns the typed store
// registry and coordinates reads, invalidation, optimistic updates, content
// filtering and maintenance against a remote store.
//
// Construct a Client explicitly and pass it to the components that need it;
// there is no package-level instance.
type Client struct {
	cfg      Config
	registry *Registry
	remote   RemoteStore
	metrics  *Metrics
	logger   *Logger
	keywords []string

	mu     sync.Mutex
	done   chan struct{}
	wg     sync.WaitGroup
	closed bool
}

// New creates a Client with the given configuration and remote store.
// Unset configuration fields receive defaults before validation.
func New(cfg Config, remote RemoteStore, opts ...Option) (*Client, error) {
	if remote == nil {
		return nil, platformerrors.New(platformerrors.CodeInvalidInput,
			"remote store must not be nil")
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, platformerrors.Wrap(err, platformerrors.CodeInvalidConfig,
			"invalid cache config")
	}

	options := clientOptions{logger: NewNopLogger()}
	for _, opt := range opts {
		opt(&options)
	}

	metrics := NewMetrics()
	c := &Client{
		cfg:      cfg,
		registry: NewRegistry(cfg, metrics),
		remote:   remote,
		metrics:  metrics,
		logger:   options.logger,
		keywords: options.keywords,
		done:     make(chan struct{}),
	}

	if cfg.MaintenanceInterval > 0 {
		c.wg.Add(1)
		go c.maintenanceLoop(cfg.MaintenanceInterval)
	}

	return c, nil
}

// Registry exposes the typed store registry for read access by profile and
// feed components.
func (c *Client) Registry() *Registry {
	return c.registry
}

// GetOrFetchAvatar returns the cached avatar for avatarID, fetching from
// the remote store and populating the cache on a miss. A fetch failure
// propagates unchanged and leaves the cache unpopulated for that key.
func (c *Client) GetOrFetchAvatar(ctx context.Context, avatarID string) (Avatar, error) {
	if avatar, ok := c.registry.GetAvatar(avatarID); ok {
		c.logger.Debug(ctx, "cache hit", "store", "avatars", "key", avatarID)
		return avatar, nil
	}
	c.logger.Debug(ctx, "cache miss", "store", "avatars", "key", avatarID)

	avatar, err := c.remote.FetchAvatar(ctx, avatarID)
	if err != nil {
		return Avatar{}, err
	}

	c.registry.CacheAvatar(avatar)
	return avatar, nil
}

// GetOrFetchProfile returns the cached profile aggregate for avatarID,
// fetching and populating on a miss.
func (c *Client) GetOrFetchProfile(ctx context.Context, avatarID string) (ProfileAggregate, error) {
	if profile, ok := c.registry.GetProfile(avatarID); ok {
		c.logger.Debug(ctx, "cache hit", "store", "profiles", "key", avatarID)
		return profile, nil
	}
	c.logger.Debug(ctx, "cache miss", "store", "profiles", "key", avatarID)

	profile, err := c.remote.FetchProfileAggregate(ctx, avatarID)
	if err != nil {
		return ProfileAggregate{}, err
	}

	c.registry.CacheProfile(profile)
	return profile, nil
}

// GetOrFetchStats returns cached engagement statistics for avatarID,
// fetching and populating on a miss.
func (c *Client) GetOrFetchStats(ctx context.Context, avatarID string) (EngagementStats, error) {
	if stats, ok := c.registry.GetEngagement(avatarID); ok {
		c.logger.Debug(ctx, "cache hit", "store", "engagement", "key", avatarID)
		return stats, nil
	}
	c.logger.Debug(ctx, "cache miss", "store", "engagement", "key", avatarID)

	stats, err := c.remote.FetchStats(ctx, avatarID)
	if err != nil {
		return EngagementStats{}, err
	}

	c.registry.CacheEngagement(stats)
	return stats, nil
}

// GetOrFetchOwnerAvatars returns the cached avatar list for userID, fetching
// and populating on a miss. The returned slice is the caller's to keep.
func (c *Client) GetOrFetchOwnerAvatars(ctx context.Context, userID string) ([]Avatar, error) {
	if avatars, ok := c.registry.GetOwnerAvatars(userID); ok {
		c.logger.Debug(ctx, "cache hit", "store", "owner_lists", "key", userID)
		return avatars, nil
	}
	c.logger.Debug(ctx, "cache miss", "store", "owner_lists", "key", userID)

	avatars, err := c.remote.FetchOwnerAvatars(ctx, userID)
	if err != nil {
		return nil, err
	}

	c.registry.CacheOwnerAvatars(userID, avatars)
	return cloneAvatars(avatars), nil
}

// ActiveAvatar returns the cached active avatar for a user, if any.
func (c *Client) ActiveAvatar(userID string) (Avatar, bool) {
	return c.registry.active.Get(userID)
}

// ClearAll removes every entry from every store.
func (c *Client) ClearAll() {
	c.registry.ClearAll()
}

// maintenanceLoop periodically sweeps expired entries. TTL expiry is a
// safety net here; explicit invalidation after confirmed writes remains the
// primary consistency mechanism.
func (c *Client) maintenanceLoop(interval time.Duration) {
	defer c.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.PerformMaintenance()
		}
	}
}

// Close stops the background maintenance sweep, if running. It is safe to
// call multiple times. Cached data remains readable after Close.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	close(c.done)
	c.wg.Wait()
	return nil
}
