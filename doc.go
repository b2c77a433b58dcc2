// Package profilecache provides a client-side caching and consistency layer
// for social profile data backed by a remote data store.
//
// # Overview
//
// The package accelerates reads of avatars, aggregated profile views,
// engagement statistics and owner avatar lists by keeping bounded, TTL-bound
// in-memory caches in front of the remote store:
//
//  1. Typed stores: one capacity-bounded LRU store per entity kind, each
//     with its own default TTL
//  2. Invalidation cascade: entity- and owner-level invalidation triggered
//     after confirmed remote writes
//  3. Optimistic updates: state transitions applied locally before the
//     remote write confirms, with rollback on failure
//  4. Membership sets: lazily rebuilt blocked/muted avatar sets used to
//     filter content
//
// # Usage
//
// Create a client with an explicit configuration and a remote store:
//
//	client, err := profilecache.New(profilecache.DefaultConfig(), remote,
//	    profilecache.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	avatar, err := client.GetOrFetchAvatar(ctx, avatarID)
//
// Mutations of avatar data must invalidate after the remote write succeeds:
//
//	if err := remote.UpdateAvatar(ctx, avatar); err != nil {
//	    return err
//	}
//	client.InvalidateEntity(avatar.ID)
//
// State transitions that must feel instantaneous go through the optimistic
// path, which rolls the cache back if the remote write fails:
//
//	err := client.SetActiveAvatarOptimistic(ctx, userID, newAvatar,
//	    func(ctx context.Context) error {
//	        return remote.WriteActiveAvatar(ctx, userID, newAvatar.ID)
//	    })
//
// # Consistency model
//
// The cache is a single-process, in-memory layer for one active session. It
// does not persist to disk and does not coordinate across processes. TTL
// expiry is a safety net; explicit invalidation after confirmed writes is
// the primary consistency mechanism. Concurrent misses on the same key may
// trigger duplicate remote fetches; remote reads are assumed idempotent.
// During an optimistic update, readers observe the unconfirmed new value
// until the remote write settles; this is a deliberate latency trade-off.
package profilecache
