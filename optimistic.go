package profilecache

import "context"

// runOptimistic applies a state transition to a store before the remote
// write confirms:
//
//  1. Snapshot the previous cached value.
//  2. Put the new value, making it visible to all subsequent reads.
//  3. Invoke the remote write.
//  4. On success, the new value stays.
//  5. On failure, restore the snapshot (TTL window reset to now) and return
//     the remote error unchanged.
//
// Between steps 2 and 4 readers observe the unconfirmed value; that window
// is the point of the protocol, not a defect. The store is never left with a
// mix of old and new once this returns. There is no retry, and a
// cancellation or timeout of writeFn is a failure like any other.
func runOptimistic[T any](ctx context.Context, store *Store[T], key string, next T, writeFn func(context.Context) error) error {
	previous, previousTTL, hadPrevious := store.peek(key)

	store.Put(key, next)

	if err := writeFn(ctx); err != nil {
		if hadPrevious {
			store.PutTTL(key, previous, previousTTL)
		} else {
			store.Remove(key)
		}
		return err
	}
	return nil
}

// SetActiveAvatarOptimistic switches the user's active avatar in the cache
// immediately and confirms the change through writeFn. If the remote write
// fails, the previous active avatar is restored and the write error is
// returned to the caller as-is.
func (c *Client) SetActiveAvatarOptimistic(ctx context.Context, userID string, newAvatar Avatar, writeFn func(context.Context) error) error {
	logger := c.logger.WithOperation("set_active_avatar").WithUser(userID)

	err := runOptimistic(ctx, c.registry.active, userID, newAvatar, writeFn)
	if err != nil {
		logger.Warn(ctx, "remote write failed, cache rolled back",
			"avatar_id", newAvatar.ID, "error", err)
		return err
	}

	logger.Debug(ctx, "active avatar switched", "avatar_id", newAvatar.ID)
	return nil
}
