package profilecache

import "context"

// InvalidateEntity removes avatarID from the avatar, profile-aggregate,
// engagement and active-avatar stores. Owner avatar lists are left alone:
// the entity changed, not the owner mapping. Invalidating an absent key is a
// no-op.
//
// Callers that mutate avatar data through the remote store must call this
// after the remote write has been confirmed, never before. Invalidating
// first opens a window where a concurrent read repopulates the slot with the
// pre-mutation value.
func (c *Client) InvalidateEntity(avatarID string) {
	c.registry.avatars.Remove(avatarID)
	c.registry.profiles.Remove(avatarID)
	c.registry.engagement.Remove(avatarID)

	// The active-avatar store is keyed by user id, so cross-reference by
	// value. Bounded by capacity, same as the owner scan.
	var users []string
	c.registry.active.Scan(func(userID string, avatar Avatar) {
		if avatar.ID == avatarID {
			users = append(users, userID)
		}
	})
	for _, userID := range users {
		c.registry.active.Remove(userID)
	}

	c.logger.Debug(context.Background(), "entity invalidated", "avatar_id", avatarID)
}

// InvalidateOwner removes the owner's cached avatar list, then scans the
// bounded avatar store and invalidates every cached avatar owned by userID.
// This is the only cascade rule: there is no reverse cascade from stats to
// profiles or profiles to avatars.
func (c *Client) InvalidateOwner(userID string) {
	c.registry.ownerLists.Remove(userID)

	var owned []string
	c.registry.avatars.Scan(func(avatarID string, avatar Avatar) {
		if avatar.OwnerID == userID {
			owned = append(owned, avatarID)
		}
	})
	for _, avatarID := range owned {
		c.InvalidateEntity(avatarID)
	}

	c.logger.Debug(context.Background(), "owner invalidated",
		"user_id", userID, "cascaded_avatars", len(owned))
}
