package profilecache

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

// blockedAvatars returns the set of avatar ids owned by users that userID
// has blocked, rebuilding the cached set if it is missing or expired.
func (c *Client) blockedAvatars(ctx context.Context, userID string) (IDSet, error) {
	if set, ok := c.registry.BlockedSet(userID); ok {
		return set, nil
	}

	set, err := c.fetchMembership(ctx, userID, c.remote.FetchBlockedUserIDs)
	if err != nil {
		return nil, err
	}

	c.registry.CacheBlockedSet(userID, set)
	return set, nil
}

// mutedAvatars returns the set of avatar ids owned by users that userID has
// muted, rebuilding the cached set if it is missing or expired.
func (c *Client) mutedAvatars(ctx context.Context, userID string) (IDSet, error) {
	if set, ok := c.registry.MutedSet(userID); ok {
		return set, nil
	}

	set, err := c.fetchMembership(ctx, userID, c.remote.FetchMutedUserIDs)
	if err != nil {
		return nil, err
	}

	c.registry.CacheMutedSet(userID, set)
	return set, nil
}

// fetchMembership recomputes a membership set: fetch the related user ids,
// then map them to the avatars those users own.
func (c *Client) fetchMembership(ctx context.Context, userID string, fetchUserIDs func(context.Context, string) ([]string, error)) (IDSet, error) {
	userIDs, err := fetchUserIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(userIDs) == 0 {
		return IDSet{}, nil
	}

	avatarIDs, err := c.remote.MapUsersToOwnedAvatarIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	set := make(IDSet, len(avatarIDs))
	for _, id := range avatarIDs {
		set[id] = struct{}{}
	}
	return set, nil
}

// FilterContent removes posts owned by avatars in the user's blocked or
// muted sets, refreshing either set first if it is stale. Both refreshes run
// concurrently when needed. Posts matching the configured content-policy
// keywords are also removed unless the call opts in with AllowSensitive.
//
// A remote failure during refresh propagates unchanged; no partial filtering
// is returned in that case. Stale membership is a safety defect, not a
// performance nuisance, so mutation paths must call InvalidateMembership
// rather than waiting for TTL expiry.
func (c *Client) FilterContent(ctx context.Context, userID string, posts []Post, opts ...FilterOption) ([]Post, error) {
	options := filterOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	var blocked, muted IDSet
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		blocked, err = c.blockedAvatars(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		muted, err = c.mutedAvatars(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	filtered := make([]Post, 0, len(posts))
	for _, post := range posts {
		if blocked.Contains(post.AvatarID) || muted.Contains(post.AvatarID) {
			continue
		}
		if !options.allowSensitive && c.matchesContentPolicy(post) {
			continue
		}
		filtered = append(filtered, post)
	}
	return filtered, nil
}

// InvalidateMembership clears the cached blocked and muted sets for a user.
// Block, unblock, mute and unmute handlers must call this after a confirmed
// remote write so the next filter pass sees fresh membership.
func (c *Client) InvalidateMembership(userID string) {
	c.registry.blocked.Remove(userID)
	c.registry.muted.Remove(userID)
	c.logger.Debug(context.Background(), "membership invalidated", "user_id", userID)
}

func (c *Client) matchesContentPolicy(post Post) bool {
	if len(c.keywords) == 0 {
		return false
	}
	caption := strings.ToLower(post.Caption)
	for _, keyword := range c.keywords {
		if strings.Contains(caption, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
