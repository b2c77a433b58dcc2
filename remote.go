package profilecache

import "context"

// RemoteStore is the boundary to the authoritative remote data store. The
// cache treats it as an external collaborator: reads are assumed idempotent,
// and its errors are propagated to callers unchanged.
type RemoteStore interface {
	// FetchAvatar retrieves a single avatar by id.
	FetchAvatar(ctx context.Context, avatarID string) (Avatar, error)

	// FetchProfileAggregate retrieves the assembled profile view for an
	// avatar.
	FetchProfileAggregate(ctx context.Context, avatarID string) (ProfileAggregate, error)

	// FetchStats retrieves engagement statistics for an avatar.
	FetchStats(ctx context.Context, avatarID string) (EngagementStats, error)

	// FetchOwnerAvatars retrieves all avatars owned by a user.
	FetchOwnerAvatars(ctx context.Context, userID string) ([]Avatar, error)

	// FetchBlockedUserIDs retrieves the ids of users blocked by userID.
	FetchBlockedUserIDs(ctx context.Context, userID string) ([]string, error)

	// FetchMutedUserIDs retrieves the ids of users muted by userID.
	FetchMutedUserIDs(ctx context.Context, userID string) ([]string, error)

	// MapUsersToOwnedAvatarIDs resolves a set of user ids to the ids of all
	// avatars those users own.
	MapUsersToOwnedAvatarIDs(ctx context.Context, userIDs []string) ([]string, error)

	// WriteActiveAvatar persists the user's active avatar selection.
	WriteActiveAvatar(ctx context.Context, userID, avatarID string) error
}
