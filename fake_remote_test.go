package profilecache

import (
	"context"
	"sync"
	"testing"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/require"
)

// fakeRemote is a hand-written RemoteStore fake backed by maps. Each method
// counts its calls, and any method can be overridden with a func field to
// inject failures.
type fakeRemote struct {
	mu sync.Mutex

	avatars  map[string]Avatar
	profiles map[string]ProfileAggregate
	stats    map[string]EngagementStats
	owned    map[string][]Avatar // userID -> avatars
	blocked  map[string][]string // userID -> blocked user ids
	muted    map[string][]string // userID -> muted user ids

	calls map[string]int

	fetchAvatarFn       func(ctx context.Context, avatarID string) (Avatar, error)
	writeActiveAvatarFn func(ctx context.Context, userID, avatarID string) error
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		avatars:  make(map[string]Avatar),
		profiles: make(map[string]ProfileAggregate),
		stats:    make(map[string]EngagementStats),
		owned:    make(map[string][]Avatar),
		blocked:  make(map[string][]string),
		muted:    make(map[string][]string),
		calls:    make(map[string]int),
	}
}

func (f *fakeRemote) record(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[method]++
}

func (f *fakeRemote) callCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeRemote) addAvatar(avatar Avatar) {
	f.avatars[avatar.ID] = avatar
	f.owned[avatar.OwnerID] = append(f.owned[avatar.OwnerID], avatar)
}

func (f *fakeRemote) FetchAvatar(ctx context.Context, avatarID string) (Avatar, error) {
	f.record("FetchAvatar")
	if f.fetchAvatarFn != nil {
		return f.fetchAvatarFn(ctx, avatarID)
	}
	avatar, ok := f.avatars[avatarID]
	if !ok {
		return Avatar{}, platformerrors.New(platformerrors.CodeNotFound, "avatar not found")
	}
	return avatar, nil
}

func (f *fakeRemote) FetchProfileAggregate(ctx context.Context, avatarID string) (ProfileAggregate, error) {
	f.record("FetchProfileAggregate")
	profile, ok := f.profiles[avatarID]
	if !ok {
		return ProfileAggregate{}, platformerrors.New(platformerrors.CodeNotFound, "profile not found")
	}
	return profile, nil
}

func (f *fakeRemote) FetchStats(ctx context.Context, avatarID string) (EngagementStats, error) {
	f.record("FetchStats")
	stats, ok := f.stats[avatarID]
	if !ok {
		return EngagementStats{}, platformerrors.New(platformerrors.CodeNotFound, "stats not found")
	}
	return stats, nil
}

func (f *fakeRemote) FetchOwnerAvatars(ctx context.Context, userID string) ([]Avatar, error) {
	f.record("FetchOwnerAvatars")
	return f.owned[userID], nil
}

func (f *fakeRemote) FetchBlockedUserIDs(ctx context.Context, userID string) ([]string, error) {
	f.record("FetchBlockedUserIDs")
	return f.blocked[userID], nil
}

func (f *fakeRemote) FetchMutedUserIDs(ctx context.Context, userID string) ([]string, error) {
	f.record("FetchMutedUserIDs")
	return f.muted[userID], nil
}

func (f *fakeRemote) MapUsersToOwnedAvatarIDs(ctx context.Context, userIDs []string) ([]string, error) {
	f.record("MapUsersToOwnedAvatarIDs")
	var avatarIDs []string
	for _, userID := range userIDs {
		for _, avatar := range f.owned[userID] {
			avatarIDs = append(avatarIDs, avatar.ID)
		}
	}
	return avatarIDs, nil
}

func (f *fakeRemote) WriteActiveAvatar(ctx context.Context, userID, avatarID string) error {
	f.record("WriteActiveAvatar")
	if f.writeActiveAvatarFn != nil {
		return f.writeActiveAvatarFn(ctx, userID, avatarID)
	}
	return nil
}

// newTestClient builds a client around a fake remote with short TTLs so
// expiry tests stay fast. Background maintenance is disabled.
func newTestClient(t *testing.T, cfg Config, opts ...Option) (*Client, *fakeRemote) {
	t.Helper()

	remote := newFakeRemote()
	client, err := New(cfg, remote, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client, remote
}
