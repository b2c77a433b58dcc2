package profilecache

import (
	"context"
	"testing"
	"time"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterContent_ExcludesBlockedAndMutedOwnership(t *testing.T) {
	client, remote := newTestClient(t, testConfig())

	remote.addAvatar(Avatar{ID: "blocked-av", OwnerID: "enemy"})
	remote.addAvatar(Avatar{ID: "muted-av", OwnerID: "noisy"})
	remote.addAvatar(Avatar{ID: "friend-av", OwnerID: "friend"})
	remote.blocked["me"] = []string{"enemy"}
	remote.muted["me"] = []string{"noisy"}

	posts := []Post{
		{ID: "p1", AvatarID: "blocked-av"},
		{ID: "p2", AvatarID: "muted-av"},
		{ID: "p3", AvatarID: "friend-av"},
	}

	filtered, err := client.FilterContent(context.Background(), "me", posts)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "p3", filtered[0].ID)
}

func TestFilterContent_EmptyInput(t *testing.T) {
	client, _ := newTestClient(t, testConfig())

	filtered, err := client.FilterContent(context.Background(), "me", nil)
	require.NoError(t, err)
	assert.Empty(t, filtered)
}

func TestFilterContent_NoRelationships(t *testing.T) {
	client, _ := newTestClient(t, testConfig())

	posts := []Post{{ID: "p1", AvatarID: "av1"}, {ID: "p2", AvatarID: "av2"}}
	filtered, err := client.FilterContent(context.Background(), "me", posts)
	require.NoError(t, err)
	assert.Equal(t, posts, filtered)
}

func TestFilterContent_KeywordPolicy(t *testing.T) {
	client, _ := newTestClient(t, testConfig(), WithContentPolicy("spoiler"))

	posts := []Post{
		{ID: "p1", AvatarID: "av1", Caption: "big SPOILER ahead"},
		{ID: "p2", AvatarID: "av2", Caption: "just a sunset"},
	}

	filtered, err := client.FilterContent(context.Background(), "me", posts)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "p2", filtered[0].ID)

	// Opting in to sensitive content disables keyword rules, but blocked and
	// muted ownership filtering still applies.
	filtered, err = client.FilterContent(context.Background(), "me", posts, AllowSensitive())
	require.NoError(t, err)
	assert.Len(t, filtered, 2)
}

func TestFilterContent_UsesCachedSets(t *testing.T) {
	client, remote := newTestClient(t, testConfig())

	posts := []Post{{ID: "p1", AvatarID: "av1"}}
	_, err := client.FilterContent(context.Background(), "me", posts)
	require.NoError(t, err)
	_, err = client.FilterContent(context.Background(), "me", posts)
	require.NoError(t, err)

	assert.Equal(t, 1, remote.callCount("FetchBlockedUserIDs"))
	assert.Equal(t, 1, remote.callCount("FetchMutedUserIDs"))
}

func TestFilterContent_RefreshAfterExpiry(t *testing.T) {
	cfg := testConfig()
	cfg.MembershipTTL = 20 * time.Millisecond
	client, remote := newTestClient(t, cfg)

	posts := []Post{{ID: "p1", AvatarID: "av1"}}
	_, err := client.FilterContent(context.Background(), "me", posts)
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)

	_, err = client.FilterContent(context.Background(), "me", posts)
	require.NoError(t, err)
	assert.Equal(t, 2, remote.callCount("FetchBlockedUserIDs"))
	assert.Equal(t, 2, remote.callCount("FetchMutedUserIDs"))
}

func TestFilterContent_RemoteFailurePropagates(t *testing.T) {
	remote := newFakeRemote()
	client, err := New(testConfig(), &failingBlockedRemote{fakeRemote: remote})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	_, err = client.FilterContent(context.Background(), "me", []Post{{ID: "p1"}})
	require.Error(t, err)
	assert.Equal(t, platformerrors.CodeNetwork, platformerrors.GetCode(err))
}

// failingBlockedRemote fails the blocked-id fetch to exercise the refresh
// error path.
type failingBlockedRemote struct {
	*fakeRemote
}

func (f *failingBlockedRemote) FetchBlockedUserIDs(ctx context.Context, userID string) ([]string, error) {
	return nil, platformerrors.New(platformerrors.CodeNetwork, "relationship service down")
}

func TestInvalidateMembership_BlockTakesEffectImmediately(t *testing.T) {
	client, remote := newTestClient(t, testConfig())

	remote.addAvatar(Avatar{ID: "av-v", OwnerID: "u-target"})
	post := Post{ID: "p1", AvatarID: "av-v"}

	// Warm the membership cache before the block happens.
	filtered, err := client.FilterContent(context.Background(), "me", []Post{post})
	require.NoError(t, err)
	require.Len(t, filtered, 1)

	// The block handler writes remotely, then must clear the cached sets
	// rather than waiting for TTL expiry.
	remote.blocked["me"] = []string{"u-target"}
	client.InvalidateMembership("me")

	filtered, err = client.FilterContent(context.Background(), "me", []Post{post})
	require.NoError(t, err)
	assert.Empty(t, filtered)
}
