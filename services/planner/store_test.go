package planner

import (
	"context"
	"testing"
	"time"

	"travelplanner/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, ttl), mr
}

// exerciseStore runs the behaviour every StateStore must share.
func exerciseStore(t *testing.T, store StateStore) {
	ctx := context.Background()

	state, err := store.State(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.StateIdle, state)

	require.NoError(t, store.Begin(ctx, "s1", models.StateResolvingPrice))
	assert.ErrorIs(t, store.Begin(ctx, "s1", models.StateGeneratingPlan), ErrSubmissionInFlight)

	// Other sessions are independent.
	require.NoError(t, store.Begin(ctx, "s2", models.StateGeneratingPlan))

	require.NoError(t, store.SetState(ctx, "s1", models.StateGeneratingPlan))
	state, err = store.State(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.StateGeneratingPlan, state)

	require.NoError(t, store.Finish(ctx, "s1", models.StateDone))
	state, err = store.State(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.StateDone, state)

	require.NoError(t, store.Begin(ctx, "s1", models.StateGeneratingPlan), "a finished session accepts a new submission")
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore(time.Minute))
}

func TestRedisStore(t *testing.T) {
	store, _ := newRedisStore(t, time.Minute)
	exerciseStore(t, store)
}

func TestMemoryStoreExpiresIdleSessions(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Begin(ctx, "s1", models.StateGeneratingPlan))
	require.NoError(t, store.Finish(ctx, "s1", models.StateFailed))

	now = now.Add(2 * time.Minute)
	state, err := store.State(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.StateIdle, state)

	require.NoError(t, store.Begin(ctx, "s2", models.StateGeneratingPlan))
	store.mu.Lock()
	_, kept := store.sessions["s1"]
	store.mu.Unlock()
	assert.False(t, kept, "expired idle session should be pruned")
}

func TestRedisStoreLockExpires(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Begin(ctx, "s1", models.StateGeneratingPlan))
	assert.True(t, mr.Exists(lockPrefix+"s1"))

	// A crashed instance never calls Finish; the lock must not outlive the TTL.
	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists(lockPrefix+"s1"))
	require.NoError(t, store.Begin(ctx, "s1", models.StateGeneratingPlan))
}

func TestRedisStoreFinishReleasesLock(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Begin(ctx, "s1", models.StateResolvingPrice))
	require.NoError(t, store.Finish(ctx, "s1", models.StateFailed))

	assert.False(t, mr.Exists(lockPrefix+"s1"))
	got, err := mr.Get(statePrefix + "s1")
	require.NoError(t, err)
	assert.Equal(t, string(models.StateFailed), got)
	assert.Greater(t, mr.TTL(statePrefix+"s1"), time.Duration(0))
}

func TestTransitions(t *testing.T) {
	assert.True(t, canTransition(models.StateIdle, models.StateResolvingPrice))
	assert.True(t, canTransition(models.StateResolvingPrice, models.StateGeneratingPlan))
	assert.True(t, canTransition(models.StateGeneratingPlan, models.StateDone))
	assert.True(t, canTransition(models.StateDone, models.StateGeneratingPlan))

	assert.False(t, canTransition(models.StateIdle, models.StateDone))
	assert.False(t, canTransition(models.StateResolvingPrice, models.StateDone))
	assert.False(t, canTransition(models.StateGeneratingPlan, models.StateResolvingPrice))
}
