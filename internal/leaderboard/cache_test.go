package leaderboard

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	model "github.com/ravisharma-09/TSAP-Club/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMembers struct {
	members []model.Member
	err     error
}

func (f *fakeMembers) List(ctx context.Context) ([]model.Member, error) {
	return f.members, f.err
}

type fakeFetcher struct {
	FetchFunc  func(ctx context.Context, handle string) (*model.PlatformStats, error)
	fetchCount atomic.Int32
}

func (f *fakeFetcher) Name() string { return model.PlatformCodeforces }
func (f *fakeFetcher) Fetch(ctx context.Context, handle string) (*model.PlatformStats, error) {
	f.fetchCount.Add(1)
	return f.FetchFunc(ctx, handle)
}

func intPtr(n int) *int { return &n }

func clubMembers() []model.Member {
	return []model.Member{
		{ID: "m1", Name: "Alice", Handles: model.HandleSet{Codeforces: "alice"}},
		{ID: "m2", Name: "Bob", Handles: model.HandleSet{Codeforces: "bob"}},
		{ID: "m3", Name: "Carol"}, // pas de handle: ignorée
	}
}

func TestRefreshBuildsSortedEntries(t *testing.T) {
	ratings := map[string]int{"alice": 1400, "bob": 1700}
	solved := map[string]int{"alice": 300, "bob": 120}

	fetcher := &fakeFetcher{FetchFunc: func(ctx context.Context, handle string) (*model.PlatformStats, error) {
		return &model.PlatformStats{
			Platform:    model.PlatformCodeforces,
			Handle:      handle,
			Rating:      intPtr(ratings[handle]),
			MaxRating:   intPtr(ratings[handle] + 100),
			TotalSolved: solved[handle],
			Supported:   true,
		}, nil
	}}

	cache := NewCache(&fakeMembers{members: clubMembers()}, fetcher, 15*time.Minute, 0)
	cache.Refresh(context.Background())

	snap := cache.Snapshot()
	require.Len(t, snap.Entries, 2)
	assert.Equal(t, "bob", snap.Entries[0].Handle)
	assert.Equal(t, "alice", snap.Entries[1].Handle)
	assert.False(t, snap.LastUpdated.IsZero())
	assert.Equal(t, int32(2), fetcher.fetchCount.Load())
}

func TestRefreshMemberFailureYieldsErrorRow(t *testing.T) {
	fetcher := &fakeFetcher{FetchFunc: func(ctx context.Context, handle string) (*model.PlatformStats, error) {
		if handle == "alice" {
			return nil, errors.New("codeforces user.info: down")
		}
		return &model.PlatformStats{
			Platform: model.PlatformCodeforces, Handle: handle,
			Rating: intPtr(1500), TotalSolved: 50, Supported: true,
		}, nil
	}}

	cache := NewCache(&fakeMembers{members: clubMembers()}, fetcher, 15*time.Minute, 0)
	cache.Refresh(context.Background())

	snap := cache.Snapshot()
	require.Len(t, snap.Entries, 2)

	// La ligne en échec reste présente, stats à zéro, en queue de classement
	failed := snap.Entries[1]
	assert.Equal(t, "alice", failed.Handle)
	assert.NotEmpty(t, failed.Error)
	assert.Equal(t, 0, failed.Rating)
	assert.Equal(t, 0, failed.TotalSolved)
}

func TestRefreshSingleFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	fetcher := &fakeFetcher{FetchFunc: func(ctx context.Context, handle string) (*model.PlatformStats, error) {
		once.Do(func() { close(started) })
		<-release
		return &model.PlatformStats{Platform: model.PlatformCodeforces, Handle: handle, Supported: true}, nil
	}}

	cache := NewCache(&fakeMembers{members: clubMembers()}, fetcher, 15*time.Minute, 0)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		cache.Refresh(context.Background())
	}()

	<-started
	// Lecture directe de l'état pour ne pas déclencher de refresh parasite
	cache.mu.Lock()
	updating := cache.updating
	cache.mu.Unlock()
	assert.True(t, updating)

	// Deuxième déclenchement pendant le refresh: no-op immédiat
	done := make(chan struct{})
	go func() {
		cache.Refresh(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("le refresh concurrent aurait dû être un no-op immédiat")
	}

	close(release)
	wg.Wait()

	snap := cache.Snapshot()
	assert.False(t, snap.IsUpdating)
	// Un seul passage de fetch: 2 membres avec handle, 2 fetches
	assert.Equal(t, int32(2), fetcher.fetchCount.Load())
}

func TestSnapshotTriggersAsyncRefreshWhenStale(t *testing.T) {
	fetched := make(chan struct{}, 4)
	fetcher := &fakeFetcher{FetchFunc: func(ctx context.Context, handle string) (*model.PlatformStats, error) {
		fetched <- struct{}{}
		return &model.PlatformStats{Platform: model.PlatformCodeforces, Handle: handle, Supported: true}, nil
	}}

	cache := NewCache(&fakeMembers{members: clubMembers()}, fetcher, time.Minute, 0)

	// Cache jamais rempli: périmé, la lecture retourne tout de suite et
	// déclenche le refresh en arrière-plan
	snap := cache.Snapshot()
	assert.Empty(t, snap.Entries)

	select {
	case <-fetched:
	case <-time.After(2 * time.Second):
		t.Fatal("aucun refresh déclenché par la lecture d'un cache périmé")
	}
}

func TestSnapshotFreshCacheDoesNotRefresh(t *testing.T) {
	fetcher := &fakeFetcher{FetchFunc: func(ctx context.Context, handle string) (*model.PlatformStats, error) {
		return &model.PlatformStats{Platform: model.PlatformCodeforces, Handle: handle, Supported: true}, nil
	}}

	cache := NewCache(&fakeMembers{members: clubMembers()}, fetcher, time.Hour, 0)
	cache.Refresh(context.Background())
	before := fetcher.fetchCount.Load()

	cache.Snapshot()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, before, fetcher.fetchCount.Load())
}
