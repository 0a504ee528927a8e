package syncer

import (
	"context"
	"errors"
	"testing"

	"github.com/ravisharma-09/TSAP-Club/internal/activity"
	model "github.com/ravisharma-09/TSAP-Club/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMemberStore struct {
	members map[string]model.Member
	listErr error
}

func newFakeMemberStore(members ...model.Member) *fakeMemberStore {
	s := &fakeMemberStore{members: make(map[string]model.Member)}
	for _, m := range members {
		s.members[m.ID] = m
	}
	return s
}

func (s *fakeMemberStore) List(ctx context.Context) ([]model.Member, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []model.Member
	for _, m := range s.members {
		out = append(out, m)
	}
	return out, nil
}

func (s *fakeMemberStore) GetByID(ctx context.Context, id string) (*model.Member, error) {
	if m, ok := s.members[id]; ok {
		return &m, nil
	}
	return nil, nil
}

func (s *fakeMemberStore) Upsert(ctx context.Context, m model.Member) error {
	s.members[m.ID] = m
	return nil
}

type fakePersister struct {
	data   map[string][]byte
	putErr error
	puts   int
}

func newFakePersister() *fakePersister {
	return &fakePersister{data: make(map[string][]byte)}
}

func (p *fakePersister) Get(ctx context.Context, path string, dest interface{}) (bool, error) {
	return false, nil
}

func (p *fakePersister) Put(ctx context.Context, path string, value interface{}) error {
	p.puts++
	if p.putErr != nil {
		return p.putErr
	}
	p.data[path] = []byte("ok")
	return nil
}

func TestSyncClubComputesSnapshot(t *testing.T) {
	store := newFakeMemberStore(
		model.Member{ID: "m1", Name: "Alice", TotalSolved: 80},
		model.Member{ID: "m2", Name: "Bob", TotalSolved: 40},
		model.Member{ID: "", Name: "Sans ID", TotalSolved: 10},   // invalide: ignoré
		model.Member{ID: "m4", Name: "Carol", TotalSolved: -5},   // invalide: ignoré
	)
	s := New(store, newFakePersister(), activity.NewLog(50))

	snap, err := s.SyncClub(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.Equal(t, 120, snap.TotalSolved)
	assert.Equal(t, 2, snap.MemberCount)
	assert.Equal(t, 2, snap.SkippedMembers)
	require.NotEmpty(t, snap.Milestones)
	assert.True(t, snap.Milestones[0].Achieved) // palier 100
	assert.False(t, snap.Milestones[1].Achieved)

	assert.Same(t, snap, s.Snapshot())
}

func TestSyncClubAnnouncesMilestonesOnce(t *testing.T) {
	store := newFakeMemberStore(model.Member{ID: "m1", Name: "Alice", TotalSolved: 300})
	log := activity.NewLog(50)
	s := New(store, newFakePersister(), log)

	_, err := s.SyncClub(context.Background())
	require.NoError(t, err)

	// Paliers 100 et 250 annoncés exactement une fois
	entries := log.Entries()
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, model.ActivityClubMilestone, e.Type)
	}

	// Une deuxième synchro sans progression n'annonce rien de neuf
	_, err = s.SyncClub(context.Background())
	require.NoError(t, err)
	assert.Len(t, log.Entries(), 2)

	// Une progression annonce uniquement le palier franchi
	store.members["m1"] = model.Member{ID: "m1", Name: "Alice", TotalSolved: 600}
	_, err = s.SyncClub(context.Background())
	require.NoError(t, err)
	require.Len(t, log.Entries(), 3)
	assert.Equal(t, 500, log.Entries()[0].Payload["threshold"])
}

func TestSyncClubPersistFailureDoesNotFailSync(t *testing.T) {
	store := newFakeMemberStore(model.Member{ID: "m1", Name: "Alice", TotalSolved: 10})
	persister := newFakePersister()
	persister.putErr = errors.New("disque plein")
	s := New(store, persister, activity.NewLog(50))

	snap, err := s.SyncClub(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snap)

	// Le cache mémoire fait foi malgré l'échec de persistance
	assert.Same(t, snap, s.Snapshot())
	assert.Positive(t, persister.puts)
}

func TestSyncClubFallsBackToPreviousSnapshot(t *testing.T) {
	store := newFakeMemberStore(model.Member{ID: "m1", Name: "Alice", TotalSolved: 10})
	s := New(store, newFakePersister(), activity.NewLog(50))

	first, err := s.SyncClub(context.Background())
	require.NoError(t, err)

	// La source des membres tombe: la synchro sert le snapshot précédent
	store.listErr = errors.New("connexion perdue")
	got, err := s.SyncClub(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, got)
}

func TestSyncClubPropagatesWithoutPreviousSnapshot(t *testing.T) {
	store := newFakeMemberStore()
	store.listErr = errors.New("connexion perdue")
	s := New(store, newFakePersister(), activity.NewLog(50))

	snap, err := s.SyncClub(context.Background())
	assert.Error(t, err)
	assert.Nil(t, snap)
}

func TestUpdateMemberAnnouncesTierChange(t *testing.T) {
	store := newFakeMemberStore(model.Member{ID: "m1", Name: "Alice", TotalSolved: 45})
	log := activity.NewLog(50)
	s := New(store, newFakePersister(), log)

	// 45 → 55: passage Newbie → Pupil
	snap, err := s.UpdateMember(context.Background(), model.Member{ID: "m1", Name: "Alice", TotalSolved: 55})
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, 55, snap.TotalSolved)

	var memberEntries []model.ActivityEntry
	for _, e := range log.Entries() {
		if e.Type == model.ActivityMemberMilestone {
			memberEntries = append(memberEntries, e)
		}
	}
	require.Len(t, memberEntries, 1)
	assert.Equal(t, "Pupil", memberEntries[0].Payload["tier"])

	// Rejouer la même mise à jour ne ré-annonce pas le palier
	_, err = s.UpdateMember(context.Background(), model.Member{ID: "m1", Name: "Alice", TotalSolved: 56})
	require.NoError(t, err)
	count := 0
	for _, e := range log.Entries() {
		if e.Type == model.ActivityMemberMilestone {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestUpdateMemberAnnouncesSameTierPerMember(t *testing.T) {
	store := newFakeMemberStore(
		model.Member{ID: "m1", Name: "Alice", TotalSolved: 45},
		model.Member{ID: "m2", Name: "Bob", TotalSolved: 45},
	)
	log := activity.NewLog(50)
	s := New(store, newFakePersister(), log)

	// Les deux membres franchissent le même palier: deux annonces
	_, err := s.UpdateMember(context.Background(), model.Member{ID: "m1", Name: "Alice", TotalSolved: 55})
	require.NoError(t, err)
	_, err = s.UpdateMember(context.Background(), model.Member{ID: "m2", Name: "Bob", TotalSolved: 60})
	require.NoError(t, err)

	var memberEntries []model.ActivityEntry
	for _, e := range log.Entries() {
		if e.Type == model.ActivityMemberMilestone {
			memberEntries = append(memberEntries, e)
		}
	}
	require.Len(t, memberEntries, 2)
	assert.Equal(t, "m2", memberEntries[0].Payload["memberId"])
	assert.Equal(t, "m1", memberEntries[1].Payload["memberId"])
	for _, e := range memberEntries {
		assert.Equal(t, "Pupil", e.Payload["tier"])
	}
}

func TestUpdateMemberRejectsInvalid(t *testing.T) {
	s := New(newFakeMemberStore(), newFakePersister(), activity.NewLog(50))

	_, err := s.UpdateMember(context.Background(), model.Member{ID: "", Name: "X", TotalSolved: 1})
	assert.Error(t, err)

	_, err = s.UpdateMember(context.Background(), model.Member{ID: "m1", Name: "X", TotalSolved: -1})
	assert.Error(t, err)
}
