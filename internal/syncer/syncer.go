// Package syncer orchestre la synchronisation complète du club:
// membres → validation → agrégation → diff des paliers → journal
// d'activité → cache → persistance best-effort.
package syncer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ravisharma-09/TSAP-Club/internal/activity"
	"github.com/ravisharma-09/TSAP-Club/internal/logger"
	"github.com/ravisharma-09/TSAP-Club/internal/milestone"
	model "github.com/ravisharma-09/TSAP-Club/internal/models"
)

// Chemins de persistance du snapshot et du journal
const (
	clubDataPath     = "club/data"
	clubActivityPath = "club/activity"
)

// MemberStore est la partie du store des membres dont le syncer a besoin
type MemberStore interface {
	List(ctx context.Context) ([]model.Member, error)
	GetByID(ctx context.Context, id string) (*model.Member, error)
	Upsert(ctx context.Context, m model.Member) error
}

// Persister écrit les documents du club (implémenté par store.KV).
// Un échec d'écriture n'échoue jamais une synchro: le cache mémoire
// reste la source de vérité pour les lectures.
type Persister interface {
	Get(ctx context.Context, path string, dest interface{}) (bool, error)
	Put(ctx context.Context, path string, value interface{}) error
}

// Syncer détient le dernier snapshot du club et le recalcule à la demande
type Syncer struct {
	members MemberStore
	kv      Persister
	log     *activity.Log

	mu   sync.Mutex
	last *model.ClubSnapshot
}

func New(members MemberStore, kv Persister, log *activity.Log) *Syncer {
	return &Syncer{members: members, kv: kv, log: log}
}

// Hydrate recharge l'état persisté (snapshot + journal) au démarrage
func (s *Syncer) Hydrate(ctx context.Context) {
	var snap model.ClubSnapshot
	if ok, err := s.kv.Get(ctx, clubDataPath, &snap); err != nil {
		logger.Warning("hydratation du snapshot impossible: %v", err)
	} else if ok {
		s.mu.Lock()
		s.last = &snap
		s.mu.Unlock()
		logger.Info("snapshot du club rechargé (maj %s)", snap.UpdatedAt.Format(time.RFC3339))
	}

	var entries []model.ActivityEntry
	if ok, err := s.kv.Get(ctx, clubActivityPath, &entries); err != nil {
		logger.Warning("hydratation du journal impossible: %v", err)
	} else if ok {
		s.log.Restore(entries)
	}
}

// Snapshot retourne le dernier snapshot en cache (nil avant la première
// synchro)
func (s *Syncer) Snapshot() *model.ClubSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// SyncClub exécute une synchronisation complète et retourne le nouveau
// snapshot. En cas d'échec avant la mise à jour du cache, retourne le
// snapshot précédent s'il existe, sinon propage l'erreur.
func (s *Syncer) SyncClub(ctx context.Context) (*model.ClubSnapshot, error) {
	snap, err := s.computeSnapshot(ctx)
	if err != nil {
		if prev := s.Snapshot(); prev != nil {
			logger.Warning("synchro échouée, snapshot précédent servi: %v", err)
			return prev, nil
		}
		return nil, err
	}

	s.mu.Lock()
	s.last = snap
	s.mu.Unlock()

	// Persistance best-effort: le cache mémoire fait foi
	if err := s.kv.Put(ctx, clubDataPath, snap); err != nil {
		logger.Warning("persistance du snapshot échouée: %v", err)
	}
	if err := s.kv.Put(ctx, clubActivityPath, s.log.Entries()); err != nil {
		logger.Warning("persistance du journal échouée: %v", err)
	}

	return snap, nil
}

func (s *Syncer) computeSnapshot(ctx context.Context) (*model.ClubSnapshot, error) {
	members, err := s.members.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("liste des membres indisponible: %w", err)
	}

	// Les enregistrements invalides sont ignorés et comptés, jamais bloquants
	var total, skipped int
	var valid int
	for _, m := range members {
		if !m.Valid() {
			skipped++
			continue
		}
		valid++
		total += m.TotalSolved
	}
	if skipped > 0 {
		logger.Warning("synchro: %d membre(s) invalide(s) ignoré(s)", skipped)
	}

	var prevMilestones []model.ClubMilestone
	if prev := s.Snapshot(); prev != nil {
		prevMilestones = prev.Milestones
	}

	now := time.Now()
	current := milestone.ComputeClub(total, prevMilestones, now)

	for _, m := range milestone.NewlyAchieved(prevMilestones, current) {
		if s.log.HasEquivalent(model.ActivityClubMilestone, "", m.Threshold) {
			continue
		}
		s.log.Append(model.ActivityClubMilestone,
			fmt.Sprintf("Palier du club atteint: %d problèmes résolus — %s", m.Threshold, m.Reward),
			map[string]interface{}{"threshold": m.Threshold, "reward": m.Reward},
		)
	}

	return &model.ClubSnapshot{
		TotalSolved:    total,
		MemberCount:    valid,
		SkippedMembers: skipped,
		Milestones:     current,
		UpdatedAt:      now,
	}, nil
}

// UpdateMember met à jour un membre, annonce un éventuel changement de
// palier individuel, puis relance une synchro complète du club.
// Inefficacité assumée: une mise à jour unitaire recalcule tout le club.
func (s *Syncer) UpdateMember(ctx context.Context, m model.Member) (*model.ClubSnapshot, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("membre invalide: id, nom et compteur positif requis")
	}

	prev, err := s.members.GetByID(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("lecture du membre impossible: %w", err)
	}

	prevTier := milestone.ComputeMember(0)
	if prev != nil {
		prevTier = milestone.ComputeMember(prev.TotalSolved)
	}

	if err := s.members.Upsert(ctx, m); err != nil {
		return nil, fmt.Errorf("mise à jour du membre impossible: %w", err)
	}

	currTier := milestone.ComputeMember(m.TotalSolved)
	if milestone.TierChanged(prevTier, currTier) {
		threshold := milestone.TierMin(currTier.Tier)
		if !s.log.HasEquivalent(model.ActivityMemberMilestone, m.ID, threshold) {
			s.log.Append(model.ActivityMemberMilestone,
				fmt.Sprintf("%s passe au palier %s", m.Name, currTier.Tier),
				map[string]interface{}{"memberId": m.ID, "tier": currTier.Tier, "threshold": threshold},
			)
		}
	}

	return s.SyncClub(ctx)
}
