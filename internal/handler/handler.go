package handler

import (
	"net/http"

	"github.com/ravisharma-09/TSAP-Club/internal/activity"
	"github.com/ravisharma-09/TSAP-Club/internal/leaderboard"
	"github.com/ravisharma-09/TSAP-Club/internal/recommend"
	"github.com/ravisharma-09/TSAP-Club/internal/stats"
	"github.com/ravisharma-09/TSAP-Club/internal/store"
	"github.com/ravisharma-09/TSAP-Club/internal/syncer"
	"github.com/ravisharma-09/TSAP-Club/internal/utils"
)

// Dépendances partagées des handlers, câblées une fois au démarrage
var (
	aggregator  *stats.Aggregator
	lbCache     *leaderboard.Cache
	recommender *recommend.Engine
	clubSyncer  *syncer.Syncer
	members     *store.Members
	activityLog *activity.Log
)

// Configure injecte les dépendances du paquet handler
func Configure(
	agg *stats.Aggregator,
	cache *leaderboard.Cache,
	engine *recommend.Engine,
	s *syncer.Syncer,
	m *store.Members,
	log *activity.Log,
) {
	aggregator = agg
	lbCache = cache
	recommender = engine
	clubSyncer = s
	members = m
	activityLog = log
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
