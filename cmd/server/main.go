package main

import (
	"context"
	"net/http"
	"os"

	"github.com/ravisharma-09/TSAP-Club/internal/activity"
	"github.com/ravisharma-09/TSAP-Club/internal/api"
	"github.com/ravisharma-09/TSAP-Club/internal/config"
	"github.com/ravisharma-09/TSAP-Club/internal/database"
	"github.com/ravisharma-09/TSAP-Club/internal/handler"
	"github.com/ravisharma-09/TSAP-Club/internal/leaderboard"
	"github.com/ravisharma-09/TSAP-Club/internal/logger"
	"github.com/ravisharma-09/TSAP-Club/internal/middleware"
	"github.com/ravisharma-09/TSAP-Club/internal/milestone"
	"github.com/ravisharma-09/TSAP-Club/internal/platform"
	"github.com/ravisharma-09/TSAP-Club/internal/recommend"
	"github.com/ravisharma-09/TSAP-Club/internal/stats"
	"github.com/ravisharma-09/TSAP-Club/internal/store"
	"github.com/ravisharma-09/TSAP-Club/internal/syncer"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// La table des paliers est fixe: une table mal configurée est un bug
	if err := milestone.ValidateMemberTiers(milestone.MemberTiers); err != nil {
		logger.Error("Table des paliers invalide: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL (optionnel: sans base, mode mémoire)
	if cfg.HasDatabase() {
		db, err := database.ConnectPostgres(cfg)
		if err != nil {
			logger.Error("Database connection failed: %v", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.EnsureSchema(context.Background()); err != nil {
			logger.Error("Schema init failed: %v", err)
			os.Exit(1)
		}
	} else {
		logger.Warning("Aucune base configurée: mode mémoire (écritures non persistées)")
	}

	// Stores
	kv := store.NewKV(database.DB)
	members := store.NewMembers(database.DB)

	// Fetchers de plateformes (client HTTP partagé, rate-limité)
	client := platform.NewClient()
	codeforces := platform.NewCodeforces(client)
	leetcode := platform.NewLeetCode(client)
	codechef := platform.NewCodeChef(client)

	aggregator := stats.NewAggregator(codeforces, leetcode, codechef)
	catalog := recommend.NewCatalog(client, cfg.CatalogTTL)
	engine := recommend.NewEngine(catalog)
	lbCache := leaderboard.NewCache(members, codeforces, cfg.LeaderboardStaleAfter, cfg.LeaderboardFetchDelay)
	activityLog := activity.NewLog(cfg.ActivityLogCap)
	clubSyncer := syncer.New(members, kv, activityLog)

	ctx := context.Background()
	clubSyncer.Hydrate(ctx)

	if err := store.Bootstrap(ctx, database.DB, members); err != nil {
		logger.Warning("Bootstrap incomplet: %v", err)
	}

	handler.Configure(aggregator, lbCache, engine, clubSyncer, members, activityLog)

	// Initialize routes
	router := api.SetupRouter()

	// Wrap router with CORS middleware
	h := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, h); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
