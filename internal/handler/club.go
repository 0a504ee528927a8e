package handler

import (
	"net/http"
	"time"

	"github.com/ravisharma-09/TSAP-Club/internal/middleware"
	"github.com/ravisharma-09/TSAP-Club/internal/milestone"
	"github.com/ravisharma-09/TSAP-Club/internal/utils"
)

// GetLeaderboard retourne le dernier classement connu. Si le cache est
// périmé, un refresh part en arrière-plan: la réponse n'attend jamais.
func GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, lbCache.Snapshot())
}

// SyncClub déclenche une synchronisation complète et retourne le snapshot
func SyncClub(w http.ResponseWriter, r *http.Request) {
	if user, err := middleware.GetUserFromContext(r); err == nil {
		utils.LogInfo("Synchro du club déclenchée par %s", user.Email)
	}

	snap, err := clubSyncer.SyncClub(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "sync failed", err)
		return
	}
	utils.Success(w, snap)
}

// GetClubData retourne le dernier snapshot du club, en le calculant si
// aucune synchro n'a encore eu lieu
func GetClubData(w http.ResponseWriter, r *http.Request) {
	if snap := clubSyncer.Snapshot(); snap != nil {
		utils.Success(w, snap)
		return
	}

	snap, err := clubSyncer.SyncClub(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "no club data available", err)
		return
	}
	utils.Success(w, snap)
}

// GetMilestones retourne l'état courant des paliers du club
func GetMilestones(w http.ResponseWriter, r *http.Request) {
	if snap := clubSyncer.Snapshot(); snap != nil {
		utils.Success(w, snap.Milestones)
		return
	}
	// Aucune synchro encore: paliers vierges
	utils.Success(w, milestone.ComputeClub(0, nil, time.Now()))
}

// GetActivity retourne le journal d'activité, le plus récent en premier
func GetActivity(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, activityLog.Entries())
}
