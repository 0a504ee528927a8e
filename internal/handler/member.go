package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	model "github.com/ravisharma-09/TSAP-Club/internal/models"
	"github.com/ravisharma-09/TSAP-Club/internal/utils"
)

// GetMembers liste les membres du club
func GetMembers(w http.ResponseWriter, r *http.Request) {
	list, err := members.List(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not list members", err)
		return
	}
	utils.Success(w, list)
}

// GetMemberStats agrège les statistiques d'un membre sur toutes ses
// plateformes liées. Recalculé à chaque appel; les plateformes en échec
// apparaissent avec leur marqueur d'erreur plutôt que de faire échouer la
// réponse.
func GetMemberStats(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	memberID := vars["memberId"]

	m, err := members.GetByID(r.Context(), memberID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load member", err)
		return
	}
	if m == nil {
		utils.ErrorSimple(w, http.StatusNotFound, "membre introuvable")
		return
	}

	agg, err := aggregator.ForHandles(r.Context(), m.Handles)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not aggregate stats", err)
		return
	}

	utils.Success(w, agg)
}

// GetMemberRecommendations propose jusqu'à 5 problèmes Codeforces dans la
// zone de progression du membre. Liste vide quand le membre n'a pas de
// handle ou que le catalogue est indisponible, jamais une erreur.
func GetMemberRecommendations(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	memberID := vars["memberId"]

	m, err := members.GetByID(r.Context(), memberID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load member", err)
		return
	}
	if m == nil {
		utils.ErrorSimple(w, http.StatusNotFound, "membre introuvable")
		return
	}

	agg, err := aggregator.ForHandles(r.Context(), model.HandleSet{Codeforces: m.Handles.Codeforces})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch stats", err)
		return
	}

	problems := recommender.Suggest(r.Context(), agg.Codeforces)
	utils.LogDebug("%d recommandation(s) pour le membre %s", len(problems), memberID)
	utils.Success(w, problems)
}

// CreateMember ajoute un membre au club puis déclenche une synchro
func CreateMember(w http.ResponseWriter, r *http.Request) {
	var m model.Member
	if err := utils.DecodeJSON(r, &m); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if m.ID == "" {
		m.ID = utils.GenerateMemberID()
	}

	snap, err := clubSyncer.UpdateMember(r.Context(), m)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "could not create member", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"member": m,
		"club":   snap,
	})
}

// UpdateMember met à jour un membre et relance une synchro complète du club
func UpdateMember(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var m model.Member
	if err := utils.DecodeJSON(r, &m); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if m.ID == "" {
		m.ID = vars["id"]
	}
	if m.ID != vars["id"] {
		utils.ErrorSimple(w, http.StatusBadRequest, "l'id du corps ne correspond pas à l'URL")
		return
	}

	snap, err := clubSyncer.UpdateMember(r.Context(), m)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "could not update member", err)
		return
	}

	utils.Success(w, snap)
}
