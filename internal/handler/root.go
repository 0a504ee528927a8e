package handler

import (
	"net/http"

	"github.com/ravisharma-09/TSAP-Club/internal/utils"
)

// RootHandler documente sommairement l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, map[string]interface{}{
		"name": "TSAP-Club API",
		"endpoints": map[string]string{
			"GET /health":                              "health check",
			"POST /auth/signup":                        "créer un compte",
			"POST /auth/login":                         "ouvrir une session",
			"POST /auth/logout":                        "fermer la session",
			"GET /members":                             "liste des membres",
			"POST /members":                            "ajouter un membre",
			"GET /members/{memberId}/stats":            "stats agrégées multi-plateformes",
			"GET /members/{memberId}/recommendations":  "problèmes recommandés",
			"PUT /members/{id}":                        "mise à jour d'un membre + resynchro",
			"GET /leaderboard":                         "classement Codeforces du club",
			"GET /club":                                "snapshot du club",
			"GET /club/milestones":                     "paliers du club",
			"GET /club/activity":                       "journal d'activité",
			"POST /club/sync":                          "synchronisation complète",
		},
	})
}
