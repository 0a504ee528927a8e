package api

import (
	"net/http"

	"github.com/fatih/color"
	"github.com/gorilla/mux"
	"github.com/ravisharma-09/TSAP-Club/internal/handler"
	"github.com/ravisharma-09/TSAP-Club/internal/middleware"
	"github.com/ravisharma-09/TSAP-Club/internal/utils"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.LoggerMiddleware)

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/signup", handler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)

	// Membres
	r.HandleFunc("/members", handler.GetMembers).Methods(http.MethodGet)
	r.HandleFunc("/members/{memberId}/stats", handler.GetMemberStats).Methods(http.MethodGet)
	r.HandleFunc("/members/{memberId}/recommendations", handler.GetMemberRecommendations).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/members", handler.CreateMember).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/members/{id}", handler.UpdateMember).Methods(http.MethodPut, http.MethodPatch)

	// Club
	r.HandleFunc("/leaderboard", handler.GetLeaderboard).Methods(http.MethodGet)
	r.HandleFunc("/club", handler.GetClubData).Methods(http.MethodGet)
	r.HandleFunc("/club/milestones", handler.GetMilestones).Methods(http.MethodGet)
	r.HandleFunc("/club/activity", handler.GetActivity).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/club/sync", handler.SyncClub).Methods(http.MethodPost)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogRequest(r.Method, r.URL.Path, r.RemoteAddr)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
