package handler

import (
	"net/http"
	"time"

	"github.com/ravisharma-09/TSAP-Club/internal/database"
	"github.com/ravisharma-09/TSAP-Club/internal/middleware"
	model "github.com/ravisharma-09/TSAP-Club/internal/models"
	"github.com/ravisharma-09/TSAP-Club/internal/store"
	"github.com/ravisharma-09/TSAP-Club/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authentifie un utilisateur et ouvre une session
func Login(w http.ResponseWriter, r *http.Request) {
	if database.DB == nil {
		utils.ErrorSimple(w, http.StatusServiceUnavailable, "base de données non configurée")
		return
	}

	var req LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx := r.Context()
	var user model.UserProfile
	var hashedPassword string

	err := database.DB.QueryRow(ctx,
		`SELECT id, name, email, is_admin, join_date, created_at, updated_at, password_hash
		 FROM users WHERE email=$1 AND deleted_at IS NULL`,
		req.Email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.IsAdmin,
		&user.JoinDate, &user.CreatedAt, &user.UpdatedAt, &hashedPassword)

	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(req.Password)); err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := utils.CreateSession(ctx, user.ID, r.RemoteAddr, r.UserAgent())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// Signup crée un compte utilisateur. Politique de bootstrap: le premier
// compte créé est admin.
func Signup(w http.ResponseWriter, r *http.Request) {
	if database.DB == nil {
		utils.ErrorSimple(w, http.StatusServiceUnavailable, "base de données non configurée")
		return
	}

	var req SignupRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Name == "" || req.Email == "" || len(req.Password) < 8 {
		utils.ErrorSimple(w, http.StatusBadRequest, "nom, email et mot de passe (8+ caractères) requis")
		return
	}

	ctx := r.Context()

	isAdmin, err := store.FirstUserIsAdmin(ctx, database.DB)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not apply bootstrap policy", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not hash password", err)
		return
	}

	user := model.UserProfile{
		ID:      utils.GenerateUserID(),
		Name:    req.Name,
		Email:   req.Email,
		IsAdmin: isAdmin,
	}
	now := time.Now()

	_, err = database.DB.Exec(ctx,
		`INSERT INTO users(id, name, email, password_hash, is_admin, join_date, created_at, updated_at)
		 VALUES($1,$2,$3,$4,$5,$6,$6,$6)`,
		user.ID, user.Name, user.Email, string(hash), user.IsAdmin, now,
	)
	if err != nil {
		utils.Error(w, http.StatusConflict, "could not create user (email déjà utilisé ?)", err)
		return
	}

	token, err := utils.CreateSession(ctx, user.ID, r.RemoteAddr, r.UserAgent())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session", err)
		return
	}

	user.JoinDate = now
	utils.Success(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// Logout invalide la session courante
func Logout(w http.ResponseWriter, r *http.Request) {
	if database.DB == nil {
		utils.ErrorSimple(w, http.StatusServiceUnavailable, "base de données non configurée")
		return
	}

	token, err := middleware.GetTokenFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "missing token")
		return
	}

	if err := utils.InvalidateSession(r.Context(), token); err != nil {
		utils.Error(w, http.StatusBadRequest, "could not invalidate session", err)
		return
	}

	utils.Message(w, "déconnecté")
}
