package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/auth"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/logger"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/middleware"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/models"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/storage"
)

type AuthHandler struct {
	users         storage.UserStore
	jwtManager    *auth.JWTManager
	secureCookies bool
	log           *logger.Logger
}

// NewAuthHandler builds the login/logout handler. secureCookies should
// be true only in production so local HTTP development keeps working.
func NewAuthHandler(users storage.UserStore, jwtManager *auth.JWTManager, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		users:         users,
		jwtManager:    jwtManager,
		secureCookies: secureCookies,
		log:           logger.New("auth-handler"),
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.users.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		h.log.Error("Failed to look up user: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if user == nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	// Demo auth: the supplied password is never compared against the
	// stored hash, so any password works for a known username. Kept to
	// match the documented behavior; a real deployment must call
	// auth.CheckPassword(user.PasswordHash, req.Password) here.
	token, _, err := h.jwtManager.GenerateToken(user.ID, user.Username)
	if err != nil {
		h.log.Error("Failed to generate token: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})

	respondJSON(w, http.StatusOK, models.LoginResponse{
		Success:  true,
		Username: user.Username,
	})
}

// Logout clears the session cookie. Tokens are not revocable before
// expiry; the client simply stops sending this one.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})

	respondJSON(w, http.StatusOK, models.LogoutResponse{Success: true})
}
