package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/auth"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/logger"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/models"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
)

// TokenCookieName is the session cookie the gate reads.
const TokenCookieName = "token"

// AuthMiddleware gates handlers behind session-token verification.
// Missing cookie is 401; malformed, bad-signature and expired tokens
// are all 403 so a caller cannot tell them apart.
type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	log        *logger.Logger
}

func NewAuthMiddleware(jwtManager *auth.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		log:        logger.New("auth-middleware"),
	}
}

func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(TokenCookieName)
		if err != nil || cookie.Value == "" {
			writeAuthError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := m.jwtManager.ValidateToken(cookie.Value)
		if err != nil {
			if errors.Is(err, auth.ErrTokenMissing) {
				writeAuthError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			m.log.Debug("Rejected token: %v", err)
			writeAuthError(w, http.StatusForbidden, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UsernameKey, claims.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{Error: message})
}

func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(UserIDKey).(string); ok {
		return userID
	}
	return ""
}

func GetUsername(ctx context.Context) string {
	if username, ok := ctx.Value(UsernameKey).(string); ok {
		return username
	}
	return ""
}
