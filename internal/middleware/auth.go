package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MassterJoe/developersFoundryAssignments/internal/auth"
	"github.com/MassterJoe/developersFoundryAssignments/internal/logger"
)

type contextKey string

const UserIDKey contextKey = "user_id"

const (
	msgNoToken      = "Unauthorized: No token provided. Please log in again."
	msgInvalidToken = "Unauthorized: Invalid or expired token. Please log in again."
)

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

// RequireAuth verifies the bearer token before the handler runs. It performs
// no store access; ownership checks happen later, in the services.
func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, msgNoToken)
			return
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			m.log.Error("Invalid token on %s %s: %v", r.Method, r.URL.Path, err)
			writeError(w, http.StatusUnauthorized, msgInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// bearerToken extracts the token segment of an "Authorization: Bearer <token>"
// header. A missing header and a header with no token segment are the same
// failure.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "error",
		"message": message,
	})
}

func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(UserIDKey).(string); ok {
		return userID
	}
	return ""
}
