package service

import (
	"time"

	"github.com/MassterJoe/developersFoundryAssignments/internal/auth"
)

func newTestJWTManager() *auth.JWTManager {
	return auth.NewJWTManager("test-secret", 24*time.Hour)
}
