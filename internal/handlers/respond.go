package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MassterJoe/developersFoundryAssignments/internal/apperr"
	"github.com/MassterJoe/developersFoundryAssignments/internal/logger"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"status":  "error",
		"message": message,
	})
}

// respondFailure maps a service error to the envelope. Expected failures pass
// their message through; anything else is logged in full and surfaced as a
// generic 500 so internals never leak into the response body.
func respondFailure(w http.ResponseWriter, r *http.Request, log *logger.Logger, context string, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) && ae.Kind != apperr.KindInternal {
		respondError(w, apperr.HTTPStatus(ae.Kind), ae.Message)
		return
	}

	log.Error("%s: %v (%s %s)", context, err, r.Method, r.URL.Path)
	respondError(w, http.StatusInternalServerError, "Internal server error.")
}
