package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MassterJoe/developersFoundryAssignments/internal/logger"
	"github.com/MassterJoe/developersFoundryAssignments/internal/middleware"
	"github.com/MassterJoe/developersFoundryAssignments/internal/models"
	"github.com/MassterJoe/developersFoundryAssignments/internal/service"
)

type UserHandler struct {
	users *service.UserService
	log   *logger.Logger
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{
		users: users,
		log:   logger.New("user-handler"),
	}
}

type loginResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

type profileResponse struct {
	Status  string                `json:"status"`
	Message string                `json:"message"`
	Data    *models.UserWithTasks `json:"data"`
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed.")
		return
	}

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if _, err := h.users.Register(r.Context(), req); err != nil {
		respondFailure(w, r, h.log, "Error during user registration", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"status":  "success",
		"message": "User registered successfully!",
	})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed.")
		return
	}

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	result, err := h.users.Login(r.Context(), req)
	if err != nil {
		respondFailure(w, r, h.log, "Error during user login", err)
		return
	}

	// The token is echoed in the Authorization header as well as the body.
	w.Header().Set("Authorization", "Bearer "+result.Token)
	respondJSON(w, http.StatusOK, loginResponse{
		Status:   "success",
		Message:  "Login successful",
		Token:    result.Token,
		UserID:   result.UserID,
		Username: result.Username,
	})
}

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed.")
		return
	}

	userID := middleware.GetUserID(r.Context())

	profile, err := h.users.GetProfile(r.Context(), userID)
	if err != nil {
		respondFailure(w, r, h.log, "Error fetching user record", err)
		return
	}

	respondJSON(w, http.StatusOK, profileResponse{
		Status:  "success",
		Message: "User record fetched successfully.",
		Data:    profile,
	})
}
