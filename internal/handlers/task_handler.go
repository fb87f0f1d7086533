package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MassterJoe/developersFoundryAssignments/internal/logger"
	"github.com/MassterJoe/developersFoundryAssignments/internal/middleware"
	"github.com/MassterJoe/developersFoundryAssignments/internal/models"
	"github.com/MassterJoe/developersFoundryAssignments/internal/service"
)

type TaskHandler struct {
	tasks *service.TaskService
	log   *logger.Logger
}

func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{
		tasks: tasks,
		log:   logger.New("task-handler"),
	}
}

type taskResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Task    *models.Task `json:"task"`
}

type tasksResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Tasks   []models.Task `json:"tasks"`
}

// Collection serves /api/tasks: create on POST, list on GET.
func (h *TaskHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed.")
	}
}

// Item serves the /api/tasks/ subtree: the search endpoint and the
// per-task get/update/delete routes.
func (h *TaskHandler) Item(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/tasks/")

	if rest == "x/search" {
		if r.Method != http.MethodGet {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed.")
			return
		}
		h.search(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.getByID(w, r, rest)
	case http.MethodPut:
		h.update(w, r, rest)
	case http.MethodDelete:
		h.delete(w, r, rest)
	default:
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed.")
	}
}

func (h *TaskHandler) create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	userID := middleware.GetUserID(r.Context())

	task, err := h.tasks.Create(r.Context(), userID, req)
	if err != nil {
		respondFailure(w, r, h.log, "Error creating task", err)
		return
	}

	respondJSON(w, http.StatusCreated, taskResponse{
		Status:  "success",
		Message: "Task created successfully!",
		Task:    task,
	})
}

func (h *TaskHandler) list(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	tasks, err := h.tasks.List(r.Context(), userID)
	if err != nil {
		respondFailure(w, r, h.log, "Error fetching tasks", err)
		return
	}

	respondJSON(w, http.StatusOK, tasksResponse{
		Status:  "success",
		Message: "Tasks fetched successfully.",
		Tasks:   tasks,
	})
}

func (h *TaskHandler) getByID(w http.ResponseWriter, r *http.Request, taskID string) {
	userID := middleware.GetUserID(r.Context())

	task, err := h.tasks.GetByID(r.Context(), userID, taskID)
	if err != nil {
		respondFailure(w, r, h.log, "Error fetching task by ID", err)
		return
	}

	respondJSON(w, http.StatusOK, taskResponse{
		Status:  "success",
		Message: "Task fetched successfully.",
		Task:    task,
	})
}

func (h *TaskHandler) update(w http.ResponseWriter, r *http.Request, taskID string) {
	var req models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	userID := middleware.GetUserID(r.Context())

	task, err := h.tasks.Update(r.Context(), userID, taskID, req)
	if err != nil {
		respondFailure(w, r, h.log, "Error updating task", err)
		return
	}

	respondJSON(w, http.StatusOK, taskResponse{
		Status:  "success",
		Message: "Task updated successfully.",
		Task:    task,
	})
}

func (h *TaskHandler) delete(w http.ResponseWriter, r *http.Request, taskID string) {
	userID := middleware.GetUserID(r.Context())

	if err := h.tasks.Delete(r.Context(), userID, taskID); err != nil {
		respondFailure(w, r, h.log, "Error deleting task", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Task deleted successfully.",
	})
}

func (h *TaskHandler) search(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	query := r.URL.Query().Get("query")

	tasks, err := h.tasks.Search(r.Context(), userID, query)
	if err != nil {
		respondFailure(w, r, h.log, "Error searching tasks", err)
		return
	}

	respondJSON(w, http.StatusOK, tasksResponse{
		Status:  "success",
		Message: "Tasks fetched successfully.",
		Tasks:   tasks,
	})
}
