package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/MassterJoe/developersFoundryAssignments/internal/apperr"
	"github.com/MassterJoe/developersFoundryAssignments/internal/models"
	"github.com/MassterJoe/developersFoundryAssignments/internal/storage"
	"github.com/MassterJoe/developersFoundryAssignments/internal/validation"
)

const (
	msgInvalidTaskID     = "Invalid task ID format."
	msgTaskNotFound      = "Task not found."
	msgTaskNotFoundOwned = "Task not found or not authorized to view this task."
	msgNoTasks           = "No tasks found for this user."
	msgNoSearchResults   = "No tasks found matching the search criteria."
	msgMissingQuery      = "Search query is required."
	msgForbiddenUpdate   = "You are not authorized to update this task."
	msgForbiddenDelete   = "You are not authorized to delete this task."
)

type TaskService struct {
	tasks storage.TaskStore
}

func NewTaskService(tasks storage.TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) Create(ctx context.Context, userID string, req models.CreateTaskRequest) (*models.Task, error) {
	if err := validation.ValidateTitle(req.Title); err != nil {
		return nil, apperr.New(apperr.KindValidation, err.Error())
	}
	if err := validation.ValidateDescription(req.Description); err != nil {
		return nil, apperr.New(apperr.KindValidation, err.Error())
	}

	deadline, err := validation.ParseDeadline(req.Deadline)
	if err != nil {
		return nil, apperr.New(apperr.KindValidation, err.Error())
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if err := validation.ValidatePriority(priority); err != nil {
		return nil, apperr.New(apperr.KindValidation, err.Error())
	}

	status := req.Status
	if status == "" {
		status = models.StatusPending
	}
	if err := validation.ValidateStatus(status); err != nil {
		return nil, apperr.New(apperr.KindValidation, err.Error())
	}

	task := &models.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Deadline:    deadline,
		Priority:    priority,
		Status:      status,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to create task", err)
	}

	return task, nil
}

// List returns the caller's tasks. Zero tasks is reported as a not-found
// condition with its own message, so clients can tell "no tasks yet" from a
// real failure.
func (s *TaskService) List(ctx context.Context, userID string) ([]models.Task, error) {
	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list tasks", err)
	}
	if len(tasks) == 0 {
		return nil, apperr.New(apperr.KindNotFound, msgNoTasks)
	}

	return tasks, nil
}

// GetByID looks the task up scoped to the owner in one query. A task owned by
// someone else therefore reads as not found, never as forbidden.
func (s *TaskService) GetByID(ctx context.Context, userID, taskID string) (*models.Task, error) {
	if _, err := uuid.Parse(taskID); err != nil {
		return nil, apperr.New(apperr.KindInvalidID, msgInvalidTaskID)
	}

	task, err := s.tasks.GetByIDAndUser(ctx, taskID, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to get task", err)
	}
	if task == nil {
		return nil, apperr.New(apperr.KindNotFound, msgTaskNotFoundOwned)
	}

	return task, nil
}

// Update checks existence before ownership: a missing task is NotFound even
// for a non-owner, while an existing foreign task is Forbidden. Provided
// fields overwrite stored ones; empty fields are left unchanged, which also
// means a field cannot be cleared to empty here (known limitation).
func (s *TaskService) Update(ctx context.Context, userID, taskID string, req models.UpdateTaskRequest) (*models.Task, error) {
	if _, err := uuid.Parse(taskID); err != nil {
		return nil, apperr.New(apperr.KindInvalidID, msgInvalidTaskID)
	}

	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to get task", err)
	}
	if task == nil {
		return nil, apperr.New(apperr.KindNotFound, msgTaskNotFound)
	}
	if task.UserID != userID {
		return nil, apperr.New(apperr.KindForbidden, msgForbiddenUpdate)
	}

	if req.Title != "" {
		if err := validation.ValidateTitle(req.Title); err != nil {
			return nil, apperr.New(apperr.KindValidation, err.Error())
		}
		task.Title = req.Title
	}
	if req.Description != "" {
		if err := validation.ValidateDescription(req.Description); err != nil {
			return nil, apperr.New(apperr.KindValidation, err.Error())
		}
		task.Description = req.Description
	}
	if req.Deadline != "" {
		deadline, err := validation.ParseDeadline(req.Deadline)
		if err != nil {
			return nil, apperr.New(apperr.KindValidation, err.Error())
		}
		task.Deadline = deadline
	}
	if req.Priority != "" {
		if err := validation.ValidatePriority(req.Priority); err != nil {
			return nil, apperr.New(apperr.KindValidation, err.Error())
		}
		task.Priority = req.Priority
	}
	if req.Status != "" {
		if err := validation.ValidateStatus(req.Status); err != nil {
			return nil, apperr.New(apperr.KindValidation, err.Error())
		}
		task.Status = req.Status
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to update task", err)
	}

	return task, nil
}

// Delete follows the same existence-then-ownership order as Update. The id is
// not shape-checked first: a malformed id simply fails the lookup, matching
// the original API.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	if _, err := uuid.Parse(taskID); err != nil {
		return apperr.New(apperr.KindNotFound, msgTaskNotFound)
	}

	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to get task", err)
	}
	if task == nil {
		return apperr.New(apperr.KindNotFound, msgTaskNotFound)
	}
	if task.UserID != userID {
		return apperr.New(apperr.KindForbidden, msgForbiddenDelete)
	}

	if err := s.tasks.Delete(ctx, taskID); err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to delete task", err)
	}

	return nil
}

func (s *TaskService) Search(ctx context.Context, userID, query string) ([]models.Task, error) {
	if query == "" {
		return nil, apperr.New(apperr.KindValidation, msgMissingQuery)
	}

	tasks, err := s.tasks.Search(ctx, userID, query)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to search tasks", err)
	}
	if len(tasks) == 0 {
		return nil, apperr.New(apperr.KindNotFound, msgNoSearchResults)
	}

	return tasks, nil
}
