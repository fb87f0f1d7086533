package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MassterJoe/developersFoundryAssignments/internal/apperr"
	"github.com/MassterJoe/developersFoundryAssignments/internal/models"
	"github.com/MassterJoe/developersFoundryAssignments/internal/storage"
)

const (
	ownerID  = "0b8f5f4e-7b84-4c3e-9a3f-2f1f8b6de111"
	otherID  = "1c9f6f5f-8c95-5d4f-ab40-301f9c7ef222"
	randomID = "2daf7060-9da6-6e50-bc51-4120ad80f333"
)

func newTaskService() *TaskService {
	return NewTaskService(storage.NewMemoryTaskStore())
}

func createTask(t *testing.T, svc *TaskService, userID string) *models.Task {
	t.Helper()
	task, err := svc.Create(context.Background(), userID, models.CreateTaskRequest{
		Title:    "T",
		Deadline: "2025-01-01",
	})
	require.NoError(t, err)
	return task
}

func TestCreate_Defaults(t *testing.T) {
	svc := newTaskService()

	task := createTask(t, svc, ownerID)
	require.Equal(t, models.StatusPending, task.Status)
	require.Equal(t, models.PriorityMedium, task.Priority)
	require.Equal(t, ownerID, task.UserID)
	require.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), task.Deadline)
	require.NotEmpty(t, task.ID)
}

func TestCreate_Validation(t *testing.T) {
	svc := newTaskService()

	cases := []models.CreateTaskRequest{
		{Deadline: "2025-01-01"},
		{Title: "T"},
		{Title: "T", Deadline: "soon"},
		{Title: "T", Deadline: "2025-01-01", Priority: "urgent"},
		{Title: "T", Deadline: "2025-01-01", Status: "done"},
	}

	for i, req := range cases {
		_, err := svc.Create(context.Background(), ownerID, req)
		require.Equal(t, apperr.KindValidation, apperr.KindOf(err), "case %d", i)
	}
}

func TestList(t *testing.T) {
	svc := newTaskService()

	_, err := svc.List(context.Background(), ownerID)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err), "no tasks yet reads as the empty-result signal")

	createTask(t, svc, ownerID)
	createTask(t, svc, otherID)

	tasks, err := svc.List(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, tasks, 1, "must only see own tasks")
}

func TestGetByID(t *testing.T) {
	svc := newTaskService()
	task := createTask(t, svc, ownerID)

	got, err := svc.GetByID(context.Background(), ownerID, task.ID)
	require.NoError(t, err)
	require.Equal(t, task.ID, got.ID)
}

func TestGetByID_MalformedID(t *testing.T) {
	svc := newTaskService()

	_, err := svc.GetByID(context.Background(), ownerID, "not-a-uuid")
	require.Equal(t, apperr.KindInvalidID, apperr.KindOf(err))
}

// A task owned by someone else reads as NotFound on getById: the lookup is
// owner-scoped, so foreign and missing tasks are indistinguishable.
func TestGetByID_ForeignTaskIsNotFound(t *testing.T) {
	svc := newTaskService()
	task := createTask(t, svc, otherID)

	_, err := svc.GetByID(context.Background(), ownerID, task.ID)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUpdate_PartialLeavesOtherFieldsAlone(t *testing.T) {
	svc := newTaskService()
	task, err := svc.Create(context.Background(), ownerID, models.CreateTaskRequest{
		Title:       "T",
		Description: "original description",
		Deadline:    "2025-01-01",
		Priority:    "high",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), ownerID, task.ID, models.UpdateTaskRequest{
		Status: models.StatusCompleted,
	})
	require.NoError(t, err)

	require.Equal(t, models.StatusCompleted, updated.Status)
	require.Equal(t, "T", updated.Title)
	require.Equal(t, "original description", updated.Description)
	require.Equal(t, task.Deadline, updated.Deadline)
	require.Equal(t, "high", updated.Priority)
}

func TestUpdate_MalformedID(t *testing.T) {
	svc := newTaskService()

	_, err := svc.Update(context.Background(), ownerID, "12345", models.UpdateTaskRequest{Status: "completed"})
	require.Equal(t, apperr.KindInvalidID, apperr.KindOf(err))
}

func TestUpdate_MissingTask(t *testing.T) {
	svc := newTaskService()

	_, err := svc.Update(context.Background(), ownerID, randomID, models.UpdateTaskRequest{Status: "completed"})
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

// Update checks existence before ownership: a foreign task that exists is
// Forbidden, unlike getById where it reads as NotFound.
func TestUpdate_ForeignTaskIsForbidden(t *testing.T) {
	svc := newTaskService()
	task := createTask(t, svc, otherID)

	_, err := svc.Update(context.Background(), ownerID, task.ID, models.UpdateTaskRequest{Status: "completed"})
	require.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestUpdate_InvalidEnum(t *testing.T) {
	svc := newTaskService()
	task := createTask(t, svc, ownerID)

	_, err := svc.Update(context.Background(), ownerID, task.ID, models.UpdateTaskRequest{Priority: "urgent"})
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestDelete(t *testing.T) {
	svc := newTaskService()
	task := createTask(t, svc, ownerID)

	require.NoError(t, svc.Delete(context.Background(), ownerID, task.ID))

	// Second delete: the task is gone.
	err := svc.Delete(context.Background(), ownerID, task.ID)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDelete_ForeignTaskIsForbidden(t *testing.T) {
	svc := newTaskService()
	task := createTask(t, svc, otherID)

	err := svc.Delete(context.Background(), ownerID, task.ID)
	require.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	// The owner can still read it afterwards.
	got, err := svc.GetByID(context.Background(), otherID, task.ID)
	require.NoError(t, err)
	require.Equal(t, task.ID, got.ID)
}

func TestSearch(t *testing.T) {
	svc := newTaskService()

	_, err := svc.Create(context.Background(), ownerID, models.CreateTaskRequest{
		Title:    "Tidy the garage",
		Deadline: "2025-01-01",
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), ownerID, models.CreateTaskRequest{
		Title:       "Pay bills",
		Description: "Electricity and water",
		Deadline:    "2025-01-01",
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), otherID, models.CreateTaskRequest{
		Title:    "Tidy the attic",
		Deadline: "2025-01-01",
	})
	require.NoError(t, err)

	// Case-insensitive, matches title.
	tasks, err := svc.Search(context.Background(), ownerID, "tidy")
	require.NoError(t, err)
	require.Len(t, tasks, 1, "must not see the other user's match")

	// Matches description.
	tasks, err = svc.Search(context.Background(), ownerID, "WATER")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "Pay bills", tasks[0].Title)
}

func TestSearch_EmptyQuery(t *testing.T) {
	svc := newTaskService()

	_, err := svc.Search(context.Background(), ownerID, "")
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestSearch_NoMatches(t *testing.T) {
	svc := newTaskService()
	createTask(t, svc, ownerID)

	_, err := svc.Search(context.Background(), ownerID, "nonexistent")
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
