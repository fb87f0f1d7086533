package storage

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MassterJoe/developersFoundryAssignments/internal/models"
)

// MemoryUserStore and MemoryTaskStore implement the store interfaces over
// maps. They back the service and handler tests.

type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]*models.User)}
}

func (s *MemoryUserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return ErrDuplicate
		}
	}

	user.ID = uuid.New().String()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *MemoryUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *MemoryUserStore) GetByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email || user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *MemoryUserStore) GetByID(ctx context.Context, userID string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

type MemoryTaskStore struct {
	mu    sync.RWMutex
	tasks map[string]*models.Task
	order []string
}

func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{tasks: make(map[string]*models.Task)}
}

func (s *MemoryTaskStore) Create(ctx context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = uuid.New().String()
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	copied := *task
	s.tasks[task.ID] = &copied
	s.order = append(s.order, task.ID)
	return nil
}

func (s *MemoryTaskStore) ListByUser(ctx context.Context, userID string) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tasks []models.Task
	for _, id := range s.order {
		if task, ok := s.tasks[id]; ok && task.UserID == userID {
			tasks = append(tasks, *task)
		}
	}
	return tasks, nil
}

func (s *MemoryTaskStore) GetByIDAndUser(ctx context.Context, taskID, userID string) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[taskID]
	if !ok || task.UserID != userID {
		return nil, nil
	}
	copied := *task
	return &copied, nil
}

func (s *MemoryTaskStore) GetByID(ctx context.Context, taskID string) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return nil, nil
	}
	copied := *task
	return &copied, nil
}

func (s *MemoryTaskStore) Update(ctx context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[task.ID]; !ok {
		return nil
	}

	task.UpdatedAt = time.Now()
	copied := *task
	s.tasks[task.ID] = &copied
	return nil
}

func (s *MemoryTaskStore) Delete(ctx context.Context, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tasks, taskID)
	for i, id := range s.order {
		if id == taskID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryTaskStore) Search(ctx context.Context, userID, query string) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(query)

	var tasks []models.Task
	for _, id := range s.order {
		task, ok := s.tasks[id]
		if !ok || task.UserID != userID {
			continue
		}
		if strings.Contains(strings.ToLower(task.Title), needle) ||
			strings.Contains(strings.ToLower(task.Description), needle) {
			tasks = append(tasks, *task)
		}
	}
	return tasks, nil
}
