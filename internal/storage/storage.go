// Package storage persists users and tasks. Lookups that find nothing return
// (nil, nil); ownership is not enforced here, that is the services' job.
package storage

import (
	"context"
	"errors"

	"github.com/MassterJoe/developersFoundryAssignments/internal/models"
)

// ErrDuplicate reports a username/email uniqueness violation.
var ErrDuplicate = errors.New("duplicate username or email")

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
}

type TaskStore interface {
	Create(ctx context.Context, task *models.Task) error
	ListByUser(ctx context.Context, userID string) ([]models.Task, error)
	// GetByIDAndUser scopes the lookup to the owner in a single query, so a
	// foreign task is indistinguishable from a missing one.
	GetByIDAndUser(ctx context.Context, taskID, userID string) (*models.Task, error)
	GetByID(ctx context.Context, taskID string) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, taskID string) error
	Search(ctx context.Context, userID, query string) ([]models.Task, error)
}
