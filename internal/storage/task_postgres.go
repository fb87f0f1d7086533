package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/MassterJoe/developersFoundryAssignments/internal/database"
	"github.com/MassterJoe/developersFoundryAssignments/internal/models"
)

const taskColumns = "id, user_id, title, description, deadline, priority, status, created_at, updated_at"

type PostgresTaskStore struct {
	db *database.Manager
}

func NewPostgresTaskStore(db *database.Manager) *PostgresTaskStore {
	return &PostgresTaskStore{db: db}
}

func (s *PostgresTaskStore) Create(ctx context.Context, task *models.Task) error {
	task.ID = uuid.New().String()
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	query := `
		INSERT INTO tasks (id, user_id, title, description, deadline, priority, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.db.Pool().Exec(ctx, query,
		task.ID,
		task.UserID,
		task.Title,
		task.Description,
		task.Deadline,
		task.Priority,
		task.Status,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

func (s *PostgresTaskStore) ListByUser(ctx context.Context, userID string) ([]models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1`

	rows, err := s.db.Pool().Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (s *PostgresTaskStore) GetByIDAndUser(ctx context.Context, taskID, userID string) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND user_id = $2`

	return scanTask(s.db.Pool().QueryRow(ctx, query, taskID, userID))
}

func (s *PostgresTaskStore) GetByID(ctx context.Context, taskID string) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	return scanTask(s.db.Pool().QueryRow(ctx, query, taskID))
}

func (s *PostgresTaskStore) Update(ctx context.Context, task *models.Task) error {
	task.UpdatedAt = time.Now()

	query := `
		UPDATE tasks
		SET title = $1, description = $2, deadline = $3, priority = $4, status = $5, updated_at = $6
		WHERE id = $7
	`

	_, err := s.db.Pool().Exec(ctx, query,
		task.Title,
		task.Description,
		task.Deadline,
		task.Priority,
		task.Status,
		task.UpdatedAt,
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

func (s *PostgresTaskStore) Delete(ctx context.Context, taskID string) error {
	_, err := s.db.Pool().Exec(ctx, `DELETE FROM tasks WHERE id = $1`, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

func (s *PostgresTaskStore) Search(ctx context.Context, userID, search string) ([]models.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE user_id = $1 AND (title ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%')
	`

	rows, err := s.db.Pool().Query(ctx, query, userID, search)
	if err != nil {
		return nil, fmt.Errorf("failed to search tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

func scanTask(row pgx.Row) (*models.Task, error) {
	var task models.Task
	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Deadline,
		&task.Priority,
		&task.Status,
		&task.CreatedAt,
		&task.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return &task, nil
}

func scanTasks(rows pgx.Rows) ([]models.Task, error) {
	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		err := rows.Scan(
			&task.ID,
			&task.UserID,
			&task.Title,
			&task.Description,
			&task.Deadline,
			&task.Priority,
			&task.Status,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}

	return tasks, nil
}
