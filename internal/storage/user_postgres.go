package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MassterJoe/developersFoundryAssignments/internal/database"
	"github.com/MassterJoe/developersFoundryAssignments/internal/models"
)

type PostgresUserStore struct {
	db *database.Manager
}

func NewPostgresUserStore(db *database.Manager) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

func (s *PostgresUserStore) Create(ctx context.Context, user *models.User) error {
	user.ID = uuid.New().String()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, name, username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.Pool().Exec(ctx, query,
		user.ID,
		user.Name,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	return s.scanUser(s.db.Pool().QueryRow(ctx, query, email))
}

func (s *PostgresUserStore) GetByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	query := `
		SELECT id, name, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1 OR username = $2
	`

	return s.scanUser(s.db.Pool().QueryRow(ctx, query, email, username))
}

func (s *PostgresUserStore) GetByID(ctx context.Context, userID string) (*models.User, error) {
	query := `
		SELECT id, name, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	return s.scanUser(s.db.Pool().QueryRow(ctx, query, userID))
}

func (s *PostgresUserStore) scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
