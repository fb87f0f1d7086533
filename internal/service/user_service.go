package service

import (
	"context"

	"github.com/MassterJoe/developersFoundryAssignments/internal/apperr"
	"github.com/MassterJoe/developersFoundryAssignments/internal/auth"
	"github.com/MassterJoe/developersFoundryAssignments/internal/models"
	"github.com/MassterJoe/developersFoundryAssignments/internal/storage"
	"github.com/MassterJoe/developersFoundryAssignments/internal/validation"
)

const (
	msgDuplicateUser = "A user with this email or username already exists. Please try a different one."
	// Unknown email and wrong password produce the same message so callers
	// cannot probe which emails are registered.
	msgInvalidCredentials = "Invalid credentials. Please check your email or password."
	msgUserNotFound       = "User not found. Please log in again."
)

type UserService struct {
	users      storage.UserStore
	tasks      storage.TaskStore
	jwtManager *auth.JWTManager
}

func NewUserService(users storage.UserStore, tasks storage.TaskStore, jwtManager *auth.JWTManager) *UserService {
	return &UserService{
		users:      users,
		tasks:      tasks,
		jwtManager: jwtManager,
	}
}

// Register creates a user. The password is hashed here, before anything is
// handed to the store; the plaintext is never persisted.
func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if err := validation.ValidateRegistration(req.Name, req.Username, req.Email, req.Password); err != nil {
		return nil, apperr.New(apperr.KindValidation, err.Error())
	}

	existing, err := s.users.GetByEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to check existing user", err)
	}
	if existing != nil {
		return nil, apperr.New(apperr.KindDuplicate, msgDuplicateUser)
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to hash password", err)
	}

	user := &models.User{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// The unique constraint backstops the pre-check under concurrent
		// registrations.
		if err == storage.ErrDuplicate {
			return nil, apperr.New(apperr.KindDuplicate, msgDuplicateUser)
		}
		return nil, apperr.Wrap(apperr.KindInternal, "failed to create user", err)
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error) {
	if err := validation.ValidateLogin(req.Email, req.Password); err != nil {
		return nil, apperr.New(apperr.KindValidation, err.Error())
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to get user", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.KindInvalidCredentials, msgInvalidCredentials)
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		return nil, apperr.New(apperr.KindInvalidCredentials, msgInvalidCredentials)
	}

	token, _, err := s.jwtManager.GenerateToken(user.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to generate token", err)
	}

	return &models.LoginResult{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
	}, nil
}

// GetProfile returns the user behind a verified token with its owned tasks
// expanded inline.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.UserWithTasks, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to get user", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.KindNotFound, msgUserNotFound)
	}

	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list tasks", err)
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	user.PasswordHash = ""
	return &models.UserWithTasks{User: *user, Tasks: tasks}, nil
}
