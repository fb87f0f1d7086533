package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MassterJoe/developersFoundryAssignments/internal/apperr"
	"github.com/MassterJoe/developersFoundryAssignments/internal/models"
	"github.com/MassterJoe/developersFoundryAssignments/internal/storage"
)

func newUserService() (*UserService, *storage.MemoryUserStore) {
	users := storage.NewMemoryUserStore()
	tasks := storage.NewMemoryTaskStore()
	jwtManager := newTestJWTManager()
	return NewUserService(users, tasks, jwtManager), users
}

func registerReq() models.RegisterRequest {
	return models.RegisterRequest{
		Name:     "A",
		Username: "a1",
		Email:    "a@x.com",
		Password: "secret1",
	}
}

func TestRegister_Success(t *testing.T) {
	svc, users := newUserService()

	user, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "a1", user.Username)
	require.Empty(t, user.PasswordHash, "summary must not carry the hash")

	stored, err := users.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotEqual(t, "secret1", stored.PasswordHash, "plaintext must never be stored")
	require.NotEmpty(t, stored.PasswordHash)
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newUserService()

	cases := []models.RegisterRequest{
		{Username: "a1", Email: "a@x.com", Password: "secret1"},
		{Name: "A", Username: "a1", Email: "a@x.com", Password: "123"},
		{Name: "A", Username: "ab", Email: "a@x.com", Password: "secret1"},
		{Name: "A", Username: "a1", Email: "not-an-email", Password: "secret1"},
	}

	for _, req := range cases {
		_, err := svc.Register(context.Background(), req)
		require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	again := registerReq()
	again.Username = "different"
	_, err = svc.Register(context.Background(), again)
	require.Equal(t, apperr.KindDuplicate, apperr.KindOf(err))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	again := registerReq()
	again.Email = "other@x.com"
	_, err = svc.Register(context.Background(), again)
	require.Equal(t, apperr.KindDuplicate, apperr.KindOf(err))
}

func TestLogin_RoundTrip(t *testing.T) {
	svc, _ := newUserService()

	registered, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.Equal(t, registered.ID, result.UserID)
	require.Equal(t, "a1", result.Username)
}

func TestLogin_FailureCausesIndistinguishable(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, wrongPassword := svc.Login(context.Background(), models.LoginRequest{
		Email:    "a@x.com",
		Password: "wrong-password",
	})
	_, unknownEmail := svc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@x.com",
		Password: "secret1",
	})

	require.Equal(t, apperr.KindInvalidCredentials, apperr.KindOf(wrongPassword))
	require.Equal(t, apperr.KindInvalidCredentials, apperr.KindOf(unknownEmail))
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "a@x.com"})
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestGetProfile(t *testing.T) {
	users := storage.NewMemoryUserStore()
	tasks := storage.NewMemoryTaskStore()
	svc := NewUserService(users, tasks, newTestJWTManager())

	registered, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	taskSvc := NewTaskService(tasks)
	created, err := taskSvc.Create(context.Background(), registered.ID, models.CreateTaskRequest{
		Title:    "T",
		Deadline: "2025-01-01",
	})
	require.NoError(t, err)

	profile, err := svc.GetProfile(context.Background(), registered.ID)
	require.NoError(t, err)
	require.Equal(t, "a1", profile.Username)
	require.Empty(t, profile.PasswordHash)
	require.Len(t, profile.Tasks, 1)
	require.Equal(t, created.ID, profile.Tasks[0].ID)
}

func TestGetProfile_UnknownUser(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.GetProfile(context.Background(), "e5c1dd6a-0a57-4395-b5fb-9b2a4b2e34ba")
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestGetProfile_NoTasksYieldsEmptySlice(t *testing.T) {
	svc, _ := newUserService()

	registered, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	profile, err := svc.GetProfile(context.Background(), registered.ID)
	require.NoError(t, err)
	require.NotNil(t, profile.Tasks)
	require.Empty(t, profile.Tasks)
}
