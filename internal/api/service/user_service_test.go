package service

import (
	"context"
	"testing"

	"ctchen222/studio-backend/internal/api/apperrors"
	"ctchen222/studio-backend/internal/api/models"
	"ctchen222/studio-backend/internal/api/repository/mocks"
	"ctchen222/studio-backend/internal/auth"
	"ctchen222/studio-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestUserService(t *testing.T) (UserService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, &config.Config{SecretKey: "test-secret"})
	return svc, repo
}

func TestRegister_HashesAndPersists(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, apperrors.ErrNotFound)

	var created *models.User
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *models.User) error {
			created = u
			return nil
		})

	err := svc.Register(ctx, &models.RegisterRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "alice", created.Username)
	assert.NotEqual(t, "pw1", created.PasswordHash)

	cost, err := bcrypt.Cost([]byte(created.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("pw1")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("pw2")))
}

func TestRegister_Duplicate(t *testing.T) {
	svc, repo := newTestUserService(t)

	existing := &models.User{ID: "1", Username: "alice", PasswordHash: "x"}
	repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(existing, nil)

	err := svc.Register(context.Background(), &models.RegisterRequest{Username: "alice", Password: "pw1"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateUser)
}

func TestRegister_EmptyCredentials(t *testing.T) {
	svc, _ := newTestUserService(t)

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{name: "empty username", req: models.RegisterRequest{Password: "pw1"}},
		{name: "empty password", req: models.RegisterRequest{Username: "alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Register(context.Background(), &tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestLogin_ReturnsVerifiableToken(t *testing.T) {
	svc, repo := newTestUserService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcryptCost)
	require.NoError(t, err)

	repo.EXPECT().GetByUsername(gomock.Any(), "alice").
		Return(&models.User{ID: "1", Username: "alice", PasswordHash: string(hash)}, nil)

	token, err := svc.Login(context.Background(), &models.LoginRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := auth.VerifyToken(token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

// Unknown usernames and wrong passwords must be indistinguishable to the
// caller.
func TestLogin_FailuresAreUniform(t *testing.T) {
	svc, repo := newTestUserService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcryptCost)
	require.NoError(t, err)

	repo.EXPECT().GetByUsername(gomock.Any(), "nobody").Return(nil, apperrors.ErrNotFound)
	repo.EXPECT().GetByUsername(gomock.Any(), "alice").
		Return(&models.User{ID: "1", Username: "alice", PasswordHash: string(hash)}, nil)

	_, errUnknown := svc.Login(context.Background(), &models.LoginRequest{Username: "nobody", Password: "pw1"})
	_, errWrongPw := svc.Login(context.Background(), &models.LoginRequest{Username: "alice", Password: "pw2"})

	assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestLogin_WrongSecretRejectsToken(t *testing.T) {
	svc, repo := newTestUserService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcryptCost)
	require.NoError(t, err)

	repo.EXPECT().GetByUsername(gomock.Any(), "alice").
		Return(&models.User{ID: "1", Username: "alice", PasswordHash: string(hash)}, nil)

	token, err := svc.Login(context.Background(), &models.LoginRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)

	_, err = auth.VerifyToken(token, []byte("another-secret"))
	assert.Error(t, err)
}
