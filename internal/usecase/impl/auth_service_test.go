package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service   usecase.AuthUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
	codec     *mockSvc.MockSessionCodec
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	codec := mockSvc.NewMockSessionCodec(t)

	service := NewAuthService(AuthServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Codec:     codec,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return authServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
		codec:     codec,
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				ExistsByUsernameOrEmail(ctx, input.Username, input.Email).
				Return(false, nil)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Username, output.User.Username)
	assert.Equal(t, input.Email, output.User.Email)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAuthService_Signup_DuplicateAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				ExistsByUsernameOrEmail(ctx, input.Username, input.Email).
				Return(true, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Signup(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Signup_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.SignupInput
	}{
		{
			name:  "missing username",
			input: &usecase.SignupInput{Email: "a@example.com", Password: "secret123"},
		},
		{
			name:  "missing email",
			input: &usecase.SignupInput{Username: "alice", Password: "secret123"},
		},
		{
			name:  "missing password",
			input: &usecase.SignupInput{Username: "alice", Email: "a@example.com"},
		},
		{
			name:  "password too short",
			input: &usecase.SignupInput{Username: "alice", Email: "a@example.com", Password: "12345"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			output, err := fx.service.Signup(context.Background(), tt.input)

			require.Error(t, err)
			assert.Nil(t, output)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed_password",
	}
	expiresAt := time.Now().Add(7 * 24 * time.Hour)

	fx.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed_password").Return(true)
	fx.codec.EXPECT().Encode(userID, "alice", "alice@example.com").Return("signed-token", expiresAt, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "alice", Password: "secret123"})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, expiresAt, output.ExpiresAt)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByUsernameOrEmail(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "ghost", Password: "whatever"})

	require.Error(t, err)
	assert.Nil(t, output)
	// Unknown account and wrong password must be indistinguishable.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_CurrentUser_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	session := &entity.Session{
		UserID:    userID,
		Username:  "alice",
		Email:     "alice@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{
		ID:       userID,
		Username: "alice",
		Email:    "alice@example.com",
	}, nil)

	user, err := fx.service.CurrentUser(ctx, session)

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "alice", user.Username)
}

func TestAuthService_CurrentUser_DeletedAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	session := &entity.Session{UserID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}

	fx.userRepo.EXPECT().FindByID(ctx, session.UserID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.CurrentUser(ctx, session)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthService_CurrentUser_NilSession(t *testing.T) {
	fx := createTestAuthService(t)

	user, err := fx.service.CurrentUser(context.Background(), nil)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}
