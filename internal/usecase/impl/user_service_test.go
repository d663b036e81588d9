package impl

import (
	"context"
	"testing"

	"parfum/internal/domain/entity"
	domainerrors "parfum/internal/domain/errors"
	"parfum/internal/domain/repository"
	mockRepo "parfum/internal/mocks/repository"
	mockSvc "parfum/internal/mocks/service"
	"parfum/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserService(t *testing.T) (
	usecase.UserUsecase,
	*mockRepo.MockUserRepository,
	*mockSvc.MockPasswordHasher,
	*mockSvc.MockTokenService,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       discardLogger(),
	})

	return service, userRepo, hasher, tokenSvc
}

func TestUserService_Register_Success(t *testing.T) {
	service, userRepo, hasher, _ := createTestUserService(t)
	ctx := context.Background()

	hasher.On("Hash", "hunter2hunter2").Return("$2a$10$hash", nil)
	userRepo.On("Create", ctx, mock.MatchedBy(func(user *entity.User) bool {
		return user.Name == "iris" && user.Role == entity.RoleUser && user.PasswordHash == "$2a$10$hash"
	})).Return(nil)

	output, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     " iris ",
		Email:    "iris@example.com",
		Password: "hunter2hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, "iris", output.User.Name, "name should be trimmed")
	assert.Equal(t, entity.RoleUser, output.User.Role)
}

func TestUserService_Register_DuplicateName(t *testing.T) {
	service, userRepo, hasher, _ := createTestUserService(t)
	ctx := context.Background()

	hasher.On("Hash", mock.Anything).Return("$2a$10$hash", nil)
	userRepo.On("Create", ctx, mock.Anything).
		Return(domainerrors.ErrUserAlreadyExists)

	_, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "iris",
		Email:    "iris@example.com",
		Password: "hunter2hunter2",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "USER_ALREADY_EXISTS", appErr.ErrorCode())
}

func TestUserService_Register_MissingFields(t *testing.T) {
	service, _, _, _ := createTestUserService(t)

	_, err := service.Register(context.Background(), &usecase.RegisterInput{Name: " "})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestUserService_Login_Success(t *testing.T) {
	service, userRepo, hasher, tokenSvc := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{ID: userID, Name: "iris", Role: entity.RoleUser, PasswordHash: "$2a$10$hash"}
	userRepo.On("FindByName", ctx, "iris").Return(user, nil)
	hasher.On("Check", "hunter2hunter2", "$2a$10$hash").Return(true)
	tokenSvc.On("GenerateToken", userID, entity.RoleUser).Return("signed.jwt.token", nil)

	output, err := service.Login(ctx, &usecase.LoginInput{Name: "iris", Password: "hunter2hunter2"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_UnknownName(t *testing.T) {
	service, userRepo, _, _ := createTestUserService(t)
	ctx := context.Background()

	userRepo.On("FindByName", ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := service.Login(ctx, &usecase.LoginInput{Name: "ghost", Password: "whatever"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	service, userRepo, hasher, _ := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Name: "iris", PasswordHash: "$2a$10$hash"}
	userRepo.On("FindByName", ctx, "iris").Return(user, nil)
	hasher.On("Check", "wrong", "$2a$10$hash").Return(false)

	_, err := service.Login(ctx, &usecase.LoginInput{Name: "iris", Password: "wrong"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Profile_NotFound(t *testing.T) {
	service, userRepo, _, _ := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := service.Profile(ctx, userID)

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
