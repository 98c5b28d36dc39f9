package impl

import (
	"context"
	"testing"

	"organico/internal/domain/entity"
	domainerrors "organico/internal/domain/errors"
	"organico/internal/domain/repository"
	"organico/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register_Consumer(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Password: "Password123!",
		UserType: entity.UserTypeConsumer,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			assert.Equal(t, "hashed_password", user.PasswordHash)
			assert.Nil(t, user.ProducerProfile)
			user.ID = uuid.New()
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), []string{entity.UserTypeConsumer}).
		Return("access_token", "refresh_token", nil)

	output, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, input.Email, output.User.Email)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

// A producer registration provisions the producer profile in the same write,
// defaulting the business name to the account name when none is given.
func TestUserService_Register_ProducerProvisionsProfile(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Sítio Boa Terra",
		Email:    "sitio@example.com",
		Password: "Password123!",
		UserType: entity.UserTypeProducer,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			require.NotNil(t, user.ProducerProfile)
			assert.Equal(t, "Sítio Boa Terra", user.ProducerProfile.BusinessName)
			assert.True(t, user.ProducerProfile.IsActive)
			assert.False(t, user.ProducerProfile.IsVerified)
			user.ID = uuid.New()
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), []string{entity.UserTypeProducer}).
		Return("access_token", "refresh_token", nil)

	output, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.True(t, output.User.IsProducer())
}

func TestUserService_Register_ExplicitBusinessName(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:         "João",
		Email:        "joao@example.com",
		Password:     "Password123!",
		UserType:     entity.UserTypeProducer,
		BusinessName: "Orgânicos do João",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			require.NotNil(t, user.ProducerProfile)
			assert.Equal(t, "Orgânicos do João", user.ProducerProfile.BusinessName)
			user.ID = uuid.New()
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateTokens(mock.Anything, mock.Anything).
		Return("access_token", "refresh_token", nil)

	_, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
}

func TestUserService_Register_InvalidUserType(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Maria",
		Email:    "maria@example.com",
		Password: "Password123!",
		UserType: "ADMIN",
	}

	output, err := fx.service.Register(ctx, input)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Maria",
		Email:    "maria@example.com",
		Password: "Password123!",
		UserType: entity.UserTypeConsumer,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(repository.ErrEmailTaken)

	output, err := fx.service.Register(ctx, input)
	assert.Nil(t, output)
	require.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "maria@example.com",
		UserType:     entity.UserTypeConsumer,
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, []string{entity.UserTypeConsumer}).
		Return("access_token", "refresh_token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123!"})
	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, "access_token", output.AccessToken)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "maria@example.com", PasswordHash: "hashed_password"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})
	assert.Nil(t, output)
	assert.Equal(t, domainerrors.ErrInvalidCredentials, err)
}

// An unknown email resolves to the same error as a wrong password, so the
// endpoint does not leak which accounts exist.
func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "x"})
	assert.Nil(t, output)
	assert.Equal(t, domainerrors.ErrInvalidCredentials, err)
}

func refreshTokenFor(userID uuid.UUID) *jwt.Token {
	return &jwt.Token{
		Valid:  true,
		Claims: jwt.MapClaims{"sub": userID.String(), "type": "refresh"},
	}
}

func TestUserService_Refresh_MintsNewPair(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "ana@sitio.com", UserType: entity.UserTypeProducer}

	fx.tokenService.EXPECT().
		ValidateToken("old-refresh-token", "refresh-secret").
		Return(refreshTokenFor(userID), nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(user, nil)

	fx.tokenService.EXPECT().
		GenerateTokens(userID, []string{entity.UserTypeProducer}).
		Return("new-access", "new-refresh", nil)

	output, err := fx.service.Refresh(ctx, "old-refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

// An access token must not pass as a refresh token even when its signature
// would verify: the type claim is checked.
func TestUserService_Refresh_RejectsAccessToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateToken("an-access-token", "refresh-secret").
		Return(&jwt.Token{
			Valid:  true,
			Claims: jwt.MapClaims{"sub": userID.String(), "type": "access"},
		}, nil)

	output, err := fx.service.Refresh(ctx, "an-access-token")
	assert.Nil(t, output)
	assert.Equal(t, domainerrors.ErrInvalidRefreshToken, err)
}

func TestUserService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("garbage", "refresh-secret").
		Return(nil, jwt.ErrTokenMalformed)

	output, err := fx.service.Refresh(ctx, "garbage")
	assert.Nil(t, output)
	assert.Equal(t, domainerrors.ErrInvalidRefreshToken, err)
}

func TestUserService_Refresh_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateToken("orphaned-token", "refresh-secret").
		Return(refreshTokenFor(userID), nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Refresh(ctx, "orphaned-token")
	assert.Nil(t, output)
	assert.Equal(t, domainerrors.ErrInvalidRefreshToken, err)
}

func TestUserService_GetMe(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Name: "Ana", Email: "ana@sitio.com"}

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(user, nil)

	result, err := fx.service.GetMe(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, user, result)
}

func TestUserService_UpdateMe_PartialMerge(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	phone := "+55 41 99999-0000"

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{
			ID:       userID,
			Name:     "Ana",
			Email:    "ana@sitio.com",
			UserType: entity.UserTypeConsumer,
		}, nil)

	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			assert.Equal(t, "Ana", user.Name, "unset field must stay")
			assert.Equal(t, phone, user.Phone)
			assert.Equal(t, "ana@sitio.com", user.Email, "email is not editable here")
		}).
		Return(nil)

	result, err := fx.service.UpdateMe(ctx, userID, &usecase.UpdateUserInput{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, result.Phone)
}

func TestUserService_UpdateMe_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	result, err := fx.service.UpdateMe(ctx, userID, &usecase.UpdateUserInput{})
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrNotFound, err)
}
