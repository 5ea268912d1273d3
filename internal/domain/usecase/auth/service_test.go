package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/marketpay/marketpay/internal/domain/entity"
	errs "github.com/marketpay/marketpay/internal/domain/error"
	"github.com/marketpay/marketpay/internal/domain/port/gateway"
	"github.com/marketpay/marketpay/internal/domain/port/security"
	coremocks "github.com/marketpay/marketpay/mocks/port/core"
	gatewaymocks "github.com/marketpay/marketpay/mocks/port/gateway"
	persistencemocks "github.com/marketpay/marketpay/mocks/port/persistence"
	securitymocks "github.com/marketpay/marketpay/mocks/port/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMocks struct {
	userRepo *persistencemocks.MockUserRepository
	gateway  *gatewaymocks.MockPaymentGateway
	hasher   *securitymocks.MockPasswordHasher
	tokens   *securitymocks.MockTokenIssuer
	time     *coremocks.MockTimeProvider
	logger   *coremocks.MockLogger
}

func newAuthService(t *testing.T) (*Service, *authMocks) {
	m := &authMocks{
		userRepo: persistencemocks.NewMockUserRepository(t),
		gateway:  gatewaymocks.NewMockPaymentGateway(t),
		hasher:   securitymocks.NewMockPasswordHasher(t),
		tokens:   securitymocks.NewMockTokenIssuer(t),
		time:     coremocks.NewMockTimeProvider(t),
		logger:   coremocks.NewMockLogger(t),
	}
	svc := NewService(m.userRepo, m.gateway, m.hasher, m.tokens, m.time, m.logger)
	return svc, m
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	req := RegisterRequest{
		Email:     "Alice@Example.com",
		Password:  "s3cret-password",
		FirstName: "Alice",
		LastName:  "Smith",
	}

	t.Run("Successful registration", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(nil, errs.ErrUserNotFound).Once()
		m.hasher.EXPECT().Hash("s3cret-password").Return("$2a$10$hash", nil).Once()
		m.gateway.EXPECT().CreateAccount(mock.Anything, gateway.AccountProfile{
			Email:     "alice@example.com",
			FirstName: "Alice",
			LastName:  "Smith",
		}).Return("acct_123", nil).Once()
		m.time.EXPECT().Now().Return(fixedTime).Maybe()
		m.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.Email == "alice@example.com" && user.ProviderAccountID == "acct_123"
		})).Run(func(ctx context.Context, user *entity.User) {
			user.ID = 42
		}).Return(nil).Once()
		m.tokens.EXPECT().Issue(security.TokenClaims{UserID: 42, Email: "alice@example.com"}).Return("signed.jwt", nil).Once()
		m.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		result, err := svc.Register(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "signed.jwt", result.Token)
		assert.Equal(t, uint64(42), result.User.ID)
		assert.Equal(t, "acct_123", result.User.ProviderAccountID)
	})

	t.Run("Email already registered", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(&entity.User{}, nil).Once()

		result, err := svc.Register(ctx, req)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrEmailTaken)
	})

	t.Run("Database error during duplicate check", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(nil, errs.ErrDatabaseConnection).Once()

		result, err := svc.Register(ctx, req)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("Hashing failure", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(nil, errs.ErrUserNotFound).Once()
		m.hasher.EXPECT().Hash("s3cret-password").Return("", errors.New("bcrypt cost out of range")).Once()
		m.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		result, err := svc.Register(ctx, req)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})

	t.Run("Provider account creation fails, no user row written", func(t *testing.T) {
		svc, m := newAuthService(t)

		providerErr := errs.NewProviderError("account", "invalid request", errors.New("api error"))

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(nil, errs.ErrUserNotFound).Once()
		m.hasher.EXPECT().Hash("s3cret-password").Return("$2a$10$hash", nil).Once()
		m.gateway.EXPECT().CreateAccount(mock.Anything, mock.Anything).Return("", providerErr).Once()
		m.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		result, err := svc.Register(ctx, req)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrProvider)
		m.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("User insert fails", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(nil, errs.ErrUserNotFound).Once()
		m.hasher.EXPECT().Hash("s3cret-password").Return("$2a$10$hash", nil).Once()
		m.gateway.EXPECT().CreateAccount(mock.Anything, mock.Anything).Return("acct_123", nil).Once()
		m.time.EXPECT().Now().Return(fixedTime).Maybe()
		m.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrEmailTaken).Once()
		m.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		result, err := svc.Register(ctx, req)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrEmailTaken)
	})

	t.Run("Token signing failure", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(nil, errs.ErrUserNotFound).Once()
		m.hasher.EXPECT().Hash("s3cret-password").Return("$2a$10$hash", nil).Once()
		m.gateway.EXPECT().CreateAccount(mock.Anything, mock.Anything).Return("acct_123", nil).Once()
		m.time.EXPECT().Now().Return(fixedTime).Maybe()
		m.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		m.tokens.EXPECT().Issue(mock.Anything).Return("", errors.New("signing key unavailable")).Once()
		m.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		result, err := svc.Register(ctx, req)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	storedUser := &entity.User{
		ID:           42,
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
	}

	t.Run("Successful login", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(storedUser, nil).Once()
		m.hasher.EXPECT().Compare("$2a$10$hash", "s3cret-password").Return(true).Once()
		m.tokens.EXPECT().Issue(security.TokenClaims{UserID: 42, Email: "alice@example.com"}).Return("signed.jwt", nil).Once()
		m.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		result, err := svc.Login(ctx, "  Alice@Example.com ", "s3cret-password")

		require.NoError(t, err)
		assert.Equal(t, "signed.jwt", result.Token)
		assert.Equal(t, uint64(42), result.User.ID)
	})

	t.Run("Unknown email", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "nobody@example.com").Return(nil, errs.ErrUserNotFound).Once()

		result, err := svc.Login(ctx, "nobody@example.com", "whatever")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Wrong password yields the same error as unknown email", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(storedUser, nil).Once()
		m.hasher.EXPECT().Compare("$2a$10$hash", "wrong-password").Return(false).Once()

		result, err := svc.Login(ctx, "alice@example.com", "wrong-password")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Database error is not masked as bad credentials", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(nil, errs.ErrDatabaseConnection).Once()

		result, err := svc.Login(ctx, "alice@example.com", "s3cret-password")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestAuthorize(t *testing.T) {
	assert.NoError(t, Authorize(42, 42))
	assert.ErrorIs(t, Authorize(42, 43), errs.ErrForbidden)
	assert.ErrorIs(t, Authorize(0, 42), errs.ErrForbidden)
}
