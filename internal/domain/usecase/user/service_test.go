package user

import (
	"context"
	"errors"
	"testing"

	"github.com/marketpay/marketpay/internal/domain/entity"
	errs "github.com/marketpay/marketpay/internal/domain/error"
	"github.com/marketpay/marketpay/internal/domain/port/gateway"
	"github.com/marketpay/marketpay/internal/domain/port/persistence"
	coremocks "github.com/marketpay/marketpay/mocks/port/core"
	gatewaymocks "github.com/marketpay/marketpay/mocks/port/gateway"
	persistencemocks "github.com/marketpay/marketpay/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userMocks struct {
	userRepo   *persistencemocks.MockUserRepository
	payoutRepo *persistencemocks.MockPayoutRepository
	gateway    *gatewaymocks.MockPaymentGateway
	time       *coremocks.MockTimeProvider
	logger     *coremocks.MockLogger
}

func newUserService(t *testing.T) (*Service, *userMocks) {
	m := &userMocks{
		userRepo:   persistencemocks.NewMockUserRepository(t),
		payoutRepo: persistencemocks.NewMockPayoutRepository(t),
		gateway:    gatewaymocks.NewMockPaymentGateway(t),
		time:       coremocks.NewMockTimeProvider(t),
		logger:     coremocks.NewMockLogger(t),
	}
	svc := NewService(m.userRepo, m.payoutRepo, m.gateway, m.time, m.logger)
	return svc, m
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner reads their own profile", func(t *testing.T) {
		svc, m := newUserService(t)

		stored := &entity.User{ID: 42, Email: "alice@example.com"}
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(stored, nil).Once()

		user, err := svc.GetProfile(ctx, 42, 42)

		require.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("Forbidden before lookup, regardless of existence", func(t *testing.T) {
		svc, m := newUserService(t)

		user, err := svc.GetProfile(ctx, 42, 43)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrForbidden)
		m.userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Unknown user", func(t *testing.T) {
		svc, m := newUserService(t)

		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(nil, errs.ErrUserNotFound).Once()

		user, err := svc.GetProfile(ctx, 42, 42)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestAddBankAccount(t *testing.T) {
	ctx := context.Background()

	details := gateway.BankDetails{
		AccountHolderName: "Alice Smith",
		RoutingNumber:     "110000000",
		AccountNumber:     "000123456789",
	}

	t.Run("Successful bank account link", func(t *testing.T) {
		svc, m := newUserService(t)

		stored := &entity.User{ID: 42, ProviderAccountID: "acct_123"}

		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(stored, nil).Once()
		m.gateway.EXPECT().AddBankAccount(mock.Anything, "acct_123", details).Return("ba_789", nil).Once()
		m.userRepo.EXPECT().UpdateBankAccount(mock.Anything, uint64(42), "ba_789").Return(nil).Once()
		m.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		bankAccountID, err := svc.AddBankAccount(ctx, 42, 42, details)

		require.NoError(t, err)
		assert.Equal(t, "ba_789", bankAccountID)
	})

	t.Run("Forbidden for another user's account", func(t *testing.T) {
		svc, m := newUserService(t)

		bankAccountID, err := svc.AddBankAccount(ctx, 42, 43, details)

		assert.Empty(t, bankAccountID)
		assert.ErrorIs(t, err, errs.ErrForbidden)
		m.gateway.AssertNotCalled(t, "AddBankAccount", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Provider attachment failure leaves the user unchanged", func(t *testing.T) {
		svc, m := newUserService(t)

		stored := &entity.User{ID: 42, ProviderAccountID: "acct_123"}
		providerErr := errs.NewProviderError("bank_account", "invalid routing number", errors.New("routing_number_invalid"))

		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(stored, nil).Once()
		m.gateway.EXPECT().AddBankAccount(mock.Anything, "acct_123", details).Return("", providerErr).Once()
		m.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		bankAccountID, err := svc.AddBankAccount(ctx, 42, 42, details)

		assert.Empty(t, bankAccountID)
		assert.ErrorIs(t, err, errs.ErrProvider)
		m.userRepo.AssertNotCalled(t, "UpdateBankAccount", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure recording the bank account id", func(t *testing.T) {
		svc, m := newUserService(t)

		stored := &entity.User{ID: 42, ProviderAccountID: "acct_123"}

		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(stored, nil).Once()
		m.gateway.EXPECT().AddBankAccount(mock.Anything, "acct_123", details).Return("ba_789", nil).Once()
		m.userRepo.EXPECT().UpdateBankAccount(mock.Anything, uint64(42), "ba_789").Return(errs.ErrDatabaseConnection).Once()
		m.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		bankAccountID, err := svc.AddBankAccount(ctx, 42, 42, details)

		assert.Empty(t, bankAccountID)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestPayoutHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner reads their payout history", func(t *testing.T) {
		svc, m := newUserService(t)

		entries := []persistence.PayoutHistoryEntry{
			{
				Payout:                entity.Payout{ID: 9, UserID: 42, TransferID: "tr_123", PayoutID: "po_456"},
				TransactionStatus:     entity.StatusSucceeded,
				TransactionExternalID: "tr_123",
			},
		}
		m.payoutRepo.EXPECT().ListByUser(mock.Anything, uint64(42)).Return(entries, nil).Once()

		result, err := svc.PayoutHistory(ctx, 42, 42)

		require.NoError(t, err)
		assert.Equal(t, entries, result)
	})

	t.Run("Forbidden for another user's history", func(t *testing.T) {
		svc, m := newUserService(t)

		result, err := svc.PayoutHistory(ctx, 42, 43)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrForbidden)
		m.payoutRepo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
	})
}
