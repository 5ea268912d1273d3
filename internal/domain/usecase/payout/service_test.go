package payout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/marketpay/marketpay/internal/domain/entity"
	errs "github.com/marketpay/marketpay/internal/domain/error"
	"github.com/marketpay/marketpay/internal/domain/port/gateway"
	coremocks "github.com/marketpay/marketpay/mocks/port/core"
	gatewaymocks "github.com/marketpay/marketpay/mocks/port/gateway"
	persistencemocks "github.com/marketpay/marketpay/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const lockTimeout = 30 * time.Second

type payoutMocks struct {
	uow          *persistencemocks.MockUnitOfWork
	userRepo     *persistencemocks.MockUserRepository
	userLockRepo *persistencemocks.MockUserLockRepository
	txRepo       *persistencemocks.MockTransactionRepository
	payoutRepo   *persistencemocks.MockPayoutRepository
	gateway      *gatewaymocks.MockPaymentGateway
	time         *coremocks.MockTimeProvider
	logger       *coremocks.MockLogger
}

func newPayoutService(t *testing.T) (*Service, *payoutMocks) {
	m := &payoutMocks{
		uow:          persistencemocks.NewMockUnitOfWork(t),
		userRepo:     persistencemocks.NewMockUserRepository(t),
		userLockRepo: persistencemocks.NewMockUserLockRepository(t),
		txRepo:       persistencemocks.NewMockTransactionRepository(t),
		payoutRepo:   persistencemocks.NewMockPayoutRepository(t),
		gateway:      gatewaymocks.NewMockPaymentGateway(t),
		time:         coremocks.NewMockTimeProvider(t),
		logger:       coremocks.NewMockLogger(t),
	}
	svc := NewService(m.uow, m.userRepo, m.userLockRepo, m.gateway, m.time, m.logger, lockTimeout)
	return svc, m
}

func eligibleUser() *entity.User {
	return &entity.User{
		ID:                42,
		Email:             "alice@example.com",
		ProviderAccountID: "acct_123",
		BankAccountID:     "ba_456",
	}
}

func TestProcessPayout(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful payout commits both ledger rows", func(t *testing.T) {
		svc, m := newPayoutService(t)

		m.userLockRepo.EXPECT().AcquireLock(mock.Anything, uint64(42), lockTimeout).Return(nil).Once()
		m.userLockRepo.EXPECT().ReleaseLock(mock.Anything, uint64(42)).Return(nil).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(eligibleUser(), nil).Once()
		m.gateway.EXPECT().TransferToAccount(mock.Anything, "acct_123", int64(10050)).
			Return(&gateway.Transfer{ID: "tr_123", AmountCents: 10050}, nil).Once()
		m.gateway.EXPECT().CreatePayout(mock.Anything, "acct_123", int64(10050)).
			Return(&gateway.Payout{ID: "po_456", AmountCents: 10050}, nil).Once()
		m.time.EXPECT().Now().Return(fixedTime).Maybe()

		txCtx := context.WithValue(ctx, struct{}{}, "tx")
		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetTransactionRepository(txCtx).Return(m.txRepo).Once()
		m.txRepo.EXPECT().Create(txCtx, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.Type == entity.TypePayout &&
				tx.Status == entity.StatusSucceeded &&
				tx.AmountInCents == 10050 &&
				tx.ExternalID == "tr_123" &&
				tx.UserID == 42
		})).Run(func(ctx context.Context, transaction *entity.Transaction) {
			transaction.ID = 7
		}).Return(nil).Once()
		m.uow.EXPECT().GetPayoutRepository(txCtx).Return(m.payoutRepo).Once()
		m.payoutRepo.EXPECT().Create(txCtx, mock.MatchedBy(func(p *entity.Payout) bool {
			return p.TransactionID == 7 &&
				p.UserID == 42 &&
				p.AmountInCents == 10050 &&
				p.TransferID == "tr_123" &&
				p.PayoutID == "po_456"
		})).Return(nil).Once()
		m.uow.EXPECT().Commit(txCtx).Return(nil).Once()
		m.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		result, err := svc.ProcessPayout(ctx, 42, 100.50, "May earnings")

		require.NoError(t, err)
		assert.Equal(t, uint64(7), result.TransactionID)
		assert.Equal(t, "100.50", result.Amount)
		assert.Equal(t, "tr_123", result.TransferID)
		assert.Equal(t, "po_456", result.PayoutID)
	})

	t.Run("Zero user ID", func(t *testing.T) {
		svc, _ := newPayoutService(t)

		result, err := svc.ProcessPayout(ctx, 0, 100.50, "")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		svc, _ := newPayoutService(t)

		result, err := svc.ProcessPayout(ctx, 42, -5, "")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("Concurrent payout for the same user is rejected", func(t *testing.T) {
		svc, m := newPayoutService(t)

		m.userLockRepo.EXPECT().AcquireLock(mock.Anything, uint64(42), lockTimeout).Return(errs.ErrUserLocked).Once()

		result, err := svc.ProcessPayout(ctx, 42, 100.50, "")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrUserLocked)
		m.gateway.AssertNotCalled(t, "TransferToAccount", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Lock released when user lookup fails", func(t *testing.T) {
		svc, m := newPayoutService(t)

		m.userLockRepo.EXPECT().AcquireLock(mock.Anything, uint64(42), lockTimeout).Return(nil).Once()
		m.userLockRepo.EXPECT().ReleaseLock(mock.Anything, uint64(42)).Return(nil).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(nil, errs.ErrUserNotFound).Once()

		result, err := svc.ProcessPayout(ctx, 42, 100.50, "")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("User without linked bank account", func(t *testing.T) {
		svc, m := newPayoutService(t)

		user := eligibleUser()
		user.BankAccountID = ""

		m.userLockRepo.EXPECT().AcquireLock(mock.Anything, uint64(42), lockTimeout).Return(nil).Once()
		m.userLockRepo.EXPECT().ReleaseLock(mock.Anything, uint64(42)).Return(nil).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(user, nil).Once()
		m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		result, err := svc.ProcessPayout(ctx, 42, 100.50, "")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrNoBankAccount)
		m.gateway.AssertNotCalled(t, "TransferToAccount", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Transfer failure writes no ledger rows", func(t *testing.T) {
		svc, m := newPayoutService(t)

		providerErr := errs.NewProviderError("transfer", "insufficient funds", errors.New("balance_insufficient"))

		m.userLockRepo.EXPECT().AcquireLock(mock.Anything, uint64(42), lockTimeout).Return(nil).Once()
		m.userLockRepo.EXPECT().ReleaseLock(mock.Anything, uint64(42)).Return(nil).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(eligibleUser(), nil).Once()
		m.gateway.EXPECT().TransferToAccount(mock.Anything, "acct_123", int64(10050)).Return(nil, providerErr).Once()
		m.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		result, err := svc.ProcessPayout(ctx, 42, 100.50, "")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrProvider)
		m.uow.AssertNotCalled(t, "Begin", mock.Anything)
		m.gateway.AssertNotCalled(t, "CreatePayout", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Payout failure after transfer records a pending transaction", func(t *testing.T) {
		svc, m := newPayoutService(t)

		providerErr := errs.NewProviderError("payout", "account restricted", errors.New("account_invalid"))

		m.userLockRepo.EXPECT().AcquireLock(mock.Anything, uint64(42), lockTimeout).Return(nil).Once()
		m.userLockRepo.EXPECT().ReleaseLock(mock.Anything, uint64(42)).Return(nil).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(eligibleUser(), nil).Once()
		m.gateway.EXPECT().TransferToAccount(mock.Anything, "acct_123", int64(10050)).
			Return(&gateway.Transfer{ID: "tr_123", AmountCents: 10050}, nil).Once()
		m.gateway.EXPECT().CreatePayout(mock.Anything, "acct_123", int64(10050)).Return(nil, providerErr).Once()
		m.time.EXPECT().Now().Return(fixedTime).Maybe()
		m.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(m.txRepo).Once()
		m.txRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.Type == entity.TypePayout &&
				tx.Status == entity.StatusPending &&
				tx.ExternalID == "tr_123" &&
				tx.UserID == 42
		})).Return(nil).Once()
		m.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		result, err := svc.ProcessPayout(ctx, 42, 100.50, "May earnings")

		assert.Nil(t, result)

		var payoutErr *errs.PayoutError
		require.ErrorAs(t, err, &payoutErr)
		assert.Equal(t, uint64(42), payoutErr.UserID)
		assert.Equal(t, "tr_123", payoutErr.TransferID)
		assert.ErrorIs(t, err, errs.ErrProvider)

		m.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Transaction insert failure rolls back the unit of work", func(t *testing.T) {
		svc, m := newPayoutService(t)

		m.userLockRepo.EXPECT().AcquireLock(mock.Anything, uint64(42), lockTimeout).Return(nil).Once()
		m.userLockRepo.EXPECT().ReleaseLock(mock.Anything, uint64(42)).Return(nil).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(eligibleUser(), nil).Once()
		m.gateway.EXPECT().TransferToAccount(mock.Anything, "acct_123", int64(10050)).
			Return(&gateway.Transfer{ID: "tr_123"}, nil).Once()
		m.gateway.EXPECT().CreatePayout(mock.Anything, "acct_123", int64(10050)).
			Return(&gateway.Payout{ID: "po_456"}, nil).Once()
		m.time.EXPECT().Now().Return(fixedTime).Maybe()

		txCtx := context.WithValue(ctx, struct{}{}, "tx")
		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetTransactionRepository(txCtx).Return(m.txRepo).Once()
		m.txRepo.EXPECT().Create(txCtx, mock.Anything).Return(errs.ErrDatabaseConnection).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		result, err := svc.ProcessPayout(ctx, 42, 100.50, "")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		m.payoutRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Payout row insert failure rolls back the transaction row too", func(t *testing.T) {
		svc, m := newPayoutService(t)

		m.userLockRepo.EXPECT().AcquireLock(mock.Anything, uint64(42), lockTimeout).Return(nil).Once()
		m.userLockRepo.EXPECT().ReleaseLock(mock.Anything, uint64(42)).Return(nil).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(eligibleUser(), nil).Once()
		m.gateway.EXPECT().TransferToAccount(mock.Anything, "acct_123", int64(10050)).
			Return(&gateway.Transfer{ID: "tr_123"}, nil).Once()
		m.gateway.EXPECT().CreatePayout(mock.Anything, "acct_123", int64(10050)).
			Return(&gateway.Payout{ID: "po_456"}, nil).Once()
		m.time.EXPECT().Now().Return(fixedTime).Maybe()

		txCtx := context.WithValue(ctx, struct{}{}, "tx")
		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetTransactionRepository(txCtx).Return(m.txRepo).Once()
		m.txRepo.EXPECT().Create(txCtx, mock.Anything).Run(func(ctx context.Context, transaction *entity.Transaction) {
			transaction.ID = 7
		}).Return(nil).Once()
		m.uow.EXPECT().GetPayoutRepository(txCtx).Return(m.payoutRepo).Once()
		m.payoutRepo.EXPECT().Create(txCtx, mock.Anything).Return(errs.ErrDatabaseConnection).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		result, err := svc.ProcessPayout(ctx, 42, 100.50, "")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("Commit failure rolls back", func(t *testing.T) {
		svc, m := newPayoutService(t)

		m.userLockRepo.EXPECT().AcquireLock(mock.Anything, uint64(42), lockTimeout).Return(nil).Once()
		m.userLockRepo.EXPECT().ReleaseLock(mock.Anything, uint64(42)).Return(nil).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(eligibleUser(), nil).Once()
		m.gateway.EXPECT().TransferToAccount(mock.Anything, "acct_123", int64(10050)).
			Return(&gateway.Transfer{ID: "tr_123"}, nil).Once()
		m.gateway.EXPECT().CreatePayout(mock.Anything, "acct_123", int64(10050)).
			Return(&gateway.Payout{ID: "po_456"}, nil).Once()
		m.time.EXPECT().Now().Return(fixedTime).Maybe()

		txCtx := context.WithValue(ctx, struct{}{}, "tx")
		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetTransactionRepository(txCtx).Return(m.txRepo).Once()
		m.txRepo.EXPECT().Create(txCtx, mock.Anything).Run(func(ctx context.Context, transaction *entity.Transaction) {
			transaction.ID = 7
		}).Return(nil).Once()
		m.uow.EXPECT().GetPayoutRepository(txCtx).Return(m.payoutRepo).Once()
		m.payoutRepo.EXPECT().Create(txCtx, mock.Anything).Return(nil).Once()
		commitErr := errors.New("serialization failure")
		m.uow.EXPECT().Commit(txCtx).Return(commitErr).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		result, err := svc.ProcessPayout(ctx, 42, 100.50, "")

		assert.Nil(t, result)
		assert.Equal(t, commitErr, err)
	})

	t.Run("Failed lock release is tolerated", func(t *testing.T) {
		svc, m := newPayoutService(t)

		user := eligibleUser()
		user.BankAccountID = ""

		m.userLockRepo.EXPECT().AcquireLock(mock.Anything, uint64(42), lockTimeout).Return(nil).Once()
		m.userLockRepo.EXPECT().ReleaseLock(mock.Anything, uint64(42)).Return(errs.ErrDatabaseConnection).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(user, nil).Once()
		m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Times(2)

		result, err := svc.ProcessPayout(ctx, 42, 100.50, "")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrNoBankAccount)
	})
}
