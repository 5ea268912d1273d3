package transaction

import (
	"context"
	"testing"

	"github.com/marketpay/marketpay/internal/domain/entity"
	errs "github.com/marketpay/marketpay/internal/domain/error"
	"github.com/marketpay/marketpay/internal/domain/port/persistence"
	coremocks "github.com/marketpay/marketpay/mocks/port/core"
	persistencemocks "github.com/marketpay/marketpay/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type transactionMocks struct {
	txRepo     *persistencemocks.MockTransactionRepository
	payoutRepo *persistencemocks.MockPayoutRepository
	logger     *coremocks.MockLogger
}

func newTransactionService(t *testing.T) (*Service, *transactionMocks) {
	m := &transactionMocks{
		txRepo:     persistencemocks.NewMockTransactionRepository(t),
		payoutRepo: persistencemocks.NewMockPayoutRepository(t),
		logger:     coremocks.NewMockLogger(t),
	}
	svc := NewService(m.txRepo, m.payoutRepo, m.logger)
	return svc, m
}

func TestListAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns transactions with owner emails", func(t *testing.T) {
		svc, m := newTransactionService(t)

		rows := []persistence.TransactionWithOwner{
			{Transaction: entity.Transaction{ID: 2, Type: entity.TypePayout, UserID: 42}, UserEmail: "alice@example.com"},
			{Transaction: entity.Transaction{ID: 1, Type: entity.TypeRecharge, UserID: 0}, UserEmail: ""},
		}
		m.txRepo.EXPECT().ListAll(mock.Anything).Return(rows, nil).Once()

		result, err := svc.ListAll(ctx)

		require.NoError(t, err)
		assert.Equal(t, rows, result)
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Recharge transaction has no payout sub-record", func(t *testing.T) {
		svc, m := newTransactionService(t)

		tx := &entity.Transaction{ID: 1, Type: entity.TypeRecharge, Status: entity.StatusSucceeded}
		m.txRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(tx, nil).Once()

		detail, err := svc.GetByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, *tx, detail.Transaction)
		assert.Nil(t, detail.Payout)
		m.payoutRepo.AssertNotCalled(t, "GetByTransactionID", mock.Anything, mock.Anything)
	})

	t.Run("Payout transaction includes its payout row", func(t *testing.T) {
		svc, m := newTransactionService(t)

		tx := &entity.Transaction{ID: 2, Type: entity.TypePayout, Status: entity.StatusSucceeded, UserID: 42}
		payoutRow := &entity.Payout{ID: 9, TransactionID: 2, UserID: 42, TransferID: "tr_123", PayoutID: "po_456"}

		m.txRepo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(tx, nil).Once()
		m.payoutRepo.EXPECT().GetByTransactionID(mock.Anything, uint64(2)).Return(payoutRow, nil).Once()

		detail, err := svc.GetByID(ctx, 2)

		require.NoError(t, err)
		assert.Equal(t, payoutRow, detail.Payout)
	})

	t.Run("Payout transaction without a payout row is still served", func(t *testing.T) {
		svc, m := newTransactionService(t)

		tx := &entity.Transaction{ID: 3, Type: entity.TypePayout, Status: entity.StatusPending, UserID: 42}

		m.txRepo.EXPECT().GetByID(mock.Anything, uint64(3)).Return(tx, nil).Once()
		m.payoutRepo.EXPECT().GetByTransactionID(mock.Anything, uint64(3)).Return(nil, errs.ErrNotFound).Once()
		m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		detail, err := svc.GetByID(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, *tx, detail.Transaction)
		assert.Nil(t, detail.Payout)
	})

	t.Run("Unknown transaction", func(t *testing.T) {
		svc, m := newTransactionService(t)

		m.txRepo.EXPECT().GetByID(mock.Anything, uint64(99)).Return(nil, errs.ErrTransactionNotFound).Once()

		detail, err := svc.GetByID(ctx, 99)

		assert.Nil(t, detail)
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})

	t.Run("Database error fetching the payout row", func(t *testing.T) {
		svc, m := newTransactionService(t)

		tx := &entity.Transaction{ID: 4, Type: entity.TypePayout, UserID: 42}

		m.txRepo.EXPECT().GetByID(mock.Anything, uint64(4)).Return(tx, nil).Once()
		m.payoutRepo.EXPECT().GetByTransactionID(mock.Anything, uint64(4)).Return(nil, errs.ErrDatabaseConnection).Once()

		detail, err := svc.GetByID(ctx, 4)

		assert.Nil(t, detail)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestListByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner reads their own transactions", func(t *testing.T) {
		svc, m := newTransactionService(t)

		transactions := []entity.Transaction{
			{ID: 5, Type: entity.TypePayout, UserID: 42},
		}
		m.txRepo.EXPECT().ListByUser(mock.Anything, uint64(42)).Return(transactions, nil).Once()

		result, err := svc.ListByUser(ctx, 42, 42)

		require.NoError(t, err)
		assert.Equal(t, transactions, result)
	})

	t.Run("Caller reading another user's ledger is forbidden", func(t *testing.T) {
		svc, m := newTransactionService(t)

		result, err := svc.ListByUser(ctx, 42, 43)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrForbidden)
		m.txRepo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
	})
}
