package platform

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

type platformMocks struct {
	txRepo  *persistencemocks.MockTransactionRepository
	gateway *gatewaymocks.MockPaymentGateway
	time    *coremocks.MockTimeProvider
	logger  *coremocks.MockLogger
}

func newPlatformService(t *testing.T) (*Service, *platformMocks) {
	m := &platformMocks{
		txRepo:  persistencemocks.NewMockTransactionRepository(t),
		gateway: gatewaymocks.NewMockPaymentGateway(t),
		time:    coremocks.NewMockTimeProvider(t),
		logger:  coremocks.NewMockLogger(t),
	}
	svc := NewService(m.txRepo, m.gateway, m.time, m.logger, "usd")
	return svc, m
}

func TestGetBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("Sums balance lines and converts to major units", func(t *testing.T) {
		svc, m := newPlatformService(t)

		m.gateway.EXPECT().GetBalance(mock.Anything).Return(&gateway.Balance{
			Available: []gateway.BalanceLine{
				{AmountCents: 150000, Currency: "usd"},
				{AmountCents: 2500, Currency: "usd"},
			},
			Pending: []gateway.BalanceLine{
				{AmountCents: 7525, Currency: "usd"},
			},
		}, nil).Once()

		result, err := svc.GetBalance(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1525.00, result.Available)
		assert.Equal(t, 75.25, result.Pending)
		assert.Equal(t, "usd", result.Currency)
	})

	t.Run("Empty balance", func(t *testing.T) {
		svc, m := newPlatformService(t)

		m.gateway.EXPECT().GetBalance(mock.Anything).Return(&gateway.Balance{}, nil).Once()

		result, err := svc.GetBalance(ctx)

		require.NoError(t, err)
		assert.Zero(t, result.Available)
		assert.Zero(t, result.Pending)
	})

	t.Run("Provider failure", func(t *testing.T) {
		svc, m := newPlatformService(t)

		providerErr := errs.NewProviderError("balance", "", errors.New("timeout"))
		m.gateway.EXPECT().GetBalance(mock.Anything).Return(nil, providerErr).Once()

		result, err := svc.GetBalance(ctx)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrProvider)
	})
}

func TestRecharge(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful recharge records a platform transaction", func(t *testing.T) {
		svc, m := newPlatformService(t)

		intent := &gateway.PaymentIntent{
			ID:           "pi_abc",
			AmountCents:  500000,
			Status:       "succeeded",
			ClientSecret: "pi_abc_secret",
		}

		m.gateway.EXPECT().CreatePaymentIntent(mock.Anything, int64(500000), "pm_card").Return(intent, nil).Once()
		m.time.EXPECT().Now().Return(fixedTime).Once()
		m.txRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.Type == entity.TypeRecharge &&
				tx.Status == entity.StatusSucceeded &&
				tx.AmountInCents == 500000 &&
				tx.ExternalID == "pi_abc" &&
				tx.UserID == 0
		})).Run(func(ctx context.Context, transaction *entity.Transaction) {
			transaction.ID = 11
		}).Return(nil).Once()
		m.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		result, err := svc.Recharge(ctx, 5000.00, "pm_card")

		require.NoError(t, err)
		assert.Equal(t, uint64(11), result.TransactionID)
		assert.Equal(t, "5000.00", result.Amount)
		assert.Equal(t, intent, result.PaymentIntent)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		svc, _ := newPlatformService(t)

		result, err := svc.Recharge(ctx, 0, "")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("Payment intent failure", func(t *testing.T) {
		svc, m := newPlatformService(t)

		providerErr := errs.NewProviderError("payment_intent", "card declined", errors.New("card_declined"))
		m.gateway.EXPECT().CreatePaymentIntent(mock.Anything, int64(500000), "pm_card").Return(nil, providerErr).Once()
		m.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		result, err := svc.Recharge(ctx, 5000.00, "pm_card")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrProvider)
		m.txRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Ledger insert failure", func(t *testing.T) {
		svc, m := newPlatformService(t)

		m.gateway.EXPECT().CreatePaymentIntent(mock.Anything, int64(500000), "").
			Return(&gateway.PaymentIntent{ID: "pi_abc"}, nil).Once()
		m.time.EXPECT().Now().Return(fixedTime).Once()
		m.txRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDatabaseConnection).Once()
		m.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		result, err := svc.Recharge(ctx, 5000.00, "")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestListUnreconciled(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns pending payout transactions", func(t *testing.T) {
		svc, m := newPlatformService(t)

		pending := []entity.Transaction{
			{ID: 3, Type: entity.TypePayout, Status: entity.StatusPending, ExternalID: "tr_123"},
		}
		m.txRepo.EXPECT().ListUnreconciled(mock.Anything).Return(pending, nil).Once()

		result, err := svc.ListUnreconciled(ctx)

		require.NoError(t, err)
		assert.Equal(t, pending, result)
	})

	t.Run("Repository failure", func(t *testing.T) {
		svc, m := newPlatformService(t)

		m.txRepo.EXPECT().ListUnreconciled(mock.Anything).Return(nil, errs.ErrDatabaseConnection).Once()

		result, err := svc.ListUnreconciled(ctx)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
