package entity

import (
	"testing"
	"time"

	errs "github.com/marketpay/marketpay/internal/domain/error"
	coremocks "github.com/marketpay/marketpay/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid payout transaction", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		tx, err := NewTransaction(TypePayout, 10050, StatusSucceeded, "tr_123", 42, "Payout to user", mockTime)

		require.NoError(t, err)
		assert.Equal(t, TypePayout, tx.Type)
		assert.Equal(t, "100.50", tx.Amount)
		assert.Equal(t, int64(10050), tx.AmountInCents)
		assert.Equal(t, StatusSucceeded, tx.Status)
		assert.Equal(t, "tr_123", tx.ExternalID)
		assert.Equal(t, uint64(42), tx.UserID)
		assert.Equal(t, fixedTime, tx.CreatedAt)
		assert.True(t, tx.IsPayout())
	})

	t.Run("Platform recharge with zero user ID", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		tx, err := NewTransaction(TypeRecharge, 500000, StatusSucceeded, "pi_abc", 0, "Platform account recharge", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(0), tx.UserID)
		assert.Equal(t, "5000.00", tx.Amount)
		assert.False(t, tx.IsPayout())
	})

	t.Run("Unknown transaction type", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		tx, err := NewTransaction("refund", 100, StatusSucceeded, "tr_123", 42, "", mockTime)

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Unknown status", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		tx, err := NewTransaction(TypePayout, 100, "cancelled", "tr_123", 42, "", mockTime)

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		tx, err := NewTransaction(TypePayout, 0, StatusSucceeded, "tr_123", 42, "", mockTime)

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("Missing external ID", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		tx, err := NewTransaction(TypePayout, 100, StatusSucceeded, "", 42, "", mockTime)

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Pending status is accepted", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		tx, err := NewTransaction(TypePayout, 100, StatusPending, "tr_123", 42, "awaiting reconciliation", mockTime)

		require.NoError(t, err)
		assert.Equal(t, StatusPending, tx.Status)
	})
}
