package entity

import (
	"testing"
	"time"

	errs "github.com/marketpay/marketpay/internal/domain/error"
	coremocks "github.com/marketpay/marketpay/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayout(t *testing.T) {
	fixedTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	newPayoutTransaction := func(t *testing.T) *Transaction {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		tx, err := NewTransaction(TypePayout, 10050, StatusSucceeded, "tr_123", 42, "Payout to user", mockTime)
		require.NoError(t, err)
		return tx
	}

	t.Run("Valid payout", func(t *testing.T) {
		tx := newPayoutTransaction(t)

		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		payout, err := NewPayout(tx, "tr_123", "po_456", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(42), payout.UserID)
		assert.Equal(t, tx.Amount, payout.Amount)
		assert.Equal(t, tx.AmountInCents, payout.AmountInCents)
		assert.Equal(t, "tr_123", payout.TransferID)
		assert.Equal(t, "po_456", payout.PayoutID)
		assert.Equal(t, tx.Status, payout.Status)
	})

	t.Run("Nil transaction", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		payout, err := NewPayout(nil, "tr_123", "po_456", mockTime)

		assert.Nil(t, payout)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Recharge transaction rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		tx, err := NewTransaction(TypeRecharge, 10050, StatusSucceeded, "pi_123", 0, "", mockTime)
		require.NoError(t, err)

		payout, err := NewPayout(tx, "tr_123", "po_456", mockTime)

		assert.Nil(t, payout)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Payout transaction without user", func(t *testing.T) {
		tx := newPayoutTransaction(t)
		tx.UserID = 0

		mockTime := coremocks.NewMockTimeProvider(t)

		payout, err := NewPayout(tx, "tr_123", "po_456", mockTime)

		assert.Nil(t, payout)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Missing provider identifiers", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		payout, err := NewPayout(newPayoutTransaction(t), "", "po_456", mockTime)
		assert.Nil(t, payout)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		payout, err = NewPayout(newPayoutTransaction(t), "tr_123", "", mockTime)
		assert.Nil(t, payout)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}
