package entity

import (
	"testing"
	"time"

	errs "github.com/marketpay/marketpay/internal/domain/error"
	coremocks "github.com/marketpay/marketpay/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid user", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user, err := NewUser("alice@example.com", "$2a$10$hash", "Alice", "Smith", "acct_123", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "acct_123", user.ProviderAccountID)
		assert.Empty(t, user.BankAccountID)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Email is normalized", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user, err := NewUser("  Alice@Example.COM ", "$2a$10$hash", "Alice", "Smith", "acct_123", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("Invalid email", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		user, err := NewUser("not-an-email", "$2a$10$hash", "Alice", "Smith", "acct_123", mockTime)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		user, err = NewUser("", "$2a$10$hash", "Alice", "Smith", "acct_123", mockTime)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Missing password hash", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		user, err := NewUser("alice@example.com", "", "Alice", "Smith", "acct_123", mockTime)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestCanReceivePayout(t *testing.T) {
	t.Run("Eligible user", func(t *testing.T) {
		user := &User{ProviderAccountID: "acct_123", BankAccountID: "ba_456"}
		assert.NoError(t, user.CanReceivePayout())
	})

	t.Run("No provider account", func(t *testing.T) {
		user := &User{BankAccountID: "ba_456"}
		assert.ErrorIs(t, user.CanReceivePayout(), errs.ErrNoProviderAccount)
	})

	t.Run("No bank account", func(t *testing.T) {
		user := &User{ProviderAccountID: "acct_123"}
		assert.ErrorIs(t, user.CanReceivePayout(), errs.ErrNoBankAccount)
	})
}

func TestLinkBankAccount(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	linked := created.Add(48 * time.Hour)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(linked).Once()

	user := &User{ProviderAccountID: "acct_123", CreatedAt: created, UpdatedAt: created}
	user.LinkBankAccount("ba_789", mockTime)

	assert.Equal(t, "ba_789", user.BankAccountID)
	assert.Equal(t, linked, user.UpdatedAt)
	assert.NoError(t, user.CanReceivePayout())
}

func TestFullName(t *testing.T) {
	testCases := []struct {
		name     string
		first    string
		last     string
		expected string
	}{
		{"Both names", "Alice", "Smith", "Alice Smith"},
		{"First only", "Alice", "", "Alice"},
		{"Last only", "", "Smith", "Smith"},
		{"Neither", "", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user := &User{FirstName: tc.first, LastName: tc.last}
			assert.Equal(t, tc.expected, user.FullName())
		})
	}
}
