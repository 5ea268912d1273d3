package entity

import (
	"strings"
	"time"

	errs "github.com/marketpay/marketpay/internal/domain/error"
	coreport "github.com/marketpay/marketpay/internal/domain/port/core"
)

// User represents a registered member of the marketplace. ProviderAccountID
// is assigned exactly once, at registration, when the payment provider
// account is created. BankAccountID stays empty until a bank account is
// linked; both are required before the user can receive payouts.
type User struct {
	ID                uint64
	Email             string
	PasswordHash      string
	FirstName         string
	LastName          string
	ProviderAccountID string
	BankAccountID     string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewUser creates a new user with the given profile and provider account.
// The password must already be hashed; entities never see plaintext.
func NewUser(email, passwordHash, firstName, lastName, providerAccountID string, timeProvider coreport.TimeProvider) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.ErrInvalidRequest
	}
	if passwordHash == "" {
		return nil, errs.ErrInvalidRequest
	}

	now := timeProvider.Now()
	return &User{
		Email:             email,
		PasswordHash:      passwordHash,
		FirstName:         firstName,
		LastName:          lastName,
		ProviderAccountID: providerAccountID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// CanReceivePayout reports whether the user has both prerequisites for a
// payout: a provider account and a linked bank account.
func (u *User) CanReceivePayout() error {
	if u.ProviderAccountID == "" {
		return errs.ErrNoProviderAccount
	}
	if u.BankAccountID == "" {
		return errs.ErrNoBankAccount
	}
	return nil
}

// LinkBankAccount records the bank account identifier returned by the
// payment provider.
func (u *User) LinkBankAccount(bankAccountID string, timeProvider coreport.TimeProvider) {
	u.BankAccountID = bankAccountID
	u.UpdatedAt = timeProvider.Now()
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
