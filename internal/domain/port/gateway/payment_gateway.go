package gateway

import (
	"context"
)

// AccountProfile carries the data needed to open a provider sub-account for
// a person at registration time.
type AccountProfile struct {
	Email     string
	FirstName string
	LastName  string
}

// BankDetails carries the data needed to attach an external bank account.
type BankDetails struct {
	AccountHolderName string
	RoutingNumber     string
	AccountNumber     string
}

// PaymentIntent is the provider's handle for a card charge.
type PaymentIntent struct {
	ID           string
	AmountCents  int64
	Status       string
	ClientSecret string
}

// BalanceLine is one line item of the platform balance, in minor units.
type BalanceLine struct {
	AmountCents int64
	Currency    string
}

// Balance is the platform's provider-side balance.
type Balance struct {
	Available []BalanceLine
	Pending   []BalanceLine
}

// Transfer is a completed movement of funds from the platform balance to a
// user's provider account.
type Transfer struct {
	ID          string
	AmountCents int64
}

// Payout is a completed movement of funds from a user's provider account to
// their linked bank account.
type Payout struct {
	ID          string
	AmountCents int64
}

// PaymentGateway is the capability interface to the external payment
// provider. All calls are synchronous and none is safe to blindly retry:
// the provider offers no dedupe key through this interface, so a retried
// transfer can move money twice. Every failure surfaces as a
// *errs.ProviderError carrying the provider's detail.
type PaymentGateway interface {
	// CreateAccount opens a provider sub-account able to receive transfers
	// and request payouts. Returns the provider account ID.
	CreateAccount(ctx context.Context, profile AccountProfile) (string, error)

	// CreatePaymentIntent starts a charge of the given amount against the
	// platform, optionally bound to a payment method.
	CreatePaymentIntent(ctx context.Context, amountCents int64, paymentMethodID string) (*PaymentIntent, error)

	// GetBalance returns the platform's available and pending balance lines.
	GetBalance(ctx context.Context) (*Balance, error)

	// TransferToAccount moves funds from the platform balance to the given
	// provider account.
	TransferToAccount(ctx context.Context, accountID string, amountCents int64) (*Transfer, error)

	// CreatePayout moves funds from the given provider account to its
	// linked external bank account.
	CreatePayout(ctx context.Context, accountID string, amountCents int64) (*Payout, error)

	// AddBankAccount attaches an external bank account to a provider
	// account. Returns the provider's bank account ID.
	AddBankAccount(ctx context.Context, accountID string, details BankDetails) (string, error)
}
