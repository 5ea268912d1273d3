package stripe

import (
	"context"
	"errors"
	"time"

	stripe "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"

	errs "github.com/marketpay/marketpay/internal/domain/error"
	coreport "github.com/marketpay/marketpay/internal/domain/port/core"
	"github.com/marketpay/marketpay/internal/domain/port/gateway"
)

// Gateway implements the PaymentGateway port against the Stripe API.
// Every call carries an explicit timeout; a timed-out call is reported as a
// ProviderError even though its outcome at Stripe is unknown, so callers
// must not retry blindly.
type Gateway struct {
	api            *client.API
	currency       string
	requestTimeout time.Duration
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
}

// NewGateway creates a Stripe-backed payment gateway
func NewGateway(
	secretKey string,
	currency string,
	requestTimeout time.Duration,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Gateway {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &Gateway{
		api:            api,
		currency:       currency,
		requestTimeout: requestTimeout,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// CreateAccount opens a custom connected account able to receive transfers
func (g *Gateway) CreateAccount(ctx context.Context, profile gateway.AccountProfile) (string, error) {
	ctx, cancel := g.timeProvider.WithTimeout(ctx, g.requestTimeout)
	defer cancel()

	params := &stripe.AccountParams{
		Type:  stripe.String(string(stripe.AccountTypeCustom)),
		Email: stripe.String(profile.Email),
		Capabilities: &stripe.AccountCapabilitiesParams{
			Transfers: &stripe.AccountCapabilitiesTransfersParams{
				Requested: stripe.Bool(true),
			},
		},
		BusinessType: stripe.String(string(stripe.AccountBusinessTypeIndividual)),
		Individual: &stripe.PersonParams{
			Email:     stripe.String(profile.Email),
			FirstName: stripe.String(profile.FirstName),
			LastName:  stripe.String(profile.LastName),
		},
	}
	params.Context = ctx

	account, err := g.api.Accounts.New(params)
	if err != nil {
		return "", g.wrapError("create_account", err)
	}

	g.logger.Info("Provider account created", map[string]any{
		"account_id": account.ID,
	})
	return account.ID, nil
}

// CreatePaymentIntent starts a charge of the given amount against the platform
func (g *Gateway) CreatePaymentIntent(ctx context.Context, amountCents int64, paymentMethodID string) (*gateway.PaymentIntent, error) {
	ctx, cancel := g.timeProvider.WithTimeout(ctx, g.requestTimeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(g.currency),
	}
	if paymentMethodID != "" {
		params.PaymentMethod = stripe.String(paymentMethodID)
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, g.wrapError("create_payment_intent", err)
	}

	return &gateway.PaymentIntent{
		ID:           intent.ID,
		AmountCents:  intent.Amount,
		Status:       string(intent.Status),
		ClientSecret: intent.ClientSecret,
	}, nil
}

// GetBalance returns the platform balance line items in minor units
func (g *Gateway) GetBalance(ctx context.Context) (*gateway.Balance, error) {
	ctx, cancel := g.timeProvider.WithTimeout(ctx, g.requestTimeout)
	defer cancel()

	params := &stripe.BalanceParams{}
	params.Context = ctx

	balance, err := g.api.Balance.Get(params)
	if err != nil {
		return nil, g.wrapError("get_balance", err)
	}

	result := &gateway.Balance{
		Available: make([]gateway.BalanceLine, 0, len(balance.Available)),
		Pending:   make([]gateway.BalanceLine, 0, len(balance.Pending)),
	}
	for _, item := range balance.Available {
		result.Available = append(result.Available, gateway.BalanceLine{
			AmountCents: item.Amount,
			Currency:    string(item.Currency),
		})
	}
	for _, item := range balance.Pending {
		result.Pending = append(result.Pending, gateway.BalanceLine{
			AmountCents: item.Amount,
			Currency:    string(item.Currency),
		})
	}
	return result, nil
}

// TransferToAccount moves funds from the platform balance to a connected account
func (g *Gateway) TransferToAccount(ctx context.Context, accountID string, amountCents int64) (*gateway.Transfer, error) {
	ctx, cancel := g.timeProvider.WithTimeout(ctx, g.requestTimeout)
	defer cancel()

	params := &stripe.TransferParams{
		Amount:      stripe.Int64(amountCents),
		Currency:    stripe.String(g.currency),
		Destination: stripe.String(accountID),
	}
	params.Context = ctx

	transfer, err := g.api.Transfers.New(params)
	if err != nil {
		return nil, g.wrapError("transfer", err)
	}

	return &gateway.Transfer{
		ID:          transfer.ID,
		AmountCents: transfer.Amount,
	}, nil
}

// CreatePayout moves funds from a connected account to its bank account
func (g *Gateway) CreatePayout(ctx context.Context, accountID string, amountCents int64) (*gateway.Payout, error) {
	ctx, cancel := g.timeProvider.WithTimeout(ctx, g.requestTimeout)
	defer cancel()

	params := &stripe.PayoutParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(g.currency),
	}
	params.Context = ctx
	params.SetStripeAccount(accountID)

	payout, err := g.api.Payouts.New(params)
	if err != nil {
		return nil, g.wrapError("payout", err)
	}

	return &gateway.Payout{
		ID:          payout.ID,
		AmountCents: payout.Amount,
	}, nil
}

// AddBankAccount attaches an external bank account to a connected account
func (g *Gateway) AddBankAccount(ctx context.Context, accountID string, details gateway.BankDetails) (string, error) {
	ctx, cancel := g.timeProvider.WithTimeout(ctx, g.requestTimeout)
	defer cancel()

	params := &stripe.BankAccountParams{
		Account:           stripe.String(accountID),
		Country:           stripe.String("US"),
		Currency:          stripe.String(g.currency),
		AccountHolderName: stripe.String(details.AccountHolderName),
		AccountHolderType: stripe.String("individual"),
		RoutingNumber:     stripe.String(details.RoutingNumber),
		AccountNumber:     stripe.String(details.AccountNumber),
	}
	params.Context = ctx

	bankAccount, err := g.api.BankAccounts.New(params)
	if err != nil {
		return "", g.wrapError("add_bank_account", err)
	}

	return bankAccount.ID, nil
}

// wrapError maps a Stripe client error onto the domain's ProviderError,
// preserving the provider's message for logs and development responses.
func (g *Gateway) wrapError(op string, err error) error {
	detail := ""

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		detail = stripeErr.Msg
	} else if errors.Is(err, context.DeadlineExceeded) {
		// Outcome at the provider is unknown after a timeout.
		detail = "request timed out"
	}

	g.logger.Error("Stripe call failed", map[string]any{
		"operation": op,
		"detail":    detail,
		"error":     err.Error(),
	})

	return errs.NewProviderError(op, detail, err)
}
