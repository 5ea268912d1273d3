package platform

import (
	"context"

	"github.com/marketpay/marketpay/internal/domain/entity"
	coreport "github.com/marketpay/marketpay/internal/domain/port/core"
	"github.com/marketpay/marketpay/internal/domain/port/gateway"
	"github.com/marketpay/marketpay/internal/domain/port/persistence"
)

// BalanceResult is the platform balance in major units
type BalanceResult struct {
	Available float64
	Pending   float64
	Currency  string
}

// RechargeResult reports a recorded platform recharge
type RechargeResult struct {
	TransactionID uint64
	Amount        string
	PaymentIntent *gateway.PaymentIntent
}

// Service reads the platform balance and records recharge transactions
type Service struct {
	transactionRepo persistence.TransactionRepository
	gateway         gateway.PaymentGateway
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	currency        string
}

// NewService creates a new platform service. currency is the single
// configured display currency, e.g. "usd".
func NewService(
	transactionRepo persistence.TransactionRepository,
	paymentGateway gateway.PaymentGateway,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	currency string,
) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		gateway:         paymentGateway,
		timeProvider:    timeProvider,
		logger:          logger,
		currency:        currency,
	}
}

// GetBalance sums the provider's available and pending line items (minor
// units) and converts to major units for display.
func (s *Service) GetBalance(ctx context.Context) (*BalanceResult, error) {
	balance, err := s.gateway.GetBalance(ctx)
	if err != nil {
		return nil, err
	}

	var availableCents, pendingCents int64
	for _, line := range balance.Available {
		availableCents += line.AmountCents
	}
	for _, line := range balance.Pending {
		pendingCents += line.AmountCents
	}

	return &BalanceResult{
		Available: entity.CentsToAmount(availableCents),
		Pending:   entity.CentsToAmount(pendingCents),
		Currency:  s.currency,
	}, nil
}

// Recharge requests a payment intent for the given major-unit amount and
// records a platform transaction referencing it. The intent is recorded
// optimistically as succeeded; a reconciliation pass against the provider
// can downgrade rows later via the status enum.
func (s *Service) Recharge(ctx context.Context, amount float64, paymentMethodID string) (*RechargeResult, error) {
	amountCents, err := entity.ToCents(amount)
	if err != nil {
		return nil, err
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, amountCents, paymentMethodID)
	if err != nil {
		s.logger.Error("Payment intent creation failed", map[string]any{
			"amount": entity.CentsToString(amountCents),
			"error":  err.Error(),
		})
		return nil, err
	}

	transaction, err := entity.NewTransaction(
		entity.TypeRecharge, amountCents, entity.StatusSucceeded, intent.ID, 0,
		"Platform account recharge", s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		s.logger.Error("Failed to record recharge transaction", map[string]any{
			"payment_intent": intent.ID,
			"error":          err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Platform recharged", map[string]any{
		"transaction_id": transaction.ID,
		"payment_intent": intent.ID,
		"amount":         transaction.Amount,
	})

	return &RechargeResult{
		TransactionID: transaction.ID,
		Amount:        transaction.Amount,
		PaymentIntent: intent,
	}, nil
}

// ListUnreconciled returns payout transactions whose provider transfer
// succeeded but whose payout never completed. These rows are written by the
// payout workflow's partial-failure path and need operator attention.
func (s *Service) ListUnreconciled(ctx context.Context) ([]entity.Transaction, error) {
	return s.transactionRepo.ListUnreconciled(ctx)
}
