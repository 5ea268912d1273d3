package transaction

import (
	"context"
	"errors"

	"github.com/marketpay/marketpay/internal/domain/entity"
	errs "github.com/marketpay/marketpay/internal/domain/error"
	coreport "github.com/marketpay/marketpay/internal/domain/port/core"
	"github.com/marketpay/marketpay/internal/domain/port/persistence"
	"github.com/marketpay/marketpay/internal/domain/usecase/auth"
)

// Detail is a transaction together with its payout sub-record, present only
// when the transaction is a payout.
type Detail struct {
	Transaction entity.Transaction
	Payout      *entity.Payout
}

// Service is the read-only query surface over the ledger
type Service struct {
	transactionRepo persistence.TransactionRepository
	payoutRepo      persistence.PayoutRepository
	logger          coreport.Logger
}

// NewService creates a new transaction query service
func NewService(
	transactionRepo persistence.TransactionRepository,
	payoutRepo persistence.PayoutRepository,
	logger coreport.Logger,
) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		payoutRepo:      payoutRepo,
		logger:          logger,
	}
}

// ListAll returns every transaction joined with the owner's email, newest
// first. Restricted to authenticated callers only; an administrative role
// check is a known gap carried over from the original system.
func (s *Service) ListAll(ctx context.Context) ([]persistence.TransactionWithOwner, error) {
	return s.transactionRepo.ListAll(ctx)
}

// GetByID returns a transaction and, for payouts, its payout sub-record.
func (s *Service) GetByID(ctx context.Context, id uint64) (*Detail, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &Detail{Transaction: *transaction}

	if transaction.IsPayout() {
		payoutRow, err := s.payoutRepo.GetByTransactionID(ctx, id)
		if err != nil {
			// A payout transaction without its row is the known
			// partial-failure state; the detail is still served.
			if !errors.Is(err, errs.ErrNotFound) {
				return nil, err
			}
			s.logger.Warn("Payout transaction has no payout row", map[string]any{
				"transaction_id": id,
			})
		} else {
			detail.Payout = payoutRow
		}
	}

	return detail, nil
}

// ListByUser returns a user's own transactions, newest first. Enforces
// caller == resource owner.
func (s *Service) ListByUser(ctx context.Context, callerID, userID uint64) ([]entity.Transaction, error) {
	if err := auth.Authorize(callerID, userID); err != nil {
		return nil, err
	}
	return s.transactionRepo.ListByUser(ctx, userID)
}
