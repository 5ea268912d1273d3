package payout

import (
	"context"
	"time"

	"github.com/marketpay/marketpay/internal/domain/entity"
	errs "github.com/marketpay/marketpay/internal/domain/error"
	coreport "github.com/marketpay/marketpay/internal/domain/port/core"
	"github.com/marketpay/marketpay/internal/domain/port/gateway"
	"github.com/marketpay/marketpay/internal/domain/port/persistence"
)

// Result reports the identifiers produced by a completed payout
type Result struct {
	TransactionID uint64
	Amount        string
	TransferID    string
	PayoutID      string
}

// Service orchestrates the payout workflow: two provider calls (transfer,
// then payout) followed by two ledger inserts committed as one unit of work.
type Service struct {
	uow          persistence.UnitOfWork
	userRepo     persistence.UserRepository
	userLockRepo persistence.UserLockRepository
	gateway      gateway.PaymentGateway
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	lockTimeout  time.Duration
}

// NewService creates a new payout service
func NewService(
	uow persistence.UnitOfWork,
	userRepo persistence.UserRepository,
	userLockRepo persistence.UserLockRepository,
	paymentGateway gateway.PaymentGateway,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	lockTimeout time.Duration,
) *Service {
	return &Service{
		uow:          uow,
		userRepo:     userRepo,
		userLockRepo: userLockRepo,
		gateway:      paymentGateway,
		timeProvider: timeProvider,
		logger:       logger,
		lockTimeout:  lockTimeout,
	}
}

// ProcessPayout executes a payout of the given major-unit amount to a user.
//
// Consistency contract:
//   - transfer fails            -> no provider payout, zero ledger rows
//   - payout fails after the
//     transfer succeeded        -> a pending transaction row capturing the
//     transfer is persisted so the discrepancy
//     stays discoverable (reconciliation list)
//   - both provider calls
//     succeed                   -> transaction + payout rows committed
//     atomically, both or neither
//
// Payouts for one user are serialized through the user lock table; a second
// concurrent request fails with ErrUserLocked instead of double-spending.
func (s *Service) ProcessPayout(ctx context.Context, userID uint64, amount float64, description string) (*Result, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	amountCents, err := entity.ToCents(amount)
	if err != nil {
		return nil, err
	}

	if err := s.userLockRepo.AcquireLock(ctx, userID, s.lockTimeout); err != nil {
		return nil, err
	}
	defer func() {
		if err := s.userLockRepo.ReleaseLock(ctx, userID); err != nil {
			// The lock carries an expiry, so a failed release only delays
			// the user's next payout instead of blocking it.
			s.logger.Warn("Failed to release payout lock", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
	}()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := user.CanReceivePayout(); err != nil {
		s.logger.Warn("Payout rejected: user not eligible", map[string]any{
			"user_id": userID,
			"reason":  err.Error(),
		})
		return nil, err
	}

	transfer, err := s.gateway.TransferToAccount(ctx, user.ProviderAccountID, amountCents)
	if err != nil {
		s.logger.Error("Provider transfer failed, no ledger rows written", map[string]any{
			"user_id": userID,
			"amount":  entity.CentsToString(amountCents),
			"error":   err.Error(),
		})
		return nil, err
	}

	if description == "" {
		description = "Payout to user"
	}

	providerPayout, err := s.gateway.CreatePayout(ctx, user.ProviderAccountID, amountCents)
	if err != nil {
		// Funds already left the platform balance. Persist the transfer as a
		// pending transaction so reconciliation can find it; no automatic
		// reversal.
		s.recordPartialTransfer(ctx, userID, amountCents, transfer.ID, description)
		s.logger.Error("Provider payout failed after transfer succeeded", map[string]any{
			"user_id":     userID,
			"transfer_id": transfer.ID,
			"amount":      entity.CentsToString(amountCents),
			"error":       err.Error(),
		})
		return nil, errs.NewPayoutError(userID, entity.CentsToString(amountCents), transfer.ID,
			"payout creation failed after transfer", err)
	}

	transaction, err := s.persistLedgerRows(ctx, userID, amountCents, transfer.ID, providerPayout.ID, description)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Payout processed", map[string]any{
		"user_id":        userID,
		"transaction_id": transaction.ID,
		"transfer_id":    transfer.ID,
		"payout_id":      providerPayout.ID,
		"amount":         transaction.Amount,
	})

	return &Result{
		TransactionID: transaction.ID,
		Amount:        transaction.Amount,
		TransferID:    transfer.ID,
		PayoutID:      providerPayout.ID,
	}, nil
}

// persistLedgerRows inserts the transaction and payout rows inside a single
// database transaction. A transaction row without its payout row (or the
// reverse) would violate the 1:1 invariant, so any failure rolls back both.
func (s *Service) persistLedgerRows(
	ctx context.Context,
	userID uint64,
	amountCents int64,
	transferID string,
	payoutID string,
	description string,
) (*entity.Transaction, error) {
	transaction, err := entity.NewTransaction(
		entity.TypePayout, amountCents, entity.StatusSucceeded, transferID, userID, description, s.timeProvider)
	if err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.uow.GetTransactionRepository(txCtx).Create(txCtx, transaction); err != nil {
		s.rollback(txCtx, userID)
		return nil, err
	}

	payoutRow, err := entity.NewPayout(transaction, transferID, payoutID, s.timeProvider)
	if err != nil {
		s.rollback(txCtx, userID)
		return nil, err
	}
	payoutRow.TransactionID = transaction.ID

	if err := s.uow.GetPayoutRepository(txCtx).Create(txCtx, payoutRow); err != nil {
		s.rollback(txCtx, userID)
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.rollback(txCtx, userID)
		return nil, err
	}

	return transaction, nil
}

// recordPartialTransfer persists a pending transaction for a transfer whose
// payout never happened. Best effort: the provider state is already
// inconsistent with the ledger, so a failure here is logged, not returned.
func (s *Service) recordPartialTransfer(ctx context.Context, userID uint64, amountCents int64, transferID, description string) {
	transaction, err := entity.NewTransaction(
		entity.TypePayout, amountCents, entity.StatusPending, transferID, userID,
		description+" (transfer completed, payout pending reconciliation)", s.timeProvider)
	if err != nil {
		s.logger.Error("Failed to build partial transfer record", map[string]any{
			"user_id":     userID,
			"transfer_id": transferID,
			"error":       err.Error(),
		})
		return
	}

	if err := s.uow.GetTransactionRepository(ctx).Create(ctx, transaction); err != nil {
		s.logger.Error("Failed to persist partial transfer record", map[string]any{
			"user_id":     userID,
			"transfer_id": transferID,
			"error":       err.Error(),
		})
	}
}

func (s *Service) rollback(ctx context.Context, userID uint64) {
	if err := s.uow.Rollback(ctx); err != nil {
		s.logger.Error("Failed to roll back payout ledger writes", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}
