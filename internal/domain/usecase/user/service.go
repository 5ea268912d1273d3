package user

import (
	"context"

	"github.com/marketpay/marketpay/internal/domain/entity"
	coreport "github.com/marketpay/marketpay/internal/domain/port/core"
	"github.com/marketpay/marketpay/internal/domain/port/gateway"
	"github.com/marketpay/marketpay/internal/domain/port/persistence"
	"github.com/marketpay/marketpay/internal/domain/usecase/auth"
)

// Service handles profile reads, bank account linking and payout history.
// Every method is owner-scoped: the caller must be the user it targets.
type Service struct {
	userRepo     persistence.UserRepository
	payoutRepo   persistence.PayoutRepository
	gateway      gateway.PaymentGateway
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new user service
func NewService(
	userRepo persistence.UserRepository,
	payoutRepo persistence.PayoutRepository,
	paymentGateway gateway.PaymentGateway,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		payoutRepo:   payoutRepo,
		gateway:      paymentGateway,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetProfile returns a user's own profile. The ownership check runs before
// the lookup, so a caller probing another user's ID gets Forbidden whether
// or not that user exists.
func (s *Service) GetProfile(ctx context.Context, callerID, userID uint64) (*entity.User, error) {
	if err := auth.Authorize(callerID, userID); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}

// AddBankAccount attaches a bank account to the user's provider account and
// records the returned identifier. Linking is what makes the user eligible
// for payouts.
func (s *Service) AddBankAccount(ctx context.Context, callerID, userID uint64, details gateway.BankDetails) (string, error) {
	if err := auth.Authorize(callerID, userID); err != nil {
		return "", err
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	bankAccountID, err := s.gateway.AddBankAccount(ctx, u.ProviderAccountID, details)
	if err != nil {
		s.logger.Error("Provider bank account attachment failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return "", err
	}

	if err := s.userRepo.UpdateBankAccount(ctx, userID, bankAccountID); err != nil {
		s.logger.Error("Failed to record bank account id", map[string]any{
			"user_id":         userID,
			"bank_account_id": bankAccountID,
			"error":           err.Error(),
		})
		return "", err
	}

	s.logger.Info("Bank account linked", map[string]any{
		"user_id":         userID,
		"bank_account_id": bankAccountID,
	})

	return bankAccountID, nil
}

// PayoutHistory returns the user's own payouts joined with the parent
// transaction, newest first.
func (s *Service) PayoutHistory(ctx context.Context, callerID, userID uint64) ([]persistence.PayoutHistoryEntry, error) {
	if err := auth.Authorize(callerID, userID); err != nil {
		return nil, err
	}
	return s.payoutRepo.ListByUser(ctx, userID)
}
