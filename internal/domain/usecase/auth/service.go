package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/marketpay/marketpay/internal/domain/entity"
	errs "github.com/marketpay/marketpay/internal/domain/error"
	coreport "github.com/marketpay/marketpay/internal/domain/port/core"
	"github.com/marketpay/marketpay/internal/domain/port/gateway"
	"github.com/marketpay/marketpay/internal/domain/port/persistence"
	"github.com/marketpay/marketpay/internal/domain/port/security"
)

// RegisterRequest carries the registration form fields
type RegisterRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Result is returned by both Register and Login
type Result struct {
	User  *entity.User
	Token string
}

// Service handles registration, login and ownership checks
type Service struct {
	userRepo     persistence.UserRepository
	gateway      gateway.PaymentGateway
	hasher       security.PasswordHasher
	tokens       security.TokenIssuer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new auth service
func NewService(
	userRepo persistence.UserRepository,
	paymentGateway gateway.PaymentGateway,
	hasher security.PasswordHasher,
	tokens security.TokenIssuer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		gateway:      paymentGateway,
		hasher:       hasher,
		tokens:       tokens,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register creates a user together with their payment provider account and
// returns a signed session token. The provider account is created before the
// user row is inserted: if account creation fails, no row is written.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Result, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Duplicate check up front for a clean Conflict; the unique index on
	// email still backs this under concurrent registrations.
	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, errs.ErrEmailTaken
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", map[string]any{"error": err.Error()})
		return nil, errs.ErrInternalServer
	}

	accountID, err := s.gateway.CreateAccount(ctx, gateway.AccountProfile{
		Email:     email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		s.logger.Error("Provider account creation failed during registration", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}

	user, err := entity.NewUser(email, hash, req.FirstName, req.LastName, accountID, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}

	token, err := s.tokens.Issue(security.TokenClaims{UserID: user.ID, Email: user.Email})
	if err != nil {
		s.logger.Error("Failed to issue session token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	s.logger.Info("User registered", map[string]any{
		"user_id":             user.ID,
		"provider_account_id": accountID,
	})

	return &Result{User: user, Token: token}, nil
}

// Login verifies credentials and returns a signed session token. Unknown
// email and wrong password produce the same error.
func (s *Service) Login(ctx context.Context, email, password string) (*Result, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return nil, errs.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(security.TokenClaims{UserID: user.ID, Email: user.Email})
	if err != nil {
		s.logger.Error("Failed to issue session token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	s.logger.Info("User logged in", map[string]any{"user_id": user.ID})

	return &Result{User: user, Token: token}, nil
}

// Authorize enforces the ownership rule: a caller may only act on their own
// resources. Applied by every owner-scoped usecase method.
func Authorize(callerID, ownerID uint64) error {
	if callerID != ownerID {
		return errs.ErrForbidden
	}
	return nil
}
