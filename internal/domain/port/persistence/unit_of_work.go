package persistence

import (
	"context"
)

// UnitOfWork coordinates writes across multiple repositories inside one
// database transaction. The payout workflow relies on it to commit the
// transaction row and its payout row as a single atomic unit.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetPayoutRepository returns a payout repository bound to the current transaction
	GetPayoutRepository(ctx context.Context) PayoutRepository

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository
}
