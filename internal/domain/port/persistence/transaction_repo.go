package persistence

import (
	"context"

	"github.com/marketpay/marketpay/internal/domain/entity"
)

// TransactionWithOwner pairs a ledger transaction with the owning user's
// email for the admin listing. Email is empty for platform transactions.
type TransactionWithOwner struct {
	Transaction entity.Transaction
	UserEmail   string
}

// TransactionRepository defines essential methods to interact with ledger
// transaction data
type TransactionRepository interface {
	// Create saves a new transaction and assigns the ID on the entity
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction by its primary key
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction has this ID
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// ListAll returns every transaction joined with the owner's email,
	// newest first
	ListAll(ctx context.Context) ([]TransactionWithOwner, error)

	// ListByUser returns a user's transactions, newest first
	ListByUser(ctx context.Context, userID uint64) ([]entity.Transaction, error)

	// ListUnreconciled returns payout-type transactions still pending, i.e.
	// the provider transfer succeeded but no payout row was recorded
	ListUnreconciled(ctx context.Context) ([]entity.Transaction, error)
}
