package persistence

import (
	"context"

	"github.com/marketpay/marketpay/internal/domain/entity"
)

// PayoutHistoryEntry pairs a payout row with its parent transaction's
// status and external identifier for the history listing.
type PayoutHistoryEntry struct {
	Payout                entity.Payout
	TransactionStatus     entity.TransactionStatus
	TransactionExternalID string
}

// PayoutRepository defines essential methods to interact with payout data
type PayoutRepository interface {
	// Create saves a new payout row and assigns the ID on the entity
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, payout *entity.Payout) error

	// GetByTransactionID retrieves the payout owned by a transaction
	//
	// Possible errors:
	// - ErrNotFound: If the transaction has no payout row
	// - ErrDatabaseConnection: If database connection fails
	GetByTransactionID(ctx context.Context, transactionID uint64) (*entity.Payout, error)

	// ListByUser returns a user's payouts joined with the parent
	// transaction, newest first
	ListByUser(ctx context.Context, userID uint64) ([]PayoutHistoryEntry, error)
}
