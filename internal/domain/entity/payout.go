package entity

import (
	"fmt"
	"time"

	errs "github.com/marketpay/marketpay/internal/domain/error"
	coreport "github.com/marketpay/marketpay/internal/domain/port/core"
)

// Payout is the sub-record of a payout-type transaction. Every payout row
// references exactly one transaction row and carries the same amount; the
// pair is committed as a single unit of work.
type Payout struct {
	ID            uint64
	TransactionID uint64
	UserID        uint64
	Amount        string
	AmountInCents int64
	TransferID    string // provider transfer: platform -> user account
	PayoutID      string // provider payout: user account -> bank account
	Status        TransactionStatus
	CreatedAt     time.Time
}

// NewPayout creates a payout row for the given parent transaction. The
// amount is taken from the transaction so the two can never disagree.
func NewPayout(
	transaction *Transaction,
	transferID string,
	payoutID string,
	timeProvider coreport.TimeProvider,
) (*Payout, error) {
	if transaction == nil || !transaction.IsPayout() {
		return nil, fmt.Errorf("%w: payout requires a payout-type transaction", errs.ErrInvalidRequest)
	}
	if transaction.UserID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if transferID == "" || payoutID == "" {
		return nil, fmt.Errorf("%w: missing provider identifiers", errs.ErrInvalidRequest)
	}

	return &Payout{
		UserID:        transaction.UserID,
		Amount:        transaction.Amount,
		AmountInCents: transaction.AmountInCents,
		TransferID:    transferID,
		PayoutID:      payoutID,
		Status:        transaction.Status,
		CreatedAt:     timeProvider.Now(),
	}, nil
}
