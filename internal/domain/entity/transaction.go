package entity

import (
	"fmt"
	"time"

	errs "github.com/marketpay/marketpay/internal/domain/error"
	coreport "github.com/marketpay/marketpay/internal/domain/port/core"
)

// TransactionType represents the kind of financial operation a transaction records
type TransactionType string

// Transaction types
const (
	TypeRecharge TransactionType = "recharge"
	TypePayout   TransactionType = "payout"
)

// TransactionStatus defines possible status values for a transaction.
// Provider responses are recorded optimistically; StatusPending marks rows
// awaiting reconciliation with the provider.
type TransactionStatus string

// TransactionStatus constants
const (
	StatusPending   TransactionStatus = "pending"
	StatusSucceeded TransactionStatus = "succeeded"
	StatusFailed    TransactionStatus = "failed"
)

// Transaction is a ledger row recording one financial operation against the
// payment provider. Type is immutable after creation. UserID is zero for
// platform-level recharges.
type Transaction struct {
	ID            uint64
	Type          TransactionType
	Amount        string // major units, two decimal places
	AmountInCents int64
	Status        TransactionStatus
	ExternalID    string // provider-side identifier (payment intent or transfer)
	UserID        uint64 // 0 for platform transactions
	Description   string
	CreatedAt     time.Time
}

// NewTransaction creates a ledger transaction for the given operation.
// userID may be 0 for platform-level recharges.
func NewTransaction(
	txType TransactionType,
	amountCents int64,
	status TransactionStatus,
	externalID string,
	userID uint64,
	description string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if !isValidType(txType) {
		return nil, fmt.Errorf("%w: unknown transaction type %q", errs.ErrInvalidRequest, txType)
	}
	if !isValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown transaction status %q", errs.ErrInvalidRequest, status)
	}
	if amountCents <= 0 {
		return nil, errs.ErrNegativeAmount
	}
	if externalID == "" {
		return nil, fmt.Errorf("%w: missing external transaction id", errs.ErrInvalidRequest)
	}

	return &Transaction{
		Type:          txType,
		Amount:        CentsToString(amountCents),
		AmountInCents: amountCents,
		Status:        status,
		ExternalID:    externalID,
		UserID:        userID,
		Description:   description,
		CreatedAt:     timeProvider.Now(),
	}, nil
}

// IsPayout reports whether this transaction should own a payout sub-record
func (t *Transaction) IsPayout() bool {
	return t.Type == TypePayout
}

func isValidType(txType TransactionType) bool {
	return txType == TypeRecharge || txType == TypePayout
}

func isValidStatus(status TransactionStatus) bool {
	return status == StatusPending || status == StatusSucceeded || status == StatusFailed
}
