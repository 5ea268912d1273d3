package dto

import (
	"time"

	"github.com/marketpay/marketpay/internal/domain/entity"
)

// TransactionResponse represents the API response for a ledger transaction.
// UserEmail is only present on the admin listing; userId 0 marks a platform
// transaction.
type TransactionResponse struct {
	ID          uint64    `json:"id"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"`
	Status      string    `json:"status"`
	ExternalID  string    `json:"externalId"`
	UserID      uint64    `json:"userId"`
	UserEmail   string    `json:"userEmail,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewTransactionResponse maps a transaction entity to its API representation
func NewTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          transaction.ID,
		Type:        string(transaction.Type),
		Amount:      transaction.Amount,
		Status:      string(transaction.Status),
		ExternalID:  transaction.ExternalID,
		UserID:      transaction.UserID,
		Description: transaction.Description,
		CreatedAt:   transaction.CreatedAt,
	}
}

// TransactionDetailResponse is a transaction together with its payout
// sub-record when one exists
type TransactionDetailResponse struct {
	TransactionResponse
	Payout *PayoutResponse `json:"payout,omitempty"`
}
