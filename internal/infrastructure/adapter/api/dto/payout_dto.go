package dto

import (
	"time"

	"github.com/marketpay/marketpay/internal/domain/entity"
	"github.com/marketpay/marketpay/internal/domain/port/persistence"
)

// PayoutRequest represents the API request for paying out a user
type PayoutRequest struct {
	UserID      uint64  `json:"userId" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description"`
}

// PayoutResponse represents the API response for a completed payout
type PayoutResponse struct {
	ID            uint64    `json:"id,omitempty"`
	TransactionID uint64    `json:"transactionId"`
	UserID        uint64    `json:"userId,omitempty"`
	Amount        string    `json:"amount"`
	TransferID    string    `json:"transferId"`
	PayoutID      string    `json:"payoutId"`
	Status        string    `json:"status,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

// NewPayoutResponse maps a payout entity to its API representation
func NewPayoutResponse(payout *entity.Payout) PayoutResponse {
	return PayoutResponse{
		ID:            payout.ID,
		TransactionID: payout.TransactionID,
		UserID:        payout.UserID,
		Amount:        payout.Amount,
		TransferID:    payout.TransferID,
		PayoutID:      payout.PayoutID,
		Status:        string(payout.Status),
		CreatedAt:     payout.CreatedAt,
	}
}

// PayoutHistoryResponse represents one entry of a user's payout history
type PayoutHistoryResponse struct {
	PayoutResponse
	TransactionStatus     string `json:"transactionStatus"`
	TransactionExternalID string `json:"transactionExternalId"`
}

// NewPayoutHistoryResponse maps a history entry to its API representation
func NewPayoutHistoryResponse(entry persistence.PayoutHistoryEntry) PayoutHistoryResponse {
	return PayoutHistoryResponse{
		PayoutResponse:        NewPayoutResponse(&entry.Payout),
		TransactionStatus:     string(entry.TransactionStatus),
		TransactionExternalID: entry.TransactionExternalID,
	}
}
