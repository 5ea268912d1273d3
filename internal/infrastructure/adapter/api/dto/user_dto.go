package dto

import (
	"time"

	"github.com/marketpay/marketpay/internal/domain/entity"
)

// UserResponse represents the API response for a user profile
type UserResponse struct {
	ID                uint64    `json:"id"`
	Email             string    `json:"email"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	ProviderAccountID string    `json:"providerAccountId,omitempty"`
	BankAccountLinked bool      `json:"bankAccountLinked"`
	CreatedAt         time.Time `json:"createdAt"`
}

// NewUserResponse maps a user entity to its API representation
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:                user.ID,
		Email:             user.Email,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		ProviderAccountID: user.ProviderAccountID,
		BankAccountLinked: user.BankAccountID != "",
		CreatedAt:         user.CreatedAt,
	}
}

// BankAccountRequest represents the API request for linking a bank account
type BankAccountRequest struct {
	AccountHolderName string `json:"accountHolderName" binding:"required"`
	RoutingNumber     string `json:"routingNumber" binding:"required"`
	AccountNumber     string `json:"accountNumber" binding:"required"`
}

// BankAccountResponse represents the API response for a linked bank account
type BankAccountResponse struct {
	UserID        uint64 `json:"userId"`
	BankAccountID string `json:"bankAccountId"`
}
