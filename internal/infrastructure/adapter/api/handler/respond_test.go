package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	domainerr "github.com/marketpay/marketpay/internal/domain/error"
)

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"EmailTaken", domainerr.ErrEmailTaken, http.StatusConflict},
		{"InvalidCredentials", domainerr.ErrInvalidCredentials, http.StatusUnauthorized},
		{"Forbidden", domainerr.ErrForbidden, http.StatusForbidden},
		{"UserNotFound", domainerr.ErrUserNotFound, http.StatusNotFound},
		{"TransactionNotFound", domainerr.ErrTransactionNotFound, http.StatusNotFound},
		{"NotFound", domainerr.ErrNotFound, http.StatusNotFound},
		{"InvalidAmount", domainerr.ErrInvalidAmount, http.StatusBadRequest},
		{"NegativeAmount", domainerr.ErrNegativeAmount, http.StatusBadRequest},
		{"InvalidUserID", domainerr.ErrInvalidUserID, http.StatusBadRequest},
		{"InvalidRequest", domainerr.ErrInvalidRequest, http.StatusBadRequest},
		{"NoProviderAccount", domainerr.ErrNoProviderAccount, http.StatusBadRequest},
		{"NoBankAccount", domainerr.ErrNoBankAccount, http.StatusBadRequest},
		{"WrappedNoBankAccount", fmt.Errorf("payout: %w", domainerr.ErrNoBankAccount), http.StatusBadRequest},
		{"UserLocked", domainerr.ErrUserLocked, http.StatusConflict},
		{"Provider", domainerr.NewProviderError("transfer", "", errors.New("api error")), http.StatusBadGateway},
		{"PayoutWrappingProvider", domainerr.NewPayoutError(1, "10.00", "tr_1", "payout creation failed after transfer",
			domainerr.NewProviderError("payout", "", errors.New("api error"))), http.StatusBadGateway},
		{"Unknown", errors.New("unknown error"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, message := httpStatus(tc.err)
			if status != tc.expected {
				t.Errorf("httpStatus(%v) = %d, want %d", tc.err, status, tc.expected)
			}
			if message == "" {
				t.Errorf("httpStatus(%v) returned an empty message", tc.err)
			}
		})
	}
}
