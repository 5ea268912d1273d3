package dto

// BalanceResponse represents the API response for the platform balance
type BalanceResponse struct {
	Available float64 `json:"available"`
	Pending   float64 `json:"pending"`
	Currency  string  `json:"currency"`
}

// RechargeRequest represents the API request for recharging the platform
type RechargeRequest struct {
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethodID string  `json:"paymentMethodId"`
}

// RechargeResponse represents the API response for a recorded recharge
type RechargeResponse struct {
	TransactionID   uint64 `json:"transactionId"`
	Amount          string `json:"amount"`
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret,omitempty"`
	Status          string `json:"status"`
}
