package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/marketpay/marketpay/internal/domain/port/core"
	payoutUseCase "github.com/marketpay/marketpay/internal/domain/usecase/payout"
	platformUseCase "github.com/marketpay/marketpay/internal/domain/usecase/platform"
	"github.com/marketpay/marketpay/internal/infrastructure/adapter/api/dto"
)

// PlatformHandler handles platform balance, recharge and payout HTTP requests
type PlatformHandler struct {
	platformService *platformUseCase.Service
	payoutService   *payoutUseCase.Service
	logger          coreport.Logger
	devMode         bool
}

// NewPlatformHandler creates a new platform handler instance
func NewPlatformHandler(
	platformService *platformUseCase.Service,
	payoutService *payoutUseCase.Service,
	logger coreport.Logger,
	devMode bool,
) *PlatformHandler {
	return &PlatformHandler{
		platformService: platformService,
		payoutService:   payoutService,
		logger:          logger,
		devMode:         devMode,
	}
}

// GetBalance handles the GET /platform/balance endpoint
func (h *PlatformHandler) GetBalance(c *gin.Context) {
	balance, err := h.platformService.GetBalance(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, h.devMode, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		Available: balance.Available,
		Pending:   balance.Pending,
		Currency:  balance.Currency,
	})
}

// Recharge handles the POST /platform/recharge endpoint
func (h *PlatformHandler) Recharge(c *gin.Context) {
	var req dto.RechargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	result, err := h.platformService.Recharge(c.Request.Context(), req.Amount, req.PaymentMethodID)
	if err != nil {
		writeError(c, h.logger, h.devMode, err)
		return
	}

	c.JSON(http.StatusOK, dto.RechargeResponse{
		TransactionID:   result.TransactionID,
		Amount:          result.Amount,
		PaymentIntentID: result.PaymentIntent.ID,
		ClientSecret:    result.PaymentIntent.ClientSecret,
		Status:          result.PaymentIntent.Status,
	})
}

// ProcessPayout handles the POST /platform/payout endpoint
func (h *PlatformHandler) ProcessPayout(c *gin.Context) {
	var req dto.PayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	result, err := h.payoutService.ProcessPayout(c.Request.Context(), req.UserID, req.Amount, req.Description)
	if err != nil {
		writeError(c, h.logger, h.devMode, err)
		return
	}

	c.JSON(http.StatusOK, dto.PayoutResponse{
		TransactionID: result.TransactionID,
		Amount:        result.Amount,
		TransferID:    result.TransferID,
		PayoutID:      result.PayoutID,
	})
}

// Reconciliation handles the GET /platform/reconciliation endpoint. It lists
// payout transactions whose provider transfer succeeded but whose payout leg
// never completed.
func (h *PlatformHandler) Reconciliation(c *gin.Context) {
	transactions, err := h.platformService.ListUnreconciled(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, h.devMode, err)
		return
	}

	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, dto.NewTransactionResponse(&transactions[i]))
	}
	c.JSON(http.StatusOK, responses)
}
