package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/marketpay/marketpay/internal/domain/error"
	coreport "github.com/marketpay/marketpay/internal/domain/port/core"
	transactionUseCase "github.com/marketpay/marketpay/internal/domain/usecase/transaction"
	"github.com/marketpay/marketpay/internal/infrastructure/adapter/api/dto"
	"github.com/marketpay/marketpay/internal/infrastructure/adapter/api/middleware"
)

// TransactionHandler handles ledger query HTTP requests
type TransactionHandler struct {
	transactionService *transactionUseCase.Service
	logger             coreport.Logger
	devMode            bool
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	transactionService *transactionUseCase.Service,
	logger coreport.Logger,
	devMode bool,
) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		logger:             logger,
		devMode:            devMode,
	}
}

// ListAll handles the GET /transactions endpoint
func (h *TransactionHandler) ListAll(c *gin.Context) {
	listings, err := h.transactionService.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, h.devMode, err)
		return
	}

	responses := make([]dto.TransactionResponse, 0, len(listings))
	for i := range listings {
		response := dto.NewTransactionResponse(&listings[i].Transaction)
		response.UserEmail = listings[i].UserEmail
		responses = append(responses, response)
	}
	c.JSON(http.StatusOK, responses)
}

// GetByID handles the GET /transactions/:id endpoint
func (h *TransactionHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid transaction ID format",
		})
		return
	}

	detail, err := h.transactionService.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, h.devMode, err)
		return
	}

	response := dto.TransactionDetailResponse{
		TransactionResponse: dto.NewTransactionResponse(&detail.Transaction),
	}
	if detail.Payout != nil {
		payout := dto.NewPayoutResponse(detail.Payout)
		response.Payout = &payout
	}
	c.JSON(http.StatusOK, response)
}

// ListByUser handles the GET /transactions/user/:userId endpoint
func (h *TransactionHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "Invalid user ID format",
		})
		return
	}

	callerID, ok := middleware.CallerID(c)
	if !ok {
		writeError(c, h.logger, h.devMode, domainerr.ErrInvalidCredentials)
		return
	}

	transactions, err := h.transactionService.ListByUser(c.Request.Context(), callerID, userID)
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
