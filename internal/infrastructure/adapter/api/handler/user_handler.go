package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/marketpay/marketpay/internal/domain/error"
	coreport "github.com/marketpay/marketpay/internal/domain/port/core"
	"github.com/marketpay/marketpay/internal/domain/port/gateway"
	userUseCase "github.com/marketpay/marketpay/internal/domain/usecase/user"
	"github.com/marketpay/marketpay/internal/infrastructure/adapter/api/dto"
	"github.com/marketpay/marketpay/internal/infrastructure/adapter/api/middleware"
)

// UserHandler handles user profile HTTP requests
type UserHandler struct {
	userService *userUseCase.Service
	logger      coreport.Logger
	devMode     bool
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userService *userUseCase.Service, logger coreport.Logger, devMode bool) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
		devMode:     devMode,
	}
}

// pathUserID parses the :id or :userId path parameter and the caller's
// identity. A false return means an error response has been written.
func (h *UserHandler) pathUserID(c *gin.Context, param string) (callerID, userID uint64, ok bool) {
	userID, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "Invalid user ID format",
		})
		return 0, 0, false
	}

	callerID, found := middleware.CallerID(c)
	if !found {
		writeError(c, h.logger, h.devMode, domainerr.ErrInvalidCredentials)
		return 0, 0, false
	}

	return callerID, userID, true
}

// GetProfile handles the GET /users/:id endpoint
func (h *UserHandler) GetProfile(c *gin.Context) {
	callerID, userID, ok := h.pathUserID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), callerID, userID)
	if err != nil {
		writeError(c, h.logger, h.devMode, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// AddBankAccount handles the POST /users/:id/bank-account endpoint
func (h *UserHandler) AddBankAccount(c *gin.Context) {
	callerID, userID, ok := h.pathUserID(c, "id")
	if !ok {
		return
	}

	var req dto.BankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	bankAccountID, err := h.userService.AddBankAccount(c.Request.Context(), callerID, userID, gateway.BankDetails{
		AccountHolderName: req.AccountHolderName,
		RoutingNumber:     req.RoutingNumber,
		AccountNumber:     req.AccountNumber,
	})
	if err != nil {
		writeError(c, h.logger, h.devMode, err)
		return
	}

	c.JSON(http.StatusOK, dto.BankAccountResponse{
		UserID:        userID,
		BankAccountID: bankAccountID,
	})
}

// PayoutHistory handles the GET /users/:id/payouts endpoint
func (h *UserHandler) PayoutHistory(c *gin.Context) {
	callerID, userID, ok := h.pathUserID(c, "id")
	if !ok {
		return
	}

	entries, err := h.userService.PayoutHistory(c.Request.Context(), callerID, userID)
	if err != nil {
		writeError(c, h.logger, h.devMode, err)
		return
	}

	responses := make([]dto.PayoutHistoryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, dto.NewPayoutHistoryResponse(entry))
	}
	c.JSON(http.StatusOK, responses)
}
