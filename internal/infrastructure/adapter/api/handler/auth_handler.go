package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/marketpay/marketpay/internal/domain/port/core"
	authUseCase "github.com/marketpay/marketpay/internal/domain/usecase/auth"
	"github.com/marketpay/marketpay/internal/infrastructure/adapter/api/dto"
)

// AuthHandler handles registration and login HTTP requests
type AuthHandler struct {
	authService *authUseCase.Service
	logger      coreport.Logger
	devMode     bool
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authService *authUseCase.Service, logger coreport.Logger, devMode bool) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
		devMode:     devMode,
	}
}

// Register handles the POST /auth/register endpoint
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), authUseCase.RegisterRequest{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		writeError(c, h.logger, h.devMode, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token: result.Token,
		User:  dto.NewUserResponse(result.User),
	})
}

// Login handles the POST /auth/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.logger, h.devMode, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: result.Token,
		User:  dto.NewUserResponse(result.User),
	})
}
