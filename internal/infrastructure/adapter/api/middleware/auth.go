package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainerr "github.com/marketpay/marketpay/internal/domain/error"
	coreport "github.com/marketpay/marketpay/internal/domain/port/core"
	"github.com/marketpay/marketpay/internal/domain/port/security"
	"github.com/marketpay/marketpay/internal/infrastructure/adapter/api/dto"
)

// Context keys set by the auth middleware
const (
	CallerIDKey    = "callerID"
	CallerEmailKey = "callerEmail"
)

// Auth middleware verifies the bearer token and stores the caller's identity
// in the request context
func Auth(tokens security.TokenIssuer, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
				Message: "Missing or malformed authorization header",
			})
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			logger.Warn("Rejected session token", map[string]any{
				"path":  c.Request.URL.Path,
				"ip":    c.ClientIP(),
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(CallerIDKey, claims.UserID)
		c.Set(CallerEmailKey, claims.Email)
		c.Next()
	}
}

// CallerID returns the authenticated caller's user ID from the request
// context. The second return is false on routes without the Auth middleware.
func CallerID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(CallerIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint64)
	return id, ok
}
