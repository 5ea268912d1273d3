package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	errs "github.com/marketpay/marketpay/internal/domain/error"
	coreport "github.com/marketpay/marketpay/internal/domain/port/core"
	"github.com/marketpay/marketpay/internal/domain/port/security"
)

// JWTIssuer implements TokenIssuer with HS256-signed JWTs carrying the user
// id and email, valid for a fixed window.
type JWTIssuer struct {
	secret       []byte
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewJWTIssuer creates a new JWT token issuer
func NewJWTIssuer(secret string, ttl time.Duration, timeProvider coreport.TimeProvider) *JWTIssuer {
	return &JWTIssuer{
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: timeProvider,
	}
}

// Issue signs a session token for the given identity
func (i *JWTIssuer) Issue(claims security.TokenClaims) (string, error) {
	now := i.timeProvider.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": claims.UserID,
		"email":   claims.Email,
		"iat":     now.Unix(),
		"nbf":     now.Unix(),
		"exp":     now.Add(i.ttl).Unix(),
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning the embedded identity.
// Any malformed, expired or badly signed token maps to ErrInvalidCredentials.
func (i *JWTIssuer) Verify(tokenString string) (*security.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil || !token.Valid {
		return nil, errs.ErrInvalidCredentials
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errs.ErrInvalidCredentials
	}

	userID, ok := mapClaims["user_id"].(float64)
	if !ok || userID <= 0 {
		return nil, errs.ErrInvalidCredentials
	}

	email, _ := mapClaims["email"].(string)

	return &security.TokenClaims{
		UserID: uint64(userID),
		Email:  email,
	}, nil
}
