package security

// PasswordHasher hides the salted one-way hash used for stored credentials.
type PasswordHasher interface {
	// Hash produces a salted hash of the plaintext password
	Hash(password string) (string, error)
	// Compare reports whether the plaintext matches the stored hash
	Compare(hash, password string) bool
}

// TokenClaims is the identity carried by a session token.
type TokenClaims struct {
	UserID uint64
	Email  string
}

// TokenIssuer signs and verifies session tokens.
type TokenIssuer interface {
	// Issue signs a session token for the given identity
	Issue(claims TokenClaims) (string, error)
	// Verify parses and validates a token, returning the embedded identity
	//
	// Possible errors:
	// - ErrInvalidCredentials: If the token is malformed, expired, or has a
	//   bad signature
	Verify(token string) (*TokenClaims, error)
}
