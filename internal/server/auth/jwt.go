// Package auth implements the credential primitives of the server: password
// hashing and stateless signed access tokens.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avolkovs/clippings/internal/common"
)

// TokenTypeAccess tags access tokens in the "type" claim.
const TokenTypeAccess = "access_token"

// Claims is the registered JWT claim set plus the token type tag.
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"type"`
}

// Tokens issues and verifies signed access tokens. Secret, signing method,
// and lifetime are fixed at construction and safe for unsynchronized
// concurrent use.
type Tokens struct {
	secret   []byte
	method   jwt.SigningMethod
	lifetime time.Duration
}

// NewTokens builds a Tokens for the given HMAC algorithm name (HS256, HS384
// or HS512).
func NewTokens(secret []byte, algorithm string, lifetime time.Duration) (*Tokens, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	return &Tokens{secret: secret, method: method, lifetime: lifetime}, nil
}

// Generate mints an access token for userID. Timestamps are UTC; expiry is
// issued-at plus the configured lifetime.
func (t *Tokens) Generate(userID int64) (string, error) {
	now := time.Now().UTC()

	token := jwt.NewWithClaims(t.method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.lifetime)),
		},
		TokenType: TokenTypeAccess,
	})

	return token.SignedString(t.secret)
}

// Parse checks the signature and expiry of a token string and returns the
// subject user ID. No claim is trusted before the signature check passes.
// Failures map onto the common token sentinels; a missing or non-numeric
// subject is reported as a malformed token.
func (t *Tokens) Parse(tokenString string) (int64, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{t.method.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, common.ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, common.ErrTokenExpired
		default:
			return 0, common.ErrTokenMalformed
		}
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, common.ErrTokenMalformed
	}

	return userID, nil
}

// Lifetime returns the configured token lifetime.
func (t *Tokens) Lifetime() time.Duration {
	return t.lifetime
}
