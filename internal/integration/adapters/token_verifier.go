// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// tokenVerifier implements the adapter.IdentityVerifier interface for HS256 tokens
// issued by the identity provider. The subject claim carries the user ID.
type tokenVerifier struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewTokenVerifier creates a new token verifier. An empty issuer disables the issuer check.
func NewTokenVerifier(secret, issuer string, now func() time.Time) adapter.IdentityVerifier {
	if now == nil {
		now = time.Now
	}
	return &tokenVerifier{
		secret: []byte(secret),
		issuer: issuer,
		now:    now,
	}
}

// Verify validates the token signature and claims and returns the caller identity.
func (v *tokenVerifier) Verify(tokenString string) (*adapter.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.now),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", domainerror.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, domainerror.ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, domainerror.ErrMissingSubject
	}

	return &adapter.Identity{
		UserID:    claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// SignToken issues an HS256 token for userID. It stands in for the identity
// provider in local environments and tests.
func SignToken(secret, issuer, userID string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
