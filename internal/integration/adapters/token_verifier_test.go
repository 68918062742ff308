package adapters

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

const testSecret = "test-secret"

func TestTokenVerifier_Verify(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	tests := []struct {
		name    string
		issuer  string
		token   func(t *testing.T) string
		wantID  string
		wantErr error
	}{
		{
			name: "valid token yields the subject",
			token: func(t *testing.T) string {
				return mustSign(t, testSecret, "", "user-1", now, time.Hour)
			},
			wantID: "user-1",
		},
		{
			name:   "issuer is checked when configured",
			issuer: "https://id.example.com",
			token: func(t *testing.T) string {
				return mustSign(t, testSecret, "https://other.example.com", "user-1", now, time.Hour)
			},
			wantErr: domainerror.ErrInvalidToken,
		},
		{
			name:   "matching issuer is accepted",
			issuer: "https://id.example.com",
			token: func(t *testing.T) string {
				return mustSign(t, testSecret, "https://id.example.com", "user-1", now, time.Hour)
			},
			wantID: "user-1",
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				return mustSign(t, testSecret, "", "user-1", now.Add(-2*time.Hour), time.Hour)
			},
			wantErr: domainerror.ErrExpiredToken,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return mustSign(t, "other-secret", "", "user-1", now, time.Hour)
			},
			wantErr: domainerror.ErrInvalidToken,
		},
		{
			name: "missing subject",
			token: func(t *testing.T) string {
				return mustSign(t, testSecret, "", "", now, time.Hour)
			},
			wantErr: domainerror.ErrMissingSubject,
		},
		{
			name: "unsigned token",
			token: func(t *testing.T) string {
				token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
					Subject:   "user-1",
					ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
				})
				s, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
				if err != nil {
					t.Fatalf("failed to sign: %v", err)
				}
				return s
			},
			wantErr: domainerror.ErrInvalidToken,
		},
		{
			name:    "garbage",
			token:   func(*testing.T) string { return "not-a-token" },
			wantErr: domainerror.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := NewTokenVerifier(testSecret, tt.issuer, clock)
			identity, err := verifier.Verify(tt.token(t))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if identity.UserID != tt.wantID {
				t.Errorf("expected user %s, got %s", tt.wantID, identity.UserID)
			}
			if !identity.ExpiresAt.Equal(now.Add(time.Hour)) {
				t.Errorf("expected expiry %v, got %v", now.Add(time.Hour), identity.ExpiresAt)
			}
		})
	}
}

func mustSign(t *testing.T, secret, issuer, userID string, now time.Time, ttl time.Duration) string {
	t.Helper()
	token, err := SignToken(secret, issuer, userID, now, ttl)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}
