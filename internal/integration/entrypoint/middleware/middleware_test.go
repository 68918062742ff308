package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

type stubVerifier struct {
	identities map[string]*adapter.Identity
	err        error
}

func (v *stubVerifier) Verify(token string) (*adapter.Identity, error) {
	if identity, ok := v.identities[token]; ok {
		return identity, nil
	}
	return nil, v.err
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		c.String(http.StatusOK, userID)
	})
	engine.GET("/", handlers...)
	return engine
}

func TestAuthMiddleware(t *testing.T) {
	verifier := &stubVerifier{
		identities: map[string]*adapter.Identity{"good": {UserID: "user-1"}},
		err:        domainerror.ErrInvalidToken,
	}
	engine := newEngine(NewAuthMiddleware(verifier).Authenticate())

	tests := []struct {
		name       string
		header     string
		verifyErr  error
		wantStatus int
		wantCode   string
		wantBody   string
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized, wantCode: string(domainerror.ErrCodeMissingToken)},
		{name: "not a bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantCode: string(domainerror.ErrCodeInvalidToken)},
		{name: "empty bearer", header: "Bearer ", wantStatus: http.StatusUnauthorized, wantCode: string(domainerror.ErrCodeMissingToken)},
		{name: "invalid token", header: "Bearer bad", wantStatus: http.StatusUnauthorized, wantCode: string(domainerror.ErrCodeInvalidToken)},
		{name: "expired token", header: "Bearer old", verifyErr: domainerror.ErrExpiredToken, wantStatus: http.StatusUnauthorized, wantCode: string(domainerror.ErrCodeExpiredToken)},
		{name: "valid token", header: "Bearer good", wantStatus: http.StatusOK, wantBody: "user-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier.err = domainerror.ErrInvalidToken
			if tt.verifyErr != nil {
				verifier.err = tt.verifyErr
			}

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantCode != "" {
				var body dto.ErrorResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("failed to decode body: %v", err)
				}
				if body.Code != tt.wantCode {
					t.Errorf("expected code %s, got %s", tt.wantCode, body.Code)
				}
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("expected body %q, got %q", tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiterWithConfig(2, time.Minute, func() time.Time { return now })

	setUser := func(userID string) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set(string(UserIDKey), userID)
		}
	}

	engine1 := newEngine(setUser("user-1"), limiter.Middleware())
	engine2 := newEngine(setUser("user-2"), limiter.Middleware())

	do := func(engine *gin.Engine) int {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		return rec.Code
	}

	if code := do(engine1); code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", code)
	}
	if code := do(engine1); code != http.StatusOK {
		t.Fatalf("expected second request to pass, got %d", code)
	}
	if code := do(engine1); code != http.StatusTooManyRequests {
		t.Fatalf("expected third request to be limited, got %d", code)
	}
	if code := do(engine2); code != http.StatusOK {
		t.Errorf("expected another user to be unaffected, got %d", code)
	}

	now = now.Add(2 * time.Minute)
	if code := do(engine1); code != http.StatusOK {
		t.Errorf("expected the window to reset, got %d", code)
	}

	limiter.Reset()
	if n := limiter.size(); n != 0 {
		t.Errorf("expected no entries after reset, got %d", n)
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	start := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	now := start
	limiter := NewRateLimiterWithConfig(5, time.Minute, func() time.Time { return now })

	limiter.allow("expired")
	now = start.Add(30 * time.Second)
	limiter.allow("active")

	now = start.Add(90 * time.Second)
	limiter.Cleanup()

	if n := limiter.size(); n != 1 {
		t.Fatalf("expected only the active entry to remain, got %d", n)
	}
	if _, ok := limiter.entries["active"]; !ok {
		t.Error("expected the active entry to survive the sweep")
	}
}

func TestRateLimiter_StartCleanup(t *testing.T) {
	start := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	now := start
	limiter := NewRateLimiterWithConfig(5, time.Minute, func() time.Time { return now })

	limiter.allow("user-1")
	limiter.allow("user-2")
	now = start.Add(2 * time.Minute)

	stop := limiter.StartCleanup(5 * time.Millisecond)
	defer stop()

	deadline := time.Now().Add(2 * time.Second)
	for limiter.size() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("expected the sweeper to drop expired entries, %d remain", limiter.size())
		}
		time.Sleep(5 * time.Millisecond)
	}

	stop()
	stop()
}
