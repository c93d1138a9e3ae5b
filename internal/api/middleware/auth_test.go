package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/reviewhub/item-reviews/internal/core/service"
)

func runAuth(t *testing.T, header string, tokens *service.TokenService) (called bool, err error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	err = Auth(tokens)(func(c echo.Context) error {
		called = true
		if c.Get(UserIDKey) != "42" {
			t.Fatalf("user_id not set, got %v", c.Get(UserIDKey))
		}
		return nil
	})(c)
	return called, err
}

func expectUnauthorized(t *testing.T, err error, msg string) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
	if he.Message != msg {
		t.Fatalf("expected message %q, got %v", msg, he.Message)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	signed, _, err := tokens.Issue("42")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	called, err := runAuth(t, "Bearer "+signed, tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("expected handler to be called")
	}
}

func TestAuthMiddleware_LowercaseScheme(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	signed, _, _ := tokens.Issue("42")

	if called, err := runAuth(t, "bearer "+signed, tokens); err != nil || !called {
		t.Fatalf("expected success, got called=%v err=%v", called, err)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	called, err := runAuth(t, "", service.NewTokenService("secret", time.Hour))
	if called {
		t.Fatal("handler must not run")
	}
	expectUnauthorized(t, err, "missing authorization header")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	for _, h := range []string{"Token abc", "Bearer", "Bearer    "} {
		called, err := runAuth(t, h, tokens)
		if called {
			t.Fatalf("handler must not run for %q", h)
		}
		expectUnauthorized(t, err, "invalid authorization header")
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	signed, _, _ := service.NewTokenService("other", time.Hour).Issue("42")

	called, err := runAuth(t, "Bearer "+signed, service.NewTokenService("secret", time.Hour))
	if called {
		t.Fatal("handler must not run")
	}
	expectUnauthorized(t, err, "invalid or expired token")
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	past := time.Now().Add(-2 * time.Hour)
	signed, _, _ := service.NewTokenService("secret", time.Hour).
		WithClock(func() time.Time { return past }).
		Issue("42")

	called, err := runAuth(t, "Bearer "+signed, service.NewTokenService("secret", time.Hour))
	if called {
		t.Fatal("handler must not run")
	}
	expectUnauthorized(t, err, "invalid or expired token")
}
