package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/reviewhub/item-reviews/internal/api/middleware"
	"github.com/reviewhub/item-reviews/internal/core/domain"
	"github.com/reviewhub/item-reviews/internal/core/ports"
)

type stubAuthService struct {
	registerFn    func(ctx context.Context, username, password string) (*domain.User, error)
	loginFn       func(ctx context.Context, username, password string) (*ports.LoginResult, error)
	currentUserFn func(ctx context.Context, userID string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	return s.registerFn(ctx, username, password)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.currentUserFn(ctx, userID)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func expectKind(t *testing.T, err error, want domain.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", want)
	}
	if got := domain.KindOf(err); got != want {
		t.Fatalf("expected %s error, got %s (%v)", want, got, err)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newEcho()
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			if username != "alice" || password != "pw1" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &domain.User{ID: "1", Username: username, PasswordHash: "$2a$10$hash", CreatedAt: created}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := jsonRequest(e, http.MethodPost, "/api/auth/register", `{"username":"alice","password":"pw1"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "hash") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "User registered successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "alice" || user["id"] != "1" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}

	c, _ := jsonRequest(e, http.MethodPost, "/api/auth/register", `{"username":"bob","password":"pw"}`)
	expectKind(t, NewAuthHandler(stub).Register(c), domain.KindConflict)
}

func TestAuthHandler_Register_MissingField(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}

	c, _ := jsonRequest(e, http.MethodPost, "/api/auth/register", `{"username":"bob"}`)
	err := NewAuthHandler(stub).Register(c)
	expectKind(t, err, domain.KindBadRequest)
	if !strings.Contains(err.Error(), "password is required") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}

	c, _ := jsonRequest(e, http.MethodPost, "/api/auth/register", "not-json")
	err := NewAuthHandler(stub).Register(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 bind error, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newEcho()
	expires := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.LoginResult, error) {
			if username != "alice" || password != "pw1" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &ports.LoginResult{Token: "token123", ExpiresAt: expires, User: &domain.User{ID: "1", Username: "alice"}}, nil
		},
	}

	c, rec := jsonRequest(e, http.MethodPost, "/api/auth/login", `{"username":"alice","password":"pw1"}`)
	if err := NewAuthHandler(stub).Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" || resp["message"] != "Login successful" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp["expires_at"] != "2026-03-01T13:00:00Z" {
		t.Fatalf("unexpected expires_at: %v", resp["expires_at"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}

	c, _ := jsonRequest(e, http.MethodPost, "/api/auth/login", `{"username":"alice","password":"bad"}`)
	expectKind(t, NewAuthHandler(stub).Login(c), domain.KindInvalidCredentials)
}

func TestAuthHandler_Me(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		currentUserFn: func(ctx context.Context, userID string) (*domain.User, error) {
			if userID != "7" {
				t.Fatalf("unexpected user id %q", userID)
			}
			return &domain.User{ID: "7", Username: "alice"}, nil
		},
	}

	c, rec := jsonRequest(e, http.MethodGet, "/api/auth/me", "")
	c.Set(middleware.UserIDKey, "7")
	if err := NewAuthHandler(stub).Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp meResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.User.Username != "alice" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
}

func TestAuthHandler_Me_WithoutIdentity(t *testing.T) {
	e := newEcho()
	c, _ := jsonRequest(e, http.MethodGet, "/api/auth/me", "")
	expectKind(t, NewAuthHandler(&stubAuthService{}).Me(c), domain.KindUnauthorized)
}
