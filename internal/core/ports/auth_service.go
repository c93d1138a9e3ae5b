package ports

import (
	"context"
	"time"

	"github.com/reviewhub/item-reviews/internal/core/domain"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}

// TokenIssuer signs identity tokens.
type TokenIssuer interface {
	Issue(userID string) (token string, expiresAt time.Time, err error)
}

// TokenVerifier checks a token and returns the user ID it was issued for.
// Any failure is reported as domain.ErrInvalidToken.
type TokenVerifier interface {
	Verify(token string) (string, error)
}
