package ports

import (
	"context"

	"github.com/quickpost/quickpost-api/internal/core/domain"
)

// AuthService is the auth flow orchestrator: registration, credential
// login, single-use refresh-token rotation and logout.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}
