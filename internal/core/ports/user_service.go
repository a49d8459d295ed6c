package ports

import (
	"context"

	"github.com/quickpost/quickpost-api/internal/core/domain"
)

// UpdateUserInput carries the mutable user fields. Username is immutable
// after registration and is deliberately absent.
type UpdateUserInput struct {
	Email    string
	Password string
}

// UserService exposes user-record operations. A user may only mutate or
// delete their own record.
type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id, actorID string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id, actorID string) error
}
