package ports

import (
	"context"

	"github.com/quickpost/quickpost-api/internal/core/domain"
)

// UserRepository defines the persistence contract for user records.
// Update replaces the whole document, including the refresh-token set;
// the store's last-write-wins replacement is the only consistency
// mechanism for concurrent token-set mutations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
