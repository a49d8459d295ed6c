package ports

import (
	"context"

	"github.com/quickpost/quickpost-api/internal/core/domain"
)

// PostRepository defines the persistence contract for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	FindAll(ctx context.Context) ([]domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
}
