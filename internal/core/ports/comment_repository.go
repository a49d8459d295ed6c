package ports

import (
	"context"

	"github.com/quickpost/quickpost-api/internal/core/domain"
)

// CommentRepository defines the persistence contract for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	FindByPostID(ctx context.Context, postID string) ([]domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id string) error
}
