package ports

import (
	"context"

	"github.com/quickpost/quickpost-api/internal/core/domain"
)

// CreatePostInput is the DTO passed from the transport layer to PostService.
type CreatePostInput struct {
	Sender  string
	Title   string
	Content string
}

// UpdatePostInput carries the mutable post fields.
type UpdatePostInput struct {
	Title   string
	Content string
}

// PostService handles post CRUD. ActorID is the authenticated user id; any
// mutation verifies the target exists, then that the actor owns it.
type PostService interface {
	Create(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Update(ctx context.Context, id, actorID string, input UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, id, actorID string) error
}
