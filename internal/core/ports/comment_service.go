package ports

import (
	"context"

	"github.com/quickpost/quickpost-api/internal/core/domain"
)

// CreateCommentInput is the DTO passed from the transport layer to CommentService.
type CreateCommentInput struct {
	PostID  string
	Sender  string
	Content string
}

// CommentService handles comment CRUD with the same ownership policy as posts.
type CommentService interface {
	Create(ctx context.Context, input CreateCommentInput) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]domain.Comment, error)
	Get(ctx context.Context, id string) (*domain.Comment, error)
	Update(ctx context.Context, id, actorID, content string) (*domain.Comment, error)
	Delete(ctx context.Context, id, actorID string) error
}
