package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/quickpost/quickpost-api/internal/core/domain"
	"github.com/quickpost/quickpost-api/internal/core/ports"
)

type CommentService struct {
	repo   ports.CommentRepository
	posts  ports.PostRepository
	logger zerolog.Logger
}

func NewCommentService(repo ports.CommentRepository, posts ports.PostRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{repo: repo, posts: posts, logger: logger}
}

// Create attaches a comment to an existing post; a missing post surfaces
// as not found before anything is written.
func (s *CommentService) Create(ctx context.Context, input ports.CreateCommentInput) (*domain.Comment, error) {
	if input.PostID == "" || input.Content == "" {
		return nil, domain.ErrMissingFields
	}

	if _, err := s.posts.FindByID(ctx, input.PostID); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	comment := &domain.Comment{
		PostID:    input.PostID,
		Sender:    input.Sender,
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("comment_id", created.ID).Str("post_id", created.PostID).Msg("comment created")
	return created, nil
}

func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	return s.repo.FindByPostID(ctx, postID)
}

func (s *CommentService) Get(ctx context.Context, id string) (*domain.Comment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CommentService) Update(ctx context.Context, id, actorID, content string) (*domain.Comment, error) {
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.Sender != actorID {
		return nil, domain.ErrNotOwner
	}
	if content == "" {
		return nil, domain.ErrMissingFields
	}

	comment.Content = content
	comment.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, id, actorID string) error {
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if comment.Sender != actorID {
		return domain.ErrNotOwner
	}
	return s.repo.Delete(ctx, id)
}
