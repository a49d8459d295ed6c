package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/quickpost/quickpost-api/internal/api/metrics"
	"github.com/quickpost/quickpost-api/internal/core/domain"
	"github.com/quickpost/quickpost-api/internal/core/ports"
)

type PostService struct {
	repo   ports.PostRepository
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, logger: logger}
}

func (s *PostService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	if input.Content == "" {
		return nil, domain.ErrMissingFields
	}

	now := time.Now().UTC()
	post := &domain.Post{
		Sender:    input.Sender,
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	metrics.PostsCreatedTotal.Inc()
	s.logger.Info().Str("post_id", created.ID).Str("sender", created.Sender).Msg("post created")
	return created, nil
}

func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.repo.FindAll(ctx)
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

// Update mutates a post. Existence is checked before ownership, so a
// missing post is reported as not found even to a non-owner.
func (s *PostService) Update(ctx context.Context, id, actorID string, input ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.Sender != actorID {
		return nil, domain.ErrNotOwner
	}

	if input.Title != "" {
		post.Title = input.Title
	}
	if input.Content != "" {
		post.Content = input.Content
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, id, actorID string) error {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post.Sender != actorID {
		return domain.ErrNotOwner
	}
	return s.repo.Delete(ctx, id)
}
