package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/quickpost/quickpost-api/internal/core/domain"
	"github.com/quickpost/quickpost-api/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update changes email and/or password on the caller's own record.
// Username is immutable after registration. Changing the password does not
// revoke live sessions; the token set is left untouched.
func (s *UserService) Update(ctx context.Context, id, actorID string, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.ID != actorID {
		return nil, domain.ErrNotOwner
	}

	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), hashCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id, actorID string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.ID != actorID {
		return domain.ErrNotOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
