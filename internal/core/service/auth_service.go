package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/quickpost/quickpost-api/internal/api/metrics"
	"github.com/quickpost/quickpost-api/internal/core/domain"
	"github.com/quickpost/quickpost-api/internal/core/ports"
)

// bcrypt work factor for password hashes.
const hashCost = 10

// LoginGuard abstracts the failed-login throttle (Redis in production,
// an in-memory stub in tests). It bounds credential-stuffing attempts.
type LoginGuard interface {
	TooMany(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// AuthService orchestrates registration, login, refresh rotation and logout.
type AuthService struct {
	users  ports.UserRepository
	tokens *Tokens
	guard  LoginGuard
	audit  ports.AuditSink
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *Tokens, guard LoginGuard, audit ports.AuditSink, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, guard: guard, audit: audit, logger: logger}
}

// Register creates an account. The plaintext password never leaves this
// function: it is hashed immediately and only the hash is stored.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:      username,
		Email:         email,
		PasswordHash:  string(hash),
		RefreshTokens: []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.record(created.ID, domain.AuditRegister, "")
	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a fresh token pair. The new refresh
// token is appended to the user's token set, so multiple sessions can be
// live at once. Unknown username and wrong password are indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.TokenPair, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if blocked, err := s.guard.TooMany(ctx, username); err != nil {
		// throttle outage must not lock everyone out
		s.logger.Warn().Err(err).Msg("login guard unavailable")
	} else if blocked {
		metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		return nil, domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.failLogin(ctx, username)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.failLogin(ctx, username)
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := s.issuePair(user.ID)
	if err != nil {
		return nil, err
	}

	user.RefreshTokens = append(user.RefreshTokens, pair.RefreshToken)
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	if err := s.guard.Reset(ctx, username); err != nil {
		s.logger.Warn().Err(err).Msg("login guard reset failed")
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.record(user.ID, domain.AuditLogin, "")
	s.logger.Info().Str("user_id", user.ID).Int("sessions", len(user.RefreshTokens)).Msg("login")
	return pair, nil
}

// Refresh exchanges a valid refresh token for a new access/refresh pair.
// The presented token's slot in the user's token set is overwritten with
// the new refresh token, so each refresh token is usable exactly once.
// Presenting a token that is signed correctly but no longer in the set is
// treated as replay: every session for that user is invalidated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	user, idx, err := s.verifyRefresh(ctx, refreshToken)
	if err != nil {
		metrics.TokenRefreshTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	pair, err := s.issuePair(user.ID)
	if err != nil {
		return nil, err
	}

	user.RefreshTokens[idx] = pair.RefreshToken
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	metrics.TokenRefreshTotal.WithLabelValues("success").Inc()
	s.record(user.ID, domain.AuditRefresh, "")
	return pair, nil
}

// Logout removes the presented refresh token from its user's token set.
// A token that is absent from the set is a no-op: logout is idempotent.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	sub, err := s.tokens.Subject(refreshToken, RefreshToken)
	if err != nil {
		return domain.ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, sub)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidToken
		}
		return err
	}

	kept := user.RefreshTokens[:0]
	removed := false
	for _, t := range user.RefreshTokens {
		if !removed && t == refreshToken {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	if !removed {
		return nil
	}

	user.RefreshTokens = kept
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.record(user.ID, domain.AuditLogout, "")
	s.logger.Info().Str("user_id", user.ID).Int("sessions", len(user.RefreshTokens)).Msg("logout")
	return nil
}

// verifyRefresh checks signature, subject existence and token-set
// membership, returning the live user and the token's slot index. A signed
// token missing from the set means an already-rotated or logged-out token
// was replayed; the whole set is cleared before rejecting (fail closed).
func (s *AuthService) verifyRefresh(ctx context.Context, refreshToken string) (*domain.User, int, error) {
	sub, err := s.tokens.Subject(refreshToken, RefreshToken)
	if err != nil {
		return nil, 0, domain.ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, sub)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// same error as a bad signature: do not leak which check failed
			return nil, 0, domain.ErrInvalidToken
		}
		return nil, 0, err
	}

	idx := -1
	for i, t := range user.RefreshTokens {
		if t == refreshToken {
			idx = i
			break
		}
	}
	if idx < 0 {
		user.RefreshTokens = []string{}
		user.UpdatedAt = time.Now().UTC()
		if err := s.users.Update(ctx, user); err != nil {
			return nil, 0, err
		}
		metrics.TokenReplayInvalidationsTotal.Inc()
		s.record(user.ID, domain.AuditReplayInvalidated, "refresh token replayed; all sessions revoked")
		s.logger.Warn().Str("user_id", user.ID).Msg("refresh token replay detected, token set cleared")
		return nil, 0, domain.ErrInvalidToken
	}

	return user, idx, nil
}

func (s *AuthService) issuePair(userID string) (*domain.TokenPair, error) {
	access, err := s.tokens.Issue(userID, AccessToken)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.Issue(userID, RefreshToken)
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) failLogin(ctx context.Context, username string) {
	metrics.LoginsTotal.WithLabelValues("failure").Inc()
	if err := s.guard.RecordFailure(ctx, username); err != nil {
		s.logger.Warn().Err(err).Msg("login guard record failed")
	}
}

func (s *AuthService) record(userID, action, detail string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		UserID:    userID,
		Action:    action,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}
