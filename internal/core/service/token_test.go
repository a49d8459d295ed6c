package service

import (
	"testing"
	"time"

	"github.com/quickpost/quickpost-api/internal/core/domain"
)

func TestTokens_IssueAndVerify(t *testing.T) {
	tokens := NewTokens("access-secret", "refresh-secret", time.Hour)

	access, err := tokens.Issue("user-1", AccessToken)
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}
	refresh, err := tokens.Issue("user-1", RefreshToken)
	if err != nil {
		t.Fatalf("issue refresh: %v", err)
	}
	if access == refresh {
		t.Fatalf("access and refresh tokens must differ")
	}

	sub, err := tokens.Subject(access, AccessToken)
	if err != nil {
		t.Fatalf("verify access: %v", err)
	}
	if sub != "user-1" {
		t.Fatalf("unexpected subject: %s", sub)
	}

	sub, err = tokens.Subject(refresh, RefreshToken)
	if err != nil {
		t.Fatalf("verify refresh: %v", err)
	}
	if sub != "user-1" {
		t.Fatalf("unexpected subject: %s", sub)
	}
}

func TestTokens_SameSubjectDistinctStrings(t *testing.T) {
	tokens := NewTokens("a", "r", time.Hour)

	first, err := tokens.Issue("user-1", RefreshToken)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	second, err := tokens.Issue("user-1", RefreshToken)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if first == second {
		t.Fatalf("two tokens for the same subject must be distinct strings")
	}
}

func TestTokens_KindSecretsAreSeparate(t *testing.T) {
	tokens := NewTokens("access-secret", "refresh-secret", time.Hour)

	access, err := tokens.Issue("user-1", AccessToken)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := tokens.Subject(access, RefreshToken); err != domain.ErrInvalidToken {
		t.Fatalf("access token verified against refresh secret: %v", err)
	}
}

func TestTokens_ExpiredAccessRejected(t *testing.T) {
	tokens := NewTokens("access-secret", "refresh-secret", time.Millisecond)

	access, err := tokens.Issue("user-1", AccessToken)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	if _, err := tokens.Subject(access, AccessToken); err != domain.ErrInvalidToken {
		t.Fatalf("expected expired token rejection, got %v", err)
	}
}

func TestTokens_RefreshHasNoExpiry(t *testing.T) {
	tokens := NewTokens("access-secret", "refresh-secret", time.Millisecond)

	refresh, err := tokens.Issue("user-1", RefreshToken)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	if _, err := tokens.Subject(refresh, RefreshToken); err != nil {
		t.Fatalf("refresh token must not expire by time: %v", err)
	}
}

func TestTokens_GarbageRejected(t *testing.T) {
	tokens := NewTokens("access-secret", "refresh-secret", time.Hour)

	if _, err := tokens.Subject("not-a-jwt", AccessToken); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
