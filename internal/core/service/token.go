package service

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quickpost/quickpost-api/internal/core/domain"
)

// TokenKind selects the signing secret and expiry policy for a token.
type TokenKind int

const (
	AccessToken TokenKind = iota
	RefreshToken
)

// Tokens issues and verifies the two token kinds. Access tokens are HS256
// JWTs carrying the subject id with a configured expiry. Refresh tokens are
// signed the same way but carry no expiry: their lifetime is governed
// entirely by membership in the user's stored token set.
type Tokens struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
}

func NewTokens(accessSecret, refreshSecret string, accessTTL time.Duration) *Tokens {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	return &Tokens{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
	}
}

// Issue signs a token of the given kind for userID. The payload is minimal:
// subject id, issued-at, and a random id so two tokens minted for the same
// subject are always distinct strings.
func (t *Tokens) Issue(userID string, kind TokenKind) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:  userID,
		IssuedAt: jwt.NewNumericDate(now),
		ID:       randomTokenID(),
	}
	if kind == AccessToken {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(t.accessTTL))
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.secret(kind))
}

// Subject verifies the signature (and expiry, for access tokens) and
// returns the subject user id. Any failure collapses to ErrInvalidToken.
func (t *Tokens) Subject(token string, kind TokenKind) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret(kind), nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}

func (t *Tokens) secret(kind TokenKind) []byte {
	if kind == RefreshToken {
		return t.refreshSecret
	}
	return t.accessSecret
}

func randomTokenID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// fallback: nanosecond timestamp, still unique enough per subject
		return hex.EncodeToString([]byte(time.Now().UTC().Format("150405.000000000")))
	}
	return hex.EncodeToString(b)
}
