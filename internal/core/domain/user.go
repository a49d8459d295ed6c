package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username or email already taken")
var ErrInvalidCredentials = errors.New("wrong username or password")
var ErrInvalidToken = errors.New("invalid token")
var ErrMissingFields = errors.New("missing required fields")
var ErrTooManyAttempts = errors.New("too many failed login attempts")

// User models a registered account. RefreshTokens is the ordered set of
// currently valid refresh tokens: one entry per live session, appended on
// login, replaced in place on rotation, removed on logout. A refresh token
// is only honoured while it appears in this slice.
type User struct {
	ID            string    `json:"_id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	RefreshTokens []string  `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TokenPair is returned by login and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
