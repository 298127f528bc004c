package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrNoSession is returned when a token is missing, invalid, expired or
// revoked.
var ErrNoSession = errors.New("auth: no active session")

type Session struct {
	ID        string    `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`

	Token string `json:"-"`
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func sessionKey(id string) string {
	return "session:" + id
}
