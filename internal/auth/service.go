package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/models"
)

const minPasswordLength = 6

type Users interface {
	CreateUserWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Service is the authentication backend: accounts, sessions and auth-state
// notifications.
type Service struct {
	users  Users
	redis  *redis.Client
	hub    *Hub
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(
	users Users,
	rdb *redis.Client,
	hub *Hub,
	secret string,
	ttl time.Duration,
) *Service {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{
		users:  users,
		redis:  rdb,
		hub:    hub,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// --------- Accounts ---------

type SignUpInput struct {
	Email    string
	Password string
	FullName string
}

func (s *Service) SignUp(ctx context.Context, in SignUpInput) (*models.User, error) {
	email := NormalizeEmail(in.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, httperr.ErrBusiness("invalid_email")
	}
	if len(in.Password) < minPasswordLength {
		return nil, httperr.ErrBusiness("password_too_short")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashed),
	}
	profile := &models.Profile{
		FullName: strings.TrimSpace(in.FullName),
		Role:     "client",
	}

	if err := s.users.CreateUserWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}
	return user, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// --------- Sessions ---------

func (s *Service) SignIn(
	ctx context.Context,
	browserID string,
	email string,
	password string,
) (*Session, error) {

	user, err := s.users.FindUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("invalid_credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	sess, err := s.issue(ctx, user)
	if err != nil {
		return nil, err
	}

	s.hub.Publish(Event{
		Type:      EventSignedIn,
		BrowserID: browserID,
		Session:   sess,
		At:        s.now(),
	})

	return sess, nil
}

// SignOut revokes the session behind token. A missing or already invalid
// token still produces a SIGNED_OUT event.
func (s *Service) SignOut(ctx context.Context, browserID string, token string) error {
	if c, err := s.parse(token); err == nil {
		if err := s.redis.Del(ctx, sessionKey(c.ID)).Err(); err != nil {
			return fmt.Errorf("revoke session: %w", err)
		}
	}

	s.hub.Publish(Event{
		Type:      EventSignedOut,
		BrowserID: browserID,
		At:        s.now(),
	})
	return nil
}

// GetSession resolves a token into a live session.
func (s *Service) GetSession(ctx context.Context, token string) (*Session, error) {
	c, err := s.parse(token)
	if err != nil {
		return nil, ErrNoSession
	}

	n, err := s.redis.Exists(ctx, sessionKey(c.ID)).Result()
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}
	if n == 0 {
		return nil, ErrNoSession
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return nil, ErrNoSession
	}

	return &Session{
		ID:        c.ID,
		UserID:    userID,
		Email:     c.Email,
		ExpiresAt: c.ExpiresAt.Time,
		Token:     token,
	}, nil
}

// OnAuthStateChange subscribes to SIGNED_IN / SIGNED_OUT events of a browser.
func (s *Service) OnAuthStateChange(browserID string) (<-chan Event, func()) {
	return s.hub.Subscribe(browserID)
}

func (s *Service) TTL() time.Duration {
	return s.ttl
}

// --------- JWT ---------

func (s *Service) issue(ctx context.Context, user *models.User) (*Session, error) {
	now := s.now()
	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: now.Add(s.ttl),
	}

	claims := sessionClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.ID,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}
	sess.Token = token

	if err := s.redis.Set(ctx, sessionKey(sess.ID), user.ID.String(), s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return sess, nil
}

func (s *Service) parse(token string) (*sessionClaims, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	c := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, c, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrNoSession
	}
	return c, nil
}
