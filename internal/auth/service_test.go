package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/models"
)

type fakeUsers struct {
	mu       sync.Mutex
	byEmail  map[string]*models.User
	profiles map[string]*models.Profile
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		byEmail:  map[string]*models.User{},
		profiles: map[string]*models.Profile{},
	}
}

func (f *fakeUsers) CreateUserWithProfile(_ context.Context, user *models.User, profile *models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byEmail[user.Email]; ok {
		return httperr.ErrBusiness("email_already_registered")
	}
	_ = user.BeforeCreate(nil)
	profile.ID = user.ID
	f.byEmail[user.Email] = user
	f.profiles[user.Email] = profile
	return nil
}

func (f *fakeUsers) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func newTestService(t *testing.T) (*Service, *fakeUsers, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	users := newFakeUsers()
	svc := NewService(users, rdb, NewHub(zerolog.Nop()), "test-secret", time.Hour)
	return svc, users, mr
}

func TestSignUpCreatesClientProfile(t *testing.T) {
	svc, users, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.SignUp(ctx, SignUpInput{
		Email:    "  Ana@Example.com ",
		Password: "secret1",
		FullName: " Ana Petrova ",
	})
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", user.Email)
	assert.NotEqual(t, "secret1", user.PasswordHash)

	profile := users.profiles["ana@example.com"]
	require.NotNil(t, profile)
	assert.Equal(t, user.ID, profile.ID)
	assert.Equal(t, "client", profile.Role)
	assert.Equal(t, "Ana Petrova", profile.FullName)

	_, err = svc.SignUp(ctx, SignUpInput{Email: "ana@example.com", Password: "secret1"})
	assert.True(t, httperr.IsBusiness(err, "email_already_registered"))
}

func TestSignUpValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, SignUpInput{Email: "not-an-email", Password: "secret1"})
	assert.True(t, httperr.IsBusiness(err, "invalid_email"))

	_, err = svc.SignUp(ctx, SignUpInput{Email: "a@b.com", Password: "123"})
	assert.True(t, httperr.IsBusiness(err, "password_too_short"))
}

func TestSignInSessionLifecycle(t *testing.T) {
	svc, _, mr := newTestService(t)
	ctx := context.Background()

	user, err := svc.SignUp(ctx, SignUpInput{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	sess, err := svc.SignIn(ctx, "browser-1", "ANA@example.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
	assert.True(t, mr.Exists("session:"+sess.ID))

	got, err := svc.GetSession(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, "ana@example.com", got.Email)

	require.NoError(t, svc.SignOut(ctx, "browser-1", sess.Token))
	assert.False(t, mr.Exists("session:"+sess.ID))

	_, err = svc.GetSession(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, SignUpInput{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.SignIn(ctx, "b", "ana@example.com", "wrong-pass")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))

	_, err = svc.SignIn(ctx, "b", "ghost@example.com", "secret1")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))
}

func TestGetSessionRejectsInvalidTokens(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetSession(ctx, "")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = svc.GetSession(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = svc.SignUp(ctx, SignUpInput{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)
	sess, err := svc.SignIn(ctx, "b", "ana@example.com", "secret1")
	require.NoError(t, err)

	other := NewService(newFakeUsers(), svc.redis, NewHub(zerolog.Nop()), "other-secret", time.Hour)
	_, err = other.GetSession(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrNoSession)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.GetSession(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSignInAndOutPublishEvents(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	events, cancel := svc.OnAuthStateChange("browser-1")
	defer cancel()

	_, err := svc.SignUp(ctx, SignUpInput{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	sess, err := svc.SignIn(ctx, "browser-1", "ana@example.com", "secret1")
	require.NoError(t, err)

	ev := <-events
	assert.Equal(t, EventSignedIn, ev.Type)
	require.NotNil(t, ev.Session)
	assert.Equal(t, sess.ID, ev.Session.ID)

	require.NoError(t, svc.SignOut(ctx, "browser-1", sess.Token))
	ev = <-events
	assert.Equal(t, EventSignedOut, ev.Type)
	assert.Nil(t, ev.Session)

	require.NoError(t, svc.SignOut(ctx, "browser-1", "garbage"))
	ev = <-events
	assert.Equal(t, EventSignedOut, ev.Type)
}
