// Package inflight prevents duplicate form submissions with a short-lived
// redis lock per form and user.
package inflight

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

var ErrInFlight = errors.New("inflight: submission already in progress")

// releaseScript deletes the key only if it still holds our token, so an
// expired lease never releases a newer holder.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type Locker struct {
	rdb   *redis.Client
	lease time.Duration
}

func NewLocker(rdb *redis.Client, lease time.Duration) *Locker {
	return &Locker{rdb: rdb, lease: lease}
}

func Key(form string, userID uuid.UUID) string {
	return fmt.Sprintf("inflight:%s:%s", form, userID)
}

// Acquire takes the lock for form and user. The returned release func is
// safe to call more than once.
func (l *Locker) Acquire(ctx context.Context, form string, userID uuid.UUID) (func(), error) {
	key := Key(form, userID)
	token := uuid.NewString()

	ok, err := l.rdb.SetNX(ctx, key, token, l.lease).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInFlight
	}

	released := false
	return func() {
		if released {
			return
		}
		released = true
		_ = releaseScript.Run(context.Background(), l.rdb, []string{key}, token).Err()
	}, nil
}
