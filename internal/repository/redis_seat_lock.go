package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/ticket-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	seatLockTTL      = 30 * time.Second
	seatLockedPrefix = "seat already locked"
)

var lockSeatsScript = redis.NewScript(`
    -- KEYS = seat lock keys (e.g., seat_lock:12:3,4 etc.)
    -- ARGV = [owner, ttl]

    for i=1, #KEYS do
        if redis.call("EXISTS", KEYS[i]) == 1 then
            return {err = "seat already locked " .. KEYS[i]}
        end
    end

    for i=1, #KEYS do
        redis.call("SET", KEYS[i], ARGV[1], "EX", ARGV[2])
    end

    return "OK"
`)

var unlockSeatsScript = redis.NewScript(`
    -- only remove locks still held by ARGV[1]
    local removed = 0

    for i=1, #KEYS do
        if redis.call("GET", KEYS[i]) == ARGV[1] then
            removed = removed + redis.call("DEL", KEYS[i])
        end
    end

    return removed
`)

// RedisSeatLocker holds short lived locks on (screening, seat) pairs while a
// booking is checked and written. Locks expire on their own if the holder dies.
type RedisSeatLocker struct {
	redis redis.UniversalClient
	ttl   time.Duration
}

func NewRedisSeatLocker(client redis.UniversalClient) *RedisSeatLocker {
	return &RedisSeatLocker{
		redis: client,
		ttl:   seatLockTTL,
	}
}

func (l *RedisSeatLocker) Lock(ctx context.Context, screeningID int, seats []string) (func(), error) {
	keys := make([]string, len(seats))
	for i, seat := range seats {
		keys[i] = seatLockKey(screeningID, seat)
	}

	owner := uuid.NewString()

	err := lockSeatsScript.Run(ctx, l.redis, keys, owner, int(l.ttl.Seconds())).Err()
	if err != nil {
		if redis.HasErrorPrefix(err, seatLockedPrefix) {
			return nil, &domain.SeatTakenError{Seat: lockedSeat(err, keys, seats)}
		}

		return nil, err
	}

	release := func() {
		// the request context may already be cancelled
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()

		unlockSeatsScript.Run(ctx, l.redis, keys, owner)
	}

	return release, nil
}

// lockedSeat maps the key named in the script error back to its seat.
func lockedSeat(err error, keys, seats []string) string {
	msg := err.Error()

	for i, key := range keys {
		if strings.HasSuffix(msg, " "+key) {
			return seats[i]
		}
	}

	return ""
}

func seatLockKey(screeningID int, seat string) string {
	return fmt.Sprintf("seat_lock:%d:%s", screeningID, seat)
}
