package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const rateKeyPrefix = "otp:rate:"

// admitScript prunes, counts and records in one step. Scores are unix milliseconds.
var admitScript = redis.NewScript(`
redis.call('ZREMRANGEBYSCORE', KEYS[1], '-inf', ARGV[1])
if redis.call('ZCARD', KEYS[1]) >= tonumber(ARGV[3]) then
	return 0
end
redis.call('ZADD', KEYS[1], ARGV[2], ARGV[4])
redis.call('PEXPIRE', KEYS[1], ARGV[5])
return 1
`)

// RedisRateLedger implements auth.RateLedger on a Redis sorted set per mobile
type RedisRateLedger struct {
	client redis.UniversalClient
}

// NewRedisRateLedger creates a rate ledger shared by every replica using client
func NewRedisRateLedger(client redis.UniversalClient) *RedisRateLedger {
	return &RedisRateLedger{client: client}
}

func rateKey(mobile string) string {
	return rateKeyPrefix + mobile
}

// Admit records an issuance event at now unless max events remain inside the window
func (l *RedisRateLedger) Admit(ctx context.Context, mobile string, now time.Time, window time.Duration, max int) (bool, error) {
	nowMs := now.UnixMilli()
	cutoff := now.Add(-window).UnixMilli()

	result, err := admitScript.Run(ctx, l.client, []string{rateKey(mobile)},
		"("+strconv.FormatInt(cutoff, 10),
		nowMs,
		max,
		uuid.NewString(),
		window.Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("failed to admit rate event: %w", err)
	}
	return result == 1, nil
}
