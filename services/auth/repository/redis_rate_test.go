package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMiniredis creates a new miniredis server and returns a Redis client connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return mr, client
}

func TestRedisRateLedger_Admit(t *testing.T) {
	mr, client := setupMiniredis(t)
	ledger := NewRedisRateLedger(client)
	ctx := context.Background()
	window := 10 * time.Minute

	for i := 0; i < 5; i++ {
		admitted, err := ledger.Admit(ctx, "01012345678", testNow.Add(time.Duration(i)*time.Second), window, 5)
		require.NoError(t, err)
		assert.True(t, admitted, "request %d", i+1)
	}

	admitted, err := ledger.Admit(ctx, "01012345678", testNow.Add(time.Minute), window, 5)
	require.NoError(t, err)
	assert.False(t, admitted)

	members, err := mr.ZMembers(rateKey("01012345678"))
	require.NoError(t, err)
	assert.Len(t, members, 5)
	assert.True(t, mr.TTL(rateKey("01012345678")) > 0)

	// the first event ages out
	admitted, err = ledger.Admit(ctx, "01012345678", testNow.Add(window).Add(time.Millisecond), window, 5)
	require.NoError(t, err)
	assert.True(t, admitted)
}

func TestRedisRateLedger_Unavailable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	ledger := NewRedisRateLedger(client)
	mr.Close()

	admitted, err := ledger.Admit(context.Background(), "01012345678", testNow, time.Minute, 5)
	assert.False(t, admitted)
	assert.ErrorContains(t, err, "failed to admit rate event")
}
