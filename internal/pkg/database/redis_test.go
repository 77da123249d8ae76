package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func setupRedis(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to create miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisClientFromExisting(client), mr
}

func TestRedisClient_SetNX(t *testing.T) {
	client, _ := setupRedis(t)
	ctx := context.Background()

	// First set wins
	acquired, err := client.SetNX(ctx, "jobs:lock:trip.sweep:2025-06-02T08:00:00Z", 1, time.Minute)
	assert.NoError(t, err)
	assert.True(t, acquired)

	// Second set on the same key loses
	acquired, err = client.SetNX(ctx, "jobs:lock:trip.sweep:2025-06-02T08:00:00Z", 1, time.Minute)
	assert.NoError(t, err)
	assert.False(t, acquired)
}

func TestRedisClient_SetNX_AfterExpiry(t *testing.T) {
	client, mr := setupRedis(t)
	ctx := context.Background()

	acquired, err := client.SetNX(ctx, "lock", 1, time.Second)
	assert.NoError(t, err)
	assert.True(t, acquired)

	mr.FastForward(2 * time.Second)

	acquired, err = client.SetNX(ctx, "lock", 1, time.Second)
	assert.NoError(t, err)
	assert.True(t, acquired)
}

func TestRedisClient_Delete(t *testing.T) {
	client, _ := setupRedis(t)
	ctx := context.Background()

	_, err := client.SetNX(ctx, "lock", 1, time.Minute)
	assert.NoError(t, err)

	// Released lock can be re-acquired, the enqueue-failure recovery path
	assert.NoError(t, client.Delete(ctx, "lock"))

	acquired, err := client.SetNX(ctx, "lock", 1, time.Minute)
	assert.NoError(t, err)
	assert.True(t, acquired)
}

func TestRedisClient_Get(t *testing.T) {
	client, mr := setupRedis(t)
	ctx := context.Background()

	mr.Set("key", "value")
	got, err := client.Get(ctx, "key")
	assert.NoError(t, err)
	assert.Equal(t, "value", got)

	_, err = client.Get(ctx, "missing")
	assert.ErrorIs(t, err, redis.Nil)
}
