package redis_test

import (
	"context"
	"testing"
	"time"

	redisclient "github.com/muhammadheryan/garment-erp/cmd/redis"
	"github.com/muhammadheryan/garment-erp/repository/redis"
	"github.com/stretchr/testify/require"
)

func TestRepository_WithoutClient(t *testing.T) {
	redisclient.Set(nil)
	repo := redis.NewRepository()
	ctx := context.Background()

	claimed, err := repo.SetIfAbsent(ctx, "challan:idempotency:1:k", "processing", time.Minute)
	require.NoError(t, err)
	require.True(t, claimed)

	val, err := repo.Get(ctx, "challan:idempotency:1:k")
	require.NoError(t, err)
	require.Empty(t, val)

	require.NoError(t, repo.SetWithTTL(ctx, "challan:idempotency:1:k", "7", time.Minute))
	require.NoError(t, repo.Delete(ctx, "challan:idempotency:1:k"))
}
