package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type report struct {
	Total string `json:"total"`
}

func newTestCache(t *testing.T) (*ReportCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewReportCache(client, time.Minute), mr
}

func TestVersionInitialisesToOne(t *testing.T) {
	c, _ := newTestCache(t)
	ver, err := c.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), ver)
}

func TestBuildKeyIncludesVersion(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	key, err := c.BuildKey(ctx, "reports", "trial_balance", "open-open")
	require.NoError(t, err)
	assert.Equal(t, "reports:trial_balance:open-open:v1", key)

	require.NoError(t, c.Bump(ctx))
	key, err = c.BuildKey(ctx, "reports", "trial_balance", "open-open")
	require.NoError(t, err)
	assert.Equal(t, "reports:trial_balance:open-open:v2", key)
}

func TestFetchJSONCachesLoaderResult(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	calls := 0
	loader := func(context.Context) (any, error) {
		calls++
		return report{Total: "100.00"}, nil
	}

	var first report
	require.NoError(t, c.FetchJSON(ctx, "k", &first, loader))
	var second report
	require.NoError(t, c.FetchJSON(ctx, "k", &second, loader))

	assert.Equal(t, 1, calls)
	assert.Equal(t, "100.00", second.Total)
	assert.True(t, mr.Exists("k"))
	assert.Greater(t, mr.TTL("k"), time.Duration(0))
}

func TestFetchJSONPropagatesLoaderError(t *testing.T) {
	c, mr := newTestCache(t)
	loaderErr := errors.New("store down")

	var out report
	err := c.FetchJSON(context.Background(), "k", &out, func(context.Context) (any, error) {
		return nil, loaderErr
	})
	assert.ErrorIs(t, err, loaderErr)
	assert.False(t, mr.Exists("k"))
}

func TestFetchJSONRequiresLoader(t *testing.T) {
	c, _ := newTestCache(t)
	var out report
	assert.Error(t, c.FetchJSON(context.Background(), "k", &out, nil))
}

func TestNilCacheComputesDirectly(t *testing.T) {
	var c *ReportCache
	ctx := context.Background()

	key, err := c.BuildKey(ctx, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "a:b", key)
	assert.NoError(t, c.Bump(ctx))

	var out report
	require.NoError(t, c.FetchJSON(ctx, key, &out, func(context.Context) (any, error) {
		return report{Total: "5"}, nil
	}))
	assert.Equal(t, "5", out.Total)
}

func TestRedisFailureIsReturned(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	_, err := c.BuildKey(context.Background(), "reports")
	assert.Error(t, err)
	assert.Error(t, c.Bump(context.Background()))
}

func TestFetchJSONWriteFailureKeepsComputedValue(t *testing.T) {
	c, mr := newTestCache(t)

	var out report
	err := c.FetchJSON(context.Background(), "k", &out, func(context.Context) (any, error) {
		// Redis goes away between the miss and the write back
		mr.SetError("READONLY You can't write against a read only replica.")
		return report{Total: "42.00"}, nil
	})

	assert.Error(t, err)
	assert.Equal(t, "42.00", out.Total)
}

func TestBumpVisibleToOtherInstances(t *testing.T) {
	api, mr := newTestCache(t)
	otherClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = otherClient.Close() })
	worker := NewReportCache(otherClient, time.Minute)
	ctx := context.Background()

	before, err := worker.BuildKey(ctx, "reports", "income_statement", "open-open")
	require.NoError(t, err)

	require.NoError(t, api.Bump(ctx))

	after, err := worker.BuildKey(ctx, "reports", "income_statement", "open-open")
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
	assert.Equal(t, "reports:income_statement:open-open:v2", after)
}
