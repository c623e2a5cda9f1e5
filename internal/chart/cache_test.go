package chart

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCache_GetSetExpire(t *testing.T) {
	c := NewRenderCache(time.Minute)
	require.NotNil(t, c)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	key := CacheKey("sml", "0.02", "0.08")
	c.Set(key, []byte("img"))

	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, []byte("img"), got)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get(key)
	assert.False(t, ok)

	c.Prune()
	assert.Equal(t, 0, c.Len())
}

func TestRenderCache_CallerCannotMutateEntry(t *testing.T) {
	c := NewRenderCache(time.Minute)
	src := []byte("img")
	c.Set("k", src)
	src[0] = 'X'

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("img"), got)
	got[0] = 'Y'

	again, _ := c.Get("k")
	assert.Equal(t, []byte("img"), again)
}

func TestRenderCache_NilIsNoop(t *testing.T) {
	c := NewRenderCache(0)
	assert.Nil(t, c)

	c.Set("k", []byte("v"))
	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
	c.Clear()
	c.Janitor(context.Background(), time.Second)
}

func TestRenderCache_JanitorStopsOnCancel(t *testing.T) {
	c := NewRenderCache(time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Janitor(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, CacheKey("a", "b"), CacheKey("a", "b"))
	assert.NotEqual(t, CacheKey("a", "b"), CacheKey("a", "c"))
	assert.Len(t, CacheKey("x"), 64)
}

func TestWriteCurveCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCurveCSV(&buf, []Point{{Beta: 0, ExpectedReturn: 2}, {Beta: 2, ExpectedReturn: 14}})
	require.NoError(t, err)
	assert.Equal(t, "beta,expected_return_pct\n0.000000,2.000000\n2.000000,14.000000\n", buf.String())
}

func TestWriteCurveCSVFile(t *testing.T) {
	path := t.TempDir() + "/out/sml.csv"
	require.NoError(t, WriteCurveCSVFile(path, []Point{{Beta: 1, ExpectedReturn: 8}}))
}
