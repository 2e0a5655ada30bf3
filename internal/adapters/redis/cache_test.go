package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	redisad "stayquery/internal/adapters/redis"
	"stayquery/internal/domain"
)

func newCache(t *testing.T) (*redisad.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redisad.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCache_SetGetDel(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	if err := c.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	in := []domain.Accommodation{{
		ID:       "h1",
		Name:     "Hotel One",
		CheckIn:  domain.NewDate(2026, 11, 20),
		CheckOut: domain.NewDate(2026, 11, 25),
	}}
	if err := c.Set(ctx, "search:k", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !mr.Exists("stayquery:search:k") {
		t.Fatalf("expected prefixed key in redis, have %v", mr.Keys())
	}

	var out []domain.Accommodation
	ok, err := c.Get(ctx, "search:k", &out)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(out) != 1 || out[0].Name != "Hotel One" || out[0].CheckOut.String() != "2026-11-25" {
		t.Fatalf("unexpected value: %+v", out)
	}

	if err := c.Del(ctx, "search:k"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ := c.Get(ctx, "search:k", &out); ok {
		t.Fatalf("expected miss after delete")
	}
}

func TestCache_TTLExpires(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "k", map[string]int{"a": 1}, 30); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(31 * time.Second)

	var out map[string]int
	if ok, err := c.Get(ctx, "k", &out); ok || err != nil {
		t.Fatalf("expected expired miss, got ok=%v err=%v", ok, err)
	}
}

func TestCache_CorruptValue(t *testing.T) {
	c, mr := newCache(t)
	if err := mr.Set("stayquery:bad", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	var out map[string]any
	if ok, err := c.Get(context.Background(), "bad", &out); ok || err == nil {
		t.Fatalf("expected decode error, got ok=%v err=%v", ok, err)
	}
}
