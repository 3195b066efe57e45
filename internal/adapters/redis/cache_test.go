package rediscache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	rediscache "github.com/sainath-666/pgstay/internal/adapters/redis"
	"github.com/sainath-666/pgstay/internal/domain"
)

func TestCache_SetGetDel(t *testing.T) {
	mr := miniredis.RunT(t)
	c := rediscache.New(mr.Addr(), "", 0)
	ctx := context.Background()

	want := []domain.Listing{{ID: "1", Name: "Sri Sai", Area: "Ameerpet", GenderType: domain.GenderBoys}}
	if err := c.Set(ctx, "listings:all", want, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got []domain.Listing
	ok, err := c.Get(ctx, "listings:all", &got)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0].ID != "1" || got[0].Area != "Ameerpet" {
		t.Fatalf("unexpected value: %+v", got)
	}

	if err := c.Del(ctx, "listings:all"); err != nil {
		t.Fatalf("del: %v", err)
	}
	ok, err = c.Get(ctx, "listings:all", &got)
	if err != nil || ok {
		t.Fatalf("want miss after del: ok=%v err=%v", ok, err)
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	c := rediscache.New(mr.Addr(), "", 0)
	ctx := context.Background()

	if err := c.Set(ctx, "listing:1", domain.Listing{ID: "1"}, 30*time.Second); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(31 * time.Second)

	var got domain.Listing
	ok, err := c.Get(ctx, "listing:1", &got)
	if err != nil || ok {
		t.Fatalf("want miss after expiry: ok=%v err=%v", ok, err)
	}
}
