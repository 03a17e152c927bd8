package payments

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{4.35, 435},
		{19.99, 1999},
		{0.1, 10},
		{125, 12500},
		{0, 0},
	}

	for _, c := range cases {
		if got := MinorUnits(c.amount); got != c.want {
			t.Errorf("MinorUnits(%v) = %d, want %d", c.amount, got, c.want)
		}
	}
}

func TestReconcileLockOwnership(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	lock := NewReconcileLock(rdb)
	ctx := context.Background()

	if !lock.Acquire(ctx, "pi_1") {
		t.Fatal("first acquire must succeed")
	}
	if lock.Acquire(ctx, "pi_1") {
		t.Fatal("second acquire on a held transaction must fail")
	}
	if !lock.Acquire(ctx, "pi_2") {
		t.Fatal("other transaction ids are independent")
	}

	lock.Release(ctx, "pi_1")
	if !lock.Acquire(ctx, "pi_1") {
		t.Fatal("acquire after release must succeed")
	}
}

func TestReconcileLockDegradesOpen(t *testing.T) {
	// No Redis at all: reconciliation must keep working, the store's
	// unique index remains the arbiter.
	lock := NewReconcileLock(nil)
	if !lock.Acquire(context.Background(), "pi_1") {
		t.Fatal("nil client must degrade to acquired")
	}

	// Redis configured but unreachable behaves the same.
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { rdb.Close() })

	lock = NewReconcileLock(rdb)
	if !lock.Acquire(context.Background(), "pi_1") {
		t.Fatal("unreachable Redis must degrade to acquired")
	}
}
