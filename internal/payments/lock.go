package payments

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// ReconcileLock narrows the check-then-act window between the duplicate
// lookup and the payment insert. The unique index on transaction_id is
// the final arbiter; the lock just keeps the common race from ever
// reaching it.
type ReconcileLock struct {
	client *redis.Client
	ttl    time.Duration
}

func NewReconcileLock(client *redis.Client) *ReconcileLock {
	return &ReconcileLock{
		client: client,
		ttl:    2 * time.Minute,
	}
}

// Acquire returns true when this caller owns the transaction id for the
// lock's TTL. A Redis outage degrades to "acquired": reconciliation
// must keep working without Redis, the store constraint still holds.
func (l *ReconcileLock) Acquire(ctx context.Context, transactionID string) bool {
	if l == nil || l.client == nil {
		return true
	}

	ok, err := l.client.SetNX(ctx, "payments:reconcile:"+transactionID, 1, l.ttl).Result()
	if err != nil {
		return true
	}
	return ok
}

// Release frees the key early so a failed reconciliation can be retried
// before the TTL runs out.
func (l *ReconcileLock) Release(ctx context.Context, transactionID string) {
	if l == nil || l.client == nil {
		return
	}
	l.client.Del(ctx, "payments:reconcile:"+transactionID)
}
