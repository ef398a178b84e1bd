package cache

import (
	"context"

	"inventario-lab/internal/worker"
)

// KeyAvailableCount caches the available-equipment count.
const KeyAvailableCount = "equipos:disponibles:count"

// InvalidateAsync queues a best-effort delete of keys on the worker
// pool so the request path never waits on Redis. Errors only reach
// the log inside the Del command; a full queue simply drops the task
// and the entry expires by TTL instead.
func InvalidateAsync(wp worker.Pool, c Cache, keys ...string) {
	wp.Submit(func() {
		_ = c.Del(context.Background(), keys...).Err()
	})
}
