package cache

import (
	"context"
	"testing"

	"inventario-lab/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type syncPool struct{}

func (syncPool) Submit(t worker.Task) bool { t(); return true }
func (syncPool) Stop()                     {}

type fullPool struct{}

func (fullPool) Submit(worker.Task) bool { return false }
func (fullPool) Stop()                   {}

func TestInvalidateAsync(t *testing.T) {
	t.Run("deletes through the pool", func(t *testing.T) {
		var deleted []string
		c := &FakeCache{
			DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
				deleted = append(deleted, keys...)
				return redis.NewIntResult(1, nil)
			},
		}
		InvalidateAsync(syncPool{}, c, KeyAvailableCount)
		require.Equal(t, []string{KeyAvailableCount}, deleted)
	})

	t.Run("full queue drops silently", func(t *testing.T) {
		// FakeCache panics on Del, so reaching Redis here fails the test.
		InvalidateAsync(fullPool{}, &FakeCache{}, KeyAvailableCount)
	})
}
