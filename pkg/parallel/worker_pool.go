// Package parallel provides the small bounded-concurrency helper the
// driver uses to fan a sample's output writes out across goroutines.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// PoolConfig bounds how many goroutines ForEach may run at once.
type PoolConfig struct {
	// MaxWorkers is the maximum number of concurrent goroutines.
	MaxWorkers int
}

// DefaultPoolConfig caps concurrency at min(NumCPU, 8), floored at 2, so
// a handful of output-file writes never oversubscribe a small machine.
func DefaultPoolConfig() PoolConfig {
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	if workers < 2 {
		workers = 2
	}
	return PoolConfig{MaxWorkers: workers}
}

// ForEach runs fn for every item in items, bounded to config.MaxWorkers
// concurrent goroutines, and returns the number of items that completed
// without error and the first error encountered (if any). Once an item
// fails, items not yet started are skipped, but in-flight items still
// run to completion.
func ForEach[T any](
	ctx context.Context,
	items []T,
	config PoolConfig,
	fn func(ctx context.Context, item T) error,
) (processed int64, firstError error) {
	if len(items) == 0 {
		return 0, nil
	}

	workers := config.MaxWorkers
	if workers <= 0 {
		workers = DefaultPoolConfig().MaxWorkers
	}
	if workers > len(items) {
		workers = len(items)
	}

	var processedCount atomic.Int64
	var errOnce sync.Once
	var errMu sync.Mutex
	itemCh := make(chan T)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range itemCh {
				if err := fn(ctx, item); err != nil {
					errOnce.Do(func() {
						errMu.Lock()
						firstError = err
						errMu.Unlock()
					})
					continue
				}
				processedCount.Add(1)
			}
		}()
	}

	for _, item := range items {
		itemCh <- item
	}
	close(itemCh)
	wg.Wait()

	errMu.Lock()
	defer errMu.Unlock()
	return processedCount.Load(), firstError
}
