package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestForEach(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	var sum atomic.Int64

	processed, err := ForEach(
		context.Background(),
		items,
		DefaultPoolConfig(),
		func(ctx context.Context, item int) error {
			sum.Add(int64(item))
			return nil
		},
	)

	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if processed != 5 {
		t.Errorf("expected 5 processed, got %d", processed)
	}
	if sum.Load() != 15 {
		t.Errorf("expected sum 15, got %d", sum.Load())
	}
}

func TestForEach_FirstError(t *testing.T) {
	items := []int{1, 2, 3}
	boom := errors.New("boom")

	_, err := ForEach(
		context.Background(),
		items,
		DefaultPoolConfig(),
		func(ctx context.Context, item int) error {
			if item == 2 {
				return boom
			}
			return nil
		},
	)

	if !errors.Is(err, boom) {
		t.Errorf("expected boom error, got %v", err)
	}
}

func TestForEach_Empty(t *testing.T) {
	processed, err := ForEach(
		context.Background(),
		[]int{},
		DefaultPoolConfig(),
		func(ctx context.Context, item int) error { return nil },
	)

	if err != nil || processed != 0 {
		t.Errorf("expected (0, nil), got (%d, %v)", processed, err)
	}
}

func TestForEach_WorkerCap(t *testing.T) {
	config := PoolConfig{MaxWorkers: 2}
	items := make([]int, 20)
	for i := range items {
		items[i] = i
	}

	var seen atomic.Int64
	processed, err := ForEach(
		context.Background(),
		items,
		config,
		func(ctx context.Context, item int) error {
			seen.Add(1)
			return nil
		},
	)

	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if processed != int64(len(items)) || seen.Load() != int64(len(items)) {
		t.Errorf("expected all %d items processed, got processed=%d seen=%d", len(items), processed, seen.Load())
	}
}
