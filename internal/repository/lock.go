package repository

import (
	"context"
	"sync"
)

func withRead[T any](ctx context.Context, mu *sync.RWMutex, fn func() (T, error)) (T, error) {
	var zero T

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	mu.RLock()
	defer mu.RUnlock()

	return fn()
}

func withWrite[T any](ctx context.Context, mu *sync.RWMutex, fn func() (T, error)) (T, error) {
	var zero T

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	mu.Lock()
	defer mu.Unlock()

	return fn()
}
