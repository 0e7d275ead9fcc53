package utils

import (
	"context"
	"math/rand"
	"time"
)

type Backoff struct {
	base       time.Duration
	maxRetries int
}

func NewBackoff(base time.Duration, maxRetries int) Backoff {
	return Backoff{base: base, maxRetries: maxRetries}
}

// Do reintenta fn con backoff exponencial + jitter; respeta ctx entre intentos.
func (b Backoff) Do(ctx context.Context, fn func(i int) error) error {
	var err error
	for i := 0; i <= b.maxRetries; i++ {
		err = fn(i)
		if err == nil {
			return nil
		}
		if i == b.maxRetries {
			break
		}
		t := time.Duration(1<<i) * b.base
		t += time.Duration(rand.Int63n(int64(b.base) + 1))
		select {
		case <-time.After(t):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}
