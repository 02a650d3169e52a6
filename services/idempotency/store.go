// Package idempotency guards calendar writes against duplicate client retries.
//
// A key is first reserved, then either completed with the serialized result or
// released on failure. A completed key replays its result until it expires.
package idempotency

import (
	"context"
	"time"
)

// Store holds idempotency keys.
type Store interface {
	// Reserve claims key. It returns false when the key is already claimed or completed.
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Complete records the result for a reserved key.
	Complete(ctx context.Context, key string, result []byte, ttl time.Duration) error
	// Result returns the recorded result, if the key was completed.
	Result(ctx context.Context, key string) ([]byte, bool, error)
	// Release drops a reservation so the request can be retried.
	Release(ctx context.Context, key string) error
}

// Noop is used when no cache is configured. Every reservation succeeds and
// nothing is replayed.
type Noop struct{}

func (Noop) Reserve(context.Context, string, time.Duration) (bool, error) { return true, nil }

func (Noop) Complete(context.Context, string, []byte, time.Duration) error { return nil }

func (Noop) Result(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (Noop) Release(context.Context, string) error { return nil }
