package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type IdempotencyStore struct {
	mock.Mock
}

func NewIdempotencyStore(t mock.TestingT) *IdempotencyStore {
	m := &IdempotencyStore{}
	m.Test(t)
	return m
}

func (m *IdempotencyStore) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *IdempotencyStore) Complete(ctx context.Context, key string, result []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, result, ttl)
	return args.Error(0)
}

func (m *IdempotencyStore) Result(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	res, _ := args.Get(0).([]byte)
	return res, args.Bool(1), args.Error(2)
}

func (m *IdempotencyStore) Release(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
