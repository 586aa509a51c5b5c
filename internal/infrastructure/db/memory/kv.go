// Package memory provides an in-process KVStore, used as the default
// backend and as the fake in tests.
package memory

import (
	"context"
	"sync"

	"github.com/movieflix/movieflix-api/internal/core/domain"
)

type KV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewKV() *KV {
	return &KV{data: make(map[string][]byte)}
}

func (k *KV) Get(_ context.Context, key string) ([]byte, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	v, ok := k.data[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (k *KV) Set(_ context.Context, key string, value []byte) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	k.data[key] = v
	return nil
}

func (k *KV) Remove(_ context.Context, key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	delete(k.data, key)
	return nil
}
