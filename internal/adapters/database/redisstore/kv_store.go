package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const keyNamespace = "pos"

type cmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// KVStore keeps each collection as one redis string under the pos: namespace.
type KVStore struct {
	store cmdable
	raw   *redis.Client
}

// New connects to url (redis://...) and verifies connectivity.
func New(ctx context.Context, url string) (*KVStore, error) {
	if url == "" {
		return nil, errors.New("redis url is required")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &KVStore{store: raw, raw: raw}, nil
}

var _ portsrepo.KVStoreFacade = (*KVStore)(nil)

func namespaced(key string) string {
	return keyNamespace + ":" + key
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.store.Get(ctx, namespaced(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: key %s", apperrors.ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("reading key %s: %w", key, err)
	}
	return val, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.store.Set(ctx, namespaced(key), value, 0).Err(); err != nil {
		return fmt.Errorf("writing key %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Remove(ctx context.Context, key string) error {
	if err := s.store.Del(ctx, namespaced(key)).Err(); err != nil {
		return fmt.Errorf("removing key %s: %w", key, err)
	}
	return nil
}

// Close releases the connection pool.
func (s *KVStore) Close() error {
	if s.raw == nil {
		return nil
	}
	return s.raw.Close()
}
