package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
)

// KVStore keeps values in process memory. Values are copied on the way in and out.
type KVStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewKVStore creates an empty in-memory store.
func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string][]byte)}
}

var _ portsrepo.KVStoreFacade = (*KVStore)(nil)

func (s *KVStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: key %s", apperrors.ErrNotFound, key)
	}
	return slices.Clone(v), nil
}

func (s *KVStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = slices.Clone(value)
	return nil
}

func (s *KVStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
