package redisstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCmdable struct {
	data   map[string]string
	setErr error
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{data: map[string]string{}}
}

func (m *mockCmdable) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *mockCmdable) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	if m.setErr != nil {
		return redis.NewStatusResult("", m.setErr)
	}
	m.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func (m *mockCmdable) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestKVStore(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	store := &KVStore{store: mock}

	_, err := store.Get(ctx, "suppliers")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, store.Set(ctx, "suppliers", []byte(`[{"id":1}]`)))
	assert.Contains(t, mock.data, "pos:suppliers")

	got, err := store.Get(ctx, "suppliers")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(got))

	require.NoError(t, store.Remove(ctx, "suppliers"))
	require.NoError(t, store.Remove(ctx, "suppliers"))
	_, err = store.Get(ctx, "suppliers")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestKVStore_SetError(t *testing.T) {
	mock := newMockCmdable()
	mock.setErr = errors.New("READONLY")
	store := &KVStore{store: mock}

	err := store.Set(context.Background(), "orders", []byte(`[]`))
	assert.ErrorContains(t, err, "READONLY")
	assert.NoError(t, store.Close())
}

func TestNew_RequiresURL(t *testing.T) {
	_, err := New(context.Background(), "")
	assert.Error(t, err)
	_, err = New(context.Background(), "not a url")
	assert.Error(t, err)
}
