package pgsql

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	value []byte
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.value
	return nil
}

// fakeDB emulates the kv_store table.
type fakeDB struct {
	rows    map[string][]byte
	execErr error
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	key := args[0].(string)
	switch {
	case strings.Contains(sql, "INSERT INTO kv_store"):
		f.rows[key] = args[1].([]byte)
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	case strings.Contains(sql, "DELETE FROM kv_store"):
		delete(f.rows, key)
		return pgconn.NewCommandTag("DELETE 1"), nil
	}
	return pgconn.CommandTag{}, errors.New("unexpected statement")
}

func (f *fakeDB) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	v, ok := f.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{value: v}
}

func TestKVStore(t *testing.T) {
	ctx := context.Background()
	db := &fakeDB{rows: map[string][]byte{}}
	store := NewKVStore(db)

	_, err := store.Get(ctx, "orders")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, store.Set(ctx, "orders", []byte(`[]`)))
	got, err := store.Get(ctx, "orders")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	require.NoError(t, store.Remove(ctx, "orders"))
	_, err = store.Get(ctx, "orders")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestKVStore_ExecError(t *testing.T) {
	store := NewKVStore(&fakeDB{rows: map[string][]byte{}, execErr: errors.New("connection reset")})
	err := store.Set(context.Background(), "orders", []byte(`[]`))
	assert.ErrorContains(t, err, "connection reset")
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}
