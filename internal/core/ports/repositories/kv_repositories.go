package repositories

import (
	"context"
)

// Keys of the collections kept in the local store.
const (
	KeyOrders    = "orders"
	KeyEmployees = "employees"
	KeySuppliers = "suppliers"
)

// KVReader defines read operations on the local persistence substrate
type KVReader interface {
	// Get returns the whole value stored under key, or apperrors.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
}

// KVWriter defines write operations on the local persistence substrate
type KVWriter interface {
	// Set replaces the whole value under key.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// KVStoreFacade combines all key-value store operations
type KVStoreFacade interface {
	KVReader
	KVWriter
}
