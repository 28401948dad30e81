package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/cinemind/core"
	"github.com/poiesic/cinemind/storage"
)

// Key prefix for cached vectors
const vectorPrefix = "vec"

// makeVectorKey generates a key for a cached vector by ID.
func makeVectorKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", vectorPrefix, id))
}

// VectorCache implements storage.VectorCache on a BadgerDB backend.
type VectorCache struct {
	backend *Backend
}

// NewVectorCache creates a vector cache on the given backend.
//
// Returns storage.VectorCache interface to enforce abstraction.
func NewVectorCache(backend *Backend) (storage.VectorCache, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &VectorCache{backend: backend}, nil
}

// GetVector retrieves the cached vector for the given ID.
func (c *VectorCache) GetVector(ctx context.Context, id core.ID) ([]float32, error) {
	if c.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var vector []float32
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeVectorKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			vector, err = storage.UnmarshalVector(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return vector, nil
}

// PutVector stores a vector under the given ID.
func (c *VectorCache) PutVector(ctx context.Context, id core.ID, vector []float32) error {
	if c.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return c.backend.WithTx(func(tx *badger.Txn) error {
		return tx.Set(makeVectorKey(id), storage.MarshalVector(vector))
	}, true)
}

// Close closes the underlying backend.
func (c *VectorCache) Close() error {
	return c.backend.Close()
}
