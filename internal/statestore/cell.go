package statestore

import (
	"encoding/json"

	"go.uber.org/zap"
)

// Cell is a piece of state transparently synchronized with the store under a
// fixed key. Reads are served from memory; every Set writes the JSON
// encoding through to the store before returning. Create cells with NewCell,
// the zero value is not usable.
//
// Two cells acquired for the same key do not observe each other's writes:
// the last writer wins in storage. The journal assumes a single writer per
// key, so this is a documented limitation rather than something the cell
// tries to detect.
type Cell[T any] struct {
	store *Store
	key   string
	value T
}

// NewCell acquires the cell for key. The stored JSON is decoded into T; when
// the key is absent, or the stored payload does not decode, the cell
// silently starts from defaultValue. Corrupt state never surfaces as an
// error to the caller.
func NewCell[T any](store *Store, key string, defaultValue T) *Cell[T] {
	c := &Cell[T]{store: store, key: key, value: defaultValue}

	raw, ok := store.read(key)
	if !ok {
		return c
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		store.logger.Warn("Stored state does not decode, falling back to default",
			zap.String("key", key), zap.Error(err))
		return c
	}

	c.value = v
	return c
}

// Key returns the storage key this cell owns.
func (c *Cell[T]) Key() string {
	return c.key
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	return c.value
}

// Set replaces the value and synchronously writes it through to the store.
func (c *Cell[T]) Set(next T) {
	c.value = next

	b, err := json.Marshal(next)
	if err != nil {
		c.store.logger.Error("Failed to encode state value",
			zap.String("key", c.key), zap.Error(err))
		return
	}
	c.store.write(c.key, string(b))
}

// Update applies fn to the current value and sets the result. It exists for
// callers that derive the next value from the previous one.
func (c *Cell[T]) Update(fn func(T) T) {
	c.Set(fn(c.value))
}
