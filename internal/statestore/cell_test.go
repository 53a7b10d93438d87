package statestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupStore creates a store over a fresh in-memory database for each test
// to ensure isolation.
func setupStore(t *testing.T) *Store {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	assert.NoError(t, err)

	store, err := NewStore(db, zap.NewNop())
	assert.NoError(t, err)
	return store
}

func TestCellDefaultWhenKeyAbsent(t *testing.T) {
	store := setupStore(t)

	cell := NewCell(store, "missing", 42)

	assert.Equal(t, 42, cell.Get())
	assert.Equal(t, "missing", cell.Key())
}

func TestCellWritesThroughToStore(t *testing.T) {
	store := setupStore(t)

	// Act: write via one cell, then re-acquire the key as a fresh cell.
	cell := NewCell(store, "numbers", []int{})
	cell.Set([]int{1, 2, 3})

	reloaded := NewCell(store, "numbers", []int{})
	assert.Equal(t, []int{1, 2, 3}, reloaded.Get())
}

func TestCellFallsBackOnCorruptJSON(t *testing.T) {
	store := setupStore(t)
	store.write("broken", `{"this is": not json`)

	// Acquiring the cell must not fail; the corrupt payload is discarded.
	cell := NewCell(store, "broken", "default")

	assert.Equal(t, "default", cell.Get())
}

func TestCellFallsBackOnTypeMismatch(t *testing.T) {
	store := setupStore(t)
	store.write("typed", `"a string, not a number"`)

	cell := NewCell(store, "typed", 7.5)

	assert.Equal(t, 7.5, cell.Get())
}

func TestCellFunctionalUpdate(t *testing.T) {
	store := setupStore(t)
	cell := NewCell(store, "counter", 10)

	cell.Update(func(prev int) int { return prev + 5 })

	assert.Equal(t, 15, cell.Get())
	assert.Equal(t, 15, NewCell(store, "counter", 0).Get())
}

func TestCellsOnDistinctKeysAreIndependent(t *testing.T) {
	store := setupStore(t)
	a := NewCell(store, "a", "one")
	b := NewCell(store, "b", "two")

	a.Set("changed")

	assert.Equal(t, "changed", a.Get())
	assert.Equal(t, "two", b.Get())
	assert.Equal(t, "two", NewCell(store, "b", "").Get())
}

func TestCellLastWriteWinsOnSharedKey(t *testing.T) {
	store := setupStore(t)
	first := NewCell(store, "shared", 0)
	second := NewCell(store, "shared", 0)

	first.Set(1)
	second.Set(2)

	// The writers do not observe each other in memory; storage holds the
	// last write.
	assert.Equal(t, 1, first.Get())
	assert.Equal(t, 2, NewCell(store, "shared", 0).Get())
}
