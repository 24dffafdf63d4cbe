package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	assert.NoError(t, err)

	_, ok, err := store.Read("session")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Write("session", `{"id":"1"}`))

	value, ok, err := store.Read("session")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":"1"}`, value)

	assert.NoError(t, store.Write("session", `{"id":"2"}`))
	value, _, _ = store.Read("session")
	assert.Equal(t, `{"id":"2"}`, value)

	assert.NoError(t, store.Erase("session"))
	_, ok, err = store.Read("session")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreEraseAbsentKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	assert.NoError(t, err)
	assert.NoError(t, store.Erase("never_written"))
}
