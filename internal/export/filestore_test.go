package export

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreEvictsOldest(t *testing.T) {
	store := NewFileStore(2)

	a := store.Put("session-1", "a.csv", "text/csv", []byte("a"))
	b := store.Put("session-1", "b.csv", "text/csv", []byte("bb"))
	c := store.Put("session-1", "c.csv", "text/csv", []byte("ccc"))

	assert.Equal(t, 2, store.Len())
	_, ok := store.Get(a.ID)
	assert.False(t, ok)

	got, ok := store.Get(b.ID)
	require.True(t, ok)
	assert.Equal(t, []byte("bb"), got.Data)
	assert.Equal(t, 3, c.Size)
}

func TestFileStoreCopiesData(t *testing.T) {
	store := NewFileStore(0)
	data := []byte("x")
	h := store.Put("session-1", "x.csv", "text/csv", data)
	data[0] = 'y'

	got, ok := store.Get(h.ID)
	require.True(t, ok)
	assert.Equal(t, []byte("x"), got.Data)
}

func TestFileStoreGetForChecksOwner(t *testing.T) {
	store := NewFileStore(0)
	h := store.Put("session-1", "x.csv", "text/csv", []byte("x"))

	_, ok := store.GetFor("session-1", h.ID)
	assert.True(t, ok)
	_, ok = store.GetFor("session-2", h.ID)
	assert.False(t, ok, "files are private to the session that rendered them")
	_, ok = store.GetFor("session-1", "missing")
	assert.False(t, ok)
}

func TestOwnerFromContext(t *testing.T) {
	_, ok := OwnerFromContext(context.Background())
	assert.False(t, ok)

	owner, ok := OwnerFromContext(WithOwner(context.Background(), "session-1"))
	require.True(t, ok)
	assert.Equal(t, "session-1", owner)
}

func TestFileName(t *testing.T) {
	tests := map[string]string{
		"Oslo IT":   "Oslo IT.csv",
		"a/b:c":     "a-b-c.csv",
		"   ":       "list.csv",
		" Rogaland": "Rogaland.csv",
	}
	for in, want := range tests {
		assert.Equal(t, want, fileName(in), in)
	}
}
