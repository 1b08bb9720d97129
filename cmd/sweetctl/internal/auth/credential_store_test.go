package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
)

func newStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "home"), nil)
	require.NoError(t, err)
	return store
}

func TestFileStore_EmptyByDefault(t *testing.T) {
	store := newStore(t)
	_, ok := store.Get()
	assert.False(t, ok)
}

func TestFileStore_SetGetClear(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Set("a.b.c"))
	token, ok := store.Get()
	require.True(t, ok)
	assert.Equal(t, sdk.Credential("a.b.c"), token)

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"a.b.c"}`, string(data))

	require.NoError(t, store.Clear())
	_, ok = store.Get()
	assert.False(t, ok)

	require.NoError(t, store.Clear(), "clearing twice is fine")
}

func TestFileStore_SurvivesNewInstance(t *testing.T) {
	dir := t.TempDir()
	first, err := NewFileStore(dir, nil)
	require.NoError(t, err)
	require.NoError(t, first.Set("persisted"))

	second, err := NewFileStore(dir, nil)
	require.NoError(t, err)
	token, ok := second.Get()
	require.True(t, ok)
	assert.Equal(t, sdk.Credential("persisted"), token)
}

func TestFileStore_SetReplaces(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set("first"))
	require.NoError(t, store.Set("second"))

	token, _ := store.Get()
	assert.Equal(t, sdk.Credential("second"), token)

	_, err := os.Stat(store.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
}

func TestFileStore_SetEmptyClears(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set("x"))
	require.NoError(t, store.Set(""))
	_, ok := store.Get()
	assert.False(t, ok)
}

func TestFileStore_CorruptFileReadsAsAbsent(t *testing.T) {
	store := newStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0600))

	_, ok := store.Get()
	assert.False(t, ok)
	assert.Equal(t, sdk.AuthorizationState{}, sdk.DeriveAuthorization(store))
}

func TestFileStore_LogoutThenDerive(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set("h.eyJyb2xlIjoiQURNSU4ifQ.s"))
	assert.True(t, sdk.DeriveAuthorization(store).IsAdmin())

	require.NoError(t, store.Clear())
	assert.Equal(t, sdk.AuthorizationState{IsAuthenticated: false, Role: ""}, sdk.DeriveAuthorization(store))
}
