package client_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ttsbooking/consult-platform/pkg/client"
)

func TestFileStore_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store, err := client.NewFileStore(path)
	require.NoError(t, err)

	// Empty until something is saved.
	require.Empty(t, store.Token())
	require.Nil(t, store.User())

	user := &client.User{ID: 3, Email: "a@b.com", FullName: "Ana"}
	require.NoError(t, store.Save("session-token", user))

	require.Equal(t, "session-token", store.Token())
	got := store.User()
	require.NotNil(t, got)
	require.Equal(t, "Ana", got.FullName)

	// A fresh store over the same file sees the persisted session.
	reopened, err := client.NewFileStore(path)
	require.NoError(t, err)
	require.Equal(t, "session-token", reopened.Token())
}

func TestFileStore_Clear(t *testing.T) {
	store, err := client.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	require.NoError(t, store.Save("tok", &client.User{ID: 1}))
	require.NoError(t, store.Clear())
	require.Empty(t, store.Token())

	// Clearing an already-clean store is not an error.
	require.NoError(t, store.Clear())
}
