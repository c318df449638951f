package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "console", "session.json")
	store := NewFile(path)

	snap := Snapshot{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		UserJSON:     []byte(`{"id":"adm-1","role":"admin"}`),
	}
	require.NoError(t, store.Save(ctx, snap))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap.AccessToken, loaded.AccessToken)
	assert.Equal(t, snap.RefreshToken, loaded.RefreshToken)
	assert.JSONEq(t, string(snap.UserJSON), string(loaded.UserJSON))
}

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	store := NewFile(filepath.Join(t.TempDir(), "absent.json"))
	snap, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, snap.Empty())
}

func TestFileStoreCorruptFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{truncated"), 0o600))

	store := NewFile(path)
	_, err := store.Load(context.Background())
	assert.Error(t, err)
}

func TestFileStoreClear(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFile(path)

	require.NoError(t, store.Save(ctx, Snapshot{AccessToken: "access-token"}))
	require.NoError(t, store.Clear(ctx))

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, snap.Empty())

	// Clearing an already missing file stays quiet.
	require.NoError(t, store.Clear(ctx))
}

func TestFileFactorySharesOneStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	factory := NewFileFactory(path)

	require.NoError(t, factory("sid-a").Save(ctx, Snapshot{AccessToken: "access-token"}))

	snap, err := factory("sid-b").Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-token", snap.AccessToken)
}

func TestMemoryFactoryIsolatesSessions(t *testing.T) {
	ctx := context.Background()
	factory := NewMemoryFactory()

	require.NoError(t, factory.Store("sid-a").Save(ctx, Snapshot{AccessToken: "token-a"}))

	snap, err := factory.Store("sid-b").Load(ctx)
	require.NoError(t, err)
	assert.True(t, snap.Empty())

	snap, err = factory.Store("sid-a").Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-a", snap.AccessToken)
}
