package tokenstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T, path string) *Store {
	t.Helper()

	st, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestGet_EmptyBeforeAnySave(t *testing.T) {
	t.Parallel()

	st := openStore(t, filepath.Join(t.TempDir(), "tokens.db"))

	token, err := st.Get(context.Background())
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestSaveGet_RoundTrip(t *testing.T) {
	t.Parallel()

	st := openStore(t, filepath.Join(t.TempDir(), "tokens.db"))
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, "token-1"))

	got, err := st.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "token-1", got)
}

func TestSave_OverwritesPreviousValue(t *testing.T) {
	t.Parallel()

	st := openStore(t, filepath.Join(t.TempDir(), "tokens.db"))
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, "token-1"))
	require.NoError(t, st.Save(ctx, "token-2"))

	got, err := st.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "token-2", got)
}

func TestStore_SurvivesReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tokens.db")
	ctx := context.Background()

	st, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, st.Save(ctx, "persisted"))
	require.NoError(t, st.Close())

	st2 := openStore(t, path)
	got, err := st2.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "persisted", got)
}
