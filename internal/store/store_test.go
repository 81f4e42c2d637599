package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": sqlite,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := st.Get(ctx, KeyCards)
			require.NoError(t, err)
			assert.False(t, ok, "unwritten key must report absent")

			payload := []byte(`[{"id":"1","balance":"2547.89"}]`)
			require.NoError(t, st.Set(ctx, KeyCards, payload))

			got, ok, err := st.Get(ctx, KeyCards)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, payload, got)
		})
	}
}

func TestStoreOverwrite(t *testing.T) {
	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, st.Set(ctx, KeyTransactions, []byte("[]")))
			require.NoError(t, st.Set(ctx, KeyTransactions, []byte(`[{"id":"tx-1"}]`)))

			got, ok, err := st.Get(ctx, KeyTransactions)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, []byte(`[{"id":"tx-1"}]`), got)
		})
	}
}

func TestStoreKeysAreIndependent(t *testing.T) {
	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, st.Set(ctx, KeyCards, []byte("cards")))

			_, ok, err := st.Get(ctx, KeyTransactions)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	st, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, st.Set(ctx, KeyCards, []byte(`["persisted"]`)))
	require.NoError(t, st.Close())

	st2, err := NewSQLite(path)
	require.NoError(t, err)
	defer st2.Close()

	got, ok, err := st2.Get(ctx, KeyCards)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`["persisted"]`), got)
}
