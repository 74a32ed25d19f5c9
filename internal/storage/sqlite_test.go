package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T) *SQLiteBackend {
	t.Helper()
	b, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return b
}

func TestSQLite_PutGetRoundTrip(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	require.NoError(t, b.Put(ctx, KeyRecords, []byte(`[{"id":"a"}]`)))

	got, err := b.Get(ctx, KeyRecords)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"a"}]`), got)
}

func TestSQLite_PutOverwrites(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	require.NoError(t, b.Put(ctx, KeyCompanies, []byte(`["Acme"]`)))
	require.NoError(t, b.Put(ctx, KeyCompanies, []byte(`["Acme","Globex"]`)))

	got, err := b.Get(ctx, KeyCompanies)
	require.NoError(t, err)
	assert.Equal(t, []byte(`["Acme","Globex"]`), got)
}

func TestSQLite_GetMissingKey(t *testing.T) {
	b := newTestBackend(t)

	_, err := b.Get(context.Background(), KeyInProgress)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestSQLite_DeleteThenGet(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	require.NoError(t, b.Put(ctx, KeyInProgress, []byte(`{}`)))
	require.NoError(t, b.Delete(ctx, KeyInProgress))

	_, err := b.Get(ctx, KeyInProgress)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestSQLite_DeleteAbsentIsNoop(t *testing.T) {
	b := newTestBackend(t)
	assert.NoError(t, b.Delete(context.Background(), "never-written"))
}

func TestOpenSQLite_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "stint.db")
	b, err := OpenSQLite(path)
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, b.Put(context.Background(), KeyRecords, []byte(`[]`)))
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stint.db")
	ctx := context.Background()

	b, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, b.Put(ctx, KeyRecords, []byte(`["x"]`)))
	require.NoError(t, b.Close())

	b2, err := OpenSQLite(path)
	require.NoError(t, err)
	defer b2.Close()

	got, err := b2.Get(ctx, KeyRecords)
	require.NoError(t, err)
	assert.Equal(t, []byte(`["x"]`), got)
}
