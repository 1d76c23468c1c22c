package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familyhub/calendar-hub/internal/core/domain"
)

func TestBlobStore_PutGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	store, err := NewBlobStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Get(ctx, "familyCalendarEvents")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)

	require.NoError(t, store.Put(ctx, "familyCalendarEvents", []byte(`[]`)))
	require.NoError(t, store.Put(ctx, "familyCalendarEvents", []byte(`[{"id":"a"}]`)))

	got, err := store.Get(ctx, "familyCalendarEvents")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")
	assert.Equal(t, "familyCalendarEvents.json", entries[0].Name())

	assert.NoError(t, store.Ping(ctx))
}

func TestBlobStore_RejectsPathKeys(t *testing.T) {
	store, err := NewBlobStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../escape", `a\b`, ".hidden"} {
		assert.Error(t, store.Put(context.Background(), key, []byte(`{}`)), "key %q", key)
	}
}

func TestBlobStore_CancelledContext(t *testing.T) {
	store, err := NewBlobStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, store.Put(ctx, "familyCalendarUsers", []byte(`[]`)), context.Canceled)
}
