package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/folio/internal/domain/document"
)

func TestStore_PutGet(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	src := document.Source{Kind: document.Feed, Location: "https://example.com/rss", Item: 1}
	fetched := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	got, err := store.Get(src)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Put(&document.Document{
		Source: src, Title: "Old", Body: "old body", FetchedAt: fetched,
	}))
	require.NoError(t, store.Put(&document.Document{
		Source: src, Title: "New", Byline: "Feed", Link: "https://example.com/2", Body: "new body", FetchedAt: fetched,
	}))

	got, err = store.Get(src)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "Feed", got.Byline)
	assert.Equal(t, "https://example.com/2", got.Link)
	assert.Equal(t, "new body", got.Body)
	assert.True(t, fetched.Equal(got.FetchedAt))
	assert.Equal(t, src, got.Source)

	other, err := store.Get(document.Source{Kind: document.Feed, Location: "https://example.com/rss", Item: 0})
	require.NoError(t, err)
	assert.Nil(t, other, "entries are keyed per item")

	assert.NoError(t, store.Put(nil))
}

func TestStore_PersistsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache.db")
	src := document.Source{Kind: document.Feed, Location: "https://example.com/atom"}

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(&document.Document{Source: src, Title: "Kept", FetchedAt: time.Unix(100, 0)}))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Get(src)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Kept", got.Title)
}

func TestStore_CloseNil(t *testing.T) {
	var s *Store
	assert.NoError(t, s.Close())
}
