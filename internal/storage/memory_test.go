package storage_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrasnov/shrtnr/internal/storage"
)

var _ storage.StorageI = (*storage.MemoryStorage)(nil)

func TestMemoryStorage_InsertAndFind(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()

	record := storage.URLMapping{
		Slug:   "abc12",
		Target: "https://example.com",
	}

	stored, err := mem.Insert(context.Background(), record)
	assert.NoError(t, err)
	assert.Equal(t, "abc12", stored.Slug)
	assert.Equal(t, int64(1), stored.ID)
	assert.False(t, stored.CreatedAt.IsZero())

	// Same slug again - unique constraint fires
	_, err = mem.Insert(context.Background(), record)
	assert.ErrorIs(t, err, storage.ErrConflict)

	found, err := mem.FindBySlug(context.Background(), "abc12")
	assert.NoError(t, err)
	assert.Equal(t, "https://example.com", found.Target)

	_, err = mem.FindBySlug(context.Background(), "notfound")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMemoryStorage_MonotonicIDs(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()

	for i := 0; i < 5; i++ {
		stored, err := mem.Insert(context.Background(), storage.URLMapping{
			Slug:   fmt.Sprintf("slug%d", i),
			Target: "https://example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), stored.ID)
	}
}

func TestMemoryStorage_IncrementClicks(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()

	_, err := mem.Insert(context.Background(), storage.URLMapping{Slug: "abc12", Target: "https://example.com"})
	require.NoError(t, err)

	require.NoError(t, mem.IncrementClicks(context.Background(), "abc12"))
	require.NoError(t, mem.IncrementClicks(context.Background(), "abc12"))

	found, err := mem.FindBySlug(context.Background(), "abc12")
	require.NoError(t, err)
	assert.Equal(t, int64(2), found.Clicks)

	err = mem.IncrementClicks(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMemoryStorage_Count(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()

	total, err := mem.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	mem.Insert(context.Background(), storage.URLMapping{Slug: "s1", Target: "https://a.com"})
	mem.Insert(context.Background(), storage.URLMapping{Slug: "s2", Target: "https://b.com"})

	total, err = mem.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestMemoryStorage_FindWindow(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()

	for i := 0; i < 7; i++ {
		_, err := mem.Insert(context.Background(), storage.URLMapping{
			Slug:   fmt.Sprintf("slug%d", i),
			Target: "https://example.com",
		})
		require.NoError(t, err)
	}

	newest, err := mem.FindWindow(context.Background(), storage.WindowQuery{Limit: 3, Offset: 0, Order: storage.SortNewest})
	require.NoError(t, err)
	require.Len(t, newest, 3)
	assert.Equal(t, int64(7), newest[0].ID)
	assert.Equal(t, int64(5), newest[2].ID)

	oldest, err := mem.FindWindow(context.Background(), storage.WindowQuery{Limit: 3, Offset: 3, Order: storage.SortOldest})
	require.NoError(t, err)
	require.Len(t, oldest, 3)
	assert.Equal(t, int64(4), oldest[0].ID)

	tail, err := mem.FindWindow(context.Background(), storage.WindowQuery{Limit: 3, Offset: 6, Order: storage.SortOldest})
	require.NoError(t, err)
	assert.Len(t, tail, 1)

	beyond, err := mem.FindWindow(context.Background(), storage.WindowQuery{Limit: 3, Offset: 10, Order: storage.SortOldest})
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestMemoryStorage_PingContext(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()

	err := mem.PingContext(context.Background())
	assert.True(t, errors.Is(err, errors.ErrUnsupported))
}
